package views

import (
	"net/url"

	"github.com/eringen/showcase/catalog"
	"github.com/eringen/showcase/hero"
)

// SiteConfig holds site-wide settings. Every page receives it so nothing is
// hardcoded in the markup.
type SiteConfig struct {
	Owner          string // shown before the accent word in the title
	Accent         string // accent word, e.g. "Portfolio"
	Description    string
	URL            string // canonical base URL
	Email          string // footer mail link
	PortfolioURL   string // footer navigation link
	PortfolioLabel string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string
}

// Actions maps the page's interactive elements to the requests they issue.
type Actions interface {
	SelectURL(p *catalog.Project) string
	DismissURL(r hero.Region) string
	HomeURL() string
}

// Routes is the Actions implementation matching the server's routes.
type Routes struct{}

func (Routes) SelectURL(p *catalog.Project) string {
	return "/projects/" + url.PathEscape(p.ID) + "/"
}

func (Routes) DismissURL(r hero.Region) string {
	return "/selection/dismiss/?region=" + url.QueryEscape(r.String())
}

func (Routes) HomeURL() string {
	return "/"
}

// HomeData is everything the landing page renders from.
type HomeData struct {
	Site    SiteConfig
	Page    *hero.Page
	Shapes  []ShapeConfig
	Year    int
	Actions Actions
}

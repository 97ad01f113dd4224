package views

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/eringen/showcase/catalog"
	"github.com/eringen/showcase/motion"
)

// stylesheet is implemented by drivers that compile to CSS.
type stylesheet interface {
	Stylesheet() string
}

func fadeUp(d motion.Driver, i int) string {
	return d.Entrance(
		motion.State{}.Opacity(0).Y(30),
		motion.State{}.Opacity(1).Y(0),
		motion.Transition{
			Duration: time.Second,
			Delay:    500*time.Millisecond + time.Duration(i)*200*time.Millisecond,
			Ease:     motion.Bezier(0.25, 0.4, 0.25, 1),
		},
	)
}

// HeroPage renders the body of the landing page: shapes, title, grid,
// footer and the overlay slot, which holds the selected project if any.
func HeroPage(d motion.Driver, data HomeData) g.Node {
	c := data.Page.Catalog()
	selected, showing := data.Page.Selected()
	// Registered up front so fragments swapped in later find their classes.
	overlayMotion(d)
	var overlay g.Node
	if showing {
		overlay = ProjectOverlay(d, selected, data.Actions)
	}

	return Div(
		Class("hero"),
		Div(Class("hero-wash")),
		Shapes(d, data.Shapes),
		Main(
			Class("container hero-content"),
			Div(
				Class(classes("hero-heading", fadeUp(d, 0))),
				H1(
					Class("hero-title"),
					Span(Class("hero-owner"), g.Text(possessive(data.Site.Owner))),
					Span(Class("hero-accent accent-text"), g.Text(data.Site.Accent)),
				),
			),
			Div(
				Class(fadeUp(d, 1)),
				ProjectGrid(d, c.Projects(), data.Actions),
			),
		),
		Div(Class("hero-vignette")),
		SiteFooter(d, data.Site, data.Year),
		Div(
			ID("overlay"),
			g.If(showing, overlay),
		),
	)
}

// Home renders the full landing page document.
func Home(d motion.Driver, data HomeData) g.Node {
	body := HeroPage(d, data)
	meta := PageMeta{URL: BuildURL(data.Site.URL)}
	if p, ok := data.Page.Selected(); ok {
		meta = PageMeta{
			Title:       p.Title + " | " + siteTitle(data.Site),
			Description: p.Description,
			URL:         BuildURL(data.Site.URL, "projects", p.ID),
			OGType:      "article",
			Image:       absoluteURL(data.Site.URL, imageSrc(p)),
		}
	}
	css := ""
	if s, ok := d.(stylesheet); ok {
		css = s.Stylesheet()
	}
	return Layout(data.Site, meta, PortfolioJsonLD(data.Site, data.Page.Catalog().Projects()), css, body)
}

// Overlay renders the overlay fragment swapped in by htmx.
func Overlay(d motion.Driver, p *catalog.Project, a Actions) g.Node {
	return ProjectOverlay(d, p, a)
}

package showcase

import (
	"time"

	"go.uber.org/zap"

	"github.com/eringen/showcase/catalog"
	"github.com/eringen/showcase/views"
)

// SiteConfig holds all configuration for a showcase site.
type SiteConfig struct {
	Owner       string // Name shown before the accent word (default "Bharath")
	Accent      string // Accent word of the title (default "Portfolio")
	Description string // Site description for meta tags
	URL         string // Canonical URL (default "http://localhost:3000")

	Email          string // Footer mail link
	PortfolioURL   string // Footer navigation link (default "/portfolio")
	PortfolioLabel string // Footer navigation label (default "Main Portfolio")

	Addr      string // Listen address (default ":3000")
	StaticDir string // User-owned images (default "public")
	LogLevel  string // debug, info, warn or error (default "info")
}

func (c *SiteConfig) setDefaults() {
	if c.Owner == "" {
		c.Owner = "Bharath"
	}
	if c.Accent == "" {
		c.Accent = "Portfolio"
	}
	if c.Description == "" {
		c.Description = "Selected projects and experiments."
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.PortfolioURL == "" {
		c.PortfolioURL = "/portfolio"
	}
	if c.PortfolioLabel == "" {
		c.PortfolioLabel = "Main Portfolio"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c SiteConfig) views() views.SiteConfig {
	return views.SiteConfig{
		Owner:          c.Owner,
		Accent:         c.Accent,
		Description:    c.Description,
		URL:            c.URL,
		Email:          c.Email,
		PortfolioURL:   c.PortfolioURL,
		PortfolioLabel: c.PortfolioLabel,
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCatalog replaces the built-in project catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(a *App) {
		a.Catalog = c
	}
}

// WithClock sets the time source used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.clock = now
	}
}

// WithShapes replaces the decorative shapes behind the hero.
func WithShapes(shapes []views.ShapeConfig) Option {
	return func(a *App) {
		a.shapes = shapes
	}
}

// WithLogger sets the application logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// WithViews replaces the view functions.
func WithViews(v ViewFuncs) Option {
	return func(a *App) {
		a.Views = v
	}
}

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are set up.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned images (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

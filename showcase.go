// Package showcase serves an animated portfolio landing page built with Go,
// Echo, and htmx.
//
// The page lists projects from a catalog and opens one at a time in a detail
// overlay. Which project is open is carried by the URL; every request mounts
// a fresh hero.Page, applies the event the request stands for, and renders
// the result.
package showcase

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/showcase/catalog"
	"github.com/eringen/showcase/hero"
	"github.com/eringen/showcase/motion"
	"github.com/eringen/showcase/views"
)

// motionPrefix is shared by page and fragment drivers so fragment class
// names match the rules inlined into the page.
const motionPrefix = "m"

// ViewFuncs holds the components the handlers render. New fills it with the
// built-in views; callers may replace any of them.
type ViewFuncs struct {
	Home        func(data views.HomeData) templ.Component
	Overlay     func(p *catalog.Project, a views.Actions) templ.Component
	NotFound    func(cfg views.SiteConfig) templ.Component
	ServerError func(cfg views.SiteConfig) templ.Component
}

// DefaultViews returns the built-in views, animated through CSS.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		Home: func(data views.HomeData) templ.Component {
			return views.Component(views.Home(motion.NewCSSDriver(motionPrefix), data))
		},
		Overlay: func(p *catalog.Project, a views.Actions) templ.Component {
			return views.Component(views.Overlay(motion.NewCSSDriver(motionPrefix), p, a))
		},
		NotFound: func(cfg views.SiteConfig) templ.Component {
			return views.Component(views.NotFound(cfg))
		},
		ServerError: func(cfg views.SiteConfig) templ.Component {
			return views.Component(views.ServerError(cfg))
		},
	}
}

// App is the central showcase application. It wires together the catalog,
// handlers, middleware, and views.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Catalog *catalog.Catalog
	Views   ViewFuncs
	Logger  *zap.Logger

	shapes       []views.ShapeConfig
	clock        func() time.Time
	actions      views.Actions
	images       *ImageResolver
	renders      *RenderLimiter
	customRoutes []func(*App)
	staticDir    string
	ready        bool
}

// New creates a new App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Catalog:   catalog.Default(),
		Views:     DefaultViews(),
		Logger:    zap.NewNop(),
		shapes:    views.DefaultShapes,
		clock:     time.Now,
		actions:   views.Routes{},
		renders:   NewRenderLimiter(placeholderRendersPerMin, time.Minute),
		staticDir: cfg.StaticDir,
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	for _, opt := range opts {
		opt(a)
	}

	a.images = NewImageResolver(os.DirFS(a.staticDir), a.Logger)
	return a
}

// Handler sets up middleware and routes once and returns the HTTP handler.
func (a *App) Handler() http.Handler {
	if !a.ready {
		a.setupMiddleware()
		a.setupRoutes()
		for _, fn := range a.customRoutes {
			fn(a)
		}
		a.ready = true
	}
	return a.Echo
}

// Start sets up the server and listens on Config.Addr.
func (a *App) Start() error {
	if a.Catalog == nil || a.Catalog.Len() == 0 {
		return errors.New("showcase: catalog is empty")
	}
	a.Handler()
	a.Logger.Info("listening", zap.String("addr", a.Config.Addr), zap.Int("projects", a.Catalog.Len()))
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("showcase: serve: %w", err)
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded stylesheet and favicon.
	staticFS, _ := fs.Sub(EmbeddedAssets, "static")
	e.GET("/public/*", echo.WrapHandler(http.StripPrefix("/public/", http.FileServer(http.FS(staticFS)))))
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/healthz", handleHealth)

	// Image resolver.
	e.GET("/placeholder.png", a.handlePlaceholder)
	e.GET("/images/*", a.handleImage)

	// Page and selection events.
	e.GET("/", a.handleHome)
	e.GET("/projects/:id/", a.handleSelect)
	e.GET("/selection/dismiss/", a.handleDismiss)
}

// mount returns a fresh page over the app's catalog.
func (a *App) mount() *hero.Page {
	return hero.Mount(a.Catalog)
}

func (a *App) homeData(page *hero.Page) views.HomeData {
	return views.HomeData{
		Site:    a.Config.views(),
		Page:    page,
		Shapes:  a.shapes,
		Year:    a.clock().Year(),
		Actions: a.actions,
	}
}

// Close flushes the logger. Call this when the app is shutting down.
func (a *App) Close() error {
	_ = a.Logger.Sync()
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

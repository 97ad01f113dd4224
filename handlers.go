package showcase

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/showcase/hero"
)

func (a *App) handleHome(c echo.Context) error {
	return Render(c, a.Views.Home(a.homeData(a.mount())))
}

// handleSelect opens a project. htmx requests get the overlay fragment;
// everything else gets the full page with the overlay already open.
func (a *App) handleSelect(c echo.Context) error {
	id, err := url.PathUnescape(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed project id")
	}
	page := a.mount()
	if err := page.SelectID(id); err != nil {
		if errors.Is(err, hero.ErrUnknownProject) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.Config.views()))
		}
		return err
	}
	proj, _ := page.Selected()
	if isHTMX(c) {
		c.Response().Header().Set("HX-Push-Url", a.actions.SelectURL(proj))
		return Render(c, a.Views.Overlay(proj, a.actions))
	}
	return Render(c, a.Views.Home(a.homeData(page)))
}

// handleDismiss delivers an overlay region activation. Dismissing regions
// answer with an empty overlay; the panel answers 204 so htmx leaves the
// overlay alone.
func (a *App) handleDismiss(c echo.Context) error {
	region, err := hero.ParseRegion(c.QueryParam("region"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !isHTMX(c) {
		return c.Redirect(http.StatusSeeOther, a.actions.HomeURL())
	}
	if !region.Dismisses() {
		return c.NoContent(http.StatusNoContent)
	}
	page := a.restore(c)
	if page.Dispatch(region) {
		a.Logger.Debug("overlay dismissed", zap.Stringer("region", region))
	} else {
		a.Logger.Debug("dismiss with no overlay open", zap.Stringer("region", region))
	}
	return c.HTML(http.StatusOK, "")
}

// restore mounts a page in the state the client's current URL describes.
func (a *App) restore(c echo.Context) *hero.Page {
	page := a.mount()
	current, err := url.Parse(c.Request().Header.Get("HX-Current-URL"))
	if err != nil {
		return page
	}
	rest, ok := strings.CutPrefix(current.Path, "/projects/")
	if !ok {
		return page
	}
	if id, err := url.PathUnescape(strings.Trim(rest, "/")); err == nil {
		_ = page.SelectID(id)
	}
	return page
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c, a.Catalog.Projects())
}

func (a *App) handleFavicon(c echo.Context) error {
	data, err := EmbeddedAssets.ReadFile("static/favicon.svg")
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/svg+xml", data)
}

// handleRobots generates robots.txt from the configured site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /selection/\n\nSitemap: %s/sitemap.xml\n", strings.TrimRight(a.Config.URL, "/"))
	return c.String(http.StatusOK, body)
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.Config.views()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error("server error", zap.Error(err), zap.String("uri", c.Request().RequestURI))
		_ = RenderStatus(c, code, a.Views.ServerError(a.Config.views()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

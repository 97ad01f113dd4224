package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func errorPage(cfg SiteConfig, title, message string) g.Node {
	return Layout(cfg, PageMeta{Title: title + " | " + siteTitle(cfg)}, "", "",
		Main(
			Class("container error-page"),
			H1(Class("hero-title accent-text"), g.Text(title)),
			P(Class("overlay-description"), g.Text(message)),
			A(Class("btn btn-primary"), Href("/"), g.Text("Back to projects")),
		),
	)
}

// NotFound renders the 404 page.
func NotFound(cfg SiteConfig) g.Node {
	return errorPage(cfg, "Not found", "There is nothing at this address.")
}

// ServerError renders the 500 page.
func ServerError(cfg SiteConfig) g.Node {
	return errorPage(cfg, "Something went wrong", "The page could not be rendered. Please try again.")
}

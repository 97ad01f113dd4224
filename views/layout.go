package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// HtmxSrc is where the page loads htmx from.
const HtmxSrc = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// Layout wraps body content in the document shell. styles is inlined into a
// <style> element after the site stylesheet.
func Layout(cfg SiteConfig, meta PageMeta, jsonLD, styles string, body ...g.Node) g.Node {
	if meta.Title == "" {
		meta.Title = siteTitle(cfg)
	}
	if meta.Description == "" {
		meta.Description = cfg.Description
	}
	if meta.OGType == "" {
		meta.OGType = "website"
	}
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(meta.Title)),
				Meta(Name("description"), Content(meta.Description)),
				g.If(meta.URL != "", Link(Rel("canonical"), Href(meta.URL))),
				Meta(g.Attr("property", "og:title"), Content(meta.Title)),
				Meta(g.Attr("property", "og:description"), Content(meta.Description)),
				Meta(g.Attr("property", "og:type"), Content(meta.OGType)),
				g.If(meta.URL != "", Meta(g.Attr("property", "og:url"), Content(meta.URL))),
				g.If(meta.Image != "", Meta(g.Attr("property", "og:image"), Content(meta.Image))),
				Link(Rel("icon"), Type("image/svg+xml"), Href("/favicon.svg")),
				Link(Rel("stylesheet"), Href("/public/site.css")),
				g.If(styles != "", StyleEl(g.Raw(styles))),
				g.If(jsonLD != "", Script(Type("application/ld+json"), g.Raw(jsonLD))),
				Script(Src(HtmxSrc), Defer()),
			),
			Body(
				Class("page"),
				g.Group(body),
			),
		),
	)
}

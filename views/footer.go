package views

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/eringen/showcase/motion"
)

// SiteFooter renders the copyright line for year and the contact links.
func SiteFooter(d motion.Driver, cfg SiteConfig, year int) g.Node {
	return Footer(
		Class("site-footer"),
		Div(
			Class("container footer-row"),
			P(Class("footer-copy"), g.Text(fmt.Sprintf("© %d %s. All rights reserved.", year, siteTitle(cfg)))),
			Div(
				Class("footer-links"),
				g.If(cfg.Email != "",
					A(
						Class("footer-mail"),
						Href("mailto:"+cfg.Email),
						Data("link", "mail"),
						Span(Aria("hidden", "true"), g.Text("✉")),
						Span(g.Text(cfg.Email)),
					),
				),
				A(
					Class("btn btn-primary footer-nav"),
					Href(cfg.PortfolioURL),
					Data("link", "portfolio"),
					Span(g.Text(cfg.PortfolioLabel)),
					Span(Class(classes("footer-arrow", nudgeClass(d))), Aria("hidden", "true"), g.Text("→")),
				),
			),
		),
	)
}

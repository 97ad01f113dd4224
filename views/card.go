package views

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/eringen/showcase/catalog"
	"github.com/eringen/showcase/motion"
)

// OverlayTarget is the element htmx swaps overlay fragments into.
const OverlayTarget = "#overlay"

var nudge = []motion.State{
	motion.State{}.X(0),
	motion.State{}.X(5),
	motion.State{}.X(0),
}

func nudgeClass(d motion.Driver) string {
	return d.Idle(nudge, motion.Transition{
		Duration: 1500 * time.Millisecond,
		Ease:     motion.EaseInOut,
		Repeat:   motion.Forever,
	})
}

// ProjectCard renders one project summary. Activating it issues a single
// select request for p; the plain href is the no-script fallback.
func ProjectCard(d motion.Driver, p *catalog.Project, a Actions) g.Node {
	enter := d.Entrance(
		motion.State{}.Opacity(0).Y(20),
		motion.State{}.Opacity(1).Y(0),
		motion.Transition{Duration: 800 * time.Millisecond},
	)
	selectURL := a.SelectURL(p)
	return A(
		Class(classes("card", enter)),
		Href(selectURL),
		Data("project-id", p.ID),
		hx("get", selectURL),
		hx("target", OverlayTarget),
		hx("swap", "innerHTML"),
		hx("push-url", "true"),
		Div(
			Class("card-media"),
			Img(
				Class("card-image"),
				Src(imageSrc(p)),
				Alt(p.Title),
				Width("400"),
				Height("300"),
				Loading("lazy"),
			),
			Div(Class("card-shade")),
		),
		Div(
			Class("card-body"),
			H3(Class("card-title accent-text"), g.Text(p.Title)),
			Div(
				Class("card-cta"),
				Span(g.Text("View Details")),
				Span(Class(classes("card-arrow", nudgeClass(d))), Aria("hidden", "true"), g.Text("→")),
			),
		),
	)
}

func hx(name, value string) g.Node {
	return g.Attr("hx-"+name, value)
}

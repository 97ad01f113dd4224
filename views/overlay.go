package views

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/eringen/showcase/catalog"
	"github.com/eringen/showcase/hero"
	"github.com/eringen/showcase/motion"
)

const (
	backdropID = "overlay-backdrop"
	// ExitDelay is how long htmx keeps the old overlay while it animates out.
	ExitDelay = 200 * time.Millisecond
)

type overlayClasses struct {
	backdropIn, backdropOut string
	panelIn, panelOut       string
}

func overlayMotion(d motion.Driver) overlayClasses {
	shown := motion.State{}.Opacity(1)
	hidden := motion.State{}.Opacity(0)
	open := motion.State{}.Opacity(1).Scale(1)
	shrunk := motion.State{}.Opacity(0).Scale(0.9)
	fade := motion.Transition{Duration: ExitDelay}
	pop := motion.Transition{Duration: 350 * time.Millisecond, Ease: motion.Bezier(0.22, 1, 0.36, 1)}
	return overlayClasses{
		backdropIn:  d.Entrance(hidden, shown, fade),
		backdropOut: d.Exit(shown, hidden, fade),
		panelIn:     d.Entrance(shrunk, open, pop),
		panelOut:    d.Exit(open, shrunk, fade),
	}
}

// dismissAttrs wires an element to the dismiss request for region r.
func dismissAttrs(a Actions, r hero.Region) g.Node {
	return g.Group{
		hx("get", a.DismissURL(r)),
		hx("target", OverlayTarget),
		hx("swap", "innerHTML swap:"+ExitDelay.String()),
		hx("push-url", a.HomeURL()),
	}
}

// ProjectOverlay renders the detail view for p.
//
// The backdrop and the close button are separate event regions. The
// backdrop only reacts when the click target is the backdrop element
// itself, so clicks that land in the panel (including on the close button)
// never reach its handler. The panel has no handler at all.
func ProjectOverlay(d motion.Driver, p *catalog.Project, a Actions) g.Node {
	m := overlayMotion(d)
	return Div(
		ID(backdropID),
		Class(classes("overlay-backdrop", m.backdropIn, m.backdropOut)),
		Data("region", hero.RegionBackdrop.String()),
		dismissAttrs(a, hero.RegionBackdrop),
		hx("trigger", "click target:#"+backdropID),
		Div(
			Class(classes("overlay-panel", m.panelIn, m.panelOut)),
			Data("region", hero.RegionPanel.String()),
			Role("dialog"),
			Aria("modal", "true"),
			Aria("labelledby", "overlay-title"),
			A(
				Class("overlay-close"),
				Href(a.HomeURL()),
				Data("region", hero.RegionClose.String()),
				dismissAttrs(a, hero.RegionClose),
				Aria("label", "Close"),
				g.Text("×"),
			),
			Div(
				Class("overlay-media"),
				Img(Class("overlay-image"), Src(imageSrc(p)), Alt(p.Title), Width("800"), Height("256")),
				Div(Class("overlay-shade")),
			),
			Div(
				Class("overlay-body"),
				H2(ID("overlay-title"), Class("overlay-title accent-text"), g.Text(p.Title)),
				P(Class("overlay-description"), g.Text(p.Description)),
				Div(
					Class("overlay-links"),
					outboundLink("btn btn-primary", p.DemoURL, "demo", "↗", "Live Demo"),
					outboundLink("btn btn-ghost", p.SourceURL, "source", "⌥", "Source Code"),
				),
			),
		),
	)
}

func outboundLink(class, href, kind, icon, label string) g.Node {
	return A(
		Class(class),
		Href(href),
		Target("_blank"),
		Rel("noopener noreferrer"),
		Data("link", kind),
		Span(Class("btn-icon"), Aria("hidden", "true"), g.Text(icon)),
		g.Text(label),
	)
}

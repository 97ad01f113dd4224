package views

import (
	"fmt"
	"strings"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/eringen/showcase/motion"
)

// Offsets positions a shape inside the hero. Empty sides stay auto.
type Offsets struct {
	Left, Right, Top, Bottom string
}

// ShapeConfig is one decorative shape. Values are presentation data only.
type ShapeConfig struct {
	Width    int
	Height   int
	Rotate   float64
	Gradient string // indigo, rose, violet, amber or cyan
	Delay    time.Duration
	Position Offsets // small screens
	Wide     Offsets // from the md breakpoint up
}

// DefaultShapes are the five floating shapes behind the hero.
var DefaultShapes = []ShapeConfig{
	{
		Width: 600, Height: 140, Rotate: 12, Gradient: "indigo", Delay: 300 * time.Millisecond,
		Position: Offsets{Left: "-10%", Top: "15%"},
		Wide:     Offsets{Left: "-5%", Top: "20%"},
	},
	{
		Width: 500, Height: 120, Rotate: -15, Gradient: "rose", Delay: 500 * time.Millisecond,
		Position: Offsets{Right: "-5%", Top: "70%"},
		Wide:     Offsets{Right: "0%", Top: "75%"},
	},
	{
		Width: 300, Height: 80, Rotate: -8, Gradient: "violet", Delay: 400 * time.Millisecond,
		Position: Offsets{Left: "5%", Bottom: "5%"},
		Wide:     Offsets{Left: "10%", Bottom: "10%"},
	},
	{
		Width: 200, Height: 60, Rotate: 20, Gradient: "amber", Delay: 600 * time.Millisecond,
		Position: Offsets{Right: "15%", Top: "10%"},
		Wide:     Offsets{Right: "20%", Top: "15%"},
	},
	{
		Width: 150, Height: 40, Rotate: -25, Gradient: "cyan", Delay: 700 * time.Millisecond,
		Position: Offsets{Left: "20%", Top: "5%"},
		Wide:     Offsets{Left: "25%", Top: "10%"},
	},
}

var shapeBob = []motion.State{
	motion.State{}.Y(0),
	motion.State{}.Y(15),
	motion.State{}.Y(0),
}

// Shapes renders the decorative layer. It consumes no events.
func Shapes(d motion.Driver, shapes []ShapeConfig) g.Node {
	return Div(
		Class("shapes"),
		Aria("hidden", "true"),
		g.Group(g.Map(shapes, func(s ShapeConfig) g.Node {
			return shape(d, s)
		})),
	)
}

func shape(d motion.Driver, s ShapeConfig) g.Node {
	enter := d.Entrance(
		motion.State{}.Opacity(0).Y(-150).Rotate(s.Rotate-15),
		motion.State{}.Opacity(1).Y(0).Rotate(s.Rotate),
		motion.Transition{
			Duration:        2400 * time.Millisecond,
			Delay:           s.Delay,
			Ease:            motion.Bezier(0.23, 0.86, 0.39, 0.96),
			OpacityDuration: 1200 * time.Millisecond,
		},
	)
	bob := d.Idle(shapeBob, motion.Transition{
		Duration: 12 * time.Second,
		Ease:     motion.EaseInOut,
		Repeat:   motion.Forever,
	})
	return Div(
		Class(classes("shape", enter)),
		Style(s.offsetVars()),
		Div(
			Class(classes("shape-bob", bob)),
			Style(fmt.Sprintf("width:%dpx;height:%dpx", s.Width, s.Height)),
			Div(Class("shape-body shape-"+s.Gradient)),
		),
	)
}

// offsetVars exposes the offsets as custom properties; the stylesheet picks
// the wide set at the md breakpoint.
func (s ShapeConfig) offsetVars() string {
	var vars []string
	add := func(prefix string, o Offsets) {
		for _, kv := range [][2]string{{"left", o.Left}, {"right", o.Right}, {"top", o.Top}, {"bottom", o.Bottom}} {
			if kv[1] != "" {
				vars = append(vars, "--"+prefix+kv[0]+":"+kv[1])
			}
		}
	}
	add("", s.Position)
	add("md-", s.Wide)
	return strings.Join(vars, ";")
}

func classes(names ...string) string {
	var out []string
	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}
	return strings.Join(out, " ")
}

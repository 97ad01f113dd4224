// Package motion describes entrance, idle and exit animations declaratively
// and compiles them for the browser.
//
// Views never drive an animation engine directly. They describe the states an
// element moves between and how long it takes, register that description
// with a Driver, and attach the class name the Driver hands back.
package motion

import (
	"strconv"
	"strings"
	"time"
)

// Forever repeats an animation indefinitely.
const Forever = -1

// Kind identifies the phase an animation belongs to.
type Kind int

const (
	KindEntrance Kind = iota
	KindIdle
	KindExit
)

func (k Kind) String() string {
	switch k {
	case KindEntrance:
		return "enter"
	case KindIdle:
		return "idle"
	case KindExit:
		return "exit"
	default:
		return "kind" + strconv.Itoa(int(k))
	}
}

// Driver registers animation descriptions and returns the class name an
// element must carry to play them.
type Driver interface {
	Entrance(from, to State, t Transition) string
	Idle(frames []State, t Transition) string
	Exit(from, to State, t Transition) string
}

type props uint8

const (
	propOpacity props = 1 << iota
	propX
	propY
	propRotate
	propScale
)

// State is a visual state of an element. Only properties that were set
// take part in the animation. The zero State sets nothing.
type State struct {
	set     props
	opacity float64
	x, y    float64
	rotate  float64
	scale   float64
}

// Opacity returns s with opacity set to v.
func (s State) Opacity(v float64) State {
	s.set |= propOpacity
	s.opacity = v
	return s
}

// X returns s translated horizontally by px pixels.
func (s State) X(px float64) State {
	s.set |= propX
	s.x = px
	return s
}

// Y returns s translated vertically by px pixels.
func (s State) Y(px float64) State {
	s.set |= propY
	s.y = px
	return s
}

// Rotate returns s rotated by deg degrees.
func (s State) Rotate(deg float64) State {
	s.set |= propRotate
	s.rotate = deg
	return s
}

// Scale returns s scaled by v.
func (s State) Scale(v float64) State {
	s.set |= propScale
	s.scale = v
	return s
}

func (s State) hasTransform() bool {
	return s.set&(propX|propY|propRotate|propScale) != 0
}

// OpacityCSS returns the opacity declaration, or "" when opacity is unset.
func (s State) OpacityCSS() string {
	if s.set&propOpacity == 0 {
		return ""
	}
	return "opacity:" + num(s.opacity)
}

// TransformCSS returns the transform declaration, or "" when no transform
// property is set.
func (s State) TransformCSS() string {
	if !s.hasTransform() {
		return ""
	}
	var parts []string
	if s.set&(propX|propY) != 0 {
		parts = append(parts, "translate("+num(s.x)+"px,"+num(s.y)+"px)")
	}
	if s.set&propRotate != 0 {
		parts = append(parts, "rotate("+num(s.rotate)+"deg)")
	}
	if s.set&propScale != 0 {
		parts = append(parts, "scale("+num(s.scale)+")")
	}
	return "transform:" + strings.Join(parts, " ")
}

// CSS returns all declarations of s separated by semicolons.
func (s State) CSS() string {
	return joinDecls(s.OpacityCSS(), s.TransformCSS())
}

// Ease is a timing curve.
type Ease struct {
	name   string
	bezier [4]float64
}

var (
	Linear    = Ease{name: "linear"}
	EaseIn    = Ease{name: "ease-in"}
	EaseOut   = Ease{name: "ease-out"}
	EaseInOut = Ease{name: "ease-in-out"}
)

// Bezier returns a cubic-bezier timing curve.
func Bezier(x1, y1, x2, y2 float64) Ease {
	return Ease{bezier: [4]float64{x1, y1, x2, y2}}
}

// CSS returns the CSS timing function. The zero Ease is "ease".
func (e Ease) CSS() string {
	if e.name != "" {
		return e.name
	}
	if e.bezier == [4]float64{} {
		return "ease"
	}
	b := e.bezier
	return "cubic-bezier(" + num(b[0]) + "," + num(b[1]) + "," + num(b[2]) + "," + num(b[3]) + ")"
}

// Transition describes the timing of an animation.
type Transition struct {
	Duration time.Duration
	Delay    time.Duration
	Ease     Ease
	// Repeat is the number of extra iterations; Forever loops.
	Repeat int
	// OpacityDuration, when set, runs opacity on its own clock while the
	// transform keeps Duration.
	OpacityDuration time.Duration
}

func (t Transition) iterations() string {
	if t.Repeat < 0 {
		return "infinite"
	}
	return strconv.Itoa(t.Repeat + 1)
}

func seconds(d time.Duration) string {
	return num(d.Seconds()) + "s"
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func joinDecls(decls ...string) string {
	var out []string
	for _, d := range decls {
		if d != "" {
			out = append(out, d)
		}
	}
	return strings.Join(out, ";")
}

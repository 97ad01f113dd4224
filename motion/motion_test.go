package motion

import (
	"strings"
	"testing"
	"time"
)

func TestStateCSS(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  string
	}{
		{"empty", State{}, ""},
		{"opacity", State{}.Opacity(0), "opacity:0"},
		{"translate", State{}.Y(-150), "transform:translate(0px,-150px)"},
		{"rotate", State{}.Rotate(-3), "transform:rotate(-3deg)"},
		{"combined", State{}.Opacity(0.5).X(5).Rotate(12).Scale(0.9), "opacity:0.5;transform:translate(5px,0px) rotate(12deg) scale(0.9)"},
	}
	for _, tt := range tests {
		if got := tt.state.CSS(); got != tt.want {
			t.Errorf("%s: CSS() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestEaseCSS(t *testing.T) {
	tests := []struct {
		ease Ease
		want string
	}{
		{Ease{}, "ease"},
		{EaseInOut, "ease-in-out"},
		{Bezier(0.23, 0.86, 0.39, 0.96), "cubic-bezier(0.23,0.86,0.39,0.96)"},
	}
	for _, tt := range tests {
		if got := tt.ease.CSS(); got != tt.want {
			t.Errorf("CSS() = %q, want %q", got, tt.want)
		}
	}
}

func TestCSSDriverEntrance(t *testing.T) {
	d := NewCSSDriver("m")
	class := d.Entrance(
		State{}.Opacity(0).Y(20),
		State{}.Opacity(1).Y(0),
		Transition{Duration: 800 * time.Millisecond},
	)
	if !strings.HasPrefix(class, "m-enter-") {
		t.Fatalf("class = %q, want m-enter- prefix", class)
	}
	css := d.Stylesheet()
	for _, want := range []string{
		"@keyframes " + class + "{0%{opacity:0;transform:translate(0px,20px)}100%{opacity:1;transform:translate(0px,0px)}}",
		"." + class + "{animation:" + class + " 0.8s ease 0s 1 both}",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("stylesheet missing %q\n%s", want, css)
		}
	}
}

func TestCSSDriverDedupesIdenticalDescriptions(t *testing.T) {
	d := NewCSSDriver("m")
	tr := Transition{Duration: time.Second}
	a := d.Entrance(State{}.Opacity(0), State{}.Opacity(1), tr)
	b := d.Entrance(State{}.Opacity(0), State{}.Opacity(1), tr)
	c := d.Entrance(State{}.Opacity(0), State{}.Opacity(1), Transition{Duration: time.Second, Delay: time.Second})
	if a != b {
		t.Errorf("identical descriptions got classes %q and %q", a, b)
	}
	if a == c {
		t.Error("different delays share a class")
	}
	if n := strings.Count(d.Stylesheet(), "@keyframes"); n != 2 {
		t.Errorf("keyframes = %d, want 2", n)
	}
}

func TestCSSDriverIdleLoopsForever(t *testing.T) {
	d := NewCSSDriver("m")
	class := d.Idle(
		[]State{State{}.Y(0), State{}.Y(15), State{}.Y(0)},
		Transition{Duration: 12 * time.Second, Ease: EaseInOut, Repeat: Forever},
	)
	css := d.Stylesheet()
	if !strings.Contains(css, "50%{transform:translate(0px,15px)}") {
		t.Errorf("missing midpoint frame:\n%s", css)
	}
	if !strings.Contains(css, class+" 12s ease-in-out 0s infinite none") {
		t.Errorf("missing infinite animation:\n%s", css)
	}
}

func TestCSSDriverSplitsOpacityClock(t *testing.T) {
	d := NewCSSDriver("m")
	class := d.Entrance(
		State{}.Opacity(0).Y(-150).Rotate(-3),
		State{}.Opacity(1).Y(0).Rotate(12),
		Transition{Duration: 2400 * time.Millisecond, Delay: 300 * time.Millisecond, OpacityDuration: 1200 * time.Millisecond},
	)
	css := d.Stylesheet()
	for _, want := range []string{
		"@keyframes " + class + "{0%{transform:translate(0px,-150px) rotate(-3deg)}",
		"@keyframes " + class + "-o{0%{opacity:0}100%{opacity:1}}",
		class + " 2.4s ease 0.3s 1 both," + class + "-o 1.2s ease 0.3s 1 both",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("stylesheet missing %q\n%s", want, css)
		}
	}
}

func TestCSSDriverExitPlaysWhileSwapping(t *testing.T) {
	d := NewCSSDriver("m")
	class := d.Exit(State{}.Opacity(1).Scale(1), State{}.Opacity(0).Scale(0.9), Transition{Duration: 200 * time.Millisecond})
	want := "." + SwappingClass + " ." + class + "{animation:" + class + " 0.2s ease 0s 1 forwards}"
	if !strings.Contains(d.Stylesheet(), want) {
		t.Errorf("stylesheet missing %q\n%s", want, d.Stylesheet())
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	if got := r.Entrance(State{}, State{}.Opacity(1), Transition{}); got != "" {
		t.Errorf("Entrance() = %q, want empty", got)
	}
	r.Idle([]State{State{}.Y(0)}, Transition{Repeat: Forever})
	r.Exit(State{}, State{}, Transition{})
	if r.Count(KindEntrance) != 1 || r.Count(KindIdle) != 1 || r.Count(KindExit) != 1 {
		t.Fatalf("registrations = %+v", r.Registrations)
	}
}

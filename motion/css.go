package motion

import (
	"fmt"
	"hash/fnv"
	"strings"
	"time"
)

// SwappingClass is the class htmx puts on a swap target while its old
// content is being replaced. Exit animations play under it.
const SwappingClass = "htmx-swapping"

// CSSDriver compiles animation descriptions into CSS keyframes. Identical
// descriptions share one class. A CSSDriver is meant to live for a single
// render and is not safe for concurrent use.
type CSSDriver struct {
	prefix string
	rules  []string
	seen   map[string]string
}

// NewCSSDriver returns a driver whose class names start with prefix.
func NewCSSDriver(prefix string) *CSSDriver {
	if prefix == "" {
		prefix = "m"
	}
	return &CSSDriver{prefix: prefix, seen: make(map[string]string)}
}

func (d *CSSDriver) Entrance(from, to State, t Transition) string {
	return d.register(KindEntrance, []State{from, to}, t)
}

func (d *CSSDriver) Idle(frames []State, t Transition) string {
	return d.register(KindIdle, frames, t)
}

func (d *CSSDriver) Exit(from, to State, t Transition) string {
	return d.register(KindExit, []State{from, to}, t)
}

// Stylesheet returns every registered rule in registration order.
func (d *CSSDriver) Stylesheet() string {
	return strings.Join(d.rules, "\n")
}

func (d *CSSDriver) register(kind Kind, frames []State, t Transition) string {
	if len(frames) == 0 {
		return ""
	}
	key := descriptorKey(kind, frames, t)
	if class, ok := d.seen[key]; ok {
		return class
	}
	h := fnv.New32a()
	h.Write([]byte(key))
	class := fmt.Sprintf("%s-%s-%08x", d.prefix, kind, h.Sum32())
	d.seen[key] = class

	var animations []string
	if t.OpacityDuration > 0 {
		if kf := keyframes(class, frames, State.TransformCSS); kf != "" {
			d.rules = append(d.rules, kf)
			animations = append(animations, animation(class, kind, t.Duration, t))
		}
		if kf := keyframes(class+"-o", frames, State.OpacityCSS); kf != "" {
			d.rules = append(d.rules, kf)
			animations = append(animations, animation(class+"-o", kind, t.OpacityDuration, t))
		}
	} else if kf := keyframes(class, frames, State.CSS); kf != "" {
		d.rules = append(d.rules, kf)
		animations = append(animations, animation(class, kind, t.Duration, t))
	}
	if len(animations) == 0 {
		return class
	}

	selector := "." + class
	if kind == KindExit {
		selector = "." + SwappingClass + " ." + class
	}
	d.rules = append(d.rules, selector+"{animation:"+strings.Join(animations, ",")+"}")
	return class
}

func descriptorKey(kind Kind, frames []State, t Transition) string {
	var b strings.Builder
	b.WriteString(kind.String())
	for _, f := range frames {
		b.WriteByte('|')
		b.WriteString(f.CSS())
	}
	fmt.Fprintf(&b, "|%d|%d|%s|%d|%d", t.Duration, t.Delay, t.Ease.CSS(), t.Repeat, t.OpacityDuration)
	return b.String()
}

func keyframes(name string, frames []State, decl func(State) string) string {
	var b strings.Builder
	empty := true
	b.WriteString("@keyframes ")
	b.WriteString(name)
	b.WriteByte('{')
	for i, f := range frames {
		css := decl(f)
		if css != "" {
			empty = false
		}
		b.WriteString(percent(i, len(frames)))
		b.WriteByte('{')
		b.WriteString(css)
		b.WriteByte('}')
	}
	b.WriteByte('}')
	if empty {
		return ""
	}
	return b.String()
}

func percent(i, n int) string {
	if n < 2 {
		return "100%"
	}
	return num(float64(i)*100/float64(n-1)) + "%"
}

func animation(name string, kind Kind, dur time.Duration, t Transition) string {
	fill := "both"
	switch kind {
	case KindIdle:
		fill = "none"
	case KindExit:
		fill = "forwards"
	}
	return strings.Join([]string{name, seconds(dur), t.Ease.CSS(), seconds(t.Delay), t.iterations(), fill}, " ")
}

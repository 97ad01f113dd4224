package motion

// Registration is one animation description handed to a Recorder.
type Registration struct {
	Kind       Kind
	Frames     []State
	Transition Transition
}

// Recorder is a Driver that plays nothing. It keeps every registration so
// tests can inspect what a view asked for.
type Recorder struct {
	Registrations []Registration
}

func (r *Recorder) Entrance(from, to State, t Transition) string {
	r.record(KindEntrance, []State{from, to}, t)
	return ""
}

func (r *Recorder) Idle(frames []State, t Transition) string {
	r.record(KindIdle, frames, t)
	return ""
}

func (r *Recorder) Exit(from, to State, t Transition) string {
	r.record(KindExit, []State{from, to}, t)
	return ""
}

func (r *Recorder) record(kind Kind, frames []State, t Transition) {
	r.Registrations = append(r.Registrations, Registration{Kind: kind, Frames: frames, Transition: t})
}

// Count returns how many registrations of kind were recorded.
func (r *Recorder) Count(kind Kind) int {
	n := 0
	for _, reg := range r.Registrations {
		if reg.Kind == kind {
			n++
		}
	}
	return n
}

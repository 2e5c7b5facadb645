package object

// Window is the validity span [Min, Max] of a timeline entity, expressed in
// seconds relative to "now". Every tick shifts both bounds toward negative
// infinity; the entity is alive while Max >= 0. Age is never stored directly,
// it is always derived from the two bounds.
type Window struct {
	Min float64
	Max float64
}

// Idle ages the window by dt seconds.
func (w *Window) Idle(dt float64) {
	w.Min -= dt
	w.Max -= dt
}

// Alive reports whether the window has not yet fully passed.
func (w Window) Alive() bool {
	return w.Max >= 0
}

// Started reports whether the window has begun (Min <= 0).
func (w Window) Started() bool {
	return w.Min <= 0
}

// Duration is the total length of the window.
func (w Window) Duration() float64 {
	return w.Max - w.Min
}

// Elapsed is the time since the window opened. Negative before it starts.
func (w Window) Elapsed() float64 {
	return -w.Min
}

// Remaining is the time until the window closes.
func (w Window) Remaining() float64 {
	return w.Max
}

// Progress is the fraction of the window elapsed at t=0.
// Windows with zero duration report 1.
func (w Window) Progress() float64 {
	d := w.Duration()
	if d <= 0 {
		return 1
	}
	return -w.Min / d
}

// Envelope returns the triangular 0..1..0 envelope of the window sampled at
// time t: 0 outside [Min, Max], 1 at the midpoint.
func (w Window) Envelope(t float64) float64 {
	d := w.Duration()
	if d <= 0 || t < w.Min || t > w.Max {
		return 0
	}
	pos := (t - w.Min) / d
	return 1 - 2*abs(pos-0.5)
}

// Kill forces the window into the past so Alive reports false immediately.
func (w *Window) Kill() {
	w.Min = -2
	w.Max = -1
}

// Intersect returns the span shared by both windows. ok is false when the
// windows do not overlap in time (start >= end).
func (w Window) Intersect(o Window) (shared Window, ok bool) {
	shared = Window{Min: max(w.Min, o.Min), Max: min(w.Max, o.Max)}
	return shared, shared.Min < shared.Max
}

// Expiring reports whether aging the window by dt moves it from alive to dead.
func (w Window) Expiring(dt float64) bool {
	return w.Max >= 0 && w.Max-dt < 0
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

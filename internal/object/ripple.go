package object

// Ripple colors.
var (
	PopColor      = Color{R: 0, G: 0.5, B: 1, A: 0.2}
	MissColor     = Color{R: 1, G: 1, B: 1, A: 0.3}
	LifeLostColor = Color{R: 1, G: 0.2, B: 0.2, A: 0.6}
)

const (
	defaultRingWidth = 0.02
	popDuration      = 0.5
	missRadius       = 0.05
	missDuration     = 0.5
	lifeSlotRadius   = 0.04
	lifeSlotDuration = 1.0
)

// Ripple is a purely cosmetic echo: an expanding ring that fades out over its
// window. It never interacts with bubbles or input.
type Ripple struct {
	Window
	X, Y  float64 // Center
	R     float64 // Base radius, doubled by the end of the window
	Color Color
	Width float64 // Ring width
}

// NewRipple creates a ripple at (x,y) opening after delay and lasting duration seconds.
func NewRipple(x, y, r, delay, duration float64, c Color) *Ripple {
	return &Ripple{
		Window: Window{Min: delay, Max: delay + duration},
		X:      x,
		Y:      y,
		R:      r,
		Color:  c,
		Width:  defaultRingWidth,
	}
}

// NewPopRipple is the flash left behind by a popped bubble.
func NewPopRipple(x, y, r float64) *Ripple {
	return NewRipple(x, y, r, 0, popDuration, PopColor)
}

// NewMissRipple marks a tap that hit nothing.
func NewMissRipple(x, y float64) *Ripple {
	return NewRipple(x, y, missRadius, 0, missDuration, MissColor)
}

// NewLifeLostRipples returns the flashes for a bubble that expired at (x,y):
// a small immediate one and a larger one slightly delayed.
func NewLifeLostRipples(x, y, r float64) [2]*Ripple {
	return [2]*Ripple{
		NewRipple(x, y, r*0.5, 0, 0.4, LifeLostColor),
		NewRipple(x, y, r, 0.15, 0.6, LifeLostColor.WithAlpha(LifeLostColor.A/2)),
	}
}

// NewLifeSlotRipple marks the life indicator being removed.
func NewLifeSlotRipple(x, y float64) *Ripple {
	return NewRipple(x, y, lifeSlotRadius, 0, lifeSlotDuration, LifeLostColor.WithAlpha(0.9))
}

// Radius is the current ring radius.
func (r *Ripple) Radius() float64 {
	return r.R * (1 + r.Progress())
}

// Alpha is the current ring opacity, reaching zero at the end of the window.
func (r *Ripple) Alpha() float64 {
	return r.Color.A * (1 - r.Progress())
}

// Draw renders the ripple once its window has opened.
func (r *Ripple) Draw(rd Renderer) {
	if !r.Started() || !r.Alive() {
		return
	}
	rd.DrawRing(r.X, r.Y, r.Radius(), r.Width, r.Color.WithAlpha(r.Alpha()))
}

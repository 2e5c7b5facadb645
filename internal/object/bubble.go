package object

import (
	"math"

	"github.com/tomz197/bubblepop/internal/physics"
)

// LifetimePerRadius scales a fresh bubble's lifetime with its size.
const LifetimePerRadius = 20.0

// bubbleSharpness is the edge sharpness of a fully inflated bubble.
const bubbleSharpness = 10.0

// overlapSamples is how many interior time points Overlaps checks.
const overlapSamples = 4

// Tutorial bubble: covers the whole field and effectively never expires.
const (
	tutorialRadius   = 1.5
	tutorialLifetime = 1000.0
)

// Bubble is a target that inflates then deflates over its window.
type Bubble struct {
	Window
	X, Y float64 // Center
	R    float64 // Max radius, reached at the window midpoint
}

// NewBubble creates a bubble at (x,y) whose window opens now and lasts r*20 seconds.
func NewBubble(x, y, r float64) *Bubble {
	return &Bubble{
		Window: Window{Min: 0, Max: r * LifetimePerRadius},
		X:      x,
		Y:      y,
		R:      r,
	}
}

// NewTutorialBubble creates the oversized bubble shown before play starts.
func NewTutorialBubble() *Bubble {
	return &Bubble{
		Window: Window{Min: -tutorialLifetime, Max: tutorialLifetime},
		R:      tutorialRadius,
	}
}

// VisibleRadius maps an envelope value to a radius using an ease curve, so the
// bubble inflates quickly, slows near full size, then deflates symmetrically.
func (b *Bubble) VisibleRadius(a float64) float64 {
	a = physics.Clamp01(a)
	inv := 1 - a
	return b.R * math.Sqrt(1-inv*inv)
}

// CurrentRadius is the visible radius right now.
func (b *Bubble) CurrentRadius() float64 {
	return b.VisibleRadius(b.Envelope(0))
}

// RadiusAt is the visible radius at time t relative to now.
func (b *Bubble) RadiusAt(t float64) float64 {
	return b.VisibleRadius(b.Envelope(t))
}

// HitTest reports whether a tap at (x,y) lands on the bubble as currently drawn.
func (b *Bubble) HitTest(x, y float64) bool {
	if !b.Alive() {
		return false
	}
	return physics.PointInCircle(x, y, b.X, b.Y, b.CurrentRadius())
}

// Overlaps reports whether the two bubbles share screen space at any of a few
// sampled instants of their common lifetime. The check is approximate; it only
// keeps freshly spawned bubbles from visibly colliding.
func (b *Bubble) Overlaps(other *Bubble) bool {
	shared, ok := b.Intersect(other.Window)
	if !ok {
		return false
	}
	for i := 1; i <= overlapSamples; i++ {
		t := physics.Lerp(shared.Min, shared.Max, float64(i)/(overlapSamples+1))
		if physics.CirclesOverlap(b.X, b.Y, b.RadiusAt(t), other.X, other.Y, other.RadiusAt(t)) {
			return true
		}
	}
	return false
}

// Draw renders the bubble if its window is open.
func (b *Bubble) Draw(r Renderer) {
	if !b.Started() || !b.Alive() {
		return
	}
	a := b.Envelope(0)
	r.DrawCircle(b.X, b.Y, b.VisibleRadius(a), bubbleSharpness*a)
}

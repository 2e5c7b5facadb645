// Package object holds the timeline entities of the game (bubbles and ripples),
// the renderer contract they draw through, and the bubble spawner.
package object

// Color is an RGBA color with components in 0..1.
type Color struct {
	R, G, B, A float64
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Renderer is the drawing collaborator. Coordinates are normalized device
// coordinates, roughly [-1, 1] on both axes with +y pointing up.
type Renderer interface {
	// DrawCircle draws a filled soft-edged circle. Higher sharpness gives a
	// harder edge; zero sharpness draws nothing.
	DrawCircle(x, y, r, sharpness float64)

	// DrawRing draws a ring of the given width and color.
	DrawRing(x, y, r, width float64, c Color)
}

// Rand is the randomness source used for spawning. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Entity is anything living on the timeline.
type Entity interface {
	Idle(dt float64)
	Alive() bool
	Draw(r Renderer)
}

// FilterAlive drops dead entities in place, reusing the backing array.
func FilterAlive[E Entity](entities []E) []E {
	kept := entities[:0]
	for _, e := range entities {
		if e.Alive() {
			kept = append(kept, e)
		}
	}
	clear(entities[len(kept):])
	return kept
}

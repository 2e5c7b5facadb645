package game

import "github.com/tomz197/bubblepop/internal/object"

// TapResult is the outcome of a tap.
type TapResult int

const (
	TapIgnored TapResult = iota // Game is over
	TapHit
	TapMiss
)

func (r TapResult) String() string {
	switch r {
	case TapHit:
		return "hit"
	case TapMiss:
		return "miss"
	default:
		return "ignored"
	}
}

// Tap resolves a tap at normalized coordinates (x,y) against the bubbles as
// they are right now. At most one bubble is popped per tap.
func (s *State) Tap(x, y float64) TapResult {
	if s.Phase == PhaseDead {
		return TapIgnored
	}
	for _, b := range s.Bubbles {
		if b.HitTest(x, y) {
			s.pop(b)
			return TapHit
		}
	}
	s.Misses++
	s.addRipple(object.NewMissRipple(x, y))
	return TapMiss
}

func (s *State) pop(b *object.Bubble) {
	r := b.CurrentRadius()
	b.Kill()
	s.addRipple(object.NewPopRipple(b.X, b.Y, r))
	s.Points++

	if s.Phase == PhaseWaiting {
		s.Phase = PhasePlaying
		s.Misses = 0
		s.logger.Info("game started")
	}
}

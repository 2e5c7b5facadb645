package game

import (
	"math/rand"
	"testing"

	"github.com/tomz197/bubblepop/internal/object"
)

// fixedRand always returns the same value; 0.999 effectively disables spawning
// for small dt.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

// ready returns a bubble at (x,y) that is fully inflated right now.
func ready(x, y, r float64) *object.Bubble {
	return &object.Bubble{Window: object.Window{Min: -3, Max: 3}, X: x, Y: y, R: r}
}

func newTestState(opts ...Option) *State {
	return New(append([]Option{WithRand(fixedRand(0.999))}, opts...)...)
}

func TestNewState(t *testing.T) {
	s := New(WithRand(rand.New(rand.NewSource(1))))
	if s.Phase != PhaseWaiting {
		t.Fatalf("phase = %v, want waiting", s.Phase)
	}
	if s.Lives != 5 || s.Points != 0 || s.Misses != 0 {
		t.Fatalf("counters = lives %d points %d misses %d", s.Lives, s.Points, s.Misses)
	}
	if s.SpawnRate != 1.5 {
		t.Fatalf("spawn rate = %v, want 1.5", s.SpawnRate)
	}
	if len(s.Bubbles) != 1 {
		t.Fatalf("expected the tutorial bubble only, got %d bubbles", len(s.Bubbles))
	}
	tut := s.Bubbles[0]
	if tut.Min != -1000 || tut.Max != 1000 {
		t.Fatalf("tutorial window = [%v, %v]", tut.Min, tut.Max)
	}
}

func TestNewStateWithParams(t *testing.T) {
	p := DefaultParams()
	p.InitialLives = 2
	p.InitialSpawnRate = 3
	s := newTestState(WithParams(p))
	if s.Lives != 2 || s.SpawnRate != 3 {
		t.Fatalf("params not applied: lives %d rate %v", s.Lives, s.SpawnRate)
	}
	if s.Params() != p {
		t.Fatalf("Params() = %+v, want %+v", s.Params(), p)
	}
}

func TestLifeSlots(t *testing.T) {
	x0, y0 := LifeSlot(0)
	x1, y1 := LifeSlot(1)
	if y0 != y1 || x1 <= x0 {
		t.Fatalf("life slots should run left to right on one row: (%v,%v) (%v,%v)", x0, y0, x1, y1)
	}
}

func TestAccuracy(t *testing.T) {
	tests := []struct {
		hits, misses, want int
	}{
		{0, 0, 0},
		{3, 2, 60},
		{1, 2, 33},
		{5, 0, 100},
		{0, 4, 0},
	}
	for _, tc := range tests {
		if got := accuracy(tc.hits, tc.misses); got != tc.want {
			t.Errorf("accuracy(%d, %d) = %d, want %d", tc.hits, tc.misses, got, tc.want)
		}
	}
}

func TestSummaryString(t *testing.T) {
	sum := newSummary(3, 2, 12.34)
	want := "Hits: 3  Misses: 2  Accuracy: 60%  Time: 12.3s"
	if got := sum.String(); got != want {
		t.Fatalf("Summary = %q, want %q", got, want)
	}
}

func TestPhaseString(t *testing.T) {
	for p, want := range map[Phase]string{
		PhaseWaiting: "waiting",
		PhasePlaying: "playing",
		PhaseDead:    "dead",
		Phase(42):    "unknown",
	} {
		if got := p.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", int(p), got, want)
		}
	}
}

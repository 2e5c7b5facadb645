package object

import (
	"math/rand"
	"testing"
)

type seqRand struct {
	vals []float64
	i    int
}

func (s *seqRand) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func TestRandomBubbleRanges(t *testing.T) {
	lo := RandomBubble(&seqRand{vals: []float64{0, 0, 0}})
	if !approx(lo.X, -SpawnExtent) || !approx(lo.Y, -SpawnExtent) || !approx(lo.R, SpawnMinRadius) {
		t.Fatalf("low corner bubble = %+v", lo)
	}
	hi := RandomBubble(&seqRand{vals: []float64{1, 1, 1}})
	if !approx(hi.X, SpawnExtent) || !approx(hi.Y, SpawnExtent) || !approx(hi.R, SpawnMaxRadius) {
		t.Fatalf("high corner bubble = %+v", hi)
	}
	if hi.Min != 0 || !approx(hi.Max, hi.R*LifetimePerRadius) {
		t.Fatalf("spawned window = [%v, %v]", hi.Min, hi.Max)
	}
}

func TestTrySpawnBubbleNeverOverlaps(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		var existing []*Bubble
		for i := 0; i < rng.Intn(6); i++ {
			b := RandomBubble(rng)
			b.Idle(rng.Float64() * b.Max)
			existing = append(existing, b)
		}
		b, ok := TrySpawnBubble(rng, existing, 10)
		if !ok {
			continue
		}
		for _, e := range existing {
			if b.Overlaps(e) {
				t.Fatalf("trial %d: spawned %+v overlaps existing %+v", trial, b, e)
			}
		}
	}
}

func TestTrySpawnBubbleGivesUp(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	blocker := NewTutorialBubble()
	if b, ok := TrySpawnBubble(rng, []*Bubble{blocker}, 10); ok || b != nil {
		t.Fatalf("expected no placement next to a field-covering bubble, got %+v", b)
	}
}

func TestTrySpawnBubbleIgnoresDeadBubbles(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	blocker := NewTutorialBubble()
	blocker.Kill()
	if _, ok := TrySpawnBubble(rng, []*Bubble{blocker}, 1); !ok {
		t.Fatal("dead bubbles must not block placement")
	}
}

func TestTrySpawnBubbleRetries(t *testing.T) {
	// First candidate lands on the existing bubble, second is far away.
	existing := []*Bubble{NewBubble(-0.9, -0.9, 0.3)}
	rng := &seqRand{vals: []float64{0, 0, 1, 1, 1, 1}}
	b, ok := TrySpawnBubble(rng, existing, 2)
	if !ok {
		t.Fatal("expected second attempt to succeed")
	}
	if !approx(b.X, SpawnExtent) || !approx(b.Y, SpawnExtent) {
		t.Fatalf("expected the far candidate, got %+v", b)
	}
	rng = &seqRand{vals: []float64{0, 0, 1}}
	if _, ok := TrySpawnBubble(rng, existing, 1); ok {
		t.Fatal("single attempt on an occupied spot should fail")
	}
}

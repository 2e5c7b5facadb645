package object

// Spawn area and size range for new bubbles.
const (
	SpawnExtent    = 0.9
	SpawnMinRadius = 0.2
	SpawnMaxRadius = 0.3
)

// RandomBubble draws a fresh bubble with a uniform position in the spawn area
// and a uniform radius in the spawn size range.
func RandomBubble(rng Rand) *Bubble {
	x := (rng.Float64()*2 - 1) * SpawnExtent
	y := (rng.Float64()*2 - 1) * SpawnExtent
	r := SpawnMinRadius + rng.Float64()*(SpawnMaxRadius-SpawnMinRadius)
	return NewBubble(x, y, r)
}

// TrySpawnBubble proposes up to attempts random bubbles and returns the first
// one that does not overlap any alive bubble in existing. It reports false when
// every attempt collided; callers treat that as a skipped spawn.
func TrySpawnBubble(rng Rand, existing []*Bubble, attempts int) (*Bubble, bool) {
	for i := 0; i < attempts; i++ {
		candidate := RandomBubble(rng)
		if !overlapsAny(candidate, existing) {
			return candidate, true
		}
	}
	return nil, false
}

func overlapsAny(candidate *Bubble, existing []*Bubble) bool {
	for _, b := range existing {
		if b.Alive() && candidate.Overlaps(b) {
			return true
		}
	}
	return false
}

package game

import (
	"fmt"
	"time"
)

// Summary is the end-of-game report, computed once when the game ends.
type Summary struct {
	Hits     int
	Misses   int
	Accuracy int // Percent, rounded down
	Elapsed  time.Duration
}

// accuracy is floor(100*hits/(hits+misses)), or 0 when there were no taps.
func accuracy(hits, misses int) int {
	total := hits + misses
	if total <= 0 {
		return 0
	}
	return 100 * hits / total
}

func newSummary(hits, misses int, elapsed float64) Summary {
	return Summary{
		Hits:     hits,
		Misses:   misses,
		Accuracy: accuracy(hits, misses),
		Elapsed:  time.Duration(elapsed * float64(time.Second)).Round(100 * time.Millisecond),
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("Hits: %d  Misses: %d  Accuracy: %d%%  Time: %s",
		s.Hits, s.Misses, s.Accuracy, s.Elapsed)
}

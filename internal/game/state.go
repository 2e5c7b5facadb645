// Package game implements the bubble game rules: the phase state machine,
// scoring and lives, per-tick update order and tap routing.
package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/bubblepop/internal/object"
)

// Life indicator slots along the top-left edge, in normalized coordinates.
const (
	lifeSlotX       = -0.92
	lifeSlotY       = 0.9
	lifeSlotSpacing = 0.08
)

// State is the complete state of one game. It is not safe for concurrent use;
// ticks and taps must come from the same goroutine.
type State struct {
	Phase      Phase
	Lives      int
	Points     int
	Misses     int
	SpawnRate  float64 // Expected spawns per second
	DeathTimer float64 // Seconds spent with no lives left
	Elapsed    float64 // Seconds of play, starts with the first hit

	Bubbles []*object.Bubble
	Ripples []*object.Ripple

	// Summary is set once, when the game enters PhaseDead.
	Summary *Summary

	params Params
	rng    object.Rand
	logger *log.Logger
}

// Option configures a new State.
type Option func(*State)

// WithParams overrides the default rules.
func WithParams(p Params) Option {
	return func(s *State) {
		s.params = p
	}
}

// WithRand sets the randomness source, allowing seeded deterministic games.
func WithRand(rng object.Rand) Option {
	return func(s *State) {
		s.rng = rng
	}
}

// WithLogger sets the logger for phase changes and soft failures.
func WithLogger(l *log.Logger) Option {
	return func(s *State) {
		s.logger = l
	}
}

// New creates a game in PhaseWaiting with the tutorial bubble on screen.
func New(opts ...Option) *State {
	s := &State{
		params: DefaultParams(),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Phase = PhaseWaiting
	s.Lives = s.params.InitialLives
	s.SpawnRate = s.params.InitialSpawnRate
	s.Bubbles = []*object.Bubble{object.NewTutorialBubble()}
	return s
}

// Params returns the rules this game runs with.
func (s *State) Params() Params {
	return s.params
}

// Accuracy is the percentage of taps that hit, rounded down.
func (s *State) Accuracy() int {
	return accuracy(s.Points, s.Misses)
}

// LifeSlot returns the HUD position of life indicator i (0-based).
func LifeSlot(i int) (x, y float64) {
	return lifeSlotX + float64(i)*lifeSlotSpacing, lifeSlotY
}

// Draw renders all bubbles, then all ripples.
func (s *State) Draw(r object.Renderer) {
	for _, b := range s.Bubbles {
		b.Draw(r)
	}
	for _, rp := range s.Ripples {
		rp.Draw(r)
	}
}

func (s *State) addRipple(r *object.Ripple) {
	s.Ripples = append(s.Ripples, r)
}

// end freezes the game and records the summary.
func (s *State) end() {
	s.Phase = PhaseDead
	sum := newSummary(s.Points, s.Misses, s.Elapsed)
	s.Summary = &sum
	s.logger.Info("game over",
		"hits", sum.Hits,
		"misses", sum.Misses,
		"accuracy", sum.Accuracy,
		"elapsed", sum.Elapsed,
	)
}

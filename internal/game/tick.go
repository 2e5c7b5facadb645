package game

import "github.com/tomz197/bubblepop/internal/object"

// Tick advances the game by dt seconds. The order is fixed: draw the current
// frame, age entities (charging a life for each bubble that expires), advance
// the clock and phase, maybe spawn, then drop dead entities. r may be nil when
// nothing needs to be drawn.
func (s *State) Tick(dt float64, r object.Renderer) {
	if r != nil {
		s.Draw(r)
	}

	// Only time spent with no lives at the start of the tick counts towards
	// the death debounce, so a single long tick cannot end the game.
	wasOut := s.Lives <= 0
	if s.Phase != PhaseDead {
		s.idle(dt)
	}

	if s.Phase == PhasePlaying {
		s.advance(dt, wasOut)
	}

	if s.Phase == PhasePlaying {
		s.maybeSpawn(dt)
	}

	s.Bubbles = object.FilterAlive(s.Bubbles)
	s.Ripples = object.FilterAlive(s.Ripples)
}

// idle ages ripples before bubbles so flashes spawned by an expiring bubble
// start fresh on the next frame.
func (s *State) idle(dt float64) {
	for _, r := range s.Ripples {
		r.Idle(dt)
	}
	for _, b := range s.Bubbles {
		if b.Expiring(dt) {
			s.loseLife(b)
		}
		b.Idle(dt)
	}
}

// loseLife is the only path that takes a life: a bubble dying of old age.
func (s *State) loseLife(b *object.Bubble) {
	for _, r := range object.NewLifeLostRipples(b.X, b.Y, b.R) {
		s.addRipple(r)
	}
	if s.Lives <= 0 {
		return
	}
	x, y := LifeSlot(s.Lives - 1)
	s.addRipple(object.NewLifeSlotRipple(x, y))
	s.Lives--
	s.logger.Debug("life lost", "lives", s.Lives)
}

// advance runs the play clock: the spawn rate ramps up and, once no lives are
// left for longer than the debounce window, the game ends. wasOut reports
// whether the tick started with no lives.
func (s *State) advance(dt float64, wasOut bool) {
	s.Elapsed += dt
	s.SpawnRate += dt * s.params.SpawnRamp

	if s.Lives > 0 {
		s.DeathTimer = 0
		return
	}
	if !wasOut {
		return
	}
	s.DeathTimer += dt
	if s.DeathTimer > s.params.DeathDebounce {
		s.end()
	}
}

// maybeSpawn adds a bubble with probability dt*SpawnRate.
func (s *State) maybeSpawn(dt float64) {
	if s.rng.Float64() >= dt*s.SpawnRate {
		return
	}
	b, ok := object.TrySpawnBubble(s.rng, s.Bubbles, s.params.SpawnAttempts)
	if !ok {
		s.logger.Debug("no room for a new bubble",
			"attempts", s.params.SpawnAttempts,
			"bubbles", len(s.Bubbles),
		)
		return
	}
	s.Bubbles = append(s.Bubbles, b)
}

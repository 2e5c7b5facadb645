package game

import (
	"math"

	"github.com/tomz197/bubblepop/internal/config"
)

// Params holds the tunable rules of a game.
type Params struct {
	InitialLives     int     // Lives at game start
	InitialSpawnRate float64 // Expected spawns per second when play begins
	SpawnRamp        float64 // Spawn-rate increase per second of play
	SpawnAttempts    int     // Placement retries per spawn before giving up
	DeathDebounce    float64 // Seconds lives must stay at zero before the game ends
}

// DefaultParams returns the standard rules.
func DefaultParams() Params {
	return Params{
		InitialLives:     5,
		InitialSpawnRate: 1.5,
		SpawnRamp:        1.0 / 40,
		SpawnAttempts:    10,
		DeathDebounce:    0.3,
	}
}

// Environment variables read by ParamsFromEnv.
const (
	EnvLives         = "BUBBLES_LIVES"
	EnvSpawnRate     = "BUBBLES_SPAWN_RATE"
	EnvSpawnRamp     = "BUBBLES_SPAWN_RAMP"
	EnvSpawnAttempts = "BUBBLES_SPAWN_ATTEMPTS"
	EnvDeathDebounce = "BUBBLES_DEATH_DEBOUNCE"
)

// ParamsFromEnv starts from DefaultParams, applies any overrides found in the
// environment and clamps the result.
func ParamsFromEnv() Params {
	p := DefaultParams()
	p.InitialLives = config.GetEnvInt(EnvLives, p.InitialLives)
	p.InitialSpawnRate = config.GetEnvFloat(EnvSpawnRate, p.InitialSpawnRate)
	p.SpawnRamp = config.GetEnvFloat(EnvSpawnRamp, p.SpawnRamp)
	p.SpawnAttempts = config.GetEnvInt(EnvSpawnAttempts, p.SpawnAttempts)
	p.DeathDebounce = config.GetEnvFloat(EnvDeathDebounce, p.DeathDebounce)
	ClampParams(&p)
	return p
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

func clampFloat(v, minV, maxV float64) float64 {
	if math.IsNaN(v) {
		return minV
	}
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

// ClampParams enforces hard bounds so user-provided values cannot break the
// simulation (e.g. a zero spawn rate or a negative debounce).
func ClampParams(p *Params) {
	if p == nil {
		return
	}
	p.InitialLives = clampInt(p.InitialLives, 1, 20)
	p.InitialSpawnRate = clampFloat(p.InitialSpawnRate, 0.1, 20)
	p.SpawnRamp = clampFloat(p.SpawnRamp, 0, 1)
	p.SpawnAttempts = clampInt(p.SpawnAttempts, 1, 100)
	p.DeathDebounce = clampFloat(p.DeathDebounce, 0, 5)
}

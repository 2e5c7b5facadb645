// Package config centralizes the session-level tunables: frame pacing,
// terminal limits and overlay timings. Game rules live in game.Params.
package config

import "time"

// Frame pacing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Max render resolution. Larger terminals get a centered, bordered playfield.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 50
)

// Inactivity (SSH sessions only)
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// HUD
const (
	LifeIndicatorRadius    = 0.025
	LifeIndicatorSharpness = 4.0
	SummarySlideSeconds    = 0.6
)

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package anim

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// =============================================================================
// SPRING ANIMATOR
// =============================================================================

// Spring rest tolerances. Under these the value is treated as settled.
const (
	springRestDistance = 0.001
	springRestVelocity = 0.001
)

// Spring animates a value with damped spring physics instead of a fixed
// duration. Unlike Animator it advances one fixed timestep per Tick, so the
// host calls Tick once per rendered frame at the FPS the spring was built
// for.
type Spring struct {
	spring harmonica.Spring

	pos    float64
	vel    float64
	target float64
}

// NewSpring creates a spring stepped at the given frame rate. Frequency
// controls how fast the value approaches the target, damping how much it
// oscillates on arrival (1.0 = no overshoot).
func NewSpring(fps int, frequency, damping float64) *Spring {
	if fps <= 0 {
		fps = 60
	}
	return &Spring{
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

// SetTarget points the spring at a new equilibrium value.
func (s *Spring) SetTarget(v float64) {
	s.target = v
}

// Target returns the current equilibrium value.
func (s *Spring) Target() float64 {
	return s.target
}

// Jump moves the value to v immediately and kills its velocity.
func (s *Spring) Jump(v float64) {
	s.pos = v
	s.vel = 0
	s.target = v
}

// Tick advances the spring one frame and returns the new position.
func (s *Spring) Tick() float64 {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	return s.pos
}

// Position returns the position as of the last Tick or Jump.
func (s *Spring) Position() float64 {
	return s.pos
}

// AtRest reports whether the spring has effectively settled on its target.
func (s *Spring) AtRest() bool {
	return math.Abs(s.pos-s.target) < springRestDistance &&
		math.Abs(s.vel) < springRestVelocity
}

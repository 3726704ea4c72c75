// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package anim

import (
	"math"
	"testing"
)

func TestSpringConvergesToTarget(t *testing.T) {
	s := NewSpring(60, 6.0, 1.0)
	s.SetTarget(1)

	for i := 0; i < 600 && !s.AtRest(); i++ {
		s.Tick()
	}

	if !s.AtRest() {
		t.Fatal("spring never came to rest")
	}
	if math.Abs(s.Position()-1) > 0.01 {
		t.Errorf("rest position = %v, want ~1", s.Position())
	}
}

func TestSpringJump(t *testing.T) {
	s := NewSpring(60, 6.0, 1.0)
	s.SetTarget(10)
	s.Tick()
	s.Tick()

	s.Jump(10)
	if s.Position() != 10 || !s.AtRest() {
		t.Errorf("after Jump: position=%v atRest=%v, want 10 at rest", s.Position(), s.AtRest())
	}
}

func TestSpringDefaultsBadFPS(t *testing.T) {
	// A non-positive FPS falls back to 60 rather than producing a zero
	// timestep spring that never moves.
	s := NewSpring(0, 6.0, 1.0)
	s.SetTarget(1)
	s.Tick()
	if s.Position() == 0 {
		t.Error("spring with defaulted FPS did not move")
	}
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package anim provides the interpolation primitives behind ring-world's
// motion: an easing function library, a duration-based value animator, a
// circular variant that always takes the shortest arc around a ring, and a
// spring animator for motion with momentum.
//
// Animators are pure state machines over caller-supplied time. They never
// read the wall clock; the host passes the current instant (usually from a
// timing.Clock) into every Update call, so the same sequence of calls always
// produces the same values.
//
// # Typical Use
//
//	a := anim.NewAnimator(0)
//	a.SetDuration(150 * time.Millisecond)
//	// each frame:
//	pos := a.Update(target, clock.Now())
package anim

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package anim

import "time"

// =============================================================================
// VALUE ANIMATOR
// =============================================================================

// DefaultDuration is the transition length used by animators unless
// configured otherwise.
const DefaultDuration = 150 * time.Millisecond

// Animator drives a scalar toward a target over a fixed duration with an
// easing curve. Retargeting mid-flight restarts the transition from the
// current interpolated value, so motion never jumps.
//
// Once the duration elapses the value settles exactly on the target and
// further Update calls are no-ops until the target changes again.
type Animator struct {
	duration time.Duration
	easing   EasingFunc

	start     float64
	target    float64
	current   float64
	startedAt time.Time
	animating bool
}

// NewAnimator creates an animator resting at the given initial value, with
// the default duration and cubic-out easing.
func NewAnimator(initial float64) *Animator {
	return &Animator{
		duration: DefaultDuration,
		easing:   EaseOutCubic,
		start:    initial,
		target:   initial,
		current:  initial,
	}
}

// SetDuration changes the transition length. A non-positive duration makes
// every retarget settle immediately.
func (a *Animator) SetDuration(d time.Duration) {
	a.duration = d
}

// Duration returns the configured transition length.
func (a *Animator) Duration() time.Duration {
	return a.duration
}

// SetEasing changes the easing curve. Nil is ignored.
func (a *Animator) SetEasing(fn EasingFunc) {
	if fn != nil {
		a.easing = fn
	}
}

// Update retargets the animator if target changed, advances the transition
// to the given instant, and returns the current value.
func (a *Animator) Update(target float64, now time.Time) float64 {
	if target != a.target {
		a.start = a.current
		a.target = target
		a.startedAt = now
		a.animating = a.current != target
	}
	if !a.animating {
		return a.current
	}

	elapsed := now.Sub(a.startedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	if a.duration <= 0 || elapsed >= a.duration {
		a.current = a.target
		a.animating = false
		return a.current
	}

	t := float64(elapsed) / float64(a.duration)
	a.current = a.start + (a.target-a.start)*a.easing(t)
	return a.current
}

// Jump moves the value to v immediately, cancelling any transition.
func (a *Animator) Jump(v float64) {
	a.start = v
	a.target = v
	a.current = v
	a.animating = false
}

// Current returns the value as of the last Update or Jump.
func (a *Animator) Current() float64 {
	return a.current
}

// Target returns the value the animator is heading toward.
func (a *Animator) Target() float64 {
	return a.target
}

// Settled reports whether the value has reached its target.
func (a *Animator) Settled() bool {
	return !a.animating
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package anim

import (
	"fmt"
	"math"
	"time"
)

// =============================================================================
// RING ANIMATOR
// =============================================================================

// RingAnimator animates a position over the circular domain [0, count). It
// specializes Animator with shortest-arc retargeting: moving from step 4 to
// step 0 on a five-step ring travels forward through the seam (distance 1)
// instead of backward across the whole ring (distance 4).
//
// Positions returned by Update and Position are always normalized into
// [0, count). On settle the position snaps to the exact target step, so a
// settled ring never carries wrap drift into the next move.
type RingAnimator struct {
	anim  *Animator
	count int

	targetIdx int
	unwrapped float64
}

// NewRingAnimator creates a ring animator over count steps, resting at the
// initial step. The count must be at least 1. Positions default to the
// smoothstep easing.
func NewRingAnimator(count, initial int) (*RingAnimator, error) {
	if count < 1 {
		return nil, fmt.Errorf("anim: ring animator needs at least one step, got %d", count)
	}
	idx := wrapIndex(initial, count)
	r := &RingAnimator{
		anim:      NewAnimator(float64(idx)),
		count:     count,
		targetIdx: idx,
		unwrapped: float64(idx),
	}
	r.anim.SetEasing(EaseSmoothStep)
	return r, nil
}

// SetDuration changes the transition length for each step change.
func (r *RingAnimator) SetDuration(d time.Duration) {
	r.anim.SetDuration(d)
}

// SetEasing changes the easing curve. Nil is ignored.
func (r *RingAnimator) SetEasing(fn EasingFunc) {
	r.anim.SetEasing(fn)
}

// Count returns the number of steps on the ring.
func (r *RingAnimator) Count() int {
	return r.count
}

// TargetIndex returns the step the animator is heading toward.
func (r *RingAnimator) TargetIndex() int {
	return r.targetIdx
}

// Update animates toward the given step and returns the position at the
// given instant, normalized into [0, count). Out-of-range steps are wrapped.
func (r *RingAnimator) Update(targetIndex int, now time.Time) float64 {
	idx := wrapIndex(targetIndex, r.count)
	if idx != r.targetIdx {
		// Rewrite the move as the shortest signed arc, then animate in
		// unwrapped space so the interpolation itself stays linear.
		n := float64(r.count)
		cur := r.anim.Current()
		delta := float64(idx) - wrapPosition(cur, n)
		if delta > n/2 {
			delta -= n
		} else if delta < -n/2 {
			delta += n
		}
		r.unwrapped = cur + delta
		r.targetIdx = idx
	}

	pos := r.anim.Update(r.unwrapped, now)
	if r.anim.Settled() {
		snapped := wrapPosition(pos, float64(r.count))
		r.anim.Jump(snapped)
		r.unwrapped = snapped
		return snapped
	}
	return wrapPosition(pos, float64(r.count))
}

// Position returns the last computed position, normalized into [0, count).
func (r *RingAnimator) Position() float64 {
	return wrapPosition(r.anim.Current(), float64(r.count))
}

// Settled reports whether the position has reached the target step.
func (r *RingAnimator) Settled() bool {
	return r.anim.Settled()
}

// Snap moves instantly to the given step without animating.
func (r *RingAnimator) Snap(index int) {
	idx := wrapIndex(index, r.count)
	r.targetIdx = idx
	r.unwrapped = float64(idx)
	r.anim.Jump(float64(idx))
}

// wrapPosition normalizes a continuous position into [0, n).
func wrapPosition(v, n float64) float64 {
	m := math.Mod(v, n)
	if m < 0 {
		m += n
	}
	return m
}

// wrapIndex normalizes a step index into [0, n).
func wrapIndex(i, n int) int {
	return ((i % n) + n) % n
}

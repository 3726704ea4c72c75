// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package anim

import (
	"math"
	"testing"
	"time"
)

func animEpoch() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestAnimatorDefaults(t *testing.T) {
	a := NewAnimator(3)

	if a.Duration() != DefaultDuration {
		t.Errorf("Duration() = %v, want %v", a.Duration(), DefaultDuration)
	}
	if a.Current() != 3 {
		t.Errorf("Current() = %v, want 3", a.Current())
	}
	if !a.Settled() {
		t.Error("fresh animator is not settled")
	}
}

func TestAnimatorInterpolates(t *testing.T) {
	start := animEpoch()
	a := NewAnimator(0)
	a.SetEasing(EaseLinear)

	a.Update(10, start)
	got := a.Update(10, start.Add(75*time.Millisecond))
	if math.Abs(got-5) > 1e-9 {
		t.Errorf("value at half duration = %v, want 5", got)
	}
	if a.Settled() {
		t.Error("animator settled at half duration")
	}
}

func TestAnimatorSettlesExactly(t *testing.T) {
	start := animEpoch()
	a := NewAnimator(0)

	a.Update(7, start)
	got := a.Update(7, start.Add(DefaultDuration))
	if got != 7 {
		t.Errorf("value at full duration = %v, want exactly 7", got)
	}
	if !a.Settled() {
		t.Error("animator not settled at full duration")
	}

	// Further updates with the same target are no-ops.
	got = a.Update(7, start.Add(time.Hour))
	if got != 7 {
		t.Errorf("value after settle = %v, want exactly 7", got)
	}
	if !a.Settled() {
		t.Error("animator unsettled by post-settle update")
	}
}

func TestAnimatorRetargetCapturesCurrentValue(t *testing.T) {
	start := animEpoch()
	a := NewAnimator(0)
	a.SetEasing(EaseLinear)

	a.Update(10, start)
	mid := start.Add(75 * time.Millisecond)
	a.Update(10, mid) // value is now 5

	// Retarget mid-flight: the new transition starts from 5, not from 0 or 10.
	a.Update(20, mid)
	got := a.Update(20, mid.Add(75*time.Millisecond))
	want := 5 + (20-5)*0.5
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("value at half of retargeted transition = %v, want %v", got, want)
	}

	got = a.Update(20, mid.Add(DefaultDuration))
	if got != 20 {
		t.Errorf("retargeted transition settled at %v, want exactly 20", got)
	}
}

func TestAnimatorRetargetToCurrentValueSettles(t *testing.T) {
	start := animEpoch()
	a := NewAnimator(5)

	a.Update(9, start)
	a.Update(9, start.Add(DefaultDuration))

	// Asking for the value it already has should not start a transition.
	got := a.Update(9, start.Add(DefaultDuration))
	if got != 9 || !a.Settled() {
		t.Errorf("Update to current value: got %v settled=%v, want 9 settled", got, a.Settled())
	}
}

func TestAnimatorZeroDurationSnaps(t *testing.T) {
	start := animEpoch()
	a := NewAnimator(0)
	a.SetDuration(0)

	got := a.Update(42, start)
	if got != 42 || !a.Settled() {
		t.Errorf("zero-duration update: got %v settled=%v, want 42 settled", got, a.Settled())
	}
}

func TestAnimatorClampsEarlyClock(t *testing.T) {
	start := animEpoch()
	a := NewAnimator(0)
	a.SetEasing(EaseLinear)

	a.Update(10, start)
	// A clock instant before the transition start reads as progress zero.
	got := a.Update(10, start.Add(-time.Second))
	if got != 0 {
		t.Errorf("value before transition start = %v, want 0", got)
	}
}

func TestAnimatorJump(t *testing.T) {
	start := animEpoch()
	a := NewAnimator(0)

	a.Update(10, start)
	a.Jump(4)

	if a.Current() != 4 || a.Target() != 4 || !a.Settled() {
		t.Errorf("after Jump: current=%v target=%v settled=%v, want 4/4/settled",
			a.Current(), a.Target(), a.Settled())
	}
}

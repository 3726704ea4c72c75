// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package timing provides the time sources and timer scheduling used by the
// animation and input layers.
//
// Components never call time.Now or time.AfterFunc directly. They read the
// current time from an injected Clock and arm deadlines on an explicit
// TimerQueue that the host advances from its frame loop. Tests substitute a
// FakeClock and advance it by hand, which makes every timing-sensitive path
// reproducible without sleeping.
package timing

import "time"

// =============================================================================
// CLOCK
// =============================================================================

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. This is the Clock used outside of tests.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FakeClock is a hand-advanced Clock for deterministic tests.
//
// FakeClock is not safe for concurrent use; the animation and input layers
// run on a single goroutine and their tests do too.
type FakeClock struct {
	now time.Time
}

// NewFakeClock creates a FakeClock starting at the given instant.
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

// Now returns the clock's current instant.
func (c *FakeClock) Now() time.Time {
	return c.now
}

// Set moves the clock to an absolute instant.
func (c *FakeClock) Set(t time.Time) {
	c.now = t
}

// Advance moves the clock forward by d and returns the new instant.
func (c *FakeClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package timing

import (
	"testing"
	"time"
)

func testEpoch() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestFakeClockAdvance(t *testing.T) {
	start := testEpoch()
	clock := NewFakeClock(start)

	if got := clock.Now(); !got.Equal(start) {
		t.Errorf("Now() = %v, want %v", got, start)
	}

	got := clock.Advance(150 * time.Millisecond)
	want := start.Add(150 * time.Millisecond)
	if !got.Equal(want) {
		t.Errorf("Advance() = %v, want %v", got, want)
	}
	if !clock.Now().Equal(want) {
		t.Errorf("Now() after Advance = %v, want %v", clock.Now(), want)
	}

	clock.Set(start)
	if !clock.Now().Equal(start) {
		t.Errorf("Now() after Set = %v, want %v", clock.Now(), start)
	}
}

func TestTimerQueueFiresInDeadlineOrder(t *testing.T) {
	start := testEpoch()
	q := NewTimerQueue()

	var order []string
	q.Schedule(start.Add(300*time.Millisecond), func(time.Time) { order = append(order, "c") })
	q.Schedule(start.Add(100*time.Millisecond), func(time.Time) { order = append(order, "a") })
	q.Schedule(start.Add(200*time.Millisecond), func(time.Time) { order = append(order, "b") })

	fired := q.Advance(start.Add(300 * time.Millisecond))
	if fired != 3 {
		t.Fatalf("Advance() fired %d timers, want 3", fired)
	}

	want := []string{"a", "b", "c"}
	for i, name := range want {
		if order[i] != name {
			t.Errorf("firing order[%d] = %q, want %q", i, order[i], name)
		}
	}
}

func TestTimerQueueDoesNotFireEarly(t *testing.T) {
	start := testEpoch()
	q := NewTimerQueue()

	called := false
	q.Schedule(start.Add(250*time.Millisecond), func(time.Time) { called = true })

	if fired := q.Advance(start.Add(249 * time.Millisecond)); fired != 0 {
		t.Errorf("Advance before deadline fired %d timers, want 0", fired)
	}
	if called {
		t.Error("callback ran before its deadline")
	}

	// Boundary: a timer due exactly at now fires.
	if fired := q.Advance(start.Add(250 * time.Millisecond)); fired != 1 {
		t.Errorf("Advance at deadline fired %d timers, want 1", fired)
	}
	if !called {
		t.Error("callback did not run at its deadline")
	}
}

func TestTimerStopPreventsFiring(t *testing.T) {
	start := testEpoch()
	q := NewTimerQueue()

	called := false
	timer := q.Schedule(start.Add(100*time.Millisecond), func(time.Time) { called = true })
	timer.Stop()

	if q.Pending() != 0 {
		t.Errorf("Pending() = %d after Stop, want 0", q.Pending())
	}
	q.Advance(start.Add(time.Second))
	if called {
		t.Error("stopped timer fired")
	}
	if !timer.Stopped() {
		t.Error("Stopped() = false after Stop")
	}
}

func TestTimerQueueEqualDeadlinesKeepInsertionOrder(t *testing.T) {
	start := testEpoch()
	at := start.Add(50 * time.Millisecond)
	q := NewTimerQueue()

	var order []int
	for i := 0; i < 4; i++ {
		i := i
		q.Schedule(at, func(time.Time) { order = append(order, i) })
	}
	q.Advance(at)

	for i, got := range order {
		if got != i {
			t.Fatalf("order = %v, want 0..3 in insertion order", order)
		}
	}
}

func TestTimerQueueRescheduleFromCallback(t *testing.T) {
	start := testEpoch()
	q := NewTimerQueue()

	var secondFired bool
	q.Schedule(start.Add(100*time.Millisecond), func(now time.Time) {
		q.Schedule(now.Add(100*time.Millisecond), func(time.Time) { secondFired = true })
	})

	q.Advance(start.Add(100 * time.Millisecond))
	if secondFired {
		t.Error("rescheduled timer fired before its own deadline")
	}
	if q.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", q.Pending())
	}

	q.Advance(start.Add(200 * time.Millisecond))
	if !secondFired {
		t.Error("rescheduled timer never fired")
	}
}

func TestTimerQueueNextDeadline(t *testing.T) {
	start := testEpoch()
	q := NewTimerQueue()

	if _, ok := q.NextDeadline(); ok {
		t.Error("NextDeadline() reported a deadline on an empty queue")
	}

	q.Schedule(start.Add(400*time.Millisecond), func(time.Time) {})
	earliest := q.Schedule(start.Add(100*time.Millisecond), func(time.Time) {})

	at, ok := q.NextDeadline()
	if !ok || !at.Equal(start.Add(100*time.Millisecond)) {
		t.Errorf("NextDeadline() = %v, %v; want %v, true", at, ok, start.Add(100*time.Millisecond))
	}

	earliest.Stop()
	at, ok = q.NextDeadline()
	if !ok || !at.Equal(start.Add(400*time.Millisecond)) {
		t.Errorf("NextDeadline() after Stop = %v, %v; want %v, true", at, ok, start.Add(400*time.Millisecond))
	}
}

func TestTimerQueueClose(t *testing.T) {
	start := testEpoch()
	q := NewTimerQueue()

	called := false
	q.Schedule(start.Add(10*time.Millisecond), func(time.Time) { called = true })
	q.Close()

	if q.Pending() != 0 {
		t.Errorf("Pending() = %d after Close, want 0", q.Pending())
	}
	if fired := q.Advance(start.Add(time.Hour)); fired != 0 {
		t.Errorf("Advance after Close fired %d timers, want 0", fired)
	}
	if called {
		t.Error("timer fired after Close")
	}

	// New work after Close is refused.
	timer := q.Schedule(start.Add(time.Millisecond), func(time.Time) { called = true })
	if !timer.Stopped() {
		t.Error("Schedule after Close returned a live timer")
	}
	q.Advance(start.Add(time.Hour))
	if called {
		t.Error("timer scheduled after Close fired")
	}
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package timing

import "time"

// =============================================================================
// TIMER QUEUE
// =============================================================================

// TimerQueue holds pending deadlines and fires them when the host advances
// time past them. Callbacks run inline from Advance, on the caller's
// goroutine, in deadline order (insertion order for equal deadlines).
//
// The queue is not safe for concurrent use. The update loop that owns it is
// single-threaded, and timer callbacks may schedule or stop other timers on
// the same queue.
type TimerQueue struct {
	timers []*Timer
	closed bool
}

// Timer is a single pending deadline on a TimerQueue.
type Timer struct {
	queue    *TimerQueue
	deadline time.Time
	fn       func(now time.Time)
	stopped  bool
}

// NewTimerQueue creates an empty timer queue.
func NewTimerQueue() *TimerQueue {
	return &TimerQueue{}
}

// Schedule arms fn to fire once time advances to at or later. The returned
// Timer can be stopped before it fires. Scheduling on a closed queue returns
// an already-stopped timer that will never fire.
func (q *TimerQueue) Schedule(at time.Time, fn func(now time.Time)) *Timer {
	t := &Timer{queue: q, deadline: at, fn: fn}
	if q.closed || fn == nil {
		t.stopped = true
		return t
	}

	// Keep timers sorted by deadline; equal deadlines keep insertion order.
	pos := len(q.timers)
	for i, other := range q.timers {
		if at.Before(other.deadline) {
			pos = i
			break
		}
	}
	q.timers = append(q.timers, nil)
	copy(q.timers[pos+1:], q.timers[pos:])
	q.timers[pos] = t
	return t
}

// Stop cancels the timer. Stopping an already-fired or already-stopped timer
// is a no-op.
func (t *Timer) Stop() {
	if t.stopped {
		return
	}
	t.stopped = true
	if t.queue != nil {
		t.queue.remove(t)
	}
}

// Stopped reports whether the timer was cancelled or has already fired.
func (t *Timer) Stopped() bool {
	return t.stopped
}

// Advance fires every timer whose deadline is at or before now and returns
// the number fired. Callbacks that schedule new timers due at or before now
// fire within the same Advance call.
func (q *TimerQueue) Advance(now time.Time) int {
	fired := 0
	for !q.closed && len(q.timers) > 0 {
		head := q.timers[0]
		if head.deadline.After(now) {
			break
		}
		q.timers = q.timers[1:]
		if head.stopped {
			continue
		}
		head.stopped = true
		fired++
		head.fn(now)
	}
	return fired
}

// NextDeadline returns the earliest pending deadline, if any.
func (q *TimerQueue) NextDeadline() (time.Time, bool) {
	if q.closed || len(q.timers) == 0 {
		return time.Time{}, false
	}
	return q.timers[0].deadline, true
}

// Pending returns the number of armed timers.
func (q *TimerQueue) Pending() int {
	if q.closed {
		return 0
	}
	return len(q.timers)
}

// Close drops every pending timer and refuses new work. Nothing fires after
// Close returns.
func (q *TimerQueue) Close() {
	q.closed = true
	for _, t := range q.timers {
		t.stopped = true
	}
	q.timers = nil
}

// remove drops a timer from the pending list by identity.
func (q *TimerQueue) remove(target *Timer) {
	for i, t := range q.timers {
		if t == target {
			q.timers = append(q.timers[:i], q.timers[i+1:]...)
			return
		}
	}
}

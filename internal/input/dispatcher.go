// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package input

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/IndieDevYulin/ring-world/internal/timing"
)

// =============================================================================
// GESTURE TIMING
// =============================================================================

// Default gesture deadlines.
const (
	// DefaultLongPressAfter is how long the activate control must stay held
	// before the press becomes a LongPress.
	DefaultLongPressAfter = 400 * time.Millisecond

	// DefaultDoublePressWindow is how soon a second press must land after
	// the first to count as a DoublePress. The window is exclusive.
	DefaultDoublePressWindow = 250 * time.Millisecond
)

// =============================================================================
// HANDLERS
// =============================================================================

// Handlers holds the gesture callbacks a Dispatcher fans out to. Nil
// callbacks are skipped.
type Handlers struct {
	OnUp    func()
	OnDown  func()
	OnLeft  func()
	OnRight func()

	OnPress       func()
	OnDoublePress func()
	OnLongPress   func()

	// OnEscape handles the escape event. When nil, the Dispatcher calls its
	// fallback exit instead.
	OnEscape func()

	OnTab func()
}

// =============================================================================
// DISPATCHER
// =============================================================================

// Dispatcher classifies normalized events into gestures. See the package
// documentation for the gesture grammar.
//
// A Dispatcher is single-threaded: Dispatch, Tick and Close must all be
// called from the same goroutine, normally the host's update loop.
type Dispatcher struct {
	clock        timing.Clock
	timers       *timing.TimerQueue
	handlers     Handlers
	fallbackExit func()

	longPressAfter time.Duration
	doubleWindow   time.Duration

	// Activate classification state. At most one of Press, DoublePress and
	// LongPress resolves any given press sequence.
	lastPressAt   time.Time
	pendingPress  bool // first press seen, double window still open
	held          bool // activate control currently down
	longActive    bool // LongPress fired, waiting for release
	deferredPress bool // window closed while held; Press fires on release
	longTimer     *timing.Timer
	doubleTimer   *timing.Timer

	moveLimiter *rate.Limiter
	closed      bool
}

// NewDispatcher creates a dispatcher reading time from clock. The fallback
// exit runs for escape events when no OnEscape handler is registered; hosts
// pass their quit hook so escape always has somewhere to go.
func NewDispatcher(clock timing.Clock, handlers Handlers, fallbackExit func()) *Dispatcher {
	if clock == nil {
		clock = timing.SystemClock{}
	}
	return &Dispatcher{
		clock:          clock,
		timers:         timing.NewTimerQueue(),
		handlers:       handlers,
		fallbackExit:   fallbackExit,
		longPressAfter: DefaultLongPressAfter,
		doubleWindow:   DefaultDoublePressWindow,
	}
}

// SetLongPressAfter changes the hold threshold for LongPress. Non-positive
// durations are ignored.
func (d *Dispatcher) SetLongPressAfter(dur time.Duration) {
	if dur > 0 {
		d.longPressAfter = dur
	}
}

// SetDoublePressWindow changes the exclusive window for DoublePress.
// Non-positive durations are ignored.
func (d *Dispatcher) SetDoublePressWindow(dur time.Duration) {
	if dur > 0 {
		d.doubleWindow = dur
	}
}

// SetMoveThrottle rate-limits directional events to perSecond with the given
// burst. Zero or negative perSecond disables throttling, the default. The
// limiter reads the dispatcher's clock, so throttled flows stay deterministic
// under a FakeClock.
func (d *Dispatcher) SetMoveThrottle(perSecond float64, burst int) {
	if perSecond <= 0 {
		d.moveLimiter = nil
		return
	}
	if burst < 1 {
		burst = 1
	}
	d.moveLimiter = rate.NewLimiter(rate.Limit(perSecond), burst)
}

// Dispatch classifies one event. Directional and tab events resolve
// immediately; activate events advance the press state machine. Events on a
// closed dispatcher are dropped.
func (d *Dispatcher) Dispatch(ev Event) {
	if d.closed {
		return
	}
	now := d.clock.Now()

	// Deadlines earlier than this event have logically already passed;
	// resolve them first so classification sees events in time order even
	// when the host's last Tick was a while ago.
	d.timers.Advance(now)
	if d.closed {
		return
	}

	switch ev.Kind {
	case KindUp:
		if d.allowMove(now) {
			d.call(d.handlers.OnUp)
		}
	case KindDown:
		if d.allowMove(now) {
			d.call(d.handlers.OnDown)
		}
	case KindLeft:
		if d.allowMove(now) {
			d.call(d.handlers.OnLeft)
		}
	case KindRight:
		if d.allowMove(now) {
			d.call(d.handlers.OnRight)
		}
	case KindTab:
		d.call(d.handlers.OnTab)
	case KindEscape:
		if d.handlers.OnEscape != nil {
			d.handlers.OnEscape()
		} else if d.fallbackExit != nil {
			d.fallbackExit()
		}
	case KindActivateDown:
		d.activateDown(now)
	case KindActivateUp:
		d.activateUp(now)
	}
}

// Tick advances the dispatcher's gesture deadlines to now. Hosts call this
// from their frame loop before applying animation updates, so a deadline and
// the motion it triggers land in the same frame.
func (d *Dispatcher) Tick(now time.Time) {
	if d.closed {
		return
	}
	d.timers.Advance(now)
}

// PendingTimers reports whether any gesture deadline is armed. Hosts keep
// their frame loop alive while this is true.
func (d *Dispatcher) PendingTimers() bool {
	return d.timers.Pending() > 0
}

// NextDeadline returns the earliest armed gesture deadline, if any.
func (d *Dispatcher) NextDeadline() (time.Time, bool) {
	return d.timers.NextDeadline()
}

// Close cancels all pending deadlines and drops future events. No callback
// runs after Close returns; a long-press timer armed before Close never
// fires.
func (d *Dispatcher) Close() {
	if d.closed {
		return
	}
	d.closed = true
	d.stopTimer(&d.longTimer)
	d.stopTimer(&d.doubleTimer)
	d.timers.Close()
}

// =============================================================================
// ACTIVATE CLASSIFICATION
// =============================================================================

func (d *Dispatcher) activateDown(now time.Time) {
	if d.longActive {
		// Release from the long press has not arrived yet; treat a stray
		// second down as part of the same hold.
		d.lastPressAt = now
		return
	}

	d.held = true
	d.stopTimer(&d.longTimer)
	d.longTimer = d.timers.Schedule(now.Add(d.longPressAfter), d.longFired)

	if d.pendingPress && now.Sub(d.lastPressAt) < d.doubleWindow {
		// Second press inside the window resolves the pair immediately.
		d.pendingPress = false
		d.stopTimer(&d.doubleTimer)
		d.stopTimer(&d.longTimer)
		d.lastPressAt = now
		d.call(d.handlers.OnDoublePress)
		return
	}

	d.pendingPress = true
	d.deferredPress = false
	d.stopTimer(&d.doubleTimer)
	d.doubleTimer = d.timers.Schedule(now.Add(d.doubleWindow), d.doubleWindowClosed)
	d.lastPressAt = now
}

func (d *Dispatcher) activateUp(now time.Time) {
	if !d.held && !d.longActive {
		return // release without a matching press
	}
	d.held = false
	d.stopTimer(&d.longTimer)

	if d.longActive {
		// The hold already resolved as LongPress; release ends the sequence.
		d.longActive = false
		return
	}
	if d.deferredPress {
		// The double window closed while the control was held; the release
		// arriving before the long threshold makes it a plain Press.
		d.deferredPress = false
		d.call(d.handlers.OnPress)
	}
}

// doubleWindowClosed runs when the double-press window expires with no
// second press.
func (d *Dispatcher) doubleWindowClosed(now time.Time) {
	if d.closed {
		return
	}
	d.doubleTimer = nil
	if !d.pendingPress {
		return
	}
	d.pendingPress = false

	if d.held {
		// Still held: the sequence is either a LongPress (hold timer fires)
		// or a Press on release, whichever comes first.
		d.deferredPress = true
		return
	}
	d.call(d.handlers.OnPress)
}

// longFired runs when the activate control has been held past the long-press
// threshold.
func (d *Dispatcher) longFired(now time.Time) {
	if d.closed {
		return
	}
	d.longTimer = nil
	if !d.held {
		return
	}
	d.longActive = true
	d.pendingPress = false
	d.deferredPress = false
	d.stopTimer(&d.doubleTimer)
	d.call(d.handlers.OnLongPress)
}

// =============================================================================
// HELPERS
// =============================================================================

func (d *Dispatcher) call(fn func()) {
	if fn != nil && !d.closed {
		fn()
	}
}

func (d *Dispatcher) allowMove(now time.Time) bool {
	if d.moveLimiter == nil {
		return true
	}
	return d.moveLimiter.AllowN(now, 1)
}

func (d *Dispatcher) stopTimer(t **timing.Timer) {
	if *t != nil {
		(*t).Stop()
		*t = nil
	}
}

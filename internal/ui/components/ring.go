// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the ringworld TUI.
package components

import (
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/IndieDevYulin/ring-world/internal/anim"
	"github.com/IndieDevYulin/ring-world/internal/input"
	"github.com/IndieDevYulin/ring-world/internal/ring"
	"github.com/IndieDevYulin/ring-world/internal/timing"
	"github.com/IndieDevYulin/ring-world/internal/ui/styles"
	"github.com/IndieDevYulin/ring-world/internal/util"
)

// =============================================================================
// RING OPTIONS
// =============================================================================

// defaultLabelBudget caps label width when the host has not reported a size.
const defaultLabelBudget = 28

// RingOptions configures a Ring widget.
type RingOptions struct {
	// WindowSize is the number of visible slots. Must be odd and at least 1.
	WindowSize int

	// Wrap selects ring navigation (true) or clamped list navigation (false).
	Wrap bool

	// MoveDuration is how long one step transition takes. Zero keeps the
	// animator default.
	MoveDuration time.Duration

	// PositionEasing names the easing curve for ring travel (anim registry).
	// Unknown names keep the animator default.
	PositionEasing string

	// ShowDescription renders the focused item's description under the ring.
	ShowDescription bool

	// SeekEnabled allows "/" to open fuzzy type-ahead seek.
	SeekEnabled bool

	// FPS is the frame rate while animating. Zero means 60.
	FPS int

	// Gesture deadlines; zero keeps the dispatcher defaults.
	LongPressAfter    time.Duration
	DoublePressWindow time.Duration

	// Move throttle; zero MoveRatePerSec disables throttling.
	MoveRatePerSec float64
	MoveBurst      int
}

// DefaultRingOptions returns the options the demos start from.
func DefaultRingOptions() RingOptions {
	return RingOptions{
		WindowSize:      5,
		Wrap:            true,
		MoveDuration:    anim.DefaultDuration,
		PositionEasing:  "smoothstep",
		ShowDescription: true,
		SeekEnabled:     true,
		FPS:             60,
	}
}

// =============================================================================
// RING WIDGET
// =============================================================================

// Ring is the "3D ring" carousel widget. It owns a gesture dispatcher,
// a selection controller, and a ring animator, and renders the visible
// window with depth-shaded styling.
//
// The Ring requests frame ticks only while its animation or a gesture
// deadline is live; an idle ring emits no commands. Close cancels all
// pending deadlines, after which the Ring ignores messages and callbacks
// never fire.
type Ring struct {
	opts  RingOptions
	theme *styles.Theme
	clock timing.Clock

	ctrl     *ring.Controller
	animator *anim.RingAnimator
	disp     *input.Dispatcher

	id            int
	frameInterval time.Duration
	width         int

	frameDue bool
	quitting bool
	closed   bool

	seeking   bool
	seekQuery string
	seekMiss  bool

	onBack   func()
	onMove   func(index int)
	onDouble func(item ring.Item, index int)
	onLong   func(item ring.Item, index int)
}

// NewRing creates a ring over the given items. A nil theme detects the
// terminal; a nil clock reads the system clock. Configuration problems
// (no items, even window size) are returned eagerly.
func NewRing(items []ring.Item, opts RingOptions, theme *styles.Theme, clock timing.Clock) (*Ring, error) {
	if _, err := ring.Window(items, 0, opts.WindowSize); err != nil {
		return nil, err
	}
	if theme == nil {
		theme = styles.NewTheme()
	}
	if clock == nil {
		clock = timing.SystemClock{}
	}

	ctrl, err := ring.NewController(items, nil)
	if err != nil {
		return nil, err
	}
	ctrl.SetWrap(opts.Wrap)

	animator, err := anim.NewRingAnimator(len(items), 0)
	if err != nil {
		return nil, err
	}
	if opts.MoveDuration > 0 {
		animator.SetDuration(opts.MoveDuration)
	}
	if fn, ok := anim.EasingByName(opts.PositionEasing); ok {
		animator.SetEasing(fn)
	}

	fps := opts.FPS
	if fps <= 0 {
		fps = 60
	}

	r := &Ring{
		opts:          opts,
		theme:         theme,
		clock:         clock,
		ctrl:          ctrl,
		animator:      animator,
		id:            int(atomic.AddInt64(&ringIDCounter, 1)),
		frameInterval: time.Second / time.Duration(fps),
	}

	r.disp = input.NewDispatcher(clock, input.Handlers{
		OnUp:    func() { r.moveBy(-1) },
		OnDown:  func() { r.moveBy(1) },
		OnLeft:  func() { r.moveBy(-1) },
		OnRight: func() { r.moveBy(1) },
		OnPress: func() { r.ctrl.Select() },
		OnDoublePress: func() {
			if r.onDouble != nil {
				r.onDouble(r.ctrl.Item(), r.ctrl.Index())
			}
		},
		OnLongPress: func() {
			if r.onLong != nil {
				r.onLong(r.ctrl.Item(), r.ctrl.Index())
			}
		},
		OnEscape: func() {
			if r.onBack != nil {
				r.onBack()
				return
			}
			r.quitting = true
		},
	}, nil)

	if opts.LongPressAfter > 0 {
		r.disp.SetLongPressAfter(opts.LongPressAfter)
	}
	if opts.DoublePressWindow > 0 {
		r.disp.SetDoublePressWindow(opts.DoublePressWindow)
	}
	if opts.MoveRatePerSec > 0 {
		r.disp.SetMoveThrottle(opts.MoveRatePerSec, opts.MoveBurst)
	}

	return r, nil
}

// =============================================================================
// CALLBACKS
// =============================================================================

// OnSelect registers the activation callback (single press).
func (r *Ring) OnSelect(fn func(item ring.Item, index int)) {
	r.ctrl.SetOnSelect(fn)
}

// OnBack registers the escape callback. Without one, escape asks the host
// program to quit.
func (r *Ring) OnBack(fn func()) {
	r.onBack = fn
}

// OnMove registers a callback for focus changes, fired with the new index.
func (r *Ring) OnMove(fn func(index int)) {
	r.onMove = fn
}

// OnDoublePress registers the double-press callback.
func (r *Ring) OnDoublePress(fn func(item ring.Item, index int)) {
	r.onDouble = fn
}

// OnLongPress registers the long-press callback.
func (r *Ring) OnLongPress(fn func(item ring.Item, index int)) {
	r.onLong = fn
}

// =============================================================================
// BUBBLETEA INTEGRATION
// =============================================================================

// Init implements the bubbletea model contract. A fresh ring is idle.
func (r *Ring) Init() tea.Cmd {
	return nil
}

// Update consumes key, size, and frame messages. Per message the order is:
// gesture deadlines due at-or-before now resolve first, then key events,
// then the animator advances, so a deadline and the motion it causes land
// in the same frame.
func (r *Ring) Update(msg tea.Msg) (*Ring, tea.Cmd) {
	if r.closed {
		return r, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.theme.SetSize(msg.Width, msg.Height)
		return r, nil

	case RingFrameMsg:
		if msg.ID != r.id {
			return r, nil
		}
		r.frameDue = false
		now := r.clock.Now()
		r.disp.Tick(now)
		r.animator.Update(r.ctrl.Index(), now)
		return r, r.afterUpdate()

	case tea.KeyMsg:
		now := r.clock.Now()
		if r.seeking {
			r.updateSeek(msg, now)
			return r, r.afterUpdate()
		}
		if r.opts.SeekEnabled && msg.String() == "/" {
			r.seeking = true
			r.seekQuery = ""
			r.seekMiss = false
			return r, nil
		}
		for _, ev := range input.MapKey(msg) {
			r.disp.Dispatch(ev)
		}
		r.animator.Update(r.ctrl.Index(), now)
		return r, r.afterUpdate()
	}

	return r, nil
}

// View renders the visible window, deepest slots indented and dimmed, the
// focused slot held between the rails.
func (r *Ring) View() string {
	if r.closed {
		return ""
	}
	slots, err := ring.Window(r.ctrl.Items(), r.animator.Position(), r.opts.WindowSize)
	if err != nil {
		return ""
	}

	budget := r.labelBudget()
	var b strings.Builder
	for i, slot := range slots {
		if i > 0 {
			b.WriteString("\n")
		}
		label := util.TruncateWidth(slot.Item.DisplayLabel(), budget)
		style := r.theme.DepthStyle(slot.Depth)
		if slot.Depth == 0 {
			b.WriteString(r.theme.RingRail.Render(styles.RingGlyphs.RailLeft))
			b.WriteString(" ")
			b.WriteString(style.Render(label))
			b.WriteString(" ")
			b.WriteString(r.theme.RingRail.Render(styles.RingGlyphs.RailRight))
			continue
		}
		b.WriteString(strings.Repeat(" ", 2+slot.Depth*styles.DepthIndent))
		b.WriteString(style.Render(label))
	}

	if r.opts.ShowDescription {
		if desc := r.ctrl.Item().Description; desc != "" {
			b.WriteString("\n\n  ")
			b.WriteString(r.theme.RingDescription.Render(util.TruncateWidth(desc, budget+8)))
		}
	}

	if r.seeking {
		b.WriteString("\n\n  ")
		b.WriteString(r.theme.SeekPrompt.Render("/"))
		b.WriteString(r.theme.SeekQuery.Render(r.seekQuery))
		if r.seekMiss {
			b.WriteString(" ")
			b.WriteString(r.theme.SeekMiss.Render("no match"))
		}
	}

	return b.String()
}

// Snapshot returns the current visible slots and the selected item, for
// renderers that draw the ring themselves.
func (r *Ring) Snapshot() ([]ring.Slot, ring.Item) {
	slots, err := ring.Window(r.ctrl.Items(), r.animator.Position(), r.opts.WindowSize)
	if err != nil {
		return nil, ring.Item{}
	}
	return slots, r.ctrl.Item()
}

// Close cancels pending gesture deadlines and stops frame scheduling.
// Safe to call more than once.
func (r *Ring) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.disp.Close()
}

// =============================================================================
// ACCESSORS AND RUNTIME TUNING
// =============================================================================

// Index returns the selected index.
func (r *Ring) Index() int {
	return r.ctrl.Index()
}

// Item returns the selected item.
func (r *Ring) Item() ring.Item {
	return r.ctrl.Item()
}

// Position returns the animated ring position in [0, N).
func (r *Ring) Position() float64 {
	return r.animator.Position()
}

// Animating reports whether the ring position is still in motion.
func (r *Ring) Animating() bool {
	return !r.animator.Settled()
}

// Seeking reports whether type-ahead seek is open.
func (r *Ring) Seeking() bool {
	return r.seeking
}

// Closed reports whether Close has run.
func (r *Ring) Closed() bool {
	return r.closed
}

// SetWindowSize changes the number of visible slots. The size must be odd
// and at least 1.
func (r *Ring) SetWindowSize(size int) error {
	if _, err := ring.Window(r.ctrl.Items(), 0, size); err != nil {
		return err
	}
	r.opts.WindowSize = size
	return nil
}

// SetMoveDuration changes the step transition length. Non-positive values
// are ignored.
func (r *Ring) SetMoveDuration(d time.Duration) {
	if d > 0 {
		r.animator.SetDuration(d)
	}
}

// SetEasing switches the travel easing by registry name. Unknown names are
// ignored.
func (r *Ring) SetEasing(name string) {
	if fn, ok := anim.EasingByName(name); ok {
		r.animator.SetEasing(fn)
	}
}

// SetShowDescription toggles the description line.
func (r *Ring) SetShowDescription(show bool) {
	r.opts.ShowDescription = show
}

// SetSeekEnabled toggles type-ahead seek. Disabling closes an open seek.
func (r *Ring) SetSeekEnabled(enabled bool) {
	r.opts.SeekEnabled = enabled
	if !enabled {
		r.seeking = false
		r.seekQuery = ""
		r.seekMiss = false
	}
}

// SetMoveThrottle rate-limits move gestures; zero perSecond disables.
func (r *Ring) SetMoveThrottle(perSecond float64, burst int) {
	r.disp.SetMoveThrottle(perSecond, burst)
}

// SetFPS changes the frame rate for subsequent animation ticks.
// Non-positive values are ignored.
func (r *Ring) SetFPS(fps int) {
	if fps > 0 {
		r.opts.FPS = fps
		r.frameInterval = time.Second / time.Duration(fps)
	}
}

// SetLongPressAfter changes the hold threshold for the long-press gesture.
// Non-positive durations are ignored.
func (r *Ring) SetLongPressAfter(d time.Duration) {
	r.disp.SetLongPressAfter(d)
}

// SetDoublePressWindow changes the double-press detection window.
// Non-positive durations are ignored.
func (r *Ring) SetDoublePressWindow(d time.Duration) {
	r.disp.SetDoublePressWindow(d)
}

// =============================================================================
// INTERNALS
// =============================================================================

func (r *Ring) moveBy(delta int) {
	before := r.ctrl.Index()
	idx := r.ctrl.Move(delta)
	if idx != before && r.onMove != nil {
		r.onMove(idx)
	}
}

// afterUpdate converts accumulated state into the follow-up command: quit
// when the escape fallback asked for it, otherwise a frame tick while
// anything is still in motion.
func (r *Ring) afterUpdate() tea.Cmd {
	if r.quitting {
		r.Close()
		return tea.Quit
	}
	return r.frameCmd()
}

func (r *Ring) frameCmd() tea.Cmd {
	if r.closed || r.frameDue {
		return nil
	}
	if r.animator.Settled() && !r.disp.PendingTimers() {
		return nil
	}
	r.frameDue = true
	id := r.id
	return tea.Tick(r.frameInterval, func(t time.Time) tea.Msg {
		return RingFrameMsg{ID: id, Time: t}
	})
}

func (r *Ring) updateSeek(msg tea.KeyMsg, now time.Time) {
	switch msg.Type {
	case tea.KeyEscape, tea.KeyEnter:
		r.seeking = false
		r.seekQuery = ""
		r.seekMiss = false
	case tea.KeyBackspace:
		if r.seekQuery != "" {
			runes := []rune(r.seekQuery)
			r.seekQuery = string(runes[:len(runes)-1])
			r.applySeek(now)
		}
	case tea.KeySpace:
		r.seekQuery += " "
		r.applySeek(now)
	case tea.KeyRunes:
		r.seekQuery += string(msg.Runes)
		r.applySeek(now)
	}
}

func (r *Ring) applySeek(now time.Time) {
	if r.seekQuery == "" {
		r.seekMiss = false
		return
	}
	idx := ring.Seek(r.ctrl.Items(), r.seekQuery, r.ctrl.Index())
	if idx < 0 {
		r.seekMiss = true
		return
	}
	r.seekMiss = false
	if idx != r.ctrl.Index() {
		r.ctrl.MoveTo(idx)
		if r.onMove != nil {
			r.onMove(idx)
		}
	}
	r.animator.Update(idx, now)
}

func (r *Ring) labelBudget() int {
	budget := defaultLabelBudget
	if r.width > 0 {
		// Rails plus the deepest indent must stay inside the host width.
		reserved := 4 + (r.opts.WindowSize/2)*styles.DepthIndent
		budget = r.width - reserved - 2
	}
	if budget < 8 {
		budget = 8
	}
	if budget > 48 {
		budget = 48
	}
	return budget
}

var ringIDCounter int64

// =============================================================================
// MESSAGES
// =============================================================================

// RingFrameMsg advances one animation frame for the Ring with the matching
// ID. Time carries the tick's wall reading; the widget reads its own clock
// for logic so tests stay deterministic.
type RingFrameMsg struct {
	ID   int
	Time time.Time
}

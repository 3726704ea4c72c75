// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IndieDevYulin/ring-world/internal/input"
	"github.com/IndieDevYulin/ring-world/internal/ring"
	"github.com/IndieDevYulin/ring-world/internal/timing"
)

var ringEpoch = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func ringItems(labels ...string) []ring.Item {
	items := make([]ring.Item, len(labels))
	for i, label := range labels {
		items[i] = ring.Item{ID: label, Label: label}
	}
	return items
}

func fiveItems() []ring.Item {
	return ringItems("Home", "Library", "Search", "Settings", "Profile")
}

func newTestRing(t *testing.T, items []ring.Item, opts RingOptions) (*Ring, *timing.FakeClock) {
	t.Helper()
	clock := timing.NewFakeClock(ringEpoch)
	r, err := NewRing(items, opts, nil, clock)
	require.NoError(t, err)
	return r, clock
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// frame drives one animation frame at the clock's current reading.
func frame(r *Ring, clock *timing.FakeClock) tea.Cmd {
	_, cmd := r.Update(RingFrameMsg{ID: r.id, Time: clock.Now()})
	return cmd
}

func TestNewRingValidation(t *testing.T) {
	clock := timing.NewFakeClock(ringEpoch)

	_, err := NewRing(nil, DefaultRingOptions(), nil, clock)
	assert.ErrorIs(t, err, ring.ErrNoItems)

	opts := DefaultRingOptions()
	opts.WindowSize = 4
	_, err = NewRing(fiveItems(), opts, nil, clock)
	assert.ErrorIs(t, err, ring.ErrEvenWindow)
}

func TestFreshRingIsIdle(t *testing.T) {
	r, _ := newTestRing(t, fiveItems(), DefaultRingOptions())

	assert.Nil(t, r.Init())
	assert.False(t, r.Animating())
	assert.Equal(t, 0, r.Index())
	assert.Equal(t, "Home", r.Item().Label)
}

func TestMoveAnimatesAndSettles(t *testing.T) {
	r, clock := newTestRing(t, fiveItems(), DefaultRingOptions())

	_, cmd := r.Update(key(tea.KeyRight))
	assert.Equal(t, 1, r.Index(), "focus moves immediately")
	assert.True(t, r.Animating())
	require.NotNil(t, cmd, "an animating ring schedules a frame")

	// Halfway through the default 150ms smoothstep transition.
	clock.Advance(75 * time.Millisecond)
	frame(r, clock)
	assert.InDelta(t, 0.5, r.Position(), 1e-9)

	clock.Advance(75 * time.Millisecond)
	cmd = frame(r, clock)
	assert.InDelta(t, 1.0, r.Position(), 1e-9)
	assert.False(t, r.Animating())
	assert.Nil(t, cmd, "a settled idle ring schedules nothing")
}

func TestSeamTravelTakesShortArc(t *testing.T) {
	r, clock := newTestRing(t, fiveItems(), DefaultRingOptions())

	r.Update(key(tea.KeyLeft))
	assert.Equal(t, 4, r.Index())

	// The position crosses the 0/5 seam instead of sweeping the long way.
	clock.Advance(75 * time.Millisecond)
	frame(r, clock)
	assert.InDelta(t, 4.5, r.Position(), 1e-9)

	clock.Advance(75 * time.Millisecond)
	frame(r, clock)
	assert.InDelta(t, 4.0, r.Position(), 1e-9)
}

func TestClampModeStopsAtEdges(t *testing.T) {
	opts := DefaultRingOptions()
	opts.Wrap = false
	r, _ := newTestRing(t, fiveItems(), opts)

	var moves []int
	r.OnMove(func(index int) { moves = append(moves, index) })

	_, cmd := r.Update(key(tea.KeyLeft))
	assert.Equal(t, 0, r.Index())
	assert.False(t, r.Animating())
	assert.Nil(t, cmd, "a blocked move leaves the ring idle")
	assert.Empty(t, moves, "no move callback when the index did not change")
}

func TestPressSelectsAfterDoubleWindow(t *testing.T) {
	r, clock := newTestRing(t, fiveItems(), DefaultRingOptions())

	var selected []string
	r.OnSelect(func(item ring.Item, index int) {
		selected = append(selected, item.Label)
	})

	_, cmd := r.Update(key(tea.KeyEnter))
	assert.Empty(t, selected, "press waits out the double window")
	require.NotNil(t, cmd, "pending gesture deadlines keep frames flowing")

	clock.Advance(250 * time.Millisecond)
	frame(r, clock)
	assert.Equal(t, []string{"Home"}, selected)
}

func TestDoublePressFiresDoubleOnly(t *testing.T) {
	r, clock := newTestRing(t, fiveItems(), DefaultRingOptions())

	var selects, doubles int
	r.OnSelect(func(ring.Item, int) { selects++ })
	r.OnDoublePress(func(ring.Item, int) { doubles++ })

	r.Update(key(tea.KeyEnter))
	clock.Advance(100 * time.Millisecond)
	r.Update(key(tea.KeyEnter))

	clock.Advance(time.Second)
	frame(r, clock)

	assert.Equal(t, 1, doubles)
	assert.Zero(t, selects, "a double press never also selects")
}

func TestLongPressCallback(t *testing.T) {
	r, clock := newTestRing(t, fiveItems(), DefaultRingOptions())

	var longs []string
	r.OnLongPress(func(item ring.Item, index int) {
		longs = append(longs, item.Label)
	})

	// Terminals synthesize an immediate release, so holds only come from
	// hosts with real down/up sources; feed the down half directly.
	r.disp.Dispatch(input.Event{Kind: input.KindActivateDown})
	clock.Advance(400 * time.Millisecond)
	frame(r, clock)

	assert.Equal(t, []string{"Home"}, longs)
}

func TestEscapeQuitsWithoutBackHandler(t *testing.T) {
	r, _ := newTestRing(t, fiveItems(), DefaultRingOptions())

	_, cmd := r.Update(key(tea.KeyEscape))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, r.Closed())

	// A closed ring ignores further input.
	_, cmd = r.Update(key(tea.KeyRight))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, r.Index())
}

func TestEscapePrefersBackHandler(t *testing.T) {
	r, _ := newTestRing(t, fiveItems(), DefaultRingOptions())

	var backs int
	r.OnBack(func() { backs++ })

	_, cmd := r.Update(key(tea.KeyEscape))
	assert.Equal(t, 1, backs)
	assert.Nil(t, cmd)
	assert.False(t, r.Closed())
}

func TestSeekJumpsToBestMatch(t *testing.T) {
	r, clock := newTestRing(t, fiveItems(), DefaultRingOptions())

	r.Update(runeKey("/"))
	assert.True(t, r.Seeking())

	r.Update(runeKey("sea"))
	assert.Equal(t, 2, r.Index(), "seek moves focus to Search")
	assert.True(t, r.Animating(), "seek retargets the animator")

	_, _ = r.Update(key(tea.KeyEnter))
	assert.False(t, r.Seeking())
	assert.Equal(t, 2, r.Index(), "confirming keeps the match")

	clock.Advance(time.Second)
	frame(r, clock)
	assert.InDelta(t, 2.0, r.Position(), 1e-9)
}

func TestSeekEscapeClosesSeekOnly(t *testing.T) {
	r, _ := newTestRing(t, fiveItems(), DefaultRingOptions())

	r.Update(runeKey("/"))
	r.Update(runeKey("pro"))
	assert.Equal(t, 4, r.Index())

	r.Update(key(tea.KeyEscape))
	assert.False(t, r.Seeking())
	assert.False(t, r.Closed(), "escape inside seek does not quit")
	assert.Equal(t, 4, r.Index())
}

func TestSeekMissKeepsFocus(t *testing.T) {
	r, _ := newTestRing(t, fiveItems(), DefaultRingOptions())

	r.Update(runeKey("/"))
	r.Update(runeKey("zzz"))

	assert.Equal(t, 0, r.Index())
	assert.Contains(t, r.View(), "no match")
}

func TestSeekBackspaceRetargets(t *testing.T) {
	r, _ := newTestRing(t, fiveItems(), DefaultRingOptions())

	r.Update(runeKey("/"))
	r.Update(runeKey("sett"))
	assert.Equal(t, 3, r.Index())

	// Trimming back to "se" promotes the closer-ranked Search.
	r.Update(key(tea.KeyBackspace))
	r.Update(key(tea.KeyBackspace))
	assert.Equal(t, 2, r.Index())
}

func TestSeekDisabledIgnoresSlash(t *testing.T) {
	opts := DefaultRingOptions()
	opts.SeekEnabled = false
	r, _ := newTestRing(t, fiveItems(), opts)

	r.Update(runeKey("/"))
	assert.False(t, r.Seeking())
}

func TestViewRendersDepthLayout(t *testing.T) {
	opts := DefaultRingOptions()
	opts.ShowDescription = false
	r, _ := newTestRing(t, fiveItems(), opts)

	lines := strings.Split(r.View(), "\n")
	require.Len(t, lines, 5)

	// Window at position 0: Settings, Profile, Home, Library, Search.
	assert.Equal(t, "> Home <", lines[2])
	assert.Contains(t, lines[0], "Settings")
	assert.Contains(t, lines[1], "Profile")
	assert.Contains(t, lines[3], "Library")
	assert.Contains(t, lines[4], "Search")

	// Depth pushes slots right: deeper lines carry more indent.
	assert.True(t, strings.HasPrefix(lines[1], "    "))
	assert.True(t, strings.HasPrefix(lines[0], "      "))
}

func TestViewShowsFocusedDescription(t *testing.T) {
	items := fiveItems()
	items[0].Description = "Jump to the start screen"
	r, _ := newTestRing(t, items, DefaultRingOptions())

	assert.Contains(t, r.View(), "Jump to the start screen")
}

func TestSnapshot(t *testing.T) {
	r, clock := newTestRing(t, fiveItems(), DefaultRingOptions())

	slots, selected := r.Snapshot()
	require.Len(t, slots, 5)
	assert.Equal(t, "Home", selected.Label)
	assert.Equal(t, 0, slots[2].Depth)

	r.Update(key(tea.KeyRight))
	clock.Advance(time.Second)
	frame(r, clock)

	slots, selected = r.Snapshot()
	assert.Equal(t, "Library", selected.Label)
	assert.Equal(t, "Library", slots[2].Item.Label)
}

func TestSetWindowSize(t *testing.T) {
	opts := DefaultRingOptions()
	opts.ShowDescription = false
	r, _ := newTestRing(t, fiveItems(), opts)

	assert.Error(t, r.SetWindowSize(4))
	require.NoError(t, r.SetWindowSize(3))
	assert.Len(t, strings.Split(r.View(), "\n"), 3)
}

func TestStaleFrameIgnored(t *testing.T) {
	r, clock := newTestRing(t, fiveItems(), DefaultRingOptions())

	r.Update(key(tea.KeyRight))
	_, cmd := r.Update(RingFrameMsg{ID: r.id + 99, Time: clock.Now()})
	assert.Nil(t, cmd)
	assert.InDelta(t, 0.0, r.Position(), 1e-9, "stale frames do not advance the animation")
}

func TestCloseCancelsPendingGestures(t *testing.T) {
	r, clock := newTestRing(t, fiveItems(), DefaultRingOptions())

	var selects int
	r.OnSelect(func(ring.Item, int) { selects++ })

	r.Update(key(tea.KeyEnter))
	r.Close()

	clock.Advance(time.Hour)
	frame(r, clock)
	assert.Zero(t, selects, "no callback runs after Close")
	assert.Equal(t, "", r.View())

	r.Close() // idempotent
}

func TestMoveThrottle(t *testing.T) {
	opts := DefaultRingOptions()
	opts.MoveRatePerSec = 10
	opts.MoveBurst = 1
	r, clock := newTestRing(t, fiveItems(), opts)

	r.Update(key(tea.KeyRight))
	r.Update(key(tea.KeyRight))
	assert.Equal(t, 1, r.Index(), "second move inside the refill window is dropped")

	clock.Advance(100 * time.Millisecond)
	r.Update(key(tea.KeyRight))
	assert.Equal(t, 2, r.Index(), "throttle refills with the clock")
}

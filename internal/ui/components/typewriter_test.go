// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/IndieDevYulin/ring-world/internal/ui/styles"
)

var twEpoch = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// revealedCount extracts how many runes the view shows ahead of the one-rune
// cursor. Valid while tests run without a TTY, where styles render as plain
// text.
func revealedCount(tw *Typewriter) int {
	return len([]rune(tw.View())) - 1
}

func TestTypewriterFirstTickArmsOnly(t *testing.T) {
	tw := NewTypewriter("hello", styles.NewTheme())

	tw.Tick(twEpoch)

	assert.False(t, tw.Done())
	assert.Equal(t, "_", tw.View())
}

func TestTypewriterRevealRampsUp(t *testing.T) {
	tw := NewTypewriter(strings.Repeat("ab", 40), styles.NewTheme())
	tw.Tick(twEpoch)

	// Half a second of 60fps ticks: typing has started but the spring is
	// still accelerating toward the full rate.
	step := 1
	for ; step <= 30; step++ {
		tw.Tick(twEpoch.Add(time.Duration(step) * springStep))
	}
	midway := revealedCount(tw)
	assert.Greater(t, midway, 0)
	assert.Less(t, midway, 25)
	assert.False(t, tw.Done())

	// Five seconds total is comfortably past 80 characters at 40 cps.
	for ; step <= 300; step++ {
		tw.Tick(twEpoch.Add(time.Duration(step) * springStep))
	}
	assert.True(t, tw.Done())
	assert.GreaterOrEqual(t, revealedCount(tw), midway)
}

func TestTypewriterSkip(t *testing.T) {
	tw := NewTypewriter("all at once", styles.NewTheme())

	tw.Skip()

	assert.True(t, tw.Done())
	assert.Contains(t, tw.View(), "all at once")
}

func TestTypewriterSetTextRestarts(t *testing.T) {
	tw := NewTypewriter("first message", styles.NewTheme())
	tw.Tick(twEpoch)
	for i := 1; i <= 60; i++ {
		tw.Tick(twEpoch.Add(time.Duration(i) * springStep))
	}
	assert.Greater(t, revealedCount(tw), 0)

	tw.SetText("fresh")

	assert.False(t, tw.Done())
	assert.Equal(t, "_", tw.View())
}

func TestTypewriterStallResumesWithoutDump(t *testing.T) {
	tw := NewTypewriter(strings.Repeat("x", 400), styles.NewTheme())
	tw.Tick(twEpoch)

	// Two seconds at 60fps reaches steady typing speed.
	for i := 1; i <= 120; i++ {
		tw.Tick(twEpoch.Add(time.Duration(i) * springStep))
	}
	beforeStall := revealedCount(tw)
	assert.Greater(t, beforeStall, 0)

	// A ten second gap reveals at most the catch-up window worth of text.
	tw.Tick(twEpoch.Add(2*time.Second + 10*time.Second))
	afterStall := revealedCount(tw)

	assert.GreaterOrEqual(t, afterStall, beforeStall)
	assert.LessOrEqual(t, afterStall-beforeStall, 8)
	assert.False(t, tw.Done())
}

func TestTypewriterCursorBlinks(t *testing.T) {
	tw := NewTypewriter("steady", styles.NewTheme())
	tw.Tick(twEpoch)

	tw.Tick(twEpoch.Add(styles.CursorBlinkRate))
	assert.True(t, strings.HasSuffix(tw.View(), styles.TypingCursor[1]))

	tw.Tick(twEpoch.Add(2 * styles.CursorBlinkRate))
	assert.True(t, strings.HasSuffix(tw.View(), styles.TypingCursor[0]))
}

func TestTypewriterEmptyTextIsDone(t *testing.T) {
	tw := NewTypewriter("", styles.NewTheme())

	assert.True(t, tw.Done())
	assert.Equal(t, "_", tw.View())
}

func TestTypewriterSetSpeedIgnoresNonPositive(t *testing.T) {
	tw := NewTypewriter("hello", styles.NewTheme())

	tw.SetSpeed(0)
	assert.Equal(t, typewriterTargetCPS, tw.targetCPS)

	tw.SetSpeed(-5)
	assert.Equal(t, typewriterTargetCPS, tw.targetCPS)

	tw.SetSpeed(80)
	assert.Equal(t, 80.0, tw.targetCPS)
}

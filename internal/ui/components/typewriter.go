// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the ringworld TUI.
package components

import (
	"time"

	"github.com/IndieDevYulin/ring-world/internal/anim"
	"github.com/IndieDevYulin/ring-world/internal/ui/styles"
)

// =============================================================================
// TYPEWRITER
// =============================================================================

// Typewriter reveal tuning. The reveal speed is spring-driven: typing ramps
// up from a standstill and settles at the target rate instead of starting at
// full speed on the first frame.
const (
	typewriterTargetCPS = 40.0
	typewriterSpringFPS = 60
	typewriterFrequency = 3.0
	typewriterDamping   = 0.9

	// springStep is the fixed timestep the speed spring integrates at.
	springStep = time.Second / typewriterSpringFPS

	// maxCatchUpSteps bounds spring integration after a stall so a long gap
	// between ticks cannot burst the reveal.
	maxCatchUpSteps = 8
)

// Typewriter reveals text one rune at a time with a blinking cursor.
type Typewriter struct {
	theme *styles.Theme

	text    []rune
	visible int
	carry   float64

	speed     *anim.Spring
	targetCPS float64

	started  bool
	startAt  time.Time
	lastTick time.Time
}

// NewTypewriter creates a typewriter for the given text.
func NewTypewriter(text string, theme *styles.Theme) *Typewriter {
	if theme == nil {
		theme = styles.NewTheme()
	}
	return &Typewriter{
		theme:     theme,
		text:      []rune(text),
		speed:     anim.NewSpring(typewriterSpringFPS, typewriterFrequency, typewriterDamping),
		targetCPS: typewriterTargetCPS,
	}
}

// SetText replaces the text and restarts the reveal.
func (t *Typewriter) SetText(text string) {
	t.text = []rune(text)
	t.Restart()
}

// SetSpeed changes the target reveal rate in characters per second.
// Non-positive rates are ignored.
func (t *Typewriter) SetSpeed(charsPerSecond float64) {
	if charsPerSecond > 0 {
		t.targetCPS = charsPerSecond
		if t.started {
			t.speed.SetTarget(charsPerSecond)
		}
	}
}

// Restart rewinds the reveal to the first character.
func (t *Typewriter) Restart() {
	t.visible = 0
	t.carry = 0
	t.started = false
	t.speed.Jump(0)
}

// Skip reveals the remaining text immediately.
func (t *Typewriter) Skip() {
	t.visible = len(t.text)
	t.carry = 0
}

// Done reports whether the whole text is visible.
func (t *Typewriter) Done() bool {
	return t.visible >= len(t.text)
}

// Tick advances the reveal to the given instant.
func (t *Typewriter) Tick(now time.Time) {
	if !t.started {
		t.started = true
		t.startAt = now
		t.lastTick = now
		t.speed.SetTarget(t.targetCPS)
		return
	}

	dt := now.Sub(t.lastTick)
	if dt <= 0 {
		return
	}
	t.lastTick = now

	steps := int(dt / springStep)
	if steps > maxCatchUpSteps {
		steps = maxCatchUpSteps
	}
	for i := 0; i < steps; i++ {
		t.speed.Tick()
	}

	if t.Done() {
		return
	}
	// Reveal over at most the catch-up window so a stall resumes typing
	// instead of dumping the backlog.
	window := dt
	if max := maxCatchUpSteps * springStep; window > max {
		window = max
	}
	t.carry += t.speed.Position() * window.Seconds()
	if reveal := int(t.carry); reveal > 0 {
		t.carry -= float64(reveal)
		t.visible += reveal
		if t.visible > len(t.text) {
			t.visible = len(t.text)
			t.carry = 0
		}
	}
}

// View renders the visible prefix and the blinking cursor.
func (t *Typewriter) View() string {
	out := t.theme.TypewriterText.Render(string(t.text[:t.visible]))
	cursor := styles.TypingCursor[t.blinkPhase()]
	return out + t.theme.TypewriterCursor.Render(cursor)
}

func (t *Typewriter) blinkPhase() int {
	if !t.started {
		return 0
	}
	n := int(t.lastTick.Sub(t.startAt) / styles.CursorBlinkRate)
	return n % len(styles.TypingCursor)
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the ringworld TUI.
package styles

import "time"

// =============================================================================
// RING GLYPHS
// =============================================================================

// RingGlyphs for the carousel rails and markers (ASCII-safe).
var RingGlyphs = struct {
	RailLeft  string // points at the focused item from the left
	RailRight string // points at the focused item from the right
	Bullet    string // unfocused slot marker
}{
	RailLeft:  ">",
	RailRight: "<",
	Bullet:    "-",
}

// DepthIndent is the number of columns a slot shifts per depth level,
// pushing unfocused items toward the "back" of the ring.
const DepthIndent = 2

// =============================================================================
// PROGRESS INDICATORS
// =============================================================================

// ProgressBar characters for gauges and other progress displays.
var (
	ProgressFull    = "#"
	ProgressEmpty   = "-"
	ProgressPartial = []string{".", ":", "+"}
)

// =============================================================================
// SPARKLINE RAMP
// =============================================================================

// SparkRamp maps normalized magnitude to a character, lowest to highest
// (ASCII-safe alternative to block elements).
var SparkRamp = []string{" ", ".", ":", "-", "=", "+", "*", "#"}

// =============================================================================
// SPINNER FRAMES
// =============================================================================

// SpinnerFrames - simple line rotation, fed to bubbles/spinner in the gallery.
var SpinnerFrames = []string{"|", "/", "-", "\\"}

// SpinnerFPS is the frame rate for SpinnerFrames.
var SpinnerFPS = time.Second / 10

// =============================================================================
// TYPING ANIMATION
// =============================================================================

// TypingCursor characters for blinking cursor
var TypingCursor = []string{"_", " "}

// CursorBlinkRate is the rate at which the cursor blinks
var CursorBlinkRate = 530 * time.Millisecond

// =============================================================================
// BORDER CHARACTERS (for custom borders)
// =============================================================================

// BoxChars for custom box drawing (ASCII-safe)
var BoxChars = struct {
	// Corners
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	// Lines
	Horizontal string
	Vertical   string
	// Double lines for focused frames
	HorizontalDouble string
	VerticalDouble   string
}{
	TopLeft:          "+",
	TopRight:         "+",
	BottomLeft:       "+",
	BottomRight:      "+",
	Horizontal:       "-",
	Vertical:         "|",
	HorizontalDouble: "=",
	VerticalDouble:   "|",
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the ringworld TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// Accent overrides the focused-item color when set (config theme.accent).
	accent lipgloss.AdaptiveColor

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// ==========================================================================
	// RING STYLES
	// ==========================================================================

	RingRail        lipgloss.Style
	RingDescription lipgloss.Style

	// depthStyles is indexed by ring depth; built from DepthRamp in initStyles.
	depthStyles []lipgloss.Style

	// ==========================================================================
	// SEEK STYLES
	// ==========================================================================

	SeekPrompt lipgloss.Style
	SeekQuery  lipgloss.Style
	SeekMiss   lipgloss.Style

	// ==========================================================================
	// FRAME STYLES
	// ==========================================================================

	FrameBorder        lipgloss.Style
	FrameBorderFocused lipgloss.Style
	FrameTitle         lipgloss.Style

	// ==========================================================================
	// GAUGE AND SPARKLINE STYLES
	// ==========================================================================

	GaugeFilled lipgloss.Style
	GaugeEmpty  lipgloss.Style
	GaugeLabel  lipgloss.Style
	Sparkline   lipgloss.Style

	// ==========================================================================
	// TYPEWRITER STYLES
	// ==========================================================================

	TypewriterText   lipgloss.Style
	TypewriterCursor lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// OVERLAY STYLES
	// ==========================================================================

	OverlayBox   lipgloss.Style
	OverlayTitle lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	// Detect terminal capabilities
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor
	isDark := termenv.HasDarkBackground()

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
		accent:       Cyan,
	}

	t.initStyles()
	return t
}

// SetAccent overrides the focused-item accent with a single hex color
// (applied to both light and dark backgrounds). An empty value keeps the
// current accent. Styles are rebuilt.
func (t *Theme) SetAccent(hex string) {
	if hex == "" {
		return
	}
	t.accent = lipgloss.AdaptiveColor{Light: hex, Dark: hex}
	t.initStyles()
}

// ApplyMode forces light or dark rendering regardless of detection.
// Recognized modes are "dark", "light", and "auto" (keep detection).
func (t *Theme) ApplyMode(mode string) {
	switch mode {
	case "dark":
		t.IsDark = true
		lipgloss.SetHasDarkBackground(true)
	case "light":
		t.IsDark = false
		lipgloss.SetHasDarkBackground(false)
	}
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.accent)

	t.Subtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Ring: one style per depth, focused slot bold in the accent color,
	// deeper slots following DepthRamp.
	t.depthStyles = make([]lipgloss.Style, len(DepthRamp))
	t.depthStyles[0] = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.accent)
	for depth := 1; depth < len(DepthRamp); depth++ {
		t.depthStyles[depth] = lipgloss.NewStyle().
			Foreground(DepthRamp[depth])
	}

	t.RingRail = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.RingDescription = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Seek mode
	t.SeekPrompt = lipgloss.NewStyle().
		Foreground(t.accent).
		Bold(true)

	t.SeekQuery = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(SurfaceDim).
		Padding(0, 1)

	t.SeekMiss = lipgloss.NewStyle().
		Foreground(Rose)

	// Frames
	t.FrameBorder = lipgloss.NewStyle().
		Foreground(Overlay)

	t.FrameBorderFocused = lipgloss.NewStyle().
		Foreground(Purple)

	t.FrameTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextSecondary)

	// Gauges and sparklines
	t.GaugeFilled = lipgloss.NewStyle().
		Foreground(Emerald)

	t.GaugeEmpty = lipgloss.NewStyle().
		Foreground(OverlayDim)

	t.GaugeLabel = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.Sparkline = lipgloss.NewStyle().
		Foreground(t.accent)

	// Typewriter
	t.TypewriterText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.TypewriterCursor = lipgloss.NewStyle().
		Foreground(t.accent).
		Bold(true)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(t.accent).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Overlays (gallery help and snippet pages)
	t.OverlayBox = lipgloss.NewStyle().
		Background(Surface).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(1, 2)

	t.OverlayTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)
}

// DepthStyle returns the style for a ring slot at the given depth.
// Negative depths are treated as focused; depths past the ramp clamp
// to the deepest style.
func (t *Theme) DepthStyle(depth int) lipgloss.Style {
	if depth < 0 {
		depth = 0
	}
	if depth >= len(t.depthStyles) {
		depth = len(t.depthStyles) - 1
	}
	return t.depthStyles[depth]
}

// MaxDepth returns the deepest distinct depth level. Slots deeper than
// this share the final style.
func (t *Theme) MaxDepth() int {
	return len(t.depthStyles) - 1
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)

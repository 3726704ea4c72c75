// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the ringworld TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/IndieDevYulin/ring-world/internal/ui/styles"
	"github.com/IndieDevYulin/ring-world/internal/util"
)

// =============================================================================
// TITLED FRAME
// =============================================================================

// Frame draws a titled ASCII box around content. A focused frame switches to
// double horizontal rules so keyboard focus reads without color.
type Frame struct {
	Title   string
	Focused bool

	// Width fixes the interior width in columns. Zero sizes to the widest
	// content line.
	Width int

	theme *styles.Theme
}

// NewFrame creates a frame with the given title.
func NewFrame(title string, theme *styles.Theme) Frame {
	if theme == nil {
		theme = styles.NewTheme()
	}
	return Frame{Title: title, theme: theme}
}

// Render wraps content in the frame. Content may span multiple lines and may
// already carry ANSI styling; measurement is ANSI-aware.
func (f Frame) Render(content string) string {
	lines := strings.Split(content, "\n")

	interior := f.Width
	if interior <= 0 {
		for _, line := range lines {
			if w := lipgloss.Width(line); w > interior {
				interior = w
			}
		}
	}
	// Room for one space of padding on each side of the title.
	titleBudget := interior - 2
	title := util.TruncateWidth(f.Title, titleBudget)

	horizontal := styles.BoxChars.Horizontal
	if f.Focused {
		horizontal = styles.BoxChars.HorizontalDouble
	}

	border := f.theme.FrameBorder
	if f.Focused {
		border = f.theme.FrameBorderFocused
	}

	var b strings.Builder

	// Top rule with the title embedded: +- Title ----+
	b.WriteString(border.Render(styles.BoxChars.TopLeft + horizontal))
	rest := interior
	if title != "" {
		b.WriteString(f.theme.FrameTitle.Render(" " + title + " "))
		rest = interior - util.StringWidth(title) - 2
	}
	b.WriteString(border.Render(strings.Repeat(horizontal, rest+1) + styles.BoxChars.TopRight))
	b.WriteString("\n")

	vertical := border.Render(styles.BoxChars.Vertical)
	for _, line := range lines {
		pad := interior - lipgloss.Width(line)
		if pad < 0 {
			pad = 0
		}
		b.WriteString(vertical + " " + line + strings.Repeat(" ", pad) + " " + vertical)
		b.WriteString("\n")
	}

	b.WriteString(border.Render(
		styles.BoxChars.BottomLeft + strings.Repeat(horizontal, interior+2) + styles.BoxChars.BottomRight))

	return b.String()
}

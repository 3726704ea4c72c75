// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the ringworld TUI.
package components

import (
	"strings"

	"github.com/IndieDevYulin/ring-world/internal/ui/styles"
)

// =============================================================================
// SPARKLINE
// =============================================================================

// Sparkline renders a numeric series as a single line over a fixed character
// ramp. It keeps at most width samples; older samples fall off the left.
type Sparkline struct {
	theme *styles.Theme
	width int
	data  []float64
}

// NewSparkline creates a sparkline that shows up to width samples.
func NewSparkline(width int, theme *styles.Theme) *Sparkline {
	if theme == nil {
		theme = styles.NewTheme()
	}
	if width < 1 {
		width = 1
	}
	return &Sparkline{theme: theme, width: width}
}

// Push appends a sample, evicting the oldest once the line is full.
func (s *Sparkline) Push(v float64) {
	s.data = append(s.data, v)
	if len(s.data) > s.width {
		s.data = s.data[len(s.data)-s.width:]
	}
}

// SetData replaces the series. Only the most recent width samples are kept.
func (s *Sparkline) SetData(data []float64) {
	s.data = s.data[:0]
	for _, v := range data {
		s.Push(v)
	}
}

// Len returns the number of held samples.
func (s *Sparkline) Len() int {
	return len(s.data)
}

// View renders the series scaled to its own min/max. A flat series renders
// at the lowest visible ramp level so presence still reads.
func (s *Sparkline) View() string {
	if len(s.data) == 0 {
		return ""
	}

	lo, hi := s.data[0], s.data[0]
	for _, v := range s.data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	var b strings.Builder
	b.Grow(len(s.data))
	top := len(styles.SparkRamp) - 1
	for _, v := range s.data {
		level := 1
		if hi > lo {
			level = 1 + int((v-lo)/(hi-lo)*float64(top-1))
			if level > top {
				level = top
			}
		}
		b.WriteString(styles.SparkRamp[level])
	}
	return s.theme.Sparkline.Render(b.String())
}

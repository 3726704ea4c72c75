// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/IndieDevYulin/ring-world/internal/ui/styles"
)

func TestFrameRenderBox(t *testing.T) {
	f := NewFrame("Ring", styles.NewTheme())

	got := f.Render("hello world")

	want := strings.Join([]string{
		"+- Ring ------+",
		"| hello world |",
		"+-------------+",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFrameFocusedUsesDoubleRule(t *testing.T) {
	f := NewFrame("Ring", styles.NewTheme())
	f.Focused = true

	got := f.Render("hello world")

	want := strings.Join([]string{
		"+= Ring ======+",
		"| hello world |",
		"+=============+",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFrameWithoutTitle(t *testing.T) {
	f := NewFrame("", styles.NewTheme())

	got := f.Render("ab")

	want := strings.Join([]string{
		"+----+",
		"| ab |",
		"+----+",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFrameFixedWidthPadsContent(t *testing.T) {
	f := NewFrame("", styles.NewTheme())
	f.Width = 10

	got := f.Render("hi")

	for _, line := range strings.Split(got, "\n") {
		assert.Equal(t, 14, lipgloss.Width(line), "line %q", line)
	}
	assert.Contains(t, got, "| hi         |")
}

func TestFrameAlignsMultilineContent(t *testing.T) {
	f := NewFrame("", styles.NewTheme())

	got := f.Render("one\nthree33")
	lines := strings.Split(got, "\n")

	assert.Len(t, lines, 4)
	for _, line := range lines {
		assert.Equal(t, 11, lipgloss.Width(line), "line %q", line)
	}
	assert.Equal(t, "| one     |", lines[1])
	assert.Equal(t, "| three33 |", lines[2])
}

func TestFrameTruncatesLongTitle(t *testing.T) {
	f := NewFrame("Configuration", styles.NewTheme())
	f.Width = 8

	got := f.Render("x")
	lines := strings.Split(got, "\n")

	assert.Equal(t, "+- Con... -+", lines[0])
	assert.Equal(t, 12, lipgloss.Width(lines[0]))
}

func TestFrameDropsTitleWhenNoRoom(t *testing.T) {
	f := NewFrame("Ring", styles.NewTheme())

	got := f.Render("")

	want := strings.Join([]string{
		"+--+",
		"|  |",
		"+--+",
	}, "\n")
	assert.Equal(t, want, got)
}

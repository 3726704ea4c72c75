// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the ringworld TUI.
package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/IndieDevYulin/ring-world/internal/anim"
	"github.com/IndieDevYulin/ring-world/internal/ui/styles"
)

// =============================================================================
// CHARACTER BAR
// =============================================================================

// barSegments splits a bar of the given width at percent (0-100) into its
// filled and empty runs. The filled run ends with a partial glyph when the
// boundary lands inside a cell.
func barSegments(width int, percent float64) (filled, empty string) {
	if width <= 0 {
		return "", ""
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	cells := float64(width) * percent / 100
	full := int(cells)
	partialIdx := int((cells - float64(full)) * float64(len(styles.ProgressPartial)+1))

	var fb strings.Builder
	fb.Grow(width)
	for i := 0; i < full && i < width; i++ {
		fb.WriteString(styles.ProgressFull)
	}
	if full < width && partialIdx > 0 {
		fb.WriteString(styles.ProgressPartial[partialIdx-1])
		full++
	}
	filled = fb.String()
	empty = strings.Repeat(styles.ProgressEmpty, width-full)
	return filled, empty
}

// RenderBar creates an unstyled progress bar string.
// width: total width of the bar in characters
// percent: 0-100 percentage complete
func RenderBar(width int, percent float64) string {
	filled, empty := barSegments(width, percent)
	return filled + empty
}

// =============================================================================
// EASED GAUGE
// =============================================================================

// Gauge is a character progress bar that eases toward its target instead of
// jumping, so rapid target changes read as motion.
type Gauge struct {
	theme *styles.Theme
	anim  *anim.Animator

	label       string
	width       int
	target      float64
	showPercent bool
}

// NewGauge creates a gauge with the given label and bar width.
func NewGauge(label string, width int, theme *styles.Theme) *Gauge {
	if theme == nil {
		theme = styles.NewTheme()
	}
	if width < 4 {
		width = 4
	}
	return &Gauge{
		theme:       theme,
		anim:        anim.NewAnimator(0),
		label:       label,
		width:       width,
		showPercent: true,
	}
}

// SetTarget sets the percentage (0-100) the gauge eases toward.
func (g *Gauge) SetTarget(percent float64) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	g.target = percent
}

// Target returns the percentage the gauge is heading toward.
func (g *Gauge) Target() float64 {
	return g.target
}

// SetDuration changes how long each easing transition takes.
func (g *Gauge) SetDuration(d time.Duration) {
	g.anim.SetDuration(d)
}

// SetEasing changes the easing curve. Nil is ignored.
func (g *Gauge) SetEasing(fn anim.EasingFunc) {
	g.anim.SetEasing(fn)
}

// ShowPercent toggles the numeric percentage readout.
func (g *Gauge) ShowPercent(show bool) {
	g.showPercent = show
}

// Update advances the gauge to the given instant and returns the displayed
// percentage.
func (g *Gauge) Update(now time.Time) float64 {
	return g.anim.Update(g.target, now)
}

// Settled reports whether the displayed value has reached the target.
func (g *Gauge) Settled() bool {
	return g.anim.Settled()
}

// View renders the gauge at its last updated value.
func (g *Gauge) View() string {
	percent := g.anim.Current()
	filled, empty := barSegments(g.width, percent)

	var b strings.Builder
	if g.label != "" {
		b.WriteString(g.theme.GaugeLabel.Render(g.label))
		b.WriteString(" ")
	}
	b.WriteString(g.theme.GaugeFilled.Render(filled))
	b.WriteString(g.theme.GaugeEmpty.Render(empty))
	if g.showPercent {
		b.WriteString(g.theme.GaugeLabel.Render(fmt.Sprintf(" %3.0f%%", percent)))
	}
	return b.String()
}

// =============================================================================
// GRADIENT GAUGE
// =============================================================================

// GradientGauge renders a progress bar with a color gradient fill via
// bubbles/progress. Unlike Gauge it does not animate on its own; drive it
// from an eased value when motion is wanted.
type GradientGauge struct {
	model   progress.Model
	percent float64
}

// NewGradientGauge creates a gradient progress bar of the given width.
func NewGradientGauge(width int) *GradientGauge {
	if width < 4 {
		width = 4
	}
	m := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(width),
	)
	return &GradientGauge{model: m}
}

// SetPercent sets the displayed fraction (0-1).
func (g *GradientGauge) SetPercent(p float64) {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	g.percent = p
}

// Percent returns the displayed fraction (0-1).
func (g *GradientGauge) Percent() float64 {
	return g.percent
}

// View renders the bar at the current fraction.
func (g *GradientGauge) View() string {
	return g.model.ViewAs(g.percent)
}

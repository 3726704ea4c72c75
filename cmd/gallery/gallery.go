// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"math"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/IndieDevYulin/ring-world/internal/ring"
	"github.com/IndieDevYulin/ring-world/internal/ui/components"
	"github.com/IndieDevYulin/ring-world/internal/ui/styles"
)

// =============================================================================
// PAGES
// =============================================================================

type page int

const (
	pageFrame page = iota
	pageProgress
	pageSparkline
	pageTypewriter
	pageRing
	pageCount
)

func (p page) title() string {
	switch p {
	case pageFrame:
		return "Frame"
	case pageProgress:
		return "Progress"
	case pageSparkline:
		return "Sparkline"
	case pageTypewriter:
		return "Typewriter"
	case pageRing:
		return "Ring"
	}
	return ""
}

type overlay int

const (
	overlayNone overlay = iota
	overlayHelp
	overlaySource
)

// =============================================================================
// MESSAGES
// =============================================================================

// galleryTickMsg drives every non-ring animation at a steady rate.
type galleryTickMsg time.Time

func galleryTick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg {
		return galleryTickMsg(t)
	})
}

// =============================================================================
// MODEL
// =============================================================================

// gaugeTargets is the loop of values the demo gauge eases between.
var gaugeTargets = [...]float64{15, 85, 40, 100, 60}

// ringLog records the last ring gesture for the caption under the ring.
type ringLog struct {
	last string
}

// galleryModel hosts one widget per page with a spinner in the footer.
type galleryModel struct {
	theme *styles.Theme

	page    page
	overlay overlay

	width  int
	height int

	spin     spinner.Model
	gauge    *components.Gauge
	gradient *components.GradientGauge
	spark    *components.Sparkline
	writer   *components.Typewriter
	ring     *components.Ring
	ringLog  *ringLog

	ticks       int
	gaugeIdx    int
	gaugePause  int
	writerPause int

	helpCache string
	srcCache  string
}

const writerText = "The ring holds eight items. Five are visible; the " +
	"rest wait just past the rails, one move away."

func newGallery(theme *styles.Theme) (galleryModel, error) {
	sp := spinner.New()
	sp.Spinner = spinner.Spinner{
		Frames: styles.SpinnerFrames,
		FPS:    styles.SpinnerFPS,
	}
	sp.Style = theme.ShortcutKey

	gauge := components.NewGauge("download", 28, theme)
	gauge.SetTarget(gaugeTargets[0])

	items := []ring.Item{
		{ID: "alpha", Label: "Alpha", Icon: "a", Description: "First of five."},
		{ID: "bravo", Label: "Bravo", Icon: "b", Description: "Second of five."},
		{ID: "charlie", Label: "Charlie", Icon: "c", Description: "Third of five."},
		{ID: "delta", Label: "Delta", Icon: "d", Description: "Fourth of five."},
		{ID: "echo", Label: "Echo", Icon: "e", Description: "Last of five."},
	}
	rng, err := components.NewRing(items, components.DefaultRingOptions(), theme, nil)
	if err != nil {
		return galleryModel{}, err
	}

	log := &ringLog{last: "waiting for a gesture"}
	rng.OnSelect(func(item ring.Item, _ int) { log.last = "selected " + item.Label })
	rng.OnDoublePress(func(item ring.Item, _ int) { log.last = "double-pressed " + item.Label })
	rng.OnLongPress(func(item ring.Item, _ int) { log.last = "long-pressed " + item.Label })
	rng.OnBack(func() { log.last = "back" })

	return galleryModel{
		theme:    theme,
		spin:     sp,
		gauge:    gauge,
		gradient: components.NewGradientGauge(28),
		spark:    components.NewSparkline(40, theme),
		writer:   components.NewTypewriter(writerText, theme),
		ring:     rng,
		ringLog:  log,
	}, nil
}

func (m *galleryModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.theme.SetSize(width, height)
}

func (m galleryModel) frameInterior() int {
	interior := m.width - 4
	if interior > 64 {
		interior = 64
	}
	if interior < 0 {
		interior = 0
	}
	return interior
}

// =============================================================================
// UPDATE
// =============================================================================

func (m galleryModel) Init() tea.Cmd {
	return tea.Batch(galleryTick(), m.spin.Tick)
}

func (m galleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		var cmd tea.Cmd
		m.ring, cmd = m.ring.Update(msg)
		return m, cmd

	case galleryTickMsg:
		m.advance(time.Time(msg))
		return m, galleryTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Ring frame ticks.
	var cmd tea.Cmd
	m.ring, cmd = m.ring.Update(msg)
	return m, cmd
}

// advance steps the gauge, sparkline, and typewriter one tick.
func (m *galleryModel) advance(now time.Time) {
	m.ticks++

	value := m.gauge.Update(now)
	m.gradient.SetPercent(value / 100)
	if m.gauge.Settled() {
		m.gaugePause++
		if m.gaugePause > 20 {
			m.gaugePause = 0
			m.gaugeIdx = (m.gaugeIdx + 1) % len(gaugeTargets)
			m.gauge.SetTarget(gaugeTargets[m.gaugeIdx])
		}
	}

	t := float64(m.ticks)
	m.spark.Push(math.Sin(t/7)*0.8 + math.Sin(t/3)*0.2)

	if m.writer.Done() {
		m.writerPause++
		if m.writerPause > 45 {
			m.writerPause = 0
			m.writer.Restart()
		}
	} else {
		m.writer.Tick(now)
	}
}

func (m galleryModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.overlay != overlayNone {
		switch key {
		case "ctrl+c":
			return m, tea.Quit
		case "esc", "q", "?", "s", "enter", " ":
			m.overlay = overlayNone
		}
		return m, nil
	}

	// Seek owns the runes while it is open.
	if m.page == pageRing && m.ring.Seeking() {
		if key == "ctrl+c" {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.ring, cmd = m.ring.Update(msg)
		return m, cmd
	}

	switch key {
	case "q", "ctrl+c", "esc":
		m.ring.Close()
		return m, tea.Quit
	case "tab":
		m.page = (m.page + 1) % pageCount
		return m, nil
	case "shift+tab":
		m.page = (m.page + pageCount - 1) % pageCount
		return m, nil
	case "?":
		m.overlay = overlayHelp
		if m.helpCache == "" {
			m.helpCache = renderMarkdown(helpMarkdown)
		}
		return m, nil
	case "s":
		m.overlay = overlaySource
		m.srcCache = highlightGo(pageSnippets[m.page])
		return m, nil
	}

	if m.page == pageRing {
		var cmd tea.Cmd
		m.ring, cmd = m.ring.Update(msg)
		return m, cmd
	}
	return m, nil
}

// =============================================================================
// VIEW
// =============================================================================

func (m galleryModel) View() string {
	if m.width == 0 {
		return "loading..."
	}

	switch m.overlay {
	case overlayHelp:
		return m.overlayView("help", m.helpCache)
	case overlaySource:
		return m.overlayView(m.page.title()+" source", m.srcCache)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		m.pageFrame(),
		m.footerView(),
	)
}

func (m galleryModel) headerView() string {
	tabs := make([]string, 0, pageCount)
	for p := page(0); p < pageCount; p++ {
		name := p.title()
		if p == m.page {
			tabs = append(tabs, m.theme.OverlayTitle.Render("["+name+"]"))
		} else {
			tabs = append(tabs, m.theme.ShortcutDesc.Render(" "+name+" "))
		}
	}
	return " " + strings.Join(tabs, " ")
}

func (m galleryModel) pageFrame() string {
	frame := components.NewFrame(m.page.title(), m.theme)
	frame.Focused = true
	frame.Width = m.frameInterior()
	return frame.Render(m.pageBody())
}

func (m galleryModel) pageBody() string {
	switch m.page {
	case pageFrame:
		plain := components.NewFrame("plain", m.theme)
		focused := components.NewFrame("focused", m.theme)
		focused.Focused = true
		return lipgloss.JoinVertical(lipgloss.Left,
			plain.Render("Single rules: an unfocused box."),
			"",
			focused.Render("Double rules: the focused box."),
		)

	case pageProgress:
		return lipgloss.JoinVertical(lipgloss.Left,
			m.gauge.View(),
			"",
			m.gradient.View(),
			"",
			m.theme.GaugeLabel.Render("raw      ")+components.RenderBar(28, 50),
		)

	case pageSparkline:
		return lipgloss.JoinVertical(lipgloss.Left,
			m.spark.View(),
			"",
			m.theme.ShortcutDesc.Render("two sine waves, pushed at 30 samples/sec"),
		)

	case pageTypewriter:
		return m.writer.View()

	case pageRing:
		return lipgloss.JoinVertical(lipgloss.Left,
			m.ring.View(),
			"",
			m.theme.ShortcutDesc.Render(m.ringLog.last),
		)
	}
	return ""
}

func (m galleryModel) footerView() string {
	type shortcut struct{ key, desc string }
	entries := []shortcut{
		{"tab", "next page"},
		{"?", "help"},
		{"s", "source"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(m.spin.View())
	for _, s := range entries {
		b.WriteString("  ")
		b.WriteString(m.theme.ShortcutKey.Render(s.key))
		b.WriteString(" ")
		b.WriteString(m.theme.ShortcutDesc.Render(s.desc))
	}
	return b.String()
}

func (m galleryModel) overlayView(title, body string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.OverlayBox.Render(lipgloss.JoinVertical(lipgloss.Left,
			m.theme.OverlayTitle.Render(title),
			"",
			body,
		)),
		m.theme.ShortcutDesc.Render(" esc close"),
	)
}

// =============================================================================
// MARKDOWN AND SYNTAX HIGHLIGHTING
// =============================================================================

// markdownRenderer is the glamour renderer for the help overlay. Nil when
// initialization failed; renderMarkdown then falls back to the raw text.
var markdownRenderer *glamour.TermRenderer

func init() {
	var err error
	markdownRenderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)
	if err != nil {
		markdownRenderer = nil
	}
}

func renderMarkdown(content string) string {
	if markdownRenderer == nil {
		return content
	}
	out, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(out, "\n")
}

// highlightGo renders Go source with ANSI colors via chroma. Any failure
// falls back to the plain text.
func highlightGo(code string) string {
	lexer := lexers.Get("go")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get("monokai")
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return strings.TrimRight(buf.String(), "\n")
}

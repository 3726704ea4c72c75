// ringworld - a 3D ring carousel launcher for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/IndieDevYulin/ring-world/internal/cli"
	"github.com/IndieDevYulin/ring-world/internal/config"
	"github.com/IndieDevYulin/ring-world/internal/manifest"
	"github.com/IndieDevYulin/ring-world/internal/ring"
	"github.com/IndieDevYulin/ring-world/internal/ui/components"
	"github.com/IndieDevYulin/ring-world/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Global program reference so the config watcher goroutine can inject
// reload messages into the running program.
var (
	programRef *tea.Program
	programMu  sync.Mutex
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdVersion:
		cli.HandleVersion(args)

	case cli.CmdHelp:
		cli.HandleHelp()

	case cli.CmdGallery:
		cli.HandleGallery()

	case cli.CmdConfig:
		if err := cli.HandleConfig(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case cli.CmdUnknown:
		os.Exit(cli.HandleUnknown(args))

	case cli.CmdDemo:
		if err := runDemo(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

// =============================================================================
// DEMO RUNNER
// =============================================================================

// runDemo starts the interactive ring launcher and blocks until it exits.
func runDemo(args cli.Args) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal (try 'ringworld config show' for non-interactive use)")
	}

	cfg := loadDemoConfig(args)
	config.SetGlobal(cfg)

	theme := styles.NewTheme()
	theme.ApplyMode(cfg.Theme.Mode)
	theme.SetAccent(cfg.Theme.Accent)

	items, title := loadItems(cfg)

	model, err := newDemoModel(cfg, theme, items, title)
	if err != nil {
		return err
	}

	// Size the layout before the first frame; bubbletea sends its own
	// WindowSizeMsg once running.
	if w, h, serr := term.GetSize(int(os.Stdout.Fd())); serr == nil {
		model.resize(w, h)
		model.ring.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}

	var opts []tea.ProgramOption
	if cfg.Render.AltScreen && !args.NoAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(model, opts...)
	programMu.Lock()
	programRef = p
	programMu.Unlock()

	if args.Watch {
		if watcher := startConfigWatch(args); watcher != nil {
			defer watcher.Close()
		}
	}

	finalModel, err := p.Run()

	programMu.Lock()
	programRef = nil
	programMu.Unlock()

	if err != nil {
		return fmt.Errorf("demo failed: %w", err)
	}

	if m, ok := finalModel.(demoModel); ok && m.hasSelection {
		fmt.Println(styles.RenderSuccess(fmt.Sprintf("selected %s", m.selected.Label)))
	}
	return nil
}

// loadDemoConfig loads configuration for the demo, falling back to defaults
// when the file is missing or malformed. CLI flags win over file and
// environment values.
func loadDemoConfig(args cli.Args) *config.Config {
	var (
		cfg *config.Config
		err error
	)
	if args.ConfigPath != "" {
		cfg, err = config.LoadFromPath(args.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.RenderWarning(fmt.Sprintf("%v (using defaults)", err)))
	}

	if args.ItemsPath != "" {
		cfg.ManifestPath = args.ItemsPath
	}
	if args.NoAltScreen {
		cfg.Render.AltScreen = false
	}
	if args.FPS > 0 {
		fps := args.FPS
		if fps > 240 {
			fmt.Fprintln(os.Stderr, styles.RenderWarning("--fps capped at 240"))
			fps = 240
		}
		cfg.Render.FPS = fps
	}
	return cfg
}

// loadItems resolves the ring items: the configured manifest when one is
// set, otherwise the built-in demo set. Manifest problems fall back rather
// than abort so a bad path still demos something.
func loadItems(cfg *config.Config) ([]ring.Item, string) {
	if cfg.ManifestPath != "" {
		m, err := manifest.Load(cfg.ManifestPath)
		if err == nil {
			return m.RingItems(), m.Title
		}
		fmt.Fprintln(os.Stderr, styles.RenderWarning(fmt.Sprintf("%v (using built-in items)", err)))
	}
	m := manifest.Default()
	return m.RingItems(), m.Title
}

// startConfigWatch wires the fsnotify watcher to the running program. A
// watch failure degrades to a warning; the demo still runs.
func startConfigWatch(args cli.Args) config.Watcher {
	path := args.ConfigPath
	if path == "" {
		var err error
		path, err = config.ConfigPathTOML()
		if err != nil {
			fmt.Fprintln(os.Stderr, styles.RenderWarning(fmt.Sprintf("config watch disabled: %v", err)))
			return nil
		}
	}

	// StartWatcher swaps the global config itself; this callback only has
	// to deliver the new revision to the running program.
	watcher, err := config.StartWatcher(path, func(next *config.Config) {
		programMu.Lock()
		ref := programRef
		programMu.Unlock()
		if ref != nil {
			ref.Send(configReloadedMsg{cfg: next})
		}
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.RenderWarning(fmt.Sprintf("config watch disabled: %v", err)))
		return nil
	}
	return watcher
}

// =============================================================================
// MESSAGES
// =============================================================================

// configReloadedMsg delivers a hot-reloaded configuration from the watcher
// goroutine into the program's event loop.
type configReloadedMsg struct {
	cfg *config.Config
}

// detailsTickMsg drives the details overlay typewriter.
type detailsTickMsg struct{}

func detailsTick() tea.Cmd {
	return tea.Tick(time.Second/30, func(time.Time) tea.Msg {
		return detailsTickMsg{}
	})
}

// =============================================================================
// DEMO MODEL
// =============================================================================

// demoState selects which surface owns the keyboard.
type demoState int

const (
	stateRing demoState = iota
	stateDetails
)

// demoEvents carries ring callback results back into Update. The callbacks
// close over one shared instance; Update drains it after every message the
// ring consumes, so gesture timers resolving on frame ticks are picked up
// the same as direct key presses.
type demoEvents struct {
	selected      *ring.Item
	doublePressed *ring.Item
	longPressed   *ring.Item
	back          bool
}

// demoModel is the launcher program: a titled frame around the ring, a
// status line, a shortcut bar, and a long-press details overlay.
type demoModel struct {
	cfg   *config.Config
	theme *styles.Theme

	ring   *components.Ring
	frame  components.Frame
	title  string
	count  int
	events *demoEvents

	state      demoState
	details    *components.Typewriter
	detailsFor ring.Item

	marked map[string]bool
	status string

	width  int
	height int

	selected     ring.Item
	hasSelection bool
	quitting     bool
}

// newDemoModel builds the ring from configuration and wires its callbacks.
func newDemoModel(cfg *config.Config, theme *styles.Theme, items []ring.Item, title string) (demoModel, error) {
	opts := components.RingOptions{
		WindowSize:        cfg.Ring.WindowSize,
		Wrap:              cfg.Ring.Wrap,
		MoveDuration:      cfg.Ring.MoveDuration(),
		PositionEasing:    cfg.Ring.PositionEasing,
		ShowDescription:   cfg.Ring.ShowDescription,
		SeekEnabled:       cfg.Ring.SeekEnabled,
		FPS:               cfg.Render.FPS,
		LongPressAfter:    cfg.Input.LongPress(),
		DoublePressWindow: cfg.Input.DoublePress(),
		MoveRatePerSec:    cfg.Input.MoveRatePerSec,
		MoveBurst:         cfg.Input.MoveBurst,
	}

	rng, err := components.NewRing(items, opts, theme, nil)
	if err != nil {
		return demoModel{}, fmt.Errorf("failed to build ring: %w", err)
	}

	events := &demoEvents{}
	rng.OnSelect(func(item ring.Item, index int) {
		events.selected = &item
	})
	rng.OnDoublePress(func(item ring.Item, index int) {
		events.doublePressed = &item
	})
	rng.OnLongPress(func(item ring.Item, index int) {
		events.longPressed = &item
	})
	rng.OnBack(func() {
		events.back = true
	})

	frame := components.NewFrame(title, theme)
	frame.Focused = true

	return demoModel{
		cfg:     cfg,
		theme:   theme,
		ring:    rng,
		frame:   frame,
		title:   title,
		count:   len(items),
		events:  events,
		details: components.NewTypewriter("", theme),
		marked:  make(map[string]bool),
	}, nil
}

// resize records terminal dimensions and fixes the frame interior so slot
// text changing width during animation does not make the border jitter.
func (m *demoModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.theme.SetSize(width, height)

	interior := width - 4
	if interior > 68 {
		interior = 68
	}
	if interior < 0 {
		interior = 0
	}
	m.frame.Width = interior
}

func (m demoModel) Init() tea.Cmd {
	return m.ring.Init()
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		var cmd tea.Cmd
		m.ring, cmd = m.ring.Update(msg)
		return m, cmd

	case configReloadedMsg:
		m.status = "configuration reloaded"
		m.applyConfig(msg.cfg)
		return m, nil

	case detailsTickMsg:
		if m.state != stateDetails {
			return m, nil
		}
		m.details.Tick(time.Now())
		return m, detailsTick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Frame ticks and anything else the ring understands.
	var cmd tea.Cmd
	m.ring, cmd = m.ring.Update(msg)
	return m.drain(cmd)
}

// handleKey routes keys to the active surface. Chrome keys (quit, theme
// toggle) stay app-level except while seek owns the runes.
func (m demoModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.state == stateDetails {
		return m.handleDetailsKey(key)
	}

	if m.ring.Seeking() {
		if key == "ctrl+c" {
			return m.quit()
		}
	} else {
		switch key {
		case "q", "ctrl+c":
			return m.quit()
		case "tab":
			m.toggleThemeMode()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.ring, cmd = m.ring.Update(msg)
	return m.drain(cmd)
}

// handleDetailsKey drives the overlay: a close key first skips the
// typewriter to the full text, then closes.
func (m demoModel) handleDetailsKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c":
		return m.quit()
	case "esc", "q", "enter", " ":
		if !m.details.Done() {
			m.details.Skip()
			return m, nil
		}
		m.state = stateRing
		return m, nil
	}
	return m, nil
}

// drain applies callback results recorded during the ring's Update.
func (m demoModel) drain(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	ev := m.events

	if ev.back {
		ev.back = false
		return m.quit()
	}

	if item := ev.longPressed; item != nil {
		ev.longPressed = nil
		m.state = stateDetails
		m.detailsFor = *item
		m.details.SetText(detailText(*item, m.marked[item.ID]))
		m.details.Restart()
		return m, tea.Batch(cmd, detailsTick())
	}

	if item := ev.doublePressed; item != nil {
		ev.doublePressed = nil
		if m.marked[item.ID] {
			delete(m.marked, item.ID)
			m.status = fmt.Sprintf("unmarked %s", item.Label)
		} else {
			m.marked[item.ID] = true
			m.status = fmt.Sprintf("marked %s", item.Label)
		}
		return m, cmd
	}

	if item := ev.selected; item != nil {
		ev.selected = nil
		m.selected = *item
		m.hasSelection = true
		return m.quit()
	}

	return m, cmd
}

func (m demoModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.ring.Close()
	return m, tea.Quit
}

// applyConfig pushes a reloaded configuration into the live widgets.
func (m *demoModel) applyConfig(next *config.Config) {
	m.cfg = next

	if err := m.ring.SetWindowSize(next.Ring.WindowSize); err != nil {
		m.status = fmt.Sprintf("reload: %v", err)
	}
	m.ring.SetMoveDuration(next.Ring.MoveDuration())
	m.ring.SetEasing(next.Ring.PositionEasing)
	m.ring.SetShowDescription(next.Ring.ShowDescription)
	m.ring.SetSeekEnabled(next.Ring.SeekEnabled)
	m.ring.SetFPS(next.Render.FPS)
	m.ring.SetLongPressAfter(next.Input.LongPress())
	m.ring.SetDoublePressWindow(next.Input.DoublePress())
	m.ring.SetMoveThrottle(next.Input.MoveRatePerSec, next.Input.MoveBurst)

	m.theme.ApplyMode(next.Theme.Mode)
	m.theme.SetAccent(next.Theme.Accent)
}

// toggleThemeMode flips between dark and light backgrounds at runtime.
func (m *demoModel) toggleThemeMode() {
	if m.theme.IsDark {
		m.theme.ApplyMode("light")
		m.status = "light mode"
	} else {
		m.theme.ApplyMode("dark")
		m.status = "dark mode"
	}
}

// =============================================================================
// VIEW
// =============================================================================

func (m demoModel) View() string {
	if m.quitting {
		return ""
	}

	content := m.ring.View()
	if m.state == stateDetails {
		content = m.detailsView()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.frame.Render(content),
		m.statusView(),
		m.shortcutsView(),
	)
}

func (m demoModel) statusView() string {
	line := fmt.Sprintf(" %d/%d", m.ring.Index()+1, m.count)
	if n := len(m.marked); n > 0 {
		line += fmt.Sprintf("  marked %d", n)
	}
	if m.status != "" {
		line += "  " + m.status
	}
	return m.theme.StatusBar.Render(line)
}

func (m demoModel) shortcutsView() string {
	type shortcut struct{ key, desc string }

	var entries []shortcut
	switch {
	case m.state == stateDetails:
		entries = []shortcut{{"enter", "close"}, {"esc", "close"}}
	case m.ring.Seeking():
		entries = []shortcut{{"enter", "jump"}, {"esc", "cancel"}}
	default:
		entries = []shortcut{
			{"←/→", "move"},
			{"enter", "select"},
			{"/", "seek"},
			{"tab", "theme"},
			{"q", "quit"},
		}
	}

	var b strings.Builder
	b.WriteString(" ")
	for i, s := range entries {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(m.theme.ShortcutKey.Render(s.key))
		b.WriteString(" ")
		b.WriteString(m.theme.ShortcutDesc.Render(s.desc))
	}
	return b.String()
}

func (m demoModel) detailsView() string {
	title := m.theme.OverlayTitle.Render(m.detailsFor.Label)
	return m.theme.OverlayBox.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		m.details.View(),
	))
}

// detailText builds the long-press overlay body for an item.
func detailText(item ring.Item, marked bool) string {
	var b strings.Builder
	if item.Description != "" {
		b.WriteString(item.Description)
	} else {
		b.WriteString("No description.")
	}
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "id %s", item.ID)
	if marked {
		b.WriteString("\nmarked yes")
	}
	return b.String()
}

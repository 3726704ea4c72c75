// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package main provides the ringworld widget gallery - every widget on its
// own page, with built-in help and source snippets.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/IndieDevYulin/ring-world/internal/ui/styles"
)

const version = "0.1.0"

func main() {
	altScreen := true
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--no-alt-screen", "--inline":
			altScreen = false
		case "--help", "-h":
			printHelp()
			return
		case "--version", "-v":
			fmt.Printf("ringworld gallery v%s\n", version)
			return
		}
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: the gallery requires an interactive terminal")
		os.Exit(1)
	}

	theme := styles.NewTheme()
	model, err := newGallery(theme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		model.resize(w, h)
		model.ring.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}

	var opts []tea.ProgramOption
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printHelp shows usage information
func printHelp() {
	fmt.Println(`ringworld gallery v` + version + `

Usage: gallery [OPTIONS]

Options:
  --no-alt-screen  Render inline instead of on the alternate screen
  --help, -h       Show this help
  --version, -v    Show version

Pages cycle with tab. "?" opens help, "s" shows the current page's
source snippet, q quits.`)
}

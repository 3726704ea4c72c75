// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command handlers for ringworld.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdDemo Command = iota
	CmdGallery
	CmdConfig
	CmdVersion
	CmdHelp
	CmdUnknown
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	ConfigPath  string // --config: load configuration from this file
	ItemsPath   string // --items: ring manifest to load
	FPS         int    // --fps: frame rate override, 0 means unset
	NoAltScreen bool   // --no-alt-screen: render inline
	Watch       bool   // --watch: reload config when the file changes
	JSON        bool   // --json: machine-readable output

	// Command-specific
	Subcommand string

	// Raw args (remaining after global flag parsing)
	Raw []string
}

const usageText = `ringworld - a 3D ring selector for the terminal

Ringworld renders a list of items as a pseudo-3D ring you spin with the
arrow keys. The focused item sits between the rails; the rest recede
toward the horizon.

Usage:
  ringworld                  Start the ring demo (default)
  ringworld demo             Same as above
  ringworld gallery          Where to find the widget gallery
  ringworld config [show|get|set|keys|path|reset]
                             Configuration management
  ringworld version          Show version information
  ringworld help             Show this help

Config Commands:
  ringworld config                      Show current config (default)
  ringworld config show --json         Config in JSON format
  ringworld config get ring.window_size
  ringworld config set render.fps 30
  ringworld config set theme.accent "#FF79C6"
  ringworld config set ring.wrap off
  ringworld config keys                 List every key with its value
  ringworld config path                 Show config file location
  ringworld config reset                Reset to defaults

Global Flags:
  --config PATH      Read configuration from PATH instead of ~/.ringworld/
  --items PATH       Load the ring from a YAML manifest
  --fps N            Override the render frame rate (1-240)
  --no-alt-screen    Render inline instead of the alternate screen
  --watch            Reload configuration when the file changes on disk
  --json             Machine-readable output (version, config show)

Demo Keys:
  left/right, h/l    Spin the ring
  up/down, k/j       Spin the ring
  enter, space       Select the focused item
                     (double-tap marks it, hold for details)
  /                  Seek: type to jump to a matching label
  tab                Toggle dark/light rendering
  esc, q, ctrl+c     Quit

Environment:
  RINGWORLD_MANIFEST     Path to the ring manifest
  RINGWORLD_THEME        Theme mode (auto/dark/light)
  RINGWORLD_ACCENT       Accent color as #RRGGBB
  RINGWORLD_FPS          Render frame rate
  RINGWORLD_WINDOW_SIZE  Visible ring slots (odd)
  RINGWORLD_EASING       Easing curve for ring travel
  RINGWORLD_NO_WRAP      Set to 1 to stop at the ends instead of wrapping
  RINGWORLD_SEEK         Set to 0 to disable seek mode

Config file: ~/.ringworld/config.toml

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("ringworld version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments and returns the command and args.
func Parse() (Command, Args) {
	args := os.Args[1:]

	// Parse global flags first
	remaining, parsedArgs := parseGlobalFlags(args)

	// If no remaining args, default to the demo
	if len(remaining) == 0 {
		return CmdDemo, parsedArgs
	}

	// Check first argument for command
	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsedArgs.Raw = remaining

	switch cmd {
	case "demo", "ring":
		return CmdDemo, parsedArgs

	case "gallery":
		return CmdGallery, parsedArgs

	case "config", "cfg":
		// Argument parsing is done in config_cmd.go HandleConfig
		if len(remaining) > 0 {
			parsedArgs.Subcommand = remaining[0]
		}
		return CmdConfig, parsedArgs

	case "version", "-v", "--version":
		return CmdVersion, parsedArgs

	case "help", "-h", "--help":
		return CmdHelp, parsedArgs

	default:
		// Unknown command - keep it for the error message
		parsedArgs.Subcommand = cmd
		return CmdUnknown, parsedArgs
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsedArgs Args

	i := 0
	for i < len(args) {
		arg := args[i]

		switch arg {
		case "--no-alt-screen", "--inline":
			parsedArgs.NoAltScreen = true
		case "--watch", "-w":
			parsedArgs.Watch = true
		case "--json":
			parsedArgs.JSON = true
		case "--config", "-c":
			if i+1 < len(args) {
				i++
				parsedArgs.ConfigPath = args[i]
			}
		case "--items", "-i":
			if i+1 < len(args) {
				i++
				parsedArgs.ItemsPath = args[i]
			}
		case "--fps":
			if i+1 < len(args) {
				i++
				if n, err := strconv.Atoi(args[i]); err == nil {
					parsedArgs.FPS = n
				}
			}
		default:
			switch {
			case strings.HasPrefix(arg, "--config="):
				parsedArgs.ConfigPath = strings.TrimPrefix(arg, "--config=")
			case strings.HasPrefix(arg, "--items="):
				parsedArgs.ItemsPath = strings.TrimPrefix(arg, "--items=")
			case strings.HasPrefix(arg, "--fps="):
				if n, err := strconv.Atoi(strings.TrimPrefix(arg, "--fps=")); err == nil {
					parsedArgs.FPS = n
				}
			default:
				remaining = append(remaining, arg)
			}
		}
		i++
	}

	return remaining, parsedArgs
}

// =============================================================================
// COMMAND HANDLERS
// =============================================================================

// versionData is the JSON shape of the version command.
type versionData struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
}

// HandleVersion handles the "version" command.
func HandleVersion(args Args) {
	if args.JSON {
		data, _ := json.MarshalIndent(versionData{
			Version:   Version,
			GitCommit: GitCommit,
			BuildDate: BuildDate,
			GoVersion: runtime.Version(),
		}, "", "  ")
		fmt.Println(string(data))
		return
	}
	PrintVersion()
}

// HandleHelp handles the "help" command.
func HandleHelp() {
	PrintUsage()
}

// HandleGallery points at the gallery binary, which ships separately so
// the launcher stays small.
func HandleGallery() {
	fmt.Println("The widget gallery is its own binary:")
	fmt.Println()
	fmt.Println("  go run github.com/IndieDevYulin/ring-world/cmd/gallery@latest")
	fmt.Println()
	fmt.Println("or from a checkout: go run ./cmd/gallery")
}

// HandleUnknown reports an unrecognized command on stderr, with a typo
// suggestion when one is close enough, and returns a non-zero exit code.
func HandleUnknown(args Args) int {
	fmt.Fprintln(os.Stderr, UnknownCommandMessage(args.Subcommand))
	return 2
}

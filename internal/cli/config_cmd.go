// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Config command implementation for ringworld.
//
// Command: config [subcommand]
// Short:   View and modify configuration
//
// Subcommands:
//   show (default)      Display current configuration
//   get <key>           Print a single configuration value
//   set <key> <value>   Set a configuration value
//   keys                List every key with its current value
//   path                Show configuration file path
//   reset               Reset to default configuration
//
// Examples:
//   ringworld config                      Show current config (default)
//   ringworld config show --json         Config in JSON format
//   ringworld config get ring.window_size
//   ringworld config set render.fps 30
//   ringworld config set theme.accent "#FF79C6"
//   ringworld config set ring.wrap off
//   ringworld config reset
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/IndieDevYulin/ring-world/internal/config"
	"github.com/IndieDevYulin/ring-world/internal/ui/styles"
)

// =============================================================================
// CONFIG STYLES
// =============================================================================

var (
	// Config title style
	configTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(styles.Cyan)

	// Config section style
	configSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(styles.TextPrimary)

	// Config key style
	configKeyStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary).
			Width(20)

	// Config value style
	configValueStyle = lipgloss.NewStyle().
				Foreground(styles.Emerald)

	// Separator style
	configRuleStyle = lipgloss.NewStyle().
			Foreground(styles.Overlay)

	// Path style
	configPathStyle = lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Italic(true)
)

// =============================================================================
// HANDLE CONFIG
// =============================================================================

// HandleConfig handles the "config" command.
func HandleConfig(args Args) error {
	parser := NewArgParser(args.Raw)

	switch parser.Subcommand() {
	case "", "show":
		if args.JSON || parser.BoolFlag("json") {
			return handleConfigShowJSON(args)
		}
		return handleConfigShow(args)

	case "get":
		return handleConfigGet(args, parser.Positional(1))

	case "set":
		return handleConfigSet(args, parser.Positional(1), parser.Positional(2))

	case "keys":
		return handleConfigKeys(args)

	case "path":
		return handleConfigPath(args)

	case "reset":
		return handleConfigReset(args)

	default:
		return fmt.Errorf("unknown config subcommand: %s", parser.Subcommand())
	}
}

// loadConfig reads the effective config for CLI commands: the --config
// file when given, the default search path otherwise. Load problems fall
// back to defaults with a warning, matching the demo's startup behavior.
func loadConfig(args Args) *config.Config {
	var cfg *config.Config
	var err error
	if args.ConfigPath != "" {
		cfg, err = config.LoadFromPath(args.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.RenderWarning(fmt.Sprintf("%v (using defaults)", err)))
		cfg = config.Default()
	}
	return cfg
}

// saveConfig writes cfg back where loadConfig read it from.
func saveConfig(args Args, cfg *config.Config) error {
	if args.ConfigPath != "" {
		if strings.HasSuffix(args.ConfigPath, ".json") {
			return config.SaveJSON(cfg, args.ConfigPath)
		}
		return config.SaveTOML(cfg, args.ConfigPath)
	}
	return config.Save(cfg)
}

// configFilePath resolves the path config commands report. An empty
// string means the location could not be determined.
func configFilePath(args Args) string {
	if args.ConfigPath != "" {
		return args.ConfigPath
	}
	path, err := config.ConfigPathTOML()
	if err != nil {
		return ""
	}
	return path
}

// handleConfigShowJSON dumps the effective config as JSON.
func handleConfigShowJSON(args Args) error {
	cfg := loadConfig(args)
	fmt.Println(cfg.String())
	return nil
}

// handleConfigShow displays the current configuration section by section.
func handleConfigShow(args Args) error {
	cfg := loadConfig(args)

	rule := strings.Repeat("=", 41)
	fmt.Println()
	fmt.Println(configTitleStyle.Render("ringworld Configuration"))
	fmt.Println(configRuleStyle.Render(rule))
	fmt.Println()

	printEntry := func(key string, value interface{}) {
		fmt.Printf("  %s%s\n",
			configKeyStyle.Render(key+":"),
			configValueStyle.Render(fmt.Sprintf("%v", value)))
	}

	manifest := cfg.ManifestPath
	if manifest == "" {
		manifest = "(built-in demo items)"
	}
	printEntry("manifest_path", manifest)
	fmt.Println()

	fmt.Println(configSectionStyle.Render("[ring]"))
	printEntry("window_size", cfg.Ring.WindowSize)
	printEntry("wrap", cfg.Ring.Wrap)
	printEntry("move_duration_ms", cfg.Ring.MoveDurationMS)
	printEntry("position_easing", cfg.Ring.PositionEasing)
	printEntry("generic_easing", cfg.Ring.GenericEasing)
	printEntry("show_description", cfg.Ring.ShowDescription)
	printEntry("seek_enabled", cfg.Ring.SeekEnabled)
	fmt.Println()

	fmt.Println(configSectionStyle.Render("[input]"))
	printEntry("long_press_ms", cfg.Input.LongPressMS)
	printEntry("double_press_ms", cfg.Input.DoublePressMS)
	printEntry("move_rate_per_sec", cfg.Input.MoveRatePerSec)
	printEntry("move_burst", cfg.Input.MoveBurst)
	fmt.Println()

	fmt.Println(configSectionStyle.Render("[render]"))
	printEntry("fps", cfg.Render.FPS)
	printEntry("alt_screen", cfg.Render.AltScreen)
	fmt.Println()

	fmt.Println(configSectionStyle.Render("[theme]"))
	printEntry("mode", cfg.Theme.Mode)
	accent := cfg.Theme.Accent
	if accent == "" {
		accent = "(default)"
	}
	printEntry("accent", accent)
	fmt.Println()

	fmt.Println(configRuleStyle.Render(strings.Repeat("-", 41)))
	fmt.Printf("Config file: %s\n", configPathStyle.Render(configFilePath(args)))
	fmt.Println()

	return nil
}

// handleConfigGet prints a single configuration value.
func handleConfigGet(args Args, key string) error {
	if key == "" {
		return fmt.Errorf("no config key provided\nUsage: ringworld config get <key>")
	}

	cfg := loadConfig(args)
	value, err := cfg.Get(key)
	if err != nil {
		return fmt.Errorf("unknown config key %q: run 'ringworld config keys' for the list", key)
	}

	fmt.Printf("%v\n", value)
	return nil
}

// handleConfigSet sets a configuration value, validates the result, and
// writes the file back.
func handleConfigSet(args Args, key, value string) error {
	if key == "" {
		return fmt.Errorf("no config key provided\nUsage: ringworld config set <key> <value>")
	}
	if value == "" {
		return fmt.Errorf("no config value provided\nUsage: ringworld config set %s <value>", key)
	}

	cfg := loadConfig(args)

	// Boolean keys accept the human spellings (yes/no/on/off) on top of
	// what strconv.ParseBool takes.
	if current, err := cfg.Get(key); err == nil {
		if _, isBool := current.(bool); isBool {
			b, perr := ParseBoolString(value)
			if perr != nil {
				return fmt.Errorf("%s expects a boolean: %w", key, perr)
			}
			value = strconv.FormatBool(b)
		}
	}

	if err := cfg.Set(key, value); err != nil {
		return fmt.Errorf("unknown config key %q: run 'ringworld config keys' for the list", key)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration value: %w", err)
	}

	if err := saveConfig(args, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println(styles.RenderSuccess(fmt.Sprintf("%s = %s", key, value)))
	return nil
}

// handleConfigKeys lists every key with its current value.
func handleConfigKeys(args Args) error {
	cfg := loadConfig(args)

	for _, key := range config.GetAllKeys() {
		value, err := cfg.Get(key)
		if err != nil {
			continue
		}
		fmt.Printf("  %s%s\n",
			configKeyStyle.Render(key),
			configValueStyle.Render(fmt.Sprintf("%v", value)))
	}

	return nil
}

// handleConfigPath shows the config file path.
func handleConfigPath(args Args) error {
	path := configFilePath(args)
	fmt.Println(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, "(file does not exist - will be created on first 'config set')")
	}

	return nil
}

// handleConfigReset resets configuration to defaults.
func handleConfigReset(args Args) error {
	if err := saveConfig(args, config.Default()); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println(styles.RenderSuccess("Configuration reset to defaults"))
	fmt.Printf("Config file: %s\n", configPathStyle.Render(configFilePath(args)))

	return nil
}

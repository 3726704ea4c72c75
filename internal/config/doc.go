// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for
// ringworld.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - RingConfig: Ring widget behavior (window size, wrap, move easing)
//   - InputConfig: Gesture timing (long press, double press, move throttle)
//   - RenderConfig: Frame pacing and terminal handling
//   - ThemeConfig: Background mode and accent color
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (RINGWORLD_*)
//   - ~/.ringworld/config.toml
//   - ~/.ringworld/config.json
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Access settings:
//
//	window := cfg.Ring.WindowSize
//	hold := cfg.Input.LongPress()
//
// # Hot Reload
//
// StartWatcher watches the config file and swaps the global config when the
// file changes on disk:
//
//	w, err := config.StartWatcher(path, func(cfg *config.Config) {
//	    program.Send(configReloadedMsg{cfg})
//	})
//	defer w.Close()
package config

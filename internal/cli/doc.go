// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the non-interactive
// commands for the ringworld binary.
//
// # Key Types
//
//   - Command: enumeration of the available commands
//   - Args: parsed global flags plus the raw per-command arguments
//   - ArgParser: flag/positional splitter for subcommand argument lists
//
// # Usage
//
// Parse and dispatch:
//
//	cmd, args := cli.Parse()
//	switch cmd {
//	case cli.CmdDemo:
//	    runDemo(args)
//	case cli.CmdConfig:
//	    return cli.HandleConfig(args)
//	// ... other commands
//	}
//
// # Commands Overview
//
//   - demo: the ring picker (default when no command is given)
//   - config: show, get, set, keys, path, reset
//   - version: build information, optionally as JSON
//   - help: usage text
//
// Interactive rendering lives in internal/ui; this package only ever
// writes plain lines to stdout and stderr.
package cli

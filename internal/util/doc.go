// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the ringworld application.
//
// This package contains common helper functions used throughout the
// application for width-aware string handling and file operations.
//
// # Key Functions
//
// String Utilities:
//   - TruncateWidth: display-width truncation with ellipsis (go-runewidth)
//   - TruncateRunes: UTF-8 safe rune-count truncation with ellipsis
//   - PadCenter: display-width centering
//   - NormalizeNFC: Unicode NFC normalization for labels
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
//
// # Usage
//
//	// Truncate long labels safely for a fixed column budget
//	display := util.TruncateWidth(label, 24)
//
//	// Write files atomically to prevent data loss
//	err := util.AtomicWriteFile(path, data, 0644)
package util

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the ringworld TUI.

This package defines the color palette, the depth shading ramp for the ring
carousel, glyph sets, and the runtime Theme. All colors use Lip Gloss
AdaptiveColor for automatic light/dark terminal detection.

# Color System (colors.go)

## Primary Accent Colors

  - Cyan - Brand color and the focused ring item
  - Purple - Frame borders and overlay chrome
  - Emerald - Success states and gauge fill
  - Amber - Warnings
  - Rose - Errors and seek misses

## Depth Shading

DepthRamp maps ring depth (slots away from the focused item) to a
foreground color. Depth 0 is the brightest; deeper slots fade toward the
surface and clamp at the last ramp entry.

## Text Colors

Hierarchical text color system:

	TextPrimary   - Main content text
	TextSecondary - Supporting text
	TextMuted     - De-emphasized text
	TextInverse   - Text on colored backgrounds

# Theme System (theme.go)

The Theme struct provides runtime color adaptation:

	theme := styles.NewTheme()
	if theme.IsDark {
		// Dark terminal detected
	}
	focused := theme.DepthStyle(0)
	far := theme.DepthStyle(3)

Config can override the accent color and force a mode:

	theme.SetAccent("#FF79C6")
	theme.ApplyMode("dark")

# Glyphs (glyphs.go)

ASCII-safe glyph sets for the ring rails, progress bars, sparklines, the
typewriter cursor, and custom box borders:

	styles.RingGlyphs.RailLeft  // ">"
	styles.SparkRamp            // " " through "#"
	styles.BoxChars.Horizontal  // "-"

# Usage Example

	import "github.com/IndieDevYulin/ring-world/internal/ui/styles"

	theme := styles.NewTheme()
	line := theme.DepthStyle(depth).Render(label)
*/
package styles

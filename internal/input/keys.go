// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package input

import (
	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// BUBBLETEA KEY ADAPTER
// =============================================================================

// MapKey translates a bubbletea key message into zero or more normalized
// events. Unbound keys map to nothing.
//
// Terminals report key presses only, never releases, so the activate keys
// come back as a press immediately followed by a synthesized release. Hosts
// with release-reporting sources (pointer buttons, game pads) should build
// Events directly instead.
func MapKey(msg tea.KeyMsg) []Event {
	switch msg.String() {
	case "up", "k":
		return []Event{{Kind: KindUp}}
	case "down", "j":
		return []Event{{Kind: KindDown}}
	case "left", "h":
		return []Event{{Kind: KindLeft}}
	case "right", "l":
		return []Event{{Kind: KindRight}}
	case "enter", " ":
		return []Event{{Kind: KindActivateDown}, {Kind: KindActivateUp}}
	case "esc":
		return []Event{{Kind: KindEscape}}
	case "tab":
		return []Event{{Kind: KindTab}}
	}
	return nil
}

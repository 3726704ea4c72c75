// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package input

// =============================================================================
// EVENT MODEL
// =============================================================================

// Kind identifies a normalized control event.
type Kind int

const (
	// KindUp through KindRight are directional events. They dispatch
	// immediately, with no debounce.
	KindUp Kind = iota
	KindDown
	KindLeft
	KindRight

	// KindActivateDown and KindActivateUp are the press and release phases
	// of the activate control.
	KindActivateDown
	KindActivateUp

	// KindEscape requests backing out of the current context.
	KindEscape

	// KindTab cycles focus.
	KindTab
)

// String returns the event kind name for logs and test failures.
func (k Kind) String() string {
	switch k {
	case KindUp:
		return "up"
	case KindDown:
		return "down"
	case KindLeft:
		return "left"
	case KindRight:
		return "right"
	case KindActivateDown:
		return "activate-down"
	case KindActivateUp:
		return "activate-up"
	case KindEscape:
		return "escape"
	case KindTab:
		return "tab"
	default:
		return "unknown"
	}
}

// Event is a single normalized control event fed to a Dispatcher.
type Event struct {
	Kind Kind
}

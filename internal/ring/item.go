// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ring

// Item is one entry on a ring. Only Label is required; the rest is optional
// presentation data.
type Item struct {
	// ID uniquely identifies the item to hosts. Manifest loading fills in
	// generated IDs when absent.
	ID string

	// Label is the text shown on the ring.
	Label string

	// Icon is an optional short glyph rendered before the label.
	Icon string

	// Description is optional detail text shown for the centered item.
	Description string

	// Color optionally overrides the theme accent for this item, as a hex
	// string like "#7C3AED".
	Color string
}

// DisplayLabel returns the label with its icon prefix, if any.
func (i Item) DisplayLabel() string {
	if i.Icon == "" {
		return i.Label
	}
	return i.Icon + " " + i.Label
}

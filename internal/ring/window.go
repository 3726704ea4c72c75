// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ring

import (
	"fmt"
	"math"
)

// =============================================================================
// VISIBLE WINDOW
// =============================================================================

// Slot is one visible position on the ring. Depth 0 is the centered slot;
// depth grows toward the window's edges. When the window is larger than the
// item list, items repeat across slots.
type Slot struct {
	// Item is the entry shown in this slot.
	Item Item

	// SourceIndex is the item's index in the backing list, always in
	// [0, itemCount).
	SourceIndex int

	// Offset is the slot's signed distance from the center, in
	// [-windowSize/2, windowSize/2].
	Offset int

	// Depth is |Offset|: how far from the focus this slot sits. Renderers
	// shade by depth to get the receding-ring look.
	Depth int
}

// Window projects the visible slots for a ring of items at a continuous
// position. The size must be odd so the window is symmetric around one
// centered slot; the center is the position rounded to the nearest step.
//
// Window is pure: it allocates a fresh slice per call and caches nothing,
// so it is safe to call with a different position every frame.
func Window(items []Item, position float64, size int) ([]Slot, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if size < 1 {
		return nil, fmt.Errorf("ring: window size must be at least 1, got %d", size)
	}
	if size%2 == 0 {
		return nil, ErrEvenWindow
	}

	n := len(items)
	half := size / 2
	center := int(math.Round(position))

	slots := make([]Slot, 0, size)
	for offset := -half; offset <= half; offset++ {
		raw := center + offset
		src := ((raw % n) + n) % n
		depth := offset
		if depth < 0 {
			depth = -depth
		}
		slots = append(slots, Slot{
			Item:        items[src],
			SourceIndex: src,
			Offset:      offset,
			Depth:       depth,
		})
	}
	return slots, nil
}

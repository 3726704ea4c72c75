// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ring provides the navigation model behind the ring carousel: the
// item list, the controlled index with wrap or clamp stepping, the visible
// window projection, and fuzzy type-ahead seeking.
//
// The package is purely presentational state. It renders nothing and owns no
// timers; widgets combine it with the anim and input packages.
package ring

import (
	"errors"
	"fmt"
)

// Errors shared by the constructors in this package.
var (
	// ErrNoItems rejects rings built over an empty item list. An empty ring
	// renders nothing and can never resolve a selection.
	ErrNoItems = errors.New("ring: at least one item is required")

	// ErrEvenWindow rejects even window sizes; the visible window is always
	// symmetric around a single centered slot.
	ErrEvenWindow = errors.New("ring: window size must be odd")
)

// =============================================================================
// INDEX SOURCES
// =============================================================================

// IndexSource supplies the controlled index for a Controller. OwnedIndex
// keeps the index inside the component; ExternalIndex follows state the
// caller owns. The split replaces the usual nullable-provider check with an
// explicit choice made at construction.
type IndexSource interface {
	Index() int
	SetIndex(int)
}

// OwnedIndex is component-owned index state.
type OwnedIndex struct {
	idx int
}

// NewOwnedIndex creates an owned index starting at the given value.
func NewOwnedIndex(start int) *OwnedIndex {
	return &OwnedIndex{idx: start}
}

// Index returns the current index.
func (o *OwnedIndex) Index() int {
	return o.idx
}

// SetIndex replaces the current index.
func (o *OwnedIndex) SetIndex(i int) {
	o.idx = i
}

// ExternalIndex delegates the index to caller-owned state. A nil Get reads
// as zero; a nil Set drops writes, which makes the ring a read-only view of
// the caller's index.
type ExternalIndex struct {
	Get func() int
	Set func(int)
}

// Index returns the caller's current index.
func (e ExternalIndex) Index() int {
	if e.Get == nil {
		return 0
	}
	return e.Get()
}

// SetIndex pushes a new index to the caller.
func (e ExternalIndex) SetIndex(i int) {
	if e.Set != nil {
		e.Set(i)
	}
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller steps a controlled index across a fixed item list and resolves
// selections. Moves wrap around the ends by default; with wrap disabled they
// clamp at the edges.
type Controller struct {
	items    []Item
	source   IndexSource
	wrap     bool
	onSelect func(Item, int)
}

// NewController builds a controller over items. A nil source means the
// controller owns its index, starting at 0. Empty item lists are rejected.
func NewController(items []Item, source IndexSource) (*Controller, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if source == nil {
		source = NewOwnedIndex(0)
	}
	return &Controller{
		items:  items,
		source: source,
		wrap:   true,
	}, nil
}

// SetWrap switches between wrapping and clamping at the ring's ends.
func (c *Controller) SetWrap(wrap bool) {
	c.wrap = wrap
}

// Wrap reports whether moves wrap around the ends.
func (c *Controller) Wrap() bool {
	return c.wrap
}

// SetOnSelect registers the selection callback.
func (c *Controller) SetOnSelect(fn func(item Item, index int)) {
	c.onSelect = fn
}

// Move steps the index by delta and returns the new index. With wrap the
// index goes around the ends; without it the move clamps to the first or
// last item.
func (c *Controller) Move(delta int) int {
	next := c.Index() + delta
	return c.MoveTo(next)
}

// MoveTo sets the index to an absolute target, wrapped or clamped by the
// same rules as Move, and returns the result.
func (c *Controller) MoveTo(index int) int {
	n := len(c.items)
	if c.wrap {
		index = ((index % n) + n) % n
	} else {
		if index < 0 {
			index = 0
		} else if index >= n {
			index = n - 1
		}
	}
	c.source.SetIndex(index)
	return index
}

// Select resolves the current item and invokes the selection callback.
func (c *Controller) Select() {
	if c.onSelect == nil {
		return
	}
	idx := c.Index()
	c.onSelect(c.items[idx], idx)
}

// Index returns the current index. External sources can hand back anything,
// so the value is wrapped into range before use.
func (c *Controller) Index() int {
	n := len(c.items)
	return ((c.source.Index() % n) + n) % n
}

// Item returns the item at the current index.
func (c *Controller) Item() Item {
	return c.items[c.Index()]
}

// Items returns the controller's item list.
func (c *Controller) Items() []Item {
	return c.items
}

// Count returns the number of items on the ring.
func (c *Controller) Count() int {
	return len(c.items)
}

// String describes the controller for debugging.
func (c *Controller) String() string {
	return fmt.Sprintf("ring.Controller{items: %d, index: %d, wrap: %v}", len(c.items), c.Index(), c.wrap)
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package manifest loads ring item collections from YAML files.
//
// A manifest names the items a demo ring shows. Labels are the only required
// field; missing IDs are generated at load so hosts can always address items
// stably within a session.
package manifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/IndieDevYulin/ring-world/internal/ring"
	"github.com/IndieDevYulin/ring-world/internal/util"
)

// =============================================================================
// MANIFEST STRUCTURES
// =============================================================================

// Item is one ring entry as written in a manifest file.
type Item struct {
	// ID uniquely identifies the item. Generated when absent.
	ID string `yaml:"id,omitempty"`
	// Label is the text shown on the ring. Required.
	Label string `yaml:"label"`
	// Icon is an optional short glyph rendered before the label.
	Icon string `yaml:"icon,omitempty"`
	// Description is optional detail text for the centered item.
	Description string `yaml:"description,omitempty"`
	// Color optionally overrides the theme accent, as "#RRGGBB".
	Color string `yaml:"color,omitempty"`
}

// Manifest is a named collection of ring items.
type Manifest struct {
	// Title is an optional heading for the ring.
	Title string `yaml:"title,omitempty"`
	// Items are the ring entries, in ring order.
	Items []Item `yaml:"items"`
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest from %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes manifest YAML, normalizes labels, backfills missing IDs,
// and validates the result.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	m.normalize()
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// normalize trims and NFC-normalizes text fields and generates IDs for items
// that lack one. Normalizing at load keeps width math and seek matching
// consistent regardless of how the file was typed.
func (m *Manifest) normalize() {
	m.Title = util.NormalizeNFC(strings.TrimSpace(m.Title))
	for i := range m.Items {
		item := &m.Items[i]
		item.Label = util.NormalizeNFC(strings.TrimSpace(item.Label))
		item.Description = util.NormalizeNFC(strings.TrimSpace(item.Description))
		item.Icon = strings.TrimSpace(item.Icon)
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
	}
}

// Validate checks the manifest for structural problems.
func (m *Manifest) Validate() error {
	if len(m.Items) == 0 {
		return fmt.Errorf("manifest has no items")
	}

	seen := make(map[string]int, len(m.Items))
	for i, item := range m.Items {
		if item.Label == "" {
			return fmt.Errorf("manifest item %d has an empty label", i)
		}
		if prev, dup := seen[item.ID]; dup {
			return fmt.Errorf("manifest items %d and %d share the ID %q", prev, i, item.ID)
		}
		seen[item.ID] = i
	}
	return nil
}

// RingItems converts the manifest entries into ring items.
func (m *Manifest) RingItems() []ring.Item {
	items := make([]ring.Item, len(m.Items))
	for i, it := range m.Items {
		items[i] = ring.Item{
			ID:          it.ID,
			Label:       it.Label,
			Icon:        it.Icon,
			Description: it.Description,
			Color:       it.Color,
		}
	}
	return items
}

// =============================================================================
// BUILT-IN DEMO MANIFEST
// =============================================================================

// Default returns the built-in demo manifest used when no file is configured.
func Default() *Manifest {
	m := &Manifest{
		Title: "ringworld",
		Items: []Item{
			{ID: "home", Label: "Home", Icon: "~", Description: "Start page and session overview"},
			{ID: "library", Label: "Library", Icon: "=", Description: "Browse saved collections"},
			{ID: "search", Label: "Search", Icon: "?", Description: "Find items across the ring"},
			{ID: "network", Label: "Network", Icon: "%", Description: "Peers and connection health"},
			{ID: "storage", Label: "Storage", Icon: "#", Description: "Volumes, quotas, and usage"},
			{ID: "settings", Label: "Settings", Icon: "*", Description: "Configuration and theme"},
			{ID: "profile", Label: "Profile", Icon: "@", Description: "Identity and preferences"},
			{ID: "about", Label: "About", Icon: "!", Description: "Version and license details"},
		},
	}
	m.normalize()
	return m
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/IndieDevYulin/ring-world/internal/ui/styles"
)

func TestSparklineScalesToOwnRange(t *testing.T) {
	s := NewSparkline(10, styles.NewTheme())
	s.SetData([]float64{0, 25, 50, 75, 100})

	assert.Equal(t, ".:=+#", s.View())
}

func TestSparklineEvictsOldest(t *testing.T) {
	s := NewSparkline(3, styles.NewTheme())
	for v := 1; v <= 5; v++ {
		s.Push(float64(v))
	}

	assert.Equal(t, 3, s.Len())
	// Window is [3, 4, 5]; scaling tracks the surviving samples.
	assert.Equal(t, ".=#", s.View())
}

func TestSparklineSetDataKeepsNewest(t *testing.T) {
	s := NewSparkline(2, styles.NewTheme())
	s.SetData([]float64{1, 2, 3})

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, ".#", s.View())
}

func TestSparklineFlatSeriesStaysVisible(t *testing.T) {
	s := NewSparkline(5, styles.NewTheme())
	s.SetData([]float64{7, 7, 7})

	assert.Equal(t, "...", s.View())
}

func TestSparklineSingleSample(t *testing.T) {
	s := NewSparkline(5, styles.NewTheme())
	s.Push(42)

	assert.Equal(t, ".", s.View())
}

func TestSparklineEmpty(t *testing.T) {
	s := NewSparkline(5, styles.NewTheme())

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, "", s.View())
}

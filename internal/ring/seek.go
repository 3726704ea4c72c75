// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ring

import (
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// =============================================================================
// TYPE-AHEAD SEEK
// =============================================================================

// Seek returns the index of the item whose label best fuzzy-matches the
// query, or -1 when nothing matches. Matching is case-insensitive and
// diacritic-folding. Among equally good matches the one closest to from
// along the ring wins, so repeated seeks feel stable.
func Seek(items []Item, query string, from int) int {
	if query == "" || len(items) == 0 {
		return -1
	}

	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}

	ranks := fuzzy.RankFindNormalizedFold(query, labels)
	if len(ranks) == 0 {
		return -1
	}

	n := len(items)
	best := -1
	bestDistance := 0
	bestArc := 0
	for _, r := range ranks {
		arc := arcDistance(from, r.OriginalIndex, n)
		if best == -1 || r.Distance < bestDistance ||
			(r.Distance == bestDistance && arc < bestArc) {
			best = r.OriginalIndex
			bestDistance = r.Distance
			bestArc = arc
		}
	}
	return best
}

// arcDistance returns the shortest number of steps between two indices on a
// ring of n items.
func arcDistance(a, b, n int) int {
	if n <= 0 {
		return 0
	}
	d := ((b-a)%n + n) % n
	if d > n-d {
		d = n - d
	}
	return d
}

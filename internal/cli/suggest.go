// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// suggest.go - Command suggestion for typo correction.
package cli

import (
	"fmt"
	"strings"
)

// validCommands is the list of all valid ringworld commands, aliases
// included.
var validCommands = []string{
	"demo",
	"gallery",
	"config",
	"version",
	"help",
	// Aliases
	"ring", // demo
	"cfg",  // config
}

// SuggestCommand returns a suggested command if the input is close to a
// valid command, or "" when nothing is close enough. Closeness is
// Levenshtein distance with a threshold scaled to the input length.
func SuggestCommand(input string) string {
	input = strings.ToLower(input)

	// Very short inputs are more likely intentional than mistyped
	if len(input) < 2 {
		return ""
	}

	// One edit for short inputs, two once there is room for a
	// transposition plus a typo ("confg", "versoin")
	maxDistance := 1
	if len(input) >= 4 {
		maxDistance = 2
	}

	bestMatch := ""
	bestDistance := -1

	for _, cmd := range validCommands {
		distance := levenshtein(input, cmd)
		if distance == 0 {
			return ""
		}
		if distance <= maxDistance && (bestDistance == -1 || distance < bestDistance) {
			bestDistance = distance
			bestMatch = cmd
		}
	}

	return bestMatch
}

// UnknownCommandMessage builds the stderr message for an unrecognized
// command.
func UnknownCommandMessage(input string) string {
	msg := fmt.Sprintf("ringworld: unknown command %q", input)
	if suggestion := SuggestCommand(input); suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
	}
	return msg + "\nRun 'ringworld help' for usage."
}

// levenshtein is the edit distance between two strings: the minimum
// number of single-character insertions, deletions, or substitutions
// turning one into the other. Two rolling rows instead of a full matrix.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

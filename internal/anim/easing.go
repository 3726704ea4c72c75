// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package anim

import (
	"math"
	"strings"
)

// =============================================================================
// EASING FUNCTIONS
// =============================================================================

// EasingFunc maps normalized progress in [0, 1] to an eased value. Every
// easing satisfies f(0) == 0 and f(1) == 1. Elastic and back variants
// overshoot outside [0, 1] in between; that is the point of them.
type EasingFunc func(t float64) float64

// EaseLinear - constant speed
func EaseLinear(t float64) float64 {
	return t
}

// EaseInQuad - accelerating from zero
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutQuad - decelerating to zero
func EaseOutQuad(t float64) float64 {
	return t * (2 - t)
}

// EaseInOutQuad - acceleration until halfway, then deceleration
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// EaseInCubic - accelerating from zero, sharper than quad
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseOutCubic - decelerating to zero (smoother)
func EaseOutCubic(t float64) float64 {
	t--
	return t*t*t + 1
}

// EaseInOutCubic - acceleration until halfway, then deceleration
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// EaseOutElastic - overshoot with elastic settle
func EaseOutElastic(t float64) float64 {
	if t <= 0 || t >= 1 {
		return clamp01(t)
	}
	const c4 = (2 * math.Pi) / 3
	return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*c4) + 1
}

// EaseOutBack - overshoots the target once, then comes back
func EaseOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	u := t - 1
	return 1 + c3*u*u*u + c1*u*u
}

// EaseSmoothStep - the classic 3t^2 - 2t^3 hermite blend. Zero velocity at
// both ends, which keeps ring motion from visibly kicking on start or stop.
func EaseSmoothStep(t float64) float64 {
	t = clamp01(t)
	return t * t * (3 - 2*t)
}

// EaseSnap front-loads nearly all motion: 90% of the distance lands in the
// first half of the duration and the remainder coasts in.
func EaseSnap(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if t < 0.5 {
		u := t / 0.5
		return 0.9 * u * (2 - u)
	}
	u := (t - 0.5) / 0.5
	return 0.9 + 0.1*u*(2-u)
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// =============================================================================
// NAME REGISTRY
// =============================================================================

// easings maps config-file names to easing functions.
var easings = map[string]EasingFunc{
	"linear":       EaseLinear,
	"quad-in":      EaseInQuad,
	"quad-out":     EaseOutQuad,
	"quad-in-out":  EaseInOutQuad,
	"cubic-in":     EaseInCubic,
	"cubic-out":    EaseOutCubic,
	"cubic-in-out": EaseInOutCubic,
	"elastic-out":  EaseOutElastic,
	"back-out":     EaseOutBack,
	"smoothstep":   EaseSmoothStep,
	"snap":         EaseSnap,
}

// EasingByName resolves an easing by its config name ("cubic-out",
// "smoothstep", ...). Lookup is case-insensitive.
func EasingByName(name string) (EasingFunc, bool) {
	fn, ok := easings[strings.ToLower(strings.TrimSpace(name))]
	return fn, ok
}

// EasingNames returns every registered easing name. Useful for validation
// error messages.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	return names
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the visual UI components for the ringworld TUI.

The centerpiece is the Ring widget, a "3D ring" carousel that glues the
gesture dispatcher, the selection controller, the ring animator, and the
visible-window builder into a single bubbletea-driven widget:

	r, err := components.NewRing(items, components.DefaultRingOptions(), nil, nil)
	r.OnSelect(func(item ring.Item, index int) { ... })

The Ring owns its gesture deadlines and requests frame ticks only while
something is in motion; an idle ring schedules nothing.

Around the ring, the package ships the supporting chrome used by the demo
programs:

  - Frame - titled ASCII box around arbitrary content
  - Gauge - character progress bar that eases toward its target
  - GradientGauge - bubbles/progress variant with a gradient fill
  - Sparkline - bounded series over a fixed character ramp
  - Typewriter - tick-driven text reveal with a blinking cursor

The chrome widgets are pure state + View; their owner drives them from its
own frame loop with the current clock reading. Only the Ring consumes
bubbletea messages directly.

All styling flows through the styles package so light/dark terminals and
accent overrides apply uniformly.
*/
package components

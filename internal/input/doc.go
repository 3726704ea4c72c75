// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package input classifies normalized control events into gestures.
//
// A Dispatcher receives Events (directions, activate press/release, escape,
// tab) and fans them out to callbacks. Directional events pass through
// immediately. The activate control is classified into exactly one of three
// gestures per press sequence:
//
//   - Press: a press that is neither followed by a second press inside the
//     double-press window nor held past the long-press threshold. It resolves
//     when the window closes (or on release, if the window closed while the
//     control was still held).
//   - DoublePress: a second press strictly inside the double-press window of
//     the previous one. The window is exclusive: a second press at exactly
//     the window length is a new single press.
//   - LongPress: the control held past the long-press threshold. Release
//     after a long press dispatches nothing further.
//
// Classification deadlines live on a timing.TimerQueue owned by the
// Dispatcher; the host advances it via Tick from its frame loop. Close
// cancels all pending deadlines - no callback ever runs after Close.
//
// Event sources that cannot observe key release (plain terminal keyboards)
// synthesize a release immediately after each press; see MapKey. Taps and
// double-taps behave identically there, long-press needs a source that
// reports release.
package input

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

// helpMarkdown is the "?" overlay, rendered with glamour.
const helpMarkdown = `# ringworld gallery

A tour of the ringworld widget set. Each page hosts one widget running
live; the source page shows how to drive it.

## Pages

1. **Frame** - titled ASCII boxes, focus shown with double rules
2. **Progress** - eased gauge, gradient bar, raw bar segments
3. **Sparkline** - scrolling braille-cell chart
4. **Typewriter** - timed text reveal with a blinking cursor
5. **Ring** - the 3D ring carousel (arrows move, enter selects,
   hold enter for a long press, "/" seeks)

## Keys

| Key | Action |
| --- | --- |
| tab / shift+tab | next / previous page |
| ? | this help |
| s | source snippet for the current page |
| esc, q | close overlay / quit |
`

// pageSnippets holds the "s" overlay source examples, highlighted with
// chroma. Indexed by page.
var pageSnippets = [pageCount]string{
	pageFrame: `frame := components.NewFrame("status", theme)
frame.Focused = true

// Zero width sizes the box to the widest content line;
// set Width to pin the interior instead.
fmt.Println(frame.Render("all systems nominal"))`,

	pageProgress: `gauge := components.NewGauge("download", 28, theme)
gauge.SetTarget(80) // percent; the bar eases toward it

bar := components.NewGradientGauge(28)
bar.SetPercent(0.8) // fraction, no easing of its own

for !gauge.Settled() {
    value := gauge.Update(clock.Now())
    bar.SetPercent(value / 100)
    fmt.Println(gauge.View())
    fmt.Println(bar.View())
}`,

	pageSparkline: `spark := components.NewSparkline(40, theme)
for _, sample := range samples {
    spark.Push(sample) // keeps the newest 40
}
fmt.Println(spark.View())`,

	pageTypewriter: `writer := components.NewTypewriter("Hello, ring world.", theme)
writer.SetSpeed(30) // characters per second

for !writer.Done() {
    writer.Tick(clock.Now())
    fmt.Println(writer.View())
}
writer.Skip() // or jump straight to the full text`,

	pageRing: `opts := components.DefaultRingOptions()
rng, err := components.NewRing(items, opts, theme, nil)
if err != nil {
    return err
}
rng.OnSelect(func(item ring.Item, index int) {
    fmt.Println("selected", item.Label)
})

// Inside a bubbletea Update:
//   rng, cmd = rng.Update(msg)
// and render with rng.View().`,
}

// Package fontheight measures how far shaped words extend above and
// below a font's baseline.
//
// # Overview
//
// Font-wide metrics like OS/2 usWinAscent describe what designers
// declared, not what shaped text actually does. fontheight shapes real
// words from per-script lists, walks the resulting glyph outlines, and
// reports the words that reach furthest above and below the baseline.
// For variable fonts it repeats the measurement across the design
// space: named instances by default, or the full product of
// interesting axis positions.
//
// # Quick Start
//
//	reporter, err := fontheight.NewFromFile("MyFont.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	reports, err := reporter.Run(context.Background(), fontheight.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, rep := range reports {
//	    fmt.Println(rep.WordList.Name(), rep.Location, rep.Extremes())
//	}
//
// # Architecture
//
//   - Reporter parses the font and enumerates design-space locations.
//   - Instance measures words at one location, caching per-glyph
//     extents and shaping plans.
//   - Collector keeps the N most extreme words per side, bounded.
//   - wordlists holds the embedded per-script word catalog.
//   - format renders reports as text, Markdown, HTML, or JSON.
//
// # Measurement
//
// All values are in unscaled font units relative to the baseline.
// Curve bounds come from the control polygon, so extents may overshoot
// the true ink box slightly but never undershoot it. Both shaping and
// glyph outlines follow the selected variable-font location: contours
// are read with the location's gvar deltas applied, and shaped offsets
// are added on top.
//
// # Logging
//
// The package is silent by default. Call [SetLogger] to receive
// progress and diagnostics through log/slog.
package fontheight

// Version is the current version of the library.
const Version = "0.1.0"

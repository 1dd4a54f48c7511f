package fontheight

import "math"

// VerticalExtremes is a vertical ink span in unscaled font units,
// relative to the baseline. Lowest is negative for ink below the
// baseline. The zero value spans exactly the baseline, which is the
// identity for Merge and the starting point when folding glyph extents
// into a word: a word with no ink still spans [0, 0].
type VerticalExtremes struct {
	Lowest  float64
	Highest float64
}

// Merge combines two spans into the smallest span covering both.
// Merge is associative, commutative, and idempotent.
func (v VerticalExtremes) Merge(o VerticalExtremes) VerticalExtremes {
	return VerticalExtremes{
		Lowest:  math.Min(v.Lowest, o.Lowest),
		Highest: math.Max(v.Highest, o.Highest),
	}
}

// WordExtremes pairs a word with its measured vertical span.
type WordExtremes struct {
	Word     string
	Extremes VerticalExtremes
}

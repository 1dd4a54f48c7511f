package fontheight

import (
	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
)

// Pen consumes glyph outline segments in drawing order.
type Pen interface {
	MoveTo(p font.SegmentPoint)
	LineTo(p font.SegmentPoint)
	QuadTo(ctrl, end font.SegmentPoint)
	CubeTo(ctrl1, ctrl2, end font.SegmentPoint)
}

// WalkOutline replays a glyph outline through a pen.
func WalkOutline(outline font.GlyphOutline, pen Pen) {
	for _, seg := range outline.Segments {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			pen.MoveTo(seg.Args[0])
		case ot.SegmentOpLineTo:
			pen.LineTo(seg.Args[0])
		case ot.SegmentOpQuadTo:
			pen.QuadTo(seg.Args[0], seg.Args[1])
		case ot.SegmentOpCubeTo:
			pen.CubeTo(seg.Args[0], seg.Args[1], seg.Args[2])
		}
	}
}

// extentPen tracks the vertical bounds of every point drawn through it.
// Curve bounds come from the control polygon: a Bezier curve never
// leaves the convex hull of its control points, so the result may
// overshoot the true ink extent but never undershoots it.
type extentPen struct {
	lowest  float64
	highest float64
	any     bool
}

func (p *extentPen) MoveTo(pt font.SegmentPoint) { p.mark(pt) }
func (p *extentPen) LineTo(pt font.SegmentPoint) { p.mark(pt) }

func (p *extentPen) QuadTo(ctrl, end font.SegmentPoint) {
	p.mark(ctrl, end)
}

func (p *extentPen) CubeTo(ctrl1, ctrl2, end font.SegmentPoint) {
	p.mark(ctrl1, ctrl2, end)
}

func (p *extentPen) mark(pts ...font.SegmentPoint) {
	for _, pt := range pts {
		y := float64(pt.Y)
		if !p.any {
			p.lowest, p.highest = y, y
			p.any = true
			continue
		}
		if y < p.lowest {
			p.lowest = y
		}
		if y > p.highest {
			p.highest = y
		}
	}
}

// outlineExtremes measures the vertical span of an outline. The second
// return value is false for empty outlines (glyphs without ink, such as
// spaces).
func outlineExtremes(outline font.GlyphOutline) (VerticalExtremes, bool) {
	var pen extentPen
	WalkOutline(outline, &pen)
	if !pen.any {
		return VerticalExtremes{}, false
	}
	return VerticalExtremes{Lowest: pen.lowest, Highest: pen.highest}, true
}

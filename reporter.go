package fontheight

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/boxesandglue/textshape/ot"
	"github.com/go-text/typesetting/font"
)

// Axis describes one variation axis of a font, in user-space
// coordinates.
type Axis struct {
	Tag     string
	Min     float64
	Default float64
	Max     float64
}

// Reporter analyzes one font. It owns the parsed font data and creates
// an Instance per design-space location to do the measuring.
//
// Reporter is safe for concurrent use: it is read-only after New, and
// every Instance gets its own parsed face so lazily built font tables
// are never shared across goroutines.
type Reporter struct {
	data []byte
	cmap *ot.Cmap
	axes []Axis

	// glyphFont supplies variation-aware glyph outlines. font.Font is
	// read-only and safe to share; each Instance wraps it in its own
	// font.Face carrying that location's coordinates.
	glyphFont *font.Font

	// named holds the font's named-instance locations in fvar
	// declaration order.
	named []*Location
}

// New parses a font and prepares it for analysis. The data slice is
// copied internally and can be reused after this call.
func New(data []byte) (*Reporter, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	buf := make([]byte, len(data))
	copy(buf, data)

	parsed, err := ot.ParseFont(buf, 0)
	if err != nil {
		return nil, fmt.Errorf("fontheight: parse font: %w", err)
	}

	face, err := ot.NewFace(parsed)
	if err != nil {
		return nil, fmt.Errorf("fontheight: load face: %w", err)
	}

	// A second parse through go-text backs glyph outlines: its faces
	// apply gvar deltas, so contours follow the variation coordinates.
	glyphFace, err := font.ParseTTF(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("fontheight: parse outlines: %w", err)
	}

	r := &Reporter{data: buf, glyphFont: glyphFace.Font}
	if cmapData, err := parsed.TableData(ot.TagCmap); err == nil {
		r.cmap, _ = ot.ParseCmap(cmapData)
	}
	if err := r.readAxes(face); err != nil {
		return nil, err
	}
	return r, nil
}

// NewFromFile loads a font file and prepares it for analysis.
func NewFromFile(path string) (*Reporter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fontheight: read font file: %w", err)
	}
	return New(data)
}

// readAxes pulls the fvar axes and named instances through a throwaway
// shaper. Static fonts leave both slices empty.
func (r *Reporter) readAxes(face *ot.Face) error {
	shaper, err := ot.NewShaperFromFace(face)
	if err != nil {
		return fmt.Errorf("fontheight: init shaper: %w", err)
	}
	fvar := shaper.Fvar()
	if fvar == nil || !fvar.HasData() {
		return nil
	}

	for _, ax := range fvar.AxisInfos() {
		r.axes = append(r.axes, Axis{
			Tag:     tagString(ax.Tag),
			Min:     float64(ax.MinValue),
			Default: float64(ax.DefaultValue),
			Max:     float64(ax.MaxValue),
		})
	}
	for i := 0; ; i++ {
		inst, ok := fvar.NamedInstanceAt(i)
		if !ok {
			break
		}
		loc := NewLocation()
		for j, ax := range r.axes {
			if j >= len(inst.Coords) {
				break
			}
			// Axis tags came from the font, so SetAxis cannot fail.
			_ = loc.SetAxis(ax.Tag, float64(inst.Coords[j]))
		}
		r.named = append(r.named, loc)
	}
	return nil
}

// IsVariable reports whether the font declares variation axes.
func (r *Reporter) IsVariable() bool { return len(r.axes) > 0 }

// Axes returns the font's variation axes in declaration order.
func (r *Reporter) Axes() []Axis {
	out := make([]Axis, len(r.axes))
	copy(out, r.axes)
	return out
}

// NamedInstanceLocations returns the design-space locations of the
// font's named instances in declaration order.
func (r *Reporter) NamedInstanceLocations() []*Location {
	out := make([]*Location, len(r.named))
	copy(out, r.named)
	return out
}

// DefaultLocation returns the font's default position with every axis
// at its default value. For a static font this is the zero-axis
// location.
func (r *Reporter) DefaultLocation() *Location {
	loc := NewLocation()
	for _, ax := range r.axes {
		_ = loc.SetAxis(ax.Tag, ax.Default)
	}
	return loc
}

// InterestingLocations returns the cartesian product over, per axis,
// the union of the named-instance coordinates and the axis minimum,
// default, and maximum. The count grows exponentially with axis count.
// For a static font the result is the single default location.
func (r *Reporter) InterestingLocations() []*Location {
	if len(r.axes) == 0 {
		return []*Location{NewLocation()}
	}

	values := make([][]float64, len(r.axes))
	for i, ax := range r.axes {
		set := map[float64]struct{}{ax.Min: {}, ax.Default: {}, ax.Max: {}}
		for _, loc := range r.named {
			if v, ok := loc.Value(ax.Tag); ok {
				set[v] = struct{}{}
			}
		}
		vals := make([]float64, 0, len(set))
		for v := range set {
			vals = append(vals, v)
		}
		sort.Float64s(vals)
		values[i] = vals
	}

	// Odometer over the per-axis candidates, first axis slowest.
	var out []*Location
	idx := make([]int, len(values))
	for {
		loc := NewLocation()
		for i, ax := range r.axes {
			_ = loc.SetAxis(ax.Tag, values[i][idx[i]])
		}
		out = append(out, loc)

		j := len(idx) - 1
		for ; j >= 0; j-- {
			idx[j]++
			if idx[j] < len(values[j]) {
				break
			}
			idx[j] = 0
		}
		if j < 0 {
			return out
		}
	}
}

// Instance prepares the font for measuring at a location. The location
// is validated against the font's axes first; axes the font lacks fail
// with *MismatchedAxesError, out-of-range values with *AxisRangeError.
func (r *Reporter) Instance(loc *Location) (*Instance, error) {
	if err := loc.ValidateAgainst(r.axes); err != nil {
		return nil, err
	}

	// Each instance parses its own copy of the shaping tables: faces
	// build state lazily and that state is not synchronized.
	parsed, err := ot.ParseFont(r.data, 0)
	if err != nil {
		return nil, fmt.Errorf("fontheight: parse font: %w", err)
	}
	face, err := ot.NewFace(parsed)
	if err != nil {
		return nil, fmt.Errorf("fontheight: load face: %w", err)
	}
	shaper, err := ot.NewShaperFromFace(face)
	if err != nil {
		return nil, fmt.Errorf("fontheight: init shaper: %w", err)
	}

	// The outline face shares the read-only glyph font but carries this
	// location's coordinates, so walked contours match the instance.
	outlines := font.NewFace(r.glyphFont)
	if loc.Len() > 0 {
		shaper.SetVariations(loc.variations())
		outlines.SetVariations(loc.glyphVariations())
	}
	return newInstance(loc, outlines, shaper), nil
}

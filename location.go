package fontheight

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/boxesandglue/textshape/ot"
	"github.com/go-text/typesetting/font"
)

// Location is a position in a variable font's design space: a mapping
// from axis tag to a user-space coordinate value. Axis tags are unique
// within a location and keep their insertion order for display; ordering
// and equality are defined over the tag-sorted pairs, so two locations
// built in different orders compare equal.
//
// The zero-axis location is valid and describes the font's default
// position. Locations are not safe for concurrent mutation; build them
// fully before sharing.
type Location struct {
	tags   []string
	values map[string]float64
}

// NewLocation creates an empty location.
func NewLocation() *Location {
	return &Location{values: make(map[string]float64)}
}

// SetAxis sets the value for an axis, adding the axis if the location
// does not have it yet. The value must be finite; the tag must be 1 to 4
// ASCII characters (shorter tags are padded with spaces, following
// OpenType convention).
func (l *Location) SetAxis(tag string, value float64) error {
	if err := checkAxisTag(tag); err != nil {
		return err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %s=%v", ErrInvalidLocationValue, tag, value)
	}
	if _, ok := l.values[tag]; !ok {
		l.tags = append(l.tags, tag)
	}
	l.values[tag] = value
	return nil
}

// ParseLocation parses a comma-separated list of axis assignments, for
// example "wght=700,wdth=100".
func ParseLocation(s string) (*Location, error) {
	loc := NewLocation()
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tag, val, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("fontheight: malformed axis assignment %q (want tag=value)", part)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil, fmt.Errorf("fontheight: malformed axis value %q: %w", val, err)
		}
		if err := loc.SetAxis(strings.TrimSpace(tag), v); err != nil {
			return nil, err
		}
	}
	return loc, nil
}

// Len returns the number of axes in the location.
func (l *Location) Len() int { return len(l.tags) }

// Axes returns the axis tags in insertion order.
func (l *Location) Axes() []string {
	out := make([]string, len(l.tags))
	copy(out, l.tags)
	return out
}

// Value returns the coordinate for an axis tag.
func (l *Location) Value(tag string) (float64, bool) {
	v, ok := l.values[tag]
	return v, ok
}

// SortAxes returns a copy of the location with axes in tag order.
// Sorting is idempotent and independent of insertion order.
func (l *Location) SortAxes() *Location {
	out := NewLocation()
	out.tags = make([]string, len(l.tags))
	copy(out.tags, l.tags)
	sort.Strings(out.tags)
	for tag, v := range l.values {
		out.values[tag] = v
	}
	return out
}

// Compare orders locations over their tag-sorted (tag, value) pairs:
// tags lexicographically, then values numerically, then fewer axes
// first. The result is deterministic regardless of insertion order.
func (l *Location) Compare(o *Location) int {
	a := l.sortedTags()
	b := o.sortedTags()
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := strings.Compare(a[i], b[i]); c != 0 {
			return c
		}
		av, bv := l.values[a[i]], o.values[b[i]]
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Equal reports whether two locations hold the same axes and values,
// regardless of insertion order.
func (l *Location) Equal(o *Location) bool {
	return l.Compare(o) == 0
}

// String renders the location as "wght=700, wdth=100" in insertion
// order, or "default" for the zero-axis location.
func (l *Location) String() string {
	if len(l.tags) == 0 {
		return "default"
	}
	parts := make([]string, len(l.tags))
	for i, tag := range l.tags {
		parts[i] = tag + "=" + strconv.FormatFloat(l.values[tag], 'g', -1, 64)
	}
	return strings.Join(parts, ", ")
}

// key returns a canonical identity string used for deduplication.
func (l *Location) key() string {
	tags := l.sortedTags()
	var b strings.Builder
	for _, tag := range tags {
		b.WriteString(tag)
		b.WriteByte('=')
		b.WriteString(strconv.FormatFloat(l.values[tag], 'g', -1, 64))
		b.WriteByte(';')
	}
	return b.String()
}

// ValidateAgainst checks the location against a font's declared axes.
// Axes the font lacks fail with *MismatchedAxesError; values outside an
// axis range fail with *AxisRangeError.
func (l *Location) ValidateAgainst(axes []Axis) error {
	byTag := make(map[string]Axis, len(axes))
	for _, ax := range axes {
		byTag[ax.Tag] = ax
	}
	var missing []string
	for _, tag := range l.tags {
		if _, ok := byTag[tag]; !ok {
			missing = append(missing, tag)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &MismatchedAxesError{Tags: missing}
	}
	for _, tag := range l.tags {
		ax := byTag[tag]
		v := l.values[tag]
		if v < ax.Min || v > ax.Max {
			return &AxisRangeError{Tag: tag, Value: v, Min: ax.Min, Max: ax.Max}
		}
	}
	return nil
}

// variations converts the location into shaper variation settings.
func (l *Location) variations() []ot.Variation {
	out := make([]ot.Variation, 0, len(l.tags))
	for _, tag := range l.tags {
		out = append(out, ot.Variation{
			Tag:   axisTag(tag),
			Value: float32(l.values[tag]),
		})
	}
	return out
}

// glyphVariations converts the location into outline variation
// settings. Both tag encodings pack the four bytes big-endian, so the
// conversion is numeric.
func (l *Location) glyphVariations() []font.Variation {
	out := make([]font.Variation, 0, len(l.tags))
	for _, tag := range l.tags {
		out = append(out, font.Variation{
			Tag:   font.Tag(uint32(axisTag(tag))),
			Value: float32(l.values[tag]),
		})
	}
	return out
}

func (l *Location) sortedTags() []string {
	tags := make([]string, len(l.tags))
	copy(tags, l.tags)
	sort.Strings(tags)
	return tags
}

func checkAxisTag(tag string) error {
	if len(tag) == 0 || len(tag) > 4 {
		return fmt.Errorf("%w: %q", ErrInvalidAxisTag, tag)
	}
	for i := 0; i < len(tag); i++ {
		if tag[i] < 0x20 || tag[i] > 0x7e {
			return fmt.Errorf("%w: %q", ErrInvalidAxisTag, tag)
		}
	}
	return nil
}

// axisTag converts a 1-4 character tag to its OpenType form, padding
// with spaces.
func axisTag(tag string) ot.Tag {
	var b [4]byte
	copy(b[:], "    ")
	copy(b[:], tag)
	return ot.MakeTag(b[0], b[1], b[2], b[3])
}

// tagString converts an OpenType tag back to its trimmed string form.
func tagString(t ot.Tag) string {
	b := [4]byte{byte(t >> 24), byte(t >> 16), byte(t >> 8), byte(t)}
	return strings.TrimRight(string(b[:]), " ")
}

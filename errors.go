package fontheight

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the fontheight package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("fontheight: empty font data")

	// ErrInvalidLocationValue is returned when an axis value is NaN or infinite.
	ErrInvalidLocationValue = errors.New("fontheight: axis value must be a finite number")

	// ErrInvalidAxisTag is returned when an axis tag is empty or longer than four characters.
	ErrInvalidAxisTag = errors.New("fontheight: axis tag must be 1 to 4 ASCII characters")
)

// MismatchedAxesError is returned when a location names axes the font
// does not declare.
type MismatchedAxesError struct {
	Tags []string
}

func (e *MismatchedAxesError) Error() string {
	return fmt.Sprintf("fontheight: font declares no axes named %s", strings.Join(e.Tags, ", "))
}

// AxisRangeError is returned when a location value falls outside the
// declared range of its axis.
type AxisRangeError struct {
	Tag   string
	Value float64
	Min   float64
	Max   float64
}

func (e *AxisRangeError) Error() string {
	return fmt.Sprintf("fontheight: %s=%g is outside the axis range [%g, %g]", e.Tag, e.Value, e.Min, e.Max)
}

// WordListPlanError is returned when a word list's metadata cannot be
// turned into a shaping plan. The list is skipped; other lists are not
// affected.
type WordListPlanError struct {
	List     string
	Language string
}

func (e *WordListPlanError) Error() string {
	return fmt.Sprintf("fontheight: word list %s: no OpenType language tag for %q", e.List, e.Language)
}

// WordSkippedError reports a word that could not be measured, most
// commonly because it shaped to .notdef. Recoverable: the word is
// skipped and the rest of the list is still processed.
type WordSkippedError struct {
	Word string
	List string
}

func (e *WordSkippedError) Error() string {
	return fmt.Sprintf("fontheight: word %q in %s shaped to .notdef", e.Word, e.List)
}

package fontheight

import (
	"sync"

	"github.com/boxesandglue/textshape/ot"
	"github.com/go-text/typesetting/font"

	"github.com/typetools/fontheight/internal/cache"
	"github.com/typetools/fontheight/wordlists"
)

// Instance measures words at one design-space location. It owns a
// shaper configured for that location, an outline face carrying the
// location's variation coordinates, a plan cache, and a lazily
// populated per-glyph extent cache.
//
// Instance is safe for concurrent use: shaping is serialized on an
// internal mutex (the shaper and its buffer are stateful), outline
// reads on another (font.Face is not safe for concurrent use), and
// cached extent hits go through the sharded cache without either lock.
type Instance struct {
	location *Location
	meta     *ShapingMeta
	extents  *cache.Sharded[ot.GlyphID, glyphExtent]

	mu     sync.Mutex // guards shaper and buf
	shaper *ot.Shaper
	buf    *ot.Buffer

	outMu    sync.Mutex // guards outlines
	outlines *font.Face
}

// glyphExtent is a cached per-glyph measurement. ink is false for
// glyphs without an outline, such as spaces.
type glyphExtent struct {
	ext VerticalExtremes
	ink bool
}

func newInstance(loc *Location, outlines *font.Face, shaper *ot.Shaper) *Instance {
	return &Instance{
		location: loc,
		meta:     newShapingMeta(),
		extents:  cache.NewSharded[ot.GlyphID, glyphExtent](glyphHasher),
		shaper:   shaper,
		buf:      ot.NewBuffer(),
		outlines: outlines,
	}
}

func glyphHasher(gid ot.GlyphID) uint64 {
	return cache.Uint16Hasher(uint16(gid))
}

// Location returns the design-space location this instance measures at.
func (inst *Instance) Location() *Location { return inst.location }

// Check shapes the list's words at this instance's location and keeps
// the most extreme ones, up to results words per side. maxWords caps
// how many words of the list are tested; 0 tests them all.
//
// Words that cannot be measured are skipped with a debug log entry and
// never abort the list. The returned report may have empty exemplars
// when no word measured at all; callers usually drop those.
func (inst *Instance) Check(list *wordlists.WordList, maxWords, results int) (*Report, error) {
	plan, err := inst.meta.planFor(list)
	if err != nil {
		return nil, err
	}

	words := list.Words()
	if maxWords > 0 && maxWords < len(words) {
		words = words[:maxWords]
	}

	collector, skipped := collectWords(words, list.PreSorted(), results, func(word string) (WordExtremes, error) {
		return inst.measure(plan, word, list.Name())
	})
	if skipped > 0 {
		Logger().Info("skipped words without full glyph support",
			"list", list.Name(), "location", inst.location.String(), "skipped", skipped)
	}

	return &Report{
		Location:  inst.location,
		WordList:  list,
		Exemplars: collector.Build(),
	}, nil
}

// collectWords feeds measured words into a bounded collector. For lists
// whose metadata claims descending extremity order, collection stops as
// soon as the collector saturates: no later word in a genuinely
// pre-sorted list can displace a retained one. A mis-sorted list that
// claims the ordering truncates accordingly.
func collectWords(words []string, preSorted bool, results int, measure func(string) (WordExtremes, error)) (*Collector, int) {
	collector := NewCollector(results)
	skipped := 0
	for _, word := range words {
		if preSorted && collector.Saturated() {
			break
		}
		we, err := measure(word)
		if err != nil {
			skipped++
			Logger().Debug("word skipped", "err", err)
			continue
		}
		collector.Push(we)
	}
	return collector, skipped
}

// measure shapes one word and folds the offset glyph extents into a
// vertical span. Words shaping to .notdef fail with *WordSkippedError.
func (inst *Instance) measure(plan *shapingPlan, word, listName string) (WordExtremes, error) {
	type shapedGlyph struct {
		gid  ot.GlyphID
		yOff int16
	}

	inst.mu.Lock()
	buf := inst.buf
	buf.Reset()
	buf.AddString(word)
	buf.Script = plan.script
	buf.Direction = plan.direction
	if len(plan.languages) > 0 {
		buf.Language = plan.languages[0]
		buf.LanguageCandidates = plan.languages
	}
	inst.shaper.Shape(buf, nil)

	glyphs := make([]shapedGlyph, len(buf.Info))
	for i := range buf.Info {
		glyphs[i] = shapedGlyph{gid: buf.Info[i].GlyphID, yOff: buf.Pos[i].YOffset}
	}
	inst.mu.Unlock()

	var ext VerticalExtremes
	for _, g := range glyphs {
		if g.gid == 0 {
			return WordExtremes{}, &WordSkippedError{Word: word, List: listName}
		}
		ge, ink := inst.glyphExtent(g.gid)
		if !ink {
			continue
		}
		off := float64(g.yOff)
		ext = ext.Merge(VerticalExtremes{
			Lowest:  ge.Lowest + off,
			Highest: ge.Highest + off,
		})
	}
	return WordExtremes{Word: word, Extremes: ext}, nil
}

// glyphExtent measures a glyph's outline once per instance and caches
// the result. The outline face carries this instance's variation
// coordinates, so the contours, and with them the extents, are specific
// to the location.
func (inst *Instance) glyphExtent(gid ot.GlyphID) (VerticalExtremes, bool) {
	ge := inst.extents.GetOrCreate(gid, func() glyphExtent {
		inst.outMu.Lock()
		data := inst.outlines.GlyphData(font.GID(gid))
		inst.outMu.Unlock()

		outline, ok := data.(font.GlyphOutline)
		if !ok {
			return glyphExtent{}
		}
		ext, ink := outlineExtremes(outline)
		return glyphExtent{ext: ext, ink: ink}
	})
	return ge.ext, ge.ink
}

package fontheight

import (
	"github.com/boxesandglue/textshape/ot"
	xlanguage "golang.org/x/text/language"

	"github.com/typetools/fontheight/wordlists"
)

const (
	// selectorSampleSize is how many words are probed per list when
	// deciding whether the font covers it.
	selectorSampleSize = 12

	// selectorMinCoverage is the fraction of sampled words that must be
	// fully mapped by the cmap for a list to be selected. Sampling is
	// deliberately forgiving: lists routinely contain a few words with
	// rare codepoints, and uncovered words are skipped during
	// measurement anyway.
	selectorMinCoverage = 0.5
)

// SelectWordLists filters a catalog down to the lists this font can
// meaningfully shape. A list is kept when the font's cmap covers enough
// of a sample of its words; character coverage is the signal, not OS/2
// script declarations, which are unreliable across font formats. When
// languages is non-empty, lists declaring a language are additionally
// matched against it.
//
// The result keeps catalog order. An empty result is not an error: the
// caller simply has nothing to measure.
func (r *Reporter) SelectWordLists(catalog []*wordlists.WordList, languages []string) []*wordlists.WordList {
	matcher := newLanguageMatcher(languages)

	var out []*wordlists.WordList
	for _, list := range catalog {
		if list.Language() != "" && !matcher.matches(list.Language()) {
			Logger().Debug("word list filtered by language",
				"list", list.Name(), "language", list.Language())
			continue
		}
		cov := r.coverage(list)
		if cov < selectorMinCoverage {
			Logger().Debug("word list not covered by font",
				"list", list.Name(), "coverage", cov)
			continue
		}
		out = append(out, list)
	}
	return out
}

// coverage samples words evenly across the list and returns the
// fraction whose codepoints are all mapped by the font's cmap.
func (r *Reporter) coverage(list *wordlists.WordList) float64 {
	if r.cmap == nil {
		return 0
	}
	words := list.Words()
	if len(words) == 0 {
		return 0
	}

	step := len(words) / selectorSampleSize
	if step < 1 {
		step = 1
	}
	sampled, covered := 0, 0
	for i := 0; i < len(words) && sampled < selectorSampleSize; i += step {
		sampled++
		if r.coversWord(words[i]) {
			covered++
		}
	}
	return float64(covered) / float64(sampled)
}

func (r *Reporter) coversWord(word string) bool {
	for _, rn := range word {
		gid, ok := r.cmap.Lookup(ot.Codepoint(rn))
		if !ok || gid == 0 {
			return false
		}
	}
	return true
}

// languageMatcher matches word-list languages against a user-supplied
// BCP-47 filter. The zero filter matches everything.
type languageMatcher struct {
	matcher xlanguage.Matcher
}

func newLanguageMatcher(tags []string) *languageMatcher {
	if len(tags) == 0 {
		return &languageMatcher{}
	}
	parsed := make([]xlanguage.Tag, 0, len(tags))
	for _, t := range tags {
		tag, err := xlanguage.Parse(t)
		if err != nil {
			Logger().Warn("ignoring invalid language filter", "tag", t, "err", err)
			continue
		}
		parsed = append(parsed, tag)
	}
	if len(parsed) == 0 {
		return &languageMatcher{}
	}
	return &languageMatcher{matcher: xlanguage.NewMatcher(parsed)}
}

func (m *languageMatcher) matches(bcp47 string) bool {
	if m.matcher == nil {
		return true
	}
	tag, err := xlanguage.Parse(bcp47)
	if err != nil {
		return false
	}
	_, _, conf := m.matcher.Match(tag)
	return conf > xlanguage.No
}

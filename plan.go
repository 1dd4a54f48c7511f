package fontheight

import (
	"sync"

	"github.com/boxesandglue/textshape/ot"
	"github.com/go-text/typesetting/language"

	"github.com/typetools/fontheight/wordlists"
)

// shapingPlan is the reusable buffer preconfiguration for one
// (script, language) combination: the resolved script tag, the text
// direction the script implies, and the OpenType language system
// candidates derived from the list's BCP-47 tag.
type shapingPlan struct {
	script    ot.Tag
	direction ot.Direction
	languages []ot.Tag
}

type planKey struct {
	script language.Script
	lang   string
}

// ShapingMeta memoizes shaping plans so per-word shaping never repeats
// script and language resolution. One ShapingMeta belongs to one font
// instance and must not be shared across fonts.
//
// ShapingMeta is safe for concurrent use.
type ShapingMeta struct {
	mu    sync.Mutex
	plans map[planKey]*shapingPlan
}

func newShapingMeta() *ShapingMeta {
	return &ShapingMeta{plans: make(map[planKey]*shapingPlan)}
}

// planFor returns the plan for a word list's script and language,
// building and caching it on first use. Lists whose language has no
// OpenType mapping fail with *WordListPlanError; the caller skips the
// list and moves on.
func (m *ShapingMeta) planFor(list *wordlists.WordList) (*shapingPlan, error) {
	key := planKey{script: list.Script(), lang: list.Language()}

	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.plans[key]; ok {
		return p, nil
	}

	tag := scriptTag(key.script)
	dir := ot.GetHorizontalDirection(tag)
	if dir == 0 {
		// Bidirectional scripts report no fixed direction.
		dir = ot.DirectionLTR
	}
	p := &shapingPlan{
		script:    tag,
		direction: dir,
	}
	if key.lang != "" {
		p.languages = ot.LanguageToTag(key.lang)
		if len(p.languages) == 0 {
			return nil, &WordListPlanError{List: list.Name(), Language: key.lang}
		}
	}
	m.plans[key] = p
	return p, nil
}

// scriptTag converts a typesetting script identifier to its OpenType
// tag. Both encode the ISO 15924 code in four big-endian bytes.
func scriptTag(s language.Script) ot.Tag {
	return ot.Tag(uint32(s))
}

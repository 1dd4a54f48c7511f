package fontheight

import (
	"testing"

	"github.com/boxesandglue/textshape/ot"
	"github.com/go-text/typesetting/language"

	"github.com/typetools/fontheight/wordlists"
)

func TestShapingMetaMemoizes(t *testing.T) {
	meta := newShapingMeta()
	list := wordlists.Define("latin-test", language.Latin, "en", []string{"hello"})

	first, err := meta.planFor(list)
	if err != nil {
		t.Fatalf("planFor() = %v", err)
	}
	second, err := meta.planFor(list)
	if err != nil {
		t.Fatalf("planFor() = %v", err)
	}
	if first != second {
		t.Error("planFor() built a new plan for a cached key")
	}

	// A list with the same script and language shares the plan.
	other := wordlists.Define("latin-other", language.Latin, "en", []string{"world"})
	shared, err := meta.planFor(other)
	if err != nil {
		t.Fatalf("planFor() = %v", err)
	}
	if shared != first {
		t.Error("planFor() did not share the plan across lists with identical keys")
	}
}

func TestShapingMetaDirections(t *testing.T) {
	meta := newShapingMeta()

	tests := []struct {
		name   string
		script language.Script
		want   ot.Direction
	}{
		{"latin_ltr", language.Latin, ot.DirectionLTR},
		{"arabic_rtl", language.Arabic, ot.DirectionRTL},
		{"hebrew_rtl", language.Hebrew, ot.DirectionRTL},
		{"thai_ltr", language.Thai, ot.DirectionLTR},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := wordlists.Define(tt.name, tt.script, "", []string{"x"})
			plan, err := meta.planFor(list)
			if err != nil {
				t.Fatalf("planFor() = %v", err)
			}
			if plan.direction != tt.want {
				t.Errorf("direction = %v, want %v", plan.direction, tt.want)
			}
			if plan.script != scriptTag(tt.script) {
				t.Errorf("script tag = %v, want %v", plan.script, scriptTag(tt.script))
			}
		})
	}
}

func TestShapingMetaLanguageCandidates(t *testing.T) {
	meta := newShapingMeta()
	list := wordlists.Define("hindi", language.Devanagari, "hi", []string{"नमस्ते"})

	plan, err := meta.planFor(list)
	if err != nil {
		t.Fatalf("planFor() = %v", err)
	}
	if len(plan.languages) == 0 {
		t.Error("expected OpenType language candidates for hi")
	}
}

func TestScriptTagMatchesISO(t *testing.T) {
	if got := tagString(scriptTag(language.Latin)); got != "Latn" {
		t.Errorf("scriptTag(Latin) = %q, want Latn", got)
	}
	if got := tagString(scriptTag(language.Arabic)); got != "Arab" {
		t.Errorf("scriptTag(Arabic) = %q, want Arab", got)
	}
}

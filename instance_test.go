package fontheight

import (
	"errors"
	"fmt"
	"testing"
)

// tableMeasure looks words up in a fixed extent table, failing for words
// it does not know.
func tableMeasure(extents map[string]VerticalExtremes) func(string) (WordExtremes, error) {
	return func(word string) (WordExtremes, error) {
		ext, ok := extents[word]
		if !ok {
			return WordExtremes{}, errors.New("unknown word")
		}
		return WordExtremes{Word: word, Extremes: ext}, nil
	}
}

func TestCollectWordsPreSortedEquivalence(t *testing.T) {
	// Words ordered most extreme first on both sides, as a genuinely
	// pre-sorted list would be.
	const n = 40
	input := make([]string, n)
	extents := make(map[string]VerticalExtremes, n)
	for i := 0; i < n; i++ {
		w := fmt.Sprintf("w%02d", i)
		input[i] = w
		extents[w] = VerticalExtremes{
			Lowest:  float64(i - 100),
			Highest: float64(100 - i),
		}
	}

	fast, _ := collectWords(input, true, 5, tableMeasure(extents))
	full, _ := collectWords(input, false, 5, tableMeasure(extents))

	got, want := fast.Build(), full.Build()
	if !equalWords(got.Lowest, words(want.Lowest)...) {
		t.Errorf("pre-sorted lowest = %v, want %v", words(got.Lowest), words(want.Lowest))
	}
	if !equalWords(got.Highest, words(want.Highest)...) {
		t.Errorf("pre-sorted highest = %v, want %v", words(got.Highest), words(want.Highest))
	}
}

func TestCollectWordsMisSortedTruncates(t *testing.T) {
	// The strongest word sits last, violating the claimed ordering. The
	// fast path stops at saturation and never sees it; that truncation
	// is the accepted cost of trusting the metadata.
	extents := map[string]VerticalExtremes{
		"aa": {Lowest: -10, Highest: 10},
		"bb": {Lowest: -20, Highest: 20},
		"zz": {Lowest: -99, Highest: 99},
	}
	input := []string{"aa", "bb", "zz"}

	fast, _ := collectWords(input, true, 2, tableMeasure(extents))
	got := fast.Build()
	for _, we := range append(got.Lowest, got.Highest...) {
		if we.Word == "zz" {
			t.Fatal("fast path consumed a word past saturation")
		}
	}

	full, _ := collectWords(input, false, 2, tableMeasure(extents))
	want := full.Build()
	if len(want.Lowest) == 0 || want.Lowest[0].Word != "zz" {
		t.Errorf("full scan lowest = %v, want zz first", want.Lowest)
	}
}

func TestCollectWordsSkipsFailures(t *testing.T) {
	extents := map[string]VerticalExtremes{
		"aa": {Lowest: -10, Highest: 50},
		"cc": {Lowest: -5, Highest: 80},
	}
	input := []string{"aa", "??", "cc", "!!"}

	collector, skipped := collectWords(input, false, 5, tableMeasure(extents))
	if skipped != 2 {
		t.Errorf("skipped = %d, want 2", skipped)
	}
	got := collector.Build()
	if len(got.Lowest) != 2 || len(got.Highest) != 2 {
		t.Fatalf("retained %d/%d words, want 2/2", len(got.Lowest), len(got.Highest))
	}
	for _, we := range append(got.Lowest, got.Highest...) {
		if _, ok := extents[we.Word]; !ok {
			t.Errorf("retained unmeasurable word %q", we.Word)
		}
	}
}

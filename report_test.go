package fontheight

import (
	"testing"

	"github.com/go-text/typesetting/language"

	"github.com/typetools/fontheight/wordlists"
)

func testReport(t *testing.T, list string, entries ...WordExtremes) *Report {
	t.Helper()
	c := NewCollector(len(entries))
	for _, e := range entries {
		c.Push(e)
	}
	return &Report{
		Location:  NewLocation(),
		WordList:  wordlists.Define(list, language.Latin, "en", nil),
		Exemplars: c.Build(),
	}
}

func TestReportExtremes(t *testing.T) {
	rep := testReport(t, "latin",
		we("aa", -10, 50),
		we("bb", -40, 30),
		we("cc", -5, 80),
	)
	got := rep.Extremes()
	want := VerticalExtremes{Lowest: -40, Highest: 80}
	if got != want {
		t.Errorf("Extremes() = %+v, want %+v", got, want)
	}
}

func TestReportExtremesEmpty(t *testing.T) {
	rep := testReport(t, "latin")
	if got := rep.Extremes(); got != (VerticalExtremes{}) {
		t.Errorf("Extremes() = %+v, want zero span", got)
	}
}

func TestSummarizeFont(t *testing.T) {
	reports := []*Report{
		testReport(t, "latin", we("aa", -10, 50)),
		testReport(t, "arabic", we("bb", -240, 130)),
		testReport(t, "thai", we("cc", -5, 380)),
	}
	got := SummarizeFont(reports)
	want := VerticalExtremes{Lowest: -240, Highest: 380}
	if got != want {
		t.Errorf("SummarizeFont() = %+v, want %+v", got, want)
	}

	if got := SummarizeFont(nil); got != (VerticalExtremes{}) {
		t.Errorf("SummarizeFont(nil) = %+v, want zero span", got)
	}
}

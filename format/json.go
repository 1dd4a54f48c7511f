package format

import (
	"encoding/json"
	"io"

	"github.com/typetools/fontheight"
)

// The JSON DTOs flatten the engine types into a stable wire shape so
// downstream tooling does not depend on engine internals.

type jsonDocument struct {
	Font    string       `json:"font"`
	Reports []jsonReport `json:"reports"`
	Overall jsonExtremes `json:"overall"`
}

type jsonReport struct {
	WordList string     `json:"word_list"`
	Script   string     `json:"script"`
	Language string     `json:"language,omitempty"`
	Location []jsonAxis `json:"location"`
	Lowest   []jsonWord `json:"lowest"`
	Highest  []jsonWord `json:"highest"`
}

type jsonAxis struct {
	Tag   string  `json:"tag"`
	Value float64 `json:"value"`
}

type jsonWord struct {
	Word    string  `json:"word"`
	Lowest  float64 `json:"lowest"`
	Highest float64 `json:"highest"`
}

type jsonExtremes struct {
	Lowest  float64 `json:"lowest"`
	Highest float64 `json:"highest"`
}

func renderJSON(w io.Writer, font string, reports []*fontheight.Report) error {
	doc := jsonDocument{
		Font:    font,
		Reports: make([]jsonReport, 0, len(reports)),
	}
	for _, rep := range reports {
		doc.Reports = append(doc.Reports, toJSONReport(rep))
	}
	overall := fontheight.SummarizeFont(reports)
	doc.Overall = jsonExtremes{Lowest: overall.Lowest, Highest: overall.Highest}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func toJSONReport(rep *fontheight.Report) jsonReport {
	out := jsonReport{
		WordList: rep.WordList.Name(),
		Script:   scriptString(uint32(rep.WordList.Script())),
		Language: rep.WordList.Language(),
		Location: make([]jsonAxis, 0, rep.Location.Len()),
		Lowest:   make([]jsonWord, 0, len(rep.Exemplars.Lowest)),
		Highest:  make([]jsonWord, 0, len(rep.Exemplars.Highest)),
	}
	for _, tag := range rep.Location.Axes() {
		v, _ := rep.Location.Value(tag)
		out.Location = append(out.Location, jsonAxis{Tag: tag, Value: v})
	}
	for _, we := range rep.Exemplars.Lowest {
		out.Lowest = append(out.Lowest, toJSONWord(we))
	}
	for _, we := range rep.Exemplars.Highest {
		out.Highest = append(out.Highest, toJSONWord(we))
	}
	return out
}

func toJSONWord(we fontheight.WordExtremes) jsonWord {
	return jsonWord{
		Word:    we.Word,
		Lowest:  we.Extremes.Lowest,
		Highest: we.Extremes.Highest,
	}
}

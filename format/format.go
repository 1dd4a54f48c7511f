// Package format renders fontheight reports for humans and machines.
//
// Four encodings are supported: plain text for terminals, GitHub
// flavored Markdown, a standalone HTML page (the Markdown rendered
// through goldmark), and JSON for downstream tooling.
package format

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/typetools/fontheight"
)

// Format selects an output encoding.
type Format string

const (
	Text     Format = "text"
	Markdown Format = "markdown"
	HTML     Format = "html"
	JSON     Format = "json"
)

// Parse resolves a format name given on a command line.
func Parse(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	switch f {
	case Text, Markdown, HTML, JSON:
		return f, nil
	case "md":
		return Markdown, nil
	}
	return "", fmt.Errorf("format: unknown output format %q", s)
}

// Render writes the reports for one font in the chosen format. The
// font argument labels the output; the file path is the usual choice.
func Render(w io.Writer, f Format, font string, reports []*fontheight.Report) error {
	switch f {
	case Text:
		return renderText(w, font, reports)
	case Markdown:
		return renderMarkdown(w, font, reports)
	case HTML:
		return renderHTML(w, font, reports)
	case JSON:
		return renderJSON(w, font, reports)
	}
	return fmt.Errorf("format: unknown output format %q", f)
}

func renderText(w io.Writer, font string, reports []*fontheight.Report) error {
	if _, err := fmt.Fprintf(w, "%s:\n", font); err != nil {
		return err
	}
	if len(reports) == 0 {
		_, err := fmt.Fprintln(w, "  no words measured")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	for _, rep := range reports {
		fmt.Fprintf(w, "  %s @ %s\n", rep.WordList.Name(), rep.Location)
		fmt.Fprintln(w, "    lowest:")
		for _, we := range rep.Exemplars.Lowest {
			fmt.Fprintf(tw, "      %g\t  %s\n", we.Extremes.Lowest, we.Word)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(w, "    highest:")
		for _, we := range rep.Exemplars.Highest {
			fmt.Fprintf(tw, "      %g\t  %s\n", we.Extremes.Highest, we.Word)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	overall := fontheight.SummarizeFont(reports)
	_, err := fmt.Fprintf(w, "  overall: [%g, %g]\n", overall.Lowest, overall.Highest)
	return err
}

// scriptString decodes a script identifier to its four-letter ISO 15924
// code.
func scriptString(s uint32) string {
	b := [4]byte{byte(s >> 24), byte(s >> 16), byte(s >> 8), byte(s)}
	return strings.TrimRight(string(b[:]), " ")
}

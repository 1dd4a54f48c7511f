package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/typetools/fontheight"
)

func renderMarkdown(w io.Writer, font string, reports []*fontheight.Report) error {
	if _, err := fmt.Fprintf(w, "# %s\n\n", font); err != nil {
		return err
	}
	if len(reports) == 0 {
		_, err := fmt.Fprintln(w, "No words measured.")
		return err
	}

	for _, rep := range reports {
		fmt.Fprintf(w, "## %s @ %s\n\n", rep.WordList.Name(), rep.Location)
		fmt.Fprintln(w, "| Extreme | Word | Extent |")
		fmt.Fprintln(w, "| --- | --- | ---: |")
		for _, we := range rep.Exemplars.Lowest {
			fmt.Fprintf(w, "| lowest | %s | %g |\n", escapeCell(we.Word), we.Extremes.Lowest)
		}
		for _, we := range rep.Exemplars.Highest {
			fmt.Fprintf(w, "| highest | %s | %g |\n", escapeCell(we.Word), we.Extremes.Highest)
		}
		fmt.Fprintln(w)
	}

	overall := fontheight.SummarizeFont(reports)
	_, err := fmt.Fprintf(w, "Overall: lowest %g, highest %g.\n", overall.Lowest, overall.Highest)
	return err
}

// escapeCell keeps word content from breaking the table syntax.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

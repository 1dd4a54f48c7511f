package format

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/typetools/fontheight"
)

// md renders the Markdown output to HTML. GFM is needed for the
// report tables.
var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

const htmlHeader = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
table { border-collapse: collapse; margin: 1rem 0; }
th, td { border: 1px solid #ccc; padding: 0.3rem 0.7rem; }
td:last-child { text-align: right; font-variant-numeric: tabular-nums; }
</style>
</head>
<body>
`

const htmlFooter = `</body>
</html>
`

func renderHTML(w io.Writer, font string, reports []*fontheight.Report) error {
	var src bytes.Buffer
	if err := renderMarkdown(&src, font, reports); err != nil {
		return err
	}
	var body bytes.Buffer
	if err := md.Convert(src.Bytes(), &body); err != nil {
		return fmt.Errorf("format: render html: %w", err)
	}

	if _, err := fmt.Fprintf(w, htmlHeader, html.EscapeString(font)); err != nil {
		return err
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		return err
	}
	_, err := io.WriteString(w, htmlFooter)
	return err
}

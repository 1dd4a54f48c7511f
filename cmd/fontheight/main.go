// Command fontheight reports how far shaped words extend above and
// below a font's baseline, per script and per design-space location.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/pflag"

	"github.com/typetools/fontheight"
	"github.com/typetools/fontheight/format"
	"github.com/typetools/fontheight/wordlists"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fontheight:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		results       = pflag.IntP("results", "n", fontheight.DefaultResults, "number of words to report per extreme")
		maxWords      = pflag.IntP("words", "k", 0, "number of words to test from each list (0 = all)")
		locationSpecs = pflag.StringArray("location", nil, `additional design-space location, e.g. "wght=700,wdth=100" (repeatable)`)
		allLocations  = pflag.Bool("all-locations", false, "test every interesting design-space location, not just named instances")
		outFormat     = pflag.String("format", "text", "output format: text, markdown, html, or json")
		output        = pflag.StringP("output", "o", "", "write the report to a file instead of stdout")
		languages     = pflag.StringSlice("languages", nil, "restrict word lists to these BCP-47 languages")
		listPaths     = pflag.StringArray("wordlist", nil, "additional word list file (.txt, .txt.gz, or .txt.br; repeatable)")
		workers       = pflag.Int("workers", 0, "worker goroutines (0 = all CPUs)")
		verbosity     = pflag.CountP("verbose", "v", "increase log verbosity (repeat for debug)")
	)
	pflag.Parse()

	fonts := pflag.Args()
	if len(fonts) == 0 {
		return fmt.Errorf("no font files given (usage: fontheight [flags] FONT...)")
	}

	level := slog.LevelWarn
	switch {
	case *verbosity == 1:
		level = slog.LevelInfo
	case *verbosity >= 2:
		level = slog.LevelDebug
	}
	fontheight.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	log := fontheight.Logger()

	f, err := format.Parse(*outFormat)
	if err != nil {
		return err
	}

	var locations []*fontheight.Location
	for _, spec := range *locationSpecs {
		loc, err := fontheight.ParseLocation(spec)
		if err != nil {
			return err
		}
		locations = append(locations, loc)
	}

	lists := wordlists.Catalog()
	for _, path := range *listPaths {
		wl, err := wordlists.Load(path)
		if err != nil {
			return err
		}
		lists = append(lists, wl)
	}

	var out io.Writer = os.Stdout
	if *output != "" {
		file, err := os.Create(*output)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := fontheight.Options{
		Results:      *results,
		MaxWords:     *maxWords,
		Locations:    locations,
		AllLocations: *allLocations,
		Languages:    *languages,
		Lists:        lists,
		Workers:      *workers,
	}

	failed := 0
	for _, fontPath := range fonts {
		start := time.Now()
		reporter, err := fontheight.NewFromFile(fontPath)
		if err != nil {
			log.Error("skipping font", "font", fontPath, "err", err)
			failed++
			continue
		}

		reports, err := reporter.Run(ctx, opts)
		if err != nil {
			return err // only cancellation reaches here
		}
		log.Info("font analyzed",
			"font", fontPath, "reports", len(reports), "took", time.Since(start))

		if err := format.Render(out, f, fontPath, reports); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d fonts could not be analyzed", failed, len(fonts))
	}
	return nil
}

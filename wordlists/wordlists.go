// Package wordlists provides the word lists fontheight measures:
// an embedded catalog of per-script lists plus loading of user-supplied
// sidecar lists. Embedded lists stay compressed until first use.
package wordlists

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/andybalholm/brotli"
	"github.com/go-text/typesetting/language"
)

// WordList is a named collection of words in a single script, with an
// optional BCP-47 language refining how the words should be shaped.
//
// Word slices are materialized lazily and shared: callers must not
// modify the slice returned by Words.
type WordList struct {
	name      string
	source    string
	script    language.Script
	lang      string
	preSorted bool

	once  sync.Once
	load  func() ([]string, error)
	words []string
}

// Name returns the list identifier, unique within a catalog.
func (w *WordList) Name() string { return w.name }

// Source names where the list came from ("aosp", "diffenator", "file", ...).
func (w *WordList) Source() string { return w.source }

// Script returns the writing system the words belong to.
func (w *WordList) Script() language.Script { return w.script }

// Language returns the list's BCP-47 language tag, or "" when the list
// is not tied to one language.
func (w *WordList) Language() string { return w.lang }

// PreSorted reports whether the list is ordered by descending vertical
// extremity. Consumers may stop reading a pre-sorted list once they
// have enough entries; a list wrongly marked pre-sorted truncates
// results rather than producing an error.
func (w *WordList) PreSorted() bool { return w.preSorted }

// Words returns the list contents, decompressing embedded data on first
// call. The returned slice is shared and must not be modified.
func (w *WordList) Words() []string {
	w.once.Do(func() {
		words, err := w.load()
		if err != nil {
			// Embedded lists are validated by the package tests; a
			// decode failure here means the binary itself is corrupt.
			panic(fmt.Sprintf("wordlists: %s: %v", w.name, err))
		}
		w.words = words
	})
	return w.words
}

// Len returns the number of words in the list, materializing it if
// necessary.
func (w *WordList) Len() int { return len(w.Words()) }

// Define creates an in-memory word list. Pass the zero Script to detect
// the script from the first word.
func Define(name string, script language.Script, lang string, words []string) *WordList {
	if script == 0 && len(words) > 0 {
		script = detectScript(words[0])
	}
	return &WordList{
		name:   name,
		source: "defined",
		script: script,
		lang:   lang,
		load:   func() ([]string, error) { return words, nil },
	}
}

// Load reads a word list from a file. Plain text, gzip (.gz), and
// Brotli (.br) files are supported; words are whitespace-separated.
// The list name is the file name without its extensions, and the script
// is detected from the first word.
func Load(path string) (*WordList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("wordlists: %w", err)
	}

	name := filepath.Base(path)
	switch {
	case strings.HasSuffix(name, ".br"):
		name = strings.TrimSuffix(name, ".br")
		data, err = io.ReadAll(brotli.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, fmt.Errorf("wordlists: %s: brotli: %w", path, err)
		}
	case strings.HasSuffix(name, ".gz"):
		name = strings.TrimSuffix(name, ".gz")
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("wordlists: %s: gzip: %w", path, err)
		}
		data, err = io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("wordlists: %s: gzip: %w", path, err)
		}
	}
	name = strings.TrimSuffix(name, ".txt")

	words := splitWords(data)
	if len(words) == 0 {
		return nil, fmt.Errorf("wordlists: %s: empty word list", path)
	}
	return &WordList{
		name:   name,
		source: "file",
		script: detectScript(words[0]),
		load:   func() ([]string, error) { return words, nil },
	}, nil
}

func splitWords(data []byte) []string {
	return strings.Fields(string(data))
}

// detectScript returns the script of a word's first rune.
func detectScript(word string) language.Script {
	for _, r := range word {
		return language.LookupScript(r)
	}
	return language.Latin
}

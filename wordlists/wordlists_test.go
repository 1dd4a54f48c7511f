package wordlists

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/go-text/typesetting/language"
)

func TestCatalog(t *testing.T) {
	catalog := Catalog()
	if len(catalog) == 0 {
		t.Fatal("Catalog() is empty")
	}

	seen := make(map[string]bool)
	for _, list := range catalog {
		if list.Name() == "" {
			t.Error("embedded list with empty name")
		}
		if seen[list.Name()] {
			t.Errorf("duplicate list name %q", list.Name())
		}
		seen[list.Name()] = true
		if list.Script() == 0 {
			t.Errorf("list %q has no script", list.Name())
		}
	}
}

func TestCatalogOrderStable(t *testing.T) {
	a, b := Catalog(), Catalog()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Catalog() order changed between calls at %d", i)
		}
	}
	// The returned slice is a copy: mutating it must not affect the
	// catalog.
	a[0] = nil
	if c := Catalog(); c[0] == nil {
		t.Error("Catalog() exposes internal state")
	}
}

func TestEmbeddedListsDecode(t *testing.T) {
	// Words decodes every embedded list; a corrupt asset panics, which
	// this test turns into a failure.
	for _, list := range Catalog() {
		t.Run(list.Name(), func(t *testing.T) {
			words := list.Words()
			if len(words) == 0 {
				t.Fatalf("list %q decoded to no words", list.Name())
			}
			if list.Len() != len(words) {
				t.Errorf("Len() = %d, want %d", list.Len(), len(words))
			}
			// Lazy loading must be stable.
			if again := list.Words(); &again[0] != &words[0] {
				t.Error("Words() rebuilt the slice on second call")
			}
		})
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("latin"); !ok {
		t.Error(`Lookup("latin") not found`)
	}
	if _, ok := Lookup("klingon"); ok {
		t.Error(`Lookup("klingon") unexpectedly found`)
	}
}

func TestDefine(t *testing.T) {
	list := Define("sample", 0, "vi", []string{"người", "được"})
	if list.Script() != language.Latin {
		t.Errorf("detected script = %v, want Latin", list.Script())
	}
	if list.Language() != "vi" {
		t.Errorf("Language() = %q, want vi", list.Language())
	}
	if list.Len() != 2 {
		t.Errorf("Len() = %d, want 2", list.Len())
	}
}

func TestLoadPlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.txt")
	if err := os.WriteFile(path, []byte("alpha\nbeta\ngamma\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	list, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if list.Name() != "extra" {
		t.Errorf("Name() = %q, want extra", list.Name())
	}
	if list.Source() != "file" {
		t.Errorf("Source() = %q, want file", list.Source())
	}
	if list.Len() != 3 {
		t.Errorf("Len() = %d, want 3", list.Len())
	}
	if list.Script() != language.Latin {
		t.Errorf("Script() = %v, want Latin", list.Script())
	}
}

func TestLoadGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packed.txt.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte("съешь\nещё\n")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	list, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if list.Name() != "packed" {
		t.Errorf("Name() = %q, want packed", list.Name())
	}
	if list.Len() != 2 {
		t.Errorf("Len() = %d, want 2", list.Len())
	}
	if list.Script() != language.Cyrillic {
		t.Errorf("Script() = %v, want Cyrillic", list.Script())
	}
}

func TestLoadBrotli(t *testing.T) {
	path := filepath.Join(t.TempDir(), "squeezed.txt.br")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	bw := brotli.NewWriter(f)
	if _, err := bw.Write([]byte("one\ntwo\nthree\nfour\n")); err != nil {
		t.Fatal(err)
	}
	if err := bw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	list, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if list.Name() != "squeezed" {
		t.Errorf("Name() = %q, want squeezed", list.Name())
	}
	if list.Len() != 4 {
		t.Errorf("Len() = %d, want 4", list.Len())
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing_file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
			t.Error("Load() on a missing file succeeded")
		}
	})

	t.Run("empty_list", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.txt")
		if err := os.WriteFile(path, []byte("  \n\t\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("Load() on an empty list succeeded")
		}
	})

	t.Run("corrupt_gzip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.txt.gz")
		if err := os.WriteFile(path, []byte("not gzip at all"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("Load() on corrupt gzip succeeded")
		}
	})
}

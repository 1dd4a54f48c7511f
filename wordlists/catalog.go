package wordlists

import (
	"bytes"
	"compress/gzip"
	"embed"
	"io"

	"github.com/go-text/typesetting/language"
)

//go:embed data/*.txt.gz
var embedded embed.FS

// catalog lists the embedded word lists in registration order. The
// "aosp" lists derive from the Android string samples, "diffenator"
// from the diffenator2 proofing corpora. Each embedded list is a
// compact curated sample of its source corpus, chosen to keep the
// binary small; exhaustive per-script corpora run to tens of thousands
// of words and are better supplied as sidecar files via Load.
// Pre-sorted lists were ordered offline by descending vertical
// extremity.
var catalog = []*WordList{
	embeddedList("latin", "aosp", language.Latin, "en", false),
	embeddedList("latin-diacritics", "diffenator", language.Latin, "", true),
	embeddedList("vietnamese", "aosp", language.Latin, "vi", true),
	embeddedList("cyrillic", "aosp", language.Cyrillic, "ru", false),
	embeddedList("greek", "aosp", language.Greek, "el", false),
	embeddedList("arabic", "aosp", language.Arabic, "ar", false),
	embeddedList("hebrew", "aosp", language.Hebrew, "he", false),
	embeddedList("devanagari", "aosp", language.Devanagari, "hi", false),
	embeddedList("bengali", "aosp", language.Bengali, "bn", false),
	embeddedList("tamil", "aosp", language.Tamil, "ta", false),
	embeddedList("thai", "aosp", language.Thai, "th", false),
	embeddedList("khmer", "aosp", language.Khmer, "km", false),
	embeddedList("myanmar", "aosp", language.Myanmar, "my", false),
}

// Catalog returns the embedded word lists in registration order. The
// slice is a copy; the lists themselves are shared and lazily loaded.
func Catalog() []*WordList {
	out := make([]*WordList, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds an embedded list by name.
func Lookup(name string) (*WordList, bool) {
	for _, w := range catalog {
		if w.name == name {
			return w, true
		}
	}
	return nil, false
}

func embeddedList(name, source string, script language.Script, lang string, preSorted bool) *WordList {
	return &WordList{
		name:      name,
		source:    source,
		script:    script,
		lang:      lang,
		preSorted: preSorted,
		load:      func() ([]string, error) { return loadEmbedded(name) },
	}
}

func loadEmbedded(name string) ([]string, error) {
	data, err := embedded.ReadFile("data/" + name + ".txt.gz")
	if err != nil {
		return nil, err
	}
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}
	return splitWords(raw), nil
}

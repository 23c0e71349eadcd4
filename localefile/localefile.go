// Package localefile writes scratchblocks locale files.
//
// One file per language, named <lang>.json, with the translation nested
// under the language code:
//
//	{
//	  "de": {
//	    "aliases": { "Ende": "end" },
//	    "define": ["Definiere"],
//	    "ignorelt": ["wenn Entfernung"],
//	    "commands": { "move %n steps": "gehe %n er Schritt" },
//	    "dropdowns": { ... },
//	    "palette": { ... },
//	    "math": [ ... ],
//	    "osis": [ ... ]
//	  }
//	}
package localefile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/scratchblocks/sblocales/extract"
)

// Ext is the extension of locale files.
const Ext = ".json"

// Path returns the locale file path of lang inside dir.
func Path(dir, lang string) string {
	return filepath.Join(dir, lang+Ext)
}

// Clean creates dir if needed and removes every locale file in it, so a run
// never leaves stale languages behind. Other files are kept. It returns the
// removed paths.
func Clean(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating directory: %w", err)
	}
	files, err := filepath.Glob(filepath.Join(dir, "*"+Ext))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	var removed []string
	for _, f := range files {
		info, err := os.Stat(f)
		if err != nil || info.IsDir() {
			continue
		}
		if err := os.Remove(f); err != nil {
			return removed, fmt.Errorf("removing %s: %w", f, err)
		}
		removed = append(removed, f)
	}
	return removed, nil
}

// Marshal renders tr as a locale file with 2-space indentation.
func Marshal(tr *extract.Translation) ([]byte, error) {
	data, err := json.MarshalIndent(map[string]*extract.Translation{tr.Lang: tr}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", tr.Lang, err)
	}
	return append(data, '\n'), nil
}

// Write stores tr as <dir>/<lang>.json and returns the path.
func Write(dir string, tr *extract.Translation) (string, error) {
	data, err := Marshal(tr)
	if err != nil {
		return "", err
	}
	path := Path(dir, tr.Lang)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// ReadFile decodes a locale file. The returned translations have Lang set
// from their top-level key.
func ReadFile(path string) ([]*extract.Translation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var raw map[string]*extract.Translation
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	langs := make([]string, 0, len(raw))
	for lang := range raw {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	out := make([]*extract.Translation, 0, len(raw))
	for _, lang := range langs {
		tr := raw[lang]
		if tr == nil {
			continue
		}
		tr.Lang = lang
		out = append(out, tr)
	}
	return out, nil
}

// Package aliases holds the hand-maintained extra aliases: per language, a
// mapping from a localized phrase to the English spec it stands for. They
// cover phrases the upstream catalogs leave out or spell differently.
//
// The built-in table is compiled into the binary from aliases.yaml. A
// project may layer its own file on top with Load and Merge.
package aliases

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/scratchblocks/sblocales/orderedmap"
)

// EndSpec is the spec of the word that closes a C block.
const EndSpec = "end"

//go:embed aliases.yaml
var builtin []byte

// Table maps a language code to its aliases, localized phrase -> spec.
type Table map[string]*orderedmap.Map

// Default returns the built-in alias table.
func Default() (Table, error) {
	t, err := Parse(builtin)
	if err != nil {
		return nil, fmt.Errorf("parsing built-in aliases: %w", err)
	}
	return t, nil
}

// Parse decodes an alias table from YAML.
func Parse(data []byte) (Table, error) {
	t := make(Table)
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return t, nil
}

// Load reads an alias table from a YAML file.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return t, nil
}

// Merge returns a new table with the languages of override replacing those
// of t.
func (t Table) Merge(override Table) Table {
	out := make(Table, len(t)+len(override))
	for lang, m := range t {
		out[lang] = m
	}
	for lang, m := range override {
		out[lang] = m
	}
	return out
}

// For returns the aliases of lang.
func (t Table) For(lang string) (*orderedmap.Map, bool) {
	m, ok := t[lang]
	return m, ok && m != nil
}

// EndBlock returns the localized phrase aliased to the end spec, or "" if
// the aliases have none.
func EndBlock(m *orderedmap.Map) string {
	for _, phrase := range m.Keys() {
		if spec, _ := m.Get(phrase); spec == EndSpec {
			return phrase
		}
	}
	return ""
}

// Missing returns the specs of need that no alias in m points to.
func Missing(m *orderedmap.Map, need []string) []string {
	have := make(map[string]bool, m.Len())
	for _, spec := range m.Values() {
		have[spec] = true
	}
	var missing []string
	for _, spec := range need {
		if !have[spec] {
			missing = append(missing, spec)
		}
	}
	return missing
}

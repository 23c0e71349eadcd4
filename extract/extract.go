// Package extract resolves the English block specs against the fetched
// catalogs of a language and builds the translation record scratchblocks
// loads.
//
// Every function here is pure: problems are returned as warnings for the
// caller to print, never written out directly.
package extract

import (
	"fmt"
	"strings"

	"github.com/scratchblocks/sblocales/aliases"
	"github.com/scratchblocks/sblocales/fetch"
	"github.com/scratchblocks/sblocales/orderedmap"
	"github.com/scratchblocks/sblocales/pofile"
	"github.com/scratchblocks/sblocales/specs"
)

// Spec keys with special handling.
const (
	DefineSpec       = "define"
	WhenDistanceSpec = "when distance < %n"
	lessThanSuffix   = " < %n"
)

// WarningKind classifies a Warning.
type WarningKind int

// Warning kinds.
const (
	MissingTranslation WarningKind = iota
	MissingAlias
	MissingAliasTable
)

// Warning is a non-fatal problem found while building a translation.
type Warning struct {
	Kind WarningKind
	Lang string
	// Spec is the untranslated spec or the phrase lacking an alias. Empty
	// for MissingAliasTable.
	Spec string
}

func (w Warning) String() string {
	switch w.Kind {
	case MissingAlias:
		return fmt.Sprintf("%s is missing %q translation in extra aliases", w.Lang, w.Spec)
	case MissingAliasTable:
		return fmt.Sprintf("%s is missing all aliases, add them to the alias table", w.Lang)
	default:
		return fmt.Sprintf("%s: missing translation for %q", w.Lang, w.Spec)
	}
}

// Excluder reports whether a spec may stay untranslated without a warning.
type Excluder interface {
	Excluded(spec string) bool
}

// Translation is the per-language record written to the locale file.
type Translation struct {
	Lang      string          `json:"-"`
	Aliases   *orderedmap.Map `json:"aliases,omitempty"`
	Define    []string        `json:"define"`
	IgnoreLT  []*string       `json:"ignorelt"`
	Commands  *orderedmap.Map `json:"commands"`
	Dropdowns *orderedmap.Map `json:"dropdowns"`
	Palette   *orderedmap.Map `json:"palette"`
	Math      []string        `json:"math"`
	OSIS      []string        `json:"osis"`
}

// Translate resolves each spec against sources in order; the first
// non-empty translation wins. The result holds exactly the resolved specs,
// in spec order. Specs found nowhere yield a MissingTranslation warning
// unless ex excludes them.
func Translate(lang string, specList []string, ex Excluder, sources ...pofile.Catalog) (*orderedmap.Map, []Warning) {
	out := orderedmap.New()
	var warnings []Warning
	for _, spec := range specList {
		if v := lookup(spec, sources); v != "" {
			out.Set(spec, v)
			continue
		}
		if ex == nil || !ex.Excluded(spec) {
			warnings = append(warnings, Warning{Kind: MissingTranslation, Lang: lang, Spec: spec})
		}
	}
	return out, warnings
}

func lookup(spec string, sources []pofile.Catalog) string {
	for _, src := range sources {
		if v := src[spec]; v != "" {
			return v
		}
	}
	return ""
}

// WhenDistance returns the localized "when distance" phrase without its
// " < %n" tail, so the renderer can tell that hat apart from a less-than
// comparison. It returns nil when the spec is untranslated.
func WhenDistance(blocks pofile.Catalog) *string {
	v := blocks[WhenDistanceSpec]
	if v == "" {
		return nil
	}
	if i := strings.Index(v, lessThanSuffix); i >= 0 {
		v = v[:i]
	}
	return &v
}

// AliasWarnings checks the aliases of lang against the phrases every
// language needs. hasTable is false when the language has no aliases.
func AliasWarnings(lang string, m *orderedmap.Map, hasTable bool, need []string) []Warning {
	if !hasTable {
		return []Warning{{Kind: MissingAliasTable, Lang: lang}}
	}
	var warnings []Warning
	for _, spec := range aliases.Missing(m, need) {
		warnings = append(warnings, Warning{Kind: MissingAlias, Lang: lang, Spec: spec})
	}
	return warnings
}

// Transform builds the translation record of a fetched bundle. Commands
// resolve against the blocks catalog, dropdowns and palette labels against
// blocks then editor, math functions and "other scripts" options against the
// editor catalog.
func Transform(b *fetch.Bundle, a aliases.Table, t *specs.Tables) (*Translation, []Warning) {
	lang := b.Lang
	langAliases, hasTable := a.For(lang)
	warnings := AliasWarnings(lang, langAliases, hasTable, t.NeedAlias)

	tr := &Translation{
		Lang:     lang,
		Aliases:  langAliases,
		Define:   []string{b.Blocks[DefineSpec]},
		IgnoreLT: []*string{WhenDistance(b.Blocks)},
	}

	var w []Warning
	tr.Commands, w = Translate(lang, t.Commands, t, b.Blocks)
	warnings = append(warnings, w...)
	tr.Dropdowns, w = Translate(lang, t.Dropdowns, t, b.Blocks, b.Editor)
	warnings = append(warnings, w...)
	tr.Palette, w = Translate(lang, t.Palette, t, b.Blocks, b.Editor)
	warnings = append(warnings, w...)

	math, w := Translate(lang, t.MathFuncs, t, b.Editor)
	warnings = append(warnings, w...)
	tr.Math = math.Values()
	osis, w := Translate(lang, t.OSIS, t, b.Editor)
	warnings = append(warnings, w...)
	tr.OSIS = osis.Values()

	return tr, warnings
}

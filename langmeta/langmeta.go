// Package langmeta provides language display metadata (native names and
// emoji flags) for the CLI, backed by the CLDR data in golang.org/x/text.
package langmeta

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Meta describes language display metadata.
type Meta struct {
	Name string
	Flag string
}

func canonicalize(lang string) string {
	normalized := strings.ReplaceAll(strings.TrimSpace(lang), "_", "-")
	if normalized == "" {
		return ""
	}
	parts := strings.Split(normalized, "-")
	parts[0] = strings.ToLower(parts[0])
	if len(parts) >= 2 {
		parts[1] = strings.ToUpper(parts[1])
	}
	return strings.Join(parts, "-")
}

// Resolve returns best-effort language metadata for Scratch language codes
// such as de, pt_BR or zh-TW. Unknown codes resolve to themselves with no
// flag.
func Resolve(lang string) Meta {
	tag, err := language.Parse(canonicalize(lang))
	if err != nil {
		return Meta{Name: lang}
	}
	name := display.Self.Name(tag)
	if name == "" {
		name = lang
	}
	return Meta{Name: name, Flag: flag(tag)}
}

// flag renders the regional indicator pair of the tag's most likely
// country.
func flag(tag language.Tag) string {
	region, conf := tag.Region()
	if conf == language.No || !region.IsCountry() {
		return ""
	}
	code := region.String()
	if len(code) != 2 {
		return ""
	}
	var b strings.Builder
	for _, c := range code {
		b.WriteRune(0x1F1E6 + (c - 'A'))
	}
	return b.String()
}

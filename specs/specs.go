// Package specs holds the static tables that drive locale generation: the
// supported language codes, the English block specs that must be resolved,
// and the lists of specs that are allowed to stay untranslated.
//
// Tables are built once and never mutated; every component receives the
// *Tables it works with explicitly.
package specs

// AllLanguages lists every language code the translation server serves.
var AllLanguages = []string{
	"ar", "an", "hy", "ast", "eu", "bn_IN", "nb", "bg", "zh_CN",
	"zh_TW", "da", "de", "eo", "et", "fo", "fi", "fr",
	"gl", "ht", "he", "hi", "hch", "id", "ga", "is", "it", "ja",
	"ja_HIRA", "km", "kn", "kk", "ca", "ko", "hr", "ku",
	"cy", "ky", "la", "lv", "lt", "mk", "ms", "ml", "mr", "maz",
	"mn", "my", "nah", "ne", "el", "nl", "no", "nn", "or", "os",
	"oto", "ote", "pap", "fa", "fil", "pl", "pt", "pt_BR", "ro",
	"ru", "rw", "sv", "sr", "sk", "sl", "es", "sw", "tzm", "ta",
	"th", "cs", "tr", "ug", "uk", "hu", "vi",
}

// ForumLanguages are the codes of the languages with their own forum. They
// are built when no language is requested.
var ForumLanguages = []string{
	"de", "es", "fr", "zh_CN", "zh_TW", "pl", "ja", "nl", "pt", "it",
	"he", "ko", "nb", "tr", "el", "ru", "ca", "id",
}

// Palette holds the category labels of the block palette.
var Palette = []string{
	"Motion", "Looks", "Sound", "Pen", "Data", "variable",
	"list", "Events", "Control", "Sensing", "Operators",
	"More Blocks", "Tips",
}

// NeedAlias lists specs whose wording differs between the editor and the
// renderer; every language needs an extra alias for each of them.
var NeedAlias = []string{
	"turn @turnRight %n degrees",
	"turn @turnLeft %n degrees",
	"when @greenFlag clicked",
}

// Untranslated lists specs that are symbols rather than words and have no
// separate translation.
var Untranslated = []string{
	"%n + %n",
	"%n - %n",
	"%n * %n",
	"%n / %n",
	"%s < %s",
	"%s = %s",
	"%s > %s",
	"…",
	"...",
}

// AcceptableMissing lists specs that are fine to lack a translation:
// obsolete blocks and pieces the renderer handles itself.
var AcceptableMissing = []string{
	"turn %m.motor on for %n seconds",
	"set light color to %n",
	"play note %n for %n seconds",
	"when tilted",
	"tilt %m.xxx",
	"else",
	"end",
	". . .",
	"%n @addInput",
	"user id",
	"if %b",
	"forever if %b",
	"stop script",
	"stop all",
	"switch to costume %m.costume",
	"next background",
	"switch to background %m.backdrop",
	"background #",
	"loud?",
}

// MathFuncs are the options of the "%m.mathOp of %n" block.
var MathFuncs = []string{
	"abs", "floor", "ceiling", "sqrt", "sin", "cos", "tan",
	"asin", "acos", "atan", "ln", "log", "e ^", "10 ^",
}

// OSIS are the "other scripts in ..." options of the stop block.
var OSIS = []string{"other scripts in sprite", "other scripts in stage"}

// Dropdowns are the fixed menu options that appear inside blocks.
var Dropdowns = []string{
	"A connected", "all", "all around",
	"B connected", "brightness", "button pressed", "C connected", "color",
	"costume name", "D connected", "date", "day of week", "don't rotate",
	"down arrow", "edge", "fisheye", "ghost", "hour",
	"left arrow", "left-right", "light", "minute", "month",
	"mosaic", "motion", "mouse-pointer",
	"myself", "off", "on", "on-flipped", "other scripts in sprite",
	"pixelate", "previous backdrop", "resistance-A",
	"resistance-B", "resistance-C", "resistance-D", "reverse", "right arrow",
	"second", "slider", "sound", "space", "Stage", "that way", "this script",
	"this sprite", "this way", "up arrow", "video motion", "whirl", "year",
}

// Tables bundles every static list a run needs.
type Tables struct {
	AllLanguages   []string
	ForumLanguages []string

	Commands  []string
	Dropdowns []string
	Palette   []string
	MathFuncs []string
	OSIS      []string
	NeedAlias []string

	excluded map[string]struct{}
}

// Default returns the tables built from the package-level lists.
func Default() *Tables {
	return New(Tables{
		AllLanguages:   AllLanguages,
		ForumLanguages: ForumLanguages,
		Commands:       CommandSpecs(Commands),
		Dropdowns:      Dropdowns,
		Palette:        Palette,
		MathFuncs:      MathFuncs,
		OSIS:           OSIS,
		NeedAlias:      NeedAlias,
	}, Untranslated, AcceptableMissing)
}

// New copies t and attaches the given exclusion lists.
func New(t Tables, exclusions ...[]string) *Tables {
	out := t
	out.excluded = make(map[string]struct{})
	for _, list := range exclusions {
		for _, spec := range list {
			out.excluded[spec] = struct{}{}
		}
	}
	return &out
}

// CommandSpecs returns the distinct specs of cmds in first-seen order.
func CommandSpecs(cmds []Command) []string {
	seen := make(map[string]bool, len(cmds))
	out := make([]string, 0, len(cmds))
	for _, c := range cmds {
		if seen[c.Spec] {
			continue
		}
		seen[c.Spec] = true
		out = append(out, c.Spec)
	}
	return out
}

// Excluded reports whether spec is in one of the exclusion lists.
func (t *Tables) Excluded(spec string) bool {
	_, ok := t.excluded[spec]
	return ok
}

// Required returns the specs that are not excluded.
func (t *Tables) Required(specs []string) []string {
	out := make([]string, 0, len(specs))
	for _, s := range specs {
		if !t.Excluded(s) {
			out = append(out, s)
		}
	}
	return out
}

// Supported reports whether lang is a known language code.
func (t *Tables) Supported(lang string) bool {
	for _, l := range t.AllLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// Select resolves the optional command line argument to the languages to
// build: "" means the forum languages, "all" every language, anything else a
// single supported code. ok is false for an unsupported code.
func (t *Tables) Select(arg string) (langs []string, ok bool) {
	switch {
	case arg == "":
		return t.ForumLanguages, true
	case arg == "all":
		return t.AllLanguages, true
	case t.Supported(arg):
		return []string{arg}, true
	default:
		return nil, false
	}
}

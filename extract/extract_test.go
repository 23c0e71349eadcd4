package extract

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/scratchblocks/sblocales/aliases"
	"github.com/scratchblocks/sblocales/fetch"
	"github.com/scratchblocks/sblocales/orderedmap"
	"github.com/scratchblocks/sblocales/pofile"
	"github.com/scratchblocks/sblocales/specs"
)

func TestTranslateReturnsExactlyResolvedSubset(t *testing.T) {
	tables := specs.New(specs.Tables{})
	src := pofile.Catalog{
		"say %s":    "sage %s",
		"hide":      "verstecke dich",
		"unrelated": "nicht gefragt",
	}

	got, warnings := Translate("de", []string{"hide", "show", "say %s"}, tables, src)

	if !reflect.DeepEqual(got.Keys(), []string{"hide", "say %s"}) {
		t.Fatalf("keys = %v, want [hide say %%s]", got.Keys())
	}
	if v, _ := got.Get("say %s"); v != "sage %s" {
		t.Fatalf("say %%s = %q, want sage %%s", v)
	}
	want := []Warning{{Kind: MissingTranslation, Lang: "de", Spec: "show"}}
	if !reflect.DeepEqual(warnings, want) {
		t.Fatalf("warnings = %v, want %v", warnings, want)
	}
}

func TestTranslateSourcePrecedence(t *testing.T) {
	primary := pofile.Catalog{"color": "Farbe"}
	secondary := pofile.Catalog{"color": "Farbton", "ghost": "Durchsichtigkeit"}

	got, warnings := Translate("de", []string{"color", "ghost"}, nil, primary, secondary)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if v, _ := got.Get("color"); v != "Farbe" {
		t.Fatalf("color = %q, want primary value Farbe", v)
	}
	if v, _ := got.Get("ghost"); v != "Durchsichtigkeit" {
		t.Fatalf("ghost = %q, want secondary value", v)
	}
}

func TestTranslateExcludedSpecsAreSilent(t *testing.T) {
	tables := specs.New(specs.Tables{}, []string{"%n + %n"}, []string{"else"})

	got, warnings := Translate("de", []string{"%n + %n", "else", "stamp"}, tables, pofile.Catalog{})
	if got.Len() != 0 {
		t.Fatalf("result should be empty, got %v", got.Keys())
	}
	if len(warnings) != 1 || warnings[0].Spec != "stamp" {
		t.Fatalf("warnings = %v, want only stamp", warnings)
	}
}

func TestWhenDistance(t *testing.T) {
	got := WhenDistance(pofile.Catalog{WhenDistanceSpec: "wenn Entfernung < %n"})
	if got == nil || *got != "wenn Entfernung" {
		t.Fatalf("WhenDistance = %v, want wenn Entfernung", got)
	}
	if got := WhenDistance(pofile.Catalog{}); got != nil {
		t.Fatalf("WhenDistance(missing) = %q, want nil", *got)
	}
	got = WhenDistance(pofile.Catalog{WhenDistanceSpec: "quand distance %n"})
	if got == nil || *got != "quand distance %n" {
		t.Fatalf("WhenDistance without suffix = %v, want unchanged", got)
	}
}

func TestAliasWarnings(t *testing.T) {
	w := AliasWarnings("eo", nil, false, specs.NeedAlias)
	if len(w) != 1 || w[0].Kind != MissingAliasTable {
		t.Fatalf("missing table warnings = %v", w)
	}
	if !strings.Contains(w[0].String(), "eo is missing all aliases") {
		t.Fatalf("unexpected message %q", w[0].String())
	}

	m := orderedmap.FromPairs("drehe dich ↻ um %n Grad", "turn @turnRight %n degrees")
	w = AliasWarnings("de", m, true, specs.NeedAlias)
	if len(w) != 2 {
		t.Fatalf("warnings = %v, want 2", w)
	}
	if w[0].String() != `de is missing "turn @turnLeft %n degrees" translation in extra aliases` {
		t.Fatalf("unexpected message %q", w[0].String())
	}
}

func TestWarningString(t *testing.T) {
	w := Warning{Kind: MissingTranslation, Lang: "fr", Spec: "stamp"}
	if got := w.String(); got != `fr: missing translation for "stamp"` {
		t.Fatalf("String() = %q", got)
	}
}

func TestTransform(t *testing.T) {
	tables := specs.New(specs.Tables{
		Commands:  []string{"move %n steps", "end", "%n + %n"},
		Dropdowns: []string{"all", "edge"},
		Palette:   []string{"Motion", "Pen"},
		MathFuncs: []string{"abs", "sqrt", "floor"},
		OSIS:      []string{"other scripts in sprite", "other scripts in stage"},
		NeedAlias: []string{"when @greenFlag clicked"},
	}, []string{"%n + %n"}, []string{"end"})

	table := aliases.Table{"de": orderedmap.FromPairs("Wenn ⚑ angeklickt", "when @greenFlag clicked", "Ende", "end")}
	b := &fetch.Bundle{
		Lang: "de",
		Blocks: pofile.Catalog{
			"move %n steps":  "gehe %n er Schritt",
			"define":         "Definiere",
			"all":            "alle",
			WhenDistanceSpec: "wenn Entfernung < %n",
		},
		Editor: pofile.Catalog{
			"edge":                    "Rand",
			"Motion":                  "Bewegung",
			"Pen":                     "Malstift",
			"sqrt":                    "Wurzel",
			"abs":                     "Betrag",
			"other scripts in sprite": "andere Skripte der Figur",
			"move %n steps":           "ignored for commands",
		},
	}

	tr, warnings := Transform(b, table, tables)

	if tr.Lang != "de" || tr.Aliases == nil {
		t.Fatalf("Lang/Aliases not set: %+v", tr)
	}
	if !reflect.DeepEqual(tr.Define, []string{"Definiere"}) {
		t.Fatalf("Define = %v", tr.Define)
	}
	if len(tr.IgnoreLT) != 1 || tr.IgnoreLT[0] == nil || *tr.IgnoreLT[0] != "wenn Entfernung" {
		t.Fatalf("IgnoreLT = %v", tr.IgnoreLT)
	}
	if !reflect.DeepEqual(tr.Commands.Keys(), []string{"move %n steps"}) {
		t.Fatalf("Commands = %v", tr.Commands.Keys())
	}
	if !reflect.DeepEqual(tr.Dropdowns.Keys(), []string{"all", "edge"}) {
		t.Fatalf("Dropdowns = %v", tr.Dropdowns.Keys())
	}
	if !reflect.DeepEqual(tr.Palette.Values(), []string{"Bewegung", "Malstift"}) {
		t.Fatalf("Palette = %v", tr.Palette.Values())
	}
	if !reflect.DeepEqual(tr.Math, []string{"Betrag", "Wurzel"}) {
		t.Fatalf("Math = %v, want spec order", tr.Math)
	}
	if !reflect.DeepEqual(tr.OSIS, []string{"andere Skripte der Figur"}) {
		t.Fatalf("OSIS = %v", tr.OSIS)
	}

	var specsWarned []string
	for _, w := range warnings {
		specsWarned = append(specsWarned, w.Spec)
	}
	want := []string{"floor", "other scripts in stage"}
	if !reflect.DeepEqual(specsWarned, want) {
		t.Fatalf("warned specs = %v, want %v", specsWarned, want)
	}
}

func TestTransformWithoutAliasesOrDefine(t *testing.T) {
	tables := specs.New(specs.Tables{NeedAlias: specs.NeedAlias})
	b := &fetch.Bundle{Lang: "eo", Blocks: pofile.Catalog{}, Editor: pofile.Catalog{}}

	tr, warnings := Transform(b, aliases.Table{}, tables)
	if len(warnings) != 1 || warnings[0].Kind != MissingAliasTable {
		t.Fatalf("warnings = %v", warnings)
	}

	data, err := json.Marshal(tr)
	if err != nil {
		t.Fatalf("json.Marshal error: %v", err)
	}
	want := `{"define":[""],"ignorelt":[null],"commands":{},"dropdowns":{},"palette":{},"math":[],"osis":[]}`
	if string(data) != want {
		t.Fatalf("json = %s, want %s", data, want)
	}
}

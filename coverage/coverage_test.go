package coverage

import (
	"testing"

	"github.com/scratchblocks/sblocales/extract"
	"github.com/scratchblocks/sblocales/orderedmap"
	"github.com/scratchblocks/sblocales/specs"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		translated, required, want int
	}{
		{translated: 5, required: 10, want: 50},
		{translated: 10, required: 10, want: 100},
		{translated: 2, required: 3, want: 67},
		{translated: 1, required: 8, want: 13},
		{translated: 0, required: 0, want: 0},
	}
	for _, tc := range tests {
		r := Report{Translated: tc.translated, Required: tc.required}
		if got := r.Percent(); got != tc.want {
			t.Fatalf("Percent(%d/%d) = %d, want %d", tc.translated, tc.required, got, tc.want)
		}
	}
}

func TestComputeFiltersExclusions(t *testing.T) {
	tables := specs.New(specs.Tables{
		Commands:  []string{"move %n steps", "say %s", "hide", "show", "stamp", "%n + %n", "end"},
		Dropdowns: []string{"all", "edge", "ghost"},
		Palette:   []string{"Motion", "Pen"},
	}, []string{"%n + %n"}, []string{"end"})

	tr := &extract.Translation{
		Lang:      "de",
		Commands:  orderedmap.FromPairs("move %n steps", "gehe", "say %s", "sage", "end", "Ende"),
		Dropdowns: orderedmap.FromPairs("all", "alle", "edge", "Rand"),
		Palette:   orderedmap.FromPairs("Motion", "Bewegung"),
	}

	r := Compute(tr, tables)
	if r.Required != 10 {
		t.Fatalf("Required = %d, want 10", r.Required)
	}
	if r.Translated != 5 {
		t.Fatalf("Translated = %d, want 5 (excluded end not counted)", r.Translated)
	}
	if r.Percent() != 50 {
		t.Fatalf("Percent = %d, want 50", r.Percent())
	}
	if r.Complete() {
		t.Fatal("Complete() = true, want false")
	}
	if got := r.String(); got != "de: translated 5 of 10, 50 %" {
		t.Fatalf("String() = %q", got)
	}
}

package aliases

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/scratchblocks/sblocales/orderedmap"
	"github.com/scratchblocks/sblocales/specs"
)

func TestDefaultCoversForumLanguages(t *testing.T) {
	table, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	for _, lang := range specs.ForumLanguages {
		m, ok := table.For(lang)
		if !ok {
			t.Fatalf("no aliases for forum language %q", lang)
		}
		if missing := Missing(m, specs.NeedAlias); len(missing) != 0 {
			t.Fatalf("%s is missing aliases %v", lang, missing)
		}
		if EndBlock(m) == "" {
			t.Fatalf("%s has no end block alias", lang)
		}
	}
}

func TestEndBlock(t *testing.T) {
	tests := []struct {
		name string
		m    *orderedmap.Map
		want string
	}{
		{name: "single end", m: orderedmap.FromPairs("Ende", "end"), want: "Ende"},
		{name: "first in table order", m: orderedmap.FromPairs("x", "say %s", "fin", "end", "fim", "end"), want: "fin"},
		{name: "none", m: orderedmap.FromPairs("x", "say %s"), want: ""},
		{name: "nil", m: nil, want: ""},
	}
	for _, tc := range tests {
		if got := EndBlock(tc.m); got != tc.want {
			t.Fatalf("%s: EndBlock() = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestMissing(t *testing.T) {
	m := orderedmap.FromPairs("Wenn ⚑ angeklickt", "when @greenFlag clicked")
	got := Missing(m, specs.NeedAlias)
	want := []string{"turn @turnRight %n degrees", "turn @turnLeft %n degrees"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Missing() = %v, want %v", got, want)
	}
}

func TestLoadAndMerge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aliases.yaml")
	if err := os.WriteFile(path, []byte("de:\n  \"Schluss\": end\neo:\n  \"fino\": end\n"), 0644); err != nil {
		t.Fatalf("os.WriteFile() error: %v", err)
	}

	override, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	base, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	merged := base.Merge(override)
	de, _ := merged.For("de")
	if got := EndBlock(de); got != "Schluss" {
		t.Fatalf("merged de end = %q, want Schluss", got)
	}
	if _, ok := merged.For("eo"); !ok {
		t.Fatal("merged table should contain eo")
	}
	if _, ok := merged.For("fr"); !ok {
		t.Fatal("merged table should keep built-in fr")
	}
	if got := EndBlock(base["de"]); got != "Ende" {
		t.Fatalf("Merge mutated base: de end = %q", got)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Load(missing) should fail")
	}
	if _, err := Parse([]byte("de: [not, a, mapping]\n")); err == nil {
		t.Fatal("Parse(sequence) should fail")
	}
}

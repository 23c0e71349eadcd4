// Package coverage measures how much of the required spec lists a
// translation resolves.
package coverage

import (
	"fmt"
	"math"

	"github.com/scratchblocks/sblocales/extract"
	"github.com/scratchblocks/sblocales/specs"
)

// Report is the coverage of one language.
type Report struct {
	Lang       string
	Translated int
	Required   int
}

// Compute counts required and resolved specs. Commands are counted without
// the excluded specs; dropdowns and palette labels are counted in full.
func Compute(tr *extract.Translation, t *specs.Tables) Report {
	required := len(t.Required(t.Commands)) + len(t.Dropdowns) + len(t.Palette)
	translated := len(t.Required(tr.Commands.Keys())) + tr.Dropdowns.Len() + tr.Palette.Len()
	return Report{Lang: tr.Lang, Translated: translated, Required: required}
}

// Complete reports whether every required spec is translated.
func (r Report) Complete() bool {
	return r.Translated >= r.Required
}

// Percent returns the translated share rounded to a whole percent.
func (r Report) Percent() int {
	if r.Required == 0 {
		return 0
	}
	return int(math.Round(float64(r.Translated) / float64(r.Required) * 100))
}

func (r Report) String() string {
	return fmt.Sprintf("%s: translated %d of %d, %d %%", r.Lang, r.Translated, r.Required, r.Percent())
}

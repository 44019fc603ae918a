package cases

import (
	"github.com/careops/dispatch/internal/core/casefile"
)

// caseItem adapts a casefile.Case to the bubbles list item interface.
type caseItem struct {
	c      casefile.Case
	pinned bool
}

// FilterValue feeds the list's fuzzy filter with the fields an operator
// actually searches by.
func (i caseItem) FilterValue() string {
	return i.c.ID + " " + i.c.PatientName + " " + i.c.Hospital
}

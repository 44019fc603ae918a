// Package uimsg holds Bubble Tea messages shared between the root model and
// the tab views. Keeping them in one place avoids import cycles between the
// view packages.
package uimsg

// DeleteRequested asks the root model to run the delete confirmation flow
// for a to-do item. Nothing is removed until the user confirms.
type DeleteRequested struct {
	ItemID  string
	Summary string // short item description shown in the modal
}

// CaseOpenRequested asks the root model to switch to the cases tab and open
// the detail drawer for the given case.
type CaseOpenRequested struct {
	CaseID string
}

// Refresh tells every view to reload its data from the stores. Sent after
// any mutation so both tabs stay consistent.
type Refresh struct{}

// Status carries a one-line notice for the footer status bar.
type Status struct {
	Text  string
	IsErr bool
}

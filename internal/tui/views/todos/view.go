// Package todos implements the global to-do tab: every item across all
// cases triaged into due, daily logs, and backlog, with category, search,
// and log-date filters.
package todos

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/careops/dispatch/internal/core/todo"
	"github.com/careops/dispatch/internal/dispatch"
	"github.com/careops/dispatch/internal/tui/uimsg"
)

// section identifies one of the three triage buckets in display order.
type section int

const (
	sectionDue section = iota
	sectionLogs
	sectionBacklog
)

// row is one selectable line: an item plus the bucket it rendered under.
// The same item can appear in both due and logs; each appearance is its own
// row.
type row struct {
	section section
	item    todo.Item
}

// inputFocus tracks which text input owns the keyboard.
type inputFocus int

const (
	focusNone inputFocus = iota
	focusSearch
	focusDate
)

// View is the Bubble Tea sub-model for the global to-do tab.
type View struct {
	app     *dispatch.App
	filter  todo.Filter
	buckets todo.Buckets
	rows    []row
	cursor  int

	searchInput textinput.Model
	dateInput   textinput.Model
	focus       inputFocus

	editingID string
	editInput textinput.Model

	width  int
	height int

	// now is swappable for tests
	now func() time.Time
}

// New creates the global to-do view with the log date set to today.
func New(app *dispatch.App) (View, error) {
	search := textinput.New()
	search.Placeholder = "search content, case, or patient"
	search.CharLimit = 80

	date := textinput.New()
	date.Placeholder = todo.DateLayout
	date.CharLimit = len(todo.DateLayout)

	v := View{
		app:         app,
		searchInput: search,
		dateInput:   date,
		now:         time.Now,
	}
	v.filter.LogDate = v.now().Format(todo.DateLayout)
	if err := v.reload(); err != nil {
		return View{}, err
	}
	return v, nil
}

func (v *View) reload() error {
	buckets, err := v.app.Todos.Triage(context.Background(), v.filter, v.now())
	if err != nil {
		return fmt.Errorf("triage todos: %w", err)
	}
	v.buckets = buckets

	v.rows = v.rows[:0]
	for _, item := range buckets.Due {
		v.rows = append(v.rows, row{section: sectionDue, item: item})
	}
	for _, item := range buckets.Logs {
		v.rows = append(v.rows, row{section: sectionLogs, item: item})
	}
	for _, item := range buckets.Backlog {
		v.rows = append(v.rows, row{section: sectionBacklog, item: item})
	}
	if v.cursor >= len(v.rows) {
		v.cursor = max(len(v.rows)-1, 0)
	}
	return nil
}

// SetSize updates the view dimensions.
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.editInput.Width = max(width-8, 20)
}

// HasEditorFocus reports whether a text input owns the keyboard.
func (v View) HasEditorFocus() bool {
	return v.focus != focusNone || v.editingID != ""
}

// Update handles messages for the to-do tab.
func (v View) Update(msg tea.Msg) (View, tea.Cmd) {
	if _, ok := msg.(uimsg.Refresh); ok {
		if err := v.reload(); err != nil {
			return v, statusCmd(err.Error(), true)
		}
		return v, nil
	}

	if v.editingID != "" {
		return v.updateEditing(msg)
	}
	if v.focus != focusNone {
		return v.updateInput(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch keyMsg.String() {
	case "down", "j":
		if v.cursor < len(v.rows)-1 {
			v.cursor++
		}
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "/":
		v.focus = focusSearch
		return v, v.searchInput.Focus()
	case "g":
		v.focus = focusDate
		v.dateInput.SetValue(v.filter.LogDate)
		return v, v.dateInput.Focus()
	case "t":
		// back to today
		v.filter.LogDate = v.now().Format(todo.DateLayout)
		return v.applyFilters()
	case "c":
		v.filter.Categories = nil
		v.filter.Search = ""
		v.searchInput.Reset()
		return v.applyFilters()
	case "1", "2", "3", "4", "5":
		idx := int(keyMsg.String()[0] - '1')
		v.toggleCategory(todo.Categories[idx])
		return v.applyFilters()
	case " ":
		return v.toggleSelected()
	case "e":
		return v.startEditing()
	case "d":
		if r, ok := v.selected(); ok {
			return v, func() tea.Msg {
				return uimsg.DeleteRequested{ItemID: r.item.ID, Summary: r.item.Content}
			}
		}
	case "o":
		if r, ok := v.selected(); ok {
			return v, func() tea.Msg {
				return uimsg.CaseOpenRequested{CaseID: r.item.CaseID}
			}
		}
	}
	return v, nil
}

func (v *View) toggleCategory(c todo.Category) {
	for i, sel := range v.filter.Categories {
		if sel == c {
			v.filter.Categories = append(v.filter.Categories[:i], v.filter.Categories[i+1:]...)
			return
		}
	}
	v.filter.Categories = append(v.filter.Categories, c)
}

func (v View) categorySelected(c todo.Category) bool {
	for _, sel := range v.filter.Categories {
		if sel == c {
			return true
		}
	}
	return false
}

func (v View) applyFilters() (View, tea.Cmd) {
	if err := v.reload(); err != nil {
		return v, statusCmd(err.Error(), true)
	}
	return v, nil
}

func (v View) selected() (row, bool) {
	if v.cursor >= len(v.rows) {
		return row{}, false
	}
	return v.rows[v.cursor], true
}

func (v View) toggleSelected() (View, tea.Cmd) {
	r, ok := v.selected()
	if !ok {
		return v, nil
	}
	if _, err := v.app.Todos.Toggle(context.Background(), r.item.ID); err != nil {
		return v, statusCmd("toggle failed: "+err.Error(), true)
	}
	return v, refreshCmd()
}

func (v View) startEditing() (View, tea.Cmd) {
	r, ok := v.selected()
	if !ok {
		return v, nil
	}

	input := textinput.New()
	input.SetValue(r.item.Content)
	input.CharLimit = 500
	input.Width = max(v.width-8, 20)
	v.editInput = input
	v.editingID = r.item.ID
	return v, v.editInput.Focus()
}

func (v View) updateEditing(msg tea.Msg) (View, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			v.editingID = ""
			return v, nil
		case "enter":
			id := v.editingID
			v.editingID = ""
			if _, err := v.app.Todos.Edit(context.Background(), id, v.editInput.Value()); err != nil {
				return v, statusCmd("edit failed: "+err.Error(), true)
			}
			return v, refreshCmd()
		}
	}

	var cmd tea.Cmd
	v.editInput, cmd = v.editInput.Update(msg)
	return v, cmd
}

func (v View) updateInput(msg tea.Msg) (View, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch keyMsg.String() {
		case "esc":
			if v.focus == focusSearch {
				v.searchInput.Blur()
			} else {
				v.dateInput.Blur()
			}
			v.focus = focusNone
			return v, nil
		case "enter":
			return v.commitInput()
		}
	}

	var cmd tea.Cmd
	if v.focus == focusSearch {
		v.searchInput, cmd = v.searchInput.Update(msg)
		// Live filtering: the list narrows as the operator types.
		v.filter.Search = v.searchInput.Value()
		updated, applyCmd := v.applyFilters()
		return updated, tea.Batch(cmd, applyCmd)
	}
	v.dateInput, cmd = v.dateInput.Update(msg)
	return v, cmd
}

func (v View) commitInput() (View, tea.Cmd) {
	switch v.focus {
	case focusSearch:
		v.filter.Search = v.searchInput.Value()
		v.searchInput.Blur()
	case focusDate:
		raw := v.dateInput.Value()
		if _, err := time.ParseInLocation(todo.DateLayout, raw, time.Local); err != nil {
			return v, statusCmd("bad date, expected "+todo.DateLayout, true)
		}
		v.filter.LogDate = raw
		v.dateInput.Blur()
	}
	v.focus = focusNone
	return v.applyFilters()
}

func refreshCmd() tea.Cmd {
	return func() tea.Msg { return uimsg.Refresh{} }
}

func statusCmd(text string, isErr bool) tea.Cmd {
	return func() tea.Msg { return uimsg.Status{Text: text, IsErr: isErr} }
}

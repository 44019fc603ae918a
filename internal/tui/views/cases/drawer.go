package cases

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/careops/dispatch/internal/core/casefile"
	"github.com/careops/dispatch/internal/core/styles"
	"github.com/careops/dispatch/internal/core/todo"
	"github.com/careops/dispatch/internal/dispatch"
	"github.com/careops/dispatch/internal/tui/uimsg"
)

// drawerTab selects which panel of the case drawer is shown. Only the
// timeline is live; the remaining tabs are stubs for upstream systems.
type drawerTab int

const (
	tabTimeline drawerTab = iota
	tabRecords
	tabBilling
)

var drawerTabNames = []string{"to-dos", "service records", "billing"}

// Drawer is the case detail panel: a case header, the to-do timeline, and
// the composer. At most one of composer and inline edit is open at a time.
type Drawer struct {
	app      *dispatch.App
	c        casefile.Case
	items    []todo.Item
	cursor   int
	tab      drawerTab
	composer Composer

	editingID string // item being edited inline; empty when not editing
	editInput textinput.Model

	width  int
	height int
}

// NewDrawer opens the drawer for one case and loads its timeline.
func NewDrawer(app *dispatch.App, c casefile.Case) (Drawer, error) {
	d := Drawer{
		app:      app,
		c:        c,
		composer: NewComposer(app, c.ID),
	}
	if err := d.reload(); err != nil {
		return Drawer{}, err
	}
	return d, nil
}

func (d *Drawer) reload() error {
	items, err := d.app.Todos.ForCase(context.Background(), d.c.ID)
	if err != nil {
		return fmt.Errorf("load case timeline: %w", err)
	}
	d.items = items
	if d.cursor >= len(d.items) {
		d.cursor = max(len(d.items)-1, 0)
	}
	return nil
}

// SetSize updates the drawer dimensions.
func (d *Drawer) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// HasEditorFocus reports whether a text input inside the drawer owns the
// keyboard, meaning single-letter shortcuts must not fire.
func (d Drawer) HasEditorFocus() bool {
	return d.composer.Expanded() || d.editingID != ""
}

// Update handles input routed to an open drawer. The second return value is
// false when the drawer wants to close.
func (d Drawer) Update(msg tea.Msg) (Drawer, tea.Cmd, bool) {
	if _, ok := msg.(uimsg.Refresh); ok {
		if err := d.reload(); err != nil {
			return d, status(err.Error(), true), true
		}
		return d, nil, true
	}

	if d.editingID != "" {
		return d.updateEditing(msg)
	}
	if d.composer.Expanded() {
		var cmd tea.Cmd
		d.composer, cmd = d.composer.Update(msg)
		return d, cmd, true
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil, true
	}

	switch keyMsg.String() {
	case "esc", "q":
		return d, nil, false
	case "left", "h":
		if d.tab > tabTimeline {
			d.tab--
		}
	case "right", "l":
		if d.tab < tabBilling {
			d.tab++
		}
	case "down", "j":
		if d.tab == tabTimeline && d.cursor < len(d.items)-1 {
			d.cursor++
		}
	case "up", "k":
		if d.tab == tabTimeline && d.cursor > 0 {
			d.cursor--
		}
	case "a":
		var cmd tea.Cmd
		d.composer, cmd = d.composer.Expand()
		return d, cmd, true
	case " ":
		return d.toggleSelected()
	case "e":
		return d.startEditing()
	case "d":
		if item, ok := d.selected(); ok {
			return d, requestDelete(item), true
		}
	}
	return d, nil, true
}

func (d Drawer) selected() (todo.Item, bool) {
	if d.tab != tabTimeline || d.cursor >= len(d.items) {
		return todo.Item{}, false
	}
	return d.items[d.cursor], true
}

func (d Drawer) toggleSelected() (Drawer, tea.Cmd, bool) {
	item, ok := d.selected()
	if !ok {
		return d, nil, true
	}
	if _, err := d.app.Todos.Toggle(context.Background(), item.ID); err != nil {
		return d, status("toggle failed: "+err.Error(), true), true
	}
	return d, refresh(), true
}

func (d Drawer) startEditing() (Drawer, tea.Cmd, bool) {
	item, ok := d.selected()
	if !ok {
		return d, nil, true
	}

	// Editing and composing are mutually exclusive.
	d.composer = d.composer.Collapse()

	input := textinput.New()
	input.SetValue(item.Content)
	input.CharLimit = 500
	input.Width = max(d.width-8, 20)
	d.editInput = input
	d.editingID = item.ID
	return d, d.editInput.Focus(), true
}

func (d Drawer) updateEditing(msg tea.Msg) (Drawer, tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			d.editingID = ""
			return d, nil, true
		case "enter":
			id := d.editingID
			d.editingID = ""
			if _, err := d.app.Todos.Edit(context.Background(), id, d.editInput.Value()); err != nil {
				return d, status("edit failed: "+err.Error(), true), true
			}
			return d, refresh(), true
		}
	}

	var cmd tea.Cmd
	d.editInput, cmd = d.editInput.Update(msg)
	return d, cmd, true
}

// View renders the drawer.
func (d Drawer) View() string {
	header := lipgloss.JoinVertical(lipgloss.Left,
		styles.TextPrimaryBoldStyle.Render(d.c.ID+"  "+d.c.PatientName),
		styles.TextMutedStyle.Render(d.c.Hospital),
		styles.CaseStatusStyle(d.c.Status).Render(d.c.Status)+
			styles.TextMutedStyle.Render("  "+d.c.CareType+" · "+d.c.Time),
	)

	tabs := make([]string, 0, len(drawerTabNames))
	for i, name := range drawerTabNames {
		if drawerTab(i) == d.tab {
			tabs = append(tabs, styles.NavActiveStyle.Render(name))
		} else {
			tabs = append(tabs, styles.NavInactiveStyle.Render(name))
		}
	}
	tabRow := lipgloss.JoinHorizontal(lipgloss.Center, tabs...)

	var body string
	switch d.tab {
	case tabTimeline:
		body = d.renderTimeline()
	case tabRecords:
		body = styles.TextMutedStyle.Render("Service records live in the scheduling system.")
	case tabBilling:
		body = styles.TextMutedStyle.Render("Billing detail lives in the accounting system.")
	}

	parts := []string{header, "", tabRow, "", body}
	if d.tab == tabTimeline {
		parts = append(parts, "", d.composer.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (d Drawer) renderTimeline() string {
	if len(d.items) == 0 {
		return styles.TextMutedStyle.Render("No to-dos for this case yet.")
	}

	lines := make([]string, 0, len(d.items)*2)
	for i, item := range d.items {
		if d.editingID == item.ID {
			lines = append(lines, "  "+d.editInput.View())
			continue
		}

		cursor := "  "
		if i == d.cursor && !d.composer.Expanded() {
			cursor = styles.TextPrimaryBoldStyle.Render("> ")
		}

		check := styles.IconPending
		contentStyle := styles.TextForegroundStyle
		if item.Completed() {
			check = styles.TextSuccessStyle.Render(styles.IconCompleted)
			contentStyle = styles.TextStrikeStyle
		}

		line := cursor + check + " " + styles.CategoryBadge(item.Category) + " " + contentStyle.Render(item.Content)
		meta := "      " + styles.TextMutedStyle.Render(item.CreatedAt+" · "+item.CreatorName)
		if item.DueDate != "" {
			meta += styles.TextWarningStyle.Render("  "+styles.IconDue+" due "+item.DueDate)
		}
		lines = append(lines, line, meta)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func requestDelete(item todo.Item) tea.Cmd {
	return func() tea.Msg {
		return uimsg.DeleteRequested{ItemID: item.ID, Summary: item.Content}
	}
}

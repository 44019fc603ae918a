// Package cases implements the case roster tab: a filterable case list with
// stat cards, and a per-case drawer holding the to-do timeline.
package cases

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/careops/dispatch/internal/core/styles"
	"github.com/careops/dispatch/internal/dispatch"
	"github.com/careops/dispatch/internal/tui/uimsg"
)

// View is the Bubble Tea sub-model for the cases tab.
type View struct {
	app    *dispatch.App
	list   list.Model
	drawer *Drawer
	width  int
	height int
}

// New creates the cases view.
func New(app *dispatch.App) (View, error) {
	l := list.New(nil, caseDelegate{}, 0, 0)
	l.Title = "Cases"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	v := View{app: app, list: l}
	if err := v.reload(); err != nil {
		return View{}, err
	}
	return v, nil
}

func (v *View) reload() error {
	all, err := v.app.Cases.List(context.Background())
	if err != nil {
		return fmt.Errorf("load cases: %w", err)
	}

	items := make([]list.Item, len(all))
	for i, c := range all {
		items[i] = caseItem{c: c, pinned: v.app.Cases.IsPinned(c.ID)}
	}
	v.list.SetItems(items)
	return nil
}

// SetSize updates the view dimensions.
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.list.SetSize(width, max(height-4, 4)) // leave room for stat cards
	if v.drawer != nil {
		v.drawer.SetSize(width, height)
	}
}

// HasEditorFocus reports whether a text input owns the keyboard.
func (v View) HasEditorFocus() bool {
	if v.drawer != nil {
		return v.drawer.HasEditorFocus()
	}
	return v.list.FilterState() == list.Filtering
}

// DrawerOpen reports whether the case detail drawer is showing.
func (v View) DrawerOpen() bool { return v.drawer != nil }

// OpenCase opens the drawer for the given case ID, used when another tab
// jumps to a case.
func (v View) OpenCase(id string) (View, tea.Cmd) {
	c, err := v.app.Cases.Open(context.Background(), id)
	if err != nil {
		return v, status("open case: "+err.Error(), true)
	}

	d, err := NewDrawer(v.app, c)
	if err != nil {
		return v, status(err.Error(), true)
	}
	d.SetSize(v.width, v.height)
	v.drawer = &d
	return v, nil
}

// Update handles messages for the cases tab.
func (v View) Update(msg tea.Msg) (View, tea.Cmd) {
	if _, ok := msg.(uimsg.Refresh); ok {
		if err := v.reload(); err != nil {
			return v, status(err.Error(), true)
		}
		// fallthrough so an open drawer reloads its timeline too
	}

	if v.drawer != nil {
		d, cmd, keep := v.drawer.Update(msg)
		if !keep {
			v.drawer = nil
			return v, cmd
		}
		v.drawer = &d
		return v, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && v.list.FilterState() != list.Filtering {
		if keyMsg.String() == "enter" {
			if item, ok := v.list.SelectedItem().(caseItem); ok {
				return v.OpenCase(item.c.ID)
			}
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View renders the cases tab.
func (v View) View() string {
	if v.drawer != nil {
		return v.drawer.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, v.renderStats(), v.list.View())
}

func (v View) renderStats() string {
	stats, err := v.app.Todos.Stats(context.Background())
	if err != nil {
		return styles.TextErrorStyle.Render(err.Error())
	}

	card := func(label string, value int, valueStyle lipgloss.Style) string {
		return styles.StatCardStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
			valueStyle.Render(fmt.Sprintf("%d", value)),
			styles.StatLabelStyle.Render(label),
		))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		card("cases", len(v.list.Items()), styles.StatValueStyle),
		card("pending", stats.Pending, styles.StatValueStyle),
		card("urgent", stats.Urgent, styles.TextErrorStyle.Bold(true)),
		card("done", stats.Completed, styles.TextSuccessStyle.Bold(true)),
	)
}

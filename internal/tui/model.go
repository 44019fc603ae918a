// Package tui implements the dispatch dashboard: a tabbed terminal UI over
// the case roster and the global to-do triage view.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/careops/dispatch/internal/core/eventbus"
	"github.com/careops/dispatch/internal/dispatch"
	"github.com/careops/dispatch/internal/tui/uimsg"
	"github.com/careops/dispatch/internal/tui/views/cases"
	"github.com/careops/dispatch/internal/tui/views/todos"
)

// UIState represents the current state of the TUI.
type UIState int

const (
	stateNormal UIState = iota
	stateConfirming
	stateShowingHelp
)

// Model is the main Bubble Tea model for the dashboard.
type Model struct {
	app        *dispatch.App
	state      UIState
	activeView ViewType

	casesView cases.View
	todosView todos.View

	modal         Modal
	pendingDelete string // item ID awaiting confirmation

	statusText  string
	statusIsErr bool

	width    int
	height   int
	quitting bool
}

// NewModel constructs the root model with both live tabs loaded.
func NewModel(app *dispatch.App) (Model, error) {
	casesView, err := cases.New(app)
	if err != nil {
		return Model{}, fmt.Errorf("init cases view: %w", err)
	}
	todosView, err := todos.New(app)
	if err != nil {
		return Model{}, fmt.Errorf("init todos view: %w", err)
	}

	return Model{
		app:        app,
		activeView: ViewCases,
		casesView:  casesView,
		todosView:  todosView,
	}, nil
}

// Init publishes the startup event.
func (m Model) Init() tea.Cmd {
	m.app.Bus.PublishTUIStarted(eventbus.TUIStartedPayload{})
	return nil
}

// Update handles messages for the root model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.casesView.SetSize(msg.Width, m.contentHeight())
		m.todosView.SetSize(msg.Width, m.contentHeight())
		return m, nil

	case uimsg.DeleteRequested:
		m.state = stateConfirming
		m.pendingDelete = msg.ItemID
		m.modal = NewModal("Delete to-do?", truncate(msg.Summary, 60))
		return m, nil

	case uimsg.CaseOpenRequested:
		m.activeView = ViewCases
		var cmd tea.Cmd
		m.casesView, cmd = m.casesView.OpenCase(msg.CaseID)
		return m, cmd

	case uimsg.Status:
		m.statusText = msg.Text
		m.statusIsErr = msg.IsErr
		return m, nil

	case uimsg.Refresh:
		return m.broadcast(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.routeToActive(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateConfirming:
		return m.handleConfirmingKey(msg)
	case stateShowingHelp:
		switch msg.String() {
		case "esc", "?", "q":
			m.state = stateNormal
		}
		return m, nil
	}

	// A focused text input owns every printable key.
	if !m.activeViewHasEditorFocus() {
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			m.app.Bus.PublishTUIStopped(eventbus.TUIStoppedPayload{})
			return m, tea.Quit
		case "?":
			m.state = stateShowingHelp
			return m, nil
		case "tab":
			if !m.drawerOpen() {
				m.activeView = m.nextView(1)
				return m, nil
			}
		case "shift+tab":
			if !m.drawerOpen() {
				m.activeView = m.nextView(-1)
				return m, nil
			}
		}
	} else if msg.String() == "ctrl+c" {
		m.quitting = true
		m.app.Bus.PublishTUIStopped(eventbus.TUIStoppedPayload{})
		return m, tea.Quit
	}

	m.statusText = ""
	return m.routeToActive(msg)
}

func (m Model) handleConfirmingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "right", "h", "l":
		m.modal.ToggleSelection()
		return m, nil
	case "enter", "y":
		confirmed := m.modal.ConfirmSelected() || msg.String() == "y"
		id := m.pendingDelete
		m.state = stateNormal
		m.pendingDelete = ""
		if !confirmed {
			return m, nil
		}
		if err := m.app.Todos.Delete(context.Background(), id); err != nil {
			log.Debug().Err(err).Str("id", id).Msg("delete todo failed")
			m.statusText = "delete failed: " + err.Error()
			m.statusIsErr = true
			return m, nil
		}
		m.statusText = "to-do deleted"
		m.statusIsErr = false
		return m.broadcast(uimsg.Refresh{})
	case "esc", "n":
		// Cancelling leaves the collection untouched.
		m.state = stateNormal
		m.pendingDelete = ""
		return m, nil
	}
	return m, nil
}

// broadcast delivers a message to every live view, not just the active one.
func (m Model) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.casesView, cmd = m.casesView.Update(msg)
	cmds = append(cmds, cmd)
	m.todosView, cmd = m.todosView.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) routeToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.activeView {
	case ViewCases:
		m.casesView, cmd = m.casesView.Update(msg)
	case ViewTodos:
		m.todosView, cmd = m.todosView.Update(msg)
	}
	return m, cmd
}

func (m Model) activeViewHasEditorFocus() bool {
	switch m.activeView {
	case ViewCases:
		return m.casesView.HasEditorFocus()
	case ViewTodos:
		return m.todosView.HasEditorFocus()
	}
	return false
}

func (m Model) drawerOpen() bool {
	return m.activeView == ViewCases && m.casesView.DrawerOpen()
}

// nextView cycles through all nav tabs in the given direction.
// Placeholder tabs are selectable and render a stub panel.
func (m Model) nextView(dir int) ViewType {
	idx := 0
	for i, tab := range navTabs {
		if tab.view == m.activeView {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(navTabs)) % len(navTabs)
	return navTabs[idx].view
}

func (m Model) contentHeight() int {
	return max(m.height-4, 4) // nav bar + status bar
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

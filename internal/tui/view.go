package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/careops/dispatch/internal/core/styles"
)

// View renders the TUI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w, h := m.width, m.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}

	switch m.state {
	case stateConfirming:
		return m.modal.Overlay(w, h)
	case stateShowingHelp:
		return renderHelp(w, h)
	}

	var content string
	switch m.activeView {
	case ViewCases:
		content = m.casesView.View()
	case ViewTodos:
		content = m.todosView.View()
	default:
		content = m.renderPlaceholder(w, m.contentHeight())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderNav(),
		content,
		m.renderStatusBar(w),
	)
}

func (m Model) renderNav() string {
	tabs := make([]string, 0, len(navTabs))
	for _, tab := range navTabs {
		label := tab.icon + " " + tab.label
		switch {
		case tab.view == m.activeView:
			tabs = append(tabs, styles.NavActiveStyle.Render(label))
		case tab.live:
			tabs = append(tabs, styles.NavInactiveStyle.Render(label))
		default:
			// Placeholder tabs are visible but dimmed.
			tabs = append(tabs, styles.TextMutedStyle.Faint(true).Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, tabs...)
}

// renderPlaceholder fills the content area for tabs that have no
// dispatch-facing screen yet.
func (m Model) renderPlaceholder(width, height int) string {
	body := styles.TextMutedStyle.Render(m.activeView.String() + " lives outside the dispatch desk")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) renderStatusBar(width int) string {
	left := styles.TextMutedStyle.Render("tab switch  ? help  q quit")
	if m.statusText != "" {
		if m.statusIsErr {
			left = styles.TextErrorStyle.Render(m.statusText)
		} else {
			left = styles.TextSuccessStyle.Render(m.statusText)
		}
	}
	return lipgloss.NewStyle().Width(width).Render(left)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

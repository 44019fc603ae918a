package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/careops/dispatch/internal/core/styles"
)

// Modal is the delete confirmation dialog.
type Modal struct {
	title           string
	message         string
	visible         bool
	confirmSelected bool
}

// NewModal creates a visible modal with the cancel button pre-selected, so
// a reflexive enter never destroys anything.
func NewModal(title, message string) Modal {
	return Modal{
		title:   title,
		message: message,
		visible: true,
	}
}

// ToggleSelection switches the selected button.
func (m *Modal) ToggleSelection() {
	m.confirmSelected = !m.confirmSelected
}

// ConfirmSelected returns true if the confirm button is selected.
func (m Modal) ConfirmSelected() bool {
	return m.confirmSelected
}

// Visible returns whether the modal should be displayed.
func (m Modal) Visible() bool {
	return m.visible
}

// Overlay renders the modal centered in the given area.
func (m Modal) Overlay(width, height int) string {
	if !m.visible {
		return ""
	}

	var confirmBtn, cancelBtn string
	if m.confirmSelected {
		confirmBtn = styles.ModalButtonSelectedStyle.Render("Delete")
		cancelBtn = styles.ModalButtonStyle.Render("Cancel")
	} else {
		confirmBtn = styles.ModalButtonStyle.Render("Delete")
		cancelBtn = styles.ModalButtonSelectedStyle.Render("Cancel")
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, cancelBtn, "  ", confirmBtn)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(m.title),
		"",
		m.message,
		lipgloss.NewStyle().MarginTop(1).Render(buttons),
		styles.ModalHelpStyle.Render("←/→ select  enter confirm  esc cancel"),
	)

	return lipgloss.Place(
		width, height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(content),
	)
}

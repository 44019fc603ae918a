// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/careops/dispatch/internal/core/todo"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Background: lipgloss.Color("#282828"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    lipgloss.Color
	ColorSecondary  lipgloss.Color
	ColorForeground lipgloss.Color
	ColorMuted      lipgloss.Color
	ColorBackground lipgloss.Color
	ColorSurface    lipgloss.Color
	ColorSuccess    lipgloss.Color
	ColorWarning    lipgloss.Color
	ColorError      lipgloss.Color
)

// Style exports.
var (
	// Text styles.
	TextForegroundStyle  lipgloss.Style
	TextMutedStyle       lipgloss.Style
	TextPrimaryStyle     lipgloss.Style
	TextPrimaryBoldStyle lipgloss.Style
	TextSuccessStyle     lipgloss.Style
	TextWarningStyle     lipgloss.Style
	TextErrorStyle       lipgloss.Style
	TextStrikeStyle      lipgloss.Style

	// Modal styles.
	ModalStyle               lipgloss.Style
	ModalTitleStyle          lipgloss.Style
	ModalHelpStyle           lipgloss.Style
	ModalButtonStyle         lipgloss.Style
	ModalButtonSelectedStyle lipgloss.Style

	// Navigation styles.
	NavActiveStyle   lipgloss.Style
	NavInactiveStyle lipgloss.Style

	// Section header styles for the global to-do view.
	SectionDueStyle     lipgloss.Style
	SectionLogsStyle    lipgloss.Style
	SectionBacklogStyle lipgloss.Style

	// Stat card styles.
	StatCardStyle  lipgloss.Style
	StatLabelStyle lipgloss.Style
	StatValueStyle lipgloss.Style

	// Form styles.
	FormTitleStyle        lipgloss.Style
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style
	FormHelpStyle         lipgloss.Style

	// Badge styles keyed by category color token.
	badgeStyles map[string]lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	TextForegroundStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TextPrimaryStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	TextPrimaryBoldStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	TextWarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	TextErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	TextStrikeStyle = lipgloss.NewStyle().Foreground(ColorMuted).Strikethrough(true)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorForeground)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
	ModalButtonStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorSurface).
		Foreground(ColorMuted)
	ModalButtonSelectedStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)

	NavActiveStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	NavInactiveStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	SectionDueStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	SectionLogsStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	SectionBacklogStyle = lipgloss.NewStyle().Foreground(ColorMuted).Bold(true)

	StatCardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(0, 2)
	StatLabelStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	StatValueStyle = lipgloss.NewStyle().Foreground(ColorForeground).Bold(true)

	FormTitleStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(0, 1)
	FormFieldFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(0, 1)
	FormHelpStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	badgeStyles = map[string]lipgloss.Style{
		todo.ColorTokenPrimary:   lipgloss.NewStyle().Foreground(ColorPrimary),
		todo.ColorTokenSecondary: lipgloss.NewStyle().Foreground(ColorSecondary),
		todo.ColorTokenMuted:     lipgloss.NewStyle().Foreground(ColorMuted),
		todo.ColorTokenSuccess:   lipgloss.NewStyle().Foreground(ColorSuccess),
		todo.ColorTokenError:     lipgloss.NewStyle().Foreground(ColorError),
	}
}

// CategoryBadge renders the icon+label badge for a category in its
// configured color.
func CategoryBadge(c todo.Category) string {
	cfg := c.Config()
	style, ok := badgeStyles[cfg.Color]
	if !ok {
		style = TextMutedStyle
	}
	return style.Render(cfg.Icon + " " + cfg.Label)
}

// CaseStatusStyle maps a case status string to a display style. Unknown
// statuses render muted rather than erroring.
func CaseStatusStyle(status string) lipgloss.Style {
	switch status {
	case "unassigned":
		return TextWarningStyle
	case "no-show":
		return TextErrorStyle
	case "assigned":
		return TextPrimaryStyle
	default:
		return TextMutedStyle
	}
}

func init() {
	// Commands and tests that never call SetTheme still need usable styles.
	SetTheme(themes[DefaultTheme])
}

package styles

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledInput creates a themed text input.
func NewStyledInput(theme *Theme, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.Prompt = "/ "
	return ti
}

// NewSearchInput creates the picker's search input. Width is capped so
// the input scrolls instead of wrapping inside the picker dialog.
func NewSearchInput(theme *Theme) textinput.Model {
	ti := NewStyledInput(theme, "Search icons...")
	ti.Prompt = IconSearch + " "
	ti.CharLimit = 64
	ti.Width = 26
	return ti
}

// NewParamInput creates a short input for a configuration parameter
// (size, color, stroke width).
func NewParamInput(theme *Theme, placeholder string) textinput.Model {
	ti := NewStyledInput(theme, placeholder)
	ti.Prompt = ""
	ti.CharLimit = 24
	ti.Width = 14
	return ti
}

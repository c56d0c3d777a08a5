package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/glyphpick/internal/infrastructure/config"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file header.
func (r *ConfigRenderer) RenderConfigInfo(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	return fmt.Sprintf(
		"\n  %s Config %s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(path),
	)
}

// RenderSettings renders the settings currently in effect.
func (r *ConfigRenderer) RenderSettings(cfg *config.Config) string {
	keyStyle := r.theme.Subtle
	valueStyle := r.theme.Normal

	line := func(key, value string) string {
		return fmt.Sprintf("    %s %s\n",
			keyStyle.Render(fmt.Sprintf("%-11s", key)),
			valueStyle.Render(value),
		)
	}

	var sb strings.Builder
	sb.WriteString(line("database", cfg.Database.Path))
	sb.WriteString(line("log level", cfg.Logging.Level))
	sb.WriteString(line("log format", cfg.Logging.Format))
	sb.WriteString(line("mouse", fmt.Sprintf("%t", cfg.Picker.Mouse)))
	sb.WriteString(line("warm icons", fmt.Sprintf("%d", len(cfg.Picker.WarmIcons))))
	sb.WriteString(line("accent", cfg.Appearance.DarkPalette.Accent))
	return sb.String()
}

// RenderCreated renders the confirmation after the config file (and its
// JSON schema) were written.
func (r *ConfigRenderer) RenderCreated(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	pathStyle := r.theme.Subtle
	hintStyle := r.theme.Subtle

	return fmt.Sprintf(
		"\n  %s Config ready at %s\n  %s\n",
		iconStyle.Render(IconCheck),
		pathStyle.Render(path),
		hintStyle.Render("Palette and warm icons can be edited there; changes reload live."),
	)
}

// RenderAlreadyExists renders the message when init finds an existing file.
func (r *ConfigRenderer) RenderAlreadyExists(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	pathStyle := r.theme.Subtle

	return fmt.Sprintf(
		"\n  %s Config already exists at %s\n",
		iconStyle.Render(IconCheck),
		pathStyle.Render(path),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}

// RenderNoConfigFile renders the message when the config file doesn't exist yet.
func (r *ConfigRenderer) RenderNoConfigFile(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle
	hintStyle := r.theme.Subtle

	return fmt.Sprintf(
		"\n  %s Config %s\n  %s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(path),
		hintStyle.Render("Not created yet. Run 'glyphpick config init' or any picker command."),
	)
}

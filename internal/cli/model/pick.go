package model

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/glyphpick/internal/application/usecase"
	"github.com/bnema/glyphpick/internal/cli/styles"
	"github.com/bnema/glyphpick/internal/domain/entity"
	"github.com/bnema/glyphpick/internal/infrastructure/config"
	"github.com/bnema/glyphpick/internal/logging"
)

// pickHeaderRows is the number of lines above the icon field widget;
// the widget's origin depends on it for mouse mapping.
const pickHeaderRows = 2

// PickModel is the full-screen host around one icon field: a header
// describing the record under edit, the widget itself, and a status
// line reporting saves. Every field change is persisted immediately.
type PickModel struct {
	// UI components
	field IconFieldModel
	keys  pickKeyMap

	// State
	width         int
	height        int
	statusMessage string
	saved         bool
	err           error

	// Dependencies
	ctx     context.Context
	binding *usecase.RecordBinding
	theme   *styles.Theme
}

// pickKeyMap defines the host-level keybindings. Everything else is
// owned by the embedded field.
type pickKeyMap struct {
	Quit key.Binding
}

func defaultPickKeyMap() pickKeyMap {
	return pickKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewPickModel creates the record editor around a bound icon field.
func NewPickModel(ctx context.Context, theme *styles.Theme, binding *usecase.RecordBinding, field IconFieldModel) PickModel {
	return PickModel{
		field:   field.WithOrigin(0, pickHeaderRows),
		keys:    defaultPickKeyMap(),
		width:   80,
		height:  24,
		ctx:     ctx,
		binding: binding,
		theme:   theme,
	}
}

// recordSavedMsg is sent when a record save attempt finished.
type recordSavedMsg struct {
	err error
}

// ConfigReloadedMsg is sent by the host when the config file changed
// on disk while the program is running.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// Init implements tea.Model.
func (m PickModel) Init() tea.Cmd {
	return m.field.Init()
}

// Update implements tea.Model.
func (m PickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		var cmd tea.Cmd
		m.field, cmd = m.field.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// Quit keys belong to the field while any of its surfaces is
		// open; esc then closes a dialog instead of the program.
		if key.Matches(msg, m.keys.Quit) && !m.field.Capturing() {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.field, cmd = m.field.Update(msg)
		return m, cmd

	case FieldChangedMsg:
		log := logging.FromContext(m.ctx)
		log.Debug().
			Str("path", msg.Path).
			Str("icon", msg.Config.Name).
			Msg("field changed")
		return m, m.saveRecord()

	case recordSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.statusMessage = ""
		} else {
			m.err = nil
			m.saved = true
			m.statusMessage = styles.IconCheck + " saved"
		}
		return m, nil

	case ConfigReloadedMsg:
		// Palette edits take effect on the next frame.
		theme := styles.NewTheme(msg.Config)
		m.theme = theme
		m.field.theme = theme
		return m, nil
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

func (m PickModel) saveRecord() tea.Cmd {
	return func() tea.Msg {
		return recordSavedMsg{err: m.binding.Save(m.ctx)}
	}
}

// Value returns the field's effective configuration, for printing once
// the program exits.
func (m PickModel) Value() entity.IconConfiguration {
	return m.field.Value()
}

// Record returns the record under edit.
func (m PickModel) Record() *entity.Record {
	return m.binding.Record()
}

// Saved reports whether at least one save succeeded this session.
func (m PickModel) Saved() bool {
	return m.saved
}

// View implements tea.Model.
func (m PickModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.field.View())
	b.WriteString("\n")

	t := m.theme
	if m.err != nil {
		b.WriteString(t.ErrorStyle.Render(styles.IconX + " " + m.err.Error()))
		b.WriteString("\n")
	} else if m.statusMessage != "" {
		b.WriteString(t.SuccessStyle.Render(m.statusMessage))
		b.WriteString("\n")
	}

	return b.String()
}

func (m PickModel) renderHeader() string {
	t := m.theme
	rec := m.binding.Record()

	iconStyle := lipgloss.NewStyle().Foreground(t.Accent)
	icon := iconStyle.Render(styles.IconDatabase)
	title := t.Title.MarginLeft(1).Render(rec.Collection)

	id := string(rec.ID)
	if len(id) > 8 {
		id = id[:8]
	}
	badge := t.BadgeMuted.Render(id)

	updated := t.Subtle.Render("  " + styles.RelativeTime(rec.UpdatedAt))

	return icon + title + " " + badge + updated
}

// Ensure interface compliance at compile time.
var _ tea.Model = (*PickModel)(nil)

package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/glyphpick/internal/application/usecase"
	"github.com/bnema/glyphpick/internal/cli/styles"
	"github.com/bnema/glyphpick/internal/domain/entity"
	"github.com/bnema/glyphpick/internal/domain/repository"
	"github.com/bnema/glyphpick/internal/logging"
)

// RecordsModel is the Bubble Tea model for the interactive record browser.
// It lists one collection with each record's icon field summarized, and
// remembers the record the user confirmed so the caller can hand its ID
// to the picker.
type RecordsModel struct {
	// UI components
	help  help.Model
	keys  recordsKeyMap
	table table.Model

	// State
	records  []*entity.Record
	selected entity.RecordID
	loading  bool
	err      error
	width    int
	height   int

	// Dependencies
	ctx        context.Context
	repo       repository.RecordRepository
	theme      *styles.Theme
	collection string
	fieldPath  string
}

// recordsKeyMap defines keybindings for the record browser.
type recordsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k recordsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k recordsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Refresh, k.Help, k.Quit},
	}
}

func defaultRecordsKeyMap() recordsKeyMap {
	return recordsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RecordsModelConfig holds configuration for the record browser model.
type RecordsModelConfig struct {
	Repo       repository.RecordRepository
	Collection string
	FieldPath  string
}

// NewRecordsModel creates a new record browser model.
func NewRecordsModel(ctx context.Context, theme *styles.Theme, cfg RecordsModelConfig) RecordsModel {
	return RecordsModel{
		help:       styles.NewStyledHelp(theme),
		keys:       defaultRecordsKeyMap(),
		loading:    true,
		width:      80,
		height:     24,
		ctx:        ctx,
		repo:       cfg.Repo,
		theme:      theme,
		collection: cfg.Collection,
		fieldPath:  cfg.FieldPath,
	}
}

// Selected returns the ID of the record confirmed with enter, or "" when
// the browser was quit without choosing.
func (m RecordsModel) Selected() entity.RecordID {
	return m.selected
}

// Init implements tea.Model.
func (m RecordsModel) Init() tea.Cmd {
	return m.loadRecords
}

// recordsLoadedMsg is sent when the collection has been listed.
type recordsLoadedMsg struct {
	records []*entity.Record
	err     error
}

func (m RecordsModel) loadRecords() tea.Msg {
	log := logging.FromContext(m.ctx)
	log.Debug().Str("collection", m.collection).Msg("loading records")

	if m.repo == nil {
		return recordsLoadedMsg{err: fmt.Errorf("record store not available")}
	}

	records, err := m.repo.ListByCollection(m.ctx, m.collection)
	if err != nil {
		log.Error().Err(err).Msg("failed to load records")
		return recordsLoadedMsg{err: err}
	}

	log.Debug().Int("count", len(records)).Msg("loaded records")
	return recordsLoadedMsg{records: records}
}

// Update implements tea.Model.
func (m RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateTable()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case recordsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.records = msg.records
			m.err = nil
			m.updateTable()
		}
		return m, nil
	}

	return m, nil
}

func (m RecordsModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Select):
		if idx := m.table.Cursor(); idx >= 0 && idx < len(m.records) {
			m.selected = m.records[idx].ID
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, m.loadRecords

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// Cursor movement is the table's business.
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// updateTable rebuilds the table from the loaded records.
func (m *RecordsModel) updateTable() {
	if len(m.records) == 0 {
		return
	}

	columns := styles.RecordTableColumns()

	rows := make([]table.Row, len(m.records))
	for i, rec := range m.records {
		name, size, color := "-", "", ""
		// A nil repo binding decodes without being able to persist,
		// which is all a read-only preview needs.
		if cfg, ok := usecase.NewRecordBinding(rec, nil).Get(m.fieldPath); ok {
			name = cfg.Name
			size = styles.FormatNumber(cfg.Size)
			color = cfg.Color
		}
		rows[i] = table.Row{
			shortRecordID(rec.ID),
			name,
			size,
			color,
			styles.RelativeTime(rec.UpdatedAt),
		}
	}

	// Leave room for the bordered header, spacing, and the help footer.
	tableHeight := len(rows)
	if tableHeight > m.height-10 {
		tableHeight = m.height - 10
	}
	if tableHeight < 3 {
		tableHeight = 3
	}

	m.table = styles.NewStyledTable(m.theme, columns, rows, m.width-4, tableHeight)
}

// View implements tea.Model.
func (m RecordsModel) View() string {
	t := m.theme
	var b strings.Builder

	// The header style carries its own bottom border and margin.
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(t.ErrorStyle.Render(fmt.Sprintf("%s Error: %v", styles.IconX, m.err)))
		b.WriteString("\n\n")
	}

	switch {
	case m.loading:
		b.WriteString("  " + styles.NewLoading(t, "Loading records...").View())
		b.WriteString("\n")
	case len(m.records) == 0:
		b.WriteString(t.Subtle.Render(fmt.Sprintf("  No records in '%s' yet. Run 'glyphpick pick' to create one.", m.collection)))
		b.WriteString("\n")
	default:
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m RecordsModel) renderHeader() string {
	t := m.theme

	iconStyle := lipgloss.NewStyle().Foreground(t.Accent)
	titleStyle := t.Title.MarginLeft(1)

	icon := iconStyle.Render(styles.IconDatabase)
	title := titleStyle.Render("Records")
	collection := t.Subtitle.Render("  " + m.collection)
	stats := t.Subtle.Render(fmt.Sprintf("  %d record(s)", len(m.records)))

	return t.BoxHeader.Render(icon + title + collection + stats)
}

// shortRecordID trims a UUID to its first group, which is enough to
// disambiguate within a list while keeping the column narrow.
func shortRecordID(id entity.RecordID) string {
	s := string(id)
	if i := strings.Index(s, "-"); i > 0 {
		return s[:i]
	}
	const maxLen = 12
	if len(s) > maxLen {
		return s[:maxLen]
	}
	return s
}

// Ensure interface compliance at compile time.
var _ tea.Model = (*RecordsModel)(nil)

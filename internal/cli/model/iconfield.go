// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/glyphpick/internal/application/port"
	"github.com/bnema/glyphpick/internal/application/usecase"
	"github.com/bnema/glyphpick/internal/cli/styles"
	"github.com/bnema/glyphpick/internal/debounce"
	"github.com/bnema/glyphpick/internal/domain/entity"
	"github.com/bnema/glyphpick/internal/domain/icon"
)

// searchDebounceDelay is how long the search input must stay quiet
// before the typed text is applied to the filter.
const searchDebounceDelay = 300 * time.Millisecond

// Grid geometry. PageSize icons per page laid out as cols x rows, each
// cell one glyph wide plus a space of padding on both sides.
const (
	gridCols   = 10
	gridRows   = icon.PageSize / gridCols
	cellWidth  = 3
	cellHeight = 1
)

// Box geometry shared by the picker and the panel. boxEdgeX/Y are the
// offsets from a box corner to its first content cell (border plus
// padding of styles.Theme.Box).
const (
	boxEdgeX = 3
	boxEdgeY = 2

	pickerContentWidth  = gridCols * cellWidth
	pickerContentHeight = gridRows + 4 // search, blank, grid, blank, pager
	pickerBoxWidth      = pickerContentWidth + 2*boxEdgeX
	pickerBoxHeight     = pickerContentHeight + 2*boxEdgeY

	panelContentWidth  = pickerContentWidth
	panelContentHeight = 7
	panelBoxWidth      = panelContentWidth + 2*boxEdgeX
	panelBoxHeight     = panelContentHeight + 2*boxEdgeY
)

// Panel focus order. The first three double as indices into the
// parameter input array.
const (
	focusSize = iota
	focusColor
	focusStroke
	focusAbsolute
	focusReset
)

// Panel content rows (reset sits below a blank spacer row).
const (
	panelRowSize = iota
	panelRowColor
	panelRowStroke
	panelRowAbsolute
	panelRowBlank
	panelRowReset
	panelRowCount
)

// FieldChangedMsg is published after every store write so the host can
// react (persist the record, refresh sibling views).
type FieldChangedMsg struct {
	Path   string
	Config entity.IconConfiguration
}

// searchTickMsg carries the debounce generation armed when the
// keystroke that scheduled it was typed.
type searchTickMsg struct {
	gen uint64
}

// iconsResolvedMsg is sent when a batch of glyph resolutions finished.
type iconsResolvedMsg struct{}

// IconFieldModel is the icon form field widget: a one-line control that
// expands into a searchable glyph grid and a configuration panel. It is
// a composable component, not a top-level program; hosts embed it and
// route messages through Update.
type IconFieldModel struct {
	// UI components
	search  textinput.Model
	params  [3]textinput.Model // size, color, stroke width
	help    help.Model
	keys    iconFieldKeyMap
	confirm *styles.ConfirmModel

	// State
	guard        *debounce.Guard
	focused      bool
	panelFocus   int
	panelFocused bool
	inputErr     string
	width        int
	height       int
	originX      int
	originY      int

	// Dependencies
	ctx      context.Context
	machine  *icon.Machine
	editor   *usecase.FieldEditor
	catalog  *icon.Catalog
	resolver port.IconResolver
	theme    *styles.Theme
}

// iconFieldKeyMap defines keybindings for the icon field. Printable
// keys are reserved for the search input while the picker is open, so
// navigation only binds non-printable keys.
type iconFieldKeyMap struct {
	Open     key.Binding
	Select   key.Binding
	Close    key.Binding
	Panel    key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PrevPage key.Binding
	NextPage key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k iconFieldKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Panel, k.PrevPage, k.NextPage, k.Close}
}

// FullHelp returns keybindings for the full help view.
func (k iconFieldKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.Select, k.Close},
		{k.Up, k.Down, k.Left, k.Right},
		{k.PrevPage, k.NextPage, k.Panel},
	}
}

func defaultIconFieldKeyMap() iconFieldKeyMap {
	return iconFieldKeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "pick icon"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Panel: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "settings"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "next page"),
		),
	}
}

// IconFieldConfig holds the wiring for an icon field widget.
type IconFieldConfig struct {
	Editor   *usecase.FieldEditor
	Catalog  *icon.Catalog
	Resolver port.IconResolver
}

// NewIconFieldModel creates an icon field widget in the collapsed state.
func NewIconFieldModel(ctx context.Context, theme *styles.Theme, cfg IconFieldConfig) IconFieldModel {
	params := [3]textinput.Model{
		styles.NewParamInput(theme, styles.FormatNumber(entity.IconDefaultSize)),
		styles.NewParamInput(theme, entity.IconDefaultColor),
		styles.NewParamInput(theme, styles.FormatNumber(entity.IconDefaultStrokeWidth)),
	}

	return IconFieldModel{
		search:   styles.NewSearchInput(theme),
		params:   params,
		help:     styles.NewStyledHelp(theme),
		keys:     defaultIconFieldKeyMap(),
		guard:    &debounce.Guard{},
		focused:  true,
		width:    80,
		height:   24,
		ctx:      ctx,
		machine:  icon.NewMachine(),
		editor:   cfg.Editor,
		catalog:  cfg.Catalog,
		resolver: cfg.Resolver,
		theme:    theme,
	}
}

// WithOrigin records where the widget's first line renders so mouse
// coordinates can be mapped back onto its regions.
func (m IconFieldModel) WithOrigin(x, y int) IconFieldModel {
	m.originX = x
	m.originY = y
	return m
}

// Value returns the effective configuration, stored or default.
func (m IconFieldModel) Value() entity.IconConfiguration {
	return m.editor.Current()
}

// Path returns the field path the widget is bound to.
func (m IconFieldModel) Path() string {
	return m.editor.Path()
}

// Capturing reports whether the widget wants keys to itself. Hosts
// should not treat keys as global shortcuts while this is true.
func (m IconFieldModel) Capturing() bool {
	return m.confirm != nil || m.machine.PickerOpen() || m.machine.PanelOpen()
}

// Focused reports whether the field reacts to input. Fields start
// focused; hosts with several fields blur all but one.
func (m IconFieldModel) Focused() bool {
	return m.focused
}

// Focus makes the field react to input again.
func (m IconFieldModel) Focus() IconFieldModel {
	m.focused = true
	return m
}

// Blur stops input handling and closes any open surface; transient
// picker state never survives losing focus.
func (m IconFieldModel) Blur() IconFieldModel {
	m.focused = false
	if m.confirm != nil {
		m.machine.CancelReset()
		m.confirm = nil
	}
	if m.machine.PickerOpen() {
		m.machine.ClosePicker()
		m = m.afterPickerClosed()
	}
	if m.machine.PanelOpen() {
		m.machine.TogglePanel()
	}
	m.panelFocused = false
	m = m.focusParam(-1)
	return m
}

// Init implements the component init; hosts batch it into their own.
func (m IconFieldModel) Init() tea.Cmd {
	if cur := m.editor.Current(); cur.Selected() {
		return m.resolveNames([]string{cur.Name})
	}
	return nil
}

// Update routes a message through the widget and returns the updated
// copy. The confirm modal, while present, swallows everything.
func (m IconFieldModel) Update(msg tea.Msg) (IconFieldModel, tea.Cmd) {
	if m.confirm != nil {
		return m.handleConfirmModal(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		if !m.focused {
			return m, nil
		}
		return m.handleMouseMsg(msg)

	case searchTickMsg:
		// Drop ticks from superseded keystrokes; only the latest
		// generation applies its text.
		if !m.guard.Accept(msg.gen) {
			return m, nil
		}
		if m.machine.ApplySearch(m.machine.SearchInput()) {
			m.machine.ClearHover()
			return m, m.resolveVisible()
		}
		return m, nil

	case iconsResolvedMsg:
		// Glyphs are picked up from the resolver cache on next render.
		return m, nil
	}

	return m, nil
}

func (m IconFieldModel) handleConfirmModal(msg tea.Msg) (IconFieldModel, tea.Cmd) {
	confirm, cmd := m.confirm.Update(msg)
	m.confirm = &confirm
	if m.confirm.Done() {
		if m.confirm.Result() {
			m.machine.ConfirmReset()
			next := m.editor.ResetToDefaults(m.ctx)
			m = m.syncPanelInputs(next)
			m.inputErr = ""
			cmd = tea.Batch(cmd, m.announce(next))
		} else {
			m.machine.CancelReset()
		}
		m.confirm = nil
		return m, cmd
	}
	return m, cmd
}

func (m IconFieldModel) handleKeyMsg(msg tea.KeyMsg) (IconFieldModel, tea.Cmd) {
	switch {
	case m.panelFocused && m.machine.PanelOpen():
		return m.handlePanelKey(msg)
	case m.machine.PickerOpen():
		return m.handlePickerKey(msg)
	default:
		return m.handleControlKey(msg)
	}
}

func (m IconFieldModel) handleControlKey(msg tea.KeyMsg) (IconFieldModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Open):
		return m.openPicker()
	case key.Matches(msg, m.keys.Panel):
		return m.togglePanel()
	}
	return m, nil
}

func (m IconFieldModel) handlePickerKey(msg tea.KeyMsg) (IconFieldModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.machine.ClosePicker()
		return m.afterPickerClosed(), nil

	case key.Matches(msg, m.keys.Select):
		name := m.machine.Hovered()
		if name == "" {
			if visible := m.visibleNames(); len(visible) > 0 {
				name = visible[0]
			}
		}
		if name == "" {
			return m, nil
		}
		return m.selectIcon(name)

	case key.Matches(msg, m.keys.Panel):
		return m.togglePanel()

	case key.Matches(msg, m.keys.PrevPage):
		m.machine.PrevPage(m.pageCount())
		m.machine.ClearHover()
		return m, m.resolveVisible()

	case key.Matches(msg, m.keys.NextPage):
		m.machine.NextPage(m.pageCount())
		m.machine.ClearHover()
		return m, m.resolveVisible()

	case key.Matches(msg, m.keys.Up):
		return m.moveHover(0, -1), nil
	case key.Matches(msg, m.keys.Down):
		return m.moveHover(0, 1), nil
	case key.Matches(msg, m.keys.Left):
		return m.moveHover(-1, 0), nil
	case key.Matches(msg, m.keys.Right):
		return m.moveHover(1, 0), nil
	}

	// Everything else belongs to the search input. A changed value arms
	// a new debounce generation and schedules its tick.
	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != before {
		m.machine.SetSearchInput(v)
		gen := m.guard.Arm()
		tick := tea.Tick(searchDebounceDelay, func(time.Time) tea.Msg {
			return searchTickMsg{gen: gen}
		})
		return m, tea.Batch(cmd, tick)
	}
	return m, cmd
}

func (m IconFieldModel) handlePanelKey(msg tea.KeyMsg) (IconFieldModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Panel), key.Matches(msg, m.keys.Close):
		return m.togglePanel()

	case key.Matches(msg, m.keys.Up):
		return m.cyclePanelFocus(-1), nil
	case key.Matches(msg, m.keys.Down):
		return m.cyclePanelFocus(1), nil

	case key.Matches(msg, m.keys.Select):
		switch m.panelFocus {
		case focusAbsolute:
			return m.toggleAbsolute()
		case focusReset:
			return m.requestReset()
		default:
			return m.cyclePanelFocus(1), nil
		}
	}

	if m.panelFocus == focusAbsolute && msg.String() == " " {
		return m.toggleAbsolute()
	}

	// Feed the focused parameter input and commit every edit.
	if m.panelFocus >= 0 && m.panelFocus < len(m.params) {
		before := m.params[m.panelFocus].Value()
		var cmd tea.Cmd
		m.params[m.panelFocus], cmd = m.params[m.panelFocus].Update(msg)
		if v := m.params[m.panelFocus].Value(); v != before {
			var commit tea.Cmd
			m, commit = m.commitParam(m.panelFocus, v)
			return m, tea.Batch(cmd, commit)
		}
		return m, cmd
	}
	return m, nil
}

func (m IconFieldModel) handleMouseMsg(msg tea.MouseMsg) (IconFieldModel, tea.Cmd) {
	lay := m.layout()

	switch msg.Action {
	case tea.MouseActionMotion:
		if m.machine.PickerOpen() {
			if name, ok := m.iconAt(lay, msg.X, msg.Y); ok {
				m.machine.Hover(name)
			} else {
				m.machine.ClearHover()
			}
		}
		return m, nil

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m.handlePress(lay, msg.X, msg.Y)
	}
	return m, nil
}

func (m IconFieldModel) handlePress(lay fieldLayout, x, y int) (IconFieldModel, tea.Cmd) {
	// Panel rows are checked first so presses inside an open panel are
	// never mistaken for outside presses.
	if m.machine.PanelOpen() {
		if row, ok := m.panelRowAt(lay, x, y); ok {
			return m.pressPanelRow(row)
		}
	}

	if m.machine.PickerOpen() {
		if name, ok := m.iconAt(lay, x, y); ok {
			return m.selectIcon(name)
		}
		if lay.prev.Contains(x, y) {
			m.machine.PrevPage(m.pageCount())
			m.machine.ClearHover()
			return m, m.resolveVisible()
		}
		if lay.next.Contains(x, y) {
			m.machine.NextPage(m.pageCount())
			m.machine.ClearHover()
			return m, m.resolveVisible()
		}
		if lay.control.Contains(x, y) {
			// The control toggles, so pressing it again closes.
			m.machine.ClosePicker()
			return m.afterPickerClosed(), nil
		}
		inside := []icon.Region{lay.picker, lay.control}
		if m.machine.PanelOpen() {
			inside = append(inside, lay.panel)
		}
		if m.machine.PressOutside(x, y, inside...) {
			return m.afterPickerClosed(), nil
		}
		return m, nil
	}

	if lay.control.Contains(x, y) {
		return m.openPicker()
	}
	return m, nil
}

func (m IconFieldModel) openPicker() (IconFieldModel, tea.Cmd) {
	m.machine.OpenPicker()
	m.search.Focus()
	return m, tea.Batch(textinput.Blink, m.resolveVisible())
}

// afterPickerClosed clears the widget-side leftovers the machine cannot
// see: the text input buffer and any in-flight debounce tick.
func (m IconFieldModel) afterPickerClosed() IconFieldModel {
	m.guard.Reset()
	m.search.SetValue("")
	m.search.Blur()
	return m
}

func (m IconFieldModel) selectIcon(name string) (IconFieldModel, tea.Cmd) {
	next := m.editor.SelectIcon(m.ctx, name)
	m.machine.ClosePicker()
	m = m.afterPickerClosed()
	return m, m.announce(next)
}

func (m IconFieldModel) togglePanel() (IconFieldModel, tea.Cmd) {
	m.machine.TogglePanel()
	if m.machine.PanelOpen() {
		m.panelFocused = true
		m.inputErr = ""
		m = m.syncPanelInputs(m.editor.Current())
		m = m.focusParam(focusSize)
		return m, textinput.Blink
	}
	m.panelFocused = false
	m = m.focusParam(-1)
	return m, nil
}

func (m IconFieldModel) cyclePanelFocus(delta int) IconFieldModel {
	const count = focusReset + 1
	next := (m.panelFocus + delta + count) % count
	return m.focusParam(next)
}

// focusParam moves panel focus. Only the three parameter rows carry a
// text input; any other focus (or -1) blurs them all.
func (m IconFieldModel) focusParam(focus int) IconFieldModel {
	m.panelFocus = focus
	for i := range m.params {
		m.params[i].Blur()
	}
	if focus >= 0 && focus < len(m.params) {
		m.params[focus].Focus()
	}
	return m
}

// syncPanelInputs refreshes the parameter inputs from a configuration.
// Called when the panel opens and after a reset, never per keystroke.
func (m IconFieldModel) syncPanelInputs(cfg entity.IconConfiguration) IconFieldModel {
	m.params[focusSize].SetValue(styles.FormatNumber(cfg.Size))
	m.params[focusColor].SetValue(cfg.Color)
	m.params[focusStroke].SetValue(styles.FormatNumber(cfg.StrokeWidth))
	return m
}

// commitParam validates one edited parameter and writes it through the
// editor. Invalid numbers set an inline error and write nothing; the
// stored value keeps its last good state.
func (m IconFieldModel) commitParam(focus int, raw string) (IconFieldModel, tea.Cmd) {
	val := strings.TrimSpace(raw)

	switch focus {
	case focusSize, focusStroke:
		if val == "" {
			m.inputErr = ""
			return m, nil
		}
		n, err := strconv.ParseFloat(val, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
			m.inputErr = "enter a positive number"
			return m, nil
		}
		m.inputErr = ""
		fieldKey := icon.FieldSize
		if focus == focusStroke {
			fieldKey = icon.FieldStrokeWidth
		}
		next := m.editor.SetConfigField(m.ctx, fieldKey, n)
		return m, m.announce(next)

	case focusColor:
		m.inputErr = ""
		if val == "" {
			return m, nil
		}
		next := m.editor.SetConfigField(m.ctx, icon.FieldColor, val)
		return m, m.announce(next)
	}
	return m, nil
}

func (m IconFieldModel) toggleAbsolute() (IconFieldModel, tea.Cmd) {
	cur := m.editor.Current()
	next := m.editor.SetConfigField(m.ctx, icon.FieldAbsoluteStroke, !cur.AbsoluteStrokeWidth)
	return m, m.announce(next)
}

func (m IconFieldModel) requestReset() (IconFieldModel, tea.Cmd) {
	m.machine.RequestReset()
	confirm := styles.NewConfirm(m.theme, "Reset icon settings?").
		WithDetail("Size, color and stroke return to their defaults. The selected icon is kept.")
	m.confirm = &confirm
	return m, nil
}

func (m IconFieldModel) pressPanelRow(row int) (IconFieldModel, tea.Cmd) {
	m.panelFocused = true
	switch row {
	case panelRowSize, panelRowColor, panelRowStroke:
		m = m.focusParam(row)
		return m, textinput.Blink
	case panelRowAbsolute:
		m = m.focusParam(focusAbsolute)
		return m.toggleAbsolute()
	case panelRowReset:
		m = m.focusParam(focusReset)
		return m.requestReset()
	}
	return m, nil
}

func (m IconFieldModel) moveHover(dx, dy int) IconFieldModel {
	visible := m.visibleNames()
	if len(visible) == 0 {
		return m
	}
	idx := slices.Index(visible, m.machine.Hovered())
	if idx < 0 {
		m.machine.Hover(visible[0])
		return m
	}
	next := idx + dx + dy*gridCols
	if next < 0 || next >= len(visible) {
		return m
	}
	m.machine.Hover(visible[next])
	return m
}

// announce publishes the field change so the host can persist it.
func (m IconFieldModel) announce(cfg entity.IconConfiguration) tea.Cmd {
	path := m.editor.Path()
	return func() tea.Msg {
		return FieldChangedMsg{Path: path, Config: cfg}
	}
}

func (m IconFieldModel) visibleNames() []string {
	matches := m.catalog.Filter(m.machine.Search())
	return icon.Paginate(matches, m.machine.Page())
}

func (m IconFieldModel) pageCount() int {
	return icon.PageCount(len(m.catalog.Filter(m.machine.Search())))
}

// resolveVisible loads every glyph on the current page in one command.
func (m IconFieldModel) resolveVisible() tea.Cmd {
	return m.resolveNames(m.visibleNames())
}

func (m IconFieldModel) resolveNames(names []string) tea.Cmd {
	if len(names) == 0 || m.resolver == nil {
		return nil
	}
	return func() tea.Msg {
		for _, name := range names {
			m.resolver.Resolve(m.ctx, name)
		}
		return iconsResolvedMsg{}
	}
}

// glyphFor peeks at the resolver cache without blocking the render.
// Names still resolving (or unknown to a nil resolver) draw the
// placeholder.
func (m IconFieldModel) glyphFor(name string) string {
	if m.resolver != nil {
		if ic, ok := m.resolver.Resolved(name); ok {
			return ic.Glyph
		}
	}
	return entity.PlaceholderGlyph
}

// fieldLayout holds the regions of everything currently on screen, in
// absolute cell coordinates. View and the mouse handler both derive
// from it so hits always match what was drawn.
type fieldLayout struct {
	control icon.Region
	picker  icon.Region
	grid    icon.Region
	prev    icon.Region
	next    icon.Region
	panel   icon.Region
	rows    [panelRowCount]icon.Region
}

func (m IconFieldModel) layout() fieldLayout {
	var lay fieldLayout
	y := m.originY
	if m.editor.Meta().Label != "" {
		y++
	}

	btn := m.controlButton(m.editor.Current())
	lay.control = icon.Region{X: m.originX, Y: y, Width: lipgloss.Width(btn), Height: 1}
	y++

	if m.machine.PickerOpen() || m.machine.PanelOpen() {
		y++ // separator line
	}

	if m.machine.PickerOpen() {
		lay.picker = icon.Region{X: m.originX, Y: y, Width: pickerBoxWidth, Height: pickerBoxHeight}
		inx := m.originX + boxEdgeX
		iny := y + boxEdgeY
		lay.grid = icon.Region{X: inx, Y: iny + 2, Width: gridCols * cellWidth, Height: gridRows * cellHeight}
		pagerY := iny + 2 + gridRows + 1
		lay.prev = icon.Region{X: inx, Y: pagerY, Width: 3, Height: 1}
		lay.next = icon.Region{X: inx + gridCols*cellWidth - 3, Y: pagerY, Width: 3, Height: 1}
		y += pickerBoxHeight
	}

	if m.machine.PanelOpen() {
		lay.panel = icon.Region{X: m.originX, Y: y, Width: panelBoxWidth, Height: panelBoxHeight}
		inx := m.originX + boxEdgeX
		iny := y + boxEdgeY
		for i := 0; i < panelRowCount; i++ {
			lay.rows[i] = icon.Region{X: inx, Y: iny + i, Width: panelContentWidth, Height: 1}
		}
	}

	return lay
}

func (m IconFieldModel) iconAt(lay fieldLayout, x, y int) (string, bool) {
	if !lay.grid.Contains(x, y) {
		return "", false
	}
	col := (x - lay.grid.X) / cellWidth
	row := y - lay.grid.Y
	visible := m.visibleNames()
	idx := row*gridCols + col
	if idx < 0 || idx >= len(visible) {
		return "", false
	}
	return visible[idx], true
}

func (m IconFieldModel) panelRowAt(lay fieldLayout, x, y int) (int, bool) {
	for i, r := range lay.rows {
		if r.Width == 0 || !r.Contains(x, y) {
			continue
		}
		if i == panelRowBlank {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

// View renders the widget. The confirm modal, while present, replaces
// the whole surface.
func (m IconFieldModel) View() string {
	if m.confirm != nil {
		return m.confirm.View()
	}

	t := m.theme
	var b strings.Builder

	if meta := m.editor.Meta(); meta.Label != "" {
		label := t.FieldLabel.Render(meta.Label)
		if meta.Required {
			label += t.RequiredMark.Render(" *")
		}
		b.WriteString(label)
		b.WriteString("\n")
	}

	b.WriteString(m.renderControl())
	b.WriteString("\n")

	if m.machine.PickerOpen() || m.machine.PanelOpen() {
		b.WriteString("\n")
	}
	if m.machine.PickerOpen() {
		b.WriteString(m.renderPicker())
		b.WriteString("\n")
	}
	if m.machine.PanelOpen() {
		b.WriteString(m.renderPanel())
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m IconFieldModel) renderControl() string {
	t := m.theme
	cur := m.editor.Current()

	parts := []string{
		m.controlButton(cur),
		t.SizeBadge(cur.Size),
		t.StrokeBadge(cur.StrokeWidth, cur.AbsoluteStrokeWidth),
		t.ColorBadge(cur.Color),
	}
	return strings.Join(parts, " ")
}

func (m IconFieldModel) controlButton(cur entity.IconConfiguration) string {
	t := m.theme
	if cur.Selected() {
		return t.Badge.Render(fmt.Sprintf("%s %s", m.glyphFor(cur.Name), cur.Name))
	}
	return t.BadgeMuted.Render(entity.PlaceholderGlyph + " choose an icon")
}

func (m IconFieldModel) renderPicker() string {
	t := m.theme
	matches := m.catalog.Filter(m.machine.Search())
	visible := icon.Paginate(matches, m.machine.Page())

	// Hovering over a glyph with an empty query previews its name in
	// the search hint slot.
	if m.search.Value() == "" {
		if hovered := m.machine.Hovered(); hovered != "" {
			m.search.Placeholder = hovered
		}
	}

	var b strings.Builder
	b.WriteString(m.search.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderGrid(visible))
	b.WriteString("\n\n")
	b.WriteString(m.renderPager(len(matches)))

	return t.Box.
		Width(pickerContentWidth + 2*boxEdgeX - 2).
		Height(pickerContentHeight + 2).
		Render(b.String())
}

// renderGrid always emits exactly gridRows lines so the pager below it
// stays where the layout says it is, however full the page is.
func (m IconFieldModel) renderGrid(visible []string) string {
	t := m.theme
	rows := make([]string, gridRows)
	if len(visible) == 0 {
		empty := "no icons match"
		if m.catalog.Len() == 0 {
			empty = "icon catalog is empty"
		}
		rows[0] = t.Placeholder.Render(empty)
		return strings.Join(rows, "\n")
	}

	cur := m.editor.Current()
	for row := 0; row < gridRows; row++ {
		var cells []string
		for col := 0; col < gridCols; col++ {
			idx := row*gridCols + col
			if idx >= len(visible) {
				break
			}
			name := visible[idx]
			style := t.GridCell
			switch {
			case name == m.machine.Hovered():
				style = t.GridCellHovered
			case name == cur.Name:
				style = t.GridCellCurrent
			}
			cells = append(cells, style.Render(m.glyphFor(name)))
		}
		rows[row] = strings.Join(cells, "")
	}
	return strings.Join(rows, "\n")
}

func (m IconFieldModel) renderPager(matchCount int) string {
	t := m.theme
	pages := icon.PageCount(matchCount)
	if pages == 0 {
		return t.Subtle.Render("0 icons")
	}
	page := m.machine.Page()

	prev := t.Subtle.Render(styles.IconChevronLeft)
	if page > 0 {
		prev = t.Highlight.Render(styles.IconChevronLeft)
	}
	next := t.Subtle.Render(styles.IconChevronRight)
	if page < pages-1 {
		next = t.Highlight.Render(styles.IconChevronRight)
	}

	center := fmt.Sprintf("page %d/%d of %d icons", page+1, pages, matchCount)
	gap := pickerContentWidth - 2 - lipgloss.Width(center)
	left := gap / 2
	right := gap - left
	if left < 1 {
		left, right = 1, 1
	}
	return prev + strings.Repeat(" ", left) + t.Subtle.Render(center) + strings.Repeat(" ", right) + next
}

func (m IconFieldModel) renderPanel() string {
	t := m.theme
	cur := m.editor.Current()

	rows := []string{
		m.renderParamRow("Size", focusSize),
		m.renderParamRow("Color", focusColor),
		m.renderParamRow("Stroke", focusStroke),
		m.renderAbsoluteRow(cur),
		"",
		m.renderResetRow(),
	}
	if m.inputErr != "" {
		rows = append(rows, t.WarningStyle.Render(styles.IconWarning+" "+m.inputErr))
	} else {
		rows = append(rows, "")
	}

	return t.Box.
		Width(panelContentWidth + 2*boxEdgeX - 2).
		Height(panelContentHeight + 2).
		Render(strings.Join(rows, "\n"))
}

func (m IconFieldModel) renderParamRow(label string, focus int) string {
	t := m.theme
	style := t.Normal
	if m.panelFocused && m.panelFocus == focus {
		style = t.Highlight
	}
	return style.Render(padLabel(label)) + m.params[focus].View()
}

func (m IconFieldModel) renderAbsoluteRow(cur entity.IconConfiguration) string {
	t := m.theme
	box := styles.IconCheckboxEmpty
	if cur.AbsoluteStrokeWidth {
		box = styles.IconCheckboxChecked
	}
	style := t.Normal
	if m.panelFocused && m.panelFocus == focusAbsolute {
		style = t.Highlight
	}
	return style.Render(padLabel("Absolute")) + t.Normal.Render(box+" fixed stroke width")
}

func (m IconFieldModel) renderResetRow() string {
	t := m.theme
	row := styles.IconReset + " Reset to defaults"
	if m.panelFocused && m.panelFocus == focusReset {
		return t.Highlight.Render(row)
	}
	return t.Subtle.Render(row)
}

func padLabel(s string) string {
	const width = 8
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}

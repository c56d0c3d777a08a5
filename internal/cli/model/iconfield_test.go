package model

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/bnema/glyphpick/internal/application/usecase"
	"github.com/bnema/glyphpick/internal/cli/styles"
	"github.com/bnema/glyphpick/internal/domain/entity"
	"github.com/bnema/glyphpick/internal/domain/icon"
	"github.com/bnema/glyphpick/internal/infrastructure/config"
)

// memStore is an in-memory field store that counts writes so tests can
// assert on write discipline.
type memStore struct {
	values map[string]entity.IconConfiguration
	writes int
}

func newMemStore() *memStore {
	return &memStore{values: make(map[string]entity.IconConfiguration)}
}

func (s *memStore) Get(path string) (entity.IconConfiguration, bool) {
	cfg, ok := s.values[path]
	return cfg, ok
}

func (s *memStore) Set(path string, cfg entity.IconConfiguration) {
	s.values[path] = cfg
	s.writes++
}

// stubResolver resolves every name instantly with a fixed glyph.
type stubResolver struct {
	resolved map[string]entity.Icon
}

func newStubResolver() *stubResolver {
	return &stubResolver{resolved: make(map[string]entity.Icon)}
}

func (r *stubResolver) Resolve(_ context.Context, name string) entity.Icon {
	ic := entity.Icon{Name: name, Glyph: "+"}
	r.resolved[name] = ic
	return ic
}

func (r *stubResolver) Resolved(name string) (entity.Icon, bool) {
	ic, ok := r.resolved[name]
	return ic, ok
}

func (r *stubResolver) Warm(ctx context.Context, names []string) {
	for _, name := range names {
		r.Resolve(ctx, name)
	}
}

func testIconField(t *testing.T, names []string, store *memStore) IconFieldModel {
	t.Helper()
	theme := styles.NewTheme(config.DefaultConfig())
	editor := usecase.NewFieldEditor(store, "icon")
	return NewIconFieldModel(context.Background(), theme, IconFieldConfig{
		Editor:   editor,
		Catalog:  icon.NewCatalog(names),
		Resolver: newStubResolver(),
	})
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestIconField_EnterOpensPickerAndSelectsFirstVisible(t *testing.T) {
	store := newMemStore()
	m := testIconField(t, []string{"bell", "check", "alarm"}, store)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.machine.PickerOpen())
	require.True(t, m.Capturing())

	// No hover yet, so enter selects the first visible icon in catalog
	// order.
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, m.machine.PickerOpen(), "selection should close the picker")
	require.Equal(t, 1, store.writes)

	cfg, ok := store.Get("icon")
	require.True(t, ok)
	require.Equal(t, "alarm", cfg.Name)
	require.Equal(t, entity.IconDefaultSize, cfg.Size, "appearance fields keep their defaults")

	require.NotNil(t, cmd)
	msg, ok := cmd().(FieldChangedMsg)
	require.True(t, ok)
	require.Equal(t, "icon", msg.Path)
	require.Equal(t, "alarm", msg.Config.Name)
}

func TestIconField_SearchAppliesOnlyLatestGeneration(t *testing.T) {
	store := newMemStore()
	m := testIconField(t, []string{"bell", "bell-off", "check"}, store)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(keyRunes("b"))
	m, _ = m.Update(keyRunes("e"))

	require.Equal(t, "be", m.machine.SearchInput())
	require.Equal(t, "", m.machine.Search(), "filter must wait for the quiet period")

	// The tick armed by the first keystroke comes back stale.
	m, _ = m.Update(searchTickMsg{gen: 1})
	require.Equal(t, "", m.machine.Search())

	// The second keystroke's tick is current and applies the text.
	m, _ = m.Update(searchTickMsg{gen: 2})
	require.Equal(t, "be", m.machine.Search())
	require.Equal(t, []string{"bell", "bell-off"}, m.visibleNames())
}

func TestIconField_CloseClearsSearchAndPage(t *testing.T) {
	store := newMemStore()
	m := testIconField(t, manyNames(130), store)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(keyRunes("i"))
	m, _ = m.Update(searchTickMsg{gen: 1})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	require.Equal(t, 1, m.machine.Page())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	require.False(t, m.machine.PickerOpen())
	require.Equal(t, "", m.machine.Search())
	require.Equal(t, "", m.search.Value())
	require.Equal(t, 0, m.machine.Page())
	require.Equal(t, 0, store.writes, "browsing must never write")

	// Reopening starts from a clean page, and a tick from before the
	// close is ignored.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(searchTickMsg{gen: 1})
	require.Equal(t, "", m.machine.Search())
}

func TestIconField_PageNavigationClampsAtBounds(t *testing.T) {
	store := newMemStore()
	m := testIconField(t, manyNames(130), store)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 3, m.pageCount())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	require.Equal(t, 0, m.machine.Page(), "prev on first page is a no-op")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	require.Equal(t, 2, m.machine.Page(), "next on last page is a no-op")

	require.Len(t, m.visibleNames(), 10, "last page holds the remainder")
}

func TestIconField_ArrowKeysMoveHover(t *testing.T) {
	store := newMemStore()
	m := testIconField(t, manyNames(25), store)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, "icon-000", m.machine.Hovered(), "first move lands on the first cell")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, "icon-001", m.machine.Hovered())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, "icon-011", m.machine.Hovered(), "down moves one grid row")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, "icon-021", m.machine.Hovered())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, "icon-021", m.machine.Hovered(), "moves past the last cell are ignored")
}

func TestIconField_MousePressSelectsGridCell(t *testing.T) {
	store := newMemStore()
	m := testIconField(t, []string{"alarm", "bell", "check"}, store)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// Without a label row the picker box starts two rows below the
	// origin; the grid sits at the box content origin plus the search
	// row and its spacer.
	lay := m.layout()
	m, _ = m.Update(tea.MouseMsg{
		X:      lay.grid.X + cellWidth,
		Y:      lay.grid.Y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})

	require.False(t, m.machine.PickerOpen())
	cfg, ok := store.Get("icon")
	require.True(t, ok)
	require.Equal(t, "bell", cfg.Name, "second cell of the first row")
}

func TestIconField_MouseMotionHoversAndPressOutsideDismisses(t *testing.T) {
	store := newMemStore()
	m := testIconField(t, []string{"alarm", "bell"}, store)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	lay := m.layout()

	m, _ = m.Update(tea.MouseMsg{X: lay.grid.X, Y: lay.grid.Y, Action: tea.MouseActionMotion})
	require.Equal(t, "alarm", m.machine.Hovered())

	// Moving over an empty cell drops the hover.
	m, _ = m.Update(tea.MouseMsg{X: lay.grid.X + 5*cellWidth, Y: lay.grid.Y, Action: tea.MouseActionMotion})
	require.Equal(t, "", m.machine.Hovered())

	// A press outside every rendered region dismisses without a write.
	m, _ = m.Update(tea.MouseMsg{
		X:      lay.picker.X + lay.picker.Width + 10,
		Y:      lay.picker.Y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	require.False(t, m.machine.PickerOpen())
	require.Equal(t, 0, store.writes)
}

func TestIconField_InvalidSizeIsRejectedWithoutWrite(t *testing.T) {
	store := newMemStore()
	m := testIconField(t, []string{"bell"}, store)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, m.machine.PanelOpen())
	require.Equal(t, focusSize, m.panelFocus)
	require.Equal(t, "24", m.params[focusSize].Value())

	m, _ = m.Update(keyRunes("x"))
	require.NotEmpty(t, m.inputErr)
	require.Equal(t, 0, store.writes, "invalid input must not reach the store")

	// Deleting the bad character commits the valid value again.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	require.Empty(t, m.inputErr)
	require.Equal(t, 1, store.writes)

	cfg, ok := store.Get("icon")
	require.True(t, ok)
	require.Equal(t, 24.0, cfg.Size)
}

func TestIconField_SizeEditWritesMergedValue(t *testing.T) {
	store := newMemStore()
	store.Set("icon", entity.IconConfiguration{
		Name:        "bell",
		Size:        24,
		Color:       "#ff0000",
		StrokeWidth: 2,
	})
	store.writes = 0

	m := testIconField(t, []string{"bell"}, store)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})

	m, _ = m.Update(keyRunes("0"))
	require.Equal(t, "240", m.params[focusSize].Value())
	require.Equal(t, 1, store.writes)

	cfg, _ := store.Get("icon")
	require.Equal(t, 240.0, cfg.Size)
	require.Equal(t, "bell", cfg.Name, "other fields ride along unchanged")
	require.Equal(t, "#ff0000", cfg.Color)
}

func TestIconField_AbsoluteToggleAndResetConfirm(t *testing.T) {
	store := newMemStore()
	m := testIconField(t, []string{"bell"}, store)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown}) // color
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown}) // stroke
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown}) // absolute
	require.Equal(t, focusAbsolute, m.panelFocus)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	cfg, _ := store.Get("icon")
	require.True(t, cfg.AbsoluteStrokeWidth)

	// Request the reset and walk the confirm dialog to yes.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown}) // reset row
	require.Equal(t, focusReset, m.panelFocus)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.confirm)
	require.True(t, m.machine.ResetPending())

	m, _ = m.Update(keyRunes("y"))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, m.confirm)
	require.False(t, m.machine.ResetPending())
	require.NotNil(t, cmd)

	cfg, _ = store.Get("icon")
	require.False(t, cfg.AbsoluteStrokeWidth)
	require.Equal(t, entity.IconDefaultSize, cfg.Size)
	require.Equal(t, "24", m.params[focusSize].Value(), "panel inputs refresh after a reset")
}

func TestIconField_ResetConfirmDeclinedChangesNothing(t *testing.T) {
	store := newMemStore()
	store.Set("icon", entity.IconConfiguration{Name: "bell", Size: 48, Color: "red", StrokeWidth: 3})
	store.writes = 0

	m := testIconField(t, []string{"bell"}, store)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp}) // wraps to reset row
	require.Equal(t, focusReset, m.panelFocus)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.confirm)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	require.Nil(t, m.confirm)
	require.False(t, m.machine.ResetPending())
	require.Equal(t, 0, store.writes)

	cfg, _ := store.Get("icon")
	require.Equal(t, 48.0, cfg.Size)
}

func TestIconField_PanelTogglesIndependentlyOfPicker(t *testing.T) {
	store := newMemStore()
	m := testIconField(t, []string{"bell"}, store)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, m.machine.PickerOpen())
	require.True(t, m.machine.PanelOpen())

	// Escape closes the panel first, then the picker.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	require.True(t, m.machine.PickerOpen())
	require.False(t, m.machine.PanelOpen())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	require.False(t, m.machine.PickerOpen())
	require.False(t, m.Capturing())
}

func TestIconField_ViewShowsPlaceholderForUnknownStoredName(t *testing.T) {
	store := newMemStore()
	store.Set("icon", entity.DefaultIconConfiguration().WithName("no-such-icon"))

	m := testIconField(t, []string{"bell"}, store)
	view := m.View()
	require.Contains(t, view, "no-such-icon")
	require.Contains(t, view, entity.PlaceholderGlyph)
}

func TestIconField_HoverPreviewsNameInSearchPlaceholder(t *testing.T) {
	store := newMemStore()
	m := testIconField(t, []string{"alarm", "bell"}, store)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, "alarm", m.machine.Hovered())

	// The grid draws glyphs only, so the name can only come from the
	// search hint slot.
	view := m.View()
	require.Contains(t, view, "alarm")
}

func TestIconField_ViewShowsLabelAndRequiredMark(t *testing.T) {
	store := newMemStore()
	theme := styles.NewTheme(config.DefaultConfig())
	editor := usecase.NewFieldEditor(store, "profile.icon").
		WithMeta(usecase.FieldMeta{Label: "Avatar icon", Required: true})
	m := NewIconFieldModel(context.Background(), theme, IconFieldConfig{
		Editor:  editor,
		Catalog: icon.NewCatalog([]string{"bell"}),
	})

	view := m.View()
	require.Contains(t, view, "Avatar icon")
	require.Contains(t, view, "*")
	require.Contains(t, view, "choose an icon")
}

func TestIconField_BlurClosesSurfacesAndIgnoresInput(t *testing.T) {
	store := newMemStore()
	m := testIconField(t, []string{"alarm", "bell"}, store)
	require.True(t, m.Focused())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, m.Capturing())

	m = m.Blur()
	require.False(t, m.Focused())
	require.False(t, m.Capturing(), "blur closes every open surface")
	require.Equal(t, "", m.search.Value())

	// A blurred field swallows nothing and changes nothing.
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd)
	require.False(t, m.machine.PickerOpen())
	require.Equal(t, 0, store.writes)

	m = m.Focus()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.machine.PickerOpen())
}

func TestIconField_EmptyCatalogRendersExplicitState(t *testing.T) {
	store := newMemStore()
	m := testIconField(t, nil, store)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	view := m.View()
	require.Contains(t, view, "icon catalog is empty")
	require.Contains(t, view, "0 icons")

	// Selecting in an empty grid is a no-op.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 0, store.writes)
}

func manyNames(n int) []string {
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		names = append(names, fmt.Sprintf("icon-%03d", i))
	}
	return names
}

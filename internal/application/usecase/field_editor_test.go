package usecase_test

import (
	"context"
	"testing"

	"github.com/bnema/glyphpick/internal/application/usecase"
	"github.com/bnema/glyphpick/internal/domain/entity"
	"github.com/bnema/glyphpick/internal/domain/icon"
	"github.com/bnema/glyphpick/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// fakeFieldStore records every write so tests can assert on write
// counts and exact stored values.
type fakeFieldStore struct {
	values map[string]entity.IconConfiguration
	sets   []string
}

func newFakeFieldStore() *fakeFieldStore {
	return &fakeFieldStore{values: make(map[string]entity.IconConfiguration)}
}

func (s *fakeFieldStore) Get(path string) (entity.IconConfiguration, bool) {
	cfg, ok := s.values[path]
	return cfg, ok
}

func (s *fakeFieldStore) Set(path string, cfg entity.IconConfiguration) {
	s.values[path] = cfg
	s.sets = append(s.sets, path)
}

func TestFieldEditor_Current_AbsentYieldsDefaultWithoutWrite(t *testing.T) {
	store := newFakeFieldStore()
	editor := usecase.NewFieldEditor(store, "profile.icon")

	assert.Equal(t, entity.DefaultIconConfiguration(), editor.Current())
	assert.Empty(t, store.sets, "reading must never write the default back")
}

func TestFieldEditor_SelectIcon_MergesIntoStoredValue(t *testing.T) {
	ctx := testContext()
	store := newFakeFieldStore()
	store.values["profile.icon"] = entity.IconConfiguration{
		Name:        "camera",
		Size:        48,
		Color:       "#123456",
		StrokeWidth: 1,
	}

	editor := usecase.NewFieldEditor(store, "profile.icon")
	got := editor.SelectIcon(ctx, "bell")

	assert.Equal(t, "bell", got.Name)
	assert.Equal(t, 48.0, got.Size)
	assert.Equal(t, "#123456", got.Color)
	require.Len(t, store.sets, 1, "exactly one write per mutation")
	assert.Equal(t, got, store.values["profile.icon"])
}

func TestFieldEditor_MutationFromEmptyFieldStartsAtDefaults(t *testing.T) {
	ctx := testContext()
	store := newFakeFieldStore()

	editor := usecase.NewFieldEditor(store, "profile.icon")
	got := editor.SelectIcon(ctx, "anchor")

	want := entity.DefaultIconConfiguration().WithName("anchor")
	assert.Equal(t, want, got)
	assert.Equal(t, want, store.values["profile.icon"], "the written value is complete")
}

func TestFieldEditor_SetConfigField_WritesExactlyOneField(t *testing.T) {
	ctx := testContext()
	store := newFakeFieldStore()

	editor := usecase.NewFieldEditor(store, "profile.icon")
	editor.SetConfigField(ctx, icon.FieldColor, "#abcdef")

	want := entity.DefaultIconConfiguration()
	want.Color = "#abcdef"
	assert.Equal(t, want, store.values["profile.icon"])
	assert.Len(t, store.sets, 1)
}

func TestFieldEditor_ResetToDefaults_KeepsName(t *testing.T) {
	ctx := testContext()
	store := newFakeFieldStore()

	editor := usecase.NewFieldEditor(store, "profile.icon")
	editor.SelectIcon(ctx, "camera")
	editor.SetConfigField(ctx, icon.FieldSize, 64.0)
	got := editor.ResetToDefaults(ctx)

	assert.Equal(t, entity.DefaultIconConfiguration().WithName("camera"), got)
	assert.Len(t, store.sets, 3)
}

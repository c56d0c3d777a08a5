package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/glyphpick/internal/domain/entity"
	"github.com/bnema/glyphpick/internal/domain/repository"
	"github.com/bnema/glyphpick/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/glyphpick/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordTestCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func openTestRepo(t *testing.T) (repository.RecordRepository, context.Context) {
	t.Helper()
	ctx := recordTestCtx()
	dbPath := filepath.Join(t.TempDir(), "glyphpick.sqlite")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return sqlite.NewRecordRepository(db), ctx
}

func TestRecordRepository_CRUD(t *testing.T) {
	repo, ctx := openTestRepo(t)

	rec := entity.NewRecord("notes")
	rec.SetField("title", "Weekly sync")
	rec.SetField("icon", map[string]any{
		"name":                "calendar",
		"size":                float64(24),
		"color":               "currentColor",
		"strokeWidth":         float64(2),
		"absoluteStrokeWidth": false,
	})
	require.NoError(t, repo.Save(ctx, rec))

	found, err := repo.FindByID(ctx, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, rec.ID, found.ID)
	assert.Equal(t, "notes", found.Collection)

	title, ok := found.GetField("title")
	require.True(t, ok)
	assert.Equal(t, "Weekly sync", title)

	iconName, ok := found.GetField("icon.name")
	require.True(t, ok)
	assert.Equal(t, "calendar", iconName)

	require.NoError(t, repo.Delete(ctx, rec.ID))

	deleted, err := repo.FindByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Nil(t, deleted)
}

func TestRecordRepository_FindByID_Missing(t *testing.T) {
	repo, ctx := openTestRepo(t)

	found, err := repo.FindByID(ctx, "no-such-record")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestRecordRepository_Save_Upsert(t *testing.T) {
	repo, ctx := openTestRepo(t)

	rec := entity.NewRecord("notes")
	rec.SetField("title", "Draft")
	require.NoError(t, repo.Save(ctx, rec))

	rec.SetField("title", "Final")
	require.NoError(t, repo.Save(ctx, rec))

	found, err := repo.FindByID(ctx, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, found)

	title, ok := found.GetField("title")
	require.True(t, ok)
	assert.Equal(t, "Final", title)

	all, err := repo.ListByCollection(ctx, "notes")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRecordRepository_Save_AssignsID(t *testing.T) {
	repo, ctx := openTestRepo(t)

	rec := &entity.Record{Collection: "notes", Fields: map[string]any{}}
	require.NoError(t, repo.Save(ctx, rec))
	assert.NotEmpty(t, rec.ID)
}

func TestRecordRepository_Save_RejectsEmptyCollection(t *testing.T) {
	repo, ctx := openTestRepo(t)

	rec := &entity.Record{Fields: map[string]any{}}
	err := repo.Save(ctx, rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collection cannot be empty")
}

func TestRecordRepository_ListByCollection(t *testing.T) {
	repo, ctx := openTestRepo(t)

	first := entity.NewRecord("notes")
	first.SetField("title", "First")
	require.NoError(t, repo.Save(ctx, first))

	// Timestamps have millisecond resolution.
	time.Sleep(10 * time.Millisecond)

	second := entity.NewRecord("notes")
	second.SetField("title", "Second")
	require.NoError(t, repo.Save(ctx, second))

	other := entity.NewRecord("contacts")
	require.NoError(t, repo.Save(ctx, other))

	records, err := repo.ListByCollection(ctx, "notes")
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Most recently updated first.
	assert.Equal(t, second.ID, records[0].ID)
	assert.Equal(t, first.ID, records[1].ID)

	// Re-saving the older record moves it to the front.
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.Save(ctx, first))

	records, err = repo.ListByCollection(ctx, "notes")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, first.ID, records[0].ID)
}

func TestRecordRepository_ListByCollection_Empty(t *testing.T) {
	repo, ctx := openTestRepo(t)

	records, err := repo.ListByCollection(ctx, "empty")
	require.NoError(t, err)
	assert.Empty(t, records)
}

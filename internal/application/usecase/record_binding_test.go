package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/glyphpick/internal/application/usecase"
	"github.com/bnema/glyphpick/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRecordRepo captures saves and can be told to fail.
type fakeRecordRepo struct {
	saved   []*entity.Record
	saveErr error
}

func (r *fakeRecordRepo) Save(_ context.Context, rec *entity.Record) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, rec)
	return nil
}

func (r *fakeRecordRepo) FindByID(context.Context, entity.RecordID) (*entity.Record, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeRecordRepo) ListByCollection(context.Context, string) ([]*entity.Record, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeRecordRepo) Delete(context.Context, entity.RecordID) error {
	return errors.New("not implemented")
}

func TestRecordBinding_GetAbsentField(t *testing.T) {
	rec := entity.NewRecord("posts")
	binding := usecase.NewRecordBinding(rec, nil)

	_, ok := binding.Get("profile.icon")
	assert.False(t, ok)
}

func TestRecordBinding_SetThenGetRoundTrip(t *testing.T) {
	rec := entity.NewRecord("posts")
	binding := usecase.NewRecordBinding(rec, nil)

	cfg := entity.IconConfiguration{
		Name:                "zap",
		Size:                18,
		Color:               "gold",
		StrokeWidth:         2.5,
		AbsoluteStrokeWidth: true,
	}
	binding.Set("profile.icon", cfg)

	got, ok := binding.Get("profile.icon")
	require.True(t, ok)
	assert.Equal(t, cfg, got)

	// The record document uses the stored field names.
	stored, ok := rec.GetField("profile.icon")
	require.True(t, ok)
	obj, ok := stored.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "zap", obj["name"])
	assert.Equal(t, 18.0, obj["size"])
	assert.Equal(t, "gold", obj["color"])
	assert.Equal(t, 2.5, obj["strokeWidth"])
	assert.Equal(t, true, obj["absoluteStrokeWidth"])
}

func TestRecordBinding_GetMergesPartialOntoDefaults(t *testing.T) {
	rec := entity.NewRecord("posts")
	rec.SetField("profile.icon", map[string]any{"name": "bell"})

	binding := usecase.NewRecordBinding(rec, nil)
	got, ok := binding.Get("profile.icon")
	require.True(t, ok)

	assert.Equal(t, entity.DefaultIconConfiguration().WithName("bell"), got)
}

func TestRecordBinding_GetNonObjectReportsAbsent(t *testing.T) {
	rec := entity.NewRecord("posts")
	rec.SetField("profile.icon", "not an object")

	binding := usecase.NewRecordBinding(rec, nil)
	_, ok := binding.Get("profile.icon")
	assert.False(t, ok)
}

func TestRecordBinding_SavePersistsThroughRepository(t *testing.T) {
	ctx := testContext()
	rec := entity.NewRecord("posts")
	repo := &fakeRecordRepo{}

	binding := usecase.NewRecordBinding(rec, repo)
	require.NoError(t, binding.Save(ctx))
	require.Len(t, repo.saved, 1)
	assert.Same(t, rec, repo.saved[0])
}

func TestRecordBinding_SaveWrapsRepositoryError(t *testing.T) {
	ctx := testContext()
	repo := &fakeRecordRepo{saveErr: errors.New("disk full")}

	binding := usecase.NewRecordBinding(entity.NewRecord("posts"), repo)
	err := binding.Save(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save record")
}

func TestRecordBinding_NilRepositoryIsEphemeral(t *testing.T) {
	binding := usecase.NewRecordBinding(entity.NewRecord("posts"), nil)
	assert.NoError(t, binding.Save(testContext()))
}

package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/glyphpick/internal/application/port"
	"github.com/bnema/glyphpick/internal/domain/entity"
	"github.com/bnema/glyphpick/internal/domain/repository"
	"github.com/bnema/glyphpick/internal/logging"
)

// RecordBinding exposes a record document as a field store so icon
// fields can bind to paths inside it. Mutations only touch the
// in-memory record; Save persists the whole record through the
// repository. With a nil repository the binding is ephemeral and Save
// is a no-op.
type RecordBinding struct {
	record *entity.Record
	repo   repository.RecordRepository
}

// NewRecordBinding binds a record to an optional repository.
func NewRecordBinding(record *entity.Record, repo repository.RecordRepository) *RecordBinding {
	return &RecordBinding{
		record: record,
		repo:   repo,
	}
}

var _ port.FieldStore = (*RecordBinding)(nil)

// Record returns the bound record.
func (b *RecordBinding) Record() *entity.Record {
	return b.record
}

// Get decodes the configuration stored at path. Missing fields of a
// stored object fall back to their defaults; a missing or non-object
// value reports absent.
func (b *RecordBinding) Get(path string) (entity.IconConfiguration, bool) {
	v, ok := b.record.GetField(path)
	if !ok {
		return entity.IconConfiguration{}, false
	}
	return decodeIconConfiguration(v)
}

// Set stores a complete configuration at path in the record document.
func (b *RecordBinding) Set(path string, cfg entity.IconConfiguration) {
	b.record.SetField(path, encodeIconConfiguration(cfg))
}

// Save persists the record through the repository.
func (b *RecordBinding) Save(ctx context.Context) error {
	if b.repo == nil {
		return nil
	}

	log := logging.FromContext(ctx)

	if err := b.repo.Save(ctx, b.record); err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}

	log.Debug().
		Str("record_id", string(b.record.ID)).
		Str("collection", b.record.Collection).
		Msg("record saved")

	return nil
}

// decodeIconConfiguration reads a stored document value back into a
// configuration. Absent keys merge onto defaults so partially stored
// objects still produce a fully populated value.
func decodeIconConfiguration(v any) (entity.IconConfiguration, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return entity.IconConfiguration{}, false
	}
	cfg := entity.DefaultIconConfiguration()
	if s, ok := obj["name"].(string); ok {
		cfg.Name = s
	}
	if n, ok := toNumber(obj["size"]); ok {
		cfg.Size = n
	}
	if s, ok := obj["color"].(string); ok {
		cfg.Color = s
	}
	if n, ok := toNumber(obj["strokeWidth"]); ok {
		cfg.StrokeWidth = n
	}
	if v, ok := obj["absoluteStrokeWidth"].(bool); ok {
		cfg.AbsoluteStrokeWidth = v
	}
	return cfg, true
}

// encodeIconConfiguration writes a configuration using the stored
// field names. These keys are the persisted contract.
func encodeIconConfiguration(cfg entity.IconConfiguration) map[string]any {
	return map[string]any{
		"name":                cfg.Name,
		"size":                cfg.Size,
		"color":               cfg.Color,
		"strokeWidth":         cfg.StrokeWidth,
		"absoluteStrokeWidth": cfg.AbsoluteStrokeWidth,
	}
}

// toNumber accepts the numeric types a JSON document round-trip can
// produce.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

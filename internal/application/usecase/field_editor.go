package usecase

import (
	"context"

	"github.com/bnema/glyphpick/internal/application/port"
	"github.com/bnema/glyphpick/internal/domain/entity"
	"github.com/bnema/glyphpick/internal/domain/icon"
	"github.com/bnema/glyphpick/internal/logging"
)

// FieldEditor binds one icon field to a host field store. Every
// mutation reads the current effective value, reduces it with the
// requested change, and writes the complete result back with a single
// store call. It never reads back after writing; the next render sees
// whatever the host propagates.
type FieldEditor struct {
	store port.FieldStore
	path  string
	meta  FieldMeta
}

// FieldMeta describes how the host labels the field.
type FieldMeta struct {
	Label    string
	Required bool
}

// NewFieldEditor creates an editor for the field at path.
func NewFieldEditor(store port.FieldStore, path string) *FieldEditor {
	return &FieldEditor{
		store: store,
		path:  path,
	}
}

// WithMeta attaches presentation metadata and returns the editor.
func (e *FieldEditor) WithMeta(meta FieldMeta) *FieldEditor {
	e.meta = meta
	return e
}

// Meta returns the field presentation metadata.
func (e *FieldEditor) Meta() FieldMeta {
	return e.meta
}

// Path returns the bound field path.
func (e *FieldEditor) Path() string {
	return e.path
}

// Current returns the effective configuration: the stored value, or
// the default configuration when the field has never been written.
// The default is not written back until the user acts.
func (e *FieldEditor) Current() entity.IconConfiguration {
	if cfg, ok := e.store.Get(e.path); ok {
		return cfg
	}
	return entity.DefaultIconConfiguration()
}

// Apply reduces the current effective value with one action and writes
// the complete result back. Exactly one store write per call.
func (e *FieldEditor) Apply(ctx context.Context, action icon.Action) entity.IconConfiguration {
	log := logging.FromContext(ctx)

	next := icon.Reduce(e.Current(), action)
	e.store.Set(e.path, next)

	log.Debug().
		Str("path", e.path).
		Str("icon", next.Name).
		Msg("icon field updated")

	return next
}

// SelectIcon replaces only the icon name, preserving all appearance
// fields, and closes out as a single write.
func (e *FieldEditor) SelectIcon(ctx context.Context, name string) entity.IconConfiguration {
	return e.Apply(ctx, icon.SelectIcon{Name: name})
}

// SetConfigField replaces exactly one named configuration field.
func (e *FieldEditor) SetConfigField(ctx context.Context, key icon.FieldKey, value any) entity.IconConfiguration {
	return e.Apply(ctx, icon.SetField{Key: key, Value: value})
}

// ResetToDefaults restores every field except the name to its default.
func (e *FieldEditor) ResetToDefaults(ctx context.Context) entity.IconConfiguration {
	return e.Apply(ctx, icon.Reset{})
}

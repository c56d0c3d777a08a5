package port

import "github.com/bnema/glyphpick/internal/domain/entity"

// FieldStore is the host-side field-state contract an icon field binds
// to. The widget never talks to storage directly; it reads and writes
// one value at a path and the host decides where that value lives.
type FieldStore interface {
	// Get returns the stored configuration at path. The second result
	// is false when the field has never been written; callers
	// substitute the default configuration without writing it back.
	Get(path string) (entity.IconConfiguration, bool)

	// Set stores a complete configuration at path, replacing any
	// previous value. Partial values are never stored.
	Set(path string, cfg entity.IconConfiguration)
}

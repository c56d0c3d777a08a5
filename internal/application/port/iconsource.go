package port

import (
	"context"

	"github.com/bnema/glyphpick/internal/domain/entity"
)

// IconSource is a static, enumerable icon registry mapping names to
// loadable glyphs. Registration happens once at startup; the set never
// changes afterwards.
type IconSource interface {
	// Names returns every registered icon name.
	Names() []string

	// Has reports whether a name is registered. Used to validate
	// warm-up candidates without triggering a load.
	Has(name string) bool

	// Load resolves the glyph for a registered name. Unregistered
	// names return an error; callers degrade to a placeholder.
	Load(ctx context.Context, name string) (entity.Icon, error)
}

package port

import (
	"context"

	"github.com/bnema/glyphpick/internal/domain/entity"
)

// IconResolver caches resolved icons for the remainder of the process
// and deduplicates concurrent loads per name. Resolution never fails
// from the caller's point of view: unknown names yield a placeholder
// icon, not an error.
type IconResolver interface {
	// Resolve returns the icon for name, loading it on first use.
	// Subsequent calls for the same name return the cached handle.
	Resolve(ctx context.Context, name string) entity.Icon

	// Resolved returns the cached icon for name without triggering a
	// load. The second result is false while the name has never
	// finished resolving.
	Resolved(name string) (entity.Icon, bool)

	// Warm proactively resolves a set of likely selections. Best
	// effort: it affects latency only, never behavior.
	Warm(ctx context.Context, names []string)
}

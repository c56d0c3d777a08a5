// Package iconres caches resolved icons for the lifetime of the
// process. Entries are kept forever; they are tiny and harmless to
// retain after the widgets that asked for them are gone.
package iconres

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/bnema/glyphpick/internal/application/port"
	"github.com/bnema/glyphpick/internal/domain/entity"
	"github.com/bnema/glyphpick/internal/logging"
)

// Resolver resolves names through an icon source, deduplicating
// concurrent loads per name and memoizing the result. The dedup lives
// here, not in the source: the source is never assumed to memoize.
type Resolver struct {
	source port.IconSource
	group  singleflight.Group

	mu       sync.RWMutex
	resolved map[string]entity.Icon

	warmOnce sync.Once
}

var _ port.IconResolver = (*Resolver)(nil)

// NewResolver creates a resolver over the given source.
func NewResolver(source port.IconSource) *Resolver {
	return &Resolver{
		source:   source,
		resolved: make(map[string]entity.Icon),
	}
}

// Resolve returns the icon for name, loading it on first use. Unknown
// names resolve to a placeholder icon and are cached like any other
// result so they never cause repeated load attempts.
func (r *Resolver) Resolve(ctx context.Context, name string) entity.Icon {
	if name == "" {
		return entity.Icon{Glyph: entity.PlaceholderGlyph}
	}

	r.mu.RLock()
	ic, ok := r.resolved[name]
	r.mu.RUnlock()
	if ok {
		return ic
	}

	// Concurrent calls for the same name share one load.
	v, _, _ := r.group.Do(name, func() (any, error) {
		ic, err := r.source.Load(ctx, name)
		if err != nil {
			logging.FromContext(ctx).Debug().
				Str("icon", name).
				Err(err).
				Msg("icon load failed, using placeholder")
			ic = entity.Icon{Name: name, Glyph: entity.PlaceholderGlyph}
		}

		r.mu.Lock()
		r.resolved[name] = ic
		r.mu.Unlock()

		return ic, nil
	})

	return v.(entity.Icon)
}

// Resolved returns the cached icon for name without triggering a load.
func (r *Resolver) Resolved(name string) (entity.Icon, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ic, ok := r.resolved[name]
	return ic, ok
}

// Warm proactively resolves a set of likely selections. Runs at most
// once per resolver no matter how many widgets mount; callers repeat
// it freely. Names missing from the source are skipped without a load
// attempt.
func (r *Resolver) Warm(ctx context.Context, names []string) {
	r.warmOnce.Do(func() {
		log := logging.FromContext(ctx)

		warmed := 0
		for _, name := range names {
			if !r.source.Has(name) {
				log.Debug().Str("icon", name).Msg("skipping unknown warm-up icon")
				continue
			}
			r.Resolve(ctx, name)
			warmed++
		}

		log.Debug().Int("count", warmed).Msg("icon cache warmed")
	})
}

// Package lucide is the built-in icon registry: lucide-style names
// rendered as Nerd Font glyphs. The registry is static; registration
// happens once at construction and the set never changes.
package lucide

import (
	"context"
	"fmt"
	"slices"

	"github.com/bnema/glyphpick/internal/application/port"
	"github.com/bnema/glyphpick/internal/domain/entity"
)

// Source implements the icon source port over the built-in glyph
// table.
type Source struct {
	names []string
}

var _ port.IconSource = (*Source)(nil)

// NewSource enumerates the registry once and returns the source.
func NewSource() *Source {
	names := make([]string, 0, len(glyphs))
	for name := range glyphs {
		names = append(names, name)
	}
	slices.Sort(names)
	return &Source{names: names}
}

// Names returns every registered name in sorted order.
func (s *Source) Names() []string {
	return s.names
}

// Has reports whether a name is registered.
func (s *Source) Has(name string) bool {
	_, ok := glyphs[name]
	return ok
}

// Load resolves the glyph for a registered name.
func (s *Source) Load(_ context.Context, name string) (entity.Icon, error) {
	glyph, ok := glyphs[name]
	if !ok {
		return entity.Icon{}, fmt.Errorf("icon %q is not registered", name)
	}
	return entity.Icon{Name: name, Glyph: glyph}, nil
}

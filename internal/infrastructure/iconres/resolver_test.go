package iconres_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/bnema/glyphpick/internal/domain/entity"
	"github.com/bnema/glyphpick/internal/infrastructure/iconres"
	"github.com/bnema/glyphpick/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// fakeSource counts loads per name and can hold them open to force
// overlap between concurrent resolve calls.
type fakeSource struct {
	mu    sync.Mutex
	loads map[string]int
	gate  chan struct{}
}

func newFakeSource() *fakeSource {
	return &fakeSource{loads: make(map[string]int)}
}

func (s *fakeSource) Names() []string {
	return []string{"anchor", "bell", "camera"}
}

func (s *fakeSource) Has(name string) bool {
	for _, n := range s.Names() {
		if n == name {
			return true
		}
	}
	return false
}

func (s *fakeSource) Load(_ context.Context, name string) (entity.Icon, error) {
	s.mu.Lock()
	s.loads[name]++
	s.mu.Unlock()

	if s.gate != nil {
		<-s.gate
	}
	if !s.Has(name) {
		return entity.Icon{}, fmt.Errorf("icon %q is not registered", name)
	}
	return entity.Icon{Name: name, Glyph: ""}, nil
}

func (s *fakeSource) loadCount(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loads[name]
}

func TestResolver_ResolveCachesHandle(t *testing.T) {
	ctx := testContext()
	src := newFakeSource()
	r := iconres.NewResolver(src)

	first := r.Resolve(ctx, "bell")
	second := r.Resolve(ctx, "bell")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, src.loadCount("bell"), "second resolve must not re-load")
}

func TestResolver_ConcurrentResolveLoadsOnce(t *testing.T) {
	ctx := testContext()
	src := newFakeSource()
	src.gate = make(chan struct{})
	r := iconres.NewResolver(src)

	var wg sync.WaitGroup
	results := make([]entity.Icon, 20)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = r.Resolve(ctx, "anchor")
		}(i)
	}

	close(src.gate)
	wg.Wait()

	assert.Equal(t, 1, src.loadCount("anchor"), "overlapping resolves must share one load")
	for _, ic := range results {
		assert.Equal(t, results[0], ic)
	}
}

func TestResolver_UnknownNameDegradesToPlaceholder(t *testing.T) {
	ctx := testContext()
	src := newFakeSource()
	r := iconres.NewResolver(src)

	ic := r.Resolve(ctx, "missing")
	assert.Equal(t, entity.PlaceholderGlyph, ic.Glyph)
	assert.Equal(t, "missing", ic.Name)

	// The placeholder is cached too; no repeated load attempts.
	r.Resolve(ctx, "missing")
	assert.Equal(t, 1, src.loadCount("missing"))
}

func TestResolver_EmptyNameIsPlaceholderWithoutLoad(t *testing.T) {
	ctx := testContext()
	src := newFakeSource()
	r := iconres.NewResolver(src)

	ic := r.Resolve(ctx, "")
	assert.Equal(t, entity.PlaceholderGlyph, ic.Glyph)
	assert.Empty(t, src.loads)
}

func TestResolver_ResolvedPeeksWithoutLoading(t *testing.T) {
	ctx := testContext()
	src := newFakeSource()
	r := iconres.NewResolver(src)

	_, ok := r.Resolved("bell")
	assert.False(t, ok)
	assert.Empty(t, src.loads, "peeking must not load")

	want := r.Resolve(ctx, "bell")
	got, ok := r.Resolved("bell")
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestResolver_WarmSkipsUnknownAndRunsOnce(t *testing.T) {
	ctx := testContext()
	src := newFakeSource()
	r := iconres.NewResolver(src)

	r.Warm(ctx, []string{"bell", "nope", "camera"})

	assert.Equal(t, 1, src.loadCount("bell"))
	assert.Equal(t, 1, src.loadCount("camera"))
	assert.Zero(t, src.loadCount("nope"), "unknown names are validated, not loaded")

	// A second warm-up (another widget mounting) is a no-op.
	r.Warm(ctx, []string{"anchor"})
	assert.Zero(t, src.loadCount("anchor"))
}

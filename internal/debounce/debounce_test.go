package debounce_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/glyphpick/internal/debounce"
	"github.com/stretchr/testify/assert"
)

func TestDebouncer_OnlyLastCallFires(t *testing.T) {
	d := debounce.NewDebouncer(20 * time.Millisecond)

	var fired atomic.Int32
	var last atomic.Int32
	for i := 1; i <= 5; i++ {
		n := int32(i)
		d.Call(func() {
			fired.Add(1)
			last.Store(n)
		})
		time.Sleep(2 * time.Millisecond)
	}

	assert.Eventually(t, func() bool {
		return fired.Load() == 1 && last.Load() == 5
	}, time.Second, 5*time.Millisecond)

	// Quiet period passed; still exactly one firing.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	d := debounce.NewDebouncer(20 * time.Millisecond)

	var fired atomic.Int32
	d.Call(func() { fired.Add(1) })
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())

	// Stop with nothing pending is safe.
	d.Stop()
}

func TestGuard_OnlyLatestGenerationAccepted(t *testing.T) {
	var g debounce.Guard

	first := g.Arm()
	second := g.Arm()

	assert.False(t, g.Accept(first), "superseded tick must be dropped")
	assert.True(t, g.Accept(second))

	// A tick is consumed logically, not literally: accepting does not
	// invalidate the generation until something re-arms.
	assert.True(t, g.Accept(second))
}

func TestGuard_ResetInvalidatesOutstanding(t *testing.T) {
	var g debounce.Guard

	token := g.Arm()
	g.Reset()

	assert.False(t, g.Accept(token))
}

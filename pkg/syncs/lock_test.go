package syncs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/parsync/pkg/syncs"
)

func TestLockRoundTrip(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		value int
	}{
		"zero":     {value: 0},
		"positive": {value: 42},
		"negative": {value: -7},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			l := syncs.NewLock(tc.value)
			assert.Equal(t, tc.value, l.IntoInner())
		})
	}
}

func TestLockGuard(t *testing.T) {
	t.Parallel()

	l := syncs.NewLock("initial")

	g := l.Lock()
	*g.Get() = "updated"
	g.Unlock()

	assert.Equal(t, "updated", l.IntoInner())
}

func TestLockTryLock(t *testing.T) {
	t.Parallel()

	l := syncs.NewLock(1)

	g, ok := l.TryLock()
	require.True(t, ok)

	// A second acquisition must report unavailability, not block or fail.
	_, ok = l.TryLock()
	assert.False(t, ok)

	g.Unlock()

	g2, ok := l.TryLock()
	require.True(t, ok)
	g2.Unlock()
}

func TestLockWith(t *testing.T) {
	t.Parallel()

	l := syncs.NewLock([]int{1, 2})

	l.With(func(v *[]int) {
		*v = append(*v, 3)
	})

	assert.Equal(t, []int{1, 2, 3}, l.IntoInner())
}

func TestLockWithReleasesOnPanic(t *testing.T) {
	t.Parallel()

	l := syncs.NewLock(0)

	require.Panics(t, func() {
		l.With(func(*int) {
			panic("boom")
		})
	})

	// The lock must be free again after the panic propagated.
	g, ok := l.TryLock()
	require.True(t, ok)
	g.Unlock()
}

func TestWithLockResult(t *testing.T) {
	t.Parallel()

	l := syncs.NewLock(20)

	got := syncs.WithLock(l, func(v *int) int {
		*v++

		return *v * 2
	})

	assert.Equal(t, 42, got)
	assert.Equal(t, 21, l.IntoInner())
}

func TestLockClone(t *testing.T) {
	t.Parallel()

	l := syncs.NewLock(5)
	c := l.Clone()

	l.With(func(v *int) { *v = 99 })

	assert.Equal(t, 5, c.IntoInner())
	assert.Equal(t, 99, l.IntoInner())
}

func TestLockSerialReentryPanics(t *testing.T) {
	t.Parallel()

	if syncs.IsParallel {
		t.Skip("reentry fails fast only with the serial backend")
	}

	l := syncs.NewLock(0)
	g := l.Lock()
	defer g.Unlock()

	require.Panics(t, func() {
		l.Lock()
	})
}

func TestLockGuardMisusePanics(t *testing.T) {
	t.Parallel()

	l := syncs.NewLock(0)

	g := l.Lock()
	g.Unlock()

	require.Panics(t, func() { g.Unlock() })
	require.Panics(t, func() { g.Get() })
}

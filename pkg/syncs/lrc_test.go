package syncs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/parsync/pkg/syncs"
)

func TestLrcCloneSharesValue(t *testing.T) {
	t.Parallel()

	a := syncs.NewLrc(1)
	b := a.Clone()

	*a.Get() = 2

	assert.Equal(t, 2, *b.Get())
	assert.Equal(t, int64(2), a.StrongCount())
}

func TestLrcWeakUpgrade(t *testing.T) {
	t.Parallel()

	a := syncs.NewLrc("v")
	w := a.Downgrade()

	assert.Equal(t, int64(1), a.WeakCount())

	b, ok := w.Upgrade()
	require.True(t, ok)
	assert.Equal(t, "v", *b.Get())
	assert.Equal(t, int64(2), a.StrongCount())

	b.Drop()
	a.Drop()

	// The weak handle never kept the value alive.
	_, ok = w.Upgrade()
	assert.False(t, ok)
}

func TestLrcUseAfterDropPanics(t *testing.T) {
	t.Parallel()

	a := syncs.NewLrc(1)
	a.Drop()

	require.Panics(t, func() { a.Get() })
	require.Panics(t, func() { a.Drop() })
}

func TestLrcWeakUseAfterDropPanics(t *testing.T) {
	t.Parallel()

	a := syncs.NewLrc(1)
	w := a.Downgrade()
	w.Drop()

	// A repeated drop must not decrement the weak count again.
	require.Panics(t, func() { w.Drop() })
	require.Panics(t, func() { w.Upgrade() })
	assert.Equal(t, int64(0), a.WeakCount())
}

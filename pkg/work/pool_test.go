package work_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/parsync/pkg/work"
)

func TestPoolRunsTasks(t *testing.T) {
	t.Parallel()

	p := work.New(4)

	var ran atomic.Int64

	const tasks = 50

	for range tasks {
		err := p.Submit(func() {
			ran.Add(1)
		})
		require.NoError(t, err)
	}

	require.NoError(t, p.Close())
	assert.Equal(t, int64(tasks), ran.Load())
}

func TestPoolSize(t *testing.T) {
	t.Parallel()

	p := work.New(3)
	defer p.Close()

	assert.Equal(t, 3, p.Size())
	assert.NotEmpty(t, p.ID())

	defaulted := work.New(0)
	defer defaulted.Close()

	assert.Positive(t, defaulted.Size())
}

func TestPoolWorkerIndex(t *testing.T) {
	t.Parallel()

	const size = 4

	p := work.New(size)

	indexes := make(chan int, size)

	for range size {
		err := p.Submit(func() {
			i, ok := p.WorkerIndex()
			assert.True(t, ok)
			indexes <- i
		})
		require.NoError(t, err)
	}

	require.NoError(t, p.Close())

	for range size {
		i := <-indexes
		assert.GreaterOrEqual(t, i, 0)
		assert.Less(t, i, size)
	}

	// The test goroutine is not a pool member.
	_, ok := p.WorkerIndex()
	assert.False(t, ok)
}

func TestPoolSubmitAfterClose(t *testing.T) {
	t.Parallel()

	p := work.New(1)
	require.NoError(t, p.Close())

	err := p.Submit(func() {})
	require.ErrorIs(t, err, work.ErrPoolClosed)

	require.ErrorIs(t, p.Close(), work.ErrPoolClosed)
}

func TestPoolRecoversPanics(t *testing.T) {
	t.Parallel()

	p := work.New(2)

	var after atomic.Bool

	require.NoError(t, p.Submit(func() {
		panic("task exploded")
	}))
	require.NoError(t, p.Submit(func() {
		after.Store(true)
	}))

	err := p.Close()
	require.ErrorIs(t, err, work.ErrWorkerPanicked)

	// The pool keeps serving tasks after a panic.
	assert.True(t, after.Load())
}

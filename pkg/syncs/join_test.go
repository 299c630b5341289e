package syncs_test

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/parsync/pkg/syncs"
)

func TestJoin(t *testing.T) {
	t.Parallel()

	a, b := syncs.Join(
		func() int { return 1 },
		func() int { return 2 },
	)

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
}

func TestJoinPanicPropagates(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		syncs.Join(
			func() int { return 1 },
			func() int { panic("boom") },
		)
	})
}

func TestScope(t *testing.T) {
	t.Parallel()

	var (
		mu      sync.Mutex
		visited []int
	)

	err := syncs.Scope(func(s *syncs.TaskScope) error {
		for i := range 5 {
			s.Spawn(func() error {
				mu.Lock()
				defer mu.Unlock()

				visited = append(visited, i)

				return nil
			})
		}

		return nil
	})
	require.NoError(t, err)

	// Scope returned, so every spawned task has completed.
	slices.Sort(visited)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, visited)
}

func TestScopeNestedSpawn(t *testing.T) {
	t.Parallel()

	var ran syncs.AtomicInt64

	err := syncs.Scope(func(s *syncs.TaskScope) error {
		s.Spawn(func() error {
			ran.Add(1)

			s.Spawn(func() error {
				ran.Add(1)

				return nil
			})

			return nil
		})

		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2), ran.Load())
}

func TestScopeError(t *testing.T) {
	t.Parallel()

	errTask := errors.New("task failed")

	err := syncs.Scope(func(s *syncs.TaskScope) error {
		s.Spawn(func() error { return nil })
		s.Spawn(func() error { return errTask })

		return nil
	})

	require.ErrorIs(t, err, errTask)
}

func TestParEach(t *testing.T) {
	t.Parallel()

	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}

	var sum syncs.AtomicInt64

	serialSafeAdd := func(v int) error {
		sum.Add(int64(v))

		return nil
	}

	err := syncs.ParEach(items, serialSafeAdd)
	require.NoError(t, err)

	assert.Equal(t, int64(4950), sum.Load())
}

func TestParEachCollectsErrors(t *testing.T) {
	t.Parallel()

	errOdd := errors.New("odd")

	err := syncs.ParEach([]int{1, 2, 3}, func(v int) error {
		if v%2 == 1 {
			return errOdd
		}

		return nil
	})

	require.ErrorIs(t, err, errOdd)
}

//go:build parallel

package syncs

import (
	"fmt"

	"github.com/macropower/parsync/pkg/work"
)

// WorkerLocal holds one value per worker in a pool, populated once at
// construction and read-only afterwards. Each worker sees only its own
// value, so no synchronization is needed on access.
type WorkerLocal[T any] struct {
	pool   *work.Pool
	values []T
}

// NewWorkerLocal calls factory once per worker index in pool and stores the
// results, index-aligned to worker identity.
func NewWorkerLocal[T any](pool *work.Pool, factory func(int) T) *WorkerLocal[T] {
	values := make([]T, pool.Size())
	for i := range values {
		values[i] = factory(i)
	}

	return &WorkerLocal[T]{pool: pool, values: values}
}

// Get returns the calling worker's value. It panics when called from a
// goroutine that is not a worker of the pool.
func (w *WorkerLocal[T]) Get() *T {
	i, ok := w.pool.WorkerIndex()
	if !ok {
		panic(fmt.Sprintf("syncs: worker-local access from outside pool %s", w.pool.ID()))
	}

	return &w.values[i]
}

// IntoInner returns the per-worker values, index-aligned to worker index.
func (w *WorkerLocal[T]) IntoInner() []T {
	return w.values
}

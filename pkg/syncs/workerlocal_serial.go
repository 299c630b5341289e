//go:build !parallel

package syncs

import "github.com/macropower/parsync/pkg/work"

// WorkerLocal holds one value per worker in a pool. In serial builds the
// pool has exactly one logical worker, so this is a single value confined to
// the constructing goroutine; the pool argument is unused.
type WorkerLocal[T any] struct {
	inner *OneThread[T]
}

// NewWorkerLocal calls factory once with index 0 and stores the result.
func NewWorkerLocal[T any](_ *work.Pool, factory func(int) T) *WorkerLocal[T] {
	return &WorkerLocal[T]{inner: NewOneThread(factory(0))}
}

// Get returns this worker's value.
func (w *WorkerLocal[T]) Get() *T {
	return w.inner.Get()
}

// IntoInner returns the per-worker values, index-aligned to worker index.
func (w *WorkerLocal[T]) IntoInner() []T {
	return []T{w.inner.IntoInner()}
}

//go:build parallel

package syncs

import (
	"context"
	"runtime"
	"sync"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/semaphore"
)

// ParEach applies f to every element of items, fanning out across available
// CPUs with no defined visiting order. It returns only after every element
// has been processed; every error is collected and the aggregate is
// returned.
func ParEach[T any](items []T, f func(T) error) error {
	var (
		ctx     = context.Background()
		workers = int64(runtime.GOMAXPROCS(0))
		sem     = semaphore.NewWeighted(workers)

		mu   sync.Mutex
		merr *multierror.Error
	)

	for _, item := range items {
		// Acquire on an uncancellable context cannot fail.
		_ = sem.Acquire(ctx, 1)

		go func() {
			defer sem.Release(1)

			err := f(item)
			if err != nil {
				mu.Lock()
				merr = multierror.Append(merr, err)
				mu.Unlock()
			}
		}()
	}

	_ = sem.Acquire(ctx, workers)

	return merr.ErrorOrNil()
}

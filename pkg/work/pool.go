package work

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/petermattis/goid"
	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrPoolClosed indicates a submission to a pool that was already closed.
	ErrPoolClosed = errors.New("pool closed")

	// ErrWorkerPanicked indicates a task panicked while running on a worker.
	ErrWorkerPanicked = errors.New("worker panicked")
)

// Pool is a fixed-size pool of worker goroutines with stable membership.
type Pool struct {
	id       string
	size     int
	tasks    chan func()
	registry *xsync.MapOf[int64, int]
	group    *errgroup.Group
	logger   *slog.Logger

	mu     sync.RWMutex
	closed bool

	errMu sync.Mutex
	errs  *multierror.Error
}

// New starts a pool with the given number of workers. A size of zero or less
// means one worker per available CPU.
func New(size int) *Pool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		id:       uuid.NewString(),
		size:     size,
		tasks:    make(chan func(), size),
		registry: xsync.NewMapOf[int64, int](),
		group:    &errgroup.Group{},
	}
	p.logger = slog.With(
		slog.String("pool", p.id),
		slog.Int("size", size),
	)

	ready := make(chan struct{}, size)

	for i := range size {
		p.group.Go(func() error {
			p.registry.Store(goid.Get(), i)
			ready <- struct{}{}

			p.run(i)

			return nil
		})
	}

	// Membership must be complete before New returns, so that worker-local
	// state sized off the pool can trust the registry.
	for range size {
		<-ready
	}

	p.logger.Debug("started worker pool")

	return p
}

func (p *Pool) run(index int) {
	for task := range p.tasks {
		p.invoke(index, task)
	}
}

func (p *Pool) invoke(index int, task func()) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("recovered task panic",
				slog.Int("worker", index),
				slog.Any("panic", r),
			)

			p.errMu.Lock()
			p.errs = multierror.Append(p.errs, fmt.Errorf("%w: worker %d: %v", ErrWorkerPanicked, index, r))
			p.errMu.Unlock()
		}
	}()

	task()
}

// ID returns the pool's unique identifier, used for log correlation.
func (p *Pool) ID() string {
	return p.id
}

// Size returns the number of workers.
func (p *Pool) Size() int {
	return p.size
}

// Submit queues a task for execution on some worker. It blocks while the
// queue is full and returns [ErrPoolClosed] after [Pool.Close].
func (p *Pool) Submit(task func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPoolClosed
	}

	p.tasks <- task

	return nil
}

// WorkerIndex returns the index of the worker the calling goroutine belongs
// to, or false when called from outside the pool.
func (p *Pool) WorkerIndex() (int, bool) {
	return p.registry.Load(goid.Get())
}

// Close stops accepting tasks, waits for queued tasks to finish, and returns
// the panics recovered over the pool's lifetime, if any. Closing twice
// returns [ErrPoolClosed].
func (p *Pool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()

		return ErrPoolClosed
	}

	p.closed = true
	close(p.tasks)
	p.mu.Unlock()

	// Workers never return errors themselves; failures surface through the
	// recovered-panic aggregate.
	_ = p.group.Wait()

	p.logger.Debug("closed worker pool")

	p.errMu.Lock()
	defer p.errMu.Unlock()

	return p.errs.ErrorOrNil()
}

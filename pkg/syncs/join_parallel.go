//go:build parallel

package syncs

import "golang.org/x/sync/errgroup"

// Join executes fa and fb, possibly concurrently, and returns only after
// both complete. A panic in fb is re-raised on the calling goroutine once
// fa has finished, preserving the rendezvous.
func Join[A, B any](fa func() A, fb func() B) (A, B) {
	var (
		b    B
		rec  any
		done = make(chan struct{})
	)

	go func() {
		defer close(done)
		defer func() {
			rec = recover()
		}()

		b = fb()
	}()

	a := fa()
	<-done

	if rec != nil {
		panic(rec)
	}

	return a, b
}

// TaskScope is the handle passed to [Scope] callbacks, on which nested
// tasks may be spawned. Tasks may themselves spawn further tasks.
type TaskScope struct {
	group *errgroup.Group
}

// Spawn schedules task to run concurrently with its siblings.
func (s *TaskScope) Spawn(task func() error) {
	s.group.Go(task)
}

// Scope invokes f with a [TaskScope] and returns only once every spawned
// task has completed, so no task can outlive its scope. f's own error takes
// precedence; otherwise the first task error is returned.
func Scope(f func(*TaskScope) error) error {
	s := &TaskScope{group: &errgroup.Group{}}

	err := f(s)

	werr := s.group.Wait()
	if err != nil {
		return err
	}

	return werr
}

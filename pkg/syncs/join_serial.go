//go:build !parallel

package syncs

// Join executes fa and fb and returns both results. In serial builds they
// run strictly in order, fa first.
func Join[A, B any](fa func() A, fb func() B) (A, B) {
	a := fa()
	b := fb()

	return a, b
}

// TaskScope is the handle passed to [Scope] callbacks, on which nested
// tasks may be spawned.
type TaskScope struct {
	err error
}

// Spawn runs task. In serial builds it is invoked immediately on the
// calling goroutine; the first task error is retained for [Scope].
func (s *TaskScope) Spawn(task func() error) {
	err := task()
	if err != nil && s.err == nil {
		s.err = err
	}
}

// Scope invokes f with a [TaskScope] and returns only once every spawned
// task has completed, so no task can outlive its scope. f's own error takes
// precedence; otherwise the first task error is returned.
func Scope(f func(*TaskScope) error) error {
	s := &TaskScope{}

	err := f(s)
	if err != nil {
		return err
	}

	return s.err
}

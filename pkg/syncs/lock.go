package syncs

// Lock is a mutual-exclusion cell owning a single value of type T.
//
// In parallel builds [Lock.Lock] blocks until the cell is available. In
// serial builds no other thread exists to release it, so a conflicting
// acquisition panics instead.
type Lock[T any] struct {
	mu    innerMutex
	value T
}

// NewLock creates a [Lock] owning value.
func NewLock[T any](value T) *Lock[T] {
	return &Lock[T]{value: value}
}

// Lock acquires exclusive access and returns a guard for the inner value.
// The caller must release it with [LockGuard.Unlock].
func (l *Lock[T]) Lock() *LockGuard[T] {
	l.mu.Lock()

	return &LockGuard[T]{lock: l}
}

// TryLock attempts to acquire exclusive access without waiting. It returns
// false if the cell is currently held.
func (l *Lock[T]) TryLock() (*LockGuard[T], bool) {
	if !l.mu.TryLock() {
		return nil, false
	}

	return &LockGuard[T]{lock: l}, true
}

// With acquires the lock, invokes f with exclusive access to the inner
// value, and releases on every exit path, including a panic in f.
func (l *Lock[T]) With(f func(*T)) {
	g := l.Lock()
	defer g.Unlock()

	f(g.Get())
}

// Get returns the inner value without synchronization. It must only be used
// while the caller has exclusive ownership of the Lock itself, e.g. before
// the cell has been shared.
func (l *Lock[T]) Get() *T {
	return &l.value
}

// IntoInner returns the inner value. Like [Lock.Get], it bypasses
// synchronization and requires exclusive ownership of the cell.
func (l *Lock[T]) IntoInner() T {
	return l.value
}

// Clone produces an independent Lock holding a shallow copy of the inner
// value, taken under a fresh acquisition of the source. It is a convenience,
// not a deep-copy guarantee across concurrent mutation.
func (l *Lock[T]) Clone() *Lock[T] {
	g := l.Lock()
	defer g.Unlock()

	return NewLock(*g.Get())
}

// WithLock acquires l, invokes f with exclusive access, releases on every
// exit path, and returns f's result.
//
// This is a package function because Go methods cannot introduce the result
// type parameter R.
func WithLock[T, R any](l *Lock[T], f func(*T) R) R {
	g := l.Lock()
	defer g.Unlock()

	return f(g.Get())
}

// LockGuard is a scoped exclusive accessor for the value owned by a [Lock].
type LockGuard[T any] struct {
	lock     *Lock[T]
	released bool
}

// Get returns the guarded value. It panics if the guard was already
// released.
func (g *LockGuard[T]) Get() *T {
	if g.released {
		panic("syncs: use of released lock guard")
	}

	return &g.lock.value
}

// Unlock releases the guard. It panics if called twice.
func (g *LockGuard[T]) Unlock() {
	if g.released {
		panic("syncs: unlock of released lock guard")
	}

	g.released = true
	g.lock.mu.Unlock()
}

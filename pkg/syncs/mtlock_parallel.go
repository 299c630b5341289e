//go:build parallel

package syncs

// MTLock is a mutex that degenerates to a bare container in serial builds.
// In parallel builds it behaves exactly like [Lock].
type MTLock[T any] struct {
	inner Lock[T]
}

// NewMTLock creates an [MTLock] owning value.
func NewMTLock[T any](value T) *MTLock[T] {
	return &MTLock[T]{inner: Lock[T]{value: value}}
}

// Lock acquires exclusive access and returns a guard for the inner value.
func (l *MTLock[T]) Lock() *MTGuard[T] {
	return &MTGuard[T]{guard: l.inner.Lock()}
}

// With acquires the lock, invokes f with exclusive access, and releases on
// every exit path.
func (l *MTLock[T]) With(f func(*T)) {
	l.inner.With(f)
}

// Get returns the inner value without synchronization. It must only be used
// while the caller has exclusive ownership of the MTLock itself.
func (l *MTLock[T]) Get() *T {
	return l.inner.Get()
}

// IntoInner returns the inner value, bypassing synchronization.
func (l *MTLock[T]) IntoInner() T {
	return l.inner.IntoInner()
}

// MTGuard is a scoped exclusive accessor for the value owned by a [MTLock].
type MTGuard[T any] struct {
	guard *LockGuard[T]
}

// Get returns the guarded value.
func (g *MTGuard[T]) Get() *T {
	return g.guard.Get()
}

// Unlock releases the guard. It panics if called twice.
func (g *MTGuard[T]) Unlock() {
	g.guard.Unlock()
}

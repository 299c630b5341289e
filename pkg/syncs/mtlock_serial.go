//go:build !parallel

package syncs

// MTLock is a mutex that degenerates to a bare container in serial builds.
// No exclusion is enforced here: callers use MTLock only where they can
// prove independently that a single logical thread exists in serial mode.
type MTLock[T any] struct {
	value T
}

// NewMTLock creates an [MTLock] owning value.
func NewMTLock[T any](value T) *MTLock[T] {
	return &MTLock[T]{value: value}
}

// Lock returns a guard for the inner value. The serial guard performs no
// synchronization and its Unlock is a no-op.
func (l *MTLock[T]) Lock() *MTGuard[T] {
	return &MTGuard[T]{value: &l.value}
}

// With invokes f on the inner value.
func (l *MTLock[T]) With(f func(*T)) {
	f(&l.value)
}

// Get returns the inner value without synchronization.
func (l *MTLock[T]) Get() *T {
	return &l.value
}

// IntoInner returns the inner value.
func (l *MTLock[T]) IntoInner() T {
	return l.value
}

// MTGuard is a scoped accessor for the value owned by a [MTLock]. In serial
// builds it is a plain view.
type MTGuard[T any] struct {
	value *T
}

// Get returns the guarded value.
func (g *MTGuard[T]) Get() *T {
	return g.value
}

// Unlock releases the guard.
func (g *MTGuard[T]) Unlock() {}

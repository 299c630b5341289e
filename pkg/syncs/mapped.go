package syncs

// The Map*Guard functions project a guard onto a component of its value,
// e.g. a struct field or slice element. The mapped guard borrows the
// parent's acquisition: releasing it releases the parent, and the parent
// must not be released separately. They are package functions because Go
// methods cannot introduce the projected type parameter U.

// MapReadGuard projects g onto the component selected by f. Ownership of
// the acquisition moves to the returned guard.
func MapReadGuard[T, U any](g *ReadGuard[T], f func(*T) *U) *MappedReadGuard[U] {
	return &MappedReadGuard[U]{value: f(g.Get()), unlock: g.Unlock}
}

// MapWriteGuard projects g onto the component selected by f. Ownership of
// the acquisition moves to the returned guard.
func MapWriteGuard[T, U any](g *WriteGuard[T], f func(*T) *U) *MappedWriteGuard[U] {
	return &MappedWriteGuard[U]{value: f(g.Get()), unlock: g.Unlock}
}

// MapLockGuard projects g onto the component selected by f. Ownership of
// the acquisition moves to the returned guard.
func MapLockGuard[T, U any](g *LockGuard[T], f func(*T) *U) *MappedLockGuard[U] {
	return &MappedLockGuard[U]{value: f(g.Get()), unlock: g.Unlock}
}

// MappedReadGuard is a scoped shared accessor projected onto a component of
// another guard's value. Holders must treat the value as read-only.
type MappedReadGuard[U any] struct {
	value    *U
	unlock   func()
	released bool
}

// Get returns the projected value. The value must not be mutated through a
// read guard.
func (g *MappedReadGuard[U]) Get() *U {
	if g.released {
		panic("syncs: use of released mapped read guard")
	}

	return g.value
}

// Unlock releases the underlying acquisition. It panics if called twice.
func (g *MappedReadGuard[U]) Unlock() {
	if g.released {
		panic("syncs: unlock of released mapped read guard")
	}

	g.released = true
	g.unlock()
}

// MappedWriteGuard is a scoped exclusive accessor projected onto a
// component of another guard's value.
type MappedWriteGuard[U any] struct {
	value    *U
	unlock   func()
	released bool
}

// Get returns the projected value.
func (g *MappedWriteGuard[U]) Get() *U {
	if g.released {
		panic("syncs: use of released mapped write guard")
	}

	return g.value
}

// Unlock releases the underlying acquisition. It panics if called twice.
func (g *MappedWriteGuard[U]) Unlock() {
	if g.released {
		panic("syncs: unlock of released mapped write guard")
	}

	g.released = true
	g.unlock()
}

// MappedLockGuard is a scoped exclusive accessor projected onto a component
// of another guard's value.
type MappedLockGuard[U any] struct {
	value    *U
	unlock   func()
	released bool
}

// Get returns the projected value.
func (g *MappedLockGuard[U]) Get() *U {
	if g.released {
		panic("syncs: use of released mapped lock guard")
	}

	return g.value
}

// Unlock releases the underlying acquisition. It panics if called twice.
func (g *MappedLockGuard[U]) Unlock() {
	if g.released {
		panic("syncs: unlock of released mapped lock guard")
	}

	g.released = true
	g.unlock()
}

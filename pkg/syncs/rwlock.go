package syncs

// RwLock is a read/write-exclusion cell owning a single value of type T. Any
// number of read guards may coexist; a write guard excludes everything else.
//
// Fairness between contending readers and writers is whatever the backing
// primitive provides; this type adds no policy of its own.
type RwLock[T any] struct {
	mu    innerRWMutex
	value T
}

// NewRwLock creates a [RwLock] owning value.
func NewRwLock[T any](value T) *RwLock[T] {
	return &RwLock[T]{value: value}
}

// Read acquires shared access and returns a read guard for the inner value.
func (l *RwLock[T]) Read() *ReadGuard[T] {
	l.mu.RLock()

	return &ReadGuard[T]{lock: l}
}

// TryRead attempts to acquire shared access without waiting. It returns
// false if a write guard is outstanding.
func (l *RwLock[T]) TryRead() (*ReadGuard[T], bool) {
	if !l.mu.TryRLock() {
		return nil, false
	}

	return &ReadGuard[T]{lock: l}, true
}

// Write acquires exclusive access and returns a write guard for the inner
// value.
func (l *RwLock[T]) Write() *WriteGuard[T] {
	l.mu.Lock()

	return &WriteGuard[T]{lock: l}
}

// TryWrite attempts to acquire exclusive access without waiting. It returns
// false if any guard is outstanding.
func (l *RwLock[T]) TryWrite() (*WriteGuard[T], bool) {
	if !l.mu.TryLock() {
		return nil, false
	}

	return &WriteGuard[T]{lock: l}, true
}

// WithRead acquires shared access, invokes f, and releases on every exit
// path. f must not mutate the value it is handed.
func (l *RwLock[T]) WithRead(f func(*T)) {
	g := l.Read()
	defer g.Unlock()

	f(g.Get())
}

// WithWrite acquires exclusive access, invokes f, and releases on every exit
// path.
func (l *RwLock[T]) WithWrite(f func(*T)) {
	g := l.Write()
	defer g.Unlock()

	f(g.Get())
}

// Get returns the inner value without synchronization. It must only be used
// while the caller has exclusive ownership of the RwLock itself.
func (l *RwLock[T]) Get() *T {
	return &l.value
}

// IntoInner returns the inner value, bypassing synchronization. It requires
// exclusive ownership of the cell.
func (l *RwLock[T]) IntoInner() T {
	return l.value
}

// Clone produces an independent RwLock holding a shallow copy of the inner
// value, taken under a fresh read acquisition of the source.
func (l *RwLock[T]) Clone() *RwLock[T] {
	g := l.Read()
	defer g.Unlock()

	return NewRwLock(*g.Get())
}

// WithReadLock acquires shared access on l, invokes f, releases on every
// exit path, and returns f's result. f must not mutate the value.
func WithReadLock[T, R any](l *RwLock[T], f func(*T) R) R {
	g := l.Read()
	defer g.Unlock()

	return f(g.Get())
}

// WithWriteLock acquires exclusive access on l, invokes f, releases on every
// exit path, and returns f's result.
func WithWriteLock[T, R any](l *RwLock[T], f func(*T) R) R {
	g := l.Write()
	defer g.Unlock()

	return f(g.Get())
}

// ReadGuard is a scoped shared accessor for the value owned by a [RwLock].
// Holders must treat the value as read-only.
type ReadGuard[T any] struct {
	lock     *RwLock[T]
	released bool
}

// Get returns the guarded value. The value must not be mutated through a
// read guard.
func (g *ReadGuard[T]) Get() *T {
	if g.released {
		panic("syncs: use of released read guard")
	}

	return &g.lock.value
}

// Unlock releases the guard. It panics if called twice.
func (g *ReadGuard[T]) Unlock() {
	if g.released {
		panic("syncs: unlock of released read guard")
	}

	g.released = true
	g.lock.mu.RUnlock()
}

// WriteGuard is a scoped exclusive accessor for the value owned by a
// [RwLock].
type WriteGuard[T any] struct {
	lock     *RwLock[T]
	released bool
}

// Get returns the guarded value.
func (g *WriteGuard[T]) Get() *T {
	if g.released {
		panic("syncs: use of released write guard")
	}

	return &g.lock.value
}

// Unlock releases the guard. It panics if called twice.
func (g *WriteGuard[T]) Unlock() {
	if g.released {
		panic("syncs: unlock of released write guard")
	}

	g.released = true
	g.lock.mu.Unlock()
}

package syncs

import "fmt"

// Once is a cell whose inner value can be written once and is read-only
// afterwards. The empty-to-set transition is irreversible and, in parallel
// builds, synchronized across threads.
//
// Two initialization protocols are offered. [Once.InitLocking] holds the
// cell's lock for the whole check-and-set, so the initializer runs at most
// once globally. [Once.InitNonlocking] lets concurrent callers race their
// initializers and installs exactly one result, handing losers their own
// computation back for disposal. Racing is worthwhile only when the
// initializer is cheap compared to the blocking it avoids.
type Once[T any] struct {
	state Lock[onceSlot[T]]
}

type onceSlot[T any] struct {
	value T
	set   bool
}

// NewOnce creates an empty [Once]. The zero value is also usable.
func NewOnce[T any]() *Once[T] {
	return &Once[T]{}
}

// TrySet transitions the cell from empty to set and returns true. If the
// cell was already set it is left untouched and TrySet returns false, the
// caller keeping its rejected value.
func (o *Once[T]) TrySet(value T) bool {
	g := o.state.Lock()
	defer g.Unlock()

	s := g.Get()
	if s.set {
		return false
	}

	s.value = value
	s.set = true

	return true
}

// Set transitions the cell from empty to set. It panics if the cell was
// already set.
func (o *Once[T]) Set(value T) {
	if !o.TrySet(value) {
		panic("syncs: once cell already set")
	}
}

// InitLocking initializes the cell with f while holding the cell's lock for
// the whole check-and-set, guaranteeing f runs at most once globally even
// under concurrent callers. It reports whether this call performed the
// initialization.
func (o *Once[T]) InitLocking(f func() T) bool {
	g := o.state.Lock()
	defer g.Unlock()

	s := g.Get()
	if s.set {
		return false
	}

	s.value = f()
	s.set = true

	return true
}

// InitNonlocking initializes the cell with f without holding the lock while
// f runs, so concurrent callers may each compute a value speculatively. Only
// one result is installed. If this caller's result lost the race, it is
// returned with lost == true so the caller can discard or reconcile it.
// If this caller installed its result, or the cell was already set and f was
// never invoked, lost is false.
func (o *Once[T]) InitNonlocking(f func() T) (T, bool) {
	var zero T

	if _, ok := o.TryGet(); ok {
		return zero, false
	}

	v := f()
	if o.TrySet(v) {
		return zero, false
	}

	return v, true
}

// TryGet returns the inner value, or false if the cell is still empty.
func (o *Once[T]) TryGet() (T, bool) {
	g := o.state.Lock()
	defer g.Unlock()

	s := g.Get()

	return s.value, s.set
}

// Get returns the inner value. It panics if the cell is still empty.
func (o *Once[T]) Get() T {
	v, ok := o.TryGet()
	if !ok {
		panic("syncs: once cell is empty")
	}

	return v
}

// IntoInner returns the inner value and whether it was ever set. It requires
// exclusive ownership of the cell.
func (o *Once[T]) IntoInner() (T, bool) {
	s := o.state.IntoInner()

	return s.value, s.set
}

// TrySetSame behaves like [Once.TrySet], except that when the cell is
// already set it additionally requires the existing value to equal the
// rejected one. A mismatch is a programming error and panics.
func TrySetSame[T comparable](o *Once[T], value T) bool {
	g := o.state.Lock()
	defer g.Unlock()

	s := g.Get()
	if s.set {
		if s.value != value {
			panic(fmt.Sprintf("syncs: once cell already set to %v, refusing %v", s.value, value))
		}

		return false
	}

	s.value = value
	s.set = true

	return true
}

// InitNonlockingSame behaves like [Once.InitNonlocking], except that a
// racing result which lost must equal the installed value. A mismatch is a
// programming error and panics.
func InitNonlockingSame[T comparable](o *Once[T], f func() T) (T, bool) {
	var zero T

	if _, ok := o.TryGet(); ok {
		return zero, false
	}

	v := f()
	if TrySetSame(o, v) {
		return zero, false
	}

	return v, true
}

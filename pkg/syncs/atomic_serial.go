//go:build !parallel

package syncs

// The serial atomic cells reproduce the method sets of the sync/atomic
// types with plain single-threaded semantics, so call sites do not change
// between modes.

// AtomicBool is a boolean cell with the sync/atomic Bool method set.
type AtomicBool struct {
	v bool
}

// Load returns the value.
func (a *AtomicBool) Load() bool { return a.v }

// Store sets the value.
func (a *AtomicBool) Store(v bool) { a.v = v }

// Swap sets the value and returns the previous one.
func (a *AtomicBool) Swap(v bool) bool {
	old := a.v
	a.v = v

	return old
}

// CompareAndSwap sets the value to new and returns true if it equals old.
func (a *AtomicBool) CompareAndSwap(old, new bool) bool {
	if a.v != old {
		return false
	}

	a.v = new

	return true
}

// AtomicInt64 is an int64 cell with the sync/atomic Int64 method set.
type AtomicInt64 struct {
	v int64
}

// Load returns the value.
func (a *AtomicInt64) Load() int64 { return a.v }

// Store sets the value.
func (a *AtomicInt64) Store(v int64) { a.v = v }

// Swap sets the value and returns the previous one.
func (a *AtomicInt64) Swap(v int64) int64 {
	old := a.v
	a.v = v

	return old
}

// CompareAndSwap sets the value to new and returns true if it equals old.
func (a *AtomicInt64) CompareAndSwap(old, new int64) bool {
	if a.v != old {
		return false
	}

	a.v = new

	return true
}

// Add adds delta and returns the new value.
func (a *AtomicInt64) Add(delta int64) int64 {
	a.v += delta

	return a.v
}

// AtomicUint32 is a uint32 cell with the sync/atomic Uint32 method set.
type AtomicUint32 struct {
	v uint32
}

// Load returns the value.
func (a *AtomicUint32) Load() uint32 { return a.v }

// Store sets the value.
func (a *AtomicUint32) Store(v uint32) { a.v = v }

// Swap sets the value and returns the previous one.
func (a *AtomicUint32) Swap(v uint32) uint32 {
	old := a.v
	a.v = v

	return old
}

// CompareAndSwap sets the value to new and returns true if it equals old.
func (a *AtomicUint32) CompareAndSwap(old, new uint32) bool {
	if a.v != old {
		return false
	}

	a.v = new

	return true
}

// Add adds delta and returns the new value.
func (a *AtomicUint32) Add(delta uint32) uint32 {
	a.v += delta

	return a.v
}

// AtomicUint64 is a uint64 cell with the sync/atomic Uint64 method set.
type AtomicUint64 struct {
	v uint64
}

// Load returns the value.
func (a *AtomicUint64) Load() uint64 { return a.v }

// Store sets the value.
func (a *AtomicUint64) Store(v uint64) { a.v = v }

// Swap sets the value and returns the previous one.
func (a *AtomicUint64) Swap(v uint64) uint64 {
	old := a.v
	a.v = v

	return old
}

// CompareAndSwap sets the value to new and returns true if it equals old.
func (a *AtomicUint64) CompareAndSwap(old, new uint64) bool {
	if a.v != old {
		return false
	}

	a.v = new

	return true
}

// Add adds delta and returns the new value.
func (a *AtomicUint64) Add(delta uint64) uint64 {
	a.v += delta

	return a.v
}

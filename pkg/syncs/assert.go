package syncs

import "fmt"

// Compile-time checks that the per-mode backends expose the same surface.
var (
	_ KeyLocker = (*KeyLock)(nil)
	_ interface {
		Lock()
		TryLock() bool
		Unlock()
	} = (*innerMutex)(nil)
)

// AssertParallel panics unless the binary was built with the parallel
// backend. Use it at the entry points of code whose correctness depends on
// a worker pool actually existing.
func AssertParallel() {
	if !IsParallel {
		panic("syncs: operation requires the parallel backend")
	}
}

// AssertSerial panics unless the binary was built with the serial backend.
// Use it at the entry points of code that relies on single-threaded
// exclusivity, e.g. unchecked [MTLock] access.
func AssertSerial() {
	if IsParallel {
		panic("syncs: operation requires the serial backend")
	}
}

// InsertSame inserts value under key. If the key is already present, the
// existing value must be equal to the new one; a mismatch is a programming
// error and panics.
func InsertSame[K, V comparable](m map[K]V, key K, value V) {
	old, ok := m[key]
	if ok {
		if old != value {
			panic(fmt.Sprintf("syncs: key %v already mapped to %v, refusing %v", key, old, value))
		}

		return
	}

	m[key] = value
}

//go:build !parallel

package syncs

// DeadlockEnabled is true if the deadlock detector is enabled.
const DeadlockEnabled = false

// innerMutex is the serial stand-in for a mutex. With a single logical
// thread, a conflicting acquisition can never be resolved by waiting, so it
// is reported immediately instead.
type innerMutex struct {
	held bool
}

func (m *innerMutex) Lock() {
	if m.held {
		panic("syncs: lock already held")
	}

	m.held = true
}

func (m *innerMutex) TryLock() bool {
	if m.held {
		return false
	}

	m.held = true

	return true
}

func (m *innerMutex) Unlock() {
	if !m.held {
		panic("syncs: unlock of unheld lock")
	}

	m.held = false
}

// innerRWMutex is the serial stand-in for a read/write mutex. It tracks
// outstanding accessors the way a borrow checker would: any number of
// readers, or one writer, never both.
type innerRWMutex struct {
	readers int
	writer  bool
}

func (m *innerRWMutex) RLock() {
	if m.writer {
		panic("syncs: read lock requested while write lock held")
	}

	m.readers++
}

func (m *innerRWMutex) TryRLock() bool {
	if m.writer {
		return false
	}

	m.readers++

	return true
}

func (m *innerRWMutex) RUnlock() {
	if m.readers == 0 {
		panic("syncs: read unlock without read lock")
	}

	m.readers--
}

func (m *innerRWMutex) Lock() {
	if m.writer || m.readers > 0 {
		panic("syncs: write lock requested while lock held")
	}

	m.writer = true
}

func (m *innerRWMutex) TryLock() bool {
	if m.writer || m.readers > 0 {
		return false
	}

	m.writer = true

	return true
}

func (m *innerRWMutex) Unlock() {
	if !m.writer {
		panic("syncs: write unlock without write lock")
	}

	m.writer = false
}

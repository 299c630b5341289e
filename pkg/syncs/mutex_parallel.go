//go:build parallel && !deadlock

package syncs

import "sync"

// DeadlockEnabled is true if the deadlock detector is enabled.
const DeadlockEnabled = false

type (
	innerMutex   = sync.Mutex
	innerRWMutex = sync.RWMutex
)

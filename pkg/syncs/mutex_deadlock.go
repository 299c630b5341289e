//go:build parallel && deadlock

package syncs

import (
	"time"

	deadlock "github.com/sasha-s/go-deadlock"
)

// DeadlockEnabled is true if the deadlock detector is enabled.
const DeadlockEnabled = true

func init() {
	deadlock.Opts.DeadlockTimeout = 30 * time.Second
}

type (
	innerMutex   = deadlock.Mutex
	innerRWMutex = deadlock.RWMutex
)

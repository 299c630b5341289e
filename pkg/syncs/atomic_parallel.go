//go:build parallel

package syncs

import "sync/atomic"

// In parallel builds the atomic cells are the hardware-backed types from
// sync/atomic, aliased so call sites are identical across modes.
type (
	AtomicBool   = atomic.Bool
	AtomicInt64  = atomic.Int64
	AtomicUint32 = atomic.Uint32
	AtomicUint64 = atomic.Uint64
)

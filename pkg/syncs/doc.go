// Package syncs provides synchronization primitives whose backing
// implementation is selected at build time.
//
// Every type in this package exists in two variants with an identical API. In
// the default (serial) build, exactly one logical thread of control is
// assumed, and the primitives degenerate to unsynchronized containers that
// fail fast on conflicting reentry. With the "parallel" build tag, the same
// primitives bind to real mutual exclusion, and code written against this
// package runs unchanged on a worker pool. No primitive branches on the mode
// at run time; [IsParallel] reports which variant was compiled in.
//
// Adding the "deadlock" tag on top of "parallel" rebinds the inner locks to
// a deadlock-detecting implementation. This is a debug aid; see
// [DeadlockEnabled].
package syncs

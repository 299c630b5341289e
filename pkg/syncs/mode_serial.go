//go:build !parallel

package syncs

// IsParallel reports whether this binary was built with the parallel backend.
const IsParallel = false

//go:build parallel

package syncs

import (
	"fmt"

	"github.com/petermattis/goid"
)

// OneThread wraps a value that must only ever be accessed from the
// goroutine that created it. It lets data structures that are not safe to
// share live inside otherwise shareable containers without paying for real
// synchronization; misuse is caught immediately rather than surfacing as a
// data race.
//
// A cross-goroutine access is an invariant violation and panics. This is a
// debugging safety net, not a security boundary.
type OneThread[T any] struct {
	owner int64
	inner T
}

// NewOneThread creates a [OneThread] owning value, confined to the calling
// goroutine.
func NewOneThread[T any](value T) *OneThread[T] {
	return &OneThread[T]{owner: goid.Get(), inner: value}
}

func (o *OneThread[T]) check() {
	if id := goid.Get(); id != o.owner {
		panic(fmt.Sprintf("syncs: value confined to goroutine %d accessed from goroutine %d", o.owner, id))
	}
}

// Get returns the confined value. It panics if called from any goroutine
// other than the creator.
func (o *OneThread[T]) Get() *T {
	o.check()

	return &o.inner
}

// IntoInner unwraps the confined value, performing the same identity check
// as [OneThread.Get].
func (o *OneThread[T]) IntoInner() T {
	o.check()

	return o.inner
}

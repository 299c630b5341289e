//go:build !parallel

package syncs

// OneThread wraps a value that must only ever be accessed from the
// goroutine that created it. In serial builds only one logical thread
// exists, so no identity is recorded and every access succeeds.
type OneThread[T any] struct {
	inner T
}

// NewOneThread creates a [OneThread] owning value.
func NewOneThread[T any](value T) *OneThread[T] {
	return &OneThread[T]{inner: value}
}

// Get returns the confined value.
func (o *OneThread[T]) Get() *T {
	return &o.inner
}

// IntoInner unwraps the confined value.
func (o *OneThread[T]) IntoInner() T {
	return o.inner
}

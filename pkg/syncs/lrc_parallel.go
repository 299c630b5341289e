//go:build parallel

package syncs

import "sync/atomic"

// Lrc is a reference-counted shared-ownership handle. In parallel builds
// the counts are atomic, so handles may be cloned, downgraded, and dropped
// from any goroutine. The garbage collector still owns the memory; the
// counts exist so that weak handles can observe when the last strong handle
// is released.
type Lrc[T any] struct {
	b        *lrcBox[T]
	released atomic.Bool
}

type lrcBox[T any] struct {
	value  T
	strong atomic.Int64
	weak   atomic.Int64
}

// NewLrc creates a strong handle owning value.
func NewLrc[T any](value T) *Lrc[T] {
	b := &lrcBox[T]{value: value}
	b.strong.Store(1)

	return &Lrc[T]{b: b}
}

// Clone returns a new strong handle to the same value.
func (l *Lrc[T]) Clone() *Lrc[T] {
	l.check()
	l.b.strong.Add(1)

	return &Lrc[T]{b: l.b}
}

// Get returns the shared value.
func (l *Lrc[T]) Get() *T {
	l.check()

	return &l.b.value
}

// Drop releases this strong handle. Once the last strong handle is dropped
// the value is dead: weak handles can no longer upgrade and further use of
// this handle panics.
func (l *Lrc[T]) Drop() {
	if l.released.Swap(true) {
		panic("syncs: use of dropped shared handle")
	}

	l.b.strong.Add(-1)
}

// Downgrade returns a weak handle that does not keep the value alive.
func (l *Lrc[T]) Downgrade() *LrcWeak[T] {
	l.check()
	l.b.weak.Add(1)

	return &LrcWeak[T]{b: l.b}
}

// StrongCount returns the number of live strong handles.
func (l *Lrc[T]) StrongCount() int64 {
	return l.b.strong.Load()
}

// WeakCount returns the number of live weak handles.
func (l *Lrc[T]) WeakCount() int64 {
	return l.b.weak.Load()
}

func (l *Lrc[T]) check() {
	if l.released.Load() {
		panic("syncs: use of dropped shared handle")
	}
}

// LrcWeak is the weak counterpart of [Lrc]. It never keeps the value alive.
type LrcWeak[T any] struct {
	b        *lrcBox[T]
	released atomic.Bool
}

// Upgrade returns a strong handle if at least one strong handle still
// exists, and false otherwise. The increment races against concurrent drops
// and retries until it either wins a slot or observes a dead value.
func (w *LrcWeak[T]) Upgrade() (*Lrc[T], bool) {
	if w.released.Load() {
		panic("syncs: use of dropped weak handle")
	}

	for {
		s := w.b.strong.Load()
		if s == 0 {
			return nil, false
		}

		if w.b.strong.CompareAndSwap(s, s+1) {
			return &Lrc[T]{b: w.b}, true
		}
	}
}

// Drop releases this weak handle. Further use of the handle panics.
func (w *LrcWeak[T]) Drop() {
	if w.released.Swap(true) {
		panic("syncs: use of dropped weak handle")
	}

	w.b.weak.Add(-1)
}

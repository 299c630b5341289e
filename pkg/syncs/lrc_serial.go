//go:build !parallel

package syncs

// Lrc is a reference-counted shared-ownership handle. In serial builds the
// counts are plain integers; the handle is intentionally not safe to share
// across goroutines. The garbage collector still owns the memory; the
// counts exist so that weak handles can observe when the last strong handle
// is released.
type Lrc[T any] struct {
	b        *lrcBox[T]
	released bool
}

type lrcBox[T any] struct {
	value  T
	strong int64
	weak   int64
}

// NewLrc creates a strong handle owning value.
func NewLrc[T any](value T) *Lrc[T] {
	return &Lrc[T]{b: &lrcBox[T]{value: value, strong: 1}}
}

// Clone returns a new strong handle to the same value.
func (l *Lrc[T]) Clone() *Lrc[T] {
	l.check()
	l.b.strong++

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
	l.check()
	l.released = true
	l.b.strong--
}

// Downgrade returns a weak handle that does not keep the value alive.
func (l *Lrc[T]) Downgrade() *LrcWeak[T] {
	l.check()
	l.b.weak++

	return &LrcWeak[T]{b: l.b}
}

// StrongCount returns the number of live strong handles.
func (l *Lrc[T]) StrongCount() int64 {
	return l.b.strong
}

// WeakCount returns the number of live weak handles.
func (l *Lrc[T]) WeakCount() int64 {
	return l.b.weak
}

func (l *Lrc[T]) check() {
	if l.released {
		panic("syncs: use of dropped shared handle")
	}
}

// LrcWeak is the weak counterpart of [Lrc]. It never keeps the value alive.
type LrcWeak[T any] struct {
	b        *lrcBox[T]
	released bool
}

// Upgrade returns a strong handle if at least one strong handle still
// exists, and false otherwise.
func (w *LrcWeak[T]) Upgrade() (*Lrc[T], bool) {
	if w.released {
		panic("syncs: use of dropped weak handle")
	}

	if w.b.strong == 0 {
		return nil, false
	}

	w.b.strong++

	return &Lrc[T]{b: w.b}, true
}

// Drop releases this weak handle. Further use of the handle panics.
func (w *LrcWeak[T]) Drop() {
	if w.released {
		panic("syncs: use of dropped weak handle")
	}

	w.released = true
	w.b.weak--
}

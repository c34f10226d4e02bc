package ownership

import "sync/atomic"

// Rc is a reference-counted, read-only handle to a shared value.
// Each handle is released independently; the value is considered dropped
// once every handle has been released.
type Rc[T any] struct {
	box      *box[T]
	released atomic.Bool
}

type box[T any] struct {
	value     T
	count     atomic.Int64
	onRelease func(T)
}

// Option configures a new Rc.
type Option[T any] func(*box[T])

// WithRelease registers a hook called with the value after the last handle
// is released. A nil hook is ignored.
func WithRelease[T any](fn func(T)) Option[T] {
	return func(b *box[T]) {
		if fn != nil {
			b.onRelease = fn
		}
	}
}

// NewRc wraps v in a handle with a count of one.
func NewRc[T any](v T, opts ...Option[T]) *Rc[T] {
	b := &box[T]{value: v}
	for _, opt := range opts {
		opt(b)
	}
	b.count.Store(1)
	return &Rc[T]{box: b}
}

// Clone returns a new handle to the same value and increments the count.
// Panics with ErrReleased if r has been released, including when a
// concurrent Release dropped the last handle first.
func (r *Rc[T]) Clone() *Rc[T] {
	for {
		if r.released.Load() {
			panic(ErrReleased)
		}
		n := r.box.count.Load()
		if n == 0 {
			panic(ErrReleased)
		}
		if r.box.count.CompareAndSwap(n, n+1) {
			return &Rc[T]{box: r.box}
		}
	}
}

// Get returns the shared value, or ErrReleased if r has been released.
func (r *Rc[T]) Get() (T, error) {
	if r.released.Load() {
		var zero T
		return zero, ErrReleased
	}
	return r.box.value, nil
}

// Value returns the shared value. Panics with ErrReleased if r has been released.
func (r *Rc[T]) Value() T {
	v, err := r.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// Count returns the number of live handles to the value.
func (r *Rc[T]) Count() int64 {
	return r.box.count.Load()
}

// Release gives up this handle. Calling it again on the same handle is a no-op.
// The release hook runs when the count reaches zero.
func (r *Rc[T]) Release() {
	if !r.released.CompareAndSwap(false, true) {
		return
	}
	if r.box.count.Add(-1) == 0 && r.box.onRelease != nil {
		r.box.onRelease(r.box.value)
	}
}

// SameValue reports whether a and b share one value, regardless of whether
// either handle has been released.
func SameValue[T any](a, b *Rc[T]) bool {
	return a.box == b.box
}

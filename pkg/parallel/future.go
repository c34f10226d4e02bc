package parallel

import (
	"context"
	"sync"
	"time"
)

// Future is the eventual result of a computation started by Spawn.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Await blocks until the computation completes and returns its result.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout waits at most timeout for the computation.
// Returns ErrTimeout if it is still running; the computation keeps going.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero U
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the computation has finished, without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Spawn runs fn in a new goroutine and returns its Future.
// If ctx is already done, fn is not called and the Future completes with ctx.Err().
// A panic in fn completes the Future with ErrPanic.
func Spawn[U any](ctx context.Context, fn func(context.Context) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		// Skip the work entirely when the caller has already given up.
		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}

		f.result, f.err = call(ctx, fn)
	}()

	return f
}

// Join runs fa and fb concurrently and returns both results.
// The first error from either side cancels the context passed to the other
// and is returned once both sides have finished. Panics on either side are
// returned as ErrPanic.
func Join[A, B any](
	ctx context.Context,
	fa func(context.Context) (A, error),
	fb func(context.Context) (B, error),
) (A, B, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	fut := Spawn(ctx, func(ctx context.Context) (B, error) {
		b, err := fb(ctx)
		if err != nil {
			fail(err)
		}
		return b, err
	})

	a, err := call(ctx, fa)
	if err != nil {
		fail(err)
	}
	b, err := fut.Await()
	if err != nil {
		fail(err)
	}

	if firstErr != nil {
		var zeroA A
		var zeroB B
		return zeroA, zeroB, firstErr
	}
	return a, b, nil
}

package parallel

import (
	"context"
	"fmt"
)

// call runs fn and returns a panic raised by it as an ErrPanic error, so a
// panicking task fails its caller instead of crashing the process.
func call[U any](ctx context.Context, fn func(context.Context) (U, error)) (res U, err error) {
	defer func() {
		if p := recover(); p != nil {
			var zero U
			res, err = zero, fmt.Errorf("%w: %v", ErrPanic, p)
		}
	}()
	return fn(ctx)
}

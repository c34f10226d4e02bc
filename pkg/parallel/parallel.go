package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/langkit/pkg/convert"
)

// Map applies fn to every element of in concurrently and returns the
// results in input order. A panic in fn is returned as ErrPanic.
func Map[T, U any](ctx context.Context, in []T, fn func(context.Context, T) (U, error), opts ...Option) ([]U, error) {
	cfg := newConfig(opts...)
	out := make([]U, len(in))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.limit)

	for i, v := range in {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := call(gctx, func(ctx context.Context) (U, error) {
				return fn(ctx, v)
			})
			if err != nil {
				return err
			}
			out[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// FlatMap applies fn to every element concurrently and concatenates the
// returned slices in input order.
func FlatMap[T, U any](ctx context.Context, in []T, fn func(context.Context, T) ([]U, error), opts ...Option) ([]U, error) {
	parts, err := Map(ctx, in, fn, opts...)
	if err != nil {
		return nil, err
	}

	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]U, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out, nil
}

// Filter evaluates keep concurrently and returns the kept elements in input order.
func Filter[T any](ctx context.Context, in []T, keep func(T) bool, opts ...Option) ([]T, error) {
	matched, _, err := Partition(ctx, in, keep, opts...)
	return matched, err
}

// Partition evaluates pred concurrently and splits in into the elements that
// satisfy it and those that do not. Both slices keep input order.
func Partition[T any](ctx context.Context, in []T, pred func(T) bool, opts ...Option) (matched, rest []T, err error) {
	flags, err := Map(ctx, in, func(_ context.Context, v T) (bool, error) {
		return pred(v), nil
	}, opts...)
	if err != nil {
		return nil, nil, err
	}

	for i, ok := range flags {
		if ok {
			matched = append(matched, in[i])
		} else {
			rest = append(rest, in[i])
		}
	}
	return matched, rest, nil
}

// Sum adds the elements of in, summing one chunk per goroutine.
func Sum[T convert.Number](ctx context.Context, in []T, opts ...Option) (T, error) {
	cfg := newConfig(opts...)

	chunkSize := (len(in) + cfg.limit - 1) / cfg.limit
	if chunkSize == 0 {
		return 0, nil
	}
	var chunks [][]T
	for start := 0; start < len(in); start += chunkSize {
		chunks = append(chunks, in[start:min(start+chunkSize, len(in))])
	}

	partials, err := Map(ctx, chunks, func(_ context.Context, c []T) (T, error) {
		var s T
		for _, v := range c {
			s += v
		}
		return s, nil
	}, opts...)
	if err != nil {
		return 0, err
	}

	var total T
	for _, p := range partials {
		total += p
	}
	return total, nil
}

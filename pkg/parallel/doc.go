// Package parallel provides data-parallel helpers over slices and a small
// future type for running two computations at once.
//
// Map, FlatMap, Filter, Partition and Sum split their input across a bounded
// pool of goroutines (an errgroup.Group with a limit) and always return
// results in input order, so callers get the same answer as the sequential
// version, only sooner. The first error returned by a callback cancels the
// context handed to the remaining callbacks and is returned to the caller.
//
// Spawn starts a function in its own goroutine and returns a *Future. Join
// runs two functions concurrently and waits for both.
//
// # Usage
//
//	import "github.com/dmitrymomot/langkit/pkg/parallel"
//
//	flat, err := parallel.FlatMap(ctx, [][]int{{1, 2}, {3, 4}},
//	    func(_ context.Context, pair []int) ([]int, error) { return pair, nil },
//	)
//
//	a, b, err := parallel.Join(ctx,
//	    func(ctx context.Context) (int, error) { return count(ctx) },
//	    func(ctx context.Context) (string, error) { return name(ctx) },
//	)
//
// # Configuration
//
// WithLimit caps the number of goroutines used by a single call. The default
// is runtime.GOMAXPROCS(0).
//
// # Error Handling
//
// Callback errors are returned unchanged. AwaitWithTimeout returns
// ErrTimeout. Passing a non-positive limit to WithLimit panics with
// ErrInvalidLimit, as misconfiguration should fail at startup.
package parallel

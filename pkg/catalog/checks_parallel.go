package catalog

import (
	"context"

	"github.com/dmitrymomot/langkit/pkg/parallel"
)

func parallelChecks() []Check {
	return []Check{
		{Topic: "parallel", Name: "flat_map", Run: func(ctx context.Context) error {
			a := [][2]int{{1, 2}, {3, 4}, {5, 6}, {7, 8}}
			got, err := parallel.FlatMap(ctx, a, func(_ context.Context, pair [2]int) ([]int, error) {
				return pair[:], nil
			})
			if err != nil {
				return err
			}
			return Equal("flattened", []int{1, 2, 3, 4, 5, 6, 7, 8}, got)
		}},
		{Topic: "parallel", Name: "partition", Run: func(ctx context.Context) error {
			squares := []int32{4, 9, 16, 25, 36, 49, 64}
			powersOfTwo, impure, err := parallel.Partition(ctx, squares, func(n int32) bool {
				return n&(n-1) == 0
			})
			if err != nil {
				return err
			}
			return Expect(
				Equal("powers of two", 3, len(powersOfTwo)),
				Equal("impure", 4, len(impure)),
			)
		}},
		{Topic: "parallel", Name: "join", Run: func(ctx context.Context) error {
			sum, count, err := parallel.Join(ctx,
				func(ctx context.Context) (int, error) {
					return parallel.Sum(ctx, []int{1, 2, 3})
				},
				func(context.Context) (int, error) {
					return 3, nil
				},
			)
			if err != nil {
				return err
			}
			return Expect(
				Equal("sum", 6, sum),
				Equal("count", 3, count),
			)
		}},
	}
}

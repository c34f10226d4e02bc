package catalog

import (
	"context"
	"iter"
	"slices"

	"github.com/dmitrymomot/langkit/pkg/collection"
	"github.com/dmitrymomot/langkit/pkg/iterator"
)

func iteratorChecks() []Check {
	return []Check{
		{Topic: "iterator", Name: "filter_by_size", Run: func(context.Context) error {
			shoes := []iterator.Shoe{
				{Size: 10, Style: "sneaker"},
				{Size: 13, Style: "sandal"},
				{Size: 10, Style: "boot"},
			}
			want := []iterator.Shoe{
				{Size: 10, Style: "sneaker"},
				{Size: 10, Style: "boot"},
			}
			return Equal("shoes in size 10", want, iterator.ShoesInSize(shoes, 10))
		}},
		{Topic: "iterator", Name: "next", Run: func(context.Context) error {
			next, stop := iter.Pull(slices.Values([]int{1, 2, 3}))
			defer stop()

			var got []int
			for {
				v, ok := next()
				if !ok {
					break
				}
				got = append(got, v)
			}
			return Equal("pulled values", []int{1, 2, 3}, got)
		}},
		{Topic: "iterator", Name: "sum", Run: func(context.Context) error {
			return Equal("sum of 1, 2, 3", int32(6), iterator.Sum(slices.Values([]int32{1, 2, 3})))
		}},
		{Topic: "iterator", Name: "fold", Run: func(context.Context) error {
			return Equal("triangle(3)", 6, iterator.Triangle(3))
		}},
		{Topic: "collection", Name: "array", Run: func(context.Context) error {
			lazyCaterer := collection.LazyCaterer(6)
			taxonomy := [...]string{"Animalia", "Arthropoda", "Insecta"}
			return Expect(
				Equal("lazy caterer", []uint32{1, 2, 4, 7, 11, 16}, lazyCaterer),
				Equal("lazy caterer[3]", uint32(7), lazyCaterer[3]),
				Equal("taxonomy length", 3, len(taxonomy)),
			)
		}},
		{Topic: "collection", Name: "sort", Run: func(context.Context) error {
			chaos := []int{3, 5, 4, 1, 2}
			return Equal("sorted", []int{1, 2, 3, 4, 5}, collection.Sorted(chaos))
		}},
	}
}

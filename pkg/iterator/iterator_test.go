package iterator_test

import (
	"iter"
	"math"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/langkit/pkg/iterator"
)

func TestPullStepsThroughValues(t *testing.T) {
	t.Parallel()

	next, stop := iter.Pull(slices.Values([]int{1, 2, 3}))
	defer stop()

	for _, want := range []int{1, 2, 3} {
		v, ok := next()
		assert.True(t, ok)
		assert.Equal(t, want, v)
	}
	_, ok := next()
	assert.False(t, ok)
}

func TestSum(t *testing.T) {
	t.Parallel()

	total := iterator.Sum(slices.Values([]int32{1, 2, 3}))
	assert.Equal(t, int32(6), total)

	assert.Equal(t, 0.75, iterator.Sum(slices.Values([]float64{0.25, 0.5})))
	assert.Zero(t, iterator.Sum(slices.Values([]int{})))
}

func TestFoldTriangle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 6, iterator.Triangle(3))
	assert.Equal(t, 5050, iterator.Triangle(100))
	assert.Equal(t, 0, iterator.Triangle(0))
}

func TestRanges(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{1, 2, 3}, iterator.Collect(iterator.Range(1, 4)))
	assert.Nil(t, iterator.Collect(iterator.Range(4, 4)))
	assert.Equal(t, []int{1, 2, 3}, iterator.Collect(iterator.RangeInclusive(1, 3)))
	assert.Nil(t, iterator.Collect(iterator.RangeInclusive(3, 1)))

	// Stops at the top of the type instead of wrapping around.
	top := iterator.Collect(iterator.RangeInclusive[uint8](254, math.MaxUint8))
	assert.Equal(t, []uint8{254, 255}, top)
}

func TestCombinators(t *testing.T) {
	t.Parallel()

	strs := iterator.Collect(iterator.Map(iterator.Range(0, 3), strconv.Itoa))
	assert.Equal(t, []string{"0", "1", "2"}, strs)

	odd := iterator.Filter(iterator.Range(0, 10), func(n int) bool { return n%2 == 1 })
	assert.Equal(t, 5, iterator.Count(odd))

	pairs := iterator.FlatMap(slices.Values([][]int{{1, 2}, {3}, {}}), slices.Values[[]int])
	assert.Equal(t, []int{1, 2, 3}, iterator.Collect(pairs))

	small, big := iterator.Partition(iterator.Range(0, 6), func(n int) bool { return n < 2 })
	assert.Equal(t, []int{0, 1}, small)
	assert.Equal(t, []int{2, 3, 4, 5}, big)
}

func TestEarlyStop(t *testing.T) {
	t.Parallel()

	var seen []int
	src := iterator.Map(iterator.Range(0, 100), func(n int) int {
		seen = append(seen, n)
		return n
	})

	for v := range iterator.Filter(src, func(n int) bool { return n > 1 }) {
		if v == 3 {
			break
		}
	}
	assert.Equal(t, []int{0, 1, 2, 3}, seen)
}

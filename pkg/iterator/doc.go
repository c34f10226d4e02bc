// Package iterator provides combinators over Go range-over-func sequences
// (iter.Seq).
//
// Sequences are lazy: nothing runs until a terminal operation such as Fold,
// Sum, Count or Collect ranges over them, and every combinator stops its
// source as soon as the consumer stops.
//
// # Usage
//
//	import "github.com/dmitrymomot/langkit/pkg/iterator"
//
//	evens := iterator.Filter(iterator.Range(0, 10), func(n int) bool { return n%2 == 0 })
//	total := iterator.Sum(evens) // 20
//
//	iterator.Triangle(3) // 6
//
// Step-by-step consumption uses iter.Pull from the standard library:
//
//	next, stop := iter.Pull(slices.Values([]int{1, 2, 3}))
//	defer stop()
//	v, ok := next() // 1, true
package iterator

package iterator

import (
	"iter"

	"github.com/dmitrymomot/langkit/pkg/convert"
)

// Range yields start, start+1, ..., end-1.
func Range[T convert.Integer](start, end T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := start; i < end; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// RangeInclusive yields start, start+1, ..., end. It is safe at the upper
// bound of T.
func RangeInclusive[T convert.Integer](start, end T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if start > end {
			return
		}
		for i := start; ; i++ {
			if !yield(i) || i == end {
				return
			}
		}
	}
}

// Fold combines the elements of seq left to right starting from init.
func Fold[T, A any](seq iter.Seq[T], init A, fn func(acc A, item T) A) A {
	acc := init
	for v := range seq {
		acc = fn(acc, v)
	}
	return acc
}

// Sum adds all elements of seq.
func Sum[T convert.Number](seq iter.Seq[T]) T {
	return Fold(seq, T(0), func(acc, v T) T { return acc + v })
}

// Count returns the number of elements in seq.
func Count[T any](seq iter.Seq[T]) int {
	return Fold(seq, 0, func(n int, _ T) int { return n + 1 })
}

// Map yields fn(v) for every element of seq.
func Map[T, U any](seq iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Filter yields the elements of seq for which keep returns true, in order.
func Filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// FlatMap yields every element of every sequence produced by fn.
func FlatMap[T, U any](seq iter.Seq[T], fn func(T) iter.Seq[U]) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			for u := range fn(v) {
				if !yield(u) {
					return
				}
			}
		}
	}
}

// Partition splits seq into elements that satisfy pred and those that do not.
// Both slices keep the original order.
func Partition[T any](seq iter.Seq[T], pred func(T) bool) (matched, rest []T) {
	for v := range seq {
		if pred(v) {
			matched = append(matched, v)
		} else {
			rest = append(rest, v)
		}
	}
	return matched, rest
}

// Collect gathers seq into a slice. It returns nil for an empty sequence.
func Collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}
	return out
}

// Triangle returns 1 + 2 + ... + n.
func Triangle(n int) int {
	return Fold(RangeInclusive(1, n), 0, func(sum, item int) int { return sum + item })
}

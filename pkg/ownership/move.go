package ownership

import "fmt"

// Pop removes and returns the last element of *s.
// It returns false when the slice is empty.
func Pop[T any](s *[]T) (T, bool) {
	var zero T
	n := len(*s)
	if n == 0 {
		return zero, false
	}
	v := (*s)[n-1]
	(*s)[n-1] = zero
	*s = (*s)[:n-1]
	return v, true
}

// SwapRemove removes the element at index i and returns it.
// The last element takes its place, so the operation is O(1) and does not
// preserve order.
func SwapRemove[T any](s *[]T, i int) (T, error) {
	var zero T
	n := len(*s)
	if i < 0 || i >= n {
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, n)
	}
	v := (*s)[i]
	(*s)[i] = (*s)[n-1]
	(*s)[n-1] = zero
	*s = (*s)[:n-1]
	return v, nil
}

// Replace stores v in *dst and returns the previous value.
func Replace[T any](dst *T, v T) T {
	old := *dst
	*dst = v
	return old
}

// Take returns *dst and leaves the zero value behind.
func Take[T any](dst *T) T {
	var zero T
	return Replace(dst, zero)
}

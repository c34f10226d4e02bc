package ownership

import "cmp"

// DerefEqual reports whether a and b point at equal values.
// Two nil pointers are equal; a nil and a non-nil pointer are not.
func DerefEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// DerefCompare compares the values a and b point at. nil sorts first.
func DerefCompare[T cmp.Ordered](a, b *T) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return cmp.Compare(*a, *b)
}

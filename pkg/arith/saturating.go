package arith

import "github.com/dmitrymomot/langkit/pkg/convert"

// SaturatingAdd returns a+b clamped to the bounds of T.
func SaturatingAdd[T convert.Integer](a, b T) T {
	if r, ok := CheckedAdd(a, b); ok {
		return r
	}
	if b < 0 {
		return convert.MinOf[T]()
	}
	return convert.MaxOf[T]()
}

// SaturatingSub returns a-b clamped to the bounds of T.
func SaturatingSub[T convert.Integer](a, b T) T {
	if r, ok := CheckedSub(a, b); ok {
		return r
	}
	if b > 0 {
		return convert.MinOf[T]()
	}
	return convert.MaxOf[T]()
}

// SaturatingMul returns a*b clamped to the bounds of T.
func SaturatingMul[T convert.Integer](a, b T) T {
	if r, ok := CheckedMul(a, b); ok {
		return r
	}
	if (a < 0) != (b < 0) {
		return convert.MinOf[T]()
	}
	return convert.MaxOf[T]()
}

package floats

import (
	"math"
	"unsafe"

	"github.com/dmitrymomot/langkit/pkg/convert"
)

// IsSignNegative reports whether the sign bit of f is set.
// It is true for -0, -Inf and negative NaN payloads.
func IsSignNegative[T convert.Float](f T) bool {
	return math.Signbit(float64(f))
}

// IsSignPositive reports whether the sign bit of f is clear.
func IsSignPositive[T convert.Float](f T) bool {
	return !IsSignNegative(f)
}

// Highest returns the largest finite value of T.
func Highest[T convert.Float]() T {
	highest := math.MaxFloat64
	if is32[T]() {
		highest = math.MaxFloat32
	}
	return T(highest)
}

// Lowest returns the most negative finite value of T. It is always -Highest.
func Lowest[T convert.Float]() T {
	return -Highest[T]()
}

// Sqrt returns the square root of f rounded to the width of T.
func Sqrt[T convert.Float](f T) T {
	return T(math.Sqrt(float64(f)))
}

// Floor returns the greatest integer value less than or equal to f.
func Floor[T convert.Float](f T) T {
	return T(math.Floor(float64(f)))
}

func is32[T convert.Float]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 4
}

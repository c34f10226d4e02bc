package floats

import (
	"math"

	"github.com/dmitrymomot/langkit/pkg/convert"
)

// Category is the IEEE 754 class of a floating-point value.
type Category int

const (
	NaN Category = iota
	Infinite
	Zero
	Subnormal
	Normal
)

func (c Category) String() string {
	switch c {
	case NaN:
		return "nan"
	case Infinite:
		return "infinite"
	case Zero:
		return "zero"
	case Subnormal:
		return "subnormal"
	case Normal:
		return "normal"
	default:
		return "unknown"
	}
}

// Classify returns the category of f for the width of T.
func Classify[T convert.Float](f T) Category {
	x := float64(f)
	switch {
	case math.IsNaN(x):
		return NaN
	case math.IsInf(x, 0):
		return Infinite
	case x == 0:
		return Zero
	}

	smallest := 0x1p-1022
	if is32[T]() {
		smallest = 0x1p-126
	}
	if math.Abs(x) < smallest {
		return Subnormal
	}
	return Normal
}

// TotalCompare orders floats totally: -NaN < -Inf < ... < -0 < +0 < ... < +Inf < +NaN.
// It returns -1, 0 or +1.
func TotalCompare[T convert.Float](a, b T) int {
	ka, kb := totalKey(a), totalKey(b)
	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return 1
	default:
		return 0
	}
}

// totalKey maps the float bit pattern onto an int64 whose natural order is
// the IEEE 754 totalOrder predicate.
func totalKey[T convert.Float](f T) int64 {
	var bits int64
	if is32[T]() {
		bits = int64(int32(math.Float32bits(float32(f))))
		return bits ^ int64(uint32(bits>>31)>>1)
	}
	bits = int64(math.Float64bits(float64(f)))
	return bits ^ int64(uint64(bits>>63)>>1)
}

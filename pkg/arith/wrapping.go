package arith

import "github.com/dmitrymomot/langkit/pkg/convert"

// WrappingAdd returns a+b modulo 2^N.
func WrappingAdd[T convert.Integer](a, b T) T { return a + b }

// WrappingSub returns a-b modulo 2^N.
func WrappingSub[T convert.Integer](a, b T) T { return a - b }

// WrappingMul returns a*b modulo 2^N. Signed results may wrap to negative values.
func WrappingMul[T convert.Integer](a, b T) T { return a * b }

// WrappingNeg returns -a modulo 2^N. Negating MIN yields MIN.
func WrappingNeg[T convert.Integer](a T) T { return -a }

// WrappingShl shifts v left by n modulo the bit width of T,
// so shifting a 16-bit value by 17 equals shifting it by 1.
func WrappingShl[T convert.Integer](v T, n uint) T {
	return v << (n % uint(convert.BitsOf[T]()))
}

// WrappingShr shifts v right by n modulo the bit width of T.
// Signed values shift arithmetically.
func WrappingShr[T convert.Integer](v T, n uint) T {
	return v >> (n % uint(convert.BitsOf[T]()))
}

// OverflowingAdd returns the wrapped sum and whether an overflow occurred.
func OverflowingAdd[T convert.Integer](a, b T) (T, bool) {
	_, ok := CheckedAdd(a, b)
	return a + b, !ok
}

// OverflowingMul returns the wrapped product and whether an overflow occurred.
func OverflowingMul[T convert.Integer](a, b T) (T, bool) {
	_, ok := CheckedMul(a, b)
	return a * b, !ok
}

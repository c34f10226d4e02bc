package convert

import "unsafe"

// Integer represents every built-in integer type and types derived from them.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float represents floating-point types.
type Float interface {
	~float32 | ~float64
}

// Number represents numeric types that support basic arithmetic operations.
type Number interface {
	Integer | Float
}

// BitsOf returns the width of T in bits.
func BitsOf[T Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// IsSigned reports whether T is a signed integer type.
func IsSigned[T Integer]() bool {
	var zero T
	return ^zero < zero
}

// MinOf returns the smallest value representable by T.
func MinOf[T Integer]() T {
	if IsSigned[T]() {
		return T(1) << (BitsOf[T]() - 1)
	}
	return 0
}

// MaxOf returns the largest value representable by T.
func MaxOf[T Integer]() T {
	if IsSigned[T]() {
		return ^MinOf[T]()
	}
	var zero T
	return ^zero
}

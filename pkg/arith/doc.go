// Package arith provides overflow-aware integer arithmetic for every
// built-in integer type.
//
// Go integer arithmetic silently wraps on overflow. This package names that
// behavior and adds the alternatives:
//
//   - Checked* functions return (result, ok) and report false when the exact
//     result does not fit, on division by zero and for MIN / -1.
//   - Add, Sub, Mul and Div return the same information as an error.
//   - Wrapping* functions reduce the result modulo 2^N. WrappingShl and
//     WrappingShr also reduce the shift distance modulo the bit width.
//   - Saturating* functions clamp the result to the bounds of the type.
//   - Overflowing* functions return the wrapped result and an overflow flag.
//
// # Usage
//
//	import "github.com/dmitrymomot/langkit/pkg/arith"
//
//	if sum, ok := arith.CheckedAdd[uint8](100, 200); !ok {
//	    // 300 does not fit in a uint8
//	}
//	p := arith.WrappingMul[uint16](500, 500) // 53392
//	s := arith.SaturatingAdd[int8](100, 100) // 127
//
// # Error Handling
//
// The error returning variants wrap ErrOverflow or ErrDivisionByZero and can
// be matched with errors.Is.
package arith

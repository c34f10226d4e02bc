// Package convert pins down how Go converts between numeric types.
//
// Go has no implicit numeric conversions. An explicit conversion between
// integer types never fails: widening sign-extends signed values and
// zero-extends unsigned ones, while narrowing keeps the low N bits of the
// two's complement representation, which is the value reduced modulo 2^N.
// Cast exposes that behavior generically, TryCast rejects lossy conversions,
// and FloatToInt gives float to integer conversion a defined, saturating
// result where the language leaves it implementation-specific.
//
// # Usage
//
//	import "github.com/dmitrymomot/langkit/pkg/convert"
//
//	b := convert.Cast[uint8](int16(1000)) // 232
//	n, err := convert.TryCast[int8](uint8(200))
//	if errors.Is(err, convert.ErrOutOfRange) {
//	    // 200 does not fit in int8
//	}
//	i := convert.FloatToInt[int8](300.5) // 127
//
// # Error Handling
//
// TryCast returns ErrOutOfRange when the value would change. Cast and
// FloatToInt never fail.
package convert

package convert

import "math"

// Cast converts v to To using Go conversion rules.
// Values in range are preserved. Values out of range keep the low bits of
// their two's complement form, so the result equals v modulo 2^N.
func Cast[To, From Integer](v From) To {
	return To(v)
}

// TryCast converts v to To only when the value survives unchanged.
// Returns ErrOutOfRange otherwise.
func TryCast[To, From Integer](v From) (To, error) {
	r := To(v)
	if From(r) != v || (v < 0) != (r < 0) {
		return 0, ErrOutOfRange
	}
	return r, nil
}

// FloatToInt converts f to To, saturating at the bounds of To.
// NaN converts to zero and the fractional part is truncated toward zero.
func FloatToInt[To Integer, From Float](f From) To {
	x := float64(f)
	if math.IsNaN(x) {
		return 0
	}

	lo, hi := MinOf[To](), MaxOf[To]()
	if x <= float64(lo) {
		return lo
	}
	// float64(hi) may round up to 2^N, so >= also covers the boundary itself.
	if x >= float64(hi) {
		return hi
	}
	return To(math.Trunc(x))
}

// BoolToInt returns 1 for true and 0 for false.
func BoolToInt[T Integer](b bool) T {
	if b {
		return 1
	}
	return 0
}

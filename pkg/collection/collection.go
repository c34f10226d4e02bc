package collection

import (
	"cmp"
	"math"
	"slices"
)

// LazyCaterer returns the first n lazy caterer numbers: the maximum number of
// pieces a disc can be cut into with k straight cuts, k = 0..n-1.
// Values past math.MaxUint32 (k > 92681) saturate at math.MaxUint32.
func LazyCaterer(n int) []uint32 {
	if n <= 0 {
		return nil
	}
	out := make([]uint32, n)
	for k := range out {
		kk := uint64(k)
		out[k] = uint32(min(kk*(kk+1)/2+1, math.MaxUint32))
	}
	return out
}

// Sorted returns a sorted copy of s and leaves s untouched.
func Sorted[S ~[]E, E cmp.Ordered](s S) S {
	out := slices.Clone(s)
	slices.Sort(out)
	return out
}

// Package floats covers the IEEE 754 edge cases that trip up equality checks:
// signed zeros, infinities, NaN and the asymmetry between float widths.
//
// Functions are generic over float32 and float64. Operations that go through
// the math package compute in float64 and round back to the argument width,
// which matches computing natively in float32 for the operations provided
// here because they are correctly rounded.
//
// # Usage
//
//	import "github.com/dmitrymomot/langkit/pkg/floats"
//
//	floats.IsSignNegative(-1 / math.Inf(1)) // true, the result is -0
//	floats.Classify(float32(1e-40))          // floats.Subnormal
//	floats.TotalCompare(math.NaN(), 1)       // 1
package floats

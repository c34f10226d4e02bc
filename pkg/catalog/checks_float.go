package catalog

import (
	"context"
	"math"

	"github.com/dmitrymomot/langkit/pkg/floats"
)

func floatChecks() []Check {
	return []Check{
		{Topic: "floats", Name: "edge_cases", Run: func(context.Context) error {
			inf := float32(math.Inf(1))
			return Expect(
				True("-1 / +Inf is negative zero", floats.IsSignNegative(-1/inf)),
				Equal("-Lowest == Highest (float32)", floats.Highest[float32](), -floats.Lowest[float32]()),
			)
		}},
		{Topic: "floats", Name: "ops", Run: func(context.Context) error {
			s := floats.Sqrt(float32(5))
			return Expect(
				Equal("sqrt(5) * sqrt(5)", float32(5), s*s),
				Equal("floor(-1.01)", -2.0, floats.Floor(-1.01)),
			)
		}},
		{Topic: "floats", Name: "classify", Run: func(context.Context) error {
			return Expect(
				Equal("NaN", floats.NaN, floats.Classify(math.NaN())),
				Equal("float32 1e-40", floats.Subnormal, floats.Classify(float32(1e-40))),
				Equal("-0 before +0", -1, floats.TotalCompare(math.Copysign(0, -1), 0)),
			)
		}},
	}
}

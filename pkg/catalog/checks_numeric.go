package catalog

import (
	"context"

	"github.com/dmitrymomot/langkit/pkg/arith"
	"github.com/dmitrymomot/langkit/pkg/convert"
)

func numericChecks() []Check {
	return []Check{
		{Topic: "convert", Name: "cast", Run: func(context.Context) error {
			return Expect(
				Equal("int8(10) -> uint16", uint16(10), convert.Cast[uint16](int8(10))),
				Equal("uint16(2525) -> int16", int16(2525), convert.Cast[int16](uint16(2525))),
				Equal("int16(-1) -> int32 sign-extends", int32(-1), convert.Cast[int32](int16(-1))),
				Equal("uint16(65535) -> int32 zero-extends", int32(65535), convert.Cast[int32](uint16(65535))),
				Equal("int16(1000) -> uint8 truncates", uint8(232), convert.Cast[uint8](int16(1000))),
				Equal("uint32(65535) -> int16 truncates", int16(-1), convert.Cast[int16](uint32(65535))),
				Equal("int8(-1) -> uint8", uint8(255), convert.Cast[uint8](int8(-1))),
				Equal("uint8(255) -> int8", int8(-1), convert.Cast[int8](uint8(255))),
			)
		}},
		{Topic: "convert", Name: "try_cast", Run: func(context.Context) error {
			_, err := convert.TryCast[uint8](int16(1000))
			v, okErr := convert.TryCast[uint8](int16(200))
			return Expect(
				ErrorIs("int16(1000) -> uint8", err, convert.ErrOutOfRange),
				True("int16(200) -> uint8 succeeds", okErr == nil),
				Equal("int16(200) -> uint8", uint8(200), v),
			)
		}},
		{Topic: "convert", Name: "bool_as_int", Run: func(context.Context) error {
			return Expect(
				Equal("false", int32(0), convert.BoolToInt[int32](false)),
				Equal("true", int32(1), convert.BoolToInt[int32](true)),
			)
		}},
		{Topic: "arith", Name: "checked_op", Run: func(context.Context) error {
			sum, sumOK := arith.CheckedAdd[uint8](10, 20)
			_, overflowOK := arith.CheckedAdd[uint8](100, 200)
			_, divOK := arith.CheckedDiv[int8](-128, -1)
			return Expect(
				Equal("10 + 20 as uint8", uint8(30), sum),
				True("10 + 20 fits in uint8", sumOK),
				True("100 + 200 overflows uint8", !overflowOK),
				True("-128 / -1 overflows int8", !divOK),
			)
		}},
		{Topic: "arith", Name: "wrapping", Run: func(context.Context) error {
			return Expect(
				Equal("uint16 100 * 200", uint16(20000), arith.WrappingMul[uint16](100, 200)),
				Equal("uint16 500 * 500", uint16(53392), arith.WrappingMul[uint16](500, 500)),
				Equal("int16 500 * 500", int16(-12144), arith.WrappingMul[int16](500, 500)),
				Equal("int16 5 << 17", int16(10), arith.WrappingShl[int16](5, 17)),
			)
		}},
		{Topic: "arith", Name: "saturating", Run: func(context.Context) error {
			return Expect(
				Equal("int8 100 + 100", int8(127), arith.SaturatingAdd[int8](100, 100)),
				Equal("uint8 1 - 2", uint8(0), arith.SaturatingSub[uint8](1, 2)),
			)
		}},
		{Topic: "arith", Name: "add_two", Run: func(context.Context) error {
			return Equal("AddTwo(2)", int32(4), arith.AddTwo(2))
		}},
	}
}

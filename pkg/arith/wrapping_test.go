package arith_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/langkit/pkg/arith"
)

func TestWrappingMul(t *testing.T) {
	t.Parallel()

	// The first product fits in a uint16, the second is 250000 mod 2^16.
	assert.Equal(t, uint16(20000), arith.WrappingMul[uint16](100, 200))
	assert.Equal(t, uint16(53392), arith.WrappingMul[uint16](500, 500))

	// Signed products can wrap to negative values.
	assert.Equal(t, int16(-12144), arith.WrappingMul[int16](500, 500))
}

func TestWrappingShift(t *testing.T) {
	t.Parallel()

	// Shifting a 16-bit value by 17 is the same as shifting it by 1.
	assert.Equal(t, int16(10), arith.WrappingShl[int16](5, 17))
	assert.Equal(t, uint8(0x80), arith.WrappingShl[uint8](1, 7))
	assert.Equal(t, uint8(1), arith.WrappingShl[uint8](1, 8))

	assert.Equal(t, int32(-2), arith.WrappingShr[int32](-4, 33))
	assert.Equal(t, uint64(1), arith.WrappingShr[uint64](2, 65))
}

func TestWrappingAddSubNeg(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint8(44), arith.WrappingAdd[uint8](100, 200))
	assert.Equal(t, int8(math.MinInt8), arith.WrappingAdd[int8](math.MaxInt8, 1))
	assert.Equal(t, uint8(255), arith.WrappingSub[uint8](0, 1))
	assert.Equal(t, int8(math.MinInt8), arith.WrappingNeg[int8](math.MinInt8))
	assert.Equal(t, uint8(255), arith.WrappingNeg[uint8](1))
}

func TestOverflowing(t *testing.T) {
	t.Parallel()

	v, overflow := arith.OverflowingAdd[uint8](250, 10)
	assert.True(t, overflow)
	assert.Equal(t, uint8(4), v)

	v, overflow = arith.OverflowingAdd[uint8](250, 5)
	assert.False(t, overflow)
	assert.Equal(t, uint8(255), v)

	p, overflow := arith.OverflowingMul[int16](500, 500)
	assert.True(t, overflow)
	assert.Equal(t, int16(-12144), p)
}

func TestSaturating(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int8(math.MaxInt8), arith.SaturatingAdd[int8](100, 100))
	assert.Equal(t, int8(math.MinInt8), arith.SaturatingAdd[int8](-100, -100))
	assert.Equal(t, uint8(math.MaxUint8), arith.SaturatingAdd[uint8](100, 200))

	assert.Equal(t, uint8(0), arith.SaturatingSub[uint8](1, 2))
	assert.Equal(t, int8(math.MaxInt8), arith.SaturatingSub[int8](0, math.MinInt8))
	assert.Equal(t, int8(math.MinInt8), arith.SaturatingSub[int8](-100, 100))

	assert.Equal(t, int16(math.MaxInt16), arith.SaturatingMul[int16](500, 500))
	assert.Equal(t, int16(math.MinInt16), arith.SaturatingMul[int16](-500, 500))
	assert.Equal(t, int8(math.MaxInt8), arith.SaturatingMul[int8](-1, math.MinInt8))
	assert.Equal(t, uint16(math.MaxUint16), arith.SaturatingMul[uint16](500, 500))
	assert.Equal(t, int16(42), arith.SaturatingMul[int16](6, 7))
}

func BenchmarkCheckedMul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = arith.CheckedMul[int64](int64(i), 1<<40)
	}
}

package ownership_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/langkit/pkg/ownership"
)

func TestMultiLevelPointer(t *testing.T) {
	t.Parallel()

	type point struct {
		x, y int
	}

	p := point{x: 1000, y: 769}
	r := &p
	rr := &r
	rrr := &rr

	// Field selectors dereference one pointer level implicitly; deeper levels are explicit.
	assert.Equal(t, 769, (**rrr).y)
	assert.Equal(t, 1000, r.x)
}

func TestCompareThroughPointers(t *testing.T) {
	t.Parallel()

	x, y := 10, 10
	rx, ry := &x, &y

	assert.False(t, rx == ry, "pointer equality is identity")
	assert.True(t, ownership.DerefEqual(rx, ry))
	assert.LessOrEqual(t, ownership.DerefCompare(rx, ry), 0)

	rrx, rry := &rx, &ry
	assert.True(t, ownership.DerefEqual(*rrx, *rry))
	assert.Equal(t, 0, ownership.DerefCompare(*rrx, *rry))
}

func TestDerefNil(t *testing.T) {
	t.Parallel()

	one := 1
	assert.True(t, ownership.DerefEqual[int](nil, nil))
	assert.False(t, ownership.DerefEqual(&one, nil))
	assert.Equal(t, -1, ownership.DerefCompare(nil, &one))
	assert.Equal(t, 1, ownership.DerefCompare(&one, nil))
	assert.Equal(t, 0, ownership.DerefCompare[int](nil, nil))
}

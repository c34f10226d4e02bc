package ownership_test

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langkit/pkg/ownership"
)

func TestRcSharedReads(t *testing.T) {
	t.Parallel()

	s := ownership.NewRc("shirataki")
	u := s.Clone()
	v := s.Clone()

	assert.True(t, strings.Contains(s.Value(), "shira"))
	assert.Equal(t, 5, strings.Index(u.Value(), "taki"))
	assert.Equal(t, "shirataki are quite chewy, almost bouncy, but lack flavor",
		v.Value()+" are quite chewy, almost bouncy, but lack flavor")

	assert.Equal(t, int64(3), s.Count())
	assert.True(t, ownership.SameValue(s, v))
}

func TestRcReleaseHookRunsOnce(t *testing.T) {
	t.Parallel()

	var released []string
	s := ownership.NewRc("shirataki", ownership.WithRelease(func(v string) {
		released = append(released, v)
	}))
	u := s.Clone()

	s.Release()
	s.Release()
	assert.Empty(t, released, "a live handle keeps the value")
	assert.Equal(t, int64(1), u.Count())

	u.Release()
	assert.Equal(t, []string{"shirataki"}, released)
	assert.Equal(t, int64(0), u.Count())
}

func TestRcReleasedHandle(t *testing.T) {
	t.Parallel()

	s := ownership.NewRc(42)
	s.Release()

	_, err := s.Get()
	assert.ErrorIs(t, err, ownership.ErrReleased)
	assert.PanicsWithValue(t, ownership.ErrReleased, func() { s.Value() })
	assert.PanicsWithValue(t, ownership.ErrReleased, func() { s.Clone() })
}

func TestRcConcurrentClones(t *testing.T) {
	t.Parallel()

	var hookCalls int
	root := ownership.NewRc([]int{1, 2, 3}, ownership.WithRelease(func([]int) { hookCalls++ }))

	var wg sync.WaitGroup
	for range 32 {
		c := root.Clone()
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Len(t, c.Value(), 3)
			c.Release()
		}()
	}
	wg.Wait()

	require.Equal(t, int64(1), root.Count())
	root.Release()
	assert.Equal(t, 1, hookCalls)
}

func TestRcCloneRacingLastRelease(t *testing.T) {
	t.Parallel()

	for i := range 2000 {
		var hookCalls atomic.Int32
		last := ownership.NewRc(i, ownership.WithRelease(func(int) { hookCalls.Add(1) }))

		var (
			wg    sync.WaitGroup
			start = make(chan struct{})
			clone *ownership.Rc[int]
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			<-start
			last.Release()
		}()
		go func() {
			defer wg.Done()
			defer func() { _ = recover() }()
			<-start
			clone = last.Clone()
		}()
		close(start)
		wg.Wait()

		if clone != nil {
			assert.Equal(t, int32(0), hookCalls.Load(), "clone keeps the value alive")
			clone.Release()
		}
		require.Equal(t, int32(1), hookCalls.Load(), "iteration %d", i)
		require.Equal(t, int64(0), last.Count())
	}
}

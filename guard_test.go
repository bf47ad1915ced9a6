package arena

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard(t *testing.T) {
	var g guard
	require.NoError(t, g.tryAcquire("Alloc"))

	err := g.tryAcquire("Reserve")
	require.ErrorIs(t, err, ErrReentrant)
	assert.EqualError(t, err, "arena: reentrant Reserve while Alloc is in progress")

	assert.PanicsWithError(t, "arena: reentrant IntoSlice while Alloc is in progress", func() {
		g.acquire("IntoSlice")
	})

	g.release()
	require.NoError(t, g.tryAcquire("Reserve"))
	assert.Equal(t, "Reserve", g.holder)
}

func TestReleaseFunc_Reentrant(t *testing.T) {
	a := NewWithCapacity[int](4)
	a.Alloc(1)
	a.Alloc(2)

	err := recoverError(func() {
		a.ReleaseFunc(func(*int) { a.Alloc(3) })
	})
	require.True(t, errors.Is(err, ErrReentrant))

	// The failed teardown left the arena intact and usable.
	assert.Equal(t, 2, a.Len())
	a.Alloc(3)
	assert.Equal(t, []int{1, 2, 3}, a.IntoSlice())
}

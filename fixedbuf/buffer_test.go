package fixedbuf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recoveredErr runs f and returns the error value it panicked with.
func recoveredErr(t *testing.T, f func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		var ok bool
		err, ok = r.(error)
		require.True(t, ok, "expected the panic value to be an error")
	}()
	f()
	return nil
}

func TestPushToCapacity(t *testing.T) {
	b := New[int](3)
	require.Equal(t, 3, b.Cap())

	for i := 0; i < 3; i++ {
		require.True(t, b.CanPush())
		b.Push(i * 10)
		require.Equal(t, i+1, b.Len())
	}
	require.False(t, b.CanPush())

	err := recoveredErr(t, func() { b.Push(99) })
	require.True(t, errors.Is(err, ErrCapacityExceeded))
	require.Equal(t, 3, b.Len())
}

func TestPushNeverReallocates(t *testing.T) {
	b := New[uint64](64)
	b.Push(0)
	first := b.At(0)
	for i := 1; i < 64; i++ {
		b.Push(uint64(i))
	}
	require.Same(t, first, b.At(0))
}

func TestRemoveTailInPlace(t *testing.T) {
	b := New[*int](2)
	require.False(t, b.RemoveTail())

	x, y := 1, 2
	b.Push(&x)
	b.Push(&y)
	head := b.At(0)
	tail := b.At(1)

	require.True(t, b.RemoveTail())
	assert.Equal(t, 1, b.Len())
	// removed slot is cleared, remaining element did not move
	assert.Nil(t, *tail)
	assert.Same(t, head, b.At(0))
	assert.Equal(t, &x, *b.At(0))

	// the slot is reused by the next push
	b.Push(&y)
	assert.Same(t, tail, b.At(1))
}

func TestPopTail(t *testing.T) {
	b := New[string](2)
	_, ok := b.PopTail()
	require.False(t, ok)

	b.Push("a")
	b.Push("b")
	v, ok := b.PopTail()
	require.True(t, ok)
	require.Equal(t, "b", v)
	v, ok = b.PopTail()
	require.True(t, ok)
	require.Equal(t, "a", v)
	require.Equal(t, 0, b.Len())
}

func TestSetReplace(t *testing.T) {
	b := New[int](2)
	b.Push(1)
	b.Push(2)
	addr := b.At(1)

	b.Set(1, 20)
	assert.Equal(t, 20, *addr)

	prev := b.Replace(0, 10)
	assert.Equal(t, 1, prev)
	assert.Equal(t, 10, *b.At(0))
	assert.Same(t, addr, b.At(1))
}

func TestIndexBounds(t *testing.T) {
	b := New[int](4)
	b.Push(7)

	tests := []struct {
		name  string
		index int
	}{
		{"past length", 1},
		{"past capacity", 4},
		{"negative", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := b.Get(tt.index)
			require.False(t, ok)

			err := recoveredErr(t, func() { b.At(tt.index) })
			require.ErrorIs(t, err, ErrIndexOutOfBounds)
			err = recoveredErr(t, func() { b.Set(tt.index, 1) })
			require.ErrorIs(t, err, ErrIndexOutOfBounds)
		})
	}

	p, ok := b.Get(0)
	require.True(t, ok)
	require.Equal(t, 7, *p)
}

package checkpoint

import (
	"testing"

	"github.com/forestrie/go-ltstack/borrowstack"
	"github.com/forestrie/go-ltstack/pow2"
	"github.com/forestrie/go-ltstack/stablearray"
	"github.com/forestrie/go-ltstack/stacktesting"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type span struct {
	Start uint64 `cbor:"1,keyasint"`
	End   uint64 `cbor:"2,keyasint"`
	Name  string `cbor:"3,keyasint"`
}

func newCodec(t *testing.T) Codec {
	c, err := NewCodec()
	require.NoError(t, err)
	return c
}

func TestArrayRoundTrip(t *testing.T) {
	c := newCodec(t)
	id := uuid.New()

	a := stablearray.NewWithBase[span](pow2.P2)
	for i := uint64(0); i < 33; i++ {
		a.Push(span{Start: i, End: i * 2, Name: "s"})
	}

	data, err := EncodeArray(c, id, a)
	require.NoError(t, err)

	gotID, b, err := DecodeArray[span](c, data)
	require.NoError(t, err)
	require.Equal(t, id, gotID)
	require.Equal(t, a.Len(), b.Len())
	require.Equal(t, pow2.P2, b.BaseSize())
	require.Equal(t, a.Segments(), b.Segments())
	for i, p := range a.All() {
		require.Equal(t, *p, *b.At(i))
	}
}

func TestEncodingIsDeterministic(t *testing.T) {
	c := newCodec(t)
	id := uuid.MustParse("01947000-3456-7abc-9def-0123456789ab")

	build := func() *stablearray.Array[map[string]int] {
		a := stablearray.New[map[string]int]()
		a.Push(map[string]int{"b": 2, "a": 1, "c": 3})
		a.Push(map[string]int{"z": 26, "y": 25})
		return a
	}
	first, err := EncodeArray(c, id, build())
	require.NoError(t, err)
	second, err := EncodeArray(c, id, build())
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestStackRoundTrip(t *testing.T) {
	tc := stacktesting.NewTestContext(t, stacktesting.TestConfig{})
	c := newCodec(t)

	stack := borrowstack.NewIdentity[span](stablearray.WithLogger(tc.Log))
	stack.Push(span{Name: "root", End: 100})
	stack.Grow(func(top span) []span {
		mid := (top.Start + top.End) / 2
		return []span{
			{Start: top.Start, End: mid, Name: "left"},
			{Start: mid, End: top.End, Name: "right"},
		}
	})

	data, err := EncodeStack(c, stack)
	require.NoError(t, err)

	restored, err := DecodeStack[span, span](c, borrowstack.Identity[span]{}, data)
	require.NoError(t, err)
	require.Equal(t, stack.ID(), restored.ID())
	require.Equal(t, 3, restored.Len())

	var names []string
	for {
		s, ok := restored.Pop()
		if !ok {
			break
		}
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"right", "left", "root"}, names)

	// the encoded stack is independent of the restored copy
	require.Equal(t, 3, stack.Len())
}

func TestEmptyStackRoundTrip(t *testing.T) {
	c := newCodec(t)
	stack := borrowstack.NewIdentity[int]()

	data, err := EncodeStack(c, stack)
	require.NoError(t, err)
	restored, err := DecodeStack[int, int](c, borrowstack.Identity[int]{}, data)
	require.NoError(t, err)
	require.Equal(t, 0, restored.Len())
	_, ok := restored.Peek()
	require.False(t, ok)
}

func TestDecodeErrors(t *testing.T) {
	c := newCodec(t)

	badBase, err := c.Marshal(Checkpoint{ID: uuid.New(), BaseExp: 64})
	require.NoError(t, err)

	notAnInt, err := c.Marshal("frame")
	require.NoError(t, err)
	badFrame, err := c.Marshal(Checkpoint{ID: uuid.New(), BaseExp: 6, Frames: []cbor.RawMessage{notAnInt}})
	require.NoError(t, err)

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"not cbor", []byte{0xff, 0x00}, ErrDecode},
		{"base exponent out of domain", badBase, ErrBaseExpInvalid},
		{"frame of the wrong type", badFrame, ErrFrameDecode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeArray[int](c, tt.data)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

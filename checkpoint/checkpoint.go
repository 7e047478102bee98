package checkpoint

import (
	"fmt"

	"github.com/forestrie/go-ltstack/borrowstack"
	"github.com/forestrie/go-ltstack/pow2"
	"github.com/forestrie/go-ltstack/stablearray"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

// Checkpoint is the encoded form. Frames are kept raw so a checkpoint can be
// inspected without knowing the frame type.
type Checkpoint struct {
	ID      uuid.UUID         `cbor:"1,keyasint"`
	BaseExp uint8             `cbor:"2,keyasint"`
	Frames  []cbor.RawMessage `cbor:"3,keyasint"`
}

// Decode decodes the checkpoint envelope, leaving the frames encoded.
func (c Codec) Decode(data []byte) (Checkpoint, error) {
	var cp Checkpoint
	if err := c.Unmarshal(data, &cp); err != nil {
		return Checkpoint{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if _, err := pow2.TryFromExp[uint64](cp.BaseExp); err != nil {
		return Checkpoint{}, fmt.Errorf("%w: %v", ErrBaseExpInvalid, err)
	}
	return cp, nil
}

// EncodeArray encodes the elements of a, head to tail, under the identity id.
func EncodeArray[T any](c Codec, id uuid.UUID, a *stablearray.Array[T]) ([]byte, error) {
	cp := Checkpoint{
		ID:      id,
		BaseExp: a.BaseSize().Exp(),
		Frames:  make([]cbor.RawMessage, 0, a.Len()),
	}
	for i, p := range a.All() {
		frame, err := c.Marshal(*p)
		if err != nil {
			return nil, fmt.Errorf("checkpoint: frame %d: %w", i, err)
		}
		cp.Frames = append(cp.Frames, frame)
	}
	return c.Marshal(cp)
}

// DecodeArray rebuilds an array from data. The array uses the base segment
// size recorded in the checkpoint, opts may add a logger.
func DecodeArray[T any](c Codec, data []byte, opts ...stablearray.Option) (uuid.UUID, *stablearray.Array[T], error) {
	cp, err := c.Decode(data)
	if err != nil {
		return uuid.UUID{}, nil, err
	}
	base := pow2.FromExp[uint64](cp.BaseExp)
	a := stablearray.New[T](append(opts[:len(opts):len(opts)], stablearray.WithBaseSize(base))...)
	for i, raw := range cp.Frames {
		var frame T
		if err := c.Unmarshal(raw, &frame); err != nil {
			return uuid.UUID{}, nil, fmt.Errorf("%w: frame %d: %v", ErrFrameDecode, i, err)
		}
		a.Push(frame)
	}
	return cp.ID, a, nil
}

// EncodeStack encodes the at rest frames of s, bottom to top. No frame is
// made live.
func EncodeStack[S, L any](c Codec, s *borrowstack.Stack[S, L]) ([]byte, error) {
	return EncodeArray(c, s.ID(), s.Storage())
}

// DecodeStack restores a stack, including its identity, from data.
func DecodeStack[S, L any](
	c Codec, conv borrowstack.Conv[S, L], data []byte, opts ...stablearray.Option,
) (*borrowstack.Stack[S, L], error) {
	id, a, err := DecodeArray[S](c, data, opts...)
	if err != nil {
		return nil, err
	}
	return borrowstack.Restore(conv, id, a, opts...), nil
}

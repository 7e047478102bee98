// Package checkpoint encodes the at rest contents of a stable array, or of a
// borrow stack, as CBOR so it can be restored later.
//
// Only at rest values are encoded, in index order. Frames whose at rest form
// holds pointers into the stack storage are encoded by value and come back as
// independent copies; checkpoint stacks of plain data.
package checkpoint

import (
	"github.com/fxamacker/cbor/v2"
)

// Codec holds the CBOR modes used for checkpoints. Encoding is core
// deterministic, the same contents always produce the same bytes.
type Codec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func NewCodec() (Codec, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return Codec{}, err
	}
	dec, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return Codec{}, err
	}
	return Codec{enc: enc, dec: dec}, nil
}

func (c Codec) Marshal(v any) ([]byte, error) {
	return c.enc.Marshal(v)
}

func (c Codec) Unmarshal(data []byte, v any) error {
	return c.dec.Unmarshal(data, v)
}

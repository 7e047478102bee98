package checkpoint

import "errors"

var (
	ErrBaseExpInvalid = errors.New("checkpoint: base segment exponent invalid")
	ErrFrameDecode    = errors.New("checkpoint: frame could not be decoded")
	ErrDecode         = errors.New("checkpoint: could not be decoded")
)

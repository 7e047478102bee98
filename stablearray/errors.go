package stablearray

import "errors"

var (
	ErrIndexOutOfBounds = errors.New("stablearray: index out of bounds")
	ErrSegmentOverflow  = errors.New("stablearray: segment capacity beyond the index domain")
)

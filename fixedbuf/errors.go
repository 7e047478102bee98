package fixedbuf

import "errors"

var (
	ErrCapacityExceeded = errors.New("fixedbuf: push to a full buffer")
	ErrIndexOutOfBounds = errors.New("fixedbuf: index out of bounds")
)

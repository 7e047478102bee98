package pow2

import "errors"

var (
	ErrExponentOverflow = errors.New("pow2: exponent beyond the domain of the target type")
	ErrNotPow2          = errors.New("pow2: value is not an exact power of two")
)

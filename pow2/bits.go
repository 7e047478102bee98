package pow2

import "math/bits"

// BitLength64 is the number of bits needed to represent num, that is the one
// based position of its highest set bit. Zero has bit length 0.
func BitLength64(num uint64) uint64 {
	return uint64(bits.Len64(num))
}

// Log2Uint64 efficiently computes log base 2 of num. num must be > 0
func Log2Uint64(num uint64) uint64 {
	return uint64(bits.Len64(num) - 1)
}

// IsPow2 determines if the unsigned value size is a perfect power of 2.
func IsPow2(size uint64) bool {
	return size != 0 && size&(size-1) == 0
}

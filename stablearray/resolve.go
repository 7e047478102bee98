package stablearray

import (
	"github.com/forestrie/go-ltstack/pow2"
)

// SegmentCapacity returns the capacity of segment k for a first segment of
// 2^baseExp elements.
func SegmentCapacity(baseExp uint8, k uint64) uint64 {
	return uint64(1) << k << baseExp
}

// SegmentStart returns the element index of the first slot in segment k. It
// is also the total capacity of the segments before k:
//
//	2^b + 2^(b+1) + ... + 2^(b+k-1) = 2^(b+k) - 2^b
func SegmentStart(baseExp uint8, k uint64) uint64 {
	return (uint64(1) << k << baseExp) - (uint64(1) << baseExp)
}

// Resolve computes the segment and the offset within that segment where the
// element with index i is, or would be, stored.
//
// Dividing the index by the first segment size gives the position in units of
// the base segment. Segment k covers the units [2^k - 1, 2^(k+1) - 1), so
// adding one puts every unit of segment k in [2^k, 2^(k+1)) and k is the
// position of the highest set bit.
//
//	b = 1 (segment capacities 2, 4, 8)
//
//	i        0 1 | 2 3 4 5 | 6 7 8 9 10 11 12 13
//	i>>b + 1 1 1 | 2 2 3 3 | 4 4 5 5  6  6  7  7
//	segment  0 0 | 1 1 1 1 | 2 2 2 2  2  2  2  2
func Resolve(baseExp uint8, i uint64) (uint64, uint64) {
	segment := pow2.BitLength64((i>>baseExp)+1) - 1
	return segment, i - SegmentStart(baseExp, segment)
}

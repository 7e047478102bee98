package stacktesting

// SegmentSlot is a (segment, offset) pair.
type SegmentSlot struct {
	Segment uint64
	Offset  uint64
}

// BruteForceIndex fills segments of capacity 2^baseExp, 2^(baseExp+1), ...
// one element at a time and returns the slot of each of the first n elements.
// It is the reference the O(1) index resolution is checked against.
func BruteForceIndex(baseExp uint8, n int) []SegmentSlot {
	slots := make([]SegmentSlot, 0, n)
	size := uint64(1) << baseExp
	var segment uint64
	for len(slots) < n {
		for offset := uint64(0); offset < size && len(slots) < n; offset++ {
			slots = append(slots, SegmentSlot{Segment: segment, Offset: offset})
		}
		segment++
		size *= 2
	}
	return slots
}

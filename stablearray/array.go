package stablearray

import (
	"fmt"
	"iter"
	"math"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-ltstack/fixedbuf"
	"github.com/forestrie/go-ltstack/pow2"
)

// Array is an append only, pop from tail, sequence whose elements never move.
//
// Storage is a list of fixed capacity segments, segment k holding base << k
// elements. Growing the array adds a segment, it never copies the existing
// ones, so a pointer obtained from At remains valid until that element is
// removed.
//
// Invariants:
//   - every segment except the last is full
//   - the last segment is never empty
//   - length is the sum of the segment lengths
//
// Not safe for concurrent use.
type Array[T any] struct {
	log    logger.Logger
	segs   []*fixedbuf.Buffer[T]
	base   pow2.PowOf2[uint64]
	length uint64
}

func New[T any](opts ...Option) *Array[T] {
	o := NewOptions(opts...)
	return &Array[T]{
		log:  o.Log,
		base: o.BaseSize,
	}
}

// NewWithBase creates an empty array whose first segment holds base elements.
// An explicit WithBaseSize in opts takes precedence.
func NewWithBase[T any](base pow2.PowOf2[uint64], opts ...Option) *Array[T] {
	return New[T](append([]Option{WithBaseSize(base)}, opts...)...)
}

func (a *Array[T]) Len() uint64 { return a.length }

// Segments is the number of currently allocated segments.
func (a *Array[T]) Segments() int { return len(a.segs) }

func (a *Array[T]) BaseSize() pow2.PowOf2[uint64] { return a.base }

// SegmentCap returns the capacity of segment k, allocated or not.
func (a *Array[T]) SegmentCap(k uint64) uint64 {
	return SegmentCapacity(a.base.Exp(), k)
}

// Resolve returns the segment and offset for element index i
func (a *Array[T]) Resolve(i uint64) (uint64, uint64) {
	return Resolve(a.base.Exp(), i)
}

// Push appends elem and returns its index.
func (a *Array[T]) Push(elem T) uint64 {
	i := a.length
	segment, _ := a.Resolve(i)
	if segment == uint64(len(a.segs)) {
		a.grow(segment)
	}
	a.segs[segment].Push(elem)
	a.length++
	return i
}

func (a *Array[T]) grow(segment uint64) {
	capacity := a.SegmentCap(segment)
	if capacity == 0 || capacity > math.MaxInt {
		panic(fmt.Errorf("%w: segment %d, base %v", ErrSegmentOverflow, segment, a.base))
	}
	a.segs = append(a.segs, fixedbuf.New[T](int(capacity)))
	a.debugf("stablearray: segment %d allocated, capacity %d, length %d", segment, capacity, a.length)
}

// RemoveTail removes the last element, releasing the last segment if that
// leaves it empty. Returns false if the array is already empty.
func (a *Array[T]) RemoveTail() bool {
	if a.length == 0 {
		return false
	}
	last := len(a.segs) - 1
	a.segs[last].RemoveTail()
	a.length--
	a.release(last)
	return true
}

// Pop removes and returns the last element.
func (a *Array[T]) Pop() (T, bool) {
	if a.length == 0 {
		var zero T
		return zero, false
	}
	last := len(a.segs) - 1
	elem, _ := a.segs[last].PopTail()
	a.length--
	a.release(last)
	return elem, true
}

// release drops segment k if it is empty. A single element last segment is
// a normal state, it is only dropped once that element is gone.
func (a *Array[T]) release(k int) {
	if a.segs[k].Len() != 0 {
		return
	}
	a.segs[k] = nil
	a.segs = a.segs[:k]
	a.debugf("stablearray: segment %d released, length %d", k, a.length)
}

// At returns the stable address of element i, or panics if i >= Len()
func (a *Array[T]) At(i uint64) *T {
	if i >= a.length {
		panic(fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, i, a.length))
	}
	segment, offset := a.Resolve(i)
	return a.segs[segment].At(int(offset))
}

// Get returns the stable address of element i if it is present.
func (a *Array[T]) Get(i uint64) (*T, bool) {
	if i >= a.length {
		return nil, false
	}
	return a.At(i), true
}

// Set overwrites element i in place.
func (a *Array[T]) Set(i uint64, elem T) {
	*a.At(i) = elem
}

// Top returns the address of the last element.
func (a *Array[T]) Top() (*T, bool) {
	if a.length == 0 {
		return nil, false
	}
	return a.At(a.length - 1), true
}

// All iterates the elements head to tail, yielding the index and stable
// address of each. The array must not be shrunk during iteration.
func (a *Array[T]) All() iter.Seq2[uint64, *T] {
	return func(yield func(uint64, *T) bool) {
		var i uint64
		for _, seg := range a.segs {
			for offset := 0; offset < seg.Len(); offset++ {
				if !yield(i, seg.At(offset)) {
					return
				}
				i++
			}
		}
	}
}

// Clear removes every element, tail to head, and releases all segments.
func (a *Array[T]) Clear() {
	for a.RemoveTail() {
	}
}

func (a *Array[T]) debugf(format string, args ...any) {
	if a.log == nil {
		return
	}
	a.log.Debugf(format, args...)
}

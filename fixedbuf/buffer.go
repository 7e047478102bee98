// Package fixedbuf provides a bounded buffer whose backing array is allocated
// once and never reallocated, so the address of a stored element is fixed for
// as long as the element remains in the buffer.
package fixedbuf

import "fmt"

// Buffer wraps a slice and disallows re-allocation.
type Buffer[T any] struct {
	items []T
}

func New[T any](capacity int) *Buffer[T] {
	return &Buffer[T]{items: make([]T, 0, capacity)}
}

// Len is the current element count.
func (b *Buffer[T]) Len() int { return len(b.items) }

// Cap is the fixed element capacity.
func (b *Buffer[T]) Cap() int { return cap(b.items) }

// CanPush reports whether capacity allows another element.
func (b *Buffer[T]) CanPush() bool {
	return len(b.items) < cap(b.items)
}

// Push appends an element. Panics if at capacity.
func (b *Buffer[T]) Push(elem T) {
	if !b.CanPush() {
		panic(fmt.Errorf("%w: capacity %d", ErrCapacityExceeded, cap(b.items)))
	}
	// within capacity, append writes in place and keeps the backing array
	b.items = append(b.items, elem)
}

// RemoveTail clears the tail element in place and shortens the buffer.
//
// Returns false if already empty.
func (b *Buffer[T]) RemoveTail() bool {
	n := len(b.items)
	if n == 0 {
		return false
	}
	var zero T
	// release anything the element references, the slot itself stays put
	b.items[n-1] = zero
	b.items = b.items[:n-1]
	return true
}

// PopTail removes and returns the tail element.
//
// The returned value is a copy. Pointers previously obtained for the tail slot
// observe the zero value once it is removed.
func (b *Buffer[T]) PopTail() (T, bool) {
	n := len(b.items)
	if n == 0 {
		var zero T
		return zero, false
	}
	elem := b.items[n-1]
	b.RemoveTail()
	return elem, true
}

// Set overwrites an existing element in place.
func (b *Buffer[T]) Set(index int, elem T) {
	*b.At(index) = elem
}

// Replace overwrites an existing element, returning the previous value.
func (b *Buffer[T]) Replace(index int, elem T) T {
	p := b.At(index)
	prev := *p
	*p = elem
	return prev
}

// At returns the address of the element at index, or panics.
func (b *Buffer[T]) At(index int) *T {
	if index < 0 || index >= len(b.items) {
		panic(fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, index, len(b.items)))
	}
	return &b.items[index]
}

// Get returns the address of the element at index, if it is present.
func (b *Buffer[T]) Get(index int) (*T, bool) {
	if index < 0 || index >= len(b.items) {
		return nil, false
	}
	return &b.items[index], true
}

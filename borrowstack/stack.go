package borrowstack

import (
	"fmt"
	"iter"
	"slices"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-ltstack/stablearray"
	"github.com/google/uuid"
)

// Deriver produces the frames to push above the live top frame. It may
// produce none.
type Deriver[L any] func(top L) []L

// Stack is a last in first out stack of frames backed by a stable array.
// See the package documentation for the aliasing rules.
//
// Not safe for concurrent use.
type Stack[S, L any] struct {
	id   uuid.UUID
	log  logger.Logger
	conv Conv[S, L]
	vec  *stablearray.Array[S]

	// borrowed is set while a Deriver holds the live top frame
	borrowed bool
}

// New creates an empty stack. The options configure the backing array.
func New[S, L any](conv Conv[S, L], opts ...stablearray.Option) *Stack[S, L] {
	return Restore(conv, uuid.New(), stablearray.New[S](opts...), opts...)
}

// NewByPointer creates an empty stack whose live frames are pointers into
// the stack storage.
func NewByPointer[T any](opts ...stablearray.Option) *Stack[T, *T] {
	return New[T, *T](ByPointer[T]{}, opts...)
}

// NewIdentity creates an empty stack of plain values.
func NewIdentity[T any](opts ...stablearray.Option) *Stack[T, T] {
	return New[T, T](Identity[T]{}, opts...)
}

// Restore creates a stack over an existing array of at rest frames, the
// first element being the bottom frame. The stack takes ownership of vec.
func Restore[S, L any](
	conv Conv[S, L], id uuid.UUID, vec *stablearray.Array[S], opts ...stablearray.Option,
) *Stack[S, L] {
	o := stablearray.NewOptions(opts...)
	return &Stack[S, L]{
		id:   id,
		log:  o.Log,
		conv: conv,
		vec:  vec,
	}
}

func (s *Stack[S, L]) ID() uuid.UUID { return s.id }

// Len is the number of frames.
func (s *Stack[S, L]) Len() int { return int(s.vec.Len()) }

// Storage exposes the backing array of at rest frames. The caller must not
// modify it.
func (s *Stack[S, L]) Storage() *stablearray.Array[S] { return s.vec }

// Push stores value as a new top frame.
func (s *Stack[S, L]) Push(value L) {
	s.checkNotBorrowed("push")
	s.vec.Push(s.conv.Store(value))
}

// Pop removes the top frame and returns it as an owned value, or false if
// the stack is empty.
func (s *Stack[S, L]) Pop() (L, bool) {
	s.checkNotBorrowed("pop")
	at, ok := s.vec.Pop()
	if !ok {
		var zero L
		return zero, false
	}
	return s.conv.Own(at), true
}

// Peek returns a live view of the top frame without removing it, or false if
// the stack is empty. The view must not be used after the frame is popped.
func (s *Stack[S, L]) Peek() (L, bool) {
	top, ok := s.vec.Top()
	if !ok {
		var zero L
		return zero, false
	}
	return s.conv.Live(top), true
}

// Grow calls derive with a live view of the top frame and pushes the frames
// it returns, in order, above the top. Returns false without calling derive
// if the stack is empty. Push, Pop, Grow and Truncate panic with ErrBorrowed
// if derive calls them on the same stack.
//
// The produced values are all converted to their at rest form before any is
// pushed, so a panic in derive or in the conversion leaves the stack as it
// was.
func (s *Stack[S, L]) Grow(derive Deriver[L]) bool {
	s.checkNotBorrowed("grow")
	top, ok := s.vec.Top()
	if !ok {
		return false
	}
	produced := s.derive(derive, top)

	frames := make([]S, len(produced))
	for i, v := range produced {
		frames[i] = s.conv.Store(v)
	}
	for _, f := range frames {
		s.vec.Push(f)
	}
	if s.log != nil {
		s.log.Debugf("borrowstack %s: grow +%d frames, depth %d", s.id, len(frames), s.vec.Len())
	}
	return true
}

// derive runs the Deriver with the stack marked as borrowed, so that it can
// not push, pop or grow the stack beneath its own live top.
func (s *Stack[S, L]) derive(derive Deriver[L], top *S) []L {
	s.borrowed = true
	defer func() { s.borrowed = false }()
	return derive(s.conv.Live(top))
}

func (s *Stack[S, L]) checkNotBorrowed(op string) {
	if s.borrowed {
		panic(fmt.Errorf("%w: %s, stack %s", ErrBorrowed, op, s.id))
	}
}

// GrowSeq is Grow for derivations that yield their frames as a sequence.
// The sequence is fully drained before anything is pushed.
func (s *Stack[S, L]) GrowSeq(derive func(top L) iter.Seq[L]) bool {
	return s.Grow(func(top L) []L {
		return slices.Collect(derive(top))
	})
}

// Truncate pops frames, top down, until at most n remain. It returns the
// number of frames removed.
func (s *Stack[S, L]) Truncate(n int) int {
	s.checkNotBorrowed("truncate")
	removed := 0
	for s.Len() > n && s.vec.RemoveTail() {
		removed++
	}
	return removed
}

// Frames iterates copies of the at rest frames, bottom to top. No frame is
// made live.
func (s *Stack[S, L]) Frames() iter.Seq2[int, S] {
	return func(yield func(int, S) bool) {
		for i, p := range s.vec.All() {
			if !yield(int(i), *p) {
				return
			}
		}
	}
}

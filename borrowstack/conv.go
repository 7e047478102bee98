package borrowstack

// Conv converts between the at rest form S, held in the stack storage, and
// the live form L handed to callers.
type Conv[S, L any] interface {
	// Store converts a live value into its at rest form.
	Store(live L) S
	// Live returns a live view of the at rest value stored at s. The address
	// is stable until the frame is popped.
	Live(s *S) L
	// Own converts a frame removed from the stack into a value owned by the
	// caller.
	Own(s S) L
}

// Identity is the Conv for values that are the same at rest and live.
type Identity[T any] struct{}

func (Identity[T]) Store(live T) T { return live }
func (Identity[T]) Live(s *T) T    { return *s }
func (Identity[T]) Own(s T) T      { return s }

// ByPointer stores values of T and hands out live views as pointers into the
// stack storage. A value derived from a live view may retain that pointer.
type ByPointer[T any] struct{}

func (ByPointer[T]) Store(live *T) T { return *live }
func (ByPointer[T]) Live(s *T) *T    { return s }
func (ByPointer[T]) Own(s T) *T      { return &s }

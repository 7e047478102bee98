package borrowstack

/*

# Borrow stacks

A Stack holds frames in a stablearray.Array. Each frame is kept "at rest", in
a form S that holds no view tied to any other frame's lifetime. When a frame is
accessed it is presented "live", in a form L produced by a Conv. Only the top
frame is ever made live.

	     live  <- Peek / Grow hand out Conv.Live(&top)
	+---------+
	| frame 3 |  at rest, may point into frame 2
	+---------+
	| frame 2 |  at rest, may point into frame 1
	+---------+
	| frame 1 |  at rest
	+---------+

Grow calls a Deriver with the live top and pushes what it returns above the
top. A derived frame may keep pointers into the frame it was derived from:
the backing array never moves an element, so those pointers stay valid while
the stack grows, and the stack discipline means the source frame can only be
popped after everything derived from it has been popped.

Pop hands the top frame back through Conv.Own. The result is owned by the
caller and is no longer part of the stack.

Nothing here is checked at runtime. The burden of knowledge is on the
implementor of a Conv: Store must not capture views of the live value that
outlive the frame it came from, and a caller must not retain a view obtained
from Peek or Grow beyond a Pop of that frame. A popped slot is zeroed, but
while its segment is still in use the next Push reuses it, so a retained
pointer may observe a later frame.

The one rule that is checked: while a Deriver runs, Push, Pop, Grow and
Truncate on the same stack panic with ErrBorrowed.

*/

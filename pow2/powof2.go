package pow2

import (
	"fmt"
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// PowOf2 is an unsigned power of 2, stored as its exponent.
//
// The zero value is 2^0 = 1.
type PowOf2[T constraints.Unsigned] struct {
	exp uint8
}

// Width returns the bit width of T, which is the exclusive upper bound on
// exponents for PowOf2[T].
func Width[T constraints.Unsigned]() uint8 {
	return uint8(bits.Len64(uint64(^T(0))))
}

// TryFromExp returns 2^exp, or ErrExponentOverflow if exp is outside the
// domain of T
func TryFromExp[T constraints.Unsigned](exp uint8) (PowOf2[T], error) {
	if exp >= Width[T]() {
		return PowOf2[T]{}, fmt.Errorf(
			"%w: exponent %d, width %d", ErrExponentOverflow, exp, Width[T]())
	}
	return PowOf2[T]{exp: exp}, nil
}

// FromExp returns 2^exp and panics if exp is outside the domain of T
func FromExp[T constraints.Unsigned](exp uint8) PowOf2[T] {
	p, err := TryFromExp[T](exp)
	if err != nil {
		panic(err)
	}
	return p
}

// Of converts an exact power of two to its exponent form.
func Of[T constraints.Unsigned](n T) (PowOf2[T], error) {
	if !IsPow2(uint64(n)) {
		return PowOf2[T]{}, fmt.Errorf("%w: %d", ErrNotPow2, uint64(n))
	}
	return PowOf2[T]{exp: uint8(Log2Uint64(uint64(n)))}, nil
}

// TryPow raises p to a further power of two by adding exponents.
func (p PowOf2[T]) TryPow(e uint8) (PowOf2[T], error) {
	if e > math.MaxUint8-p.exp {
		return PowOf2[T]{}, fmt.Errorf(
			"%w: sum of exponents %d and %d is not representable", ErrExponentOverflow, p.exp, e)
	}
	return TryFromExp[T](p.exp + e)
}

// Pow is TryPow but panics if the result is outside the domain of T
func (p PowOf2[T]) Pow(e uint8) PowOf2[T] {
	r, err := p.TryPow(e)
	if err != nil {
		panic(err)
	}
	return r
}

// PowNeg lowers p by e. It never fails, the result bottoms out at 2^0
func (p PowOf2[T]) PowNeg(e uint8) PowOf2[T] {
	if e >= p.exp {
		return PowOf2[T]{}
	}
	return PowOf2[T]{exp: p.exp - e}
}

func (p PowOf2[T]) Mul(q PowOf2[T]) PowOf2[T] { return p.Pow(q.exp) }
func (p PowOf2[T]) Div(q PowOf2[T]) PowOf2[T] { return p.PowNeg(q.exp) }

// Double is p * 2
func (p PowOf2[T]) Double() PowOf2[T] { return p.Pow(1) }

// Half is p / 2, saturating at 1
func (p PowOf2[T]) Half() PowOf2[T] { return p.PowNeg(1) }

// Uint returns the represented value. It can not overflow, the exponent was
// checked on construction.
func (p PowOf2[T]) Uint() T {
	return T(1) << p.exp
}

func (p PowOf2[T]) Exp() uint8 {
	return p.exp
}

func (p PowOf2[T]) String() string {
	return fmt.Sprintf("2^%d", p.exp)
}

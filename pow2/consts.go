package pow2

// Named powers of two for the common uint64 case.
var (
	P1   = PowOf2[uint64]{exp: 0}
	P2   = PowOf2[uint64]{exp: 1}
	P4   = PowOf2[uint64]{exp: 2}
	P8   = PowOf2[uint64]{exp: 3}
	P16  = PowOf2[uint64]{exp: 4}
	P32  = PowOf2[uint64]{exp: 5}
	P64  = PowOf2[uint64]{exp: 6}
	P128 = PowOf2[uint64]{exp: 7}
	P256 = PowOf2[uint64]{exp: 8}
	P512 = PowOf2[uint64]{exp: 9}

	Kibi = PowOf2[uint64]{exp: 10}
	Mebi = PowOf2[uint64]{exp: 20}
	Gibi = PowOf2[uint64]{exp: 30}
	Tebi = PowOf2[uint64]{exp: 40}
	Pebi = PowOf2[uint64]{exp: 50}
	Exbi = PowOf2[uint64]{exp: 60}
)

package pow2

/*

# Powers of two as exponents

PowOf2 is an integer-like value that can only represent exact powers of two.
It is stored as a single byte exponent, so multiplying and dividing by other
powers of two is exponent addition and subtraction, and converting to the
plain integer is a single shift.

The width of the target unsigned type bounds the exponent. For PowOf2[uint64]
the valid exponents are 0..63. Construction and multiplication check this
bound. Division never fails, it bottoms out at 2^0 = 1.

The stablearray package uses PowOf2[uint64] for the size of its first segment.
Segment k then holds base << k elements and every index calculation is a
shift, never a division:

	segment   0     1        2        3 ...
	capacity  2^b   2^(b+1)  2^(b+2)  2^(b+3)
	first     0     2^b      3*2^b    7*2^b

The first index of segment k is (2^k - 1) * 2^b. Inverting that for an element
index i needs only the position of the highest set bit of (i >> b) + 1, see
BitLength64.

*/

package bignum

import "fmt"

// The digit kernel. Every digit is a uint32 and every intermediate is
// computed exactly in a uint64, which holds any x*y + c + z for digits
// x, y, c, z:
//
//	(B-1)*(B-1) + (B-1) + (B-1) == B*B - 1

// mulCarry returns digit, carry such that digit + carry*_B == x*y + c.
func mulCarry(c, x, y uint32) (digit, carry uint32) {
	t := uint64(x)*uint64(y) + uint64(c)
	return uint32(t), uint32(t >> _W)
}

// mulAddCarry returns digit, carry such that digit + carry*_B == x*y + c + z.
func mulAddCarry(z, c, x, y uint32) (digit, carry uint32) {
	t := uint64(x)*uint64(y) + uint64(c) + uint64(z)
	return uint32(t), uint32(t >> _W)
}

// divCarry divides the two-digit numerator hi*_B + lo by d, returning q, r
// such that hi*_B + lo == q*d + r and r < d. hi must be less than d, which
// guarantees q fits in one digit.
func divCarry(hi, lo, d uint32) (q, r uint32) {
	if hi >= d {
		panic(invariantf("divCarry: high digit %#x >= divisor %#x", hi, d))
	}
	n := uint64(hi)<<_W | uint64(lo)
	return uint32(n / uint64(d)), uint32(n % uint64(d))
}

// addCarry returns x + y + c as a digit and a carry of 0 or 1.
func addCarry(x, y, c uint32) (sum, carry uint32) {
	t := uint64(x) + uint64(y) + uint64(c)
	return uint32(t), uint32(t >> _W)
}

// subBorrow returns x - y - b as a digit and a borrow of 0 or 1.
func subBorrow(x, y, b uint32) (diff, borrow uint32) {
	t := uint64(x) - uint64(y) - uint64(b)
	return uint32(t), uint32(t>>_W) & 1
}

func invariantf(msg string, args ...interface{}) error {
	return fmt.Errorf("bignum: %w: %s", ErrInternalInvariant, fmt.Sprintf(msg, args...))
}

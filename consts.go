package bignum

import "errors"

const (
	_W = 32            // digit size in bits
	_B = 1 << _W       // digit base
	_M = _B - 1        // digit mask
	_H = 1 << (_W - 1) // half base; a normalized divisor's top digit is >= _H

	// MaxLimbs bounds the size of results whose size is chosen by the caller
	// rather than by the operands, such as Pow.
	MaxLimbs = 1_000_000

	// MaxExactExponent is the largest exponent Pow accepts for bases other
	// than -1, 0 and 1: the largest integer a float64 represents exactly.
	MaxExactExponent = 1 << 53

	// MinRadix and MaxRadix bound the radix accepted by Text and
	// IntFromStringBase.
	MinRadix = 2
	MaxRadix = 36

	// directLimbs is the largest magnitude, in digits, that Text renders
	// without splitting it in half first.
	directLimbs = 8

	intSize = 32 << (^uint(0) >> 63)
)

var (
	ErrInvalidLiteral      = errors.New("invalid literal")
	ErrInvalidRadix        = errors.New("invalid radix")
	ErrDivisionByZero      = errors.New("division by zero")
	ErrPrecisionLoss       = errors.New("precision loss")
	ErrUnsupportedExponent = errors.New("unsupported exponent")

	// ErrInternalInvariant is never returned. It is wrapped by the value
	// passed to panic when an arithmetic invariant is broken, which
	// indicates a bug in this package.
	ErrInternalInvariant = errors.New("internal invariant violated")
)

var (
	oneInt = Int{abs: nat{1}}

	// radixPows[b] holds the largest power of b that is still a digit, and
	// the number of base-b digits it spans. Parsing folds that many
	// characters into the magnitude per multiply-add; formatting peels that
	// many characters off per division.
	radixPows [MaxRadix + 1]struct {
		pow uint32
		n   int
	}
)

func init() {
	for b := MinRadix; b <= MaxRadix; b++ {
		p, n := uint64(b), 1
		for p*uint64(b) < _B {
			p *= uint64(b)
			n++
		}
		radixPows[b].pow, radixPows[b].n = uint32(p), n
	}
}

package bignum

import (
	"fmt"
	"math"

	"fortio.org/safecast"
)

// IntFromFloat64 converts an integral float64 whose magnitude is less than
// 2**32. NaN, infinities, fractions and larger magnitudes return an error
// wrapping ErrPrecisionLoss; parse larger values with IntFromString.
func IntFromFloat64(f float64) (Int, error) {
	v, err := safecast.Convert[int64](f)
	if err != nil {
		return Int{}, fmt.Errorf("bignum: float %v: %w: %v", f, ErrPrecisionLoss, err)
	}
	if v <= -_B || v >= _B {
		return Int{}, fmt.Errorf("bignum: float %v: %w: magnitude must be below %d, use IntFromString", f, ErrPrecisionLoss, uint64(_B))
	}
	return IntFrom64(v), nil
}

// AsFloat64 returns the float64 nearest to i, rounding ties to even.
// Magnitudes beyond the range of a float64 return ±Inf. The conversion is
// lossy for magnitudes that need more than 53 significant bits.
func (i Int) AsFloat64() float64 {
	var f float64
	if len(i.abs) <= 2 {
		f = float64(i.low64())
	} else {
		top, shift := i.abs.top64()
		f = math.Ldexp(float64(top), shift)
	}
	if i.neg {
		return -f
	}
	return f
}

// top64 returns the 64 most significant bits of x, which must be longer
// than 64 bits, such that x ~= top << shift. If any of the shifted out bits
// are set, the lowest bit of top is set so that float64(top) rounds the
// same way x would.
func (x nat) top64() (top uint64, shift int) {
	shift = x.bitLen() - 64
	w, b := shift/_W, uint(shift%_W)

	top = uint64(x[w]) >> b
	if w+1 < len(x) {
		top |= uint64(x[w+1]) << (_W - b)
	}
	if w+2 < len(x) {
		top |= uint64(x[w+2]) << (2*_W - b)
	}

	sticky := x[w]&(1<<b-1) != 0
	for _, d := range x[:w] {
		sticky = sticky || d != 0
	}
	if sticky {
		top |= 1
	}
	return top, shift
}

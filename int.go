package bignum

import (
	"fmt"
	"math/big"
	"math/bits"

	"fortio.org/safecast"
)

// Int is an arbitrary-precision signed integer. The zero value is 0.
//
// Int is a value type: no method modifies its receiver or arguments, and
// results never share storage with operands, so an Int may be copied and
// used from any number of goroutines.
type Int struct {
	neg bool // never true when abs is empty
	abs nat
}

// makeInt builds an Int from a magnitude, dropping the sign of zero.
func makeInt(neg bool, abs nat) Int {
	abs = abs.norm()
	if len(abs) == 0 {
		return Int{}
	}
	return Int{neg: neg, abs: abs}
}

func IntFrom64(v int64) Int {
	if v < 0 {
		// -(v+1) cannot overflow; the +1 restores the magnitude of MinInt64.
		return Int{neg: true, abs: natFromU64(uint64(-(v + 1)) + 1)}
	}
	return Int{abs: natFromU64(uint64(v))}
}

func IntFrom32(v int32) Int   { return IntFrom64(int64(v)) }
func IntFromInt(v int) Int    { return IntFrom64(int64(v)) }
func IntFromU64(v uint64) Int { return Int{abs: natFromU64(v)} }

func natFromU64(v uint64) nat {
	if v == 0 {
		return nil
	}
	if v>>_W == 0 {
		return nat{uint32(v)}
	}
	return nat{uint32(v), uint32(v >> _W)}
}

// IntFromBigInt creates an Int from a big.Int.
func IntFromBigInt(v *big.Int) Int {
	words := v.Bits()
	var abs nat

	switch intSize {
	case 64:
		abs = make(nat, 0, 2*len(words))
		for _, w := range words {
			abs = append(abs, uint32(w), uint32(uint64(w)>>32))
		}
	case 32:
		abs = make(nat, len(words))
		for i, w := range words {
			abs[i] = uint32(w)
		}
	default:
		panic("bignum: unsupported bit size")
	}
	return makeInt(v.Sign() < 0, abs)
}

// AsBigInt allocates a new big.Int and copies this Int into it.
func (i Int) AsBigInt() *big.Int {
	var words []big.Word

	switch intSize {
	case 64:
		words = make([]big.Word, (len(i.abs)+1)/2)
		for j, d := range i.abs {
			words[j/2] |= big.Word(d) << (32 * uint(j%2))
		}
	case 32:
		words = make([]big.Word, len(i.abs))
		for j, d := range i.abs {
			words[j] = big.Word(d)
		}
	default:
		panic("bignum: unsupported bit size")
	}

	b := new(big.Int).SetBits(words)
	if i.neg {
		b.Neg(b)
	}
	return b
}

func (i Int) IsZero() bool { return len(i.abs) == 0 }

// Sign returns -1, 0 or 1 as i is negative, zero or positive.
func (i Int) Sign() int {
	switch {
	case len(i.abs) == 0:
		return 0
	case i.neg:
		return -1
	}
	return 1
}

// BitLen returns the length of the absolute value of i in bits. The bit
// length of 0 is 0.
func (i Int) BitLen() int { return i.abs.bitLen() }

// IsInt64 reports whether i can be represented as an int64.
func (i Int) IsInt64() bool {
	if len(i.abs) > 2 {
		return false
	}
	v := i.low64()
	if i.neg {
		return v <= 1<<63
	}
	return v < 1<<63
}

// AsInt64 truncates i to fit in an int64, keeping the low 64 bits of its
// two's complement form. See IsInt64 to check first.
func (i Int) AsInt64() int64 {
	v := i.low64()
	if i.neg {
		v = -v
	}
	return int64(v)
}

func (i Int) low64() uint64 {
	switch len(i.abs) {
	case 0:
		return 0
	case 1:
		return uint64(i.abs[0])
	}
	return uint64(i.abs[1])<<_W | uint64(i.abs[0])
}

func (i Int) Neg() Int {
	if len(i.abs) == 0 {
		return i
	}
	return Int{neg: !i.neg, abs: i.abs.clone()}
}

func (i Int) Abs() Int {
	return Int{abs: i.abs.clone()}
}

func (i Int) Add(n Int) Int {
	return addSigned(i.neg, i.abs, n.neg, n.abs)
}

func (i Int) Sub(n Int) Int {
	return addSigned(i.neg, i.abs, !n.neg, n.abs)
}

// addSigned adds two sign-magnitude values. Magnitudes of equal sign are
// added; otherwise the smaller is taken from the larger, which lends the
// result its sign.
func addSigned(xneg bool, x nat, yneg bool, y nat) Int {
	if xneg == yneg {
		return makeInt(xneg, x.add(y))
	}
	switch x.cmp(y) {
	case 1:
		return makeInt(xneg, x.sub(y))
	case -1:
		return makeInt(yneg, y.sub(x))
	}
	return Int{}
}

func (i Int) Mul(n Int) Int {
	return makeInt(i.neg != n.neg, i.abs.mul(n.abs))
}

// QuoRem returns the quotient q and remainder r of i / by. If by is zero,
// ErrDivisionByZero is returned.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// See Mod for floored modulus.
func (i Int) QuoRem(by Int) (q, r Int, err error) {
	qa, ra, err := i.abs.divmod(by.abs)
	if err != nil {
		return q, r, fmt.Errorf("bignum: divide: %w", err)
	}
	return makeInt(i.neg != by.neg, qa), makeInt(i.neg, ra), nil
}

// Quo returns the quotient i/by truncated towards zero. See QuoRem.
func (i Int) Quo(by Int) (q Int, err error) {
	q, _, err = i.QuoRem(by)
	return q, err
}

// Rem returns the remainder of i/by; its sign follows i. See QuoRem.
func (i Int) Rem(by Int) (r Int, err error) {
	_, r, err = i.QuoRem(by)
	return r, err
}

// Mod returns the floored modulus of i and by: the result has the sign of
// by and is smaller than it in magnitude. If by is zero, ErrDivisionByZero
// is returned.
//
//	IntFrom64(-7).Mod(IntFrom64(3))  == 2
//	IntFrom64(7).Mod(IntFrom64(-3))  == -2
//
// Mod differs from Euclidean modulus (big.Int.Mod) when by is negative.
func (i Int) Mod(by Int) (m Int, err error) {
	r, err := i.Rem(by)
	if err != nil {
		return m, err
	}
	if !i.neg && !by.neg {
		return r, nil
	}
	return r.Add(by).Rem(by)
}

// Pow returns i**e. e must not be negative. Exponents above
// MaxExactExponent are only accepted for the bases -1, 0 and 1; every other
// exponent must also keep the result within MaxLimbs digits. Otherwise
// ErrUnsupportedExponent is returned.
func (i Int) Pow(e Int) (Int, error) {
	switch {
	case e.neg:
		return Int{}, fmt.Errorf("bignum: pow: %w: negative exponent", ErrUnsupportedExponent)
	case len(e.abs) <= 2:
		return i.PowU64(e.low64())
	case len(i.abs) == 0:
		return Int{}, nil
	case i.abs.isOne():
		return Int{neg: i.neg && e.abs[0]&1 == 1, abs: nat{1}}, nil
	}
	return Int{}, fmt.Errorf("bignum: pow: %w: exponent exceeds %d", ErrUnsupportedExponent, uint64(MaxExactExponent))
}

// PowU64 returns i**e. See Pow.
func (i Int) PowU64(e uint64) (Int, error) {
	switch {
	case len(i.abs) == 0:
		if e == 0 {
			return oneInt, nil
		}
		return Int{}, nil

	case i.abs.isOne():
		return Int{neg: i.neg && e&1 == 1, abs: nat{1}}, nil

	case e > MaxExactExponent:
		return Int{}, fmt.Errorf("bignum: pow: %w: exponent %d exceeds %d", ErrUnsupportedExponent, e, uint64(MaxExactExponent))

	case e == 0:
		return oneInt, nil
	}

	// The result has at least (BitLen-1)*e + 1 bits; hi is zero unless that
	// overflows a uint64.
	hi, lo := bits.Mul64(uint64(i.abs.bitLen()-1), e)
	if hi != 0 || lo >= MaxLimbs*_W {
		return Int{}, fmt.Errorf("bignum: pow: %w: result of exponent %d exceeds %d digits", ErrUnsupportedExponent, e, MaxLimbs)
	}

	neg := i.neg && e&1 == 1
	if k, ok := i.abs.log2(); ok {
		ku, err := safecast.Conv[uint64](k)
		if err != nil {
			panic(invariantf("PowU64: %v", err))
		}
		return Int{neg: neg, abs: pow2(ku * e)}, nil
	}
	return Int{neg: neg, abs: i.abs.pow(e)}, nil
}

// Cmp compares i to n and returns:
//
//	-1 if i <  n
//	 0 if i == n
//	+1 if i >  n
func (i Int) Cmp(n Int) int {
	switch {
	case i.neg != n.neg:
		if i.neg {
			return -1
		}
		return 1
	case i.neg:
		return n.abs.cmp(i.abs)
	}
	return i.abs.cmp(n.abs)
}

func (i Int) Equal(n Int) bool            { return i.neg == n.neg && i.abs.cmp(n.abs) == 0 }
func (i Int) LessThan(n Int) bool         { return i.Cmp(n) < 0 }
func (i Int) LessOrEqualTo(n Int) bool    { return i.Cmp(n) <= 0 }
func (i Int) GreaterThan(n Int) bool      { return i.Cmp(n) > 0 }
func (i Int) GreaterOrEqualTo(n Int) bool { return i.Cmp(n) >= 0 }

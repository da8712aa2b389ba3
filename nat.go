package bignum

import (
	"math/bits"
)

// nat is an unsigned magnitude x of the form
//
//	x = x[n-1]*_B^(n-1) + x[n-2]*_B^(n-2) + ... + x[1]*_B + x[0]
//
// with 0 <= x[i] < _B, least significant digit first.
//
// A nat is normalized if its most significant digit is non-zero. The
// normalized representation of 0 is the empty or nil slice. Every method
// below treats its receiver and arguments as read-only and returns a
// normalized result in freshly allocated storage, so results never alias
// operands.
type nat []uint32

func (z nat) norm() nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	if i == 0 {
		return nil
	}
	return z[:i]
}

func (x nat) clone() nat {
	if len(x) == 0 {
		return nil
	}
	z := make(nat, len(x))
	copy(z, x)
	return z
}

func (x nat) isOne() bool { return len(x) == 1 && x[0] == 1 }

func (x nat) bitLen() int {
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*_W + bits.Len32(x[len(x)-1])
}

// log2 reports k if x == 1<<k.
func (x nat) log2() (k int, ok bool) {
	if len(x) == 0 {
		return 0, false
	}
	top := x[len(x)-1]
	if top&(top-1) != 0 {
		return 0, false
	}
	for _, d := range x[:len(x)-1] {
		if d != 0 {
			return 0, false
		}
	}
	return x.bitLen() - 1, true
}

// cmp returns -1, 0 or 1 as x is less than, equal to or greater than y.
func (x nat) cmp(y nat) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

func (x nat) add(y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	if len(y) == 0 {
		return x.clone()
	}

	z := make(nat, len(x)+1)
	var c uint32
	for i := range y {
		z[i], c = addCarry(x[i], y[i], c)
	}
	for i := len(y); i < len(x); i++ {
		z[i], c = addCarry(x[i], 0, c)
	}
	z[len(x)] = c
	return z.norm()
}

// sub returns x - y. The caller guarantees x >= y.
func (x nat) sub(y nat) nat {
	if len(y) > len(x) {
		panic(invariantf("sub: subtrahend longer than minuend"))
	}

	z := make(nat, len(x))
	var b uint32
	for i := range y {
		z[i], b = subBorrow(x[i], y[i], b)
	}
	for i := len(y); i < len(x); i++ {
		z[i], b = subBorrow(x[i], 0, b)
	}
	if b != 0 {
		panic(invariantf("sub: subtrahend greater than minuend"))
	}
	return z.norm()
}

// mul is plain schoolbook multiplication, O(len(x)*len(y)).
func (x nat) mul(y nat) nat {
	switch {
	case len(x) == 0 || len(y) == 0:
		return nil
	case x.isOne():
		return y.clone()
	case y.isOne():
		return x.clone()
	}

	z := make(nat, len(x)+len(y))
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		var c uint32
		for j, yj := range y {
			z[i+j], c = mulAddCarry(z[i+j], c, xi, yj)
		}
		z[i+len(y)] = c
	}
	return z.norm()
}

// mulAddW returns x*y + r.
func (x nat) mulAddW(y, r uint32) nat {
	if len(x) == 0 || y == 0 {
		if r == 0 {
			return nil
		}
		return nat{r}
	}

	z := make(nat, len(x)+1)
	c := r
	for i, xi := range x {
		z[i], c = mulCarry(c, xi, y)
	}
	z[len(x)] = c
	return z.norm()
}

// divW returns x / d and x % d. d must not be 0.
func (x nat) divW(d uint32) (q nat, r uint32) {
	switch {
	case d == 0:
		panic(invariantf("divW: zero divisor"))
	case len(x) == 0:
		return nil, 0
	case d == 1:
		return x.clone(), 0
	}

	q = make(nat, len(x))
	for i := len(x) - 1; i >= 0; i-- {
		q[i], r = divCarry(r, x[i], d)
	}
	return q.norm(), r
}

// divmod returns the truncated quotient and remainder of u / v.
func (u nat) divmod(v nat) (q, r nat, err error) {
	switch {
	case len(v) == 0:
		return nil, nil, ErrDivisionByZero
	case v.isOne():
		return u.clone(), nil, nil
	case u.cmp(v) < 0:
		return nil, u.clone(), nil
	case len(v) == 1:
		q, rw := u.divW(v[0])
		if rw == 0 {
			return q, nil, nil
		}
		return q, nat{rw}, nil
	}

	q, r = divLong(u, v)
	return q, r, nil
}

// divLong is Knuth's Algorithm D (TAOCP vol. 2, 4.3.1) for len(v) >= 2 and
// u >= v.
func divLong(u, v nat) (q, r nat) {
	n := len(v)
	m := len(u) - n

	// Scale both operands by lambda so the divisor's top digit is at least
	// _B/2. That bounds the trial quotient below to at most 2 too large.
	// Scaling never lengthens v; u gets one extra digit either way.
	lambda := uint32(_B / (uint64(v[n-1]) + 1))
	un := make(nat, len(u)+1)
	vn := v
	if lambda > 1 {
		var c uint32
		for i, ui := range u {
			un[i], c = mulCarry(c, ui, lambda)
		}
		un[len(u)] = c

		vn = make(nat, n)
		c = 0
		for i, vi := range v {
			vn[i], c = mulCarry(c, vi, lambda)
		}
		if c != 0 {
			panic(invariantf("divLong: scaled divisor overflowed"))
		}
	} else {
		copy(un, u)
	}

	vTop := vn[n-1]
	if vTop < _H {
		panic(invariantf("divLong: divisor top digit %#x not normalized", vTop))
	}

	q = make(nat, m+1)
	for j := m; j >= 0; j-- {
		// un[j:j+n+1] < vn*_B, so un[j+n] <= vTop; when equal the estimate
		// would not fit in a digit and is clamped.
		qhat := uint32(_M)
		if un[j+n] < vTop {
			qhat, _ = divCarry(un[j+n], un[j+n-1], vTop)
		}

		// un[j:j+n+1] -= qhat * vn
		var c, b uint32
		for i := 0; i < n; i++ {
			var p uint32
			p, c = mulCarry(c, qhat, vn[i])
			un[j+i], b = subBorrow(un[j+i], p, b)
		}
		un[j+n], b = subBorrow(un[j+n], c, b)

		// A final borrow means qhat was too large; the carry out of adding
		// vn back cancels it.
		for adds := 0; b != 0; adds++ {
			if adds == 2 {
				panic(invariantf("divLong: trial quotient off by more than 2"))
			}
			qhat--
			var k uint32
			for i := 0; i < n; i++ {
				un[j+i], k = addCarry(un[j+i], vn[i], k)
			}
			un[j+n], k = addCarry(un[j+n], 0, k)
			if k != 0 {
				b = 0
			}
		}
		q[j] = qhat
	}

	r = un[:n].norm()
	if lambda > 1 {
		var rem uint32
		r, rem = r.divW(lambda)
		if rem != 0 {
			panic(invariantf("divLong: %d left over after unscaling remainder", rem))
		}
	}
	return q.norm(), r
}

// pow returns x**e by binary exponentiation.
func (x nat) pow(e uint64) nat {
	z := nat{1}
	for e > 0 {
		if e&1 == 1 {
			z = z.mul(x)
		}
		e >>= 1
		if e > 0 {
			x = x.mul(x)
		}
	}
	return z
}

// pow2 returns 1<<k.
func pow2(k uint64) nat {
	z := make(nat, k/_W+1)
	z[k/_W] = 1 << (k % _W)
	return z
}

package bignum

type RandSource interface {
	Uint64() uint64
}

// RandInt returns an Int with a random sign and a magnitude of up to limbs
// random digits. Negative limb counts are treated as zero.
func RandInt(source RandSource, limbs int) Int {
	if limbs <= 0 {
		return Int{}
	}
	abs := make(nat, limbs)
	for i := 0; i < limbs; i += 2 {
		v := source.Uint64()
		abs[i] = uint32(v)
		if i+1 < limbs {
			abs[i+1] = uint32(v >> _W)
		}
	}
	return makeInt(source.Uint64()&1 == 1, abs)
}

// DifferenceInt subtracts the smaller of a and b from the larger.
func DifferenceInt(a, b Int) Int {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}

func LargerInt(a, b Int) Int {
	if a.LessThan(b) {
		return b
	}
	return a
}

func SmallerInt(a, b Int) Int {
	if b.LessThan(a) {
		return b
	}
	return a
}

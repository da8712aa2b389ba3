package bignum

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestIntAsFloat64(t *testing.T) {
	for idx, tc := range []struct {
		a   string
		out float64
	}{
		{"0", 0},
		{"1", 1},
		{"-120", -120},
		{"0xffffffff", math.MaxUint32},
		{"0x1f ffffffff ffffffff", 0x1fffffffffffffffff},
		{"9007199254740993", 9007199254740992},   // 2**53+1: tie, round to even
		{"9007199254740995", 9007199254740996},   // 2**53+3: tie, round to even
		{"-9007199254740993", -9007199254740992}, // sign is symmetric

		// Ties and near-ties decided by bits below the top 64:
		{"0x10000000000000800000000000", 0x10000000000000000000000000},
		{"0x10000000000000800000000001", 0x10000000000001000000000000},
		{"0x10000000000001800000000000", 0x10000000000002000000000000},
		{"0x100000000000017fffffffffff", 0x10000000000001000000000000},

		{"0xffffffff ffffffff ffffffff ffffffff", 0x100000000000000000000000000000000},
		{"179769313486231570814527423731704356798070567525844996598917476803157260780028538760589558632766878171540458953514382464234321326889464182768467546703537516986049910576551282076245490090389328944075868508455133942304583236903222948165808559332123348274797826204144723168738177180919299881250404026184124858368", math.MaxFloat64},
		{"-179769313486231570814527423731704356798070567525844996598917476803157260780028538760589558632766878171540458953514382464234321326889464182768467546703537516986049910576551282076245490090389328944075868508455133942304583236903222948165808559332123348274797826204144723168738177180919299881250404026184124858368", -math.MaxFloat64},
	} {
		t.Run(fmt.Sprintf("%d/float64(%s)", idx, tc.a), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := ints(tc.a)
			tt.MustEqual(tc.out, v.AsFloat64())

			bf, _ := new(big.Float).SetInt(v.AsBigInt()).Float64()
			tt.MustEqual(bf, v.AsFloat64())
		})
	}
}

func TestIntAsFloat64Overflow(t *testing.T) {
	tt := assert.WrapTB(t)
	huge := IntFromBigInt(new(big.Int).Lsh(big1, 1024))
	tt.MustAssert(math.IsInf(huge.AsFloat64(), 1))
	tt.MustAssert(math.IsInf(huge.Neg().AsFloat64(), -1))

	// Halfway between MaxFloat64 and 2**1024 rounds up to the even mantissa,
	// which overflows.
	half := new(big.Int).Lsh(big1, 1024)
	half.Sub(half, new(big.Int).Lsh(big1, 970))
	tt.MustAssert(math.IsInf(IntFromBigInt(half).AsFloat64(), 1))
	half.Sub(half, big1)
	tt.MustEqual(math.MaxFloat64, IntFromBigInt(half).AsFloat64())
}

func TestIntAsFloat64Random(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 20000; i++ {
		b := randomBigInt(globalRNG, 36)
		bf, _ := new(big.Float).SetInt(b).Float64()
		tt.MustEqual(bf, IntFromBigInt(b).AsFloat64(), "float64(%s)", b)
	}
}

func TestIntFromFloat64(t *testing.T) {
	for idx, tc := range []struct {
		f   float64
		out Int
	}{
		{0, i64(0)},
		{math.Copysign(0, -1), i64(0)},
		{1, i64(1)},
		{-1, i64(-1)},
		{123456, i64(123456)},
		{math.MaxUint32, i64(math.MaxUint32)},
		{-math.MaxUint32, i64(-math.MaxUint32)},
	} {
		t.Run(fmt.Sprintf("%d/fromfloat64(%f)==%s", idx, tc.f, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := IntFromFloat64(tc.f)
			tt.MustOK(err)
			tt.MustAssert(tc.out.Equal(v), "%s", v)
			tt.MustAssert(checkNormalized(v))
			tt.MustEqual(tc.f, v.AsFloat64())
		})
	}
}

func TestIntFromFloat64PrecisionLoss(t *testing.T) {
	for idx, f := range []float64{
		math.NaN(),
		math.Inf(1),
		math.Inf(-1),
		0.5,
		-1.25,
		1 << 32,
		-(1 << 32),
		1 << 62,
		1e300,
		math.SmallestNonzeroFloat64,
	} {
		t.Run(fmt.Sprintf("%d/fromfloat64(%g)", idx, f), func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, err := IntFromFloat64(f)
			tt.MustAssert(errors.Is(err, ErrPrecisionLoss), "%v", err)
		})
	}
}

func TestIntTop64(t *testing.T) {
	tt := assert.WrapTB(t)

	top, shift := nats("0x1 00000000 00000000").top64()
	tt.MustEqual(uint64(1<<63), top)
	tt.MustEqual(1, shift)

	top, shift = nats("0x1 00000000 00000001").top64()
	tt.MustEqual(uint64(1<<63|1), top)
	tt.MustEqual(1, shift)

	top, shift = nats("0xffffffff ffffffff 00000000 00000000").top64()
	tt.MustEqual(uint64(math.MaxUint64), top)
	tt.MustEqual(64, shift)
}

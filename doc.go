/*
Package bignum provides an arbitrary-precision signed integer, Int,
implementing most of the big.Int API as immutable values.

Int is a value type; all operations return new values and never modify
their operands, so Ints can be shared freely between goroutines. The zero
value is 0.

Simple example:

	a := MustIntFromString("0xffffffffffffffffffffffff")
	b := IntFrom64(-3)
	fmt.Println(a.Mul(b))
	// Output: -237684487542793012780631851005

Int can be created from a variety of sources:

	IntFrom64(v int64) Int
	IntFrom32(v int32) Int
	IntFromInt(v int) Int
	IntFromU64(v uint64) Int
	IntFromString(s string) (Int, error)
	IntFromStringBase(s string, base int) (Int, error)
	IntFromFloat64(f float64) (Int, error)
	IntFromBigInt(v *big.Int) Int

Division follows Go: Quo truncates towards zero and Rem takes the sign of
the dividend. Mod is the floored modulus, which takes the sign of the
divisor. Failures are reported as errors wrapping one of the Err values,
to be tested with errors.Is.

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
	- msgpack.CustomEncoder
	- msgpack.CustomDecoder

*/
package bignum

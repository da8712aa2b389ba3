package bignum

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
	"github.com/vmihailenco/msgpack/v5"
)

func TestIntMarshalJSON(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 2000; i++ {
		n := IntFromBigInt(randomBigInt(globalRNG, 10))

		bts, err := json.Marshal(n)
		tt.MustOK(err)
		tt.MustEqual(`"`+n.String()+`"`, string(bts))

		var result Int
		tt.MustOK(json.Unmarshal(bts, &result))
		tt.MustAssert(result.Equal(n))
	}
}

func TestIntUnmarshalJSON(t *testing.T) {
	for idx, tc := range []struct {
		in  string
		out Int
	}{
		{`"0"`, i64(0)},
		{`0`, i64(0)},
		{`"-12"`, i64(-12)},
		{`-12`, i64(-12)},
		{`"0xff"`, i64(255)},
		{`18446744073709551616`, ints("0x1 00000000 00000000")},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			var result Int
			tt.MustOK(json.Unmarshal([]byte(tc.in), &result))
			tt.MustAssert(tc.out.Equal(result), "%s", result)
		})
	}
}

func TestIntUnmarshalJSONInvalid(t *testing.T) {
	tt := assert.WrapTB(t)

	var result Int
	tt.MustAssert(result.UnmarshalJSON([]byte(`"12`)) != nil)
	tt.MustAssert(result.UnmarshalJSON([]byte(`"`)) != nil)
	tt.MustAssert(errors.Is(result.UnmarshalJSON([]byte(`""`)), ErrInvalidLiteral))
	tt.MustAssert(errors.Is(result.UnmarshalJSON([]byte(`1.5`)), ErrInvalidLiteral))
	tt.MustAssert(errors.Is(result.UnmarshalJSON(nil), ErrInvalidLiteral))
	tt.MustAssert(result.IsZero())
}

func TestIntMarshalJSONInStruct(t *testing.T) {
	tt := assert.WrapTB(t)

	type doc struct {
		Values []Int `json:"values"`
	}
	in := doc{Values: []Int{i64(-1), ints("0xffffffff ffffffff ffffffff")}}
	bts, err := json.Marshal(in)
	tt.MustOK(err)
	tt.MustEqual(`{"values":["-1","79228162514264337593543950335"]}`, string(bts))

	var out doc
	tt.MustOK(json.Unmarshal(bts, &out))
	tt.MustEqual(len(in.Values), len(out.Values))
	for i := range in.Values {
		tt.MustAssert(in.Values[i].Equal(out.Values[i]))
	}
}

func TestIntMarshalText(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 1000; i++ {
		n := IntFromBigInt(randomBigInt(globalRNG, 10))

		bts, err := n.MarshalText()
		tt.MustOK(err)

		var result Int
		tt.MustOK(result.UnmarshalText(bts))
		tt.MustAssert(result.Equal(n))
	}

	var result Int
	tt.MustAssert(errors.Is(result.UnmarshalText([]byte("abc")), ErrInvalidLiteral))
}

func TestIntMsgpack(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 1000; i++ {
		n := IntFromBigInt(randomBigInt(globalRNG, 10))

		bts, err := msgpack.Marshal(n)
		tt.MustOK(err)

		var result Int
		tt.MustOK(msgpack.Unmarshal(bts, &result))
		tt.MustAssert(result.Equal(n), "%s != %s", result, n)
		tt.MustAssert(checkNormalized(result))
	}
}

func TestIntMsgpackStream(t *testing.T) {
	tt := assert.WrapTB(t)

	in := []Int{i64(0), i64(-1), ints("0x1 00000000 00000000"), ints("-0xffffffff ffffffff ffffffff")}

	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	for _, v := range in {
		tt.MustOK(enc.Encode(v))
	}

	dec := msgpack.NewDecoder(&buf)
	for _, v := range in {
		var result Int
		tt.MustOK(dec.Decode(&result))
		tt.MustAssert(result.Equal(v), "%s != %s", result, v)
	}
}

func TestIntMsgpackNormalizes(t *testing.T) {
	tt := assert.WrapTB(t)

	// A negative zero with a trailing zero digit, written by hand:
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	tt.MustOK(enc.EncodeArrayLen(3))
	tt.MustOK(enc.EncodeBool(true))
	tt.MustOK(enc.EncodeUint32(0))
	tt.MustOK(enc.EncodeUint32(0))

	var result Int
	tt.MustOK(msgpack.Unmarshal(buf.Bytes(), &result))
	tt.MustAssert(result.IsZero())
	tt.MustAssert(checkNormalized(result))
}

func TestIntMsgpackInvalid(t *testing.T) {
	tt := assert.WrapTB(t)

	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	tt.MustOK(enc.EncodeArrayLen(0))

	var result Int
	tt.MustAssert(msgpack.Unmarshal(buf.Bytes(), &result) != nil)

	bts, err := msgpack.Marshal("12")
	tt.MustOK(err)
	tt.MustAssert(msgpack.Unmarshal(bts, &result) != nil)
}

package bignum

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = Int{}
	_ msgpack.CustomDecoder = (*Int)(nil)
)

func (i Int) MarshalText() ([]byte, error) {
	return i.appendText(nil, 10), nil
}

func (i *Int) UnmarshalText(bts []byte) (err error) {
	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalJSON encodes i as a quoted decimal string, as JSON numbers lose
// precision in most decoders.
func (i Int) MarshalJSON() ([]byte, error) {
	bts := make([]byte, 0, len(i.abs)*10+3)
	bts = append(bts, '"')
	bts = i.appendText(bts, 10)
	return append(bts, '"'), nil
}

// UnmarshalJSON accepts both quoted and bare integer literals. A JSON null
// leaves i unchanged.
func (i *Int) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("bignum: int invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// EncodeMsgpack writes i as an array holding the sign followed by the
// digits of the magnitude, least significant first.
func (i Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(len(i.abs) + 1); err != nil {
		return err
	}
	if err := enc.EncodeBool(i.neg); err != nil {
		return err
	}
	for _, d := range i.abs {
		if err := enc.EncodeUint32(d); err != nil {
			return err
		}
	}
	return nil
}

func (i *Int) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n < 1 {
		return fmt.Errorf("bignum: int invalid msgpack array length %d", n)
	}
	neg, err := dec.DecodeBool()
	if err != nil {
		return err
	}

	var abs nat
	for j := 1; j < n; j++ {
		d, err := dec.DecodeUint32()
		if err != nil {
			return err
		}
		abs = append(abs, d)
	}
	*i = makeInt(neg, abs)
	return nil
}

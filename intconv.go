package bignum

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
)

// IntFromString parses s as an integer literal: an optional '+' or '-'
// sign, then an optional base prefix ("0b" or "0B" for binary, "0o" or "0O"
// for octal, "0x" or "0X" for hexadecimal), then one or more digits. A
// literal without a prefix is decimal, including one with leading zeros.
//
// Malformed input returns an error wrapping ErrInvalidLiteral.
func IntFromString(s string) (Int, error) {
	return IntFromStringBase(s, 0)
}

// IntFromStringBase parses s in the given base, which must be 0 or between
// MinRadix and MaxRadix. Base prefixes are only recognised for base 0,
// which behaves like IntFromString. Digits above 9 are the letters 'a' to
// 'z' in either case.
func IntFromStringBase(s string, base int) (Int, error) {
	if base != 0 && (base < MinRadix || base > MaxRadix) {
		return Int{}, fmt.Errorf("bignum: base %d: %w", base, ErrInvalidRadix)
	}
	if s == "" {
		return Int{}, fmt.Errorf("bignum: empty string: %w", ErrInvalidLiteral)
	}

	lit := s
	neg := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		neg, s = true, s[1:]
	}

	if base == 0 {
		base = 10
		if len(s) >= 2 && s[0] == '0' {
			switch s[1] {
			case 'b', 'B':
				base, s = 2, s[2:]
			case 'o', 'O':
				base, s = 8, s[2:]
			case 'x', 'X':
				base, s = 16, s[2:]
			}
		}
	}
	if s == "" {
		return Int{}, fmt.Errorf("bignum: string %q has no digits: %w", lit, ErrInvalidLiteral)
	}

	abs, err := scanNat(s, base)
	if err != nil {
		return Int{}, fmt.Errorf("bignum: string %q: %w", lit, err)
	}
	return makeInt(neg, abs), nil
}

// MustIntFromString is like IntFromString but panics if s is malformed.
func MustIntFromString(s string) Int {
	i, err := IntFromString(s)
	if err != nil {
		panic(err)
	}
	return i
}

// scanNat converts the digits in s. The digits are split into groups of n
// from the right, where radix**n is the largest power of the radix that is
// still a digit, so each group joins the result with one multiply-add.
func scanNat(s string, base int) (nat, error) {
	p, n := radixPows[base].pow, radixPows[base].n
	b := uint32(base)

	var z nat
	end := len(s) % n
	if end == 0 {
		end = n
	}
	for start := 0; start < len(s); start, end = end, end+n {
		var g uint32
		for _, ch := range []byte(s[start:end]) {
			d := digitValue(ch)
			if d >= b {
				return nil, fmt.Errorf("%w: invalid base %d digit %q", ErrInvalidLiteral, base, ch)
			}
			g = g*b + d
		}
		z = z.mulAddW(p, g)
	}
	return z, nil
}

// digitValue returns the value of ch as a digit, or MaxRadix if ch is not
// a digit in any supported radix.
func digitValue(ch byte) uint32 {
	switch {
	case '0' <= ch && ch <= '9':
		return uint32(ch - '0')
	case 'a' <= ch && ch <= 'z':
		return uint32(ch-'a') + 10
	case 'A' <= ch && ch <= 'Z':
		return uint32(ch-'A') + 10
	}
	return MaxRadix
}

// Text returns the representation of i in the given radix, which must be
// between MinRadix and MaxRadix. Digits above 9 are lower-case letters.
// Negative values get a leading '-'; no prefix is added.
func (i Int) Text(radix int) (string, error) {
	if radix < MinRadix || radix > MaxRadix {
		return "", fmt.Errorf("bignum: radix %d: %w", radix, ErrInvalidRadix)
	}
	return string(i.appendText(nil, radix)), nil
}

func (i Int) String() string {
	return string(i.appendText(nil, 10))
}

func (i Int) appendText(buf []byte, radix int) []byte {
	if i.neg {
		buf = append(buf, '-')
	}
	return i.abs.appendText(buf, radix, 0)
}

// appendText appends the digits of x in the given radix to buf, with zeros
// on the left to make up at least width digits.
//
// Large magnitudes are split at radix**e, where e is about half of their
// digit count, and both halves are rendered recursively. The low half is
// always padded to exactly e digits.
func (x nat) appendText(buf []byte, radix, width int) []byte {
	if len(x) <= directLimbs {
		return x.appendDirect(buf, radix, width)
	}

	e := int(float64(len(x)) * _W / math.Log2(float64(radix)) / 2)
	split := nat{uint32(radix)}.pow(uint64(e))
	q, r, err := x.divmod(split)
	if err != nil {
		panic(invariantf("appendText: %v", err))
	}
	if len(q) == 0 {
		return r.appendText(buf, radix, width)
	}
	buf = q.appendText(buf, radix, width-e)
	return r.appendText(buf, radix, e)
}

// appendDirect renders x by repeated division by the largest power of the
// radix that fits in a digit. Every chunk but the most significant is
// padded to the full chunk width.
func (x nat) appendDirect(buf []byte, radix, width int) []byte {
	if len(x) <= 1 {
		var d uint64
		if len(x) == 1 {
			d = uint64(x[0])
		}
		return appendPadded(buf, strconv.FormatUint(d, radix), width)
	}

	p, n := radixPows[radix].pow, radixPows[radix].n
	var chunks []uint32
	for len(x) > 0 {
		var c uint32
		x, c = x.divW(p)
		chunks = append(chunks, c)
	}

	top := strconv.FormatUint(uint64(chunks[len(chunks)-1]), radix)
	buf = appendPadded(buf, top, width-n*(len(chunks)-1))
	for j := len(chunks) - 2; j >= 0; j-- {
		buf = appendPadded(buf, strconv.FormatUint(uint64(chunks[j]), radix), n)
	}
	return buf
}

func appendPadded(buf []byte, s string, width int) []byte {
	for k := len(s); k < width; k++ {
		buf = append(buf, '0')
	}
	return append(buf, s...)
}

// Format implements fmt.Formatter. It accepts the verbs 'b' (binary),
// 'o' (octal, '0' prefix with '#'), 'O' (octal, always "0o" prefix),
// 'd', 's' and 'v' (decimal), 'x' and 'X' (hexadecimal). The '+', ' ',
// '#', '-' and '0' flags and a width are honoured.
func (i Int) Format(s fmt.State, ch rune) {
	var radix int
	switch ch {
	case 'b':
		radix = 2
	case 'o', 'O':
		radix = 8
	case 'd', 's', 'v':
		radix = 10
	case 'x', 'X':
		radix = 16
	default:
		fmt.Fprintf(s, "%%!%c(bignum.Int=%s)", ch, i.String())
		return
	}

	var sign string
	switch {
	case i.neg:
		sign = "-"
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	var prefix string
	if s.Flag('#') {
		switch ch {
		case 'b':
			prefix = "0b"
		case 'o':
			prefix = "0"
		case 'x':
			prefix = "0x"
		case 'X':
			prefix = "0X"
		}
	}
	if ch == 'O' {
		prefix = "0o"
	}

	digits := i.abs.appendText(nil, radix, 0)
	if ch == 'X' {
		digits = bytes.ToUpper(digits)
	}

	var pad int
	if w, ok := s.Width(); ok {
		pad = w - len(sign) - len(prefix) - len(digits)
	}
	switch {
	case pad > 0 && s.Flag('-'):
		writeAll(s, sign, prefix, string(digits), string(bytes.Repeat([]byte{' '}, pad)))
	case pad > 0 && s.Flag('0'):
		writeAll(s, sign, prefix, string(bytes.Repeat([]byte{'0'}, pad)), string(digits))
	case pad > 0:
		writeAll(s, string(bytes.Repeat([]byte{' '}, pad)), sign, prefix, string(digits))
	default:
		writeAll(s, sign, prefix, string(digits))
	}
}

func writeAll(w io.Writer, parts ...string) {
	for _, p := range parts {
		_, _ = io.WriteString(w, p)
	}
}

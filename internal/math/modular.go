// Package math provides modular integer arithmetic for curve operations
package math

import (
	"fmt"
	"math/big"
	"strings"
)

var one = big.NewInt(1)

// Reduce returns v mod m normalized into [0, m) regardless of the sign of v.
// m must be positive. A fresh integer is returned; v is not modified.
func Reduce(v, m *big.Int) *big.Int {
	// ((v % m) + m) % m
	r := new(big.Int).Rem(v, m)
	r.Add(r, m)
	return r.Rem(r, m)
}

// ModInverse computes a^-1 mod n with the extended Euclidean algorithm.
//
// The input is reduced mod n first. The two Bezout coefficient accumulators
// start at 1 and 0 and are updated as (high, low) walks down to the gcd.
// ErrNotInvertible is returned when gcd(a, n) != 1.
func ModInverse(a, n *big.Int) (*big.Int, error) {
	if a == nil {
		return nil, ErrNilValue
	}
	if n == nil || n.Cmp(one) <= 0 {
		return nil, ErrInvalidModulus
	}

	lm := big.NewInt(1)
	hm := big.NewInt(0)
	low := Reduce(a, n)
	high := new(big.Int).Set(n)

	ratio := new(big.Int)
	tmp := new(big.Int)
	for low.Cmp(one) > 0 {
		ratio.Quo(high, low)

		// nm = hm - lm*ratio
		nm := new(big.Int).Sub(hm, tmp.Mul(lm, ratio))
		// next = high - low*ratio
		next := new(big.Int).Sub(high, tmp.Mul(low, ratio))

		hm, high = lm, low
		lm, low = nm, next
	}

	// low == 0 means the last non-zero remainder (the gcd) was above 1
	if low.Sign() == 0 {
		return nil, ErrNotInvertible
	}

	return Reduce(lm, n), nil
}

// ParseDecimal parses a base-10 integer literal.
func ParseDecimal(s string) (*big.Int, error) {
	return parse(s, 10)
}

// ParseHex parses a base-16 integer literal. A leading 0x or 0X is accepted.
func ParseHex(s string) (*big.Int, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	return parse(trimmed, 16)
}

// ParseInt parses a literal as hex when prefixed with 0x, decimal otherwise.
func ParseInt(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return ParseHex(s)
	}
	return ParseDecimal(s)
}

func parse(s string, base int) (*big.Int, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrParse)
	}
	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("%w: %q (base %d)", ErrParse, s, base)
	}
	return v, nil
}

// FormatHex renders v as lowercase hex left-padded with zeros to exactly
// width bytes (2*width characters).
func FormatHex(v *big.Int, width int) (string, error) {
	if v == nil {
		return "", ErrNilValue
	}
	if v.Sign() < 0 {
		return "", ErrNegativeValue
	}
	if (v.BitLen()+7)/8 > width {
		return "", ErrValueTooLarge
	}
	return fmt.Sprintf("%0*x", width*2, v), nil
}

// FillBytes returns v as a big-endian byte slice of exactly width bytes.
func FillBytes(v *big.Int, width int) ([]byte, error) {
	if v == nil {
		return nil, ErrNilValue
	}
	if v.Sign() < 0 {
		return nil, ErrNegativeValue
	}
	if (v.BitLen()+7)/8 > width {
		return nil, ErrValueTooLarge
	}
	return v.FillBytes(make([]byte, width)), nil
}

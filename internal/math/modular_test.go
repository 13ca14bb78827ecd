package math

import (
	"errors"
	"math/big"
	"testing"
)

const (
	secp256k1P  = "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F"
	secp256k1N  = "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141"
	generatorX  = "55066263022277343669578718895168534326250603453777594175500187360389116729240"
	generatorXi = "16048257703666452242803569546805946138055448571451565585555302070354637922038"
)

func mustHex(t *testing.T, s string) *big.Int {
	t.Helper()
	v, err := ParseHex(s)
	if err != nil {
		t.Fatalf("ParseHex(%q): %v", s, err)
	}
	return v
}

func mustDec(t *testing.T, s string) *big.Int {
	t.Helper()
	v, err := ParseDecimal(s)
	if err != nil {
		t.Fatalf("ParseDecimal(%q): %v", s, err)
	}
	return v
}

// TestReduce tests normalization for both signs
func TestReduce(t *testing.T) {
	m := big.NewInt(7)
	tests := []struct {
		v    int64
		want int64
	}{
		{0, 0},
		{5, 5},
		{7, 0},
		{15, 1},
		{-1, 6},
		{-7, 0},
		{-15, 6},
	}

	for _, tt := range tests {
		v := big.NewInt(tt.v)
		got := Reduce(v, m)
		if got.Int64() != tt.want {
			t.Errorf("Reduce(%d, 7) = %d, want %d", tt.v, got.Int64(), tt.want)
		}
		if v.Int64() != tt.v {
			t.Errorf("Reduce modified its input: %d became %d", tt.v, v.Int64())
		}
	}
}

// TestModInverseGolden checks the inverse of the generator x-coordinate mod p
func TestModInverseGolden(t *testing.T) {
	p := mustHex(t, secp256k1P)
	a := mustDec(t, generatorX)

	inv, err := ModInverse(a, p)
	if err != nil {
		t.Fatalf("ModInverse failed: %v", err)
	}

	want := mustDec(t, generatorXi)
	if inv.Cmp(want) != 0 {
		t.Errorf("ModInverse(Gx, p) = %s, want %s", inv, want)
	}
}

// TestModInverseProperty checks a * a^-1 = 1 for values coprime to the modulus
func TestModInverseProperty(t *testing.T) {
	moduli := []*big.Int{
		mustHex(t, secp256k1P),
		mustHex(t, secp256k1N),
		big.NewInt(97),
		big.NewInt(1000), // composite, only odd non-multiples of 5 are units
	}
	values := []*big.Int{
		big.NewInt(1),
		big.NewInt(3),
		big.NewInt(-3),
		big.NewInt(12345678901),
		mustDec(t, generatorX),
	}

	for _, m := range moduli {
		for _, a := range values {
			if new(big.Int).GCD(nil, nil, Reduce(a, m), m).Cmp(big.NewInt(1)) != 0 {
				continue
			}
			inv, err := ModInverse(a, m)
			if err != nil {
				t.Fatalf("ModInverse(%s, %s): %v", a, m, err)
			}
			if inv.Sign() < 0 || inv.Cmp(m) >= 0 {
				t.Errorf("inverse %s not in [0, %s)", inv, m)
			}
			prod := Reduce(new(big.Int).Mul(a, inv), m)
			if prod.Cmp(big.NewInt(1)) != 0 {
				t.Errorf("%s * %s mod %s = %s, want 1", a, inv, m, prod)
			}
			if std := new(big.Int).ModInverse(Reduce(a, m), m); std.Cmp(inv) != 0 {
				t.Errorf("ModInverse(%s, %s) = %s, stdlib says %s", a, m, inv, std)
			}
		}
	}
}

// TestModInverseNotInvertible tests non-units are rejected
func TestModInverseNotInvertible(t *testing.T) {
	tests := []struct {
		name string
		a, n *big.Int
	}{
		{"zero", big.NewInt(0), big.NewInt(97)},
		{"multiple of modulus", big.NewInt(194), big.NewInt(97)},
		{"shared factor", big.NewInt(6), big.NewInt(9)},
		{"shared factor negative", big.NewInt(-4), big.NewInt(1000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ModInverse(tt.a, tt.n)
			if !errors.Is(err, ErrNotInvertible) {
				t.Errorf("Expected ErrNotInvertible, got %v", err)
			}
		})
	}
}

// TestModInverseInvalidModulus tests modulus validation
func TestModInverseInvalidModulus(t *testing.T) {
	for _, n := range []*big.Int{nil, big.NewInt(0), big.NewInt(1), big.NewInt(-5)} {
		if _, err := ModInverse(big.NewInt(3), n); err != ErrInvalidModulus {
			t.Errorf("ModInverse(3, %v): expected ErrInvalidModulus, got %v", n, err)
		}
	}

	if _, err := ModInverse(nil, big.NewInt(7)); err != ErrNilValue {
		t.Errorf("Expected ErrNilValue, got %v", err)
	}
}

// TestParse tests decimal and hex literal parsing
func TestParse(t *testing.T) {
	v, err := ParseHex("0xFF")
	if err != nil || v.Int64() != 255 {
		t.Errorf("ParseHex(0xFF) = %v, %v", v, err)
	}

	v, err = ParseInt(" 0x10 ")
	if err != nil || v.Int64() != 16 {
		t.Errorf("ParseInt(0x10) = %v, %v", v, err)
	}

	v, err = ParseInt("10")
	if err != nil || v.Int64() != 10 {
		t.Errorf("ParseInt(10) = %v, %v", v, err)
	}

	for _, bad := range []string{"", "12a", "0xZZ", "1.5"} {
		if _, err := ParseInt(bad); !errors.Is(err, ErrParse) {
			t.Errorf("ParseInt(%q): expected ErrParse, got %v", bad, err)
		}
	}
}

// TestFormatHex tests fixed-width zero padding
func TestFormatHex(t *testing.T) {
	s, err := FormatHex(big.NewInt(0xab), 4)
	if err != nil {
		t.Fatalf("FormatHex failed: %v", err)
	}
	if s != "000000ab" {
		t.Errorf("FormatHex = %s, want 000000ab", s)
	}

	if _, err := FormatHex(big.NewInt(0x10000), 2); err != ErrValueTooLarge {
		t.Errorf("Expected ErrValueTooLarge, got %v", err)
	}
	if _, err := FormatHex(big.NewInt(-1), 2); err != ErrNegativeValue {
		t.Errorf("Expected ErrNegativeValue, got %v", err)
	}

	b, err := FillBytes(big.NewInt(1), 32)
	if err != nil {
		t.Fatalf("FillBytes failed: %v", err)
	}
	if len(b) != 32 || b[31] != 1 {
		t.Errorf("FillBytes = %x", b)
	}
}

func BenchmarkModInverse(b *testing.B) {
	p, _ := ParseHex(secp256k1P)
	a, _ := ParseDecimal(generatorX)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ModInverse(a, p)
	}
}

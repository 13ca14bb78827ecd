package hash

import (
	"encoding/hex"
	"math/big"
	"testing"
)

var secp256k1N, _ = new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)

// TestHashKnownDigests tests each function against a published digest
func TestHashKnownDigests(t *testing.T) {
	tests := []struct {
		fn   HashFunction
		data string
		want string
	}{
		{SHA256, "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{Keccak256, "", "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{SHA3_256, "", "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
	}

	for _, tt := range tests {
		t.Run(tt.fn.String(), func(t *testing.T) {
			got, err := Hash([]byte(tt.data), tt.fn)
			if err != nil {
				t.Fatalf("Hash failed: %v", err)
			}
			if hex.EncodeToString(got) != tt.want {
				t.Errorf("Hash = %x, want %s", got, tt.want)
			}
		})
	}

	digest, err := Hash([]byte("abc"), SHA512)
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if len(digest) != 64 {
		t.Errorf("SHA-512 digest length = %d", len(digest))
	}
}

// TestHashUnsupported tests unknown functions
func TestHashUnsupported(t *testing.T) {
	if _, err := Hash([]byte("x"), HashFunction(99)); err != ErrUnsupportedHash {
		t.Errorf("Expected ErrUnsupportedHash, got %v", err)
	}
	if _, err := ParseHashFunction("md5"); err != ErrUnsupportedHash {
		t.Errorf("Expected ErrUnsupportedHash, got %v", err)
	}
}

// TestParseHashFunction tests name resolution
func TestParseHashFunction(t *testing.T) {
	for _, fn := range []HashFunction{SHA256, SHA512, Keccak256, SHA3_256} {
		got, err := ParseHashFunction(fn.String())
		if err != nil {
			t.Fatalf("ParseHashFunction(%s) failed: %v", fn, err)
		}
		if got != fn {
			t.Errorf("ParseHashFunction(%s) = %s", fn, got)
		}
	}

	if got, err := ParseHashFunction("SHA-256"); err != nil || got != SHA256 {
		t.Errorf("ParseHashFunction(SHA-256) = %v, %v", got, err)
	}
}

// TestHashToInt tests digest truncation to the order bit length
func TestHashToInt(t *testing.T) {
	v, err := HashToInt([]byte("abc"), SHA256, secp256k1N)
	if err != nil {
		t.Fatalf("HashToInt failed: %v", err)
	}
	want, _ := new(big.Int).SetString("84342368487090800366523834928142263660104883695016514377462985829716817089965", 10)
	if v.Cmp(want) != 0 {
		t.Errorf("HashToInt = %s, want %s", v, want)
	}

	// SHA-512 output is cut to the leftmost 256 bits
	wide, err := HashToInt([]byte("abc"), SHA512, secp256k1N)
	if err != nil {
		t.Fatalf("HashToInt failed: %v", err)
	}
	digest, _ := Hash([]byte("abc"), SHA512)
	if wide.Cmp(new(big.Int).SetBytes(digest[:32])) != 0 {
		t.Errorf("SHA-512 digest not truncated to 32 bytes")
	}

	// orders that are not a whole number of bytes shift off the excess bits
	small, err := DigestToInt([]byte{0xff, 0xff}, big.NewInt(1000))
	if err != nil {
		t.Fatalf("DigestToInt failed: %v", err)
	}
	if small.Int64() != 0xffff>>6 {
		t.Errorf("DigestToInt = %d, want %d", small.Int64(), 0xffff>>6)
	}

	if _, err := DigestToInt([]byte{1}, big.NewInt(0)); err != ErrInvalidOrder {
		t.Errorf("Expected ErrInvalidOrder, got %v", err)
	}
}

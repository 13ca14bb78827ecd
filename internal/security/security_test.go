package security

import (
	"math/big"
	"testing"
)

// TestValidateScalarInRange tests the [1, max) window
func TestValidateScalarInRange(t *testing.T) {
	max := big.NewInt(100)

	tests := []struct {
		name  string
		value *big.Int
		want  error
	}{
		{"nil", nil, ErrNilScalar},
		{"zero", big.NewInt(0), ErrScalarNotPositive},
		{"negative", big.NewInt(-1), ErrScalarNotPositive},
		{"one", big.NewInt(1), nil},
		{"max minus one", big.NewInt(99), nil},
		{"max", big.NewInt(100), ErrInvalidRange},
		{"above max", big.NewInt(1000), ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateScalarInRange(tt.value, max); err != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
			if InRange(tt.value, max) != (tt.want == nil) {
				t.Errorf("InRange disagrees with ValidateScalarInRange")
			}
		})
	}
}

// TestSecureZeroBigInt tests that secret integers are cleared
func TestSecureZeroBigInt(t *testing.T) {
	v, _ := new(big.Int).SetString("a665a45920422f9d417e4867efdc4fb8a04a1f3fff1fa07e998e86f7f7a27ae3", 16)
	words := v.Bits()

	SecureZeroBigInt(v)

	if v.Sign() != 0 {
		t.Errorf("Expected zero, got %s", v)
	}
	for i, w := range words {
		if w != 0 {
			t.Errorf("word %d not cleared: %x", i, w)
		}
	}

	// nil must be a no-op
	SecureZeroBigInt(nil)
}

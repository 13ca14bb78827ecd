package security

import (
	"errors"
	"math/big"
)

var (
	// ErrNilScalar is returned when a nil scalar is provided
	ErrNilScalar = errors.New("scalar cannot be nil")

	// ErrScalarNotPositive is returned when a scalar is zero or negative
	ErrScalarNotPositive = errors.New("scalar must be positive")

	// ErrInvalidRange is returned when a value is outside expected range
	ErrInvalidRange = errors.New("value out of valid range")
)

// ValidateScalarInRange checks if scalar is in valid range [1, max)
func ValidateScalarInRange(value, max *big.Int) error {
	if value == nil || max == nil {
		return ErrNilScalar
	}

	if value.Sign() <= 0 {
		return ErrScalarNotPositive
	}

	if value.Cmp(max) >= 0 {
		return ErrInvalidRange
	}

	return nil
}

// InRange reports whether value lies in [1, max)
func InRange(value, max *big.Int) bool {
	return ValidateScalarInRange(value, max) == nil
}

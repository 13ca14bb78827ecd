package math

import "errors"

var (
	// ErrInvalidModulus is returned when modulus is invalid
	ErrInvalidModulus = errors.New("modulus must be positive")

	// ErrNotInvertible is returned when a value shares a factor with the modulus
	ErrNotInvertible = errors.New("value is not invertible modulo n")

	// ErrParse is returned when an integer literal cannot be parsed
	ErrParse = errors.New("malformed integer literal")

	// ErrNilValue is returned when a nil integer is provided
	ErrNilValue = errors.New("value cannot be nil")

	// ErrNegativeValue is returned when a negative integer cannot be formatted
	ErrNegativeValue = errors.New("value must be non-negative")

	// ErrValueTooLarge is returned when a value does not fit the requested width
	ErrValueTooLarge = errors.New("value exceeds requested width")
)

package hash

import "errors"

var (
	// ErrUnsupportedHash is returned when an unknown hash function is requested
	ErrUnsupportedHash = errors.New("unsupported hash function")

	// ErrInvalidOrder is returned when the target order is not positive
	ErrInvalidOrder = errors.New("order must be positive")
)

package curve

import "errors"

var (
	// ErrUnsupportedCurve is returned when an unsupported curve is requested
	ErrUnsupportedCurve = errors.New("unsupported curve type")

	// ErrInvalidPoint is returned when a point is not on the curve
	ErrInvalidPoint = errors.New("invalid point: not on curve")

	// ErrInvalidScalar is returned when a scalar is invalid (e.g., zero or >= order)
	ErrInvalidScalar = errors.New("invalid scalar value")

	// ErrPointAtInfinity is returned when an operation's result or operand is
	// the point at infinity and the call site cannot represent it
	ErrPointAtInfinity = errors.New("point at infinity")

	// ErrSamePoint is returned when affine addition is asked to add a point to
	// itself; such callers must double instead
	ErrSamePoint = errors.New("affine addition of equal points: use doubling")

	// ErrInvalidEncoding is returned when unmarshaling fails
	ErrInvalidEncoding = errors.New("invalid point encoding")

	// ErrInvalidCurve is returned when curve parameters are invalid
	ErrInvalidCurve = errors.New("invalid curve parameters")
)

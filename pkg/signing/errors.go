package signing

import "errors"

var (
	// ErrNilCurve is returned when curve is nil
	ErrNilCurve = errors.New("curve cannot be nil")

	// ErrInvalidMessage is returned when the message hash is missing or empty
	ErrInvalidMessage = errors.New("invalid message hash")

	// ErrInvalidNonce is returned when a nonce is out of range or produces
	// r == 0 or s == 0
	ErrInvalidNonce = errors.New("invalid nonce")

	// ErrInvalidSignature is returned when a signature component is outside
	// [1, n-1] or an encoding is malformed
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrInvalidPublicKey is returned when a public key is not an affine
	// point on the curve
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidPrivateKey is returned when a private key is outside [1, n-1]
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrSignerDestroyed is returned when a destroyed signer is used
	ErrSignerDestroyed = errors.New("signer has been destroyed")

	// ErrLengthMismatch is returned when batch inputs have different lengths
	ErrLengthMismatch = errors.New("batch inputs must have the same length")
)

package signing

import (
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/Caqil/ecc/internal/math"
)

// scalarLen is the encoded width of r and s on a 256-bit curve
const scalarLen = 32

// Bytes serializes the signature as r || s, each left-padded to 32 bytes
func (sig *Signature) Bytes() ([]byte, error) {
	r, err := math.FillBytes(sig.R, scalarLen)
	if err != nil {
		return nil, fmt.Errorf("%w: r: %w", ErrInvalidSignature, err)
	}
	s, err := math.FillBytes(sig.S, scalarLen)
	if err != nil {
		return nil, fmt.Errorf("%w: s: %w", ErrInvalidSignature, err)
	}
	return append(r, s...), nil
}

// SignatureFromBytes parses a 64-byte r || s signature. Range checks are
// left to Verify.
func SignatureFromBytes(data []byte) (*Signature, error) {
	if len(data) != 2*scalarLen {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidSignature, 2*scalarLen, len(data))
	}

	return &Signature{
		R: new(big.Int).SetBytes(data[:scalarLen]),
		S: new(big.Int).SetBytes(data[scalarLen:]),
	}, nil
}

// DER encodes a secp256k1 signature in ASN.1 DER form. The encoder always
// emits the low-S variant, so a signature with s > n/2 round-trips to its
// normalized form.
func (sig *Signature) DER() ([]byte, error) {
	r, err := toModNScalar(sig.R)
	if err != nil {
		return nil, err
	}
	s, err := toModNScalar(sig.S)
	if err != nil {
		return nil, err
	}
	return ecdsa.NewSignature(r, s).Serialize(), nil
}

func toModNScalar(v *big.Int) (*secp256k1.ModNScalar, error) {
	if v == nil || v.Sign() <= 0 {
		return nil, ErrInvalidSignature
	}
	b, err := math.FillBytes(v, scalarLen)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	var out secp256k1.ModNScalar
	if overflow := out.SetByteSlice(b); overflow {
		return nil, fmt.Errorf("%w: component exceeds group order", ErrInvalidSignature)
	}
	return &out, nil
}

// ParseDERSignature decodes a strict DER secp256k1 signature
func ParseDERSignature(data []byte) (*Signature, error) {
	parsed, err := ecdsa.ParseDERSignature(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	r, s := parsed.R(), parsed.S()
	rb, sb := r.Bytes(), s.Bytes()

	return &Signature{
		R: new(big.Int).SetBytes(rb[:]),
		S: new(big.Int).SetBytes(sb[:]),
	}, nil
}

// Package signing implements ECDSA key derivation, signing and verification
// on top of the curve package.
//
// Signing follows SEC 1, section 4.1.3 with a caller supplied nonce k:
//
//	R = k*G
//	r = R.x mod n
//	s = (h + r*d) * k^-1 mod n
//
// and verification recomputes R' = (h*w)*G + (r*w)*Q with w = s^-1 and
// accepts when R'.x mod n == r.
package signing

import (
	"fmt"
	"math/big"

	"github.com/Caqil/ecc/internal/math"
	"github.com/Caqil/ecc/pkg/crypto/curve"
)

// Signature is an ECDSA signature
type Signature struct {
	R *big.Int
	S *big.Int
}

// DerivePublicKey computes priv*G. priv must lie in [1, n-1].
func DerivePublicKey(c *curve.Curve, priv *big.Int) (*curve.Point, error) {
	if c == nil {
		return nil, ErrNilCurve
	}
	if !c.IsValidScalar(priv) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, curve.ErrInvalidScalar)
	}

	pub, err := c.ScalarBaseMult(priv)
	if err != nil {
		return nil, err
	}
	if pub.IsInfinity() {
		return nil, curve.ErrPointAtInfinity
	}
	return pub, nil
}

// Sign produces (r, s) for the message hash h using private key priv and
// nonce. Both scalars must lie in [1, n-1]. h may be any integer; it only
// enters the computation modulo n.
//
// The nonce must be secret and never reused across messages. A nonce that
// yields r == 0 or s == 0 is rejected with ErrInvalidNonce.
func Sign(c *curve.Curve, priv, nonce, h *big.Int) (*Signature, error) {
	if c == nil {
		return nil, ErrNilCurve
	}
	if !c.IsValidScalar(priv) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, curve.ErrInvalidScalar)
	}
	if !c.IsValidScalar(nonce) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNonce, curve.ErrInvalidScalar)
	}
	if h == nil {
		return nil, ErrInvalidMessage
	}

	n := c.Order()

	R, err := c.ScalarBaseMult(nonce)
	if err != nil {
		return nil, err
	}
	if R.IsInfinity() {
		return nil, fmt.Errorf("%w: nonce point is infinity", ErrInvalidNonce)
	}

	r := math.Reduce(R.X, n)
	if r.Sign() == 0 {
		return nil, fmt.Errorf("%w: r is zero", ErrInvalidNonce)
	}

	kInv, err := math.ModInverse(nonce, n)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNonce, err)
	}

	// s = (h + r*d) * k^-1 mod n
	s := new(big.Int).Mul(r, priv)
	s.Add(s, h)
	s.Mul(s, kInv)
	s = math.Reduce(s, n)
	if s.Sign() == 0 {
		return nil, fmt.Errorf("%w: s is zero", ErrInvalidNonce)
	}

	return &Signature{R: r, S: s}, nil
}

// Verify checks sig over the message hash h against the public key pub.
//
// A structurally invalid input (public key off the curve or at infinity,
// r or s outside [1, n-1]) is an error. A well-formed signature that does
// not match returns false with a nil error.
func Verify(c *curve.Curve, pub *curve.Point, h *big.Int, sig *Signature) (bool, error) {
	if c == nil {
		return false, ErrNilCurve
	}
	if h == nil {
		return false, ErrInvalidMessage
	}
	if pub == nil || !c.IsOnCurve(pub) {
		return false, ErrInvalidPublicKey
	}
	if sig == nil || !c.IsValidScalar(sig.R) || !c.IsValidScalar(sig.S) {
		return false, ErrInvalidSignature
	}

	n := c.Order()

	w, err := math.ModInverse(sig.S, n)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	u1 := math.Reduce(new(big.Int).Mul(h, w), n)
	u2 := math.Reduce(new(big.Int).Mul(sig.R, w), n)

	// u1 is zero when h ≡ 0 (mod n); u1*G is then the identity
	p1 := curve.Infinity()
	if u1.Sign() != 0 {
		if p1, err = c.ScalarBaseMult(u1); err != nil {
			return false, err
		}
	}

	p2, err := c.ScalarMult(pub, u2)
	if err != nil {
		return false, err
	}

	sum, err := c.Add(p1, p2)
	if err != nil {
		return false, err
	}
	if sum.IsInfinity() {
		return false, nil
	}

	return math.Reduce(sum.X, n).Cmp(sig.R) == 0, nil
}

// IsLowS reports whether s <= n/2
func (sig *Signature) IsLowS(c *curve.Curve) bool {
	if sig == nil || sig.S == nil {
		return false
	}
	halfOrder := new(big.Int).Rsh(c.Order(), 1)
	return sig.S.Cmp(halfOrder) <= 0
}

// Normalize returns the equivalent signature with s <= n/2 (BIP 62).
// Both forms verify; the low form is the one most consensus code accepts.
// A signature with missing components is returned unchanged.
func (sig *Signature) Normalize(c *curve.Curve) *Signature {
	if sig == nil || sig.R == nil || sig.S == nil {
		return sig
	}
	out := &Signature{
		R: new(big.Int).Set(sig.R),
		S: new(big.Int).Set(sig.S),
	}
	if !sig.IsLowS(c) {
		out.S.Sub(c.Order(), out.S)
	}
	return out
}

// IsEqual checks if two signatures are equal
func (sig *Signature) IsEqual(other *Signature) bool {
	if sig == nil || other == nil {
		return sig == other
	}
	return sig.R.Cmp(other.R) == 0 && sig.S.Cmp(other.S) == 0
}

// String formats the signature components in decimal
func (sig *Signature) String() string {
	return fmt.Sprintf("r=%s s=%s", sig.R, sig.S)
}

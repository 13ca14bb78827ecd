package signing

import (
	"math/big"
	"sync"

	"github.com/Caqil/ecc/internal/security"
	"github.com/Caqil/ecc/pkg/crypto/curve"
	"github.com/Caqil/ecc/pkg/crypto/hash"
	"github.com/Caqil/ecc/pkg/logger"
)

// Signer holds a private key and its public key for repeated signing
type Signer struct {
	curve    *curve.Curve
	priv     *big.Int
	pub      *curve.Point
	hashFunc hash.HashFunction
	log      *logger.Logger

	mu        sync.RWMutex
	destroyed bool
}

// Option configures a Signer
type Option func(*Signer)

// WithLogger sets the logger used for signing events
func WithLogger(l *logger.Logger) Option {
	return func(s *Signer) {
		if l != nil {
			s.log = l
		}
	}
}

// WithHash sets the message hash used by SignMessage. Default SHA256.
func WithHash(fn hash.HashFunction) Option {
	return func(s *Signer) {
		s.hashFunc = fn
	}
}

// NewSigner derives the public key for priv and returns a signer holding
// a private copy of the key
func NewSigner(c *curve.Curve, priv *big.Int, opts ...Option) (*Signer, error) {
	pub, err := DerivePublicKey(c, priv)
	if err != nil {
		return nil, err
	}

	s := &Signer{
		curve:    c,
		priv:     new(big.Int).Set(priv),
		pub:      pub,
		hashFunc: hash.SHA256,
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.log.DebugEvent().
		Str("curve", c.Name()).
		Stringer("public_key", pub).
		Msg("signer created")

	return s, nil
}

// PublicKey returns a copy of the signer's public key
func (s *Signer) PublicKey() *curve.Point {
	return s.pub.Clone()
}

// Curve returns the curve the signer operates on
func (s *Signer) Curve() *curve.Curve {
	return s.curve
}

// Sign signs the message hash h with a caller supplied nonce
func (s *Signer) Sign(nonce, h *big.Int) (*Signature, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.destroyed {
		return nil, ErrSignerDestroyed
	}

	sig, err := Sign(s.curve, s.priv, nonce, h)
	if err != nil {
		s.log.DebugEvent().
			Secret("nonce", nonce).
			Err(err).
			Msg("signing failed")
		return nil, err
	}

	s.log.DebugEvent().
		BigInt("hash", h).
		BigInt("r", sig.R).
		BigInt("s", sig.S).
		Msg("message signed")

	return sig, nil
}

// SignDeterministic signs digest with an RFC 6979 (HMAC-SHA256) nonce.
// The digest is converted to an integer by keeping its leftmost bitlen(n)
// bits.
func (s *Signer) SignDeterministic(digest []byte) (*Signature, error) {
	s.mu.RLock()
	if s.destroyed {
		s.mu.RUnlock()
		return nil, ErrSignerDestroyed
	}
	nonce, err := GenerateDeterministicNonce(s.curve, s.priv, digest)
	s.mu.RUnlock()
	if err != nil {
		return nil, err
	}
	defer security.SecureZeroBigInt(nonce)

	h, err := hash.DigestToInt(digest, s.curve.Order())
	if err != nil {
		return nil, err
	}

	return s.Sign(nonce, h)
}

// SignMessage hashes msg with the configured hash and signs the digest
// deterministically
func (s *Signer) SignMessage(msg []byte) (*Signature, error) {
	digest, err := hash.Hash(msg, s.hashFunc)
	if err != nil {
		return nil, err
	}
	return s.SignDeterministic(digest)
}

// Destroy zeroes the private key. Further signing returns
// ErrSignerDestroyed.
func (s *Signer) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return
	}
	security.SecureZeroBigInt(s.priv)
	s.destroyed = true
	s.log.Debug("signer destroyed")
}

// VerifyMessage hashes msg with fn and verifies sig against pub
func VerifyMessage(c *curve.Curve, pub *curve.Point, msg []byte, fn hash.HashFunction, sig *Signature) (bool, error) {
	if c == nil {
		return false, ErrNilCurve
	}
	h, err := hash.HashToInt(msg, fn, c.Order())
	if err != nil {
		return false, err
	}
	return Verify(c, pub, h, sig)
}

package signing

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"math/big"

	"github.com/Caqil/ecc/internal/math"
	"github.com/Caqil/ecc/internal/security"
	"github.com/Caqil/ecc/pkg/crypto/curve"
)

// NonceGenerator derives nonces deterministically from a private key and a
// message digest per RFC 6979 section 3.2. The same key and digest always
// produce the same nonce, so no entropy source is needed at signing time.
type NonceGenerator struct {
	order    *big.Int
	qlen     int
	rolen    int
	hashFunc func() hash.Hash
}

// NewNonceGenerator returns a generator for curve c using HMAC-SHA256
func NewNonceGenerator(c *curve.Curve) *NonceGenerator {
	return newNonceGenerator(c, sha256.New)
}

// NewNonceGeneratorSHA512 returns a generator for curve c using HMAC-SHA512
func NewNonceGeneratorSHA512(c *curve.Curve) *NonceGenerator {
	return newNonceGenerator(c, sha512.New)
}

func newNonceGenerator(c *curve.Curve, fn func() hash.Hash) *NonceGenerator {
	order := c.Order()
	qlen := order.BitLen()
	return &NonceGenerator{
		order:    order,
		qlen:     qlen,
		rolen:    (qlen + 7) / 8,
		hashFunc: fn,
	}
}

// Nonce returns k in [1, n-1] for private key priv and the message digest
func (g *NonceGenerator) Nonce(priv *big.Int, digest []byte) (*big.Int, error) {
	if len(digest) == 0 {
		return nil, ErrInvalidMessage
	}
	if err := security.ValidateScalarInRange(priv, g.order); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}

	x := g.int2octets(priv)
	h1 := g.bits2octets(digest)

	size := g.hashFunc().Size()
	v := make([]byte, size)
	for i := range v {
		v[i] = 0x01
	}
	k := make([]byte, size)

	k = g.mac(k, v, []byte{0x00}, x, h1)
	v = g.mac(k, v)
	k = g.mac(k, v, []byte{0x01}, x, h1)
	v = g.mac(k, v)

	for {
		var t []byte
		for len(t) < g.rolen {
			v = g.mac(k, v)
			t = append(t, v...)
		}

		nonce := g.bits2int(t)
		if nonce.Sign() > 0 && nonce.Cmp(g.order) < 0 {
			return nonce, nil
		}

		k = g.mac(k, v, []byte{0x00})
		v = g.mac(k, v)
	}
}

// mac computes HMAC_key(parts[0] || parts[1] || ...)
func (g *NonceGenerator) mac(key []byte, parts ...[]byte) []byte {
	h := hmac.New(g.hashFunc, key)
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

// bits2int keeps the leftmost qlen bits of b
func (g *NonceGenerator) bits2int(b []byte) *big.Int {
	v := new(big.Int).SetBytes(b)
	if excess := len(b)*8 - g.qlen; excess > 0 {
		v.Rsh(v, uint(excess))
	}
	return v
}

// int2octets encodes v big-endian in exactly rolen bytes
func (g *NonceGenerator) int2octets(v *big.Int) []byte {
	out, err := math.FillBytes(v, g.rolen)
	if err != nil {
		// callers only pass values below the order
		panic(err)
	}
	return out
}

// bits2octets is int2octets(bits2int(b) mod q)
func (g *NonceGenerator) bits2octets(b []byte) []byte {
	z := g.bits2int(b)
	if z.Cmp(g.order) >= 0 {
		z.Sub(z, g.order)
	}
	return g.int2octets(z)
}

// GenerateDeterministicNonce derives the RFC 6979 nonce for priv and digest
// using HMAC-SHA256
func GenerateDeterministicNonce(c *curve.Curve, priv *big.Int, digest []byte) (*big.Int, error) {
	if c == nil {
		return nil, ErrNilCurve
	}
	return NewNonceGenerator(c).Nonce(priv, digest)
}

// GenerateDeterministicNonceSHA512 is GenerateDeterministicNonce with
// HMAC-SHA512
func GenerateDeterministicNonceSHA512(c *curve.Curve, priv *big.Int, digest []byte) (*big.Int, error) {
	if c == nil {
		return nil, ErrNilCurve
	}
	return NewNonceGeneratorSHA512(c).Nonce(priv, digest)
}

// Package hash turns messages into the integers that ECDSA signs
package hash

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"math/big"
	"strings"

	"golang.org/x/crypto/sha3"
)

// HashFunction represents a cryptographic hash function
type HashFunction int

const (
	// SHA256 uses SHA-256 hash function
	SHA256 HashFunction = iota
	// SHA512 uses SHA-512 hash function
	SHA512
	// Keccak256 uses the legacy Keccak-256 used by Ethereum
	Keccak256
	// SHA3_256 uses FIPS 202 SHA3-256
	SHA3_256
)

// String returns the canonical name of the hash function
func (h HashFunction) String() string {
	switch h {
	case SHA256:
		return "sha256"
	case SHA512:
		return "sha512"
	case Keccak256:
		return "keccak256"
	case SHA3_256:
		return "sha3-256"
	default:
		return "unknown"
	}
}

// ParseHashFunction resolves a hash function by name (case-insensitive)
func ParseHashFunction(name string) (HashFunction, error) {
	switch strings.ToLower(name) {
	case "sha256", "sha-256":
		return SHA256, nil
	case "sha512", "sha-512":
		return SHA512, nil
	case "keccak256", "keccak-256":
		return Keccak256, nil
	case "sha3-256", "sha3_256", "sha3":
		return SHA3_256, nil
	default:
		return 0, ErrUnsupportedHash
	}
}

// New returns a fresh hash.Hash for the function
func (h HashFunction) New() (hash.Hash, error) {
	switch h {
	case SHA256:
		return sha256.New(), nil
	case SHA512:
		return sha512.New(), nil
	case Keccak256:
		return sha3.NewLegacyKeccak256(), nil
	case SHA3_256:
		return sha3.New256(), nil
	default:
		return nil, ErrUnsupportedHash
	}
}

// Hash computes the digest of data using the specified hash function
func Hash(data []byte, hashFunc HashFunction) ([]byte, error) {
	h, err := hashFunc.New()
	if err != nil {
		return nil, err
	}

	h.Write(data)
	return h.Sum(nil), nil
}

// DigestToInt converts a digest to an integer the way ECDSA does: the
// leftmost bitlen(order) bits are kept and the rest discarded. The result
// is not reduced modulo order.
func DigestToInt(digest []byte, order *big.Int) (*big.Int, error) {
	if order == nil || order.Sign() <= 0 {
		return nil, ErrInvalidOrder
	}

	orderBits := order.BitLen()
	orderBytes := (orderBits + 7) / 8

	if len(digest) > orderBytes {
		digest = digest[:orderBytes]
	}

	ret := new(big.Int).SetBytes(digest)
	excess := len(digest)*8 - orderBits
	if excess > 0 {
		ret.Rsh(ret, uint(excess))
	}

	return ret, nil
}

// HashToInt hashes data and converts the digest with DigestToInt
func HashToInt(data []byte, hashFunc HashFunction, order *big.Int) (*big.Int, error) {
	digest, err := Hash(data, hashFunc)
	if err != nil {
		return nil, err
	}
	return DigestToInt(digest, order)
}

// Package curve implements affine short-Weierstrass elliptic curve arithmetic
// over big integers. The group law, scalar multiplication and SEC 1 point
// encodings are computed directly from the curve parameters.
//
// None of the operations here run in constant time.
package curve

import (
	"fmt"
	"math/big"

	"github.com/Caqil/ecc/internal/security"
)

// CurveType represents the type of elliptic curve
type CurveType int

const (
	// Secp256k1 is the Bitcoin/Ethereum curve
	Secp256k1 CurveType = iota
)

// CurveParams contains the parameters of a curve y² = x³ + ax + b
type CurveParams struct {
	// Name of the curve
	Name string

	// P is the prime field modulus
	P *big.Int

	// N is the order of the base point
	N *big.Int

	// A is the linear coefficient of the curve equation
	A *big.Int

	// B is the constant term of the curve equation
	B *big.Int

	// Gx, Gy are the coordinates of the generator
	Gx, Gy *big.Int

	// BitSize is the size of the field in bits
	BitSize int
}

// Curve performs group operations for one parameter set. A Curve is
// immutable once constructed and may be shared between goroutines.
type Curve struct {
	params *CurveParams
	g      *Point

	// byteLen is the width of one encoded coordinate
	byteLen int
}

// NewCurve returns the shared instance for a built-in curve type
func NewCurve(curveType CurveType) (*Curve, error) {
	switch curveType {
	case Secp256k1:
		return loadSecp256k1()
	default:
		return nil, ErrUnsupportedCurve
	}
}

// NewCurveFromParams validates params and builds a curve from a private copy
// of them. The field modulus must be prime, the curve non-singular, the
// generator a point on it with N*G the identity, and BitSize (0 means the
// modulus length) wide enough for field elements.
func NewCurveFromParams(params *CurveParams) (*Curve, error) {
	if params == nil {
		return nil, ErrInvalidCurve
	}
	for _, v := range []*big.Int{params.P, params.N, params.A, params.B, params.Gx, params.Gy} {
		if v == nil {
			return nil, fmt.Errorf("%w: missing parameter", ErrInvalidCurve)
		}
	}
	if params.P.Cmp(big.NewInt(3)) <= 0 || !params.P.ProbablyPrime(20) {
		return nil, fmt.Errorf("%w: field modulus is not an odd prime", ErrInvalidCurve)
	}
	if params.N.Cmp(big.NewInt(1)) <= 0 {
		return nil, fmt.Errorf("%w: order must exceed 1", ErrInvalidCurve)
	}

	cp := &CurveParams{
		Name:    params.Name,
		P:       new(big.Int).Set(params.P),
		N:       new(big.Int).Set(params.N),
		A:       new(big.Int).Mod(params.A, params.P),
		B:       new(big.Int).Mod(params.B, params.P),
		Gx:      new(big.Int).Set(params.Gx),
		Gy:      new(big.Int).Set(params.Gy),
		BitSize: params.BitSize,
	}
	if cp.BitSize == 0 {
		cp.BitSize = cp.P.BitLen()
	}
	if cp.BitSize < cp.P.BitLen() {
		return nil, fmt.Errorf("%w: bit size %d below field size %d", ErrInvalidCurve, cp.BitSize, cp.P.BitLen())
	}

	// 4a³ + 27b² != 0 (mod p)
	disc := new(big.Int).Exp(cp.A, big.NewInt(3), cp.P)
	disc.Mul(disc, big.NewInt(4))
	b2 := new(big.Int).Mul(cp.B, cp.B)
	b2.Mul(b2, big.NewInt(27))
	disc.Add(disc, b2)
	if disc.Mod(disc, cp.P).Sign() == 0 {
		return nil, fmt.Errorf("%w: singular curve", ErrInvalidCurve)
	}

	c := &Curve{
		params:  cp,
		byteLen: (cp.BitSize + 7) / 8,
	}
	c.g = &Point{X: cp.Gx, Y: cp.Gy}
	if !c.IsOnCurve(c.g) {
		return nil, fmt.Errorf("%w: generator not on curve", ErrInvalidCurve)
	}

	// ScalarMult reduces k mod N, which is only sound when N*G is the identity
	ng, err := c.multiply(c.g, cp.N)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCurve, err)
	}
	if !ng.IsInfinity() {
		return nil, fmt.Errorf("%w: N*G is not the identity", ErrInvalidCurve)
	}

	return c, nil
}

// Params returns a copy of the curve parameters
func (c *Curve) Params() *CurveParams {
	return &CurveParams{
		Name:    c.params.Name,
		P:       new(big.Int).Set(c.params.P),
		N:       new(big.Int).Set(c.params.N),
		A:       new(big.Int).Set(c.params.A),
		B:       new(big.Int).Set(c.params.B),
		Gx:      new(big.Int).Set(c.params.Gx),
		Gy:      new(big.Int).Set(c.params.Gy),
		BitSize: c.params.BitSize,
	}
}

// Generator returns the generator point
func (c *Curve) Generator() *Point {
	return c.g.Clone()
}

// Order returns the order of the generator
func (c *Curve) Order() *big.Int {
	return new(big.Int).Set(c.params.N)
}

// FieldModulus returns the prime p of the base field
func (c *Curve) FieldModulus() *big.Int {
	return new(big.Int).Set(c.params.P)
}

// ByteLen returns the size in bytes of one encoded coordinate or scalar
func (c *Curve) ByteLen() int {
	return c.byteLen
}

// Name returns the curve name
func (c *Curve) Name() string {
	return c.params.Name
}

// IsValidScalar reports whether k lies in [1, n-1]
func (c *Curve) IsValidScalar(k *big.Int) bool {
	return security.InRange(k, c.params.N)
}

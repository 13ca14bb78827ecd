package curve

import (
	"fmt"
	"math/big"

	"github.com/Caqil/ecc/internal/math"
)

var (
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// IsOnCurve reports whether p is an affine point with coordinates in
// [0, p) satisfying y² = x³ + ax + b. The point at infinity is not an
// affine point and is reported as false.
func (c *Curve) IsOnCurve(p *Point) bool {
	if p == nil || p.infinity || p.X == nil || p.Y == nil {
		return false
	}
	fp := c.params.P
	if p.X.Sign() < 0 || p.X.Cmp(fp) >= 0 || p.Y.Sign() < 0 || p.Y.Cmp(fp) >= 0 {
		return false
	}

	y2 := new(big.Int).Mul(p.Y, p.Y)
	y2.Mod(y2, fp)

	return c.polynomial(p.X).Cmp(y2) == 0
}

// polynomial returns x³ + ax + b mod p
func (c *Curve) polynomial(x *big.Int) *big.Int {
	x3 := new(big.Int).Mul(x, x)
	x3.Add(x3, c.params.A) // x² + a
	x3.Mul(x3, x)          // x³ + ax
	x3.Add(x3, c.params.B) // x³ + ax + b

	return x3.Mod(x3, c.params.P)
}

// checkOperand accepts the point at infinity and affine points on the curve
func (c *Curve) checkOperand(p *Point) error {
	if p == nil {
		return ErrInvalidPoint
	}
	if p.infinity {
		return nil
	}
	if !c.IsOnCurve(p) {
		return ErrInvalidPoint
	}
	return nil
}

// checkAffine accepts only affine points on the curve
func (c *Curve) checkAffine(p *Point) error {
	if p.IsInfinity() {
		return ErrPointAtInfinity
	}
	return c.checkOperand(p)
}

// AffineAdd adds two distinct affine points with the chord rule:
//
//	λ = (y2 - y1) / (x2 - x1)
//	x3 = λ² - x1 - x2
//	y3 = λ(x1 - x3) - y1
//
// It returns ErrSamePoint when p1 == p2 and ErrPointAtInfinity when the sum
// is the identity or either operand is infinity. Add handles those cases.
func (c *Curve) AffineAdd(p1, p2 *Point) (*Point, error) {
	if err := c.checkAffine(p1); err != nil {
		return nil, err
	}
	if err := c.checkAffine(p2); err != nil {
		return nil, err
	}
	return c.affineAdd(p1, p2)
}

func (c *Curve) affineAdd(p1, p2 *Point) (*Point, error) {
	fp := c.params.P

	if p1.X.Cmp(p2.X) == 0 {
		if p1.Y.Cmp(p2.Y) == 0 {
			return nil, ErrSamePoint
		}
		// on-curve points sharing x differ only by the sign of y
		return nil, ErrPointAtInfinity
	}

	dx := new(big.Int).Sub(p2.X, p1.X)
	dxInv, err := math.ModInverse(dx, fp)
	if err != nil {
		return nil, fmt.Errorf("point addition: %w", err)
	}

	lambda := new(big.Int).Sub(p2.Y, p1.Y)
	lambda = math.Reduce(lambda.Mul(lambda, dxInv), fp)

	return c.finish(lambda, p1, p2.X), nil
}

// AffineDouble doubles an affine point with the tangent rule:
//
//	λ = (3x² + a) / 2y
//	x3 = λ² - 2x
//	y3 = λ(x - x3) - y
//
// It returns ErrPointAtInfinity when y == 0, where the tangent is vertical.
func (c *Curve) AffineDouble(p *Point) (*Point, error) {
	if err := c.checkAffine(p); err != nil {
		return nil, err
	}
	return c.affineDouble(p)
}

func (c *Curve) affineDouble(p *Point) (*Point, error) {
	fp := c.params.P

	if p.Y.Sign() == 0 {
		return nil, ErrPointAtInfinity
	}

	denInv, err := math.ModInverse(new(big.Int).Mul(two, p.Y), fp)
	if err != nil {
		return nil, fmt.Errorf("point doubling: %w", err)
	}

	lambda := new(big.Int).Mul(p.X, p.X)
	lambda.Mul(lambda, three)
	lambda.Add(lambda, c.params.A)
	lambda = math.Reduce(lambda.Mul(lambda, denInv), fp)

	return c.finish(lambda, p, p.X), nil
}

// finish computes x3 = λ² - p.x - x2 and y3 = λ(p.x - x3) - p.y
func (c *Curve) finish(lambda *big.Int, p *Point, x2 *big.Int) *Point {
	fp := c.params.P

	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, p.X)
	x3 = math.Reduce(x3.Sub(x3, x2), fp)

	y3 := new(big.Int).Sub(p.X, x3)
	y3.Mul(y3, lambda)
	y3 = math.Reduce(y3.Sub(y3, p.Y), fp)

	return &Point{X: x3, Y: y3}
}

// Add computes p1 + p2 for any two points, including the identity.
// Equal operands are doubled and opposite operands sum to infinity.
func (c *Curve) Add(p1, p2 *Point) (*Point, error) {
	if err := c.checkOperand(p1); err != nil {
		return nil, err
	}
	if err := c.checkOperand(p2); err != nil {
		return nil, err
	}
	return c.add(p1, p2)
}

func (c *Curve) add(p1, p2 *Point) (*Point, error) {
	switch {
	case p1.infinity:
		return p2.Clone(), nil
	case p2.infinity:
		return p1.Clone(), nil
	}

	if p1.X.Cmp(p2.X) == 0 {
		if p1.Y.Cmp(p2.Y) == 0 {
			return c.double(p1)
		}
		return Infinity(), nil
	}

	return c.affineAdd(p1, p2)
}

// Double computes 2*p. Doubling infinity or a point with y == 0 yields
// infinity.
func (c *Curve) Double(p *Point) (*Point, error) {
	if err := c.checkOperand(p); err != nil {
		return nil, err
	}
	return c.double(p)
}

func (c *Curve) double(p *Point) (*Point, error) {
	if p.infinity || p.Y.Sign() == 0 {
		return Infinity(), nil
	}
	return c.affineDouble(p)
}

// Negate computes -p = (x, -y mod p)
func (c *Curve) Negate(p *Point) (*Point, error) {
	if err := c.checkOperand(p); err != nil {
		return nil, err
	}
	if p.infinity {
		return Infinity(), nil
	}

	negY := new(big.Int).Sub(c.params.P, p.Y)
	negY.Mod(negY, c.params.P)

	return &Point{
		X: new(big.Int).Set(p.X),
		Y: negY,
	}, nil
}

// ScalarMult computes k*p with left-to-right double-and-add.
//
// k must be at least 1. A multiple of the group order, or p at infinity,
// yields infinity. The running time depends on k.
func (c *Curve) ScalarMult(p *Point, k *big.Int) (*Point, error) {
	if err := c.checkOperand(p); err != nil {
		return nil, err
	}
	return c.scalarMult(p, k)
}

// ScalarBaseMult computes k*G where G is the generator
func (c *Curve) ScalarBaseMult(k *big.Int) (*Point, error) {
	return c.scalarMult(c.g, k)
}

func (c *Curve) scalarMult(p *Point, k *big.Int) (*Point, error) {
	if k == nil || k.Sign() <= 0 {
		return nil, ErrInvalidScalar
	}
	if p.infinity || new(big.Int).Mod(k, c.params.N).Sign() == 0 {
		return Infinity(), nil
	}

	// The accumulator starts at p, which consumes the top bit of k.
	acc := p.Clone()
	var err error
	for i := k.BitLen() - 2; i >= 0; i-- {
		if acc, err = c.double(acc); err != nil {
			return nil, err
		}
		if k.Bit(i) == 1 {
			if acc, err = c.add(acc, p); err != nil {
				return nil, err
			}
		}
	}

	return acc, nil
}

// multiply is double-and-add without reducing k by the order. It is used to
// check the order itself.
func (c *Curve) multiply(p *Point, k *big.Int) (*Point, error) {
	acc := Infinity()
	var err error
	for i := k.BitLen() - 1; i >= 0; i-- {
		if acc, err = c.double(acc); err != nil {
			return nil, err
		}
		if k.Bit(i) == 1 {
			if acc, err = c.add(acc, p); err != nil {
				return nil, err
			}
		}
	}
	return acc, nil
}

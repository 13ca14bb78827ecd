package curve

import (
	"fmt"
	"math/big"
)

// Point represents a point on an elliptic curve: either an affine pair
// (X, Y) or the point at infinity. The zero Point with nil coordinates is
// not a valid point; use Infinity for the identity.
type Point struct {
	X *big.Int
	Y *big.Int

	infinity bool
}

// Infinity returns the identity element of the group
func Infinity() *Point {
	return &Point{infinity: true}
}

// NewPoint validates (x, y) against the curve equation and returns an
// affine point holding copies of the coordinates. Use it for coordinates
// coming from outside the package.
func (c *Curve) NewPoint(x, y *big.Int) (*Point, error) {
	if x == nil || y == nil {
		return nil, ErrInvalidPoint
	}
	p := &Point{
		X: new(big.Int).Set(x),
		Y: new(big.Int).Set(y),
	}
	if !c.IsOnCurve(p) {
		return nil, ErrInvalidPoint
	}
	return p, nil
}

// IsInfinity checks if point is the point at infinity
func (p *Point) IsInfinity() bool {
	return p != nil && p.infinity
}

// IsEqual checks if two points are equal
func (p *Point) IsEqual(other *Point) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.infinity || other.infinity {
		return p.infinity == other.infinity
	}
	if p.X == nil || p.Y == nil || other.X == nil || other.Y == nil {
		return false
	}
	return p.X.Cmp(other.X) == 0 && p.Y.Cmp(other.Y) == 0
}

// Clone creates a deep copy of the point
func (p *Point) Clone() *Point {
	if p == nil {
		return nil
	}
	if p.infinity {
		return Infinity()
	}
	q := &Point{}
	if p.X != nil {
		q.X = new(big.Int).Set(p.X)
	}
	if p.Y != nil {
		q.Y = new(big.Int).Set(p.Y)
	}
	return q
}

// String formats the point as "(x, y)" in decimal
func (p *Point) String() string {
	switch {
	case p == nil:
		return "<nil>"
	case p.infinity:
		return "(infinity)"
	default:
		return fmt.Sprintf("(%s, %s)", p.X, p.Y)
	}
}

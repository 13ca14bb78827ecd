package curve

import (
	"math/big"

	"github.com/Caqil/ecc/internal/math"
)

// SEC 1 point encoding prefixes
const (
	prefixEven         byte = 0x02
	prefixOdd          byte = 0x03
	prefixUncompressed byte = 0x04
)

// MarshalUncompressed encodes p as 0x04 || x || y with fixed-width
// big-endian coordinates (SEC 1, section 2.3.3).
func (c *Curve) MarshalUncompressed(p *Point) ([]byte, error) {
	if err := c.checkAffine(p); err != nil {
		return nil, err
	}

	out := make([]byte, 1+2*c.byteLen)
	out[0] = prefixUncompressed
	p.X.FillBytes(out[1 : 1+c.byteLen])
	p.Y.FillBytes(out[1+c.byteLen:])

	return out, nil
}

// MarshalCompressed encodes p as 0x02 || x when y is even and 0x03 || x
// when y is odd.
func (c *Curve) MarshalCompressed(p *Point) ([]byte, error) {
	if err := c.checkAffine(p); err != nil {
		return nil, err
	}

	out := make([]byte, 1+c.byteLen)
	out[0] = prefixEven | byte(p.Y.Bit(0))
	p.X.FillBytes(out[1:])

	return out, nil
}

// Unmarshal decodes a compressed or uncompressed SEC 1 encoding and checks
// that the result lies on the curve.
func (c *Curve) Unmarshal(data []byte) (*Point, error) {
	switch {
	case len(data) == 1+c.byteLen && (data[0] == prefixEven || data[0] == prefixOdd):
		return c.decompress(data)
	case len(data) == 1+2*c.byteLen && data[0] == prefixUncompressed:
		x := new(big.Int).SetBytes(data[1 : 1+c.byteLen])
		y := new(big.Int).SetBytes(data[1+c.byteLen:])
		if x.Cmp(c.params.P) >= 0 || y.Cmp(c.params.P) >= 0 {
			return nil, ErrInvalidEncoding
		}
		p := &Point{X: x, Y: y}
		if !c.IsOnCurve(p) {
			return nil, ErrInvalidPoint
		}
		return p, nil
	default:
		return nil, ErrInvalidEncoding
	}
}

// decompress recovers y from x and the parity carried in the prefix
func (c *Curve) decompress(data []byte) (*Point, error) {
	fp := c.params.P

	x := new(big.Int).SetBytes(data[1:])
	if x.Cmp(fp) >= 0 {
		return nil, ErrInvalidEncoding
	}

	// y² = x³ + ax + b
	y := new(big.Int).ModSqrt(c.polynomial(x), fp)
	if y == nil {
		return nil, ErrInvalidEncoding
	}
	if byte(y.Bit(0)) != data[0]&1 {
		y = math.Reduce(y.Neg(y), fp)
	}
	if byte(y.Bit(0)) != data[0]&1 {
		// y == 0 has no odd representative
		return nil, ErrInvalidEncoding
	}

	p := &Point{X: x, Y: y}
	if !c.IsOnCurve(p) {
		return nil, ErrInvalidPoint
	}
	return p, nil
}

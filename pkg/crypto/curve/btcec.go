package curve

import (
	"github.com/btcsuite/btcd/btcec/v2"
)

// ToBTCEC converts a secp256k1 point into a btcec public key for use with
// the wider btcsuite ecosystem.
func (c *Curve) ToBTCEC(p *Point) (*btcec.PublicKey, error) {
	if c.params.Name != "secp256k1" {
		return nil, ErrUnsupportedCurve
	}
	if err := c.checkAffine(p); err != nil {
		return nil, err
	}

	var x, y btcec.FieldVal
	x.SetByteSlice(p.X.Bytes())
	y.SetByteSlice(p.Y.Bytes())

	return btcec.NewPublicKey(&x, &y), nil
}

// FromBTCEC converts a btcec public key into a point on c
func (c *Curve) FromBTCEC(pk *btcec.PublicKey) (*Point, error) {
	if c.params.Name != "secp256k1" {
		return nil, ErrUnsupportedCurve
	}
	if pk == nil {
		return nil, ErrInvalidPoint
	}
	return c.NewPoint(pk.X(), pk.Y())
}

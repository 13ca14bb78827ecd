package curve

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/Caqil/ecc/internal/math"
)

// secp256k1 domain parameters (SEC 2, section 2.4.1)
const (
	secp256k1P  = "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F"
	secp256k1N  = "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141"
	secp256k1A  = "0"
	secp256k1B  = "7"
	secp256k1Gx = "79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798"
	secp256k1Gy = "483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8"
)

var (
	secp256k1Once  sync.Once
	secp256k1Curve *Curve
	secp256k1Err   error
)

// loadSecp256k1 builds the curve on first use and returns the shared instance
func loadSecp256k1() (*Curve, error) {
	secp256k1Once.Do(func() {
		secp256k1Curve, secp256k1Err = newSecp256k1()
	})
	return secp256k1Curve, secp256k1Err
}

func newSecp256k1() (*Curve, error) {
	literals := []string{secp256k1P, secp256k1N, secp256k1A, secp256k1B, secp256k1Gx, secp256k1Gy}
	values := make([]*big.Int, len(literals))
	for i, lit := range literals {
		v, err := math.ParseHex(lit)
		if err != nil {
			return nil, fmt.Errorf("secp256k1 constant %d: %w", i, err)
		}
		values[i] = v
	}

	return NewCurveFromParams(&CurveParams{
		Name:    "secp256k1",
		P:       values[0],
		N:       values[1],
		A:       values[2],
		B:       values[3],
		Gx:      values[4],
		Gy:      values[5],
		BitSize: 256,
	})
}

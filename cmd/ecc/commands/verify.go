package commands

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Caqil/ecc/internal/math"
	"github.com/Caqil/ecc/pkg/crypto/curve"
	"github.com/Caqil/ecc/pkg/signing"
)

var errVerificationFailed = errors.New("signature verification failed")

func newVerifyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify an ECDSA signature",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runVerify(cmd)
		},
	}
	cmd.Flags().String("pubkey", "", "SEC 1 public key in hex (compressed or uncompressed)")
	cmd.Flags().String("r", "", "Signature r (decimal or 0x hex)")
	cmd.Flags().String("s", "", "Signature s (decimal or 0x hex)")
	cmd.Flags().String("der", "", "DER encoded signature in hex, instead of --r and --s")
	cmd.Flags().Bool("demo", false, "Verify the built-in demo signature")
	addMessageFlags(cmd)
	return cmd
}

func (a *app) runVerify(cmd *cobra.Command) error {
	var (
		pub *curve.Point
		sig *signing.Signature
		err error
	)

	if a.v.GetBool("demo") {
		pub, sig, err = demoSignature(a.curve)
		a.v.Set("hash-value", demoHash)
		a.v.Set("message", "")
		a.v.Set("digest", "")
	} else {
		pub, sig, err = a.verifyInputs()
	}
	if err != nil {
		return err
	}

	h, _, err := a.messageHash()
	if err != nil {
		return err
	}

	ok, err := signing.Verify(a.curve, pub, h, sig)
	if err != nil {
		return err
	}

	if !ok {
		a.log.WarnEvent().BigInt("r", sig.R).Msg("signature rejected")
		fmt.Fprintln(cmd.OutOrStdout(), "signature invalid")
		return errVerificationFailed
	}
	a.log.InfoEvent().BigInt("r", sig.R).Msg("signature accepted")
	fmt.Fprintln(cmd.OutOrStdout(), "signature valid")
	return nil
}

func (a *app) verifyInputs() (*curve.Point, *signing.Signature, error) {
	raw := strings.TrimPrefix(a.v.GetString("pubkey"), "0x")
	if raw == "" {
		return nil, nil, errors.New("--pubkey is required")
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --pubkey: %w", curve.ErrInvalidEncoding)
	}
	pub, err := a.curve.Unmarshal(b)
	if err != nil {
		return nil, nil, err
	}

	if der := a.v.GetString("der"); der != "" {
		b, err := hex.DecodeString(strings.TrimPrefix(der, "0x"))
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --der: %w", signing.ErrInvalidSignature)
		}
		sig, err := signing.ParseDERSignature(b)
		return pub, sig, err
	}

	r, err := a.scalar("r")
	if err != nil {
		return nil, nil, err
	}
	s, err := a.scalar("s")
	if err != nil {
		return nil, nil, err
	}
	return pub, &signing.Signature{R: r, S: s}, nil
}

// demoSignature recreates the demo key pair and signature
func demoSignature(c *curve.Curve) (*curve.Point, *signing.Signature, error) {
	var vals [3]*big.Int
	for i, lit := range []string{demoPrivateKey, demoNonce, demoHash} {
		v, err := math.ParseDecimal(lit)
		if err != nil {
			return nil, nil, err
		}
		vals[i] = v
	}
	priv, nonce, h := vals[0], vals[1], vals[2]

	pub, err := signing.DerivePublicKey(c, priv)
	if err != nil {
		return nil, nil, err
	}
	sig, err := signing.Sign(c, priv, nonce, h)
	if err != nil {
		return nil, nil, err
	}
	return pub, sig, nil
}

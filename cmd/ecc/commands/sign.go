package commands

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/Caqil/ecc/pkg/signing"
)

func newSignCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message hash with ECDSA",
		Long: `Sign a message hash with ECDSA.

Without --nonce the nonce is derived from the key and digest per RFC 6979.
A supplied nonce must be secret and never reused.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSign(cmd)
		},
	}
	cmd.Flags().String("key", "", "Private key (decimal or 0x hex)")
	cmd.Flags().String("nonce", "", "Explicit nonce (decimal or 0x hex)")
	cmd.Flags().Bool("low-s", false, "Normalize s to the lower half of the order")
	cmd.Flags().Bool("demo", false, "Use the built-in demo key, nonce and hash")
	addMessageFlags(cmd)
	return cmd
}

func (a *app) runSign(cmd *cobra.Command) error {
	if a.v.GetBool("demo") {
		a.v.Set("key", demoPrivateKey)
		a.v.Set("nonce", demoNonce)
		a.v.Set("hash-value", demoHash)
		a.v.Set("message", "")
		a.v.Set("digest", "")
	}

	priv, err := a.scalar("key")
	if err != nil {
		return err
	}

	h, digest, err := a.messageHash()
	if err != nil {
		return err
	}

	signer, err := signing.NewSigner(a.curve, priv, signing.WithLogger(a.log), signing.WithHash(a.hash))
	if err != nil {
		return err
	}
	defer signer.Destroy()

	var sig *signing.Signature
	if a.v.GetString("nonce") != "" {
		var nonce *big.Int
		if nonce, err = a.scalar("nonce"); err != nil {
			return err
		}
		sig, err = signer.Sign(nonce, h)
	} else {
		sig, err = signer.SignDeterministic(digest)
	}
	if err != nil {
		return err
	}

	if a.v.GetBool("low-s") {
		sig = sig.Normalize(a.curve)
	}

	der, err := sig.DER()
	if err != nil {
		return err
	}

	a.log.InfoEvent().
		Hex("digest", digest).
		BigInt("r", sig.R).
		Bool("low_s", sig.IsLowS(a.curve)).
		Msg("signature created")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "r = %s\n", sig.R)
	fmt.Fprintf(out, "s = %s\n", sig.S)
	fmt.Fprintf(out, "der = %s\n", hex.EncodeToString(der))
	return nil
}

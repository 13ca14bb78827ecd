package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Caqil/ecc/pkg/crypto/curve"
	"github.com/Caqil/ecc/pkg/signing"
)

func newPubkeyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pubkey",
		Short: "Derive the public key of a private key",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPubkey(cmd)
		},
	}
	cmd.Flags().String("key", "", "Private key (decimal or 0x hex)")
	cmd.Flags().Bool("demo", false, "Use the built-in demo private key")
	return cmd
}

func (a *app) runPubkey(cmd *cobra.Command) error {
	if a.v.GetBool("demo") {
		a.v.Set("key", demoPrivateKey)
	}

	priv, err := a.scalar("key")
	if err != nil {
		return err
	}

	pub, err := signing.DerivePublicKey(a.curve, priv)
	if err != nil {
		return err
	}

	a.log.DebugEvent().Secret("key", priv).Stringer("public_key", pub).Msg("public key derived")

	return a.printPublicKey(cmd, pub)
}

func (a *app) printPublicKey(cmd *cobra.Command, pub *curve.Point) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "x: %s\n", pub.X)
	fmt.Fprintf(out, "y: %s\n", pub.Y)

	if a.config.Format == formatUncompressed || a.config.Format == formatBoth {
		b, err := a.curve.MarshalUncompressed(pub)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "uncompressed: %s\n", hex.EncodeToString(b))
	}
	if a.config.Format == formatCompressed || a.config.Format == formatBoth {
		b, err := a.curve.MarshalCompressed(pub)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "compressed: %s\n", hex.EncodeToString(b))
	}
	return nil
}

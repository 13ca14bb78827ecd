package commands

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/Caqil/ecc/internal/math"
)

func newParamsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Print the curve domain parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runParams(cmd)
		},
	}
}

func (a *app) runParams(cmd *cobra.Command) error {
	params := a.curve.Params()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "name: %s\n", params.Name)
	fmt.Fprintf(out, "bits: %d\n", params.BitSize)

	for _, f := range []struct {
		name string
		val  *big.Int
	}{
		{"p", params.P},
		{"n", params.N},
		{"a", params.A},
		{"b", params.B},
		{"gx", params.Gx},
		{"gy", params.Gy},
	} {
		v, err := math.FormatHex(f.val, a.curve.ByteLen())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %s\n", f.name, v)
	}
	return nil
}

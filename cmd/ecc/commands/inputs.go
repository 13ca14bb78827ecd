package commands

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Caqil/ecc/internal/math"
	"github.com/Caqil/ecc/pkg/crypto/hash"
)

// literals from the reference driver used by --demo
const (
	demoPrivateKey = "75263518707598184987916378021939673586055614731957507592904438851787542395619"
	demoNonce      = "28695618543805844332113829720373285210420739438570883203839696518176414791234"
	demoHash       = "86032112319101611046176971828093669637772856272773459297323797145286374828050"
)

var errNoMessage = errors.New("one of --message, --digest or --hash-value is required")

// addMessageFlags registers the ways a command can receive the signed hash
func addMessageFlags(cmd *cobra.Command) {
	cmd.Flags().String("message", "", "Message to hash with --hash")
	cmd.Flags().String("digest", "", "Precomputed message digest in hex")
	cmd.Flags().String("hash-value", "", "Message hash as an integer (decimal or 0x hex)")
}

// messageHash resolves the message flags into the integer that is signed
// and the digest bytes RFC 6979 consumes
func (a *app) messageHash() (*big.Int, []byte, error) {
	var (
		msg    = a.v.GetString("message")
		digest = a.v.GetString("digest")
		value  = a.v.GetString("hash-value")
	)

	switch {
	case msg != "":
		d, err := hash.Hash([]byte(msg), a.hash)
		if err != nil {
			return nil, nil, err
		}
		return a.digestToInt(d)
	case digest != "":
		d, err := hex.DecodeString(strings.TrimPrefix(digest, "0x"))
		if err != nil || len(d) == 0 {
			return nil, nil, fmt.Errorf("invalid --digest: %w", math.ErrParse)
		}
		return a.digestToInt(d)
	case value != "":
		h, err := math.ParseInt(value)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --hash-value: %w", err)
		}
		d, err := math.FillBytes(h, a.curve.ByteLen())
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --hash-value: %w", err)
		}
		return h, d, nil
	default:
		return nil, nil, errNoMessage
	}
}

func (a *app) digestToInt(d []byte) (*big.Int, []byte, error) {
	h, err := hash.DigestToInt(d, a.curve.Order())
	if err != nil {
		return nil, nil, err
	}
	return h, d, nil
}

// scalar parses a decimal or 0x-prefixed hex integer flag
func (a *app) scalar(name string) (*big.Int, error) {
	raw := a.v.GetString(name)
	if raw == "" {
		return nil, fmt.Errorf("--%s is required", name)
	}
	v, err := math.ParseInt(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return v, nil
}

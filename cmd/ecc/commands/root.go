package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Caqil/ecc/pkg/crypto/curve"
	"github.com/Caqil/ecc/pkg/crypto/hash"
	"github.com/Caqil/ecc/pkg/logger"
)

// app carries the state loaded before each command runs
type app struct {
	v      *viper.Viper
	config *CLIConfig
	log    *logger.Logger
	curve  *curve.Curve
	hash   hash.HashFunction
}

// NewRootCmd returns the ecc root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	a := &app{
		v:      viper.New(),
		config: NewDefaultCLIConfig(),
		log:    logger.Nop(),
	}

	root := &cobra.Command{
		Use:   "ecc",
		Short: "secp256k1 key derivation, ECDSA signing and verification",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	root.PersistentFlags().String("log-level", a.config.LogLevel, "trace, debug, info, warn, error, disabled")
	root.PersistentFlags().Bool("log-pretty", a.config.LogPretty, "Human readable log output")
	root.PersistentFlags().String("hash", a.config.Hash, "Message hash: sha256, sha512, keccak256, sha3-256")
	root.PersistentFlags().String("format", a.config.Format, "Public key encoding: compressed, uncompressed, both")
	root.PersistentFlags().String("config-dir", a.config.ConfigDir, "Directory searched for ecc.toml (.json, .yaml also work)")

	root.AddCommand(
		newPubkeyCmd(a),
		newSignCmd(a),
		newVerifyCmd(a),
		newParamsCmd(a),
	)

	return root
}

// load binds flags, environment and the optional config file into the
// CLI config, then builds the logger and curve
func (a *app) load(cmd *cobra.Command) error {
	if err := a.bindFlagsLoadViper(cmd); err != nil {
		return err
	}

	log, err := logger.New(&logger.Config{
		Level:  a.config.LogLevel,
		Output: cmd.OutOrStderr(),
		Pretty: a.config.LogPretty,
	})
	if err != nil {
		return err
	}
	a.log = log.With().Str("command", cmd.Name()).Logger()

	if a.hash, err = hash.ParseHashFunction(a.config.Hash); err != nil {
		return err
	}

	switch a.config.Format {
	case formatCompressed, formatUncompressed, formatBoth:
	default:
		return fmt.Errorf("unknown public key format %q", a.config.Format)
	}

	if a.curve, err = curve.NewCurve(curve.Secp256k1); err != nil {
		return err
	}

	a.log.DebugEvent().
		Str("log-level", a.config.LogLevel).
		Str("hash", a.hash.String()).
		Str("format", a.config.Format).
		Str("config-dir", a.config.ConfigDir).
		Msg("config loaded")

	return nil
}

// Bind all flags and read the config into viper
func (a *app) bindFlagsLoadViper(cmd *cobra.Command) error {
	// Register flags with viper. Include flags from this command and all other
	// persistent flags from the parent
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	a.v.SetEnvPrefix("ECC")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	// first unmarshal to read from CLI flags and environment
	if err := a.v.Unmarshal(a.config); err != nil {
		return err
	}

	// look for config file in [config-dir]/ecc.toml (.json, .yaml also work)
	a.v.SetConfigName("ecc")
	a.v.AddConfigPath(a.config.ConfigDir)

	if err := a.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	// second unmarshal to read from config file
	return a.v.Unmarshal(a.config)
}

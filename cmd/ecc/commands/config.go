package commands

// CLIConfig contains configuration shared by all ecc commands
type CLIConfig struct {
	LogLevel  string `mapstructure:"log-level"`
	LogPretty bool   `mapstructure:"log-pretty"`
	Hash      string `mapstructure:"hash"`
	Format    string `mapstructure:"format"`
	ConfigDir string `mapstructure:"config-dir"`
}

// NewDefaultCLIConfig creates a CLIConfig with default values
func NewDefaultCLIConfig() *CLIConfig {
	return &CLIConfig{
		LogLevel:  "warn",
		Hash:      "sha256",
		Format:    formatCompressed,
		ConfigDir: ".",
	}
}

// public key output formats
const (
	formatCompressed   = "compressed"
	formatUncompressed = "uncompressed"
	formatBoth         = "both"
)

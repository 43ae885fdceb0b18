package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Interact holds the settings shared by the interact subcommands.
type Interact struct {
	ChainID    string `mapstructure:"chain_id"`    // Chain ID passed to forge
	RPCURL     string `mapstructure:"rpc_url"`     // JSON-RPC endpoint of the local node
	ForgeBin   string `mapstructure:"forge_bin"`   // Path or name of the forge binary
	ProjectDir string `mapstructure:"project_dir"` // Forge project root holding foundry.toml
	LogLevel   string `mapstructure:"log_level"`   // Logger level name
}

const (
	// DefaultForgeBin is the forge executable looked up on PATH.
	DefaultForgeBin = "forge"
	// DefaultDevnetURL is the node used for time travel when no RPC URL is configured.
	DefaultDevnetURL = "http://127.0.0.1:8545"
)

var interactEnvBindings = map[string][]string{
	"chain_id":    {"CUSTOM_TOOLING_CHAINID"},
	"rpc_url":     {"CUSTOM_TOOLING_RPC_URL"},
	"forge_bin":   {"FORGE_BIN"},
	"project_dir": {"FORGE_PROJECT_DIR"},
	"log_level":   {"LOG_LEVEL"},
}

// LoadInteract reads the interact settings from the environment.
func LoadInteract() (*Interact, error) {
	v := viper.New()
	v.SetDefault("forge_bin", DefaultForgeBin)
	v.SetDefault("project_dir", ".")

	if err := bindEnvs(v, interactEnvBindings); err != nil {
		return nil, err
	}

	cfg := &Interact{}
	err := v.Unmarshal(cfg)

	return cfg, err
}

// ValidateForge checks the settings needed to run forge scripts.
func (c *Interact) ValidateForge() error {
	if c.ChainID == "" || c.RPCURL == "" {
		return fmt.Errorf("%w: running forge scripts needs CUSTOM_TOOLING_CHAINID and CUSTOM_TOOLING_RPC_URL (set them in %s)",
			ErrMissingOption, DotEnvFile)
	}

	return nil
}

// DevnetURL is the node receiving devnet RPC calls.
func (c *Interact) DevnetURL() string {
	if c.RPCURL != "" {
		return c.RPCURL
	}

	return DefaultDevnetURL
}

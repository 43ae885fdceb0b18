// Package deploy provides the CLI command deploying the Quill contracts with a
// forge script.
package deploy

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/quill-fi/quill-tooling/engine/commands/flags"
	"github.com/quill-fi/quill-tooling/engine/commands/text"
	"github.com/quill-fi/quill-tooling/engine/config"
	"github.com/quill-fi/quill-tooling/engine/deployment"
	"github.com/quill-fi/quill-tooling/engine/forge"
	"github.com/quill-fi/quill-tooling/pkg/logger"
)

var (
	deployShort = "Deploy the Quill contracts."

	deployLong = text.LongDesc(`
		Deploy the Quill contracts.

		NETWORK_PRESET is a shorthand for the chain ID, RPC URL, deployer and
		script of a known network. Run 'deploy --list-presets' to see them.

		Options can also be set through environment variables, e.g. --chain-id
		through CHAIN_ID. Flags take precedence over variables, which take
		precedence over preset defaults. Values a preset forces, such as its
		script, always win.

		Once the script succeeds, the deployed addresses are read from
		deployment-manifest.json and recorded in deployment-context-latest.json.
	`)

	deployExample = text.Examples(`
		deploy local
		deploy local --open-demo-troves --mode bold-only
		deploy scroll-sepolia --dry-run
		deploy --chain-id 31337 --rpc-url http://localhost:8545 --deployer 0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266 --unlocked --script script/DeployOrkiLocal.s.sol
	`)
)

// Config holds the configuration for the deploy command.
type Config struct {
	// Logger is the logger to use for command output. Required.
	Logger logger.Logger

	// Level is the level of Logger, raised to debug by --debug or --log-level.
	// Optional.
	Level *zap.AtomicLevel

	// Deps holds optional dependencies that can be overridden.
	// If fields are nil, production defaults are used.
	Deps Deps
}

// Validate checks that all required configuration fields are set.
func (c Config) Validate() error {
	var missing []string

	if c.Logger == nil {
		missing = append(missing, "Logger")
	}

	if len(missing) > 0 {
		return errors.New("deploy.Config: missing required fields: " + strings.Join(missing, ", "))
	}

	return nil
}

// deps returns the Deps with defaults applied.
func (c *Config) deps() *Deps {
	c.Deps.applyDefaults()

	return &c.Deps
}

// NewCommand creates the deploy command.
func NewCommand(cfg Config) (*cobra.Command, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.deps()

	cmd := &cobra.Command{
		Use:           "deploy [NETWORK_PRESET]",
		Short:         deployShort,
		Long:          deployLong,
		Example:       deployExample,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setLevel(cfg, flags.MustString(cmd.Flags().GetString("log-level"))); err != nil {
				return err
			}
			if flags.MustBool(cmd.Flags().GetBool("list-presets")) {
				return runListPresets(cmd, cfg)
			}

			var preset string
			if len(args) > 0 {
				preset = args[0]
			}

			return runDeploy(cmd, cfg, preset)
		},
	}

	f := cmd.Flags()
	f.String(config.KeyChainID, "", "Chain ID to deploy to")
	f.String(config.KeyRPCURL, "", "RPC URL to use")
	f.String(config.KeyDeployer, "", "Address or private key to deploy with; an address needs a Ledger unless --unlocked")
	f.String(config.KeyLedgerPath, "", "HD path to use with the Ledger (only used when the deployer is an address)")
	f.String(config.KeyEtherscanAPIKey, "", "Etherscan API key to verify the contracts (required when verifying with Etherscan)")
	f.String(config.KeyMode, "", "Deployment mode: complete (default), bold-only or use-existing-bold")
	f.String(config.KeySalt, "", "Use keccak256(bytes(SALT)) as CREATE2 salt instead of the block timestamp")
	f.String(config.KeyVerifier, "", "Verification provider, e.g. etherscan (default), sourcify or blockscout")
	f.String(config.KeyVerifierURL, "", "The verifier URL, if using a custom provider")
	f.String(config.KeyGasPrice, "", "Max fee per gas to use in transactions")
	f.String(config.KeyPriorityGasPrice, "", "Max priority fee per gas to use in transactions")
	f.String(config.KeyScript, "", "Deployment script, relative to the forge project (set by network presets)")
	f.Bool(config.KeyOpenDemoTroves, false, "Open demo troves after deployment (local only)")
	f.Bool(config.KeyDryRun, false, "Don't broadcast transactions, only simulate execution")
	f.Bool(config.KeySlow, false, "Only send a transaction after the previous one has been confirmed")
	f.Bool(config.KeyUnlocked, false, "The deployer account is unlocked in the client")
	f.Bool(config.KeyUseTestnetPricefeeds, false, "Use testnet price feeds instead of real oracles")
	f.Bool(config.KeyVerify, false, "Verify contracts after deployment")
	f.Bool(config.KeyResume, false, "Resume a previous deployment")
	f.Bool(config.KeyDebug, false, "Show debug output")
	f.Bool("list-presets", false, "List the network presets and exit")
	flags.LogLevel(cmd)

	return cmd, nil
}

func setLevel(cfg Config, name string) error {
	if name == "" || cfg.Level == nil {
		return nil
	}

	lvl, err := logger.ParseLevel(name)
	if err != nil {
		return err
	}
	cfg.Level.SetLevel(lvl)

	return nil
}

func runListPresets(cmd *cobra.Command, cfg Config) error {
	presets, err := cfg.deps().PresetLoader()
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(presets))
	for _, name := range presets.Names() {
		rows = append(rows, []string{name, presets[name].Description})
	}
	cmd.Printf("Available presets:\n\n%s\n", text.Table(nil, rows))

	return nil
}

func runDeploy(cmd *cobra.Command, cfg Config, preset string) error {
	deps := cfg.deps()

	// --- Resolve

	presets, err := deps.PresetLoader()
	if err != nil {
		return err
	}
	opts, err := config.ResolveDeploy(cmd.Flags(), preset, presets)
	if err != nil {
		return err
	}
	if err = opts.Validate(); err != nil {
		return err
	}
	if opts.Debug && cfg.Level != nil {
		cfg.Level.SetLevel(zapcore.DebugLevel)
	}

	settings, err := deps.ConfigLoader()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	network, _ := config.NetworkName(opts.ChainID)
	cmd.Printf("\nDeploying Quill contracts with the following settings:\n\n%s\n\n", text.Table(nil, opts.Settings(network)))
	cfg.Logger.Debugw("Resolved deployment options", "options", opts.Safe(), "preset", preset)

	// --- Execute

	runner := deps.RunnerFactory(cfg.Logger, settings.ForgeBin, settings.ProjectDir)
	if err = runner.Run(cmd.Context(), forge.Deploy(opts)); err != nil {
		return err
	}

	// --- Record

	manifest, err := deps.ManifestLoader(settings.ProjectDir)
	if err != nil {
		return err
	}

	if opts.Mode == config.ModeBoldOnly {
		cmd.Printf("BoldToken address: %s\n", manifest.BoldToken)
		return nil
	}

	contextPath := filepath.Join(settings.ProjectDir, deployment.ContextFile)
	if err = deps.ContextWriter(contextPath, deployment.NewContext(opts.Safe(), manifest)); err != nil {
		return err
	}
	cfg.Logger.Infow("Wrote deployment context", "path", contextPath)

	cmd.Printf("%s\nDeployment complete.\n", manifest.Listing())

	return nil
}

// Package interact provides the CLI commands driving a local Quill testnet
// through forge scripts and devnet RPC calls, and reporting on its state.
package interact

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quill-fi/quill-tooling/engine/commands/flags"
	"github.com/quill-fi/quill-tooling/engine/commands/text"
	"github.com/quill-fi/quill-tooling/engine/config"
	"github.com/quill-fi/quill-tooling/engine/forge"
	"github.com/quill-fi/quill-tooling/pkg/logger"
	"github.com/quill-fi/quill-tooling/report"
)

var (
	interactShort = "Interact with Quill contracts in a local setup."

	interactLong = text.LongDesc(`
		Interact with Quill contracts in a local setup.

		Commands running forge scripts read the chain ID and RPC URL from
		CUSTOM_TOOLING_CHAINID and CUSTOM_TOOLING_RPC_URL, which may be set in a
		.env file in the working directory.

		Run 'interact <COMMAND> --help' for detailed options and examples.
	`)
)

// Config holds the configuration for interact commands.
type Config struct {
	// Logger is the logger to use for command output. Required.
	Logger logger.Logger

	// Level is the level of Logger, adjusted by --log-level when set.
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
		return errors.New("interact.Config: missing required fields: " + strings.Join(missing, ", "))
	}

	return nil
}

// deps returns the Deps with defaults applied.
func (c *Config) deps() *Deps {
	c.Deps.applyDefaults()

	return &c.Deps
}

// NewCommand creates the interact command with all subcommands.
func NewCommand(cfg Config) (*cobra.Command, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.deps()

	cmd := &cobra.Command{
		Use:           "interact <COMMAND>",
		Short:         interactShort,
		Long:          interactLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			cmd.Println(cmd.UsageString())

			return fmt.Errorf("unknown command: %s", args[0])
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return applyLogLevel(cfg, flags.MustString(cmd.Flags().GetString("log-level")))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	flags.NoColor(cmd)
	flags.LogLevel(cmd)

	cmd.AddCommand(
		newSnapshotCmd(cfg),
		newSnapshotDiffCmd(cfg),
		newSetPriceCmd(cfg),
		newMoveTimeCmd(cfg),
		newShutdownCmd(cfg),
		newLiquidateCmd(cfg),
		newRedeemCmd(cfg),
		newActorsCmd(cfg),
	)

	return cmd, nil
}

func applyLogLevel(cfg Config, name string) error {
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

// session is what a forge backed subcommand needs to run its script.
type session struct {
	settings *config.Interact
	project  *forge.Project
	scripts  forge.Governance
	runner   forge.Runner
}

// newSession loads the settings and the forge project. It fails when the chain
// settings forge needs are absent.
func newSession(cfg Config) (*session, error) {
	deps := cfg.deps()

	settings, err := deps.ConfigLoader()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err = settings.ValidateForge(); err != nil {
		return nil, err
	}

	project, err := deps.ProjectLoader(settings.ProjectDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load forge project: %w", err)
	}

	return &session{
		settings: settings,
		project:  project,
		scripts: forge.Governance{
			Project: project,
			ChainID: settings.ChainID,
			RPCURL:  settings.RPCURL,
		},
		runner: deps.RunnerFactory(cfg.Logger, settings),
	}, nil
}

// newRenderer creates a renderer honouring --no-color.
func newRenderer(cmd *cobra.Command, cfg Config) (*report.Renderer, error) {
	deps := cfg.deps()
	noColor := flags.MustBool(cmd.Flags().GetBool("no-color"))

	r, err := deps.RendererFactory(
		report.WithColor(!noColor),
		report.WithActors(deps.Actors),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	return r, nil
}

// Package commands provides the Quill CLI command packages.
//
// There are two ways to use commands from this package:
//
// 1. Via the Commands factory (recommended for most use cases):
//
//	cmds := commands.New(lggr).WithLevel(&lvl)
//	interactCmd, err := cmds.Interact()
//
// 2. Via direct package imports (for advanced DI/testing):
//
//	import "github.com/quill-fi/quill-tooling/pkg/commands/interact"
//
//	cmd, err := interact.NewCommand(interact.Config{
//	    Logger: lggr,
//	    Deps:   interact.Deps{...}, // inject fakes for testing
//	})
package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quill-fi/quill-tooling/pkg/commands/deploy"
	"github.com/quill-fi/quill-tooling/pkg/commands/interact"
	"github.com/quill-fi/quill-tooling/pkg/logger"
)

// Commands provides a factory for creating CLI commands with shared configuration.
// This allows setting the logger once and reusing it across all commands.
type Commands struct {
	lggr  logger.Logger
	level *zap.AtomicLevel
}

// New creates a new Commands factory with the given logger.
// The logger will be shared across all commands created by this factory.
func New(lggr logger.Logger) *Commands {
	return &Commands{lggr: lggr}
}

// WithLevel lets commands adjust the level of the shared logger from their
// flags.
func (c *Commands) WithLevel(level *zap.AtomicLevel) *Commands {
	c.level = level

	return c
}

// Interact creates the interact command tree driving a local testnet.
//
// Usage:
//
//	cmd, err := commands.New(lggr).Interact()
func (c *Commands) Interact() (*cobra.Command, error) {
	return interact.NewCommand(interact.Config{
		Logger: c.lggr,
		Level:  c.level,
	})
}

// Deploy creates the deploy command.
//
// Usage:
//
//	cmd, err := commands.New(lggr).Deploy()
func (c *Commands) Deploy() (*cobra.Command, error) {
	return deploy.NewCommand(deploy.Config{
		Logger: c.lggr,
		Level:  c.level,
	})
}

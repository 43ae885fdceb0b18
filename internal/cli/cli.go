// Package cli holds the process entry point shared by the quill binaries.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quill-fi/quill-tooling/engine/config"
	"github.com/quill-fi/quill-tooling/pkg/commands"
	"github.com/quill-fi/quill-tooling/pkg/logger"
)

// BuildFunc creates the root command of a binary.
type BuildFunc func(cmds *commands.Commands) (*cobra.Command, error)

// Run loads .env, builds the logger and executes the command made by build
// with args. It returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, build BuildFunc) int {
	if err := config.LoadDotEnv(config.DotEnvFile); err != nil {
		fmt.Fprintf(stderr, "Error: failed to load %s: %v\n", config.DotEnvFile, err)
		return 1
	}

	settings, err := config.LoadInteract()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	lvl, err := logger.ParseLevel(settings.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	level := zap.NewAtomicLevelAt(lvl)
	lggr, err := logger.NewLeveled(level)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = lggr.Sync() }()

	cmd, err := build(commands.New(lggr).WithLevel(&level))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err = cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitCode(err)
	}

	return 0
}

// ExitCode maps a command error to a process exit code. A failed child
// process passes its own code through.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}

	return 1
}

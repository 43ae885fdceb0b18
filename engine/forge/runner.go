package forge

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/quill-fi/quill-tooling/pkg/logger"
)

// Runner runs forge scripts.
type Runner interface {
	Run(ctx context.Context, inv Invocation) error
}

// ExecRunner runs forge as a child process from the project root, streaming
// its output.
type ExecRunner struct {
	Bin    string    // forge binary, looked up on PATH when not a path
	Dir    string    // forge project root
	Stdout io.Writer // defaults to os.Stdout
	Stderr io.Writer // defaults to os.Stderr

	lggr logger.Logger
}

// NewExecRunner returns a runner invoking bin from dir.
func NewExecRunner(lggr logger.Logger, bin, dir string) *ExecRunner {
	return &ExecRunner{
		Bin:    bin,
		Dir:    dir,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		lggr:   lggr,
	}
}

// Run runs the invocation and waits for it. A non-zero exit surfaces as an
// error wrapping *exec.ExitError.
func (r *ExecRunner) Run(ctx context.Context, inv Invocation) error {
	argv := inv.Argv()

	cmd := exec.CommandContext(ctx, r.Bin, argv...) //nolint:gosec // arguments come from validated command input
	cmd.Dir = r.Dir
	cmd.Env = inv.Environ(os.Environ())
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	r.lggr.Debugw("Running forge",
		"bin", r.Bin,
		"dir", r.Dir,
		"script", inv.Script,
		"args", strings.Join(inv.Args, " "),
		"sig", inv.Sig,
	)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("forge script %s failed: %w", inv.Script, err)
	}

	return nil
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(ctx context.Context, inv Invocation) error

// Run calls f.
func (f RunnerFunc) Run(ctx context.Context, inv Invocation) error {
	return f(ctx, inv)
}

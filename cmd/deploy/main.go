// Command deploy deploys the Quill contracts with forge.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/quill-fi/quill-tooling/internal/cli"
	"github.com/quill-fi/quill-tooling/pkg/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Run(ctx, os.Args[1:], os.Stdout, os.Stderr, (*commands.Commands).Deploy)
	stop()
	os.Exit(code)
}

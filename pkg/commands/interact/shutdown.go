package interact

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quill-fi/quill-tooling/engine/commands/text"
	"github.com/quill-fi/quill-tooling/internal/units"
)

var (
	shutdownShort = "Shutdown a branch by its index."

	shutdownExample = text.Examples(`
		interact shutdown 1
	`)
)

func newShutdownCmd(cfg Config) *cobra.Command {
	return &cobra.Command{
		Use:     "shutdown <BRANCH_INDEX>",
		Short:   shutdownShort,
		Example: shutdownExample,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("BRANCH_INDEX must be provided as an integer")
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			branch, err := units.ParseIndex(args[0])
			if err != nil {
				return fmt.Errorf("invalid BRANCH_INDEX: %w", err)
			}

			s, err := newSession(cfg)
			if err != nil {
				return err
			}

			cmd.Printf("Shutting down branch with index %d...\n", branch)
			if err = s.runner.Run(cmd.Context(), s.scripts.ShutdownBranch(branch)); err != nil {
				return err
			}
			cmd.Println("Branch shutdown successfully.")

			return nil
		},
	}
}

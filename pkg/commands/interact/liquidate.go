package interact

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quill-fi/quill-tooling/engine/commands/text"
	"github.com/quill-fi/quill-tooling/internal/units"
)

var (
	liquidateShort = "Liquidate a list of troves by their IDs."

	liquidateLong = text.LongDesc(`
		Liquidate a list of troves by their IDs.

		Trove IDs are given in decimal or as 0x-prefixed hex, as shown in the
		liquidatable troves section of a snapshot report.
	`)

	liquidateExample = text.Examples(`
		interact liquidate 1 11187606515095629903487489821340171885033495262553632055898216111536384020053
		interact liquidate 0 42 0x2a
	`)
)

func newLiquidateCmd(cfg Config) *cobra.Command {
	return &cobra.Command{
		Use:     "liquidate <COLL_INDEX> <TROVE_ID>...",
		Short:   liquidateShort,
		Long:    liquidateLong,
		Example: liquidateExample,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("you must specify the collateral index and at least one trove ID")
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			collIndex, err := units.ParseIndex(args[0])
			if err != nil {
				return fmt.Errorf("invalid COLL_INDEX: %w", err)
			}

			ids := make([]*big.Int, 0, len(args)-1)
			shown := make([]string, 0, len(args)-1)
			for _, a := range args[1:] {
				id, parseErr := units.ParseID(a)
				if parseErr != nil {
					return parseErr
				}
				ids = append(ids, id)
				shown = append(shown, id.String())
			}

			s, err := newSession(cfg)
			if err != nil {
				return err
			}

			cmd.Printf("Running liquidation for index %d with values: %s\n", collIndex, strings.Join(shown, ", "))
			if err = s.runner.Run(cmd.Context(), s.scripts.LiquidateTroves(collIndex, ids)); err != nil {
				return err
			}
			cmd.Println("Liquidation executed successfully.")

			return nil
		},
	}
}

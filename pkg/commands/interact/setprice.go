package interact

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quill-fi/quill-tooling/engine/commands/flags"
	"github.com/quill-fi/quill-tooling/engine/commands/text"
	"github.com/quill-fi/quill-tooling/internal/units"
)

var (
	setPriceShort = "Sets the new price of the collateral."

	setPriceLong = text.LongDesc(`
		Sets the new price of the collateral.

		NOTE: this does not work in forked environments, since the price is
		fetched from the Chainlink oracle there.

		The price is read from --wei, --gwei or --ether, in that order, and
		falls back to the NEW_WEI_VALUE argument.
	`)

	setPriceExample = text.Examples(`
		interact setprice 1 150000000000000000000
		interact setprice 1 --wei 150000000000000000000
		interact setprice 1 --gwei 1500000000000
		interact setprice 1 --ether 15
	`)
)

var errCollIndex = errors.New("COLL_INDEX must be provided as an integer")

func newSetPriceCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "setprice <COLL_INDEX> [NEW_WEI_VALUE]",
		Short:   setPriceShort,
		Long:    setPriceLong,
		Example: setPriceExample,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errCollIndex
			}

			return cobra.MaximumNArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			collIndex, err := units.ParseIndex(args[0])
			if err != nil {
				return fmt.Errorf("invalid COLL_INDEX: %w", err)
			}

			var positional string
			if len(args) > 1 {
				positional = args[1]
			}
			wei, ok, err := flags.AmountOf(cmd, positional).Resolve()
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("invalid price value, provide NEW_WEI_VALUE or one of --wei, --gwei, --ether")
			}

			s, err := newSession(cfg)
			if err != nil {
				return err
			}

			cmd.Printf("Setting price for collateral index %d to %s wei...\n", collIndex, wei)
			if err = s.runner.Run(cmd.Context(), s.scripts.SetPrice(collIndex, wei)); err != nil {
				return err
			}
			cmd.Println("Price set successfully.")

			return nil
		},
	}

	flags.Amount(cmd, "Price")

	return cmd
}

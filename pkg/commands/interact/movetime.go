package interact

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quill-fi/quill-tooling/engine/commands/flags"
	"github.com/quill-fi/quill-tooling/engine/commands/text"
	"github.com/quill-fi/quill-tooling/engine/devnet"
	"github.com/quill-fi/quill-tooling/internal/units"
)

var (
	moveTimeShort = "Moves time forward by a specified duration."

	moveTimeLong = text.LongDesc(`
		Moves the time forward by the specified duration (default 1 day). Note that
		this only takes effect after the next transaction is made.

		The node is reached at CUSTOM_TOOLING_RPC_URL, or http://127.0.0.1:8545
		when it is not set.
	`)

	moveTimeExample = text.Examples(`
		interact movetime --sec 3600
		interact movetime --day
		interact movetime --month
	`)
)

type moveTimeFlags struct {
	sec   string
	day   bool
	week  bool
	month bool
	year  bool
}

// seconds picks the first duration given, in flag order.
func (f moveTimeFlags) seconds() (uint64, error) {
	if f.sec != "" {
		n, err := units.ParseIndex(f.sec)
		if err != nil {
			return 0, fmt.Errorf("invalid value for --sec: %w", err)
		}

		return n, nil
	}

	d := devnet.Day
	switch {
	case f.day:
	case f.week:
		d = devnet.Week
	case f.month:
		d = devnet.Month
	case f.year:
		d = devnet.Year
	}

	return uint64(d / time.Second), nil
}

func newMoveTimeCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "movetime",
		Short:   moveTimeShort,
		Long:    moveTimeLong,
		Example: moveTimeExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := moveTimeFlags{
				sec:   flags.MustString(cmd.Flags().GetString("sec")),
				day:   flags.MustBool(cmd.Flags().GetBool("day")),
				week:  flags.MustBool(cmd.Flags().GetBool("week")),
				month: flags.MustBool(cmd.Flags().GetBool("month")),
				year:  flags.MustBool(cmd.Flags().GetBool("year")),
			}

			return runMoveTime(cmd, cfg, f)
		},
	}

	cmd.Flags().String("sec", "", "Moves forward by the specified number of seconds")
	cmd.Flags().Bool("day", false, "Moves forward by one day")
	cmd.Flags().Bool("week", false, "Moves forward by one week")
	cmd.Flags().Bool("month", false, "Moves forward by one month (30 days)")
	cmd.Flags().Bool("year", false, "Moves forward by one year (365 days)")

	return cmd
}

func runMoveTime(cmd *cobra.Command, cfg Config, f moveTimeFlags) error {
	deps := cfg.deps()

	seconds, err := f.seconds()
	if err != nil {
		return err
	}

	settings, err := deps.ConfigLoader()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cmd.Printf("Moving time forward by %d seconds...\n", seconds)
	node := deps.TimeTravelerFactory(cfg.Logger, settings.DevnetURL())
	if err = node.IncreaseTime(cmd.Context(), seconds); err != nil {
		return err
	}
	cmd.Println("Time moved successfully.")

	return nil
}

package interact

import (
	"github.com/spf13/cobra"

	"github.com/quill-fi/quill-tooling/engine/commands/text"
)

var actorsShort = "List the local development actors."

func newActorsCmd(cfg Config) *cobra.Command {
	return &cobra.Command{
		Use:   "actors",
		Short: actorsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list := cfg.deps().Actors.All()

			rows := make([][]string, 0, len(list))
			for _, a := range list {
				rows = append(rows, []string{a.Name, a.Address.Hex()})
			}
			cmd.Println(text.Table([]string{"NAME", "ADDRESS"}, rows))

			return nil
		},
	}
}

package interact

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quill-fi/quill-tooling/actors"
	"github.com/quill-fi/quill-tooling/engine/commands/flags"
	"github.com/quill-fi/quill-tooling/engine/commands/text"
)

var (
	redeemShort = "Redeem a specified amount of Quill tokens."

	redeemLong = text.LongDesc(`
		Redeem a specified amount of Quill tokens.

		The signing account is taken from --private-key, else from the actor
		named by --actor, else from the actor owning --address. Run
		'interact actors' to see the list of actors.

		The amount is read from --wei, --gwei or --ether, in that order, and
		falls back to the QUILL_AMOUNT argument in wei.
	`)

	redeemExample = text.Examples(`
		interact redeem --ether 1000 --actor adam
		interact redeem --wei 1000 --address 0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266
		interact redeem --gwei 1000 --private-key 0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80
	`)
)

type redeemFlags struct {
	actor      string
	address    string
	privateKey string
}

// signingKey resolves the redeeming account.
func (f redeemFlags) signingKey(dir *actors.Directory) (string, error) {
	switch {
	case f.privateKey != "":
		return f.privateKey, nil
	case f.actor != "":
		a, err := dir.ByName(f.actor)
		if err != nil {
			return "", fmt.Errorf("private key not found, ensure the actor is correct: %w", err)
		}

		return a.PrivateKey, nil
	case f.address != "":
		a, err := dir.ByAddress(f.address)
		if err != nil {
			return "", fmt.Errorf("private key not found, ensure the address is correct: %w", err)
		}

		return a.PrivateKey, nil
	default:
		return "", errors.New("one of --actor, --address, or --private-key must be provided")
	}
}

func newRedeemCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "redeem [QUILL_AMOUNT]",
		Short:   redeemShort,
		Long:    redeemLong,
		Example: redeemExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := redeemFlags{
				actor:      flags.MustString(cmd.Flags().GetString("actor")),
				address:    flags.MustString(cmd.Flags().GetString("address")),
				privateKey: flags.MustString(cmd.Flags().GetString("private-key")),
			}
			key, err := f.signingKey(cfg.deps().Actors)
			if err != nil {
				return err
			}

			var positional string
			if len(args) > 0 {
				positional = args[0]
			}
			amount, ok, err := flags.AmountOf(cmd, positional).Resolve()
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("invalid Quill amount, provide QUILL_AMOUNT or one of --wei, --gwei, --ether")
			}

			s, err := newSession(cfg)
			if err != nil {
				return err
			}

			cmd.Printf("Redeeming amount %s...\n", amount)
			if err = s.runner.Run(cmd.Context(), s.scripts.RedeemCollateral(key, amount)); err != nil {
				return err
			}
			cmd.Println("Trove redeemed successfully.")

			return nil
		},
	}

	cmd.Flags().String("actor", "", "Actor to redeem the Quill tokens from")
	cmd.Flags().String("address", "", "Address of the actor to redeem the Quill tokens from")
	cmd.Flags().String("private-key", "", "Private key of the account to redeem the Quill tokens from")
	flags.Amount(cmd, "Amount")

	return cmd
}

// Package flags provides reusable flag helpers for CLI commands.
//
// This package should only contain common flags that can be used by multiple commands
// to ensure unified naming and consistent behavior across the CLI.
// Command-specific flags should be defined locally in the command file.
package flags

import (
	"github.com/spf13/cobra"

	"github.com/quill-fi/quill-tooling/internal/units"
)

// MustString returns the string value, ignoring the error.
// Safe to use with registered flags where GetString cannot fail.
func MustString(s string, _ error) string { return s }

// MustBool returns the bool value, ignoring the error.
// Safe to use with registered flags where GetBool cannot fail.
func MustBool(b bool, _ error) bool { return b }

// Markdown adds the --markdown flag for producing a Markdown report file.
// Retrieve the value with cmd.Flags().GetBool("markdown").
func Markdown(cmd *cobra.Command) {
	cmd.Flags().Bool("markdown", false, "Also generate the report in Markdown format")
}

// Output adds the --output flag holding the base name of the files a command
// writes, without extension.
// Retrieve the value with cmd.Flags().GetString("output").
//
// Usage:
//
//	flags.Output(cmd, "")
//	// later in RunE:
//	base, _ := cmd.Flags().GetString("output")
func Output(cmd *cobra.Command, defaultValue string) {
	cmd.Flags().String("output", defaultValue, "Base name for the output files (e.g. \"snapshot1\" -> snapshot1.json, snapshot1.md)")
}

// NoColor adds the persistent --no-color flag disabling ANSI styling.
// Retrieve the value with cmd.Flags().GetBool("no-color").
func NoColor(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool("no-color", false, "Disable ANSI colors in terminal reports")
}

// LogLevel adds the persistent --log-level flag.
// Retrieve the value with cmd.Flags().GetString("log-level").
func LogLevel(cmd *cobra.Command) {
	cmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error); defaults to LOG_LEVEL or info")
}

// Amount adds the --wei, --gwei and --ether flags. noun describes what the
// amount measures, e.g. "Price" or "Amount".
// Read them back with AmountOf.
func Amount(cmd *cobra.Command, noun string) {
	cmd.Flags().String("wei", "", noun+" in wei (default unit)")
	cmd.Flags().String("gwei", "", noun+" in gwei (1 ether = 10^9 gwei)")
	cmd.Flags().String("ether", "", noun+" in ether (10^18 wei)")
}

// AmountOf collects the amount flags registered by Amount together with an
// optional positional value.
func AmountOf(cmd *cobra.Command, positional string) units.Amount {
	return units.Amount{
		Wei:        MustString(cmd.Flags().GetString("wei")),
		Gwei:       MustString(cmd.Flags().GetString("gwei")),
		Ether:      MustString(cmd.Flags().GetString("ether")),
		Positional: positional,
	}
}

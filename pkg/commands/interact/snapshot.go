package interact

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quill-fi/quill-tooling/engine/commands/flags"
	"github.com/quill-fi/quill-tooling/engine/commands/text"
	"github.com/quill-fi/quill-tooling/engine/forge"
	"github.com/quill-fi/quill-tooling/internal/fileutils"
	"github.com/quill-fi/quill-tooling/snapshot"
)

// defaultSnapshotBase names the report files when --output is not given.
const defaultSnapshotBase = "protocolSnapshot"

var (
	snapshotShort = "Take a snapshot of the local testnet."

	snapshotLong = text.LongDesc(`
		Take a snapshot of the local testnet. Saves the snapshot to
		'protocolSnapshot.json' in the forge project by default, then prints it.

		With --markdown the report is written to '<output>.md' instead of being
		printed.
	`)

	snapshotExample = text.Examples(`
		interact snapshot
		interact snapshot --markdown
		interact snapshot --output customSnapshot
		interact snapshot --markdown --output customSnapshot
	`)
)

type snapshotFlags struct {
	output   string
	markdown bool
}

func newSnapshotCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "snapshot",
		Short:   snapshotShort,
		Long:    snapshotLong,
		Example: snapshotExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := snapshotFlags{
				output:   flags.MustString(cmd.Flags().GetString("output")),
				markdown: flags.MustBool(cmd.Flags().GetBool("markdown")),
			}

			return runSnapshot(cmd, cfg, f)
		},
	}

	flags.Output(cmd, "")
	flags.Markdown(cmd)

	return cmd
}

func runSnapshot(cmd *cobra.Command, cfg Config, f snapshotFlags) error {
	s, err := newSession(cfg)
	if err != nil {
		return err
	}

	// --- Execute

	cmd.Println("Taking a snapshot of the local testnet...")
	if err = s.runner.Run(cmd.Context(), s.scripts.Snapshot()); err != nil {
		return err
	}

	jsonPath := s.project.Path(forge.SnapshotFile)
	base := defaultSnapshotBase
	if f.output != "" {
		base = f.output
		dst := fileutils.WithExt(base, ".json")
		if err = fileutils.Move(jsonPath, dst); err != nil {
			return fmt.Errorf("failed to save snapshot to %s: %w", dst, err)
		}
		jsonPath = dst
	}
	cmd.Printf("Snapshot saved to %s\n", jsonPath)

	// --- Report

	snap, err := snapshot.Load(jsonPath)
	if err != nil {
		return err
	}
	r, err := newRenderer(cmd, cfg)
	if err != nil {
		return err
	}

	if f.markdown {
		mdPath := fileutils.WithExt(base, ".md")
		if err = r.WriteMarkdown(mdPath, snap); err != nil {
			return fmt.Errorf("failed to write markdown report: %w", err)
		}
		cmd.Printf("Markdown snapshot generated at %s\n", mdPath)

		return nil
	}

	out, err := r.ANSI(snap)
	if err != nil {
		return err
	}
	cmd.Print(out)

	return nil
}

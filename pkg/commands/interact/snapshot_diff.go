package interact

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/quill-fi/quill-tooling/engine/commands/flags"
	"github.com/quill-fi/quill-tooling/engine/commands/text"
	"github.com/quill-fi/quill-tooling/internal/fileutils"
	"github.com/quill-fi/quill-tooling/snapshot"
)

var (
	snapshotDiffShort = "Compare two snapshots and highlight the differences."

	snapshotDiffLong = text.LongDesc(`
		Compare two snapshots and highlight the differences.

		Values of the newer snapshot are shown with their change since the older
		one. With --markdown the diff is also written next to the newer snapshot
		as '<new>-<old>-diff-report.md'.
	`)

	snapshotDiffExample = text.Examples(`
		interact snapshot-diff snapshot1.json snapshot2.json
		interact snapshot-diff snapshot1.json snapshot2.json --markdown
	`)
)

var errDiffArgs = errors.New("missing arguments. Usage: snapshot-diff <old> <new>")

func newSnapshotDiffCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "snapshot-diff <OLD> <NEW>",
		Short:   snapshotDiffShort,
		Long:    snapshotDiffLong,
		Example: snapshotDiffExample,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errDiffArgs
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshotDiff(cmd, cfg, args[0], args[1], flags.MustBool(cmd.Flags().GetBool("markdown")))
		},
	}

	flags.Markdown(cmd)

	return cmd
}

func runSnapshotDiff(cmd *cobra.Command, cfg Config, oldPath, newPath string, markdown bool) error {
	oldSnap, newSnap, err := snapshot.LoadPair(oldPath, newPath)
	if err != nil {
		return err
	}

	r, err := newRenderer(cmd, cfg)
	if err != nil {
		return err
	}

	out, err := r.ANSIDiff(oldSnap, newSnap)
	if err != nil {
		return err
	}
	cmd.Print(out)

	if markdown {
		mdPath := diffReportPath(oldPath, newPath)
		if err = r.WriteMarkdownDiff(mdPath, oldSnap, newSnap); err != nil {
			return fmt.Errorf("failed to write markdown diff: %w", err)
		}
		cmd.Printf("Diff report generated at %s\n", mdPath)
	}

	return nil
}

// diffReportPath places the Markdown diff next to the newer snapshot.
func diffReportPath(oldPath, newPath string) string {
	name := fileutils.Base(newPath) + "-" + fileutils.Base(oldPath) + "-diff-report.md"

	return filepath.Join(filepath.Dir(newPath), name)
}

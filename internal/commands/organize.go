package commands

import (
	"fmt"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/nightshift-tools/nightshift/internal/organizer"
)

// NewOrganizeCommand creates the organize-files command.
func NewOrganizeCommand() *cobra.Command {
	return newOrganizeCommand(osfs.Default, time.Now)
}

func newOrganizeCommand(fsys billy.Filesystem, now func() time.Time) *cobra.Command {
	var src, dst string
	var dryRun bool
	var common commonFlags

	cmd := newCommand("organize-files", "Sort files into folders by type with a date prefix")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := common.load(cmd)
		if err != nil {
			return err
		}
		table, err := cfg.Table()
		if err != nil {
			return err
		}

		o := organizer.New(fsys,
			organizer.WithTable(table),
			organizer.WithClock(now),
			organizer.WithLogger(logger),
		)
		actions, err := o.Organize(src, dst, dryRun)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if dryRun {
			fmt.Fprintln(out, "Planned moves:")
			for _, a := range actions {
				fmt.Fprintf(out, "%s => %s\n", a.Source, a.Destination)
			}
			return nil
		}
		fmt.Fprintf(out, "Moved %d files.\n", len(actions))
		return nil
	}

	cmd.Flags().StringVar(&src, "src", "", "source folder to organize (required)")
	cmd.Flags().StringVar(&dst, "dst", "", "destination root folder (required)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "preview only, do not move files")
	_ = cmd.MarkFlagRequired("src")
	_ = cmd.MarkFlagRequired("dst")
	common.register(cmd)

	return cmd
}

package commands

import (
	"github.com/spf13/cobra"

	"github.com/nightshift-tools/nightshift/internal/config"
	"github.com/nightshift-tools/nightshift/internal/report"
)

// NewReportCommand creates the quick-report command.
func NewReportCommand() *cobra.Command {
	var csvPath, outPath string
	var common commonFlags

	cmd := newCommand("quick-report", "Summarize a daily sales CSV")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := common.load(cmd)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("out") {
			outPath = cfg.Report.Output
		}

		_, err = report.NewService(logger).QuickSummary(csvPath, outPath, cmd.OutOrStdout())
		return err
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "path to CSV with columns: date, store, sales (required)")
	cmd.Flags().StringVar(&outPath, "out", "", "per-store summary CSV to write (default "+config.DefaultReportOutput+")")
	_ = cmd.MarkFlagRequired("csv")
	common.register(cmd)

	return cmd
}

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/northloop/trendlens-cli/internal/dataset"
	"github.com/northloop/trendlens-cli/internal/report"
)

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Print descriptive statistics without rendering charts",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := dataset.LoadClean(inputPath(args))
		if err != nil {
			return err
		}
		logger.Info("dataset loaded and cleaned", "rows", len(ds.Rows), "columns", len(ds.Columns))
		return report.New(os.Stdout).Print(ds)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

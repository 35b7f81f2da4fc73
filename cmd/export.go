package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/northloop/trendlens-cli/internal/dataset"
	"github.com/northloop/trendlens-cli/internal/exporter"
	"github.com/northloop/trendlens-cli/internal/stats"
)

var exportOutputPath string

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export statistics to an XLSX workbook",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := dataset.LoadClean(inputPath(args))
		if err != nil {
			return err
		}
		sums := stats.Describe(ds)
		var medians []stats.RankedMedian
		if ds.HasColumn("Popularity_Score") {
			medians, err = stats.GroupMedian(ds, "Category", "Popularity_Score")
			if err != nil {
				logger.Warn("skipping category medians sheet", "error", err)
				medians = nil
			}
		}
		if err := exporter.WriteWorkbook(exportOutputPath, sums, medians); err != nil {
			return err
		}
		fmt.Printf("✓ Wrote workbook to %s\n", exportOutputPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutputPath, "output", "o", "winter_fashion_report.xlsx", "path for the XLSX workbook")
}

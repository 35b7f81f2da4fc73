package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/northloop/trendlens-cli/internal/charts"
	"github.com/northloop/trendlens-cli/internal/dataset"
)

var chartsOutputPath string

var chartsCmd = &cobra.Command{
	Use:   "charts [file]",
	Short: "Render the four-panel figure without printing statistics",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := dataset.LoadClean(inputPath(args))
		if err != nil {
			return err
		}
		out := chartsOutputPath
		if out == "" {
			out = cfg.Output
		}
		if err := charts.Render(ds, out, chartOptions(), logger); err != nil {
			return err
		}
		fmt.Printf("✓ Wrote figure to %s\n", out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chartsCmd)
	chartsCmd.Flags().StringVarP(&chartsOutputPath, "output", "o", "", "path for the composed figure PNG (default from config)")
}

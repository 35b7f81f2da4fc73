package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/northloop/trendlens-cli/internal/analyzer"
	"github.com/northloop/trendlens-cli/internal/charts"
)

var (
	repOutputPath  string
	repSeasonOrder string
	repTitle       string
)

var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Run the full analysis: statistics plus the four-panel figure",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := repOutputPath
		if out == "" {
			out = cfg.Output
		}
		a := &analyzer.Analyzer{
			Path:      inputPath(args),
			ChartPath: out,
			ChartOpts: chartOptions(),
			Out:       os.Stdout,
			Log:       logger,
		}
		return a.Run()
	},
}

// chartOptions merges the configured figure settings over the defaults.
func chartOptions() charts.Options {
	opt := charts.DefaultOptions()
	if cfg.ChartWidthIn > 0 {
		opt.Width = vg.Length(cfg.ChartWidthIn) * vg.Inch
	}
	if cfg.ChartHeightIn > 0 {
		opt.Height = vg.Length(cfg.ChartHeightIn) * vg.Inch
	}
	if cfg.SeasonOrder != "" {
		opt.SeasonOrder = cfg.SeasonOrder
	}
	if repSeasonOrder != "" {
		opt.SeasonOrder = repSeasonOrder
	}
	if repTitle != "" {
		opt.Title = repTitle
	}
	opt.TopColors = cfg.TopColors
	return opt
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&repOutputPath, "output", "o", "", "path for the composed figure PNG (default from config)")
	reportCmd.Flags().StringVar(&repSeasonOrder, "season-order", "", "season ordering for the rating trend: 'calendar' | 'first-seen'")
	reportCmd.Flags().StringVar(&repTitle, "title", "", "override the figure title")
}

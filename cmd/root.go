package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/northloop/trendlens-cli/internal/config"
	"github.com/northloop/trendlens-cli/internal/logging"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration and process-wide logger
	cfg    *cfgpkg.Global
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "trendlens",
	Short: "TrendLens CLI: statistics and charts for winter fashion trend datasets",
	Long:  `TrendLens loads a CSV of winter fashion trend records, cleans it, prints descriptive statistics, and renders a composed four-panel chart figure.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.trendlens/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults so the report can still run.
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{}
	}
	cfg = c
	logger = logging.Setup(cfg.LogLevel, debug)
}

// inputPath resolves the dataset path: the positional argument when given,
// otherwise the configured default.
func inputPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.Input
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/northloop/trendlens-cli/internal/utils"
)

// Global configuration structure.
type Global struct {
	// Input is the dataset path used when a command gets no file argument.
	Input string `mapstructure:"input" yaml:"input"`
	// Output is the composed chart image path.
	Output string `mapstructure:"output" yaml:"output"`

	ChartWidthIn  float64 `mapstructure:"chart_width_in" yaml:"chart_width_in"`
	ChartHeightIn float64 `mapstructure:"chart_height_in" yaml:"chart_height_in"`

	// SeasonOrder controls the rating-trend panel ordering:
	// "calendar" or "first-seen".
	SeasonOrder string `mapstructure:"season_order" yaml:"season_order"`

	// TopColors caps the bars in the color-frequency panel; 0 keeps all.
	TopColors int `mapstructure:"top_colors" yaml:"top_colors"`

	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.trendlens/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".trendlens")
		if err := utils.EnsureDir(dir); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := utils.SafeWriteFile(path, b); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("TRENDLENS")
	v.AutomaticEnv()

	// Defaults mirror the fixed ad-hoc report the tool was written for.
	v.SetDefault("input", "Winter_Fashion_Trends_Dataset.csv")
	v.SetDefault("output", "winter_fashion_report.png")
	v.SetDefault("chart_width_in", 18.0)
	v.SetDefault("chart_height_in", 12.0)
	v.SetDefault("season_order", "calendar")
	v.SetDefault("top_colors", 0)
	v.SetDefault("log_level", "info")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".trendlens")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	switch c.SeasonOrder {
	case "calendar", "first-seen":
	default:
		return nil, fmt.Errorf("invalid season_order: %q (use calendar or first-seen)", c.SeasonOrder)
	}
	return &c, nil
}

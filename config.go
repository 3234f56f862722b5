package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/brennerm/slashgrid/internal/grid"
)

const envPrefix = "slashgrid"

// addGridFlags registers the flags shared by every command that labels an axis.
func addGridFlags(fs *pflag.FlagSet) {
	fs.Int("ticks", 5, "Number of y labels (at least 2)")
	fs.String("precision", "0", `Decimal digits, or "round"`)
	fs.String("thousands-sep", ",", "Thousands separator")
	fs.String("decimal-sep", ".", "Decimal separator")
	fs.Int("max-precision", grid.DefaultMaxPrecision, "Highest precision tried when labels collide")
	fs.Float64("min", 0, "Range minimum")
	fs.Float64("max", 1, "Range maximum")
	fs.Float64("scale", 0, "Pixels (cells) per value unit, enables the fine scale precision bump above 1")
}

// addSourceFlags registers the flags that read the range from a metrics endpoint.
func addSourceFlags(fs *pflag.FlagSet) {
	fs.String("url", "", "Prometheus metrics endpoint to read the range from")
	fs.String("metric", "", "Metric whose samples define the range (requires --url)")
}

// newConfig layers flags over SLASHGRID_* environment variables over the
// config file.
func newConfig(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
	}
	return v, nil
}

// gridConfig builds the grid configuration from v.
func gridConfig(v *viper.Viper) (grid.GridConfig, error) {
	precision, err := grid.ParsePrecision(v.GetString("precision"))
	if err != nil {
		return grid.GridConfig{}, err
	}

	cfg := grid.GridConfig{
		NumYLabels:         v.GetInt("ticks"),
		Precision:          precision,
		ThousandsSeparator: v.GetString("thousands-sep"),
		DecimalSeparator:   v.GetString("decimal-sep"),
		MaxPrecision:       v.GetInt("max-precision"),
		Show:               true,
	}
	if v.IsSet("grid") {
		cfg.Show = v.GetBool("grid")
		cfg.ShowBaseline = v.GetBool("baseline")
	}
	if err := cfg.Validate(); err != nil {
		return grid.GridConfig{}, err
	}
	return cfg, nil
}

// axisRange reads the range from the metrics endpoint when --url is set,
// and from --min/--max otherwise.
func axisRange(v *viper.Viper) (grid.Range, error) {
	if url := v.GetString("url"); url != "" {
		metric := v.GetString("metric")
		if metric == "" {
			return grid.Range{}, fmt.Errorf("--metric is required with --url")
		}
		samples, err := fetchAllMetricSeries(url, metric)
		if err != nil {
			return grid.Range{}, err
		}
		return seriesRange(samples)
	}

	rng := grid.Range{Min: v.GetFloat64("min"), Max: v.GetFloat64("max")}
	if err := rng.Validate(); err != nil {
		return grid.Range{}, fmt.Errorf("invalid range [%g, %g]: %w", rng.Min, rng.Max, err)
	}
	return rng, nil
}

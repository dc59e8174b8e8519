// Package config resolves the settings for a run from defaults, an optional
// YAML file and SDGCORR_* environment variables.
package config

import (
	"fmt"

	"github.com/kpaschen/sdgcorr/lib/settings"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const ENV_PREFIX = "SDGCORR"

// Load returns the effective settings.
// Precedence: env > config file > defaults. Flags are applied by the caller.
// Without a file and without env the result reproduces the fixed export
// layout: NV_IND_TECH (2015) against SG_HAZ_CMRROTDAM, scatterplot.png.
func Load(cfgFile string) (settings.SdgSettings, error) {
	v := viper.New()
	v.SetEnvPrefix(ENV_PREFIX)
	v.AutomaticEnv()

	// Every key needs a default so AutomaticEnv can find it.
	// Series A and its time period stay empty here: the default period only
	// applies to the default series, which ComputeSettingsFields decides
	// after the file and env have been read.
	defaults := settings.SdgSettings{}.ComputeSettingsFields()
	v.SetDefault("input_file", defaults.InputFile)
	v.SetDefault("series_a", "")
	v.SetDefault("series_a_time_period", "")
	v.SetDefault("series_b", defaults.SeriesB)
	v.SetDefault("series_b_time_period", defaults.SeriesBTimePeriod)
	v.SetDefault("label_a", defaults.LabelA)
	v.SetDefault("label_b", defaults.LabelB)
	v.SetDefault("plot_file", defaults.PlotFile)
	v.SetDefault("plot_title", defaults.PlotTitle)
	v.SetDefault("axis_min", defaults.AxisMin)
	v.SetDefault("axis_max", defaults.AxisMax)
	v.SetDefault("plot_size_inches", defaults.PlotSizeInches)
	v.SetDefault("results_directory", defaults.ResultsDirectory)
	v.SetDefault("report_format", defaults.ReportFormat)
	v.SetDefault("metrics_file", defaults.MetricsFile)
	v.SetDefault("float_tolerance", defaults.FloatTolerance)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return settings.SdgSettings{}, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	var s settings.SdgSettings
	if err := v.Unmarshal(&s); err != nil {
		return settings.SdgSettings{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return s.ComputeSettingsFields(), nil
}

// Dump renders s the way a config file would hold it.
func Dump(s settings.SdgSettings) (string, error) {
	b, err := yaml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("marshal yaml: %w", err)
	}
	return string(b), nil
}

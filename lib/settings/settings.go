// Package settings contains all the parameters for an sdgcorr run.
package settings

const (
	REPORT_NONE    = "none"
	REPORT_CSV     = "csv"
	REPORT_PARQUET = "parquet"

	// SDG 9.b.1: proportion of medium and high-tech industry value added.
	DEFAULT_SERIES_A             = "NV_IND_TECH"
	DEFAULT_SERIES_A_TIME_PERIOD = "2015"
	// SDG 12.4.1: compliance with the Rotterdam Convention.
	DEFAULT_SERIES_B = "SG_HAZ_CMRROTDAM"

	DEFAULT_INPUT_FILE = "SDGdata_9-b-1_12-4-1.csv"
	DEFAULT_PLOT_FILE  = "scatterplot.png"
)

type SdgSettings struct {
	// The UN SDG indicator export to read.
	InputFile string `mapstructure:"input_file" yaml:"input_file"`

	// Series code and time period for the x axis indicator.
	// An empty time period means every period qualifies, but only when the
	// series code is set explicitly (see ComputeSettingsFields).
	SeriesA           string `mapstructure:"series_a" yaml:"series_a"`
	SeriesATimePeriod string `mapstructure:"series_a_time_period" yaml:"series_a_time_period"`
	// Series code and time period for the y axis indicator.
	SeriesB           string `mapstructure:"series_b" yaml:"series_b"`
	SeriesBTimePeriod string `mapstructure:"series_b_time_period" yaml:"series_b_time_period"`

	LabelA string `mapstructure:"label_a" yaml:"label_a"`
	LabelB string `mapstructure:"label_b" yaml:"label_b"`

	// The scatterplot is overwritten on every run.
	PlotFile       string  `mapstructure:"plot_file" yaml:"plot_file"`
	PlotTitle      string  `mapstructure:"plot_title" yaml:"plot_title"`
	AxisMin        float64 `mapstructure:"axis_min" yaml:"axis_min"`
	AxisMax        float64 `mapstructure:"axis_max" yaml:"axis_max"`
	PlotSizeInches float64 `mapstructure:"plot_size_inches" yaml:"plot_size_inches"`

	// Where the csv or parquet reporters put their files.
	ResultsDirectory string `mapstructure:"results_directory" yaml:"results_directory"`
	ReportFormat     string `mapstructure:"report_format" yaml:"report_format"`

	// Optional prometheus text exposition dump of the run metrics.
	MetricsFile string `mapstructure:"metrics_file" yaml:"metrics_file"`

	// 0 means the validator compares source and aligned values for exact equality.
	FloatTolerance float64 `mapstructure:"float_tolerance" yaml:"float_tolerance"`
}

func (s SdgSettings) ComputeSettingsFields() SdgSettings {
	if s.InputFile == "" {
		s.InputFile = DEFAULT_INPUT_FILE
	}
	if s.SeriesA == "" {
		s.SeriesA = DEFAULT_SERIES_A
		if s.SeriesATimePeriod == "" {
			s.SeriesATimePeriod = DEFAULT_SERIES_A_TIME_PERIOD
		}
	}
	if s.SeriesB == "" {
		s.SeriesB = DEFAULT_SERIES_B
	}
	if s.LabelA == "" {
		s.LabelA = "Proportion of medium and high-tech industry\nvalue added in total value added (%)"
	}
	if s.LabelB == "" {
		s.LabelB = "Compliance with the Rotterdam Convention\non hazardous waste and other chemicals (%)"
	}
	if s.PlotFile == "" {
		s.PlotFile = DEFAULT_PLOT_FILE
	}
	// Values are percentages.
	if s.AxisMin == 0 && s.AxisMax == 0 {
		s.AxisMax = 100
	}
	if s.PlotSizeInches == 0 {
		s.PlotSizeInches = 6
	}
	if s.ResultsDirectory == "" {
		s.ResultsDirectory = "."
	}
	if s.ReportFormat == "" {
		s.ReportFormat = REPORT_NONE
	}
	return s
}

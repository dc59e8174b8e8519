package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kpaschen/sdgcorr/lib"
	"github.com/kpaschen/sdgcorr/lib/config"
	"github.com/kpaschen/sdgcorr/lib/extract"
	"github.com/kpaschen/sdgcorr/lib/reporter"
	"github.com/kpaschen/sdgcorr/lib/settings"
	"github.com/spf13/cobra"
)

var (
	cfgFile string

	// Overrides, applied only when set on the command line.
	flagInput        string
	flagPlot         string
	flagResultsDir   string
	flagReportFormat string
	flagMetricsFile  string
	flagTolerance    float64
)

var rootCmd = &cobra.Command{
	Use:   "sdgcorr",
	Short: "Correlate two UN SDG indicators across countries",
	Long: `sdgcorr reads a UN SDG indicator export, pairs two indicator series by
country, checks the pairing against the export and reports the linear and
monotonic correlation between them together with a scatterplot.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runAnalysis,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the analysis (the default command)",
	Args:  cobra.NoArgs,
	RunE:  runAnalysis,
}

// Execute is the entry point called by main.main()
func Execute() {
	if code := reportError(os.Stderr, rootCmd.Execute()); code != 0 {
		os.Exit(code)
	}
}

// reportError prints err to w and returns the process exit code:
// 0 without an error, 2 for a data format violation in the export,
// 1 for anything else.
func reportError(w io.Writer, err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, extract.ErrDataFormat):
		fmt.Fprintln(w, "✗ Data format violation:", err)
		return 2
	default:
		fmt.Fprintln(w, "✗ Error:", err)
		return 1
	}
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&cfgFile, "config", "", "YAML config file (optional)")
	f.StringVar(&flagInput, "input", "", "indicator export to read (default "+settings.DEFAULT_INPUT_FILE+")")
	f.StringVar(&flagPlot, "plot", "", "scatterplot file to write (default "+settings.DEFAULT_PLOT_FILE+")")
	f.StringVar(&flagResultsDir, "results-dir", "", "directory for csv/parquet reports")
	f.StringVar(&flagReportFormat, "report-format", "", "none, csv or parquet")
	f.StringVar(&flagMetricsFile, "metrics-file", "", "write run metrics in prometheus text format to this file")
	f.Float64Var(&flagTolerance, "tolerance", 0, "allowed difference between source and aligned values during validation")

	rootCmd.AddCommand(runCmd)
}

func loadSettings(cmd *cobra.Command) (settings.SdgSettings, error) {
	s, err := config.Load(cfgFile)
	if err != nil {
		return s, err
	}
	f := cmd.Flags()
	if f.Changed("input") {
		s.InputFile = flagInput
	}
	if f.Changed("plot") {
		s.PlotFile = flagPlot
	}
	if f.Changed("results-dir") {
		s.ResultsDirectory = flagResultsDir
	}
	if f.Changed("report-format") {
		s.ReportFormat = flagReportFormat
	}
	if f.Changed("metrics-file") {
		s.MetricsFile = flagMetricsFile
	}
	if f.Changed("tolerance") {
		s.FloatTolerance = flagTolerance
	}
	return s.ComputeSettingsFields(), nil
}

func runAnalysis(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	reporters, err := reporter.NewReporters(s)
	if err != nil {
		return err
	}
	_, err = lib.Run(s, reporters)
	return err
}

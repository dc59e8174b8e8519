package lib

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/kpaschen/sdgcorr/lib/align"
	"github.com/kpaschen/sdgcorr/lib/chart"
	"github.com/kpaschen/sdgcorr/lib/correlation"
	"github.com/kpaschen/sdgcorr/lib/datatypes"
	"github.com/kpaschen/sdgcorr/lib/extract"
	"github.com/kpaschen/sdgcorr/lib/metrics"
	"github.com/kpaschen/sdgcorr/lib/reporter"
	"github.com/kpaschen/sdgcorr/lib/settings"
	"github.com/kpaschen/sdgcorr/lib/validate"
)

// RunResult is everything one run produced.
type RunResult struct {
	RunID      string
	Extraction *extract.Extraction
	Dataset    datatypes.AlignedDataset
	Validation validate.Report
	Analysis   correlation.Result
	Metrics    *metrics.RunMetrics
}

func filters(config settings.SdgSettings) (extract.Filter, extract.Filter) {
	return extract.Filter{Code: config.SeriesA, TimePeriod: config.SeriesATimePeriod},
		extract.Filter{Code: config.SeriesB, TimePeriod: config.SeriesBTimePeriod}
}

// Run opens config.InputFile and processes it.
// The file is closed before Run returns, whatever the outcome.
func Run(config settings.SdgSettings, reporters []reporter.Reporter) (*RunResult, error) {
	file, err := os.Open(config.InputFile)
	if err != nil {
		return nil, fmt.Errorf("opening indicator export: %w", err)
	}
	defer file.Close()
	return Process(file, config, reporters)
}

// Process extracts both series from src, aligns them, checks the alignment
// against a second scan of src, computes the correlations and renders the
// scatterplot.
//
// Only read errors and unparseable values in qualifying rows are fatal.
// Validation failures and undefined correlations are reported and the run
// carries on.
func Process(src io.ReadSeeker, config settings.SdgSettings, reporters []reporter.Reporter) (*RunResult, error) {
	res := &RunResult{
		RunID:   uuid.NewString(),
		Metrics: metrics.New(),
	}
	log.Printf("starting run %s on %s\n", res.RunID, config.InputFile)
	for _, r := range reporters {
		r.Initialize(res.RunID, config)
	}
	filterA, filterB := filters(config)

	ex, err := extract.Extract(src, filterA, filterB)
	res.Extraction = ex
	if err != nil {
		return res, err
	}
	res.Metrics.RecordsRead.Add(float64(ex.RowsRead))
	res.Metrics.ShortRowsSkipped.WithLabelValues("extract").Add(float64(ex.RowsSkipped))
	res.Metrics.QualifyingRows.WithLabelValues(filterA.Code).Add(float64(ex.SeriesA.Len()))
	res.Metrics.QualifyingRows.WithLabelValues(filterB.Code).Add(float64(ex.SeriesB.Len()))

	res.Dataset = align.Align(*ex.SeriesA, *ex.SeriesB)
	res.Metrics.AlignedPairs.Set(float64(res.Dataset.Len()))
	res.Metrics.DroppedDuplicates.Set(float64(res.Dataset.DroppedDuplicates))

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return res, fmt.Errorf("rewinding indicator export for validation: %w", err)
	}
	res.Validation = validate.Validate(src, filterA, filterB, res.Dataset, config.FloatTolerance)
	res.Metrics.ShortRowsSkipped.WithLabelValues("validate").Add(float64(res.Validation.SkippedRows))
	res.Metrics.ValueMismatches.Set(float64(res.Validation.Mismatches))
	if !res.Validation.OK() {
		log.Printf("run %s: alignment failed validation (%d mismatches)\n", res.RunID, res.Validation.Mismatches)
	}
	for _, r := range reporters {
		if err := r.AddValidation(res.Validation); err != nil {
			log.Printf("reporter failed to record validation: %v\n", err)
		}
	}

	res.Analysis = correlation.Analyze(res.Dataset)
	for _, test := range []correlation.Test{res.Analysis.Linear, res.Analysis.Monotonic} {
		if !test.Defined() {
			log.Printf("run %s: %s correlation is undefined: %v\n", res.RunID, test.Method, test.Err)
		}
		res.Metrics.Coefficient.WithLabelValues(test.Method).Set(test.Coefficient)
		res.Metrics.PValue.WithLabelValues(test.Method).Set(test.PValue)
	}

	err = chart.Scatter(res.Dataset, chart.Options{
		Title:      config.PlotTitle,
		XLabel:     config.LabelA,
		YLabel:     config.LabelB,
		AxisMin:    config.AxisMin,
		AxisMax:    config.AxisMax,
		SizeInches: config.PlotSizeInches,
	}, config.PlotFile)
	if err != nil {
		return res, err
	}

	for _, r := range reporters {
		if err := r.AddAnalysis(res.Dataset, res.Analysis); err != nil {
			return res, err
		}
		if err := r.Flush(); err != nil {
			return res, err
		}
	}

	if config.MetricsFile != "" {
		if err := res.Metrics.WriteTextfile(config.MetricsFile); err != nil {
			return res, fmt.Errorf("writing metrics to %s: %w", config.MetricsFile, err)
		}
	}
	return res, nil
}

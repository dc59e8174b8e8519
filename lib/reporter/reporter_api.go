package reporter

import (
	"fmt"

	"github.com/kpaschen/sdgcorr/lib/correlation"
	"github.com/kpaschen/sdgcorr/lib/datatypes"
	"github.com/kpaschen/sdgcorr/lib/settings"
	"github.com/kpaschen/sdgcorr/lib/validate"
)

// A Reporter receives the results of one run.
type Reporter interface {
	Initialize(runID string, config settings.SdgSettings)

	AddValidation(report validate.Report) error

	AddAnalysis(ds datatypes.AlignedDataset, result correlation.Result) error

	Flush() error
}

// NewReporters returns the console reporter plus the file reporter
// selected by config.ReportFormat.
func NewReporters(config settings.SdgSettings) ([]Reporter, error) {
	ret := []Reporter{NewConsoleReporter(nil)}
	switch config.ReportFormat {
	case settings.REPORT_NONE, "":
	case settings.REPORT_CSV:
		ret = append(ret, NewCsvReporter(config.ResultsDirectory))
	case settings.REPORT_PARQUET:
		ret = append(ret, NewParquetReporter(config.ResultsDirectory))
	default:
		return nil, fmt.Errorf("unsupported report format %s", config.ReportFormat)
	}
	return ret, nil
}

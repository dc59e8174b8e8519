package reporter

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/kpaschen/sdgcorr/lib/correlation"
	"github.com/kpaschen/sdgcorr/lib/datatypes"
	"github.com/kpaschen/sdgcorr/lib/settings"
	"github.com/kpaschen/sdgcorr/lib/validate"
	"github.com/parquet-go/parquet-go"
)

// AlignedRow is one country of the aligned dataset.
// The correlation results go into every row so that a single file describes
// the run.
type AlignedRow struct {
	Run     string  `parquet:"run,dict"`
	Country string  `parquet:"country,zstd"`
	ValueA  float64 `parquet:"valueA"`
	ValueB  float64 `parquet:"valueB"`
	SeriesA string  `parquet:"seriesA,dict"`
	SeriesB string  `parquet:"seriesB,dict"`

	Pearson   float64 `parquet:"pearson"`
	PearsonP  float64 `parquet:"pearsonP"`
	Spearman  float64 `parquet:"spearman"`
	SpearmanP float64 `parquet:"spearmanP"`
}

type ParquetReporter struct {
	filenameBase string
	runID        string
	rows         []AlignedRow
}

func NewParquetReporter(filenameBase string) *ParquetReporter {
	return &ParquetReporter{filenameBase: filenameBase}
}

func (r *ParquetReporter) Initialize(runID string, _ settings.SdgSettings) {
	r.runID = runID
	r.rows = nil
}

func (r *ParquetReporter) Filename() string {
	return filepath.Join(r.filenameBase, fmt.Sprintf("aligned_%s.pq", r.runID))
}

func (r *ParquetReporter) AddValidation(_ validate.Report) error {
	return nil
}

func (r *ParquetReporter) AddAnalysis(ds datatypes.AlignedDataset, result correlation.Result) error {
	if len(ds.ValuesA) != ds.Len() || len(ds.ValuesB) != ds.Len() {
		return fmt.Errorf("aligned dataset has %d countries but %d/%d values",
			ds.Len(), len(ds.ValuesA), len(ds.ValuesB))
	}
	r.rows = make([]AlignedRow, ds.Len())
	for i, country := range ds.CountriesA {
		r.rows[i] = AlignedRow{
			Run:       r.runID,
			Country:   country,
			ValueA:    ds.ValuesA[i],
			ValueB:    ds.ValuesB[i],
			SeriesA:   ds.CodeA,
			SeriesB:   ds.CodeB,
			Pearson:   result.Linear.Coefficient,
			PearsonP:  result.Linear.PValue,
			Spearman:  result.Monotonic.Coefficient,
			SpearmanP: result.Monotonic.PValue,
		}
	}
	return nil
}

// Flush writes the buffered rows. Nothing is written before AddAnalysis.
func (r *ParquetReporter) Flush() error {
	if r.rows == nil {
		return nil
	}
	file, err := os.OpenFile(r.Filename(), os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0640)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[AlignedRow](file)
	n, err := writer.Write(r.rows)
	if err != nil {
		return err
	}
	if err = writer.Close(); err != nil {
		return err
	}
	log.Printf("wrote %d aligned rows to %s\n", n, r.Filename())
	r.rows = nil
	return nil
}

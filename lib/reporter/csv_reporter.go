package reporter

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/kpaschen/sdgcorr/lib/correlation"
	"github.com/kpaschen/sdgcorr/lib/datatypes"
	"github.com/kpaschen/sdgcorr/lib/settings"
	"github.com/kpaschen/sdgcorr/lib/validate"
)

// CsvReporter writes the aligned dataset and the correlation results of a
// run into two csv files named after the run id.
type CsvReporter struct {
	filenameBase string
	runID        string
}

func NewCsvReporter(filenameBase string) *CsvReporter {
	return &CsvReporter{filenameBase: filenameBase}
}

func (c *CsvReporter) Initialize(runID string, _ settings.SdgSettings) {
	c.runID = runID
	log.Printf("csv reporter writing run %s to %s\n", runID, c.filenameBase)
}

func (c *CsvReporter) AlignedFile() string {
	return filepath.Join(c.filenameBase, fmt.Sprintf("aligned_%s.csv", c.runID))
}

func (c *CsvReporter) CorrelationFile() string {
	return filepath.Join(c.filenameBase, fmt.Sprintf("correlation_%s.csv", c.runID))
}

func (c *CsvReporter) AddValidation(_ validate.Report) error {
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (c *CsvReporter) AddAnalysis(ds datatypes.AlignedDataset, result correlation.Result) error {
	records := make([][]string, 0, ds.Len()+1)
	records = append(records, []string{"country", ds.CodeA, ds.CodeB})
	for i, country := range ds.CountriesA {
		records = append(records, []string{country, formatFloat(ds.ValuesA[i]), formatFloat(ds.ValuesB[i])})
	}
	if err := writeCsv(c.AlignedFile(), records); err != nil {
		return err
	}

	records = [][]string{{"method", "coefficient", "p_value", "n", "significance"}}
	for _, test := range []correlation.Test{result.Linear, result.Monotonic} {
		records = append(records, []string{test.Method, formatFloat(test.Coefficient),
			formatFloat(test.PValue), strconv.Itoa(test.N), string(test.Significance)})
	}
	return writeCsv(c.CorrelationFile(), records)
}

func writeCsv(path string, records [][]string) error {
	file, err := os.OpenFile(path, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0640)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err = writer.WriteAll(records); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func (c *CsvReporter) Flush() error {
	// This reporter does no internal buffering, so Flush is a noop.
	return nil
}

// Package extract reads the fixed-format UN SDG indicator export.
//
// The export wraps every field in double quotes and separates them with
// commas, so a line is split on the literal three-character delimiter `","`
// rather than with a general csv grammar.
package extract

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
)

const (
	FIELD_DELIMITER = `","`
	FIELD_COUNT     = 18

	seriesCodeField  = 3
	geoAreaNameField = 6
	timePeriodField  = 7
	valueField       = 8
)

// ErrShortRow marks a line that does not split into FIELD_COUNT fields,
// such as the blank separator lines in the export. Callers skip these.
var ErrShortRow = errors.New("row does not have the expected number of fields")

// ErrDataFormat means a qualifying row violated the fixed format assumption.
var ErrDataFormat = errors.New("data format violation")

// ErrNonFinite is the cause of a DataFormatError for NaN and Inf values,
// which strconv accepts but the export never legitimately contains.
var ErrNonFinite = errors.New("value is not finite")

type DataFormatError struct {
	Line       int
	SeriesCode string
	Country    string
	Value      string
	Err        error
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("line %d: value %q for series %s, country %q is not a usable number: %v",
		e.Line, e.Value, e.SeriesCode, e.Country, e.Err)
}

func (e *DataFormatError) Unwrap() []error {
	return []error{ErrDataFormat, e.Err}
}

// Record holds the fields of one export line that sdgcorr cares about.
// Value is left unparsed; only qualifying rows get converted.
type Record struct {
	SeriesCode  string
	GeoAreaName string
	TimePeriod  string
	Value       string
	Line        int
}

// ParseRecord splits one line of the export into a Record.
func ParseRecord(line string) (Record, error) {
	parts := strings.Split(strings.TrimSpace(line), FIELD_DELIMITER)
	if len(parts) != FIELD_COUNT {
		return Record{}, fmt.Errorf("%w: got %d, want %d", ErrShortRow, len(parts), FIELD_COUNT)
	}
	return Record{
		SeriesCode:  parts[seriesCodeField],
		GeoAreaName: parts[geoAreaNameField],
		TimePeriod:  parts[timePeriodField],
		Value:       parts[valueField],
	}, nil
}

// Records returns the rows of r after the header line, in order.
// Rows that fail the field count check are yielded with an error wrapping
// ErrShortRow and a Record carrying only the line number; the sequence keeps
// going after them. A read error is yielded once and ends the sequence.
func Records(r io.Reader) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		lineCount := 0
		for scanner.Scan() {
			lineCount++
			if lineCount == 1 {
				// header
				continue
			}
			rec, err := ParseRecord(scanner.Text())
			rec.Line = lineCount
			if err != nil {
				err = fmt.Errorf("line %d: %w", lineCount, err)
			}
			if !yield(rec, err) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield(Record{Line: lineCount}, fmt.Errorf("reading line %d: %w", lineCount+1, err))
		}
	}
}

// FormatRecord renders rec as an export line, leaving the unused fields blank.
func FormatRecord(rec Record) string {
	parts := make([]string, FIELD_COUNT)
	parts[seriesCodeField] = rec.SeriesCode
	parts[geoAreaNameField] = rec.GeoAreaName
	parts[timePeriodField] = rec.TimePeriod
	parts[valueField] = rec.Value
	return `"` + strings.Join(parts, FIELD_DELIMITER) + `"`
}

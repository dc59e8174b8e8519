package extract

import (
	"errors"
	"io"
	"log"
	"math"
	"strconv"

	"github.com/kpaschen/sdgcorr/lib/datatypes"
)

// Filter selects the rows of one indicator.
// An empty TimePeriod matches every period.
type Filter struct {
	Code       string
	TimePeriod string
}

func (f Filter) Matches(rec Record) bool {
	if rec.SeriesCode != f.Code {
		return false
	}
	return f.TimePeriod == "" || rec.TimePeriod == f.TimePeriod
}

// ParseValue converts the value field of a qualifying record.
// Only finite values are accepted.
func (f Filter) ParseValue(rec Record) (float64, error) {
	v, err := strconv.ParseFloat(rec.Value, 64)
	if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
		err = ErrNonFinite
	}
	if err != nil {
		return 0, &DataFormatError{
			Line:       rec.Line,
			SeriesCode: rec.SeriesCode,
			Country:    rec.GeoAreaName,
			Value:      rec.Value,
			Err:        err,
		}
	}
	return v, nil
}

// Extraction is the outcome of one pass over the export.
type Extraction struct {
	SeriesA *datatypes.Series
	SeriesB *datatypes.Series

	RowsRead    int
	RowsSkipped int
}

// Extract reads r and collects the rows matching a into SeriesA and the rows
// matching b into SeriesB. A row is offered to a first; only rows a rejects
// are tested against b.
// Short rows are skipped. A qualifying row with an unparseable value aborts
// the extraction with an error wrapping ErrDataFormat.
func Extract(r io.Reader, a Filter, b Filter) (*Extraction, error) {
	ex := &Extraction{
		SeriesA: datatypes.NewSeries(a.Code),
		SeriesB: datatypes.NewSeries(b.Code),
	}
	for rec, err := range Records(r) {
		if err != nil {
			if errors.Is(err, ErrShortRow) {
				ex.RowsSkipped++
				continue
			}
			return ex, err
		}
		ex.RowsRead++
		var target *datatypes.Series
		var filter Filter
		if a.Matches(rec) {
			target, filter = ex.SeriesA, a
		} else if b.Matches(rec) {
			target, filter = ex.SeriesB, b
		} else {
			continue
		}
		v, err := filter.ParseValue(rec)
		if err != nil {
			return ex, err
		}
		target.Add(rec.GeoAreaName, v)
	}
	log.Printf("extracted %d rows for %s and %d rows for %s from %d records (%d short rows skipped)\n",
		ex.SeriesA.Len(), a.Code, ex.SeriesB.Len(), b.Code, ex.RowsRead, ex.RowsSkipped)
	return ex, nil
}

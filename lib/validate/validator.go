// Package validate checks an aligned dataset against the export it came from.
// Every check is advisory: failures are reported, never returned as errors.
package validate

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/kpaschen/sdgcorr/lib/datatypes"
	"github.com/kpaschen/sdgcorr/lib/extract"
)

type Report struct {
	// Country names for A and B are identical, element by element.
	NamesMatch bool
	// The value sequences for A and B have the same length.
	LengthsMatch bool

	// Qualifying source rows that were compared against the aligned dataset.
	Checked int
	// Compared rows whose source value differs from the aligned value.
	Mismatches int
	// Compared rows whose source value could not be parsed; also counted as mismatches.
	ParseErrors int
	// Short rows skipped during the rescan.
	SkippedRows int
	// Set when the rescan could not read the whole source.
	ReadErr error
}

func (r Report) OK() bool {
	return r.NamesMatch && r.LengthsMatch && r.Mismatches == 0 && r.ReadErr == nil
}

// Print writes the human-readable sanity check to w.
func (r Report) Print(w io.Writer) {
	fmt.Fprintln(w, "Sanity Check:")
	if r.NamesMatch {
		fmt.Fprintln(w, "Countries in both lists match")
	} else {
		fmt.Fprintln(w, "Warning: Countries in the lists don't match!")
	}
	if r.LengthsMatch {
		fmt.Fprintln(w, "Both lists have the same length")
	} else {
		fmt.Fprintln(w, "Warning: the lists don't have the same length!")
	}
	fmt.Fprintf(w, "Mismatches found between dataset and list values: %d (of %d rows checked)\n",
		r.Mismatches, r.Checked)
	if r.ParseErrors > 0 {
		fmt.Fprintf(w, "Warning: %d qualifying rows had unparseable values\n", r.ParseErrors)
	}
	if r.ReadErr != nil {
		fmt.Fprintf(w, "Warning: the source could not be read to the end: %v\n", r.ReadErr)
	}
}

// Validate runs the three alignment checks. The third one rescans src from
// its current position with the same record parser the extractor uses and
// compares every qualifying row of a country in ds with the aligned value.
// tolerance 0 demands exact equality.
//
// ds is only read.
func Validate(src io.Reader, a extract.Filter, b extract.Filter,
	ds datatypes.AlignedDataset, tolerance float64) Report {

	report := Report{
		NamesMatch:   slices.Equal(ds.CountriesA, ds.CountriesB),
		LengthsMatch: len(ds.ValuesA) == len(ds.ValuesB),
	}

	indexA := firstIndex(ds.CountriesA)
	indexB := firstIndex(ds.CountriesB)

	for rec, err := range extract.Records(src) {
		if err != nil {
			if errors.Is(err, extract.ErrShortRow) {
				report.SkippedRows++
				continue
			}
			report.ReadErr = err
			break
		}
		if a.Matches(rec) {
			if i, ok := indexA[rec.GeoAreaName]; ok {
				report.compare(a, rec, ds.ValuesA, i, tolerance)
			}
		}
		if b.Matches(rec) {
			if i, ok := indexB[rec.GeoAreaName]; ok {
				report.compare(b, rec, ds.ValuesB, i, tolerance)
			}
		}
	}
	return report
}

func (r *Report) compare(f extract.Filter, rec extract.Record, values []float64, i int, tolerance float64) {
	r.Checked++
	sourceValue, err := f.ParseValue(rec)
	if err != nil {
		r.ParseErrors++
		r.Mismatches++
		return
	}
	// A broken alignment can leave fewer values than names.
	if i >= len(values) {
		r.Mismatches++
		return
	}
	if !equalWithin(values[i], sourceValue, tolerance) {
		r.Mismatches++
	}
}

func equalWithin(x float64, y float64, tolerance float64) bool {
	if tolerance == 0 {
		return x == y
	}
	return math.Abs(x-y) <= tolerance
}

func firstIndex(names []string) map[string]int {
	ret := make(map[string]int, len(names))
	for i, n := range names {
		if _, ok := ret[n]; !ok {
			ret[n] = i
		}
	}
	return ret
}

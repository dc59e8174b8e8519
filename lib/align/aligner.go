// Package align pairs two indicator series by country name.
package align

import (
	"log"
	"slices"
	"strings"

	"github.com/kpaschen/sdgcorr/lib/datatypes"
)

// Align sorts both series by country name, keeps the countries present in
// both, and returns them as an AlignedDataset.
//
// Sorting is stable and byte-wise, so duplicate names keep their source order.
// When a country occurs more than once in a series the first occurrence wins
// and the later ones are dropped (and counted in DroppedDuplicates).
//
// Align does not check its own output; see the validate package.
func Align(a datatypes.Series, b datatypes.Series) datatypes.AlignedDataset {
	sortedA := sortByCountry(a.Observations)
	sortedB := sortByCountry(b.Observations)

	inA := countrySet(sortedA)
	inB := countrySet(sortedB)

	keptA, droppedA := keepShared(sortedA, inB)
	keptB, droppedB := keepShared(sortedB, inA)

	ds := datatypes.AlignedDataset{
		CodeA:             a.Code,
		CountriesA:        make([]string, len(keptA)),
		ValuesA:           make([]float64, len(keptA)),
		CodeB:             b.Code,
		CountriesB:        make([]string, len(keptB)),
		ValuesB:           make([]float64, len(keptB)),
		DroppedDuplicates: droppedA + droppedB,
	}
	for i, o := range keptA {
		ds.CountriesA[i] = o.Country
		ds.ValuesA[i] = o.Value
	}
	for i, o := range keptB {
		ds.CountriesB[i] = o.Country
		ds.ValuesB[i] = o.Value
	}
	log.Printf("aligned %d countries (%d in %s, %d in %s, %d duplicate rows dropped)\n",
		ds.Len(), a.Len(), a.Code, b.Len(), b.Code, ds.DroppedDuplicates)
	return ds
}

// sortByCountry returns a sorted copy; the input keeps its order.
func sortByCountry(obs []datatypes.Observation) []datatypes.Observation {
	sorted := slices.Clone(obs)
	slices.SortStableFunc(sorted, func(x, y datatypes.Observation) int {
		return strings.Compare(x.Country, y.Country)
	})
	return sorted
}

func countrySet(obs []datatypes.Observation) map[string]struct{} {
	ret := make(map[string]struct{}, len(obs))
	for _, o := range obs {
		ret[o.Country] = struct{}{}
	}
	return ret
}

func keepShared(sorted []datatypes.Observation, other map[string]struct{}) ([]datatypes.Observation, int) {
	ret := make([]datatypes.Observation, 0, len(sorted))
	seen := make(map[string]struct{}, len(sorted))
	dropped := 0
	for _, o := range sorted {
		if _, ok := other[o.Country]; !ok {
			continue
		}
		if _, dup := seen[o.Country]; dup {
			dropped++
			continue
		}
		seen[o.Country] = struct{}{}
		ret = append(ret, o)
	}
	return ret, dropped
}

package datatypes

// Observation is one (country, value) pair taken from a qualifying record.
type Observation struct {
	Country string
	Value   float64
}

// Series holds the observations for one indicator in source order.
// Country names are neither unique nor sorted.
type Series struct {
	Code         string
	Observations []Observation
}

func NewSeries(code string) *Series {
	return &Series{Code: code, Observations: make([]Observation, 0, 256)}
}

func (s *Series) Add(country string, value float64) {
	s.Observations = append(s.Observations, Observation{Country: country, Value: value})
}

func (s Series) Len() int {
	return len(s.Observations)
}

// AlignedDataset pairs two series by country.
// invariant: CountriesA[i] == CountriesB[i] for all i, in ascending order.
// Treat it as read-only once the aligner has produced it.
type AlignedDataset struct {
	CodeA      string
	CountriesA []string
	ValuesA    []float64

	CodeB      string
	CountriesB []string
	ValuesB    []float64

	// Rows dropped because their country was already present in the same series.
	DroppedDuplicates int
}

func (d AlignedDataset) Len() int {
	return len(d.CountriesA)
}

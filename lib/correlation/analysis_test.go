package correlation

import (
	"errors"
	"math"
	"testing"

	"github.com/kpaschen/sdgcorr/lib/datatypes"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		p        float64
		expected Significance
	}{
		{0, SIGNIFICANT_001},
		{0.001, SIGNIFICANT_001},
		{0.01, SIGNIFICANT_001},
		{0.0100001, SIGNIFICANT_005},
		{0.05, SIGNIFICANT_005},
		{0.0500001, SIGNIFICANT_010},
		{0.1, SIGNIFICANT_010},
		{0.1000001, NOT_SIGNIFICANT},
		{0.5, NOT_SIGNIFICANT},
		{1, NOT_SIGNIFICANT},
		{math.NaN(), UNDEFINED},
	}
	for _, c := range cases {
		assert.Equalf(t, c.expected, Classify(c.p), "p = %v", c.p)
	}
}

func TestSignificanceLevel(t *testing.T) {
	assert.Equal(t, 0.01, SIGNIFICANT_001.Level())
	assert.Equal(t, 0.1, SIGNIFICANT_010.Level())
	assert.True(t, math.IsNaN(NOT_SIGNIFICANT.Level()))
}

func datasetOf(a []float64, b []float64) datatypes.AlignedDataset {
	names := make([]string, len(a))
	for i := range names {
		names[i] = string(rune('A' + i))
	}
	return datatypes.AlignedDataset{CountriesA: names, ValuesA: a, CountriesB: names, ValuesB: b}
}

func TestAnalyze(t *testing.T) {
	a := []float64{5.8, 12.1, 20.4, 33.0, 41.7, 48.2, 55.9, 61.2}
	b := []float64{40, 55, 50, 70, 85, 80, 95, 100}
	result := Analyze(datasetOf(a, b))

	assert.True(t, result.Linear.Defined())
	assert.True(t, result.Monotonic.Defined())
	assert.Equal(t, 8, result.Linear.N)
	assert.Equal(t, "linear", result.Linear.Method)
	assert.Equal(t, "monotonic", result.Monotonic.Method)
	assert.Greater(t, result.Linear.Coefficient, 0.9)
	assert.Less(t, result.Linear.PValue, 0.01)
	assert.Equal(t, SIGNIFICANT_001, result.Linear.Significance)
	// ranks: b has one inversion at positions 2/3 and 5/6
	assert.InDelta(t, 0.952381, result.Monotonic.Coefficient, 1e-5)
	assert.Equal(t, SIGNIFICANT_001, result.Monotonic.Significance)
}

func TestAnalyze_degenerate(t *testing.T) {
	for _, ds := range []datatypes.AlignedDataset{
		{},
		datasetOf([]float64{1}, []float64{2}),
	} {
		result := Analyze(ds)
		for _, test := range []Test{result.Linear, result.Monotonic} {
			assert.False(t, test.Defined())
			assert.True(t, errors.Is(test.Err, ErrInsufficientData))
			assert.True(t, math.IsNaN(test.Coefficient))
			assert.True(t, math.IsNaN(test.PValue))
			assert.Equal(t, UNDEFINED, test.Significance)
		}
	}
}

func TestAnalyze_constantSequence(t *testing.T) {
	result := Analyze(datasetOf([]float64{50, 50, 50}, []float64{1, 2, 3}))
	assert.True(t, errors.Is(result.Linear.Err, ErrConstantInput))
	assert.True(t, errors.Is(result.Monotonic.Err, ErrConstantInput))
	assert.Equal(t, UNDEFINED, result.Linear.Significance)
}

func TestAnalyze_twoPairs(t *testing.T) {
	result := Analyze(datasetOf([]float64{1, 2}, []float64{3, 7}))
	assert.InDelta(t, 1.0, result.Linear.Coefficient, 1e-12)
	assert.Equal(t, 1.0, result.Linear.PValue)
	assert.Equal(t, NOT_SIGNIFICANT, result.Linear.Significance)
}

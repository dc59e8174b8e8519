package correlation

import (
	"math"

	"github.com/kpaschen/sdgcorr/lib/datatypes"
)

type Significance string

const (
	SIGNIFICANT_001 Significance = "significant at 0.01"
	SIGNIFICANT_005 Significance = "significant at 0.05"
	SIGNIFICANT_010 Significance = "significant at 0.1"
	NOT_SIGNIFICANT Significance = "not statistically significant"
	UNDEFINED       Significance = "undefined"
)

// Classify maps a p-value onto its significance band. The thresholds are
// inclusive and checked from the strictest one up.
func Classify(p float64) Significance {
	switch {
	case math.IsNaN(p):
		return UNDEFINED
	case p <= 0.01:
		return SIGNIFICANT_001
	case p <= 0.05:
		return SIGNIFICANT_005
	case p <= 0.1:
		return SIGNIFICANT_010
	default:
		return NOT_SIGNIFICANT
	}
}

// Level is the significance level of the band, or NaN.
func (s Significance) Level() float64 {
	switch s {
	case SIGNIFICANT_001:
		return 0.01
	case SIGNIFICANT_005:
		return 0.05
	case SIGNIFICANT_010:
		return 0.1
	}
	return math.NaN()
}

// Test is one correlation coefficient with its significance.
// Err is set when the coefficient is undefined; Coefficient and PValue are
// NaN then.
type Test struct {
	Method       string
	Coefficient  float64
	PValue       float64
	N            int
	Significance Significance
	Err          error
}

func (t Test) Defined() bool {
	return t.Err == nil
}

func newTest(method string, r float64, err error, n int) Test {
	if err != nil {
		return Test{Method: method, Coefficient: math.NaN(), PValue: math.NaN(), N: n,
			Significance: UNDEFINED, Err: err}
	}
	p := PValue(r, n)
	return Test{Method: method, Coefficient: r, PValue: p, N: n, Significance: Classify(p)}
}

func PearsonTest(x []float64, y []float64) Test {
	r, err := PearsonCorrelation(x, y)
	return newTest("linear", r, err, len(x))
}

func SpearmanTest(x []float64, y []float64) Test {
	r, err := SpearmanCorrelation(x, y)
	return newTest("monotonic", r, err, len(x))
}

type Result struct {
	Linear    Test
	Monotonic Test
}

// Analyze computes the linear (Pearson) and monotonic (Spearman) correlation
// of the two value sequences of ds. It never fails; undefined statistics are
// reported through Test.Err.
func Analyze(ds datatypes.AlignedDataset) Result {
	return Result{
		Linear:    PearsonTest(ds.ValuesA, ds.ValuesB),
		Monotonic: SpearmanTest(ds.ValuesA, ds.ValuesB),
	}
}

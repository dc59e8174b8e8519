package correlation

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	ErrInsufficientData = errors.New("correlation needs at least two paired observations")
	ErrConstantInput    = errors.New("correlation is undefined for a constant sequence")
)

func checkInput(x []float64, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("correlation needs arguments of the same length (%d vs. %d)", len(x), len(y))
	}
	if len(x) < 2 {
		return ErrInsufficientData
	}
	if isConstant(x) || isConstant(y) {
		return ErrConstantInput
	}
	return nil
}

func isConstant(x []float64) bool {
	return floats.Max(x) == floats.Min(x)
}

// PearsonCorrelation is the linear correlation coefficient of x and y.
// It returns NaN and an error when the coefficient is undefined.
func PearsonCorrelation(x []float64, y []float64) (float64, error) {
	if err := checkInput(x, y); err != nil {
		return math.NaN(), err
	}
	pairs := mat.NewDense(len(x), 2, nil)
	pairs.SetCol(0, x)
	pairs.SetCol(1, y)
	var corr mat.SymDense
	stat.CorrelationMatrix(&corr, pairs, nil)
	return clamp(corr.At(0, 1)), nil
}

// SpearmanCorrelation is the Pearson correlation of the ranks of x and y.
func SpearmanCorrelation(x []float64, y []float64) (float64, error) {
	if err := checkInput(x, y); err != nil {
		return math.NaN(), err
	}
	return PearsonCorrelation(Rank(x), Rank(y))
}

// Rank returns the 1-based rank of every element of x. Tied values share
// the mean of the ranks they span.
func Rank(x []float64) []float64 {
	n := len(x)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return x[order[i]] < x[order[j]] })

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && x[order[j+1]] == x[order[i]] {
			j++
		}
		mean := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[order[k]] = mean
		}
		i = j + 1
	}
	return ranks
}

// PValue is the two-sided p-value of correlation coefficient r over n pairs,
// from Student's t distribution with n-2 degrees of freedom.
// With only two pairs every line fits, so the p-value is 1.
func PValue(r float64, n int) float64 {
	if math.IsNaN(r) || n < 2 {
		return math.NaN()
	}
	if n == 2 {
		return 1
	}
	if math.Abs(r) >= 1 {
		return 0
	}
	df := float64(n - 2)
	t := r * math.Sqrt(df/(1-r*r))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return math.Min(1, 2*dist.Survival(math.Abs(t)))
}

// Rounding can push a perfect correlation just past ±1.
func clamp(r float64) float64 {
	return math.Max(-1, math.Min(1, r))
}

package correlation

import (
	"errors"
	"math"
	"testing"
)

type corrPair struct {
	x                   []float64
	y                   []float64
	expectedCorrelation float64
	expectError         bool
}

func TestPearsonCorrelation(t *testing.T) {
	pairs := []corrPair{
		{
			x:                   []float64{0.1, 0.2, 0.3},
			y:                   []float64{0.1, 0.2, 0.3},
			expectedCorrelation: 1.0,
			expectError:         false,
		},
		{
			x:                   []float64{0.3, 0.2, 0.1},
			y:                   []float64{0.1, 0.2, 0.3},
			expectedCorrelation: -1.0,
			expectError:         false,
		},
		{
			x:                   []float64{1, 2, 3, 4, 5},
			y:                   []float64{2, 4, 5, 4, 5},
			expectedCorrelation: 0.7745966692,
			expectError:         false,
		},
		{
			x:           []float64{0.3, 0.2},
			y:           []float64{0.1, 0.2, 0.3},
			expectError: true,
		},
		{
			x:           []float64{0.3, 0.3, 0.3},
			y:           []float64{0.1, 0.2, 0.3},
			expectError: true,
		},
		{
			x:           []float64{0.3},
			y:           []float64{0.1},
			expectError: true,
		},
	}
	for _, p := range pairs {
		actualCorrelation, err := PearsonCorrelation(p.x, p.y)
		if err != nil && !p.expectError {
			t.Errorf("unexpected error in correlation: %v", err)
			continue
		}
		if err == nil && p.expectError {
			t.Errorf("expected error but got correlation result %f", actualCorrelation)
			continue
		}
		if p.expectError {
			if !math.IsNaN(actualCorrelation) {
				t.Errorf("expected NaN alongside the error but got %f", actualCorrelation)
			}
			continue
		}
		if math.Abs(actualCorrelation-p.expectedCorrelation) > 0.0001 {
			t.Errorf("unexpected correlation result %f, expected %f", actualCorrelation, p.expectedCorrelation)
		}
	}
}

func TestSpearmanCorrelation(t *testing.T) {
	pairs := []corrPair{
		{
			// monotonic but not linear
			x:                   []float64{1, 2, 3, 4, 5},
			y:                   []float64{1, 4, 9, 16, 100},
			expectedCorrelation: 1.0,
		},
		{
			x:                   []float64{1, 2, 3, 4, 5},
			y:                   []float64{5, 6, 7, 8, 7},
			expectedCorrelation: 0.8207826817,
		},
		{
			x:                   []float64{10, 20, 30},
			y:                   []float64{30, 20, 10},
			expectedCorrelation: -1.0,
		},
		{
			x:           []float64{1, 2, 3},
			y:           []float64{4, 4, 4},
			expectError: true,
		},
	}
	for _, p := range pairs {
		actualCorrelation, err := SpearmanCorrelation(p.x, p.y)
		if err != nil && !p.expectError {
			t.Errorf("unexpected error in correlation: %v", err)
			continue
		}
		if err == nil && p.expectError {
			t.Errorf("expected error but got correlation result %f", actualCorrelation)
			continue
		}
		if !p.expectError && math.Abs(actualCorrelation-p.expectedCorrelation) > 0.0001 {
			t.Errorf("unexpected correlation result %f, expected %f", actualCorrelation, p.expectedCorrelation)
		}
	}
}

func TestRank(t *testing.T) {
	ranks := Rank([]float64{10, 30, 20, 20, 5})
	expected := []float64{2, 5, 3.5, 3.5, 1}
	for i := range expected {
		if ranks[i] != expected[i] {
			t.Errorf("expected ranks %v but got %v", expected, ranks)
			break
		}
	}
	if len(Rank(nil)) != 0 {
		t.Errorf("expected no ranks for empty input")
	}
}

func TestPValue(t *testing.T) {
	// r = 0.7746 over 5 pairs: t = 2.1213 with 3 degrees of freedom.
	p := PValue(0.7745966692, 5)
	if math.Abs(p-0.124) > 0.002 {
		t.Errorf("expected p close to 0.124 but got %f", p)
	}
	if PValue(0, 10) != 1 {
		t.Errorf("expected p 1 for zero correlation but got %f", PValue(0, 10))
	}
	if PValue(1, 10) != 0 || PValue(-1, 10) != 0 {
		t.Errorf("expected p 0 for perfect correlation")
	}
	if PValue(0.5, 2) != 1 {
		t.Errorf("expected p 1 for two pairs")
	}
	if !math.IsNaN(PValue(math.NaN(), 10)) || !math.IsNaN(PValue(0.5, 1)) {
		t.Errorf("expected NaN p-value for undefined input")
	}
	// More data makes the same coefficient more significant.
	if PValue(0.5, 50) >= PValue(0.5, 10) {
		t.Errorf("expected p-value to shrink with sample size")
	}
}

func TestCheckInputErrors(t *testing.T) {
	if !errors.Is(checkInput([]float64{1}, []float64{2}), ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData")
	}
	if !errors.Is(checkInput(nil, nil), ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData for empty input")
	}
	if !errors.Is(checkInput([]float64{1, 2}, []float64{3, 3}), ErrConstantInput) {
		t.Errorf("expected ErrConstantInput")
	}
}

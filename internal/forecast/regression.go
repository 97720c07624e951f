package forecast

import (
	"errors"
	"fmt"
)

// Fit is a single-variable ordinary least squares line y = Intercept + Slope*x.
type Fit struct {
	Slope     float64
	Intercept float64
}

// DegenerateInputError reports regression input whose independent variable has
// zero variance. Extrapolating such a fit would divide by zero, so the whole
// forecast fails instead of producing garbage.
type DegenerateInputError struct {
	// N is the number of samples in the rejected input.
	N int
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("degenerate regression input: zero variance in independent variable across %d samples", e.N)
}

// FitOLS computes the least squares line over the given (x, y) pairs.
// It returns a DegenerateInputError when all x values are identical.
func FitOLS(xs, ys []float64) (Fit, error) {
	if len(xs) == 0 {
		return Fit{}, errors.New("regression input is empty")
	}
	if len(xs) != len(ys) {
		return Fit{}, fmt.Errorf("regression input length mismatch: %d x values, %d y values", len(xs), len(ys))
	}

	var meanX, meanY float64
	for i := range xs {
		meanX += xs[i]
		meanY += ys[i]
	}
	meanX /= float64(len(xs))
	meanY /= float64(len(ys))

	var num, den float64
	for i := range xs {
		num += (xs[i] - meanX) * (ys[i] - meanY)
		den += (xs[i] - meanX) * (xs[i] - meanX)
	}
	if den == 0 {
		return Fit{}, &DegenerateInputError{N: len(xs)}
	}

	slope := num / den
	return Fit{Slope: slope, Intercept: meanY - slope*meanX}, nil
}

// At evaluates the fit at x, truncating toward zero. Predictions are whole
// counts (fires, acres), so the fractional part is dropped rather than rounded.
func (f Fit) At(x float64) int {
	return int(f.Intercept + f.Slope*x)
}

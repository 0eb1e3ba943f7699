// Package stats derives confidence-interval critical values and bounds for
// aligned measurement curves.
package stats

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	ErrDegenerateSampleSize = errors.New("need at least 2 samples for a confidence interval")
	ErrInvalidConfidence    = errors.New("confidence level must be in (0, 1)")
)

// NormalApproxSize is the sample count at which the Student's t critical
// value is replaced by the standard normal one.
const NormalApproxSize = 30

// CriticalValue returns the two-sided critical value for a confidence
// interval over n samples. Below NormalApproxSize samples it uses the
// Student's t distribution with n-1 degrees of freedom, otherwise the
// standard normal. n must be at least 2 since t with zero degrees of
// freedom has no finite quantiles.
func CriticalValue(n int, confidence float64) (float64, error) {
	if n < 2 {
		return 0, fmt.Errorf("got %d samples, %w", n, ErrDegenerateSampleSize)
	}
	if confidence <= 0.0 || confidence >= 1.0 {
		return 0, fmt.Errorf("got %f, %w", confidence, ErrInvalidConfidence)
	}

	p := 1.0 - (1.0-confidence)/2.0
	if n < NormalApproxSize {
		t := distuv.StudentsT{
			Mu:    0,
			Sigma: 1,
			Nu:    float64(n - 1),
		}
		return t.Quantile(p), nil
	}
	return distuv.UnitNormal.Quantile(p), nil
}

// ConfidenceBounds builds the lower and upper interval curves
// mean -/+ crit*sem. NaN positions in either input stay NaN in both bounds.
func ConfidenceBounds(mean, sem []float64, crit float64) (lower, upper []float64) {
	lower = make([]float64, len(mean))
	upper = make([]float64, len(mean))
	copy(lower, mean)
	copy(upper, mean)

	floats.AddScaled(lower, -crit, sem)
	floats.AddScaled(upper, crit, sem)
	return lower, upper
}

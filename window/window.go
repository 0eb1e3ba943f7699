// Package window extracts fixed-length slices of a series around resolved
// reference indexes and aggregates them into mean and standard-error curves.
package window

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

var (
	ErrEmptyStack     = errors.New("no windows in stack")
	ErrLenMismatch    = errors.New("windows must have equal lengths")
	ErrNegativeBounds = errors.New("window bounds must be non-negative")
)

// Extract slices a window of exactly before+after samples around idx. The
// slice covers [idx-before, idx+after) clamped to the series bounds; any
// deficit is padded with NaN on the right. A window clipped at the series
// start is therefore shorter on the left and is not re-centered.
func Extract(series []float64, idx, before, after int) []float64 {
	total := before + after
	w := make([]float64, 0, total)

	start := max(0, idx-before)
	end := min(len(series), idx+after)
	if start < end {
		w = append(w, series[start:end]...)
	}
	for len(w) < total {
		w = append(w, math.NaN())
	}
	return w
}

// Stack is a collection of equal-length windows, one per reference point.
type Stack [][]float64

// NewStack validates that the given windows form a well-formed stack.
func NewStack(windows ...[]float64) (Stack, error) {
	if len(windows) == 0 {
		return nil, ErrEmptyStack
	}
	length := len(windows[0])
	for _, w := range windows[1:] {
		if len(w) != length {
			return nil, ErrLenMismatch
		}
	}
	return Stack(windows), nil
}

// Len returns the number of windows in the stack.
func (s Stack) Len() int {
	return len(s)
}

// WindowLen returns the common window length.
func (s Stack) WindowLen() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// MeanSEM computes the per-position mean and standard error of the mean
// across the stack. NaN samples are excluded; a position where every window
// is NaN yields NaN. The standard error uses the population standard
// deviation divided by the square root of the total window count, so
// positions thinned by boundary padding still divide by the full count.
func (s Stack) MeanSEM() (mean, sem []float64) {
	length := s.WindowLen()
	mean = make([]float64, length)
	sem = make([]float64, length)

	sqrtN := math.Sqrt(float64(len(s)))
	values := make([]float64, 0, len(s))
	for p := 0; p < length; p++ {
		values = values[:0]
		for _, w := range s {
			if math.IsNaN(w[p]) {
				continue
			}
			values = append(values, w[p])
		}
		if len(values) == 0 {
			mean[p] = math.NaN()
			sem[p] = math.NaN()
			continue
		}
		mean[p] = stat.Mean(values, nil)
		sem[p] = stat.PopStdDev(values, nil) / sqrtN
	}
	return mean, sem
}

// Package timedataset holds tabular experiment recordings sharing a single
// time axis, such as the CSV exports produced by a freezing-cell logger.
package timedataset

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrNoSamples          = errors.New("no samples in time axis")
	ErrNoColumns          = errors.New("no data columns")
	ErrDatasetLenMismatch = errors.New("column has a different length than time axis")
	ErrNonMonotonic       = errors.New("time axis is not monotonically non-decreasing")
	ErrUnknownColumn      = errors.New("unknown column")
)

// TimeDataset represents a set of named measurement columns recorded against
// one shared time axis. Every column must be of the same length as the axis.
type TimeDataset struct {
	T       TimeSlice
	Columns map[string][]float64
}

// NewTimeDataset returns an instance of a TimeDataset given a time axis and
// a set of named columns. The axis must be non-empty and non-decreasing;
// repeated timestamps are allowed since loggers may emit duplicate ticks.
func NewTimeDataset(t []float64, columns map[string][]float64) (*TimeDataset, error) {
	if len(t) == 0 {
		return nil, ErrNoSamples
	}
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}

	for i := 1; i < len(t); i++ {
		if t[i] < t[i-1] {
			return nil, fmt.Errorf("time axis decreases at %d, %w", i, ErrNonMonotonic)
		}
	}

	cols := make(map[string][]float64, len(columns))
	for name, col := range columns {
		if len(col) != len(t) {
			return nil, fmt.Errorf(
				"column %q has length of %d, but time axis has a length of %d, %w",
				name, len(col), len(t), ErrDatasetLenMismatch,
			)
		}
		colCopy := make([]float64, len(col))
		copy(colCopy, col)
		cols[name] = colCopy
	}

	tSeries := make(TimeSlice, len(t))
	copy(tSeries, t)

	td := &TimeDataset{
		T:       tSeries,
		Columns: cols,
	}
	return td, nil
}

// Column returns the samples recorded under the given column name.
func (td *TimeDataset) Column(name string) ([]float64, error) {
	col, exists := td.Columns[name]
	if !exists {
		return nil, fmt.Errorf("column %q, %w", name, ErrUnknownColumn)
	}
	return col, nil
}

// ColumnNames returns all column names in lexical order.
func (td *TimeDataset) ColumnNames() []string {
	names := make([]string, 0, len(td.Columns))
	for name := range td.Columns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of samples along the time axis.
func (td *TimeDataset) Len() int {
	return len(td.T)
}

func (td *TimeDataset) Copy() *TimeDataset {
	tSeries := make(TimeSlice, len(td.T))
	copy(tSeries, td.T)

	cols := make(map[string][]float64, len(td.Columns))
	for name, col := range td.Columns {
		colCopy := make([]float64, len(col))
		copy(colCopy, col)
		cols[name] = colCopy
	}
	return &TimeDataset{
		T:       tSeries,
		Columns: cols,
	}
}

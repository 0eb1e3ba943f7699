// Package nucalign aligns repeated freezing-run measurements around
// nucleation timestamps and derives mean curves with confidence bands
// across the aligned repetitions.
package nucalign

import (
	"errors"
	"fmt"

	"github.com/aouyang1/go-nucalign/stats"
	"github.com/aouyang1/go-nucalign/timedataset"
	"github.com/aouyang1/go-nucalign/window"
)

var (
	ErrEmptyDataset           = errors.New("no dataset or uninitialized")
	ErrNoSeries               = errors.New("no series selected")
	ErrNoReferencePoints      = errors.New("no reference points")
	ErrTooManyReferencePoints = errors.New("too many reference points")
	ErrZeroWindow             = errors.New("before+after must be greater than zero")
	ErrNegativeWindowBound    = errors.New("window bounds must be non-negative")
)

// DefaultSeries maps the display names of the standard freezing-cell
// recording to their logger column names.
func DefaultSeries() map[string]string {
	return map[string]string{
		"Corrected Temp":  "fTemperatureCorrected",
		"Cylinder Temp":   "fCylinderTemperatureActual",
		"Gas Temp":        "fGasTemperatureActual",
		"Inlet Flow":      "fInlet",
		"Extraction Flow": "fExtraction",
	}
}

// Aligner extracts fixed windows around nucleation points and aggregates
// them into mean, SEM, and confidence-interval curves per series.
type Aligner struct {
	opt *Options
}

// New creates a new instance of an Aligner using the provided options. If no
// options are provided a default is used.
func New(opt *Options) (*Aligner, error) {
	if opt == nil {
		opt = NewDefaultOptions()
	}
	if opt.Before < 0 || opt.After < 0 {
		return nil, ErrNegativeWindowBound
	}
	if opt.Before+opt.After == 0 {
		return nil, ErrZeroWindow
	}
	return &Aligner{opt: opt}, nil
}

// Run aligns every requested series around the given reference times. The
// series argument maps display names to dataset column names. Each reference
// time resolves to its nearest index on the dataset time axis; one window is
// extracted per reference point and the stack is reduced to mean, SEM, and
// confidence bounds. Identical inputs always produce identical results.
func (a *Aligner) Run(td *timedataset.TimeDataset, series map[string]string, refs []float64) (*Results, error) {
	if td == nil || td.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	if len(series) == 0 {
		return nil, ErrNoSeries
	}
	if len(refs) == 0 {
		return nil, ErrNoReferencePoints
	}
	if a.opt.MaxReferencePoints > 0 && len(refs) > a.opt.MaxReferencePoints {
		return nil, fmt.Errorf(
			"got %d reference points with a maximum of %d, %w",
			len(refs), a.opt.MaxReferencePoints, ErrTooManyReferencePoints,
		)
	}

	crit, err := stats.CriticalValue(len(refs), a.opt.ConfidenceLevel)
	if err != nil {
		return nil, fmt.Errorf("unable to compute critical value, %w", err)
	}

	idxs := make([]int, 0, len(refs))
	for _, ref := range refs {
		idxs = append(idxs, td.T.NearestIndex(ref))
	}

	refTimes := make([]float64, len(refs))
	copy(refTimes, refs)

	res := &Results{
		Before:          a.opt.Before,
		After:           a.opt.After,
		ConfidenceLevel: a.opt.ConfidenceLevel,
		CriticalValue:   crit,
		ReferenceTimes:  refTimes,
		Series:          make(map[string]*SeriesResult, len(series)),
		Failed:          make(map[string]error),
	}

	for name, col := range series {
		sr, err := a.alignSeries(td, col, idxs, crit)
		if err != nil {
			res.Failed[name] = fmt.Errorf("unable to align series %q, %w", name, err)
			continue
		}
		res.Series[name] = sr
	}
	return res, nil
}

func (a *Aligner) alignSeries(td *timedataset.TimeDataset, col string, idxs []int, crit float64) (*SeriesResult, error) {
	values, err := td.Column(col)
	if err != nil {
		return nil, err
	}

	windows := make([][]float64, 0, len(idxs))
	for _, idx := range idxs {
		windows = append(windows, window.Extract(values, idx, a.opt.Before, a.opt.After))
	}

	stack, err := window.NewStack(windows...)
	if err != nil {
		return nil, err
	}

	mean, sem := stack.MeanSEM()
	lower, upper := stats.ConfidenceBounds(mean, sem, crit)

	return &SeriesResult{
		Column:  col,
		Windows: windows,
		Mean:    mean,
		SEM:     sem,
		Lower:   lower,
		Upper:   upper,
	}, nil
}

package timedataset

import (
	"math"

	"github.com/montanaflynn/stats"
)

// ColumnSummary holds descriptive statistics for a single data column,
// computed over its finite samples only.
type ColumnSummary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Describe computes a summary per data column. Columns without any finite
// samples report a zero count and NaN statistics.
func (td *TimeDataset) Describe() map[string]ColumnSummary {
	out := make(map[string]ColumnSummary, len(td.Columns))
	for name, col := range td.Columns {
		finite := make([]float64, 0, len(col))
		for _, v := range col {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			finite = append(finite, v)
		}

		summary := ColumnSummary{
			Count:  len(finite),
			Mean:   math.NaN(),
			Median: math.NaN(),
			StdDev: math.NaN(),
			Min:    math.NaN(),
			Max:    math.NaN(),
		}
		if len(finite) > 0 {
			summary.Mean, _ = stats.Mean(finite)
			summary.Median, _ = stats.Median(finite)
			summary.StdDev, _ = stats.StdDevP(finite)
			summary.Min, _ = stats.Min(finite)
			summary.Max, _ = stats.Max(finite)
		}
		out[name] = summary
	}
	return out
}

package timedataset

import "math"

// TimeSlice is a monotonically non-decreasing time axis measured in minutes
// from the start of a recording.
type TimeSlice []float64

func (t TimeSlice) Start() float64 {
	if len(t) < 1 {
		return math.NaN()
	}
	return t[0]
}

func (t TimeSlice) End() float64 {
	if len(t) < 1 {
		return math.NaN()
	}
	return t[len(t)-1]
}

// NearestIndex returns the index of the axis element closest to the given
// time. Ties break toward the lower index. The axis must be non-empty.
func (t TimeSlice) NearestIndex(at float64) int {
	best := 0
	bestDiff := math.Abs(t[0] - at)
	for i := 1; i < len(t); i++ {
		diff := math.Abs(t[i] - at)
		if diff < bestDiff {
			best = i
			bestDiff = diff
		}
	}
	return best
}

package nucalign

// SeriesResult holds the aligned windows and derived curves for one named
// series. All curves share the window length.
type SeriesResult struct {
	Column  string      `json:"column"`
	Windows [][]float64 `json:"windows"`
	Mean    []float64   `json:"mean"`
	SEM     []float64   `json:"sem"`
	Lower   []float64   `json:"lower"`
	Upper   []float64   `json:"upper"`
}

// WindowLen returns the common length of the windows and curves.
func (r *SeriesResult) WindowLen() int {
	return len(r.Mean)
}

// Results bundles the outcome of one alignment run. Series that could not be
// processed, e.g. a column missing from the dataset, are collected in Failed
// without aborting the remaining series.
type Results struct {
	Before          int       `json:"before"`
	After           int       `json:"after"`
	ConfidenceLevel float64   `json:"confidence_level"`
	CriticalValue   float64   `json:"critical_value"`
	ReferenceTimes  []float64 `json:"reference_times"`

	Series map[string]*SeriesResult `json:"series"`
	Failed map[string]error         `json:"-"`
}

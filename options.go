package nucalign

// Options configures an alignment run. Defaults mirror the knobs of the
// interactive freezing-curve tool this library was extracted from.
type Options struct {
	// Before and After are the number of samples kept on each side of a
	// resolved nucleation index. Their sum is the window length.
	Before int
	After  int

	// ConfidenceLevel is the two-sided confidence for the interval band,
	// as a fraction in (0, 1).
	ConfidenceLevel float64

	// MaxReferencePoints caps the number of nucleation points per run.
	// Zero disables the cap.
	MaxReferencePoints int
}

func NewDefaultOptions() *Options {
	return &Options{
		Before:             50,
		After:              320,
		ConfidenceLevel:    0.95,
		MaxReferencePoints: 10,
	}
}

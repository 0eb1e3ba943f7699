package window

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	nan := math.NaN()
	series := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	testData := map[string]struct {
		idx      int
		before   int
		after    int
		expected []float64
	}{
		"interior no padding": {
			idx:      5,
			before:   2,
			after:    3,
			expected: []float64{3, 4, 5, 6, 7},
		},
		"nucleation sample starts the after side": {
			idx:      5,
			before:   2,
			after:    2,
			expected: []float64{3, 4, 5, 6},
		},
		"clipped at start pads right": {
			idx:      0,
			before:   5,
			after:    3,
			expected: []float64{0, 1, 2, nan, nan, nan, nan, nan},
		},
		"partially clipped at start": {
			idx:      1,
			before:   3,
			after:    2,
			expected: []float64{0, 1, 2, nan, nan},
		},
		"clipped at end pads right": {
			idx:      8,
			before:   2,
			after:    4,
			expected: []float64{6, 7, 8, 9, nan, nan},
		},
		"zero before": {
			idx:      3,
			before:   0,
			after:    3,
			expected: []float64{3, 4, 5},
		},
		"zero after": {
			idx:      3,
			before:   3,
			after:    0,
			expected: []float64{0, 1, 2},
		},
		"window larger than series": {
			idx:      5,
			before:   8,
			after:    8,
			expected: []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, nan, nan, nan, nan, nan, nan},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			w := Extract(series, td.idx, td.before, td.after)
			require.Len(t, w, td.before+td.after)
			assertCurveEqual(t, td.expected, w)
		})
	}
}

func TestNewStack(t *testing.T) {
	testData := map[string]struct {
		windows [][]float64
		err     error
	}{
		"empty": {
			err: ErrEmptyStack,
		},
		"length mismatch": {
			windows: [][]float64{{1, 2}, {1, 2, 3}},
			err:     ErrLenMismatch,
		},
		"valid": {
			windows: [][]float64{{1, 2}, {3, 4}},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			s, err := NewStack(td.windows...)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, len(td.windows), s.Len())
			assert.Equal(t, len(td.windows[0]), s.WindowLen())
		})
	}
}

func TestMeanSEM(t *testing.T) {
	nan := math.NaN()

	testData := map[string]struct {
		windows      [][]float64
		expectedMean []float64
		expectedSEM  []float64
	}{
		"single window is its own mean with zero error": {
			windows:      [][]float64{{1, 2, 3}},
			expectedMean: []float64{1, 2, 3},
			expectedSEM:  []float64{0, 0, 0},
		},
		"two windows": {
			windows:      [][]float64{{1, 2}, {3, 6}},
			expectedMean: []float64{2, 4},
			expectedSEM:  []float64{1.0 / math.Sqrt2, 2.0 / math.Sqrt2},
		},
		"padded position divides by full count": {
			// position 1 has one non-missing sample, yet SEM still
			// divides by sqrt(2) giving a zero-spread position
			windows:      [][]float64{{1, nan}, {3, 5}},
			expectedMean: []float64{2, 5},
			expectedSEM:  []float64{1.0 / math.Sqrt2, 0},
		},
		"all missing position stays missing": {
			windows:      [][]float64{{1, nan}, {3, nan}},
			expectedMean: []float64{2, nan},
			expectedSEM:  []float64{1.0 / math.Sqrt2, nan},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			s, err := NewStack(td.windows...)
			require.Nil(t, err)

			mean, sem := s.MeanSEM()
			assertCurveEqual(t, td.expectedMean, mean)
			assertCurveEqual(t, td.expectedSEM, sem)
		})
	}
}

func assertCurveEqual(t *testing.T, expected, actual []float64) {
	t.Helper()
	require.Equal(t, len(expected), len(actual))
	for i := range expected {
		if math.IsNaN(expected[i]) {
			assert.True(t, math.IsNaN(actual[i]), "position %d expected NaN", i)
			continue
		}
		assert.InDelta(t, expected[i], actual[i], 1e-12, "position %d", i)
	}
}

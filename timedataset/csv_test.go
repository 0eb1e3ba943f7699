package timedataset

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCSVFromReader(t *testing.T) {
	input := strings.Join([]string{
		"Name;fTemperatureCorrected;fInlet",
		"60000;20,5;1,0",
		"120000;19,0;n/a",
		"180000;18,2;3,5",
	}, "\n")

	ds, err := LoadCSVFromReader(strings.NewReader(input), nil)
	require.Nil(t, err)

	assert.Equal(t, TimeSlice{1, 2, 3}, ds.T)
	assert.Equal(t, []float64{20.5, 19.0, 18.2}, ds.Columns["fTemperatureCorrected"])

	inlet := ds.Columns["fInlet"]
	require.Len(t, inlet, 3)
	assert.Equal(t, 1.0, inlet[0])
	assert.True(t, math.IsNaN(inlet[1]), "unparseable cell becomes NaN")
	assert.Equal(t, 3.5, inlet[2])
}

func TestLoadCSVFromReaderOptions(t *testing.T) {
	input := strings.Join([]string{
		"t,y",
		"1.0,2.5",
		"2.0,3.5",
	}, "\n")

	opts := &CSVOptions{
		TimeColumn: "t",
		Delimiter:  ',',
	}
	ds, err := LoadCSVFromReader(strings.NewReader(input), opts)
	require.Nil(t, err)
	assert.Equal(t, TimeSlice{1, 2}, ds.T)
	assert.Equal(t, []float64{2.5, 3.5}, ds.Columns["y"])
}

func TestLoadCSVFromReaderErrors(t *testing.T) {
	testData := map[string]struct {
		input string
		opts  *CSVOptions
		err   error
	}{
		"empty input": {
			err: ErrNoHeader,
		},
		"missing time column": {
			input: "foo;bar\n1;2\n",
			err:   ErrMissingTimeColumn,
		},
		"unparseable time": {
			input: "Name;y\nnot-a-number;2\n",
		},
		"no data rows": {
			input: "Name;y\n",
			err:   ErrNoSamples,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			_, err := LoadCSVFromReader(strings.NewReader(td.input), td.opts)
			require.NotNil(t, err)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
			}
		})
	}
}

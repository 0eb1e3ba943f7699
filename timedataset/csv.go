package timedataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

var (
	ErrMissingTimeColumn = errors.New("time column not found in header")
	ErrNoHeader          = errors.New("missing header row")
)

// CSVOptions holds options for loading a logger CSV export.
type CSVOptions struct {
	TimeColumn   string  // column holding the time axis
	Delimiter    rune    // field delimiter
	DecimalComma bool    // values use ',' as the decimal separator
	TimeDivisor  float64 // raw time units per output unit, e.g. 60000 for ms to min
}

// NewDefaultCSVOptions returns options matching the freezing-cell logger
// export format: semicolon separated, comma decimals, time in milliseconds
// under the "Name" column, converted to minutes.
func NewDefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		TimeColumn:   "Name",
		Delimiter:    ';',
		DecimalComma: true,
		TimeDivisor:  60000.0,
	}
}

// LoadCSV loads a TimeDataset from a CSV file on disk.
func LoadCSV(filename string, opts *CSVOptions) (*TimeDataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a TimeDataset from an io.Reader. Every column other
// than the time column becomes a data column; cells that fail to parse as a
// number are recorded as NaN so downstream aggregation skips them.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*TimeDataset, error) {
	if opts == nil {
		opts = NewDefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, ErrNoHeader
		}
		return nil, err
	}

	timeIdx := -1
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
		if header[i] == opts.TimeColumn {
			timeIdx = i
		}
	}
	if timeIdx < 0 {
		return nil, fmt.Errorf("column %q, %w", opts.TimeColumn, ErrMissingTimeColumn)
	}

	divisor := opts.TimeDivisor
	if divisor == 0 {
		divisor = 1.0
	}

	var t []float64
	cols := make(map[string][]float64, len(header)-1)
	for i, name := range header {
		if i == timeIdx {
			continue
		}
		cols[name] = nil
	}

	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		rawTime, err := parseCell(record[timeIdx], opts.DecimalComma)
		if err != nil {
			return nil, fmt.Errorf("unable to parse time at row %d, %w", row, err)
		}
		t = append(t, rawTime/divisor)

		for i, name := range header {
			if i == timeIdx {
				continue
			}
			val, err := parseCell(record[i], opts.DecimalComma)
			if err != nil {
				val = math.NaN()
			}
			cols[name] = append(cols[name], val)
		}
		row++
	}

	return NewTimeDataset(t, cols)
}

func parseCell(cell string, decimalComma bool) (float64, error) {
	cell = strings.TrimSpace(cell)
	if decimalComma {
		cell = strings.ReplaceAll(cell, ",", ".")
	}
	return strconv.ParseFloat(cell, 64)
}

package nucalign

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// LineAlignedSeries generates an echart line chart for one aligned series
// plotting every raw window along with the mean and confidence bound curves.
// The x axis is the sample offset relative to the nucleation point, so the
// nucleation index sits at zero.
func LineAlignedSeries(name string, res *Results, sr *SeriesResult) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: fmt.Sprintf("%s (%.0f%% CI)", name, res.ConfidenceLevel*100),
			},
		),
	)

	offsets := make([]int, 0, sr.WindowLen())
	for i := 0; i < sr.WindowLen(); i++ {
		offsets = append(offsets, i-res.Before)
	}

	line = line.SetXAxis(offsets)
	for i, w := range sr.Windows {
		line = line.AddSeries(fmt.Sprintf("run %d", i+1), lineData(w))
	}
	line = line.AddSeries("mean", lineData(sr.Mean)).
		AddSeries("lower", lineData(sr.Lower)).
		AddSeries("upper", lineData(sr.Upper))
	return line
}

// lineData maps a curve into echarts points, marking NaN samples as missing
// so padded window tails leave gaps instead of zero lines.
func lineData(y []float64) []opts.LineData {
	data := make([]opts.LineData, 0, len(y))
	for _, v := range y {
		if math.IsNaN(v) {
			data = append(data, opts.LineData{Value: "-"})
			continue
		}
		data = append(data, opts.LineData{Value: v})
	}
	return data
}

// Plot renders one chart per aligned series into a single HTML page,
// ordered by series name.
func (r *Results) Plot(w io.Writer) error {
	names := make([]string, 0, len(r.Series))
	for name := range r.Series {
		names = append(names, name)
	}
	sort.Strings(names)

	page := components.NewPage()
	for _, name := range names {
		page.AddCharts(LineAlignedSeries(name, r, r.Series[name]))
	}
	return page.Render(w)
}

// Command nucalign aligns freezing-run recordings around nucleation
// timestamps and renders the aggregated curves as an HTML report.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	nucalign "github.com/aouyang1/go-nucalign"
	"github.com/aouyang1/go-nucalign/timedataset"
	"github.com/goccy/go-json"
)

func main() {
	var (
		input      = flag.String("input", "", "path to the logger CSV export (semicolon separated, comma decimals)")
		points     = flag.String("points", "", "comma-separated nucleation times in minutes, e.g. 12.5,30.2")
		before     = flag.Int("before", 50, "samples kept before each nucleation point")
		after      = flag.Int("after", 320, "samples kept after each nucleation point")
		confidence = flag.Float64("confidence", 0.95, "confidence level in (0, 1)")
		maxPoints  = flag.Int("max-points", 10, "maximum number of nucleation points, 0 disables the cap")
		timeCol    = flag.String("time-col", "Name", "CSV column holding the time axis")
		timeDiv    = flag.Float64("time-divisor", 60000, "raw time units per minute")
		seriesOpt  = flag.String("series", "", "display=column pairs, comma separated; defaults to the standard freezing-cell set")
		plotPath   = flag.String("plot", "nucalign.html", "output path for the HTML report")
		jsonPath   = flag.String("json", "", "optional output path for the raw results as JSON")
	)
	flag.Parse()

	if *input == "" || *points == "" {
		flag.Usage()
		os.Exit(2)
	}

	csvOpts := timedataset.NewDefaultCSVOptions()
	csvOpts.TimeColumn = *timeCol
	csvOpts.TimeDivisor = *timeDiv

	td, err := timedataset.LoadCSV(*input, csvOpts)
	if err != nil {
		log.Fatalf("unable to load %s: %v", *input, err)
	}
	printSummary(td)

	refs, err := parsePoints(*points)
	if err != nil {
		log.Fatalf("unable to parse nucleation points: %v", err)
	}

	series := nucalign.DefaultSeries()
	if *seriesOpt != "" {
		series, err = parseSeries(*seriesOpt)
		if err != nil {
			log.Fatalf("unable to parse series mapping: %v", err)
		}
	}

	a, err := nucalign.New(&nucalign.Options{
		Before:             *before,
		After:              *after,
		ConfidenceLevel:    *confidence,
		MaxReferencePoints: *maxPoints,
	})
	if err != nil {
		log.Fatal(err)
	}

	res, err := a.Run(td, series, refs)
	if err != nil {
		log.Fatal(err)
	}
	for name, serr := range res.Failed {
		log.Printf("skipping series %q: %v", name, serr)
	}

	file, err := os.Create(*plotPath)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()
	if err := res.Plot(file); err != nil {
		log.Fatalf("unable to render report: %v", err)
	}
	log.Printf("wrote %s with %d aligned series", *plotPath, len(res.Series))

	if *jsonPath != "" {
		bytes, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(*jsonPath, bytes, 0o644); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *jsonPath)
	}
}

func printSummary(td *timedataset.TimeDataset) {
	summaries := td.Describe()
	names := make([]string, 0, len(summaries))
	for name := range summaries {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("%d samples from %.2f to %.2f min\n", td.Len(), td.T.Start(), td.T.End())
	fmt.Printf("%-30s %8s %12s %12s %12s %12s\n", "column", "count", "mean", "std", "min", "max")
	for _, name := range names {
		s := summaries[name]
		fmt.Printf("%-30s %8d %12.3f %12.3f %12.3f %12.3f\n", name, s.Count, s.Mean, s.StdDev, s.Min, s.Max)
	}
}

func parsePoints(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	refs := make([]float64, 0, len(parts))
	for _, part := range parts {
		val, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		refs = append(refs, val)
	}
	return refs, nil
}

func parseSeries(s string) (map[string]string, error) {
	series := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		name, col, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("expected display=column in %q", pair)
		}
		series[strings.TrimSpace(name)] = strings.TrimSpace(col)
	}
	return series, nil
}

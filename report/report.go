// SPDX-License-Identifier: MIT
// Package report renders episode return curves as standalone HTML charts.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// ErrNoData is returned when every series is empty.
var ErrNoData = errors.New("report: no data")

// Series is one named line: Values[i] is the return of the i-th finished
// episode.
type Series struct {
	Name   string
	Values []float64
}

// Smooth returns the trailing moving average of values over window points;
// the first window-1 points average what is available. A window below 2
// returns a copy.
func Smooth(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window < 2 {
		copy(out, values)
		return out
	}
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		n := i + 1
		if n > window {
			n = window
		}
		out[i] = sum / float64(n)
	}

	return out
}

// RenderReturns writes an HTML page holding one line chart with a line per
// series. The x axis runs to the longest series.
func RenderReturns(w io.Writer, title string, series ...Series) error {
	longest := 0
	for _, s := range series {
		longest = max(longest, len(s.Values))
	}
	if longest == 0 {
		return fmt.Errorf("RenderReturns: %d series: %w", len(series), ErrNoData)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{Theme: "shine"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "episode"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "return"}),
	)

	xs := make([]string, longest)
	for i := range xs {
		xs[i] = strconv.Itoa(i)
	}
	line.SetXAxis(xs)
	for _, s := range series {
		items := make([]opts.LineData, 0, len(s.Values))
		for _, v := range s.Values {
			items = append(items, opts.LineData{Value: v})
		}
		line.AddSeries(s.Name, items)
	}

	page := components.NewPage()
	page.PageTitle = title
	page.AddCharts(line)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("RenderReturns: %w", err)
	}

	return nil
}

// WriteFile renders to path, creating parent directories as needed.
func WriteFile(path, title string, series ...Series) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	if err := RenderReturns(f, title, series...); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

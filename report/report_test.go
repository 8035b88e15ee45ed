// SPDX-License-Identifier: MIT
package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecstorm/report"
)

func TestSmooth(t *testing.T) {
	require.Equal(t, []float64{1, 1.5, 2.5, 3.5}, report.Smooth([]float64{1, 2, 3, 4}, 2))
	require.Equal(t, []float64{3, 4.5, 4}, report.Smooth([]float64{3, 6, 3}, 5))

	in := []float64{1, 2}
	out := report.Smooth(in, 1)
	require.Equal(t, in, out)
	out[0] = 9
	require.Equal(t, 1.0, in[0], "result is a copy")
	require.Empty(t, report.Smooth(nil, 3))
}

func TestRenderReturns(t *testing.T) {
	var buf bytes.Buffer
	err := report.RenderReturns(&buf, "grid returns",
		report.Series{Name: "raw", Values: []float64{0, 1, 0.5}},
		report.Series{Name: "smoothed", Values: report.Smooth([]float64{0, 1, 0.5}, 2)},
	)
	require.NoError(t, err)
	html := buf.String()
	require.Contains(t, html, "<html")
	require.Contains(t, html, "grid returns")
	require.Contains(t, html, "smoothed")

	require.ErrorIs(t, report.RenderReturns(&buf, "empty"), report.ErrNoData)
	require.ErrorIs(t, report.RenderReturns(&buf, "empty", report.Series{Name: "x"}), report.ErrNoData)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts", "returns.html")
	require.NoError(t, report.WriteFile(path, "t", report.Series{Name: "a", Values: []float64{1}}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	require.ErrorIs(t, report.WriteFile(filepath.Join(t.TempDir(), "x.html"), "t"), report.ErrNoData)
}

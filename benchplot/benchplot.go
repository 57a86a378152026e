// Copyright 2025 The benchassets Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchplot renders the benchmark tables as charts. Each
// chart is written in a raster (PNG) and a vector (SVG) format to the
// same output directory.
package benchplot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/neels22/benchassets/benchdata"
)

var formats = []string{"png", "svg"}

// Probe checks that the plot backend can actually render before any
// artifact is written. Rendering needs the backend's font and image
// encoders; if they are unusable the whole run is aborted up front
// rather than after some artifacts already exist.
func Probe() error {
	p := plot.New()
	for _, format := range formats {
		wt, err := p.WriterTo(vg.Inch, vg.Inch, format)
		if err != nil {
			return fmt.Errorf("plot backend cannot render %s: %v (reinstall the gonum.org/v1/plot module and its font dependencies)", format, err)
		}
		if _, err := wt.WriteTo(io.Discard); err != nil {
			return fmt.Errorf("plot backend cannot render %s: %v (reinstall the gonum.org/v1/plot module and its font dependencies)", format, err)
		}
	}
	return nil
}

// FireSpeedup draws speedup versus thread count, one line per data
// layout, as fire_speedup.png and fire_speedup.svg in dir.
func FireSpeedup(dir string, rows []benchdata.FireResult) error {
	p := newPlot("Fire Data Speedup", "Threads", "Speedup (vs 1 thread)")
	err := plotutil.AddLinePoints(p,
		"Row", firePoints(rows, benchdata.Row, speedupY),
		"Column", firePoints(rows, benchdata.Column, speedupY),
	)
	if err != nil {
		return err
	}
	return save(p, dir, "fire_speedup")
}

// FireEfficiency draws parallel efficiency (in percent) versus thread
// count, one line per data layout, as fire_efficiency.png and
// fire_efficiency.svg in dir.
func FireEfficiency(dir string, rows []benchdata.FireResult) error {
	p := newPlot("Fire Data Parallel Efficiency", "Threads", "Efficiency (%)")
	err := plotutil.AddLinePoints(p,
		"Row", firePoints(rows, benchdata.Row, efficiencyY),
		"Column", firePoints(rows, benchdata.Column, efficiencyY),
	)
	if err != nil {
		return err
	}
	return save(p, dir, "fire_efficiency")
}

// PopulationPointRange draws a grouped bar chart of point-query
// versus range-query latency for the column layout, serial and
// parallel, as population_point_range.png and
// population_point_range.svg in dir.
func PopulationPointRange(dir string, rows []benchdata.PopulationRow) error {
	ops := []string{"Point Query", "Range (11y)"}
	var serial, parallel plotter.Values
	for _, op := range ops {
		row, ok := findOperation(rows, op)
		if !ok {
			return fmt.Errorf("population table has no %q row", op)
		}
		serial = append(serial, row.ColSerialUS)
		parallel = append(parallel, row.ColParallelUS)
	}

	p := newPlot("Population Queries: Column Model", "", "Latency (µs)")
	barWidth := vg.Points(24)
	serialBars, err := plotter.NewBarChart(serial, barWidth)
	if err != nil {
		return err
	}
	parallelBars, err := plotter.NewBarChart(parallel, barWidth)
	if err != nil {
		return err
	}
	serialBars.Offset = -barWidth / 2
	parallelBars.Offset = barWidth / 2
	serialBars.Color = plotutil.Color(0)
	parallelBars.Color = plotutil.Color(1)
	serialBars.LineStyle.Width = 0
	parallelBars.LineStyle.Width = 0

	p.Add(serialBars, parallelBars)
	p.Legend.Add("Serial", serialBars)
	p.Legend.Add("Parallel", parallelBars)
	p.NominalX(ops...)
	return save(p, dir, "population_point_range")
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.Padding = vg.Millimeter
	p.Add(plotter.NewGrid())
	return p
}

func speedupY(r benchdata.FireResult) float64    { return r.Speedup }
func efficiencyY(r benchdata.FireResult) float64 { return r.Efficiency * 100 }

func firePoints(rows []benchdata.FireResult, model benchdata.Model, y func(benchdata.FireResult) float64) plotter.XYs {
	var xys plotter.XYs
	for _, r := range rows {
		if r.Model != model {
			continue
		}
		xys = append(xys, plotter.XY{X: float64(r.Threads), Y: y(r)})
	}
	return xys
}

func findOperation(rows []benchdata.PopulationRow, op string) (benchdata.PopulationRow, bool) {
	for _, r := range rows {
		if r.Operation == op {
			return r, true
		}
	}
	return benchdata.PopulationRow{}, false
}

func save(p *plot.Plot, dir, base string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, format := range formats {
		name := filepath.Join(dir, base+"."+format)
		if err := p.Save(6*vg.Inch, 4*vg.Inch, name); err != nil {
			return fmt.Errorf("saving %s: %w", name, err)
		}
	}
	return nil
}

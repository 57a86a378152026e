// Copyright 2025 The benchassets Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchassets generates the report artifacts of the row-versus-column
// layout benchmark.
//
// Usage:
//
//	benchassets
//
// The tool takes no arguments and reads no input: the benchmark
// measurements are fixed tables in the benchdata package. It writes
// CSV and Markdown tables, a JSON bundle, a Go-benchmark-format
// transcript, a SQLite database, and PNG/SVG charts to the output
// directory, which defaults to bench_artifacts and can be overridden
// with the BENCH_EXPORT_DIR environment variable. The directory is
// created if it does not exist.
//
// Every artifact is derived independently from the same two tables,
// so the run is a simple fan-out: if any export fails, the run stops
// with that error and already written artifacts are left in place.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/neels22/benchassets/benchdata"
	"github.com/neels22/benchassets/benchexport"
	"github.com/neels22/benchassets/benchplot"
)

const defaultDir = "bench_artifacts"

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "benchassets: %s\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer) error {
	dir := os.Getenv("BENCH_EXPORT_DIR")
	if dir == "" {
		dir = defaultDir
	}

	// Fail before writing anything if charts cannot be rendered.
	if err := benchplot.Probe(); err != nil {
		return err
	}

	fire := benchdata.Fire()
	pop := benchdata.ComputeAdvantages(benchdata.Population())
	fireTable := benchexport.FireTable(fire)
	popTable := benchexport.PopulationTable(pop)

	artifacts := []struct {
		name   string
		render func(io.Writer) error
	}{
		{"fire_results.csv", fireTable.WriteCSV},
		{"fire_results.md", fireTable.WriteMarkdown},
		{"population_results.csv", popTable.WriteCSV},
		{"population_results.md", popTable.WriteMarkdown},
		{"benchmarks.json", func(w io.Writer) error { return benchexport.JSON(w, fire, pop) }},
		{"fire_results.bench", func(w io.Writer) error { return benchexport.Bench(w, fire) }},
	}
	for _, a := range artifacts {
		if err := benchexport.WriteFile(dir, a.name, a.render); err != nil {
			return err
		}
	}

	if err := benchexport.SQLite(dir, fire, pop); err != nil {
		return err
	}

	if err := benchplot.FireSpeedup(dir, fire); err != nil {
		return err
	}
	if err := benchplot.FireEfficiency(dir, fire); err != nil {
		return err
	}
	if err := benchplot.PopulationPointRange(dir, pop); err != nil {
		return err
	}

	fmt.Fprintf(w, "Artifacts written to %s\n", dir)
	return nil
}

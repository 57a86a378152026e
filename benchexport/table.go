// Copyright 2025 The benchassets Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchexport renders the benchmark tables as report
// artifacts: CSV and Markdown tables, a JSON bundle, a Go benchmark
// format transcript, and a SQLite database.
//
// Every exporter is a pure function of its input table and writes
// through an io.Writer (or, for SQLite, a file path), so artifacts
// are byte-for-byte reproducible given the fixed input data.
package benchexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/neels22/benchassets/benchdata"
)

// An Align is the alignment of a Markdown table column.
type Align int

const (
	Left Align = iota
	Right
)

// A Column describes one column of a rendered table: its CSV header
// name, its Markdown title, and its alignment. Numeric columns are
// right-aligned.
type Column struct {
	Name  string
	Title string
	Align Align
}

// A Cell is one formatted value. CSV and Markdown presentation can
// differ (the Markdown tables carry unit suffixes the CSV leaves
// off), so both renderings are fixed when the table is built.
type Cell struct {
	CSV      string
	Markdown string
}

// cell returns a Cell rendered identically in both formats.
func cell(s string) Cell {
	return Cell{CSV: s, Markdown: s}
}

// A Table is a fully formatted report table, ready to render in any
// textual format. The column list fixes both the order and the
// per-column formatting of every row.
type Table struct {
	Columns []Column
	Rows    [][]Cell
}

// WriteCSV renders t as one header row followed by one row per
// record.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col.Name
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, c := range row {
			record[i] = c.CSV
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteMarkdown renders t as a pipe table with an alignment row.
// Right-aligned columns get a trailing colon sized to the title, left
// columns plain dashes.
func (t *Table) WriteMarkdown(w io.Writer) error {
	var sb strings.Builder
	for _, col := range t.Columns {
		fmt.Fprintf(&sb, "| %s ", col.Title)
	}
	sb.WriteString("|\n")
	for _, col := range t.Columns {
		width := utf8.RuneCountInString(col.Title) + 2
		if col.Align == Right {
			sb.WriteString("|" + strings.Repeat("-", width-1) + ":")
		} else {
			sb.WriteString("|" + strings.Repeat("-", width))
		}
	}
	sb.WriteString("|\n")
	for _, row := range t.Rows {
		for _, c := range row {
			fmt.Fprintf(&sb, "| %s ", c.Markdown)
		}
		sb.WriteString("|\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// FireTable formats the fire benchmark table. Times get three
// decimals, speedups two, efficiency four (shown as a percentage in
// Markdown), throughput one.
func FireTable(rows []benchdata.FireResult) *Table {
	t := &Table{
		Columns: []Column{
			{Name: "model", Title: "Model", Align: Left},
			{Name: "threads", Title: "Threads", Align: Right},
			{Name: "time_s", Title: "Time (s)", Align: Right},
			{Name: "speedup", Title: "Speedup", Align: Right},
			{Name: "efficiency", Title: "Efficiency", Align: Right},
			{Name: "files_per_sec", Title: "Files/sec", Align: Right},
		},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []Cell{
			cell(string(r.Model)),
			cell(fmt.Sprintf("%d", r.Threads)),
			cell(fmt.Sprintf("%.3f", r.TimeSec)),
			{CSV: fmt.Sprintf("%.2f", r.Speedup), Markdown: fmt.Sprintf("%.2fx", r.Speedup)},
			{CSV: fmt.Sprintf("%.4f", r.Efficiency), Markdown: fmt.Sprintf("%.1f%%", r.Efficiency*100)},
			cell(fmt.Sprintf("%.1f", r.FilesPerSec)),
		})
	}
	return t
}

// PopulationTable formats the population benchmark table. Latencies
// get three decimals; unmeasured latencies and not-computable
// advantages render as "-".
func PopulationTable(rows []benchdata.PopulationRow) *Table {
	t := &Table{
		Columns: []Column{
			{Name: "operation", Title: "Operation", Align: Left},
			{Name: "row_serial_us", Title: "Row Serial (µs)", Align: Right},
			{Name: "row_parallel_us", Title: "Row Parallel (µs)", Align: Right},
			{Name: "column_serial_us", Title: "Column Serial (µs)", Align: Right},
			{Name: "column_parallel_us", Title: "Column Parallel (µs)", Align: Right},
			{Name: "column_advantage_serial", Title: "Column Advantage (Serial)", Align: Right},
			{Name: "column_advantage_parallel", Title: "Column Advantage (Parallel)", Align: Right},
		},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []Cell{
			cell(r.Operation),
			cell(micros(r.RowSerialUS)),
			cell(micros(r.RowParallelUS)),
			cell(micros(r.ColSerialUS)),
			cell(micros(r.ColParallelUS)),
			cell(r.ColAdvantageSerial.String()),
			cell(r.ColAdvantageParallel.String()),
		})
	}
	return t
}

// micros formats a microsecond latency, with "-" for the unmeasured
// zero value.
func micros(v float64) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprintf("%.3f", v)
}

// Copyright 2025 The benchassets Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchexport

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestJSONBundle(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, fireFixture(), popFixture()); err != nil {
		t.Fatal(err)
	}

	var bundle struct {
		Fire []struct {
			Model   string  `json:"model"`
			Threads int     `json:"threads"`
			TimeSec float64 `json:"time_s"`
		} `json:"fire"`
		Population []struct {
			Operation            string   `json:"operation"`
			RowSerialUS          float64  `json:"row_serial_us"`
			RowParallelUS        *float64 `json:"row_parallel_us"`
			ColSerialUS          float64  `json:"column_serial_us"`
			ColAdvantageSerial   *float64 `json:"column_advantage_serial"`
			ColAdvantageParallel *float64 `json:"column_advantage_parallel"`
		} `json:"population"`
		Metadata struct {
			Generator        string `json:"generator"`
			FireFiles        int    `json:"fire_files"`
			FireMeasurements int    `json:"fire_measurements"`
			FireRows         int    `json:"fire_rows"`
			PopulationRows   int    `json:"population_rows"`
			Summary          struct {
				GeomeanSpeedupRow    float64 `json:"geomean_speedup_row"`
				GeomeanSpeedupColumn float64 `json:"geomean_speedup_column"`
			} `json:"summary"`
		} `json:"metadata"`
	}
	if err := json.Unmarshal(buf.Bytes(), &bundle); err != nil {
		t.Fatalf("bundle does not parse: %v", err)
	}

	if len(bundle.Fire) != 10 {
		t.Errorf("got %d fire entries, want 10", len(bundle.Fire))
	}
	if len(bundle.Population) != 7 {
		t.Errorf("got %d population entries, want 7", len(bundle.Population))
	}
	if bundle.Fire[0].Model != "Row" || bundle.Fire[0].Threads != 1 || bundle.Fire[0].TimeSec != 2.079 {
		t.Errorf("unexpected first fire entry: %+v", bundle.Fire[0])
	}

	md := bundle.Metadata
	if md.Generator != "benchassets" {
		t.Errorf("generator = %q, want %q", md.Generator, "benchassets")
	}
	if md.FireFiles != 516 || md.FireMeasurements != 1170000 {
		t.Errorf("dataset sizes = %d files, %d measurements; want 516, 1170000", md.FireFiles, md.FireMeasurements)
	}
	if md.FireRows != 10 || md.PopulationRows != 7 {
		t.Errorf("table sizes = %d, %d; want 10, 7", md.FireRows, md.PopulationRows)
	}
	if math.Abs(md.Summary.GeomeanSpeedupRow-1.8392157827507354) > 1e-9 {
		t.Errorf("row geomean = %v, want ~1.83922", md.Summary.GeomeanSpeedupRow)
	}
	if math.Abs(md.Summary.GeomeanSpeedupColumn-1.7944214966292784) > 1e-9 {
		t.Errorf("column geomean = %v, want ~1.79442", md.Summary.GeomeanSpeedupColumn)
	}

	for _, p := range bundle.Population {
		switch p.Operation {
		case "Sum":
			if p.ColAdvantageSerial == nil {
				t.Error("Sum: serial advantage is null")
			} else if got, want := *p.ColAdvantageSerial, 1.992/0.534; math.Abs(got-want)/want > 1e-6 {
				t.Errorf("Sum: serial advantage = %v, want %v", got, want)
			}
		case "Point Query", "Range (11y)":
			if p.RowParallelUS != nil {
				t.Errorf("%s: row_parallel_us = %v, want null", p.Operation, *p.RowParallelUS)
			}
			if p.ColAdvantageParallel != nil {
				t.Errorf("%s: parallel advantage = %v, want null", p.Operation, *p.ColAdvantageParallel)
			}
		}
	}

	// null must appear literally for the unmeasured fields rather
	// than a zero.
	if !strings.Contains(buf.String(), `"row_parallel_us": null`) {
		t.Error("no literal null for unmeasured row_parallel_us")
	}
}

func TestBenchFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Bench(&buf, fireFixture()); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if want := 3 + len(fireFixture()); len(lines) != want {
		t.Fatalf("got %d lines, want %d", len(lines), want)
	}
	if lines[0] != "files: 516" || lines[1] != "measurements: 1170000" || lines[2] != "" {
		t.Errorf("unexpected file config block: %q", lines[:3])
	}
	if want := "BenchmarkFireProcess/model=Row-1 1 2.079 sec/op 248.2 files/sec"; lines[3] != want {
		t.Errorf("first benchmark line = %q, want %q", lines[3], want)
	}
	for _, line := range lines[3:] {
		if !strings.HasPrefix(line, "BenchmarkFireProcess/model=") {
			t.Errorf("malformed benchmark line %q", line)
		}
	}
}

// Copyright 2025 The benchassets Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchexport

import (
	"encoding/json"
	"io"

	"github.com/aclements/go-moremath/stats"

	"github.com/neels22/benchassets/benchdata"
)

// The generator identity recorded in the JSON metadata.
const generator = "benchassets"

type fireJSON struct {
	Model       string  `json:"model"`
	Threads     int     `json:"threads"`
	TimeSec     float64 `json:"time_s"`
	Speedup     float64 `json:"speedup"`
	Efficiency  float64 `json:"efficiency"`
	FilesPerSec float64 `json:"files_per_sec"`
}

type populationJSON struct {
	Operation            string          `json:"operation"`
	RowSerialUS          float64         `json:"row_serial_us"`
	RowParallelUS        *float64        `json:"row_parallel_us"`
	ColSerialUS          float64         `json:"column_serial_us"`
	ColParallelUS        *float64        `json:"column_parallel_us"`
	ColAdvantageSerial   benchdata.Ratio `json:"column_advantage_serial"`
	ColAdvantageParallel benchdata.Ratio `json:"column_advantage_parallel"`
}

type summaryJSON struct {
	GeomeanSpeedupRow    float64 `json:"geomean_speedup_row"`
	GeomeanSpeedupColumn float64 `json:"geomean_speedup_column"`
}

type metadataJSON struct {
	Generator        string      `json:"generator"`
	FireFiles        int         `json:"fire_files"`
	FireMeasurements int         `json:"fire_measurements"`
	FireRows         int         `json:"fire_rows"`
	PopulationRows   int         `json:"population_rows"`
	Summary          summaryJSON `json:"summary"`
}

type bundleJSON struct {
	Fire       []fireJSON       `json:"fire"`
	Population []populationJSON `json:"population"`
	Metadata   metadataJSON     `json:"metadata"`
}

// JSON writes both tables plus descriptive metadata as one indented
// JSON object. Unmeasured latencies and not-computable advantages
// encode as null. Key order is fixed by the wire structs, so output
// is deterministic.
func JSON(w io.Writer, fire []benchdata.FireResult, pop []benchdata.PopulationRow) error {
	bundle := bundleJSON{
		Metadata: metadataJSON{
			Generator:        generator,
			FireFiles:        benchdata.FireFileCount,
			FireMeasurements: benchdata.FireMeasurementCount,
			FireRows:         len(fire),
			PopulationRows:   len(pop),
		},
	}

	speedups := make(map[benchdata.Model][]float64)
	for _, r := range fire {
		bundle.Fire = append(bundle.Fire, fireJSON{
			Model:       string(r.Model),
			Threads:     r.Threads,
			TimeSec:     r.TimeSec,
			Speedup:     r.Speedup,
			Efficiency:  r.Efficiency,
			FilesPerSec: r.FilesPerSec,
		})
		speedups[r.Model] = append(speedups[r.Model], r.Speedup)
	}
	bundle.Metadata.Summary = summaryJSON{
		GeomeanSpeedupRow:    stats.GeoMean(speedups[benchdata.Row]),
		GeomeanSpeedupColumn: stats.GeoMean(speedups[benchdata.Column]),
	}

	for _, r := range pop {
		bundle.Population = append(bundle.Population, populationJSON{
			Operation:            r.Operation,
			RowSerialUS:          r.RowSerialUS,
			RowParallelUS:        optional(r.RowParallelUS),
			ColSerialUS:          r.ColSerialUS,
			ColParallelUS:        optional(r.ColParallelUS),
			ColAdvantageSerial:   r.ColAdvantageSerial,
			ColAdvantageParallel: r.ColAdvantageParallel,
		})
	}

	out, err := json.MarshalIndent(&bundle, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}

// optional maps the unmeasured zero value to a JSON null.
func optional(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}

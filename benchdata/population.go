// Copyright 2025 The benchassets Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchdata

// A PopulationRow is the measured latency of one query operation of
// the population benchmark, in microseconds, under both layouts.
//
// Latencies are strictly positive, so a zero value means the
// configuration was not measured. The two point-lookup style
// operations carry no row-layout parallel measurement: spreading a
// single lookup across threads was not part of the original suite.
type PopulationRow struct {
	Operation string

	RowSerialUS   float64
	RowParallelUS float64
	ColSerialUS   float64
	ColParallelUS float64

	// ColAdvantageSerial and ColAdvantageParallel are the derived
	// column-layout advantages, row latency over column latency.
	// They are zero-valued (not computable) until
	// ComputeAdvantages has run.
	ColAdvantageSerial   Ratio
	ColAdvantageParallel Ratio
}

func popRow(op string, rowSerial, rowParallel, colSerial, colParallel float64) PopulationRow {
	return PopulationRow{
		Operation:     op,
		RowSerialUS:   rowSerial,
		RowParallelUS: rowParallel,
		ColSerialUS:   colSerial,
		ColParallelUS: colParallel,
	}
}

var populationRows = []PopulationRow{
	popRow("Sum", 1.992, 48.220, 0.534, 45.310),
	popRow("Average", 2.014, 47.985, 0.541, 44.872),
	popRow("Max", 1.987, 48.555, 0.529, 45.104),
	popRow("Min", 1.975, 47.632, 0.527, 44.690),
	popRow("Top-N (10)", 112.408, 96.254, 58.320, 52.101),
	popRow("Point Query", 28.775, 0, 0.133, 14.388),
	popRow("Range (11y)", 37.558, 0, 0.592, 15.203),
}

// Population returns the population benchmark table, one row per
// operation in suite order, without derived metrics. Use
// ComputeAdvantages to augment it.
func Population() []PopulationRow {
	return append([]PopulationRow(nil), populationRows...)
}

// ComputeAdvantages returns a copy of rows with the column-advantage
// ratios filled in. The serial advantage is RowSerialUS/ColSerialUS
// when the denominator is nonzero; the parallel advantage
// additionally requires a measured RowParallelUS. Unmeasured or zero
// denominators yield a not-computable Ratio, never an error. The
// input slice is left untouched.
func ComputeAdvantages(rows []PopulationRow) []PopulationRow {
	out := append([]PopulationRow(nil), rows...)
	for i := range out {
		r := &out[i]
		r.ColAdvantageSerial = RatioOf(r.RowSerialUS, r.ColSerialUS)
		if r.RowParallelUS == 0 {
			r.ColAdvantageParallel = Ratio{}
			continue
		}
		r.ColAdvantageParallel = RatioOf(r.RowParallelUS, r.ColParallelUS)
	}
	return out
}

// Copyright 2025 The benchassets Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchexport

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/neels22/benchassets/benchdata"
)

const sqliteSchema = `
CREATE TABLE fire_results (
	model         TEXT NOT NULL,
	threads       INTEGER NOT NULL,
	time_s        REAL NOT NULL,
	speedup       REAL NOT NULL,
	efficiency    REAL NOT NULL,
	files_per_sec REAL NOT NULL
);
CREATE TABLE population_results (
	operation                 TEXT NOT NULL,
	row_serial_us             REAL NOT NULL,
	row_parallel_us           REAL,
	column_serial_us          REAL NOT NULL,
	column_parallel_us        REAL,
	column_advantage_serial   REAL,
	column_advantage_parallel REAL
);
`

// SQLite writes both tables to a SQLite database named benchmarks.db
// in dir, creating dir if needed and replacing any previous database.
// Unmeasured latencies and not-computable advantages are stored as
// NULL.
func SQLite(dir string, fire []benchdata.FireResult, pop []benchdata.PopulationRow) (err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, "benchmarks.db")
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() {
		if cerr := db.Close(); err == nil {
			err = cerr
		}
	}()

	if _, err := db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, r := range fire {
		_, err := tx.Exec(
			`INSERT INTO fire_results (model, threads, time_s, speedup, efficiency, files_per_sec) VALUES (?, ?, ?, ?, ?, ?)`,
			string(r.Model), r.Threads, r.TimeSec, r.Speedup, r.Efficiency, r.FilesPerSec,
		)
		if err != nil {
			return fmt.Errorf("inserting fire row %s/%d: %w", r.Model, r.Threads, err)
		}
	}
	for _, r := range pop {
		_, err := tx.Exec(
			`INSERT INTO population_results (operation, row_serial_us, row_parallel_us, column_serial_us, column_parallel_us, column_advantage_serial, column_advantage_parallel) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			r.Operation, r.RowSerialUS, nullable(r.RowParallelUS), r.ColSerialUS, nullable(r.ColParallelUS),
			nullableRatio(r.ColAdvantageSerial), nullableRatio(r.ColAdvantageParallel),
		)
		if err != nil {
			return fmt.Errorf("inserting population row %q: %w", r.Operation, err)
		}
	}

	return tx.Commit()
}

func nullable(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: v != 0}
}

func nullableRatio(r benchdata.Ratio) sql.NullFloat64 {
	return sql.NullFloat64{Float64: r.Float64(), Valid: r.Valid()}
}

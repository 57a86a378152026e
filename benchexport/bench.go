// Copyright 2025 The benchassets Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchexport

import (
	"bytes"
	"fmt"
	"io"

	"github.com/neels22/benchassets/benchdata"
)

// Bench writes the fire table in the Go benchmark text format
// (https://golang.org/design/14313-benchmark-format), so the fixed
// measurements can be fed to benchstat-style tooling. File
// configuration lines carry the dataset sizes, and the thread count
// takes the conventional -N name suffix.
func Bench(w io.Writer, fire []benchdata.FireResult) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "files: %d\n", benchdata.FireFileCount)
	fmt.Fprintf(&buf, "measurements: %d\n", benchdata.FireMeasurementCount)
	buf.WriteByte('\n')
	for _, r := range fire {
		fmt.Fprintf(&buf, "BenchmarkFireProcess/model=%s-%d 1 %.3f sec/op %.1f files/sec\n",
			r.Model, r.Threads, r.TimeSec, r.FilesPerSec)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

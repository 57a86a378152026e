// Copyright 2025 The benchassets Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchexport

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteFile renders one artifact into dir/name, creating dir (and any
// missing parents) first. The artifact is rendered to memory before
// anything touches the filesystem, so a render error never leaves a
// truncated file behind. Filesystem errors are returned to the
// caller; there is no retry.
func WriteFile(dir, name string, render func(io.Writer) error) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	return os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0o644)
}

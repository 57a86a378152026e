// Copyright 2025 The benchassets Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchdata

import (
	"fmt"
	"strconv"
)

// A Ratio is a derived quotient of two measurements that may not be
// computable. The zero Ratio is not computable; it is distinct from a
// numeric zero, which a valid Ratio of positive measurements can
// never be.
type Ratio struct {
	value float64
	ok    bool
}

// RatioOf returns num/den, or a not-computable Ratio if den is zero.
// A zero denominator is an expected condition for unmeasured fields,
// not an error.
func RatioOf(num, den float64) Ratio {
	if den == 0 {
		return Ratio{}
	}
	return Ratio{value: num / den, ok: true}
}

// Valid reports whether r was computable.
func (r Ratio) Valid() bool { return r.ok }

// Float64 returns the quotient. It is only meaningful if r.Valid().
func (r Ratio) Float64() float64 { return r.value }

// String renders r the way the report tables do: "3.73x" when
// computable, "-" otherwise.
func (r Ratio) String() string {
	if !r.ok {
		return "-"
	}
	return fmt.Sprintf("%.2fx", r.value)
}

// MarshalJSON encodes r as a JSON number, or null when not
// computable.
func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.ok {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, r.value, 'g', -1, 64), nil
}

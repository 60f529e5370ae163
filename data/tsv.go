// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
)

// ReadTSV reads a tab-separated dataset from r. The first line names
// the columns. Rows shorter than the header are padded with empty
// cells; longer rows are an error. A column whose cells all parse as numbers (empty cells
// become NaN) is stored as []float64; any other column is stored as
// []string.
func ReadTSV(r io.Reader) (*Container, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.Comment = '#'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("data: empty input")
	} else if err != nil {
		return nil, fmt.Errorf("data: reading header: %w", err)
	}
	seen := make(map[string]bool, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("col%d", i+1)
		}
		if seen[name] {
			return nil, &ColumnError{name, "duplicate column"}
		}
		seen[name] = true
		header[i] = name
	}

	cols := make([][]string, len(header))
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("data: %w", err)
		}
		if len(rec) > len(header) {
			line, _ := cr.FieldPos(len(header))
			return nil, fmt.Errorf("data: line %d: %d fields, header has %d", line, len(rec), len(header))
		}
		// Short rows are padded with empty cells.
		for i := range cols {
			cell := ""
			if i < len(rec) {
				cell = strings.TrimSpace(rec[i])
			}
			cols[i] = append(cols[i], cell)
		}
	}

	b := new(table.Builder)
	for i, name := range header {
		if xs, ok := parseFloats(cols[i]); ok {
			b.Add(name, xs)
		} else {
			b.Add(name, cols[i])
		}
	}
	return New(b.Done())
}

func parseFloats(cells []string) ([]float64, bool) {
	xs := make([]float64, len(cells))
	numeric := false
	for i, cell := range cells {
		if cell == "" {
			xs[i] = math.NaN()
			continue
		}
		x, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, false
		}
		xs[i] = x
		numeric = true
	}
	return xs, numeric
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package data holds the datasets that scales are built from.
//
// A Container wraps a go-gg table. It is read-only: filtering returns
// a new Container.
package data

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
)

// ColumnError reports a missing or unusable column.
type ColumnError struct {
	Column string
	Reason string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("column %q: %s", e.Column, e.Reason)
}

// A Container is a read-only dataset snapshot.
type Container struct {
	t *table.Table
}

// New returns a Container for t.
func New(t *table.Table) (*Container, error) {
	if t == nil {
		return nil, errors.New("data: nil table")
	}
	return &Container{t}, nil
}

// Table returns the underlying table.
func (c *Container) Table() *table.Table {
	return c.t
}

// Len returns the number of rows.
func (c *Container) Len() int {
	return c.t.Len()
}

// Columns returns the column names in order.
func (c *Container) Columns() []string {
	return c.t.Columns()
}

// Has reports whether c has column col.
func (c *Container) Has(col string) bool {
	return c.t.Column(col) != nil
}

func (c *Container) column(col string) (table.Slice, error) {
	seq := c.t.Column(col)
	if seq == nil {
		return nil, &ColumnError{col, "no such column"}
	}
	return seq, nil
}

// Strings returns column col formatted as strings.
func (c *Container) Strings(col string) ([]string, error) {
	seq, err := c.column(col)
	if err != nil {
		return nil, err
	}
	if s, ok := seq.([]string); ok {
		return s, nil
	}
	return formatAll(seq), nil
}

// Floats returns column col converted to float64. The column must have
// a numeric element type.
func (c *Container) Floats(col string) (xs []float64, err error) {
	seq, err := c.column(col)
	if err != nil {
		return nil, err
	}
	switch reflect.TypeOf(seq).Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
	default:
		return nil, &ColumnError{col, fmt.Sprintf("%T is not numeric", seq)}
	}
	slice.Convert(&xs, seq)
	return xs, nil
}

// Unique returns the distinct values of column col in sorted order,
// formatted as strings.
func (c *Container) Unique(col string) ([]string, error) {
	seq, err := c.column(col)
	if err != nil {
		return nil, err
	}
	u := slice.NubAppend(seq)
	slice.Sort(u)
	if s, ok := u.([]string); ok {
		return s, nil
	}
	return formatAll(u), nil
}

// GroupMeans returns the mean of column valCol for each distinct value
// of column keyCol. NaN values are skipped; keys with no other values
// are omitted.
func (c *Container) GroupMeans(keyCol, valCol string) (map[string]float64, error) {
	keys, err := c.Strings(keyCol)
	if err != nil {
		return nil, err
	}
	vals, err := c.Floats(valCol)
	if err != nil {
		return nil, err
	}
	groups := make(map[string][]float64)
	for i, k := range keys {
		if math.IsNaN(vals[i]) {
			continue
		}
		groups[k] = append(groups[k], vals[i])
	}
	means := make(map[string]float64, len(groups))
	for k, xs := range groups {
		means[k] = stats.Mean(xs)
	}
	return means, nil
}

// filterCol is a scratch column used by Filter.
const filterCol = "\x00filter"

// Filter returns a Container with the rows whose col value, formatted
// as a string, satisfies keep.
func (c *Container) Filter(col string, keep func(string) bool) (*Container, error) {
	strs, err := c.Strings(col)
	if err != nil {
		return nil, err
	}
	t := table.NewBuilder(c.t).Add(filterCol, strs).Done()
	g := table.Filter(t, keep, filterCol)
	g = table.Remove(g, filterCol)
	return &Container{table.Flatten(g)}, nil
}

func formatAll(seq table.Slice) []string {
	v := reflect.ValueOf(seq)
	out := make([]string, v.Len())
	for i := range out {
		out[i] = format(v.Index(i).Interface())
	}
	return out
}

func format(x interface{}) string {
	switch x := x.(type) {
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(x)
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
)

const samples = `sample	chromosome	position	age	smoker
s1	X	100	61	yes
s2	1	2000	45	no
s3	X	350
s4	17	99	70	no
`

func readSamples(t *testing.T) *Container {
	t.Helper()
	c, err := ReadTSV(strings.NewReader(samples))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestReadTSV(t *testing.T) {
	c := readSamples(t)
	if c.Len() != 4 {
		t.Errorf("Len() = %d, want 4", c.Len())
	}
	want := []string{"sample", "chromosome", "position", "age", "smoker"}
	if got := c.Columns(); !reflect.DeepEqual(got, want) {
		t.Errorf("Columns() = %v, want %v", got, want)
	}

	// "chromosome" mixes numbers and names, so it stays a string
	// column.
	if _, ok := c.Table().Column("chromosome").([]string); !ok {
		t.Errorf("chromosome column has type %T, want []string", c.Table().Column("chromosome"))
	}
	pos, err := c.Floats("position")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(pos, []float64{100, 2000, 350, 99}) {
		t.Errorf("position = %v", pos)
	}
	age, err := c.Floats("age")
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(age[2]) {
		t.Errorf("empty age cell = %v, want NaN", age[2])
	}
	if _, err := c.Floats("smoker"); err == nil {
		t.Errorf("Floats(smoker) succeeded on a string column")
	}
}

func TestReadTSVErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"a\ta\n1\t2\n",
		"a\tb\n1\t2\t3\n",
	} {
		if _, err := ReadTSV(strings.NewReader(input)); err == nil {
			t.Errorf("ReadTSV(%q) succeeded", input)
		}
	}
}

func TestMissingColumn(t *testing.T) {
	c := readSamples(t)
	_, err := c.Strings("gene")
	var ce *ColumnError
	if !errors.As(err, &ce) || ce.Column != "gene" {
		t.Errorf("Strings(gene): got %v, want ColumnError", err)
	}
	if c.Has("gene") || !c.Has("age") {
		t.Errorf("Has reports the wrong columns")
	}
}

func TestUnique(t *testing.T) {
	c := readSamples(t)
	got, err := c.Unique("chromosome")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"1", "17", "X"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Unique(chromosome) = %v, want %v", got, want)
	}
	got, err = c.Unique("position")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"99", "100", "350", "2000"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Unique(position) = %v, want %v", got, want)
	}
}

func TestGroupMeans(t *testing.T) {
	c := readSamples(t)
	got, err := c.GroupMeans("chromosome", "age")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]float64{"X": 61, "1": 45, "17": 70}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GroupMeans = %v, want %v", got, want)
	}
}

func TestFilter(t *testing.T) {
	c := readSamples(t)
	x, err := c.Filter("chromosome", func(v string) bool { return v == "X" })
	if err != nil {
		t.Fatal(err)
	}
	if x.Len() != 2 {
		t.Fatalf("filtered Len() = %d, want 2", x.Len())
	}
	s, _ := x.Strings("sample")
	if !reflect.DeepEqual(s, []string{"s1", "s3"}) {
		t.Errorf("filtered samples = %v", s)
	}
	if x.Has(filterCol) {
		t.Errorf("filter scratch column leaked")
	}
	if c.Len() != 4 {
		t.Errorf("Filter modified the original container")
	}
}

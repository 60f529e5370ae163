// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/vdplots/go-vdp/data"
)

var (
	_ Scale = (*BinaryScale)(nil)
	_ Scale = (*CategoricalScale)(nil)
	_ Scale = (*ContinuousScale)(nil)
	_ Scale = (*GenomeScale)(nil)
)

// subsequence reports whether sub is a subsequence of seq.
func subsequence(sub, seq []string) bool {
	i := 0
	for _, x := range seq {
		if i < len(sub) && sub[i] == x {
			i++
		}
	}
	return i == len(sub)
}

func TestFilterIdempotentAllScales(t *testing.T) {
	cat, _ := NewCategoricalScale("c", "C", []string{"a", "b", "c", "d"})
	cont, _ := NewContinuousScale("x", "X", 0, 10)
	scales := []Scale{
		NewBinaryScale("b", "B"),
		cat,
		cont,
		NewGenomeScale("g", "G"),
	}
	filters := []Filter{
		All(),
		Exclude("a", "true", "1"),
		KeySet("b", "c", "false", "X", "x"),
		Window(2, 5e7),
		Where(func(k string) bool { return k != "d" }).And(Window(1, 9)),
	}
	for _, s := range scales {
		for fi, f := range filters {
			if err := s.ApplyFilter(f); err != nil {
				// Only the continuous scale can reject a
				// filter, and it must then be unchanged.
				var ede *EmptyDomainError
				if !errors.As(err, &ede) {
					t.Errorf("%s filter %d: %v", s.ID(), fi, err)
				}
				continue
			}
			k1 := s.FilteredKeys()
			s.ApplyFilter(f)
			k2 := s.FilteredKeys()
			if !reflect.DeepEqual(k1, k2) {
				t.Errorf("%s filter %d not idempotent: %v then %v", s.ID(), fi, k1, k2)
			}
			if !subsequence(k1, s.Keys()) {
				t.Errorf("%s filter %d: %v is not a subsequence of %v", s.ID(), fi, k1, s.Keys())
			}
		}
	}
}

func TestFilterAnd(t *testing.T) {
	f := Exclude("a").And(KeySet("a", "b", "c")).And(Window(0, 10)).And(Window(5, 20))
	for key, want := range map[string]bool{"a": false, "b": true, "c": true, "d": false} {
		if got := f.Keeps(key); got != want {
			t.Errorf("Keeps(%q) = %v, want %v", key, got, want)
		}
	}
	if iv, ok := f.Clip("b", Interval{0, 100}); !ok || iv != (Interval{5, 10}) {
		t.Errorf("Clip(b) = %v, %v; want [5, 10)", iv, ok)
	}
	g := Window(0, 10).Region("b", 8, 30).And(All().Region("b", 0, 9))
	if iv, ok := g.Clip("b", Interval{0, 100}); !ok || iv != (Interval{8, 9}) {
		t.Errorf("Clip with regions = %v, %v; want [8, 9)", iv, ok)
	}
	if _, ok := g.Clip("b", Interval{20, 30}); ok {
		t.Errorf("Clip outside window succeeded")
	}
}

func TestCategorical(t *testing.T) {
	c, err := NewCategoricalScale("tissue", "Tissue", []string{"lung", "breast", "skin", "colon"})
	if err != nil {
		t.Fatal(err)
	}
	updates := 0
	c.OnUpdate("legend", func() { updates++ })

	if x, _ := c.Map("breast"); x != 0.375 {
		t.Errorf("Map(breast) = %v, want 0.375", x)
	}
	c.ApplyFilter(Exclude("lung"))
	if got := c.DomainsFiltered(); !reflect.DeepEqual(got, []string{"breast", "skin", "colon"}) {
		t.Errorf("DomainsFiltered() = %v", got)
	}
	if x, _ := c.Map("breast"); math.Abs(x-1.0/6) > eps {
		t.Errorf("Map(breast) after filter = %v, want 1/6", x)
	}
	if _, err := c.Map("lung"); err == nil {
		t.Errorf("Map of hidden label succeeded")
	}
	if i, _ := c.Domain("lung"); i != 0 {
		t.Errorf("Domain(lung) = %d, want 0", i)
	}

	// Sorting reorders the filtered domain as well.
	c.Sort(func(a, b string) bool { return a < b })
	if got := c.Domains(); !reflect.DeepEqual(got, []string{"breast", "colon", "lung", "skin"}) {
		t.Errorf("sorted Domains() = %v", got)
	}
	if got := c.DomainsFiltered(); !reflect.DeepEqual(got, []string{"breast", "colon", "skin"}) {
		t.Errorf("sorted DomainsFiltered() = %v", got)
	}
	if i, _ := c.DomainFiltered("skin"); i != 2 {
		t.Errorf("DomainFiltered(skin) = %d, want 2", i)
	}

	c.SortByValues(map[string]float64{"skin": 3, "lung": 1, "colon": 2}, true)
	if got := c.Domains(); !reflect.DeepEqual(got, []string{"skin", "colon", "lung", "breast"}) {
		t.Errorf("SortByValues descending = %v", got)
	}
	c.SortByValues(map[string]float64{"skin": 3, "lung": 1, "colon": 2}, false)
	if got := c.Domains(); !reflect.DeepEqual(got, []string{"lung", "colon", "skin", "breast"}) {
		t.Errorf("SortByValues ascending = %v", got)
	}
	c.ResetOrder()
	if got := c.Domains(); !reflect.DeepEqual(got, []string{"lung", "breast", "skin", "colon"}) {
		t.Errorf("ResetOrder = %v", got)
	}
	before := updates
	c.ResetOrder()
	if updates != before {
		t.Errorf("ResetOrder with no change notified")
	}
	if updates != 5 {
		t.Errorf("got %d updates, want 5", updates)
	}

	if _, err := NewCategoricalScale("c", "C", []string{"a", "a"}); err == nil {
		t.Errorf("duplicate labels accepted")
	}
	var knf *KeyNotFoundError
	if _, err := c.Domain("bone"); !errors.As(err, &knf) {
		t.Errorf("Domain(bone): got %v, want KeyNotFoundError", err)
	}
}

const clinical = "patient\ttissue\tage\tdays\n" +
	"p1\tlung\t60\t100\n" +
	"p2\tskin\t40\t\n" +
	"p3\tlung\t80\t2500\n" +
	"p4\tbreast\t55\t730\n"

func TestScalesFromData(t *testing.T) {
	c, err := data.ReadTSV(strings.NewReader(clinical))
	if err != nil {
		t.Fatal(err)
	}
	cat, err := NewCategoricalScaleFromData("tissue", "Tissue", c, "tissue")
	if err != nil {
		t.Fatal(err)
	}
	if got := cat.Domains(); !reflect.DeepEqual(got, []string{"breast", "lung", "skin"}) {
		t.Errorf("tissue domain = %v", got)
	}

	days, err := NewContinuousScaleFromData("days", "Days", c, "days")
	if err != nil {
		t.Fatal(err)
	}
	if got := days.Domain(); got != (Interval{100, 2500}) {
		t.Errorf("days domain = %v", got)
	}

	if _, err := NewContinuousScaleFromData("t", "T", c, "tissue"); err == nil {
		t.Errorf("continuous scale from string column succeeded")
	}
	if _, err := NewCategoricalScaleFromData("t", "T", c, "stage"); err == nil {
		t.Errorf("categorical scale from missing column succeeded")
	}
}

func TestContinuous(t *testing.T) {
	s, err := NewContinuousScale("age", "Age", 20, 80)
	if err != nil {
		t.Fatal(err)
	}
	if x := s.Map(50); x != 0.5 {
		t.Errorf("Map(50) = %v, want 0.5", x)
	}
	if y := s.Unmap(0.25); y != 35 {
		t.Errorf("Unmap(0.25) = %v, want 35", y)
	}
	major, _ := s.Ticks(7)
	if len(major) == 0 || len(major) > 7 {
		t.Fatalf("Ticks(7) gave %d major ticks", len(major))
	}
	for _, x := range major {
		if x < 20 || x > 80 {
			t.Errorf("tick %v outside domain", x)
		}
	}
	if got := s.Breaks(4); !reflect.DeepEqual(got, []float64{20, 40, 60, 80}) {
		t.Errorf("Breaks(4) = %v", got)
	}

	updates := 0
	s.OnUpdate("axis", func() { updates++ })
	if err := s.ApplyFilter(Window(30, 100)); err != nil {
		t.Fatal(err)
	}
	if got := s.DomainFiltered(); got != (Interval{30, 80}) {
		t.Errorf("DomainFiltered() = %v", got)
	}
	if !s.IsFiltered() || updates != 1 {
		t.Errorf("IsFiltered %v, updates %d", s.IsFiltered(), updates)
	}

	// Rejected filters leave the scale alone.
	var ede *EmptyDomainError
	if err := s.ApplyFilter(Window(90, 100)); !errors.As(err, &ede) {
		t.Errorf("disjoint window: got %v, want EmptyDomainError", err)
	}
	if err := s.ApplyFilter(Exclude("age")); !errors.As(err, &ede) {
		t.Errorf("excluding the scale key: got %v, want EmptyDomainError", err)
	}
	if got := s.DomainFiltered(); got != (Interval{30, 80}) || updates != 1 {
		t.Errorf("failed filter changed the scale: %v, %d updates", got, updates)
	}

	if got := s.ToHuman("age", 61.25); got != "61.25" {
		t.Errorf("ToHuman = %q", got)
	}
	s.SetFormatter(func(x float64) string { return "~" + strconv.Itoa(int(x)) })
	if got := s.ToHuman("age", 61.25); got != "~61" {
		t.Errorf("ToHuman with formatter = %q", got)
	}

	if _, err := NewContinuousScale("bad", "Bad", 1, 1); err == nil {
		t.Errorf("empty continuous domain accepted")
	}
}

func TestBinary(t *testing.T) {
	s, err := NewBinaryScaleLabels("smoker", "Smoker", "no", "yes")
	if err != nil {
		t.Fatal(err)
	}
	if x, _ := s.Map(true); x != 0.75 {
		t.Errorf("Map(true) = %v, want 0.75", x)
	}
	if v, _ := s.Domain("yes"); !v {
		t.Errorf("Domain(yes) = false")
	}
	if got := s.ToHuman("", false); got != "no" {
		t.Errorf("ToHuman(false) = %q", got)
	}
	s.ApplyFilter(KeySet("yes"))
	if got := s.DomainsFiltered(); !reflect.DeepEqual(got, []bool{true}) {
		t.Errorf("DomainsFiltered() = %v", got)
	}
	if x, _ := s.Map(true); x != 0.5 {
		t.Errorf("Map(true) after filter = %v, want 0.5", x)
	}
	if _, err := s.Map(false); err == nil {
		t.Errorf("Map of hidden value succeeded")
	}
	if _, err := s.DomainFiltered("no"); err == nil {
		t.Errorf("DomainFiltered of hidden value succeeded")
	}
	if _, err := NewBinaryScaleLabels("b", "B", "x", "x"); err == nil {
		t.Errorf("identical labels accepted")
	}
}

func TestUpdateCallbacks(t *testing.T) {
	g := NewGenomeScale("genome", "Genome")
	var order []string
	g.OnUpdate("axis", func() { order = append(order, "axis") })
	g.OnUpdate("plot", func() { panic("render failed") })
	g.OnUpdate("legend", func() { order = append(order, "legend") })
	g.ApplyFilter(Exclude("M"))
	g.OnUpdate("axis", nil)
	g.EmitUpdate()
	if want := []string{"axis", "legend", "legend"}; !reflect.DeepEqual(order, want) {
		t.Errorf("callbacks ran %v, want %v", order, want)
	}
}

func TestCheckFilter(t *testing.T) {
	s, _ := NewContinuousScale("age", "Age", 20, 80)
	updates := 0
	s.OnUpdate("axis", func() { updates++ })
	var ede *EmptyDomainError
	if err := CheckFilter(s, Window(90, 100)); !errors.As(err, &ede) {
		t.Errorf("CheckFilter(disjoint window): got %v, want EmptyDomainError", err)
	}
	if err := CheckFilter(s, Window(30, 40)); err != nil {
		t.Errorf("CheckFilter(overlapping window): %v", err)
	}
	if s.IsFiltered() || updates != 0 {
		t.Errorf("CheckFilter changed the scale")
	}
	if err := CheckFilter(NewGenomeScale("g", "G"), KeySet()); err != nil {
		t.Errorf("CheckFilter on genome scale: %v", err)
	}
}

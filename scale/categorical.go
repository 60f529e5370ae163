// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"sort"

	"github.com/vdplots/go-vdp/data"
)

// CategoricalScale is a scale over an ordered set of labels.
//
// The order of the labels can be changed with Sort. The filtered
// domain always follows the current order.
type CategoricalScale struct {
	base
	keyed
	initial []string
}

// NewCategoricalScale returns a categorical scale over domain, in the
// given order. Labels must be distinct.
func NewCategoricalScale(id, name string, domain []string) (*CategoricalScale, error) {
	k, err := newKeyed(id, domain)
	if err != nil {
		return nil, err
	}
	return &CategoricalScale{
		base:    base{id: id, name: name},
		keyed:   k,
		initial: k.Keys(),
	}, nil
}

// NewCategoricalScaleFromData returns a categorical scale over the
// distinct values of column col of c, in sorted order.
func NewCategoricalScaleFromData(id, name string, c *data.Container, col string) (*CategoricalScale, error) {
	domain, err := c.Unique(col)
	if err != nil {
		return nil, fmt.Errorf("scale %s: %w", id, err)
	}
	return NewCategoricalScale(id, name, domain)
}

// Domain returns the position of key in the full domain.
func (s *CategoricalScale) Domain(key string) (int, error) {
	return s.index(s.id, key)
}

// DomainFiltered returns the position of key in the filtered domain.
func (s *CategoricalScale) DomainFiltered(key string) (int, error) {
	return s.indexFiltered(s.id, key)
}

// Domains returns the labels of the full domain in order.
func (s *CategoricalScale) Domains() []string {
	return s.Keys()
}

// DomainsFiltered returns the labels of the filtered domain in order.
func (s *CategoricalScale) DomainsFiltered() []string {
	return s.FilteredKeys()
}

// ApplyFilter restricts the domain to the labels f keeps.
func (s *CategoricalScale) ApplyFilter(f Filter) error {
	s.filter = f
	if s.refilter() {
		s.EmitUpdate()
	}
	return nil
}

// Map returns the centre of key's band in [0, 1] when the range is
// split evenly among the filtered labels.
func (s *CategoricalScale) Map(key string) (float64, error) {
	return s.band(s.id, key)
}

// Sort reorders the domain with a stable sort by less.
func (s *CategoricalScale) Sort(less func(a, b string) bool) {
	keys := s.Keys()
	sort.SliceStable(keys, func(i, j int) bool { return less(keys[i], keys[j]) })
	if s.reorder(keys) {
		s.EmitUpdate()
	}
}

// SortByValues orders the domain by values, ascending or descending.
// Labels without a value go last, in their original order. Ties keep
// the original order.
func (s *CategoricalScale) SortByValues(values map[string]float64, descending bool) {
	rank := make(map[string]int, len(s.initial))
	for i, key := range s.initial {
		rank[key] = i
	}
	keys := append([]string(nil), s.initial...)
	sort.SliceStable(keys, func(i, j int) bool {
		a, aok := values[keys[i]]
		b, bok := values[keys[j]]
		switch {
		case aok && !bok:
			return true
		case !aok:
			return false
		case a == b:
			return rank[keys[i]] < rank[keys[j]]
		case descending:
			return a > b
		}
		return a < b
	})
	if s.reorder(keys) {
		s.EmitUpdate()
	}
}

// ResetOrder restores the order the scale was created with.
func (s *CategoricalScale) ResetOrder() {
	if s.reorder(append([]string(nil), s.initial...)) {
		s.EmitUpdate()
	}
}

// ToHuman returns value formatted with fmt.Sprint, or the label key if
// value is nil.
func (s *CategoricalScale) ToHuman(key string, value interface{}) string {
	if value == nil {
		return key
	}
	return fmt.Sprint(value)
}

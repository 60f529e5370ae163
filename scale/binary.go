// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "fmt"

// BinaryScale is a scale over the two values false and true. Each value
// has a label, which is its domain key.
type BinaryScale struct {
	base
	keyed
}

// NewBinaryScale returns a binary scale with keys "false" and "true".
func NewBinaryScale(id, name string) *BinaryScale {
	s, err := NewBinaryScaleLabels(id, name, "false", "true")
	if err != nil {
		panic(err)
	}
	return s
}

// NewBinaryScaleLabels returns a binary scale whose false and true
// values are labeled f and t.
func NewBinaryScaleLabels(id, name, f, t string) (*BinaryScale, error) {
	k, err := newKeyed(id, []string{f, t})
	if err != nil {
		return nil, err
	}
	return &BinaryScale{base: base{id: id, name: name}, keyed: k}, nil
}

// Domain returns the value labeled key.
func (s *BinaryScale) Domain(key string) (bool, error) {
	i, err := s.index(s.id, key)
	return i == 1, err
}

// DomainFiltered returns the value labeled key if it is in the filtered
// domain.
func (s *BinaryScale) DomainFiltered(key string) (bool, error) {
	if _, err := s.indexFiltered(s.id, key); err != nil {
		return false, err
	}
	return s.Domain(key)
}

// Domains returns the full domain, {false, true}.
func (s *BinaryScale) Domains() []bool {
	return []bool{false, true}
}

// DomainsFiltered returns the values in the filtered domain.
func (s *BinaryScale) DomainsFiltered() []bool {
	out := make([]bool, 0, 2)
	for _, key := range s.filtered {
		out = append(out, s.pos[key] == 1)
	}
	return out
}

// Label returns the key of v.
func (s *BinaryScale) Label(v bool) string {
	if v {
		return s.keys[1]
	}
	return s.keys[0]
}

// ApplyFilter restricts the domain to the labels f keeps.
func (s *BinaryScale) ApplyFilter(f Filter) error {
	s.filter = f
	if s.refilter() {
		s.EmitUpdate()
	}
	return nil
}

// Map returns the centre of v's band in [0, 1] over the filtered
// domain.
func (s *BinaryScale) Map(v bool) (float64, error) {
	return s.band(s.id, s.Label(v))
}

// ToHuman returns the label of value, which may be a bool or a label.
func (s *BinaryScale) ToHuman(key string, value interface{}) string {
	switch v := value.(type) {
	case bool:
		return s.Label(v)
	case nil:
		return key
	}
	return fmt.Sprint(value)
}

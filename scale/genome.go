// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	mscale "github.com/aclements/go-moremath/scale"
)

// GenomeScale is a scale over genomic coordinates. Its keys are
// chromosome names and each chromosome's domain is the interval
// [0, length) of base-pair positions.
//
// Chromosome lookups accept names with a "chr" prefix.
type GenomeScale struct {
	base
	keyed
	assembly Assembly
	domains  []Interval
	fdomains []Interval
}

// NewGenomeScale returns a genome scale over GRCh37.
func NewGenomeScale(id, name string) *GenomeScale {
	s, err := NewGenomeScaleFor(id, name, GRCh37)
	if err != nil {
		panic(err)
	}
	return s
}

// NewGenomeScaleFor returns a genome scale over assembly a.
func NewGenomeScaleFor(id, name string, a Assembly) (*GenomeScale, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("scale %s: %w", id, err)
	}
	names := make([]string, len(a.Chromosomes))
	domains := make([]Interval, len(a.Chromosomes))
	for i, c := range a.Chromosomes {
		names[i] = c.Name
		domains[i] = Interval{0, float64(c.Length)}
	}
	k, err := newKeyed(id, names)
	if err != nil {
		return nil, err
	}
	return &GenomeScale{
		base:     base{id: id, name: name},
		keyed:    k,
		assembly: a,
		domains:  domains,
		fdomains: append([]Interval(nil), domains...),
	}, nil
}

// Assembly returns the reference assembly of s.
func (s *GenomeScale) Assembly() Assembly {
	return s.assembly
}

// Chromosomes returns the chromosome names in order.
func (s *GenomeScale) Chromosomes() []string {
	return s.Keys()
}

// ChromosomesFiltered returns the visible chromosome names in order.
func (s *GenomeScale) ChromosomesFiltered() []string {
	return s.FilteredKeys()
}

// IsFiltered reports whether any chromosome is hidden or clipped.
func (s *GenomeScale) IsFiltered() bool {
	if s.keyed.IsFiltered() {
		return true
	}
	for i, iv := range s.fdomains {
		if iv != s.domains[i] {
			return true
		}
	}
	return false
}

// Domain returns the full interval of chromosome chrom.
func (s *GenomeScale) Domain(chrom string) (Interval, error) {
	i, err := s.index(s.id, NormalizeChromosome(chrom))
	if err != nil {
		return Interval{}, err
	}
	return s.domains[i], nil
}

// Domains returns the full intervals of all chromosomes, in order.
func (s *GenomeScale) Domains() []Interval {
	return append([]Interval(nil), s.domains...)
}

// DomainFiltered returns the visible interval of chromosome chrom.
func (s *GenomeScale) DomainFiltered(chrom string) (Interval, error) {
	i, err := s.indexFiltered(s.id, NormalizeChromosome(chrom))
	if err != nil {
		return Interval{}, err
	}
	return s.fdomains[i], nil
}

// DomainsFiltered returns the visible intervals, parallel to
// ChromosomesFiltered.
func (s *GenomeScale) DomainsFiltered() []Interval {
	return append([]Interval(nil), s.fdomains...)
}

// ApplyFilter restricts the scale to the chromosomes f keeps and clips
// their intervals by f's windows. Chromosomes left with an empty
// interval are hidden. Chromosome names in f may carry a "chr" prefix.
func (s *GenomeScale) ApplyFilter(f Filter) error {
	f = f.Normalize(NormalizeChromosome)
	var names []string
	var ivs []Interval
	for i, name := range s.keys {
		if iv, ok := f.Clip(name, s.domains[i]); ok {
			names = append(names, name)
			ivs = append(ivs, iv)
		}
	}
	keep := make(map[string]bool, len(names))
	for _, name := range names {
		keep[name] = true
	}

	s.filter = Where(func(key string) bool { return keep[key] })
	keysChanged := s.refilter()
	if !keysChanged && equalIntervals(ivs, s.fdomains) {
		return nil
	}
	s.fdomains = ivs
	s.EmitUpdate()
	return nil
}

// ChromosomeRatios returns each chromosome's share of the total length
// of the full domain.
func (s *GenomeScale) ChromosomeRatios() ([]float64, error) {
	return s.ratios(s.domains)
}

// ChromosomeRatiosFiltered returns each visible chromosome's share of
// the total visible length, parallel to ChromosomesFiltered.
func (s *GenomeScale) ChromosomeRatiosFiltered() ([]float64, error) {
	return s.ratios(s.fdomains)
}

func (s *GenomeScale) ratios(ivs []Interval) ([]float64, error) {
	var total float64
	for _, iv := range ivs {
		total += iv.Len()
	}
	if total == 0 {
		return nil, &EmptyDomainError{s.id}
	}
	out := make([]float64, len(ivs))
	for i, iv := range ivs {
		out[i] = iv.Len() / total
	}
	return out, nil
}

// Map returns the genome-wide position of pos on chromosome chrom in
// [0, 1]. Visible chromosomes are laid end to end in order, each
// taking its share of the range given by ChromosomeRatiosFiltered.
//
// pos must lie in the chromosome's filtered interval; its end is
// accepted so the last base maps to the end of the band. Other
// positions are an OutOfRangeError.
func (s *GenomeScale) Map(chrom string, pos float64) (float64, error) {
	chrom = NormalizeChromosome(chrom)
	i, err := s.indexFiltered(s.id, chrom)
	if err != nil {
		return 0, err
	}
	if iv := s.fdomains[i]; !(iv.Lo <= pos && pos <= iv.Hi) {
		return 0, &OutOfRangeError{s.id, chrom, pos, iv}
	}
	ratios, err := s.ChromosomeRatiosFiltered()
	if err != nil {
		return 0, err
	}
	var offset float64
	for _, r := range ratios[:i] {
		offset += r
	}
	iv := s.fdomains[i]
	within := mscale.Linear{Min: iv.Lo, Max: iv.Hi}.Map(pos)
	return offset + ratios[i]*within, nil
}

// ToHuman formats a chromosome position as "chr<chrom>:<pos>", with
// the position grouped in thousands.
func (s *GenomeScale) ToHuman(chrom string, value interface{}) string {
	chrom = NormalizeChromosome(chrom)
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "chr" + chrom + ":" + groupThousands(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "chr" + chrom + ":" + groupThousands(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		x := v.Float()
		if x == math.Trunc(x) && math.Abs(x) < 1<<53 {
			return "chr" + chrom + ":" + groupThousands(strconv.FormatInt(int64(x), 10))
		}
		return "chr" + chrom + ":" + strconv.FormatFloat(x, 'f', -1, 64)
	case reflect.Invalid:
		return "chr" + chrom
	}
	return fmt.Sprintf("chr%s:%v", chrom, value)
}

// groupThousands inserts commas into a decimal integer string.
func groupThousands(digits string) string {
	sign := ""
	if digits != "" && digits[0] == '-' {
		sign, digits = "-", digits[1:]
	}
	if len(digits) <= 3 {
		return sign + digits
	}
	out := make([]byte, 0, len(digits)+len(digits)/3)
	first := len(digits) % 3
	if first == 0 {
		first = 3
	}
	out = append(out, digits[:first]...)
	for i := first; i < len(digits); i += 3 {
		out = append(out, ',')
		out = append(out, digits[i:i+3]...)
	}
	return sign + string(out)
}

func equalIntervals(a, b []Interval) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

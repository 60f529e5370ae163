// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"math"
	"reflect"

	mscale "github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"github.com/vdplots/go-vdp/data"
)

// ContinuousScale is a scale over a numeric interval.
//
// Its only key is the scale ID. Filters restrict it through their
// windows; a filter that drops the ID, or whose windows miss the
// domain, is an EmptyDomainError.
type ContinuousScale struct {
	base
	domain   Interval
	filtered Interval
	format   func(float64) string
}

// NewContinuousScale returns a continuous scale over [lo, hi].
func NewContinuousScale(id, name string, lo, hi float64) (*ContinuousScale, error) {
	iv := Interval{lo, hi}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || iv.Empty() {
		return nil, fmt.Errorf("scale %s: bad domain %v", id, iv)
	}
	return &ContinuousScale{
		base:     base{id: id, name: name},
		domain:   iv,
		filtered: iv,
	}, nil
}

// NewContinuousScaleFromData returns a continuous scale over the range
// of the finite values in column col of c. If the column holds a
// single distinct value v, the domain is [v-0.5, v+0.5].
func NewContinuousScaleFromData(id, name string, c *data.Container, col string) (*ContinuousScale, error) {
	xs, err := c.Floats(col)
	if err != nil {
		return nil, fmt.Errorf("scale %s: %w", id, err)
	}
	finite := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			finite = append(finite, x)
		}
	}
	if len(finite) == 0 {
		return nil, &EmptyDomainError{id}
	}
	lo, hi := stats.Bounds(finite)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	return NewContinuousScale(id, name, lo, hi)
}

// SetFormatter sets the function ToHuman uses to format values. A nil
// f restores the default %.6g format.
func (s *ContinuousScale) SetFormatter(f func(float64) string) {
	s.format = f
}

// Keys returns the single key of the scale, its ID.
func (s *ContinuousScale) Keys() []string {
	return []string{s.id}
}

// FilteredKeys returns the single key of the scale, its ID.
func (s *ContinuousScale) FilteredKeys() []string {
	return []string{s.id}
}

// IsFiltered reports whether the filtered interval is narrower than
// the domain.
func (s *ContinuousScale) IsFiltered() bool {
	return s.filtered != s.domain
}

// Domain returns the full interval.
func (s *ContinuousScale) Domain() Interval {
	return s.domain
}

// DomainFiltered returns the filtered interval.
func (s *ContinuousScale) DomainFiltered() Interval {
	return s.filtered
}

// CheckFilter reports the error ApplyFilter(f) would return, without
// changing the scale.
func (s *ContinuousScale) CheckFilter(f Filter) error {
	_, err := s.clip(f)
	return err
}

func (s *ContinuousScale) clip(f Filter) (Interval, error) {
	iv, ok := f.Clip(s.id, s.domain)
	if !ok {
		return Interval{}, &EmptyDomainError{s.id}
	}
	return iv, nil
}

// ApplyFilter clips the domain by f's windows.
func (s *ContinuousScale) ApplyFilter(f Filter) error {
	iv, err := s.clip(f)
	if err != nil {
		return err
	}
	if iv == s.filtered {
		return nil
	}
	s.filtered = iv
	s.EmitUpdate()
	return nil
}

func (s *ContinuousScale) linear() mscale.Linear {
	return mscale.Linear{Min: s.filtered.Lo, Max: s.filtered.Hi}
}

// Map maps x from the filtered interval onto [0, 1]. Values outside
// the interval map outside [0, 1].
func (s *ContinuousScale) Map(x float64) float64 {
	return s.linear().Map(x)
}

// Unmap is the inverse of Map.
func (s *ContinuousScale) Unmap(y float64) float64 {
	return s.filtered.Lo + y*s.filtered.Len()
}

// Ticks returns at most max major ticks over the filtered interval,
// and the minor ticks between them.
func (s *ContinuousScale) Ticks(max int) (major, minor []float64) {
	return s.linear().Ticks(mscale.TickOptions{Max: max})
}

// Breaks returns n evenly spaced values spanning the filtered
// interval, including both ends.
func (s *ContinuousScale) Breaks(n int) []float64 {
	if n < 2 {
		return nil
	}
	return vec.Linspace(s.filtered.Lo, s.filtered.Hi, n)
}

// ToHuman formats value, which must be numeric.
func (s *ContinuousScale) ToHuman(key string, value interface{}) string {
	v := reflect.ValueOf(value)
	var x float64
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		x = v.Float()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		x = float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		x = float64(v.Uint())
	default:
		return fmt.Sprint(value)
	}
	if s.format != nil {
		return s.format(x)
	}
	return fmt.Sprintf("%.6g", x)
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// A Filter selects the part of a scale's domain that stays visible.
//
// A Filter has two parts: a key predicate, which decides which domain
// keys are kept, and numeric windows, which clip the intervals of
// interval-valued domains. A key whose clipped interval is empty is
// dropped.
//
// The zero Filter keeps the whole domain.
type Filter struct {
	keep    predicate
	window  *Interval
	regions map[string]Interval
}

// A predicate builds a key test. norm canonicalizes the keys named by
// the filter itself, so that a scale with aliased keys (such as "chrX"
// for "X") can match them against its own key names.
type predicate func(norm func(string) string) func(key string) bool

func identity(key string) string { return key }

func keySet(norm func(string) string, keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[norm(k)] = true
	}
	return set
}

// All returns a Filter that keeps the whole domain.
func All() Filter {
	return Filter{}
}

// KeySet returns a Filter that keeps exactly the given keys.
func KeySet(keys ...string) Filter {
	keys = append([]string(nil), keys...)
	return Filter{keep: func(norm func(string) string) func(string) bool {
		set := keySet(norm, keys)
		return func(key string) bool { return set[key] }
	}}
}

// Exclude returns a Filter that keeps every key except the given keys.
func Exclude(keys ...string) Filter {
	if len(keys) == 0 {
		return All()
	}
	keys = append([]string(nil), keys...)
	return Filter{keep: func(norm func(string) string) func(string) bool {
		set := keySet(norm, keys)
		return func(key string) bool { return !set[key] }
	}}
}

// Where returns a Filter that keeps the keys for which fn returns true.
func Where(fn func(key string) bool) Filter {
	return Filter{keep: func(func(string) string) func(string) bool { return fn }}
}

// Window returns a Filter that clips every interval to [lo, hi).
func Window(lo, hi float64) Filter {
	return Filter{window: &Interval{lo, hi}}
}

// Region returns a copy of f that additionally clips the interval of
// key to [lo, hi).
func (f Filter) Region(key string, lo, hi float64) Filter {
	regions := make(map[string]Interval, len(f.regions)+1)
	for k, iv := range f.regions {
		regions[k] = iv
	}
	iv := Interval{lo, hi}
	if old, ok := regions[key]; ok {
		iv, _ = old.Intersect(iv)
	}
	regions[key] = iv
	f.regions = regions
	return f
}

// And returns a Filter that keeps only what both f and g keep.
func (f Filter) And(g Filter) Filter {
	out := f
	switch {
	case f.keep == nil:
		out.keep = g.keep
	case g.keep != nil:
		out.keep = func(norm func(string) string) func(string) bool {
			a, b := f.keep(norm), g.keep(norm)
			return func(key string) bool { return a(key) && b(key) }
		}
	}
	switch {
	case f.window == nil:
		out.window = g.window
	case g.window != nil:
		w, _ := f.window.Intersect(*g.window)
		out.window = &w
	}
	for k, iv := range g.regions {
		out = out.Region(k, iv.Lo, iv.Hi)
	}
	return out
}

// Keeps reports whether f keeps key.
func (f Filter) Keeps(key string) bool {
	return f.keep == nil || f.keep(identity)(key)
}

// Normalize returns f with the keys it names (in KeySet, Exclude and
// Region) passed through norm. A scale whose lookups accept aliases of
// its keys normalizes a filter before applying it. Where predicates
// see the scale's own keys and are not affected.
func (f Filter) Normalize(norm func(string) string) Filter {
	out := Filter{window: f.window}
	if f.keep != nil {
		keep := f.keep(norm)
		out.keep = func(func(string) string) func(string) bool { return keep }
	}
	for k, iv := range f.regions {
		out = out.Region(norm(k), iv.Lo, iv.Hi)
	}
	return out
}

// Clip restricts the interval iv of key by f's windows. It returns
// false if key is not kept or nothing of iv remains.
func (f Filter) Clip(key string, iv Interval) (Interval, bool) {
	if !f.Keeps(key) {
		return Interval{}, false
	}
	if f.window != nil {
		var ok bool
		if iv, ok = iv.Intersect(*f.window); !ok {
			return Interval{}, false
		}
	}
	if r, ok := f.regions[key]; ok {
		if iv, ok = iv.Intersect(r); !ok {
			return Interval{}, false
		}
	}
	return iv, true
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale maps data domains onto normalized visual ranges.
//
// Every scale has a full domain, fixed at construction, and a filtered
// domain, the part of the full domain currently shown. The filtered
// domain is always a restriction of the full domain: its keys are a
// subsequence of the full keys and its intervals lie inside the full
// intervals. ApplyFilter always restricts the full domain, so applying
// the same Filter twice gives the same result.
//
// Scales notify subscribers with OnUpdate callbacks when their filtered
// domain or order changes. Callbacks carry no data; they re-read the
// scale.
package scale

import (
	"fmt"

	"github.com/vdplots/go-vdp/internal/notify"
)

// Scale is the contract shared by all scales.
type Scale interface {
	// ID returns the stable identifier of the scale.
	ID() string

	// Name returns the display label of the scale.
	Name() string

	// Keys returns the keys of the full domain in domain order.
	Keys() []string

	// FilteredKeys returns the keys of the filtered domain. It is
	// a subsequence of Keys.
	FilteredKeys() []string

	// IsFiltered reports whether the filtered domain differs from
	// the full domain.
	IsFiltered() bool

	// ApplyFilter recomputes the filtered domain as the
	// restriction of the full domain by f. It notifies
	// subscribers if the filtered domain changed. On error the
	// scale is unchanged.
	ApplyFilter(f Filter) error

	// ToHuman formats a domain value for display.
	ToHuman(key string, value interface{}) string

	// OnUpdate registers fn to be called on updates. Registering
	// again under the same componentID replaces the callback; a
	// nil fn removes it.
	OnUpdate(componentID string, fn func())

	// EmitUpdate calls every update callback.
	EmitUpdate()
}

// CheckFilter reports the error s.ApplyFilter(f) would return, without
// changing s. Scales that cannot reject a filter need not implement a
// CheckFilter method; for them CheckFilter returns nil.
func CheckFilter(s Scale, f Filter) error {
	if c, ok := s.(interface{ CheckFilter(Filter) error }); ok {
		return c.CheckFilter(f)
	}
	return nil
}

// KeyNotFoundError reports a domain lookup of a key that is not in the
// relevant key set.
type KeyNotFoundError struct {
	Scale string
	Key   string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("scale %s: key %q not in domain", e.Scale, e.Key)
}

// OutOfRangeError reports a value outside the filtered interval of a
// key.
type OutOfRangeError struct {
	Scale    string
	Key      string
	Value    float64
	Interval Interval
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("scale %s: %g outside %s of key %q", e.Scale, e.Value, e.Interval, e.Key)
}

// EmptyDomainError reports a computation over an empty domain.
type EmptyDomainError struct {
	Scale string
}

func (e *EmptyDomainError) Error() string {
	return fmt.Sprintf("scale %s: domain is empty", e.Scale)
}

// base holds the identity and subscribers common to all scales.
type base struct {
	id, name string
	subs     notify.Registry
}

func (b *base) ID() string   { return b.id }
func (b *base) Name() string { return b.name }

func (b *base) OnUpdate(componentID string, fn func()) {
	b.subs.On(componentID, fn)
}

func (b *base) EmitUpdate() {
	b.subs.Call()
}

// keyed is a domain of distinct string keys with a filtered
// subsequence.
type keyed struct {
	keys     []string
	pos      map[string]int
	filtered []string
	fpos     map[string]int
	filter   Filter
}

func newKeyed(scale string, keys []string) (keyed, error) {
	k := keyed{
		keys: append([]string(nil), keys...),
		pos:  make(map[string]int, len(keys)),
	}
	for i, key := range k.keys {
		if _, dup := k.pos[key]; dup {
			return keyed{}, fmt.Errorf("scale %s: duplicate domain key %q", scale, key)
		}
		k.pos[key] = i
	}
	k.refilter()
	return k, nil
}

// refilter recomputes the filtered keys from the current filter and
// order. It reports whether they changed.
func (k *keyed) refilter() bool {
	var filtered []string
	f := k.filter.Normalize(identity)
	for _, key := range k.keys {
		if f.Keeps(key) {
			filtered = append(filtered, key)
		}
	}
	if equalStrings(filtered, k.filtered) && k.fpos != nil {
		return false
	}
	k.filtered = filtered
	k.fpos = make(map[string]int, len(filtered))
	for i, key := range filtered {
		k.fpos[key] = i
	}
	return true
}

// reorder replaces the key order with keys, a permutation of k.keys.
func (k *keyed) reorder(keys []string) bool {
	if equalStrings(keys, k.keys) {
		return false
	}
	k.keys = keys
	for i, key := range keys {
		k.pos[key] = i
	}
	k.refilter()
	return true
}

func (k *keyed) index(scale, key string) (int, error) {
	i, ok := k.pos[key]
	if !ok {
		return 0, &KeyNotFoundError{scale, key}
	}
	return i, nil
}

func (k *keyed) indexFiltered(scale, key string) (int, error) {
	i, ok := k.fpos[key]
	if !ok {
		return 0, &KeyNotFoundError{scale, key}
	}
	return i, nil
}

// band returns the centre of key's band when [0, 1] is split evenly
// among the filtered keys.
func (k *keyed) band(scale, key string) (float64, error) {
	i, err := k.indexFiltered(scale, key)
	if err != nil {
		return 0, err
	}
	return (float64(i) + 0.5) / float64(len(k.filtered)), nil
}

func (k *keyed) Keys() []string {
	return append([]string(nil), k.keys...)
}

func (k *keyed) FilteredKeys() []string {
	return append([]string(nil), k.filtered...)
}

func (k *keyed) IsFiltered() bool {
	return len(k.filtered) != len(k.keys)
}

func equalStrings(a, b []string) bool {
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

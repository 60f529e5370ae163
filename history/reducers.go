// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package history

import "sort"

// A Reducer derives a computed parameter from the event log.
//
// Init returns the value of the parameter before any event. Step
// returns the value after folding e into acc. Step must be pure: it
// must not modify acc or anything reachable from it, since earlier
// values are handed out to subscribers.
type Reducer struct {
	Init func() interface{}
	Step func(acc interface{}, e *Event) interface{}
}

// SortState is the value of the "sort" parameter. The zero value means
// unsorted.
type SortState struct {
	Scale      string
	By         string
	Descending bool
}

// FilterState is the value of the "filter" parameter. It maps a scale
// ID to the sorted set of keys hidden on that scale.
type FilterState map[string][]string

// Viewport is the value of the "viewport" parameter. It maps a scale ID
// to its zoom window [lo, hi).
type Viewport map[string][2]float64

// StandardReducers returns the reducers for the standard parameters:
// sort, filter, selection and viewport.
func StandardReducers() map[string]Reducer {
	return map[string]Reducer{
		ParamSort:      {Init: func() interface{} { return SortState{} }, Step: stepSort},
		ParamFilter:    {Init: func() interface{} { return FilterState{} }, Step: stepFilter},
		ParamSelection: {Init: func() interface{} { return []string{} }, Step: stepSelection},
		ParamViewport:  {Init: func() interface{} { return Viewport{} }, Step: stepViewport},
	}
}

func stepSort(acc interface{}, e *Event) interface{} {
	if e.Type() != Sort {
		return acc
	}
	p, _ := e.Payload().(SortPayload)
	switch e.Subtype() {
	case SortAscending:
		return SortState{Scale: p.Scale, By: p.By}
	case SortDescending:
		return SortState{Scale: p.Scale, By: p.By, Descending: true}
	}
	return acc
}

func stepFilter(acc interface{}, e *Event) interface{} {
	if e.Type() != Filter {
		return acc
	}
	p, ok := e.Payload().(FilterPayload)
	if !ok {
		return acc
	}
	old := acc.(FilterState)
	hidden := old[p.Scale]
	switch e.Subtype() {
	case FilterHide:
		hidden = union(hidden, p.Keys)
	case FilterShow:
		hidden = minus(hidden, p.Keys)
	default:
		return acc
	}

	next := make(FilterState, len(old)+1)
	for k, v := range old {
		next[k] = v
	}
	if len(hidden) == 0 {
		delete(next, p.Scale)
	} else {
		next[p.Scale] = hidden
	}
	return next
}

func stepSelection(acc interface{}, e *Event) interface{} {
	if e.Type() != Select {
		return acc
	}
	p, _ := e.Payload().(SelectPayload)
	sel := acc.([]string)
	switch e.Subtype() {
	case SelectAdd:
		return union(sel, p.Keys)
	case SelectRemove:
		return minus(sel, p.Keys)
	}
	return acc
}

func stepViewport(acc interface{}, e *Event) interface{} {
	if e.Kind() != (Kind{Navigate, NavigateZoom}) {
		return acc
	}
	p := e.Payload().(NavigatePayload)
	old := acc.(Viewport)
	next := make(Viewport, len(old)+1)
	for k, v := range old {
		next[k] = v
	}
	next[p.Scale] = [2]float64{p.Lo, p.Hi}
	return next
}

// union returns the sorted union of a and b as a new slice.
func union(a, b []string) []string {
	set := make(map[string]bool, len(a)+len(b))
	for _, x := range a {
		set[x] = true
	}
	for _, x := range b {
		set[x] = true
	}
	return sortedKeys(set)
}

// minus returns the sorted elements of a not in b as a new slice.
func minus(a, b []string) []string {
	set := make(map[string]bool, len(a))
	for _, x := range a {
		set[x] = true
	}
	for _, x := range b {
		delete(set, x)
	}
	return sortedKeys(set)
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for x := range set {
		out = append(out, x)
	}
	sort.Strings(out)
	return out
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package history

import "sort"

// A Type is the coarse category of a user interaction.
type Type string

// A Subtype is a fine-grained action within a Type.
type Subtype string

const (
	Sort     Type = "sort"
	Filter   Type = "filter"
	Select   Type = "select"
	Navigate Type = "navigate"
)

const (
	SortAscending  Subtype = "ascending"
	SortDescending Subtype = "descending"
	SortReset      Subtype = "reset"

	FilterHide  Subtype = "hide"
	FilterShow  Subtype = "show"
	FilterReset Subtype = "reset"

	SelectAdd    Subtype = "add"
	SelectRemove Subtype = "remove"
	SelectClear  Subtype = "clear"

	NavigateZoom  Subtype = "zoom"
	NavigateReset Subtype = "reset"
)

// Names of the standard computed parameters.
const (
	ParamSort      = "sort"
	ParamFilter    = "filter"
	ParamSelection = "selection"
	ParamViewport  = "viewport"
)

// Taxonomy lists the valid subtypes of each event type.
var Taxonomy = map[Type][]Subtype{
	Sort:     {SortAscending, SortDescending, SortReset},
	Filter:   {FilterHide, FilterShow, FilterReset},
	Select:   {SelectAdd, SelectRemove, SelectClear},
	Navigate: {NavigateZoom, NavigateReset},
}

// A Kind identifies an event by its type and subtype.
type Kind struct {
	Type    Type
	Subtype Subtype
}

func (k Kind) String() string {
	return string(k.Type) + "/" + string(k.Subtype)
}

// Resets maps each reset kind to the computed parameters it clears.
// When a stack replays an event of one of these kinds, the listed
// parameters return to their initial value instead of folding the
// event.
var Resets = map[Kind][]string{
	{Sort, SortReset}:         {ParamSort},
	{Filter, FilterReset}:     {ParamFilter},
	{Select, SelectClear}:     {ParamSelection},
	{Navigate, NavigateReset}: {ParamViewport},
}

// Types returns the known event types in sorted order.
func Types() []Type {
	types := make([]Type, 0, len(Taxonomy))
	for t := range Taxonomy {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Valid reports whether subtype is a known subtype of typ.
func Valid(typ Type, subtype Subtype) bool {
	for _, s := range Taxonomy[typ] {
		if s == subtype {
			return true
		}
	}
	return false
}

// IsReset reports whether k is declared in Resets.
func IsReset(k Kind) bool {
	_, ok := Resets[k]
	return ok
}

// resets reports whether an event of kind k clears param.
func resets(k Kind, param string) bool {
	for _, p := range Resets[k] {
		if p == param {
			return true
		}
	}
	return false
}

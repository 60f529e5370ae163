// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package view ties one interaction history to the scales of one
// interactive view.
//
// Every change to the history (push, undo or redo) recomputes the
// standard parameters, and the view then applies them to its scales:
// the "filter" and "viewport" parameters become each scale's Filter,
// and the "sort" parameter orders categorical scales by the group
// means of a data column. Scales notify their own subscribers.
//
// A change that some scale cannot take is rejected before the history
// moves, so the history and the scales always agree.
package view

import (
	"fmt"

	"github.com/vdplots/go-vdp/data"
	"github.com/vdplots/go-vdp/history"
	"github.com/vdplots/go-vdp/scale"
)

// A View owns a history stack and the scales it drives. A View is not
// safe for concurrent use.
type View struct {
	id    string
	data  *data.Container
	stack *history.Stack

	scales map[string]*binding
	order  []string

	// errs collects failures from the most recent apply.
	errs []error
}

type binding struct {
	s   scale.Scale
	col string
}

// New returns an empty view. c is the dataset categorical scales are
// sorted against; it may be nil if sorting is not used.
func New(id string, c *data.Container) *View {
	v := &View{
		id:     id,
		data:   c,
		stack:  history.NewStandardStack(),
		scales: make(map[string]*binding),
	}
	v.stack.Subscribe("view:"+id, v.apply)
	return v
}

// ID returns the view ID.
func (v *View) ID() string {
	return v.id
}

// Stack returns the view's history stack.
func (v *View) Stack() *history.Stack {
	return v.stack
}

// Data returns the view's dataset, or nil.
func (v *View) Data() *data.Container {
	return v.data
}

// AddScale adds s to the view. col names the data column s was built
// from, or is "" if it has none; sort events on s need it. The current
// parameters are applied to s immediately. If s cannot take them, s is
// not added.
func (v *View) AddScale(s scale.Scale, col string) error {
	if _, ok := v.scales[s.ID()]; ok {
		return fmt.Errorf("view %s: duplicate scale %s", v.id, s.ID())
	}
	b := &binding{s, col}
	p := v.stack.Params()
	if err := v.check(b, p); err != nil {
		return err
	}
	v.scales[s.ID()] = b
	v.order = append(v.order, s.ID())

	v.errs = nil
	v.applyTo(b, p)
	return v.err()
}

// Scale returns the scale with the given ID.
func (v *View) Scale(id string) (scale.Scale, bool) {
	b, ok := v.scales[id]
	if !ok {
		return nil, false
	}
	return b.s, true
}

// Scales returns the view's scales in the order they were added.
func (v *View) Scales() []scale.Scale {
	out := make([]scale.Scale, len(v.order))
	for i, id := range v.order {
		out[i] = v.scales[id].s
	}
	return out
}

// Push records a new event. If the event is invalid, or any scale
// cannot take the parameters it produces, Push returns the error and
// neither the history nor the scales change.
func (v *View) Push(typ history.Type, subtype history.Subtype, payload interface{}) error {
	e, err := history.NewEvent(typ, subtype, payload)
	if err != nil {
		return err
	}
	next, err := v.stack.Preview(e)
	if err != nil {
		return err
	}
	if err := v.checkAll(next); err != nil {
		return err
	}
	v.errs = nil
	if _, err := v.stack.Push(e); err != nil {
		return err
	}
	return v.err()
}

// Undo undoes the most recent event. It returns history.ErrAtBoundary
// if there is nothing to undo. Like Push, a failing Undo changes
// nothing.
func (v *View) Undo() error {
	if !v.stack.CanUndo() {
		return history.ErrAtBoundary
	}
	return v.moveTo(v.stack.Cursor()-1, v.stack.Undo)
}

// Redo redoes the most recently undone event. It returns
// history.ErrAtBoundary if there is nothing to redo.
func (v *View) Redo() error {
	if !v.stack.CanRedo() {
		return history.ErrAtBoundary
	}
	return v.moveTo(v.stack.Cursor()+1, v.stack.Redo)
}

func (v *View) moveTo(cursor int, move func() error) error {
	next, err := v.stack.ParamsAt(cursor)
	if err != nil {
		return err
	}
	if err := v.checkAll(next); err != nil {
		return err
	}
	v.errs = nil
	if err := move(); err != nil {
		return err
	}
	return v.err()
}

// Selection returns the currently selected keys.
func (v *View) Selection() []string {
	sel, _ := v.stack.Param(history.ParamSelection)
	return append([]string(nil), sel.([]string)...)
}

// OnChange registers fn to be called with the parameters after every
// history change, once the scales have been updated.
func (v *View) OnChange(componentID string, fn func(history.Params)) {
	v.stack.Subscribe(componentID, fn)
}

func (v *View) apply(p history.Params) {
	for _, id := range v.order {
		v.applyTo(v.scales[id], p)
	}
}

// filterFor returns the filter p puts on the scale id.
func filterFor(id string, p history.Params) scale.Filter {
	filters, _ := p[history.ParamFilter].(history.FilterState)
	viewport, _ := p[history.ParamViewport].(history.Viewport)

	f := scale.Exclude(filters[id]...)
	if w, ok := viewport[id]; ok {
		f = f.And(scale.Window(w[0], w[1]))
	}
	return f
}

// sortFor returns the sort p puts on the scale id, if any.
func sortFor(id string, p history.Params) (history.SortState, bool) {
	order, _ := p[history.ParamSort].(history.SortState)
	return order, order.Scale == id && order.By != ""
}

// checkAll reports the first scale that cannot take p.
func (v *View) checkAll(p history.Params) error {
	for _, id := range v.order {
		if err := v.check(v.scales[id], p); err != nil {
			return err
		}
	}
	return nil
}

// check reports whether applyTo(b, p) would fail, without changing
// the scale.
func (v *View) check(b *binding, p history.Params) error {
	if err := scale.CheckFilter(b.s, filterFor(b.s.ID(), p)); err != nil {
		return err
	}
	cat, ok := b.s.(*scale.CategoricalScale)
	if !ok {
		return nil
	}
	if order, ok := sortFor(cat.ID(), p); ok {
		_, err := v.sortValues(cat, b.col, order)
		return err
	}
	return nil
}

func (v *View) applyTo(b *binding, p history.Params) {
	if err := b.s.ApplyFilter(filterFor(b.s.ID(), p)); err != nil {
		v.errs = append(v.errs, err)
	}

	cat, ok := b.s.(*scale.CategoricalScale)
	if !ok {
		return
	}
	order, ok := sortFor(cat.ID(), p)
	if !ok {
		cat.ResetOrder()
		return
	}
	means, err := v.sortValues(cat, b.col, order)
	if err != nil {
		v.errs = append(v.errs, err)
		return
	}
	cat.SortByValues(means, order.Descending)
}

// sortValues returns the values cat is ordered by under order.
func (v *View) sortValues(cat *scale.CategoricalScale, col string, order history.SortState) (map[string]float64, error) {
	if v.data == nil {
		return nil, fmt.Errorf("view %s: cannot sort %s: no data", v.id, cat.ID())
	}
	if col == "" {
		return nil, fmt.Errorf("view %s: cannot sort %s: scale has no data column", v.id, cat.ID())
	}
	means, err := v.data.GroupMeans(col, order.By)
	if err != nil {
		return nil, fmt.Errorf("view %s: sorting %s: %w", v.id, cat.ID(), err)
	}
	return means, nil
}

func (v *View) err() error {
	switch len(v.errs) {
	case 0:
		return nil
	case 1:
		return v.errs[0]
	}
	return fmt.Errorf("%w (and %d more scale errors)", v.errs[0], len(v.errs)-1)
}

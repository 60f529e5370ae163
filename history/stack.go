// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package history

import (
	"fmt"

	"github.com/vdplots/go-vdp/internal/notify"
)

// Params maps computed parameter names to their current values.
type Params map[string]interface{}

// A Stack is the interaction log of one view.
//
// The active events are Events()[:Cursor()]. Every computed parameter
// is the fold of its reducer over the active events, so undo and redo
// simply move the cursor and replay.
//
// A Stack is not safe for concurrent use.
type Stack struct {
	events   []*Event
	cursor   int
	reducers map[string]Reducer
	params   Params
	subs     notify.Registry
}

// NewStack returns an empty stack with no computed parameters.
func NewStack() *Stack {
	return &Stack{
		reducers: make(map[string]Reducer),
		params:   make(Params),
	}
}

// NewStandardStack returns an empty stack with the standard reducers
// registered.
func NewStandardStack() *Stack {
	s := NewStack()
	for name, r := range StandardReducers() {
		if err := s.Register(name, r); err != nil {
			panic(err)
		}
	}
	return s
}

// Register adds or replaces the reducer for the computed parameter
// name and computes its value over the active events. If the reducer
// panics, Register returns a *ReducerError and the stack is unchanged.
func (s *Stack) Register(name string, r Reducer) (err error) {
	if r.Init == nil || r.Step == nil {
		return fmt.Errorf("history: reducer for %q needs Init and Step", name)
	}
	defer recoverReducer(name, &err)
	v := fold(name, r, s.events[:s.cursor])
	s.reducers[name] = r
	s.params[name] = v
	return nil
}

// Cursor returns the number of active events.
func (s *Stack) Cursor() int {
	return s.cursor
}

// Len returns the number of stored events, including undone ones.
func (s *Stack) Len() int {
	return len(s.events)
}

// CanUndo reports whether Undo would move the cursor.
func (s *Stack) CanUndo() bool {
	return s.cursor > 0
}

// CanRedo reports whether Redo would move the cursor.
func (s *Stack) CanRedo() bool {
	return s.cursor < len(s.events)
}

// Events returns the active events, oldest first.
func (s *Stack) Events() []*Event {
	return append([]*Event(nil), s.events[:s.cursor]...)
}

// Push appends e to the log and makes it active. Any undone events are
// discarded first. It returns the new cursor.
//
// If a reducer panics, Push returns a *ReducerError and the stack is
// unchanged.
func (s *Stack) Push(e *Event) (int, error) {
	if e == nil {
		return s.cursor, &InvalidEventError{Reason: "nil event"}
	}
	next, err := s.Preview(e)
	if err != nil {
		return s.cursor, err
	}

	// Discard the redo tail. Clear the dropped slots so the
	// events can be collected.
	for i := s.cursor; i < len(s.events); i++ {
		s.events[i] = nil
	}
	s.events = append(s.events[:s.cursor], e)
	s.cursor = len(s.events)
	s.params = next
	s.notify()
	return s.cursor, nil
}

// Undo deactivates the most recent active event. At the start of the
// log it returns ErrAtBoundary and changes nothing.
func (s *Stack) Undo() error {
	if s.cursor == 0 {
		return ErrAtBoundary
	}
	return s.moveTo(s.cursor - 1)
}

// Redo reactivates the next undone event. If there is none it returns
// ErrAtBoundary and changes nothing.
func (s *Stack) Redo() error {
	if s.cursor == len(s.events) {
		return ErrAtBoundary
	}
	return s.moveTo(s.cursor + 1)
}

func (s *Stack) moveTo(cursor int) error {
	next, err := s.ParamsAt(cursor)
	if err != nil {
		return err
	}
	s.cursor = cursor
	s.params = next
	s.notify()
	return nil
}

// Preview returns the computed parameters Push(e) would produce,
// without changing the stack.
func (s *Stack) Preview(e *Event) (Params, error) {
	if e == nil {
		return nil, &InvalidEventError{Reason: "nil event"}
	}
	// The parameters are the fold of the active prefix, so
	// folding in e alone gives the fold of the new prefix.
	return s.compute(func(name string, r Reducer) interface{} {
		return step(name, r, s.params[name], e)
	})
}

// ParamsAt returns the computed parameters with the cursor at cursor,
// without changing the stack. cursor must be in [0, Len()].
func (s *Stack) ParamsAt(cursor int) (Params, error) {
	if cursor < 0 || cursor > len(s.events) {
		return nil, ErrAtBoundary
	}
	active := s.events[:cursor]
	return s.compute(func(name string, r Reducer) interface{} {
		return fold(name, r, active)
	})
}

// compute evaluates f for every reducer into a new Params. A panic in
// a reducer is returned as a *ReducerError.
func (s *Stack) compute(f func(name string, r Reducer) interface{}) (p Params, err error) {
	var cur string
	defer func() {
		if x := recover(); x != nil {
			p, err = nil, &ReducerError{cur, x}
		}
	}()
	p = make(Params, len(s.reducers))
	for name, r := range s.reducers {
		cur = name
		p[name] = f(name, r)
	}
	return p, nil
}

func recoverReducer(name string, err *error) {
	if x := recover(); x != nil {
		*err = &ReducerError{name, x}
	}
}

// Param returns the current value of the computed parameter name.
func (s *Stack) Param(name string) (interface{}, error) {
	if _, ok := s.reducers[name]; !ok {
		return nil, &UnknownParameterError{name}
	}
	return s.params[name], nil
}

// Params returns a copy of the current computed parameters.
func (s *Stack) Params() Params {
	out := make(Params, len(s.params))
	for k, v := range s.params {
		out[k] = v
	}
	return out
}

// Subscribe registers fn to be called with the computed parameters
// after every successful Push, Undo and Redo. Subscribing again with
// the same componentID replaces the callback.
func (s *Stack) Subscribe(componentID string, fn func(Params)) {
	if fn == nil {
		s.subs.Off(componentID)
		return
	}
	s.subs.On(componentID, func() { fn(s.Params()) })
}

// Unsubscribe removes the callback registered for componentID.
func (s *Stack) Unsubscribe(componentID string) {
	s.subs.Off(componentID)
}

func (s *Stack) notify() {
	s.subs.Call()
}

func fold(name string, r Reducer, events []*Event) interface{} {
	acc := r.Init()
	for _, e := range events {
		acc = step(name, r, acc, e)
	}
	return acc
}

func step(name string, r Reducer, acc interface{}, e *Event) interface{} {
	if resets(e.Kind(), name) {
		return r.Init()
	}
	return r.Step(acc, e)
}

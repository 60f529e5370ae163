// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package history records user interactions with a view as an
// append-only log of typed events and derives computed parameters by
// folding the active prefix of that log.
//
// A Stack has a cursor. Events before the cursor are active; events
// after it have been undone and stay available to Redo until a new
// event is pushed, which discards them.
package history

import (
	"fmt"
	"sync/atomic"
	"time"
)

// seq is the process-wide event sequence counter.
var seq uint64

// ResetSequence restarts event numbering. It is meant for a view
// restart and must not be called while events from the previous
// numbering are still being pushed.
func ResetSequence() {
	atomic.StoreUint64(&seq, 0)
}

// An Event is an immutable record of one user action.
type Event struct {
	kind    Kind
	payload interface{}
	seq     uint64
	time    time.Time
}

// SortPayload is the payload of Sort events. Scale is the ID of the
// scale being reordered and By names the data column it is ordered by.
type SortPayload struct {
	Scale string
	By    string
}

// FilterPayload is the payload of Filter events. Keys are the domain
// keys of Scale to hide or show.
type FilterPayload struct {
	Scale string
	Keys  []string
}

// SelectPayload is the payload of Select events.
type SelectPayload struct {
	Keys []string
}

// NavigatePayload is the payload of Navigate events. [Lo, Hi) is the
// window to zoom Scale to.
type NavigatePayload struct {
	Scale  string
	Lo, Hi float64
}

// NewEvent validates and returns a new event. The payload must be the
// payload type of typ (for example, SortPayload for Sort events). It
// may be nil only for reset and clear subtypes.
//
// Slices in the payload are copied, so the caller may reuse them.
func NewEvent(typ Type, subtype Subtype, payload interface{}) (*Event, error) {
	k := Kind{typ, subtype}
	if _, ok := Taxonomy[typ]; !ok {
		return nil, &InvalidEventError{typ, subtype, "unknown event type"}
	}
	if !Valid(typ, subtype) {
		return nil, &InvalidEventError{typ, subtype, "unknown subtype for type"}
	}
	p, err := checkPayload(k, payload)
	if err != nil {
		return nil, err
	}
	return &Event{
		kind:    k,
		payload: p,
		seq:     atomic.AddUint64(&seq, 1),
		time:    time.Now(),
	}, nil
}

// MustEvent is like NewEvent but panics if the event is invalid.
func MustEvent(typ Type, subtype Subtype, payload interface{}) *Event {
	e, err := NewEvent(typ, subtype, payload)
	if err != nil {
		panic(err)
	}
	return e
}

func checkPayload(k Kind, payload interface{}) (interface{}, error) {
	bad := func(format string, args ...interface{}) error {
		return &InvalidEventError{k.Type, k.Subtype, fmt.Sprintf(format, args...)}
	}
	if payload == nil {
		if IsReset(k) {
			return nil, nil
		}
		return nil, bad("payload required")
	}

	switch k.Type {
	case Sort:
		p, ok := payload.(SortPayload)
		if !ok {
			return nil, bad("payload is %T, want SortPayload", payload)
		}
		if p.Scale == "" && !IsReset(k) {
			return nil, bad("sort payload has no scale")
		}
		return p, nil

	case Filter:
		p, ok := payload.(FilterPayload)
		if !ok {
			return nil, bad("payload is %T, want FilterPayload", payload)
		}
		if p.Scale == "" && !IsReset(k) {
			return nil, bad("filter payload has no scale")
		}
		p.Keys = append([]string(nil), p.Keys...)
		return p, nil

	case Select:
		p, ok := payload.(SelectPayload)
		if !ok {
			return nil, bad("payload is %T, want SelectPayload", payload)
		}
		p.Keys = append([]string(nil), p.Keys...)
		return p, nil

	case Navigate:
		p, ok := payload.(NavigatePayload)
		if !ok {
			return nil, bad("payload is %T, want NavigatePayload", payload)
		}
		if !IsReset(k) {
			if p.Scale == "" {
				return nil, bad("navigate payload has no scale")
			}
			if !(p.Lo < p.Hi) {
				return nil, bad("empty window [%g, %g)", p.Lo, p.Hi)
			}
		}
		return p, nil
	}
	return nil, bad("no payload type")
}

// Type returns the coarse category of e.
func (e *Event) Type() Type { return e.kind.Type }

// Subtype returns the fine-grained action of e.
func (e *Event) Subtype() Subtype { return e.kind.Subtype }

// Kind returns the type and subtype of e.
func (e *Event) Kind() Kind { return e.kind }

// Payload returns the event payload, or nil. Callers must not modify
// slices reachable from it.
func (e *Event) Payload() interface{} { return e.payload }

// Seq returns the sequence number assigned when e was created. Later
// events have larger numbers.
func (e *Event) Seq() uint64 { return e.seq }

// Time returns the creation time of e.
func (e *Event) Time() time.Time { return e.time }

func (e *Event) String() string {
	if e.payload == nil {
		return fmt.Sprintf("#%d %s", e.seq, e.kind)
	}
	return fmt.Sprintf("#%d %s %+v", e.seq, e.kind, e.payload)
}

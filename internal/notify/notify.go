// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package notify implements a small observer registry keyed by
// component ID.
//
// Callbacks run synchronously, in the order their IDs were first
// registered. A callback that panics is logged and skipped; the
// remaining callbacks still run.
package notify

import "log"

// Registry maps component IDs to callbacks. The zero Registry is
// empty and ready to use.
type Registry struct {
	ids []string
	fns map[string]func()
}

// On registers fn under id. If id is already registered, fn replaces
// the old callback but keeps its position. A nil fn removes id.
func (r *Registry) On(id string, fn func()) {
	if fn == nil {
		r.Off(id)
		return
	}
	if r.fns == nil {
		r.fns = make(map[string]func())
	}
	if _, ok := r.fns[id]; !ok {
		r.ids = append(r.ids, id)
	}
	r.fns[id] = fn
}

// Off removes the callback registered under id, if any.
func (r *Registry) Off(id string) {
	if _, ok := r.fns[id]; !ok {
		return
	}
	delete(r.fns, id)
	for i, x := range r.ids {
		if x == id {
			r.ids = append(r.ids[:i:i], r.ids[i+1:]...)
			break
		}
	}
}

// Len returns the number of registered callbacks.
func (r *Registry) Len() int {
	return len(r.ids)
}

// IDs returns the registered component IDs in call order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.ids...)
}

// Call invokes every registered callback and returns the number of
// callbacks that panicked.
func (r *Registry) Call() (failed int) {
	// Callbacks may register or remove other callbacks. Iterate
	// over a snapshot so that doesn't disturb this round.
	ids := r.IDs()
	for _, id := range ids {
		fn, ok := r.fns[id]
		if !ok {
			continue
		}
		if !call(id, fn) {
			failed++
		}
	}
	return failed
}

func call(id string, fn func()) (ok bool) {
	defer func() {
		if err := recover(); err != nil {
			log.Printf("update callback %q panicked: %v", id, err)
			ok = false
		}
	}()
	fn()
	return true
}

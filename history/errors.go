// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package history

import (
	"errors"
	"fmt"
)

// ErrAtBoundary is returned by Undo at the start of the history and by
// Redo at its end. The stack is unchanged.
var ErrAtBoundary = errors.New("history: at boundary")

// InvalidEventError reports an event whose type, subtype or payload is
// not part of the taxonomy.
type InvalidEventError struct {
	Type    Type
	Subtype Subtype
	Reason  string
}

func (e *InvalidEventError) Error() string {
	return fmt.Sprintf("history: invalid event %s/%s: %s", e.Type, e.Subtype, e.Reason)
}

// UnknownParameterError reports a request for a computed parameter
// with no registered reducer.
type UnknownParameterError struct {
	Name string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("history: unknown computed parameter %q", e.Name)
}

// ReducerError reports a reducer that panicked while computing Param.
// The stack is left as it was before the failed call.
type ReducerError struct {
	Param string
	Panic interface{}
}

func (e *ReducerError) Error() string {
	return fmt.Sprintf("history: reducer for %q panicked: %v", e.Param, e.Panic)
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "fmt"

// An Interval is the span [Lo, Hi) of a numeric domain.
type Interval struct {
	Lo, Hi float64
}

// Len returns Hi - Lo.
func (i Interval) Len() float64 {
	return i.Hi - i.Lo
}

// Empty reports whether i contains no values.
func (i Interval) Empty() bool {
	return !(i.Lo < i.Hi)
}

// Contains reports whether Lo <= x < Hi.
func (i Interval) Contains(x float64) bool {
	return i.Lo <= x && x < i.Hi
}

// Within reports whether i lies entirely inside j.
func (i Interval) Within(j Interval) bool {
	return j.Lo <= i.Lo && i.Hi <= j.Hi
}

// Intersect returns the overlap of i and j. It returns false if the
// overlap is empty.
func (i Interval) Intersect(j Interval) (Interval, bool) {
	out := i
	if j.Lo > out.Lo {
		out.Lo = j.Lo
	}
	if j.Hi < out.Hi {
		out.Hi = j.Hi
	}
	return out, !out.Empty()
}

func (i Interval) String() string {
	return fmt.Sprintf("[%g, %g)", i.Lo, i.Hi)
}

// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package seqdiff

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"znkr.io/seqdiff/internal/config"
	"znkr.io/seqdiff/internal/equiv"
	"znkr.io/seqdiff/internal/impl"
	"znkr.io/seqdiff/internal/rvecs"
)

// Change describes one place where elements were deleted from x and elements from y were
// inserted. Changes form a linked list, the edit script.
//
// Line0 and Line1 are the positions of the first affected element in x and y. If Deleted is zero,
// Line0 is the position in x before which the insertion happens, and vice versa for Inserted and
// Line1.
type Change struct {
	Line0, Line1      int
	Deleted, Inserted int
	Next              *Change
}

// All returns an iterator over the changes in the list starting at c.
func (c *Change) All() iter.Seq[*Change] {
	return func(yield func(*Change) bool) {
		for ; c != nil; c = c.Next {
			if !yield(c) {
				return
			}
		}
	}
}

// TotalChanges returns the number of deleted and inserted elements in the list starting at c.
func (c *Change) TotalChanges() int {
	n := 0
	for c := range c.All() {
		n += c.Deleted + c.Inserted
	}
	return n
}

// String formats the list starting at c with one "line0 -deleted +inserted line1" line per
// change.
func (c *Change) String() string {
	var sb strings.Builder
	for c := range c.All() {
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%d -%d +%d %d", c.Line0, c.Deleted, c.Inserted, c.Line1)
	}
	return sb.String()
}

// Direction selects the order of the changes in an edit script.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Direction
type Direction int

const (
	Forward Direction = iota // Changes in increasing position order.
	Reverse                  // Changes in decreasing position order.
)

// script builds the edit script from the result vectors.
func (d Direction) script(rx, ry []bool) *Change {
	var runs iter.Seq[rvecs.Run]
	switch d {
	case Forward:
		// Prepending while walking from the end results in increasing order.
		runs = rvecs.FromEnd(rx, ry)
	case Reverse:
		runs = rvecs.FromStart(rx, ry)
	default:
		panic(fmt.Sprintf("unknown direction: %v", d))
	}

	var script *Change
	for r := range runs {
		script = &Change{
			Line0:    r.S,
			Line1:    r.T,
			Deleted:  r.Deleted,
			Inserted: r.Inserted,
			Next:     script,
		}
	}
	return script
}

// Engine compares two sequences. The sequences are translated to equivalence classes when the
// engine is created, they are not retained afterwards.
//
// An Engine can be used to compute any number of edit scripts, but it must not be used
// concurrently.
type Engine struct {
	classes equiv.Classes
}

// New creates an engine comparing x and y.
func New[T comparable](x, y []T) *Engine {
	return &Engine{classes: equiv.Classify(x, y)}
}

// NewFunc creates an engine comparing x and y where two elements are considered equal if key
// returns the same value for them. This can be used to ignore differences that are irrelevant for
// the comparison, e.g. white space.
func NewFunc[T any, K comparable](x, y []T, key func(T) K) *Engine {
	if key == nil {
		panic("seqdiff.NewFunc: nil key function")
	}
	return &Engine{classes: equiv.ClassifyFunc(x, y, key)}
}

// Diff computes the edit script in the requested direction. If both sequences are identical, the
// result is nil. Without [Minimal], the script isn't necessarily a shortest one, see [Diff].
//
// The following options are supported: [Minimal], [NoShift]
func (e *Engine) Diff(dir Direction, opts ...Option) *Change {
	cfg := config.FromOptions(opts, config.Minimal|config.NoShift)
	rx, ry := impl.Diff(e.classes, cfg)
	return dir.script(rx, ry)
}

// Diff compares the contents of x and y and returns the changes necessary to convert from one to
// the other in forward order.
//
// If x and y are identical, the result is nil. By default, the changes can be more than necessary
// when elements match many elements in the other sequence, use [Minimal] to always get a shortest
// edit script.
//
// The following options are supported: [Minimal], [NoShift]
func Diff[T comparable](x, y []T, opts ...Option) *Change {
	return New(x, y).Diff(Forward, opts...)
}

// Apply transforms x into y by applying the edit script. The elements inserted are taken from y.
// The script can be in either direction.
//
// Apply panics if the script doesn't fit x and y.
func Apply[T any](x, y []T, script *Change) []T {
	changes := slices.Collect(script.All())
	if len(changes) > 1 && changes[0].Line0 > changes[1].Line0 {
		slices.Reverse(changes) // reverse order
	}

	out := make([]T, 0, len(y))
	s := 0
	for _, c := range changes {
		if c.Line0 < s || c.Line0+c.Deleted > len(x) || c.Line1+c.Inserted > len(y) {
			panic(fmt.Sprintf("change at (%d, %d) doesn't apply", c.Line0, c.Line1))
		}
		out = append(out, x[s:c.Line0]...)
		out = append(out, y[c.Line1:c.Line1+c.Inserted]...)
		s = c.Line0 + c.Deleted
	}
	return append(out, x[s:]...)
}

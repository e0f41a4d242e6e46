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

// Package impl contains the comparison algorithm that computes which elements of two sequences
// are insertions and deletions.
//
// The comparison runs in three phases:
//
//  1. Elements that match nothing in the other sequence, and optionally elements that match too
//     many elements in the other sequence, are discarded. Discarded elements are always marked as
//     changed and are invisible to the next phase.
//  2. Myers' algorithm finds a shortest edit script for the remaining elements.
//  3. Runs of changes are shifted to more natural positions where possible.
//
// The input are the equivalence classes of both sequences (see package equiv) and the output are
// result vectors (see package rvecs).
package impl

import (
	"znkr.io/seqdiff/internal/config"
	"znkr.io/seqdiff/internal/equiv"
	"znkr.io/seqdiff/internal/rvecs"
)

// Diff compares the sequences of equivalence classes in c and returns the result vectors marking
// the deletions in x and insertions in y.
func Diff(c equiv.Classes, cfg config.Config) (rx, ry []bool) {
	rx, ry = rvecs.Make(len(c.X), len(c.Y))
	sx, sy := newSide(c.X, rx), newSide(c.Y, ry)

	sx.discardConfusing(equiv.Counts(c.Y, c.N), cfg.Minimal)
	sy.discardConfusing(equiv.Counts(c.X, c.N), cfg.Minimal)

	m := newComparator(sx, sy)
	m.compare(0, len(sx.undiscarded), 0, len(sy.undiscarded))

	if cfg.Shift {
		shiftBoundaries(sx, sy)
		shiftBoundaries(sy, sx)
	}
	return rx, ry
}

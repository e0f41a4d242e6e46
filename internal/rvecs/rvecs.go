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

// Package rvecs contains functions to work with the result vectors, the internal representation
// that's used by the comparison algorithm and is then translated to a user facing API.
//
// A result vector for a sequence of length n has n+2 elements: r[1+i] is true if the i-th element
// is a deletion (for x) or an insertion (for y). The elements r[0] and r[n+1] are a border that is
// always false, it makes it possible to iterate over the results without bounds checks.
package rvecs

import "iter"

// Make allocates result vectors for sequences of length n and m.
func Make(n, m int) (rx, ry []bool) {
	r := make([]bool, n+m+4)
	rx = r[: n+2 : n+2]
	ry = r[n+2:]
	return
}

// Run describes a maximal block of consecutive deletions and insertions.
//
// S and T are the positions of the first affected element in x and y. If Deleted is zero, S is
// the position in x before which the insertion happens and vice versa for Inserted and T.
type Run struct {
	S, T              int
	Deleted, Inserted int
}

// FromEnd returns the runs in rx and ry starting with the last one.
func FromEnd(rx, ry []bool) iter.Seq[Run] {
	return func(yield func(Run) bool) {
		// Here, s and t are indices into the result vectors, that is s corresponds to the element
		// x[s-1].
		s, t := len(rx)-2, len(ry)-2
		for s >= 0 || t >= 0 {
			if rx[s] || ry[t] {
				s1, t1 := s, t
				for rx[s] {
					s--
				}
				for ry[t] {
					t--
				}
				// The elements at s and t match or are the border, the run starts right after.
				if !yield(Run{S: s, T: t, Deleted: s1 - s, Inserted: t1 - t}) {
					return
				}
			}
			s--
			t--
		}
	}
}

// FromStart returns the runs in rx and ry starting with the first one.
func FromStart(rx, ry []bool) iter.Seq[Run] {
	return func(yield func(Run) bool) {
		n, m := len(rx)-2, len(ry)-2
		s, t := 0, 0
		for s < n || t < m {
			if rx[1+s] || ry[1+t] {
				s0, t0 := s, t
				for rx[1+s] {
					s++
				}
				for ry[1+t] {
					t++
				}
				if !yield(Run{S: s0, T: t0, Deleted: s - s0, Inserted: t - t0}) {
					return
				}
			}
			// Both s and t point to matching elements now.
			s++
			t++
		}
	}
}

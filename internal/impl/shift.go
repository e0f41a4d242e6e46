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

package impl

// shiftBoundaries moves runs of changes in sd forward where that's possible without changing the
// result, with the goal to join changes as much as possible.
//
// A run of changes can be moved forward by one element if its first element is equal to the first
// unchanged element after it. For example, when a blank line is inserted right after another blank
// line, the comparator always reports the first blank line as inserted, but it's usually cleaner to
// consider the second one as the insertion. The run is not moved if there are changes in other at
// the same point or if it directly follows a previous run (which can happen only because that run
// was moved there).
func shiftBoundaries(sd, other *side) {
	changed, otherChanged := sd.changed, other.changed
	classes := sd.classes
	n := len(classes)

	s, t := 0, 0 // current index into sd and other
	preceding, otherPreceding := -1, -1
	for {
		// Scan forward to the start of the next run of changes, while keeping track of the
		// corresponding point in other.
		for s < n && !changed[1+s] {
			for {
				c := otherChanged[1+t]
				t++
				if !c {
					break
				}
				// Changes in other count as the preceding run.
				otherPreceding = t
			}
			s++
		}
		if s == n {
			break
		}

		start, otherStart := s, t
		for {
			// Find the end of this run.
			for s < n && changed[1+s] {
				s++
			}
			end := s

			follows := preceding >= 0 && start == preceding || otherPreceding >= 0 && otherStart == otherPreceding
			if end == n || classes[start] != classes[end] || otherChanged[1+t] || follows {
				break
			}

			// Mark the first changed element as unchanged and the following element as changed in
			// its place. That moves a matching element before the run, so we need to advance in
			// other to keep in sync.
			changed[1+end] = true
			changed[1+start] = false
			start++
			s++
			t++
		}
		preceding, otherPreceding = s, t
	}
}

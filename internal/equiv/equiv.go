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

// Package equiv assigns equivalence classes to the elements of two sequences.
//
// Both sequences share a single class space: elements that compare equal get the same class, no
// matter in which sequence they appear. Classes are dense integers starting at 1, class 0 is never
// assigned and can be used as a sentinel by callers.
package equiv

// Classes holds the equivalence classes for two sequences.
type Classes struct {
	X, Y []int // Class of every element of x and y.
	N    int   // One more than the largest class in X or Y.
}

// Classify assigns classes to x and y. Classes are assigned in order of first appearance, scanning
// all of x before y.
func Classify[K comparable](x, y []K) Classes {
	return ClassifyFunc(x, y, func(k K) K { return k })
}

// ClassifyFunc is like [Classify], but elements are considered equal if key returns the same value
// for them.
func ClassifyFunc[T any, K comparable](x, y []T, key func(T) K) Classes {
	idx := make(map[K]int, len(x)+len(y))
	buf := make([]int, len(x)+len(y))
	cx, cy := buf[:len(x):len(x)], buf[len(x):]

	next := 1
	assign := func(out []int, in []T) {
		for i, e := range in {
			k := key(e)
			c, ok := idx[k]
			if !ok {
				c = next
				idx[k] = c
				next++
			}
			out[i] = c
		}
	}
	assign(cx, x)
	assign(cy, y)
	return Classes{X: cx, Y: cy, N: next}
}

// Counts returns the number of occurrences of every class in c. The result has length n.
func Counts(c []int, n int) []int {
	counts := make([]int, n)
	for _, e := range c {
		counts[e]++
	}
	return counts
}

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

import "math"

// comparator finds a shortest edit script for the undiscarded elements of two sides.
type comparator struct {
	// Sequences of equivalence classes to compare.
	x, y []int

	// Vectors indexed by diagonal containing the s-coordinate of the furthest reaching point on
	// that diagonal in the forward and backward search respectively. Diagonal k is stored at
	// index v0+k. Both are reused for every split of a comparison.
	vf, vb []int
	v0     int

	// Mapping from x and y indices to the location in the result vectors.
	xidx, yidx []int

	// Result vectors, see package rvecs.
	rx, ry []bool
}

func newComparator(sx, sy *side) *comparator {
	N, M := len(sx.undiscarded), len(sy.undiscarded)
	vlen := N + M + 3          // +1 for the middle diagonal and +2 for the borders
	buf := make([]int, 2*vlen) // allocate space for vf and vb with a single allocation
	return &comparator{
		x:    sx.undiscarded,
		y:    sy.undiscarded,
		vf:   buf[:vlen],
		vb:   buf[vlen:],
		v0:   M + 1,
		xidx: sx.index,
		yidx: sy.index,
		rx:   sx.changed,
		ry:   sy.changed,
	}
}

// rect is a region of the edit graph, it covers x[smin:smax] and y[tmin:tmax].
type rect struct {
	smin, smax, tmin, tmax int
}

// compare marks every element in x[smin:smax] and y[tmin:tmax] that is not part of a longest
// common subsequence.
//
// The divide and conquer approach uses an explicit stack of regions instead of recursion, the
// number of pending regions can approach the length of the inputs for adversarial inputs.
func (c *comparator) compare(smin, smax, tmin, tmax int) {
	x, y := c.x, c.y
	stack := []rect{{smin, smax, tmin, tmax}}
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		smin, smax, tmin, tmax := r.smin, r.smax, r.tmin, r.tmax

		// Strip common prefix.
		for smin < smax && tmin < tmax && x[smin] == y[tmin] {
			smin++
			tmin++
		}

		// Strip common suffix.
		for smax > smin && tmax > tmin && x[smax-1] == y[tmax-1] {
			smax--
			tmax--
		}

		switch {
		case smin == smax:
			// s is empty, therefore everything in tmin to tmax is an insertion.
			for t := tmin; t < tmax; t++ {
				c.ry[1+c.yidx[t]] = true
			}
		case tmin == tmax:
			// t is empty, therefore everything in smin to smax is a deletion.
			for s := smin; s < smax; s++ {
				c.rx[1+c.xidx[s]] = true
			}
		default:
			k, cost := c.split(smin, smax, tmin, tmax)
			if cost == 1 {
				// A cost of 1 means that one of the ranges is empty, but that was handled above.
				panic("empty subsequence")
			}
			// Use the endpoint of the backward search. The forward endpoint is on the same
			// diagonal, but there isn't necessarily a sequence of matches connecting them.
			s := c.vb[c.v0+k]
			t := s - k
			stack = append(stack, rect{s, smax, t, tmax}, rect{smin, s, tmin, t})
		}
	}
}

// split finds the middle of a shortest edit path from (smin, tmin) to (smax, tmax) by searching
// forwards from (smin, tmin) and backwards from (smax, tmax) at the same time until the searches
// meet. It returns the diagonal k = s - t on which they met and the cost of the path, that is the
// number of insertions and deletions.
//
// Important: x[smin:smax] and y[tmin:tmax] must not have a common prefix or a common suffix.
func (c *comparator) split(smin, smax, tmin, tmax int) (k, cost int) {
	x, y := c.x, c.y
	vf, vb := c.vf, c.vb
	v0 := c.v0

	kmin, kmax := smin-tmax, smax-tmin // Bounds for k.
	fmid, bmid := smin-tmin, smax-tmax // Center diagonals of the forward and backward search.
	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid

	// True if the bottom right corner is on an odd diagonal relative to the top left corner. In
	// that case, the paths can only meet during a forward step and otherwise only during a
	// backward step.
	odd := (fmid-bmid)&1 != 0

	vf[v0+fmid] = smin
	vb[v0+bmid] = smax
	for d := 1; ; d++ {
		// Extend the forward search by one edit on every diagonal. Diagonals outside of the
		// edit graph are bounded by a border element that is never chosen.
		if fmin > kmin {
			fmin--
			vf[v0+fmin-1] = -1
		} else {
			fmin++
		}
		if fmax < kmax {
			fmax++
			vf[v0+fmax+1] = -1
		} else {
			fmax--
		}
		for k := fmax; k >= fmin; k -= 2 {
			k0 := k + v0
			var s int
			if lo, hi := vf[k0-1], vf[k0+1]; lo >= hi {
				s = lo + 1
			} else {
				s = hi
			}
			t := s - k
			for s < smax && t < tmax && x[s] == y[t] {
				s++
				t++
			}
			vf[k0] = s
			if odd && bmin <= k && k <= bmax && vb[k0] <= s {
				return k, 2*d - 1
			}
		}

		// Analogous for the backward search.
		if bmin > kmin {
			bmin--
			vb[v0+bmin-1] = math.MaxInt
		} else {
			bmin++
		}
		if bmax < kmax {
			bmax++
			vb[v0+bmax+1] = math.MaxInt
		} else {
			bmax--
		}
		for k := bmax; k >= bmin; k -= 2 {
			k0 := k + v0
			var s int
			if lo, hi := vb[k0-1], vb[k0+1]; lo < hi {
				s = lo
			} else {
				s = hi - 1
			}
			t := s - k
			for s > smin && t > tmin && x[s-1] == y[t-1] {
				s--
				t--
			}
			vb[k0] = s
			if !odd && fmin <= k && k <= fmax && s <= vf[k0] {
				return k, 2 * d
			}
		}
	}
}

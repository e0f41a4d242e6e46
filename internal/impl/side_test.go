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

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// parseDiscards converts a string of '.' (keep), 'D' (discard) and '?' (discardMaybe) into discard
// states.
func parseDiscards(in string) []byte {
	out := make([]byte, len(in))
	for i, c := range in {
		switch c {
		case '.':
			out[i] = keep
		case 'D':
			out[i] = discard
		case '?':
			out[i] = discardMaybe
		default:
			panic("invalid discard spec: " + in)
		}
	}
	return out
}

func renderDiscards(in []byte) string {
	var sb strings.Builder
	for _, d := range in {
		sb.WriteByte(".D?"[d])
	}
	return sb.String()
}

func TestFilterDiscards(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "isolated-maybe",
			in:   "..?..",
			want: ".....",
		},
		{
			name: "maybe-at-start-of-run",
			in:   "?DD",
			want: ".DD",
		},
		{
			name: "maybe-at-end-of-run",
			in:   "DD??.",
			want: "DD...",
		},
		{
			name: "too-many-maybes",
			in:   "D?D",
			want: "D.D",
		},
		{
			name: "maybe-near-start",
			in:   "D?DDDDDD",
			want: "D.DDDDDD",
		},
		{
			name: "maybe-after-three-discards",
			in:   "DDD?DDDD",
			want: "DDD?DDDD",
		},
		{
			name: "short-subrun-is-discarded",
			in:   "DDDDDDDDD??DDDDDDDDD",
			want: "DDDDDDDDD??DDDDDDDDD",
		},
		{
			name: "long-subrun-is-kept",
			in:   "DDDDDDDDD???DDDDDDDD",
			want: "DDDDDDDDD...DDDDDDDD",
		},
		{
			name: "two-runs",
			in:   "D?D.DDD?DDDD",
			want: "D.D.DDD?DDDD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			discards := parseDiscards(tt.in)
			filterDiscards(discards)
			if diff := cmp.Diff(tt.want, renderDiscards(discards)); diff != "" {
				t.Errorf("filterDiscards(%q) differs [-want,+got]:\n%s", tt.in, diff)
			}
		})
	}
}

func TestDiscardable(t *testing.T) {
	// Class 1 has no matches, class 2 a normal number of matches and class 3 too many matches.
	counts := []int{0, 0, 1, 6}
	sd := newSide([]int{1, 2, 3, 3, 2}, make([]bool, 7))

	got := renderDiscards(sd.discardable(counts, false))
	if diff := cmp.Diff("D.??.", got); diff != "" {
		t.Errorf("discardable(...) differs [-want,+got]:\n%s", diff)
	}

	got = renderDiscards(sd.discardable(counts, true))
	if diff := cmp.Diff("D....", got); diff != "" {
		t.Errorf("discardable(..., minimal) differs [-want,+got]:\n%s", diff)
	}
}

func TestDiscardableThreshold(t *testing.T) {
	// For 1024 elements, the threshold for too many matches is 20.
	classes := make([]int, 1024)
	for i := range classes {
		classes[i] = 1
	}
	sd := newSide(classes, make([]bool, len(classes)+2))

	if got := sd.discardable([]int{0, 20}, false); bytes.Contains(got, []byte{discardMaybe}) {
		t.Errorf("discardable(...) with 20 matches has discardMaybe elements")
	}
	if got := sd.discardable([]int{0, 21}, false); bytes.Contains(got, []byte{keep}) {
		t.Errorf("discardable(...) with 21 matches has elements to keep")
	}
}

func TestDiscardConfusing(t *testing.T) {
	// x = a b c b a, y = b z b
	classes := []int{1, 2, 3, 2, 1}
	counts := []int{0, 0, 2, 0, 0}
	changed := make([]bool, len(classes)+2)
	sd := newSide(classes, changed)
	sd.discardConfusing(counts, false)

	if diff := cmp.Diff([]int{2, 2}, sd.undiscarded); diff != "" {
		t.Errorf("undiscarded differs [-want,+got]:\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 3}, sd.index); diff != "" {
		t.Errorf("index differs [-want,+got]:\n%s", diff)
	}
	want := []bool{false, true, false, true, false, true, false}
	if diff := cmp.Diff(want, changed); diff != "" {
		t.Errorf("changed differs [-want,+got]:\n%s", diff)
	}
}

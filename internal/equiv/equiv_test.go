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

package equiv

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		want Classes
	}{
		{
			name: "empty",
			want: Classes{X: []int{}, Y: []int{}, N: 1},
		},
		{
			name: "x-only",
			x:    []string{"a", "b", "a"},
			want: Classes{X: []int{1, 2, 1}, Y: []int{}, N: 3},
		},
		{
			name: "shared",
			x:    []string{"a", "b", "c"},
			y:    []string{"c", "d", "a", "a"},
			want: Classes{X: []int{1, 2, 3}, Y: []int{3, 4, 1, 1}, N: 5},
		},
		{
			name: "disjoint",
			x:    []string{"a", "b"},
			y:    []string{"c", "d"},
			want: Classes{X: []int{1, 2}, Y: []int{3, 4}, N: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.x, tt.y)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Classify(...) differs [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestClassifyFunc(t *testing.T) {
	x := []string{"Foo", "bar", "FOO"}
	y := []string{"BAR", "foo", "baz"}
	got := ClassifyFunc(x, y, strings.ToLower)
	want := Classes{X: []int{1, 2, 1}, Y: []int{2, 1, 3}, N: 4}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ClassifyFunc(...) differs [-want,+got]:\n%s", diff)
	}
}

func TestCounts(t *testing.T) {
	got := Counts([]int{1, 3, 1, 1}, 5)
	want := []int{0, 3, 0, 1, 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Counts(...) differs [-want,+got]:\n%s", diff)
	}
}

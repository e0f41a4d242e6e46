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

package seqdiff_test

import (
	"fmt"

	"znkr.io/seqdiff"
)

func ExampleDiff() {
	x := []string{"a", "b", "c"}
	y := []string{"a", "x", "c"}
	script := seqdiff.Diff(x, y)
	for c := range script.All() {
		fmt.Printf("delete %v at %d, insert %v at %d\n", x[c.Line0:c.Line0+c.Deleted], c.Line0, y[c.Line1:c.Line1+c.Inserted], c.Line1)
	}
	fmt.Println("total changes:", script.TotalChanges())
	// Output:
	// delete [b] at 1, insert [x] at 1
	// total changes: 2
}

func ExampleEngine_Diff() {
	x := []string{"a", "b", "c", "d"}
	y := []string{"a", "c", "d", "e"}
	e := seqdiff.New(x, y)
	fmt.Println(e.Diff(seqdiff.Forward))
	fmt.Println("--")
	fmt.Println(e.Diff(seqdiff.Reverse))
	// Output:
	// 1 -1 +0 1
	// 4 -0 +1 3
	// --
	// 4 -0 +1 3
	// 1 -1 +0 1
}

func ExampleApply() {
	x := []int{1, 2, 3, 4, 5}
	y := []int{1, 3, 4, 6, 5}
	fmt.Println(seqdiff.Apply(x, y, seqdiff.Diff(x, y)))
	// Output:
	// [1 3 4 6 5]
}

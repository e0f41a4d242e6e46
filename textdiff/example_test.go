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

package textdiff_test

import (
	"fmt"

	"znkr.io/seqdiff/textdiff"
)

func ExampleDiff() {
	x := "this paragraph\nis not\nchanged\n\nthis paragraph\nis going to be\nremoved\n"
	y := "this is a new paragraph\n\nthis paragraph\nis not\nchanged\n"

	xlines, ylines := textdiff.Lines(x), textdiff.Lines(y)
	for c := range textdiff.Diff(x, y).All() {
		for _, line := range xlines[c.Line0 : c.Line0+c.Deleted] {
			fmt.Printf("-%s", line)
		}
		for _, line := range ylines[c.Line1 : c.Line1+c.Inserted] {
			fmt.Printf("+%s", line)
		}
	}
	// Output:
	// +this is a new paragraph
	// +
	// -
	// -this paragraph
	// -is going to be
	// -removed
}

func ExampleIgnoreCase() {
	x := "Hello\nWorld\n"
	y := "hello\nworld\nagain\n"

	fmt.Println("Without textdiff.IgnoreCase:")
	fmt.Println(textdiff.Diff(x, y))
	fmt.Println("With textdiff.IgnoreCase:")
	fmt.Println(textdiff.Diff(x, y, textdiff.IgnoreCase()))
	// Output:
	// Without textdiff.IgnoreCase:
	// 0 -2 +3 0
	// With textdiff.IgnoreCase:
	// 2 -0 +1 2
}

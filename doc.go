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

// Package seqdiff computes a minimal edit script that transforms one sequence of comparable
// elements into another, similar to the Unix diff command line tool to compare files.
//
// The result of a comparison is a linked list of [Change] records. Each record describes a place
// where a run of elements was deleted from the first sequence and a run of elements was inserted
// from the second one.
//
// The comparison uses Myers' O(ND) algorithm with the heuristics found in GNU diff:
//
//   - Elements that don't match anything in the other sequence are marked as changed before the
//     comparison starts. Elements that match very often in the other sequence are dropped from the
//     comparison as well, if they are surrounded by elements without match. Use [Minimal] to
//     disable the latter when a shortest edit script is required.
//   - After the comparison, runs of changes are shifted to more natural positions where that's
//     possible. For example, an inserted blank line after another blank line is reported as the
//     second blank line. Use [NoShift] to disable this.
//
// Performance: Time complexity is O(ND) and space complexity is O(N) where N = len(x) + len(y) and
// D is the number of edits after discarding.
//
// Note: For a line-by-line diff of text, please see [znkr.io/seqdiff/textdiff].
//
// [znkr.io/seqdiff/textdiff]: https://pkg.go.dev/znkr.io/seqdiff/textdiff
package seqdiff

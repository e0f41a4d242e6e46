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

// Package textdiff provides functions to efficiently compare text line by line.
//
// Lines include their trailing newline character, a last line without a newline character is
// therefore different from the same line with one.
package textdiff

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"znkr.io/seqdiff"
	"znkr.io/seqdiff/internal/byteview"
	"znkr.io/seqdiff/internal/config"
)

const allowed = config.Minimal | config.NoShift | config.IgnoreWhitespace | config.IgnoreCase

// Diff compares the lines in x and y and returns the changes necessary to convert from one to
// the other in forward order. Positions in the result are line numbers (starting at 0).
//
// If x and y are identical, the result is nil.
//
// The following options are supported: [seqdiff.Minimal], [seqdiff.NoShift],
// [IgnoreWhitespace], [IgnoreCase]
func Diff[T string | []byte](x, y T, opts ...seqdiff.Option) *seqdiff.Change {
	return Script(x, y, seqdiff.Forward, opts...)
}

// Script is like [Diff], but returns the changes in the requested direction.
func Script[T string | []byte](x, y T, dir seqdiff.Direction, opts ...seqdiff.Option) *seqdiff.Change {
	cfg := config.FromOptions(opts, allowed)

	xlines := byteview.SplitLines(byteview.From(x))
	ylines := byteview.SplitLines(byteview.From(y))

	var e *seqdiff.Engine
	if cfg.IgnoreWhitespace || cfg.IgnoreCase {
		e = seqdiff.NewFunc(xlines, ylines, normalizer(cfg))
	} else {
		e = seqdiff.New(xlines, ylines)
	}

	var dopts []seqdiff.Option
	if cfg.Minimal {
		dopts = append(dopts, seqdiff.Minimal())
	}
	if !cfg.Shift {
		dopts = append(dopts, seqdiff.NoShift())
	}
	return e.Diff(dir, dopts...)
}

// Lines splits the input into lines, including their trailing newline character. Line i of the
// result corresponds to position i in the changes returned by [Diff].
func Lines[T string | []byte](in T) []string {
	views := byteview.SplitLines(byteview.From(in))
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = strings.Clone(v.String())
	}
	return out
}

// Normalize returns the key that is used to compare line with the given options. Two lines are
// considered equal if their keys are equal.
//
// The following options are supported: [seqdiff.Minimal], [seqdiff.NoShift],
// [IgnoreWhitespace], [IgnoreCase]
func Normalize[T string | []byte](line T, opts ...seqdiff.Option) string {
	cfg := config.FromOptions(opts, allowed)
	return strings.Clone(normalizer(cfg)(byteview.From(line)))
}

// normalizer returns a function that creates the comparison key for a line.
func normalizer(cfg config.Config) func(byteview.ByteView) string {
	fold := cases.Fold()
	return func(v byteview.ByteView) string {
		s := v.String()
		if cfg.IgnoreWhitespace {
			s = strings.Map(func(r rune) rune {
				if unicode.IsSpace(r) {
					return -1
				}
				return r
			}, s)
		}
		if cfg.IgnoreCase {
			s = fold.String(s)
		}
		return s
	}
}

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

// Command seqdiff compares two files line by line and prints the change records needed to turn
// the first file into the second one.
//
// Each change is printed as "line0 -deleted +inserted line1" where line0 and line1 are zero based
// line numbers in the first and second file. The exit status is 0 if the files are the same, 1 if
// they are different, and 2 if there was trouble.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	"golang.org/x/sync/errgroup"
	"znkr.io/seqdiff"
	"znkr.io/seqdiff/textdiff"
)

type config struct {
	x, y             string
	reverse          bool
	minimal          bool
	noShift          bool
	ignoreCase       bool
	ignoreWhitespace bool
	check            bool
}

func main() {
	var cfg config
	flag.BoolVar(&cfg.reverse, "reverse", false, "print changes in reverse order")
	flag.BoolVar(&cfg.minimal, "minimal", false, "always find a minimal set of changes")
	flag.BoolVar(&cfg.noShift, "noshift", false, "don't shift change boundaries")
	flag.BoolVar(&cfg.ignoreCase, "i", false, "ignore case differences")
	flag.BoolVar(&cfg.ignoreWhitespace, "w", false, "ignore all white space")
	flag.BoolVar(&cfg.check, "check", false, "verify that the changes convert the first file into the second")
	flag.Parse()

	if flag.CommandLine.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "error: usage: seqdiff [flags] <x> <y>\n")
		os.Exit(2)
	}
	cfg.x = flag.CommandLine.Arg(0)
	cfg.y = flag.CommandLine.Arg(1)

	same, err := run(os.Stdout, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if !same {
		os.Exit(1)
	}
}

var errCheck = errors.New("changes don't convert x into y")

// run writes the changes between the files named in cfg to w and reports whether the files are
// the same.
func run(w io.Writer, cfg config) (bool, error) {
	var x, y []byte
	var g errgroup.Group
	g.Go(func() (err error) {
		x, err = os.ReadFile(cfg.x)
		return err
	})
	g.Go(func() (err error) {
		y, err = os.ReadFile(cfg.y)
		return err
	})
	if err := g.Wait(); err != nil {
		return false, fmt.Errorf("reading input: %w", err)
	}

	var opts []seqdiff.Option
	if cfg.minimal {
		opts = append(opts, seqdiff.Minimal())
	}
	if cfg.noShift {
		opts = append(opts, seqdiff.NoShift())
	}
	if cfg.ignoreCase {
		opts = append(opts, textdiff.IgnoreCase())
	}
	if cfg.ignoreWhitespace {
		opts = append(opts, textdiff.IgnoreWhitespace())
	}

	dir := seqdiff.Forward
	if cfg.reverse {
		dir = seqdiff.Reverse
	}
	script := textdiff.Script(x, y, dir, opts...)

	if cfg.check {
		if err := check(x, y, script, opts); err != nil {
			return false, err
		}
	}

	if script == nil {
		return true, nil
	}
	if _, err := fmt.Fprintln(w, script); err != nil {
		return false, fmt.Errorf("writing changes: %w", err)
	}
	return false, nil
}

// check verifies that script converts x into y. Lines are compared the same way as for computing
// the script, i.e. with -i or -w only the normalized lines need to be equal.
func check(x, y []byte, script *seqdiff.Change, opts []seqdiff.Option) error {
	xlines, ylines := textdiff.Lines(x), textdiff.Lines(y)
	got := seqdiff.Apply(xlines, ylines, script)
	eq := func(a, b string) bool {
		return textdiff.Normalize(a, opts...) == textdiff.Normalize(b, opts...)
	}
	if !slices.EqualFunc(ylines, got, eq) {
		return errCheck
	}
	return nil
}

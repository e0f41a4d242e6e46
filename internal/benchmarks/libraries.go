// Package benchmarks compares seqdiff against other Go diff libraries.
package benchmarks

import (
	"bytes"
	"slices"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	"github.com/pmezard/go-difflib/difflib"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/seqdiff"
	"znkr.io/seqdiff/textdiff"
)

// Impl is a line diff implementation. Diff returns a line oriented listing where every deleted
// line is prefixed with '-' and every inserted line with '+'. If Unified is set, the listing is a
// unified diff and starts with file headers.
type Impl struct {
	Name    string
	Diff    func(x, y []byte) []byte
	Unified bool
}

// Edits returns the number of deleted and inserted lines reported by the implementation.
func (impl Impl) Edits(x, y []byte) int {
	return CountEdits(impl.Diff(x, y), impl.Unified)
}

var Impls = []Impl{
	{
		Name: "seqdiff",
		Diff: func(x, y []byte) []byte {
			return render(x, y, textdiff.Diff(x, y))
		},
	},
	{
		Name: "seqdiff-minimal",
		Diff: func(x, y []byte) []byte {
			return render(x, y, textdiff.Diff(x, y, seqdiff.Minimal()))
		},
	},
	{
		Name: "seqdiff-noshift",
		Diff: func(x, y []byte) []byte {
			return render(x, y, textdiff.Diff(x, y, seqdiff.NoShift()))
		},
	},
	{
		Name: "go-internal",
		Diff: func(x, y []byte) []byte {
			return gointernal.Diff("x", x, "y", y)
		},
		Unified: true,
	},
	{
		Name: "diffmatchpatch",
		Diff: func(x, y []byte) []byte {
			dmp := diffmatchpatch.New()
			rx, ry, lines := dmp.DiffLinesToRunes(string(x), string(y))
			diffs := dmp.DiffMainRunes(rx, ry, false)
			diffs = dmp.DiffCharsToLines(diffs, lines)

			var buf bytes.Buffer
			for _, diff := range diffs {
				var prefix string
				switch diff.Type {
				case diffmatchpatch.DiffInsert:
					prefix = "+"
				case diffmatchpatch.DiffDelete:
					prefix = "-"
				case diffmatchpatch.DiffEqual:
					prefix = " "
				}
				for _, line := range strings.SplitAfter(diff.Text, "\n") {
					if line == "" {
						continue
					}
					buf.WriteString(prefix)
					buf.WriteString(line)
				}
			}
			return buf.Bytes()
		},
	},
	{
		Name: "difflib",
		Diff: func(x, y []byte) []byte {
			xlines, ylines := textdiff.Lines(x), textdiff.Lines(y)
			m := difflib.NewMatcher(xlines, ylines)
			var buf bytes.Buffer
			for _, op := range m.GetOpCodes() {
				switch op.Tag {
				case 'e':
					for _, line := range xlines[op.I1:op.I2] {
						buf.WriteString(" ")
						buf.WriteString(line)
					}
				case 'd', 'r', 'i':
					for _, line := range xlines[op.I1:op.I2] {
						buf.WriteString("-")
						buf.WriteString(line)
					}
					for _, line := range ylines[op.J1:op.J2] {
						buf.WriteString("+")
						buf.WriteString(line)
					}
				}
			}
			return buf.Bytes()
		},
	},
	{
		Name: "godebug",
		Diff: func(x, y []byte) []byte {
			return []byte(godebug.Diff(string(x), string(y)))
		},
	},
	{
		Name: "mb0",
		Diff: func(x, y []byte) []byte {
			d := mb0lines{
				x: bytes.SplitAfter(x, []byte("\n")),
				y: bytes.SplitAfter(y, []byte("\n")),
			}
			changes := mb0.Diff(len(d.x), len(d.y), d)
			var buf bytes.Buffer
			for _, ch := range changes {
				for i := range ch.Del {
					buf.WriteString("-")
					buf.Write(d.x[ch.A+i])
				}
				for i := range ch.Ins {
					buf.WriteString("+")
					buf.Write(d.y[ch.B+i])
				}
			}
			return buf.Bytes()
		},
	},
	{
		Name: "udiff",
		Diff: func(x, y []byte) []byte {
			return []byte(udiff.Unified("x", "y", string(x), string(y)))
		},
		Unified: true,
	},
}

// CountEdits counts the deleted and inserted lines in out. If unified is set, out is a unified
// diff and everything before the first hunk is skipped.
func CountEdits(out []byte, unified bool) int {
	lines := bytes.Split(out, []byte("\n"))
	if unified {
		i := slices.IndexFunc(lines, func(line []byte) bool { return bytes.HasPrefix(line, []byte("@@")) })
		if i < 0 {
			return 0
		}
		lines = lines[i:]
	}
	edits := 0
	for _, line := range lines {
		if bytes.HasPrefix(line, []byte{'+'}) || bytes.HasPrefix(line, []byte{'-'}) {
			edits++
		}
	}
	return edits
}

// render writes the lines removed and added by the script. Lines are ensured to end in a newline
// character to keep one listing line per input line.
func render(x, y []byte, script *seqdiff.Change) []byte {
	xlines, ylines := textdiff.Lines(x), textdiff.Lines(y)
	var buf bytes.Buffer
	write := func(prefix byte, line string) {
		buf.WriteByte(prefix)
		buf.WriteString(line)
		if !strings.HasSuffix(line, "\n") {
			buf.WriteByte('\n')
		}
	}
	for c := range script.All() {
		for _, line := range xlines[c.Line0 : c.Line0+c.Deleted] {
			write('-', line)
		}
		for _, line := range ylines[c.Line1 : c.Line1+c.Inserted] {
			write('+', line)
		}
	}
	return buf.Bytes()
}

type mb0lines struct {
	x [][]byte
	y [][]byte
}

func (d mb0lines) Equal(i, j int) bool { return bytes.Equal(d.x[i], d.y[j]) }

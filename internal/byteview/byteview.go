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

// Package byteview provides a mechanism to handle strings and []byte as immutable byte views.
//
// A ByteView is comparable, so it can be used directly as an element of a diff.
package byteview

import (
	"strings"
	"unsafe"
)

type ByteView struct {
	data string
}

func From[T string | []byte](in T) ByteView {
	switch in := any(in).(type) {
	case string:
		return ByteView{in}
	case []byte:
		return ByteView{unsafe.String(unsafe.SliceData(in), len(in))}
	}
	panic("never reached")
}

func (v ByteView) Len() int { return len(v.data) }

// String returns the view as a string. The result shares memory with the input of [From], it
// must not be retained beyond the lifetime of the input if that was a []byte.
func (v ByteView) String() string { return v.data }

// SplitLines splits the input after every '\n' and returns the lines including the newline
// character. The last line is missing the newline character if the input doesn't end in one.
func SplitLines(v ByteView) []ByteView {
	s := v.data
	n := strings.Count(s, "\n")
	if len(s) > 0 && s[len(s)-1] != '\n' {
		n++
	}
	a := make([]ByteView, n)
	for i := range n {
		m := strings.IndexByte(s, '\n')
		if m < 0 {
			a[i] = ByteView{s}
			break
		}
		a[i] = ByteView{s[:m+1]}
		s = s[m+1:]
	}
	return a
}

// Copyright 2025 walteh LLC
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

// Package text converts text between Unix (\n) and Windows (\r\n) line
// endings and reports whether text already follows a convention.
package text

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 📏 LineEnding is the target line-ending convention of a run
type LineEnding int

const (
	Unix    LineEnding = iota // \n
	Windows                   // \r\n
)

// String returns the name used on the command line
func (l LineEnding) String() string {
	switch l {
	case Unix:
		return "unix"
	case Windows:
		return "windows"
	default:
		return "unknown"
	}
}

// 🔍 ParseLineEnding parses "unix" or "windows"
func ParseLineEnding(s string) (LineEnding, error) {
	switch s {
	case "unix":
		return Unix, nil
	case "windows":
		return Windows, nil
	default:
		return 0, errors.Errorf("unknown line ending %q", s)
	}
}

// 📦 Result holds the outcome of a conversion
type Result struct {
	Content      string
	Replacements int
	Changed      bool
}

// 🔄 Convert rewrites s toward the target convention
func Convert(s string, target LineEnding) Result {
	var out string
	var count int
	switch target {
	case Unix:
		out, count = toUnix(s)
	case Windows:
		out, count = toWindows(s)
	default:
		return Result{Content: s}
	}
	return Result{
		Content:      out,
		Replacements: count,
		Changed:      count > 0,
	}
}

// ✅ Violates reports whether s contains a line ending of the opposite convention
func Violates(s string, target LineEnding) bool {
	switch target {
	case Unix:
		return HasWindowsEnding(s)
	case Windows:
		return HasUnixEnding(s)
	default:
		return false
	}
}

// ToUnix replaces every \r\n with \n, along with any extra \r stacked right
// in front of it. A \r that does not lead into a \n is left alone.
func ToUnix(s string) string {
	out, _ := toUnix(s)
	return out
}

// ToWindows turns every \n that is not preceded by \r into \r\n. A \n at the
// very start of s has no preceding character and is kept as is.
func ToWindows(s string) string {
	out, _ := toWindows(s)
	return out
}

// HasWindowsEnding reports whether s contains \r\n.
func HasWindowsEnding(s string) bool {
	return strings.Contains(s, "\r\n")
}

// HasUnixEnding reports whether s contains a \n preceded by something other
// than \r. A leading \n does not count.
func HasUnixEnding(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] == '\n' && s[i-1] != '\r' {
			return true
		}
	}
	return false
}

// toUnix drops the run of \r in front of each \n, so a stray \r glued to a
// \r\n pair cannot turn into a new \r\n.
func toUnix(s string) (string, int) {
	if !strings.Contains(s, "\r\n") {
		return s, 0
	}

	var b strings.Builder
	b.Grow(len(s))

	count := 0
	pending := 0 // \r bytes held back until we know what follows them
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\r':
			pending++
			continue
		case c == '\n' && pending > 0:
			count++
		case pending > 0:
			b.WriteString(strings.Repeat("\r", pending))
		}
		pending = 0
		b.WriteByte(c)
	}
	b.WriteString(strings.Repeat("\r", pending))

	return b.String(), count
}

// toWindows compares each \n against the byte before it in the input. \r and
// \n never occur inside a multi-byte UTF-8 sequence, so a byte scan is safe.
func toWindows(s string) (string, int) {
	count := 0
	for i := 1; i < len(s); i++ {
		if s[i] == '\n' && s[i-1] != '\r' {
			count++
		}
	}
	if count == 0 {
		return s, 0
	}

	var b strings.Builder
	b.Grow(len(s) + count)
	for i := 0; i < len(s); i++ {
		if i > 0 && s[i] == '\n' && s[i-1] != '\r' {
			b.WriteByte('\r')
		}
		b.WriteByte(s[i])
	}

	return b.String(), count
}

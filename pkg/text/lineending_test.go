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

package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUnix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "mixed_endings", input: "a\nb\r\nc\n", want: "a\nb\nc\n"},
		{name: "all_windows", input: "a\r\nb\r\n", want: "a\nb\n"},
		{name: "already_unix", input: "a\nb\n", want: "a\nb\n"},
		{name: "lone_cr_kept", input: "a\rb\r", want: "a\rb\r"},
		{name: "stacked_cr_collapsed", input: "a\r\r\nb", want: "a\nb"},
		{name: "leading_crlf", input: "\r\nx", want: "\nx"},
		{name: "empty", input: "", want: ""},
		{name: "no_newlines", input: "hello", want: "hello"},
		{name: "utf8_content", input: "привет\r\nмир\r\n", want: "привет\nмир\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToUnix(tt.input), "converted content should match")
		})
	}
}

func TestToWindows(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "all_unix", input: "a\nb\nc\n", want: "a\r\nb\r\nc\r\n"},
		{name: "mixed_endings", input: "a\nb\r\nc", want: "a\r\nb\r\nc"},
		{name: "leading_newline_kept", input: "\na\n", want: "\na\r\n"},
		{name: "only_newline", input: "\n", want: "\n"},
		{name: "blank_lines", input: "a\n\nb", want: "a\r\n\r\nb"},
		{name: "leading_blank_lines", input: "\n\n", want: "\n\r\n"},
		{name: "already_windows", input: "a\r\nb\r\n", want: "a\r\nb\r\n"},
		{name: "lone_cr_kept", input: "a\rb", want: "a\rb"},
		{name: "empty", input: "", want: ""},
		{name: "utf8_content", input: "привет\nмир", want: "привет\r\nмир"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToWindows(tt.input), "converted content should match")
		})
	}
}

var propertyInputs = []string{
	"",
	"\n",
	"\r\n",
	"\r",
	"a\nb\r\nc\n",
	"\n\n\n",
	"\r\r\n\n",
	"x\r\r\r\ny\rz\n",
	"\nleading\r\nthen\nmore\n\n",
	"tail\r",
	"héllo\nwörld\r\n",
}

func TestIdempotence(t *testing.T) {
	for _, in := range propertyInputs {
		once := ToUnix(in)
		assert.Equal(t, once, ToUnix(once), "ToUnix should be idempotent for %q", in)

		w := ToWindows(in)
		assert.Equal(t, w, ToWindows(w), "ToWindows should be idempotent for %q", in)
	}
}

func TestNoWindowsEndingAfterToUnix(t *testing.T) {
	for _, in := range propertyInputs {
		assert.False(t, HasWindowsEnding(ToUnix(in)), "ToUnix output should not contain CRLF for %q", in)
	}
}

func TestNoUnixEndingAfterToWindows(t *testing.T) {
	for _, in := range propertyInputs {
		assert.False(t, HasUnixEnding(ToWindows(in)), "ToWindows output should not contain bare LF for %q", in)
	}
}

func TestWindowsRoundTrip(t *testing.T) {
	t.Run("crlf_text_survives", func(t *testing.T) {
		in := "a\r\nb\r\nc\r\n"
		assert.Equal(t, in, ToWindows(ToUnix(in)))
	})

	t.Run("leading_crlf_loses_cr", func(t *testing.T) {
		// position 0 has no preceding character, so the \n stays bare
		in := "\r\na\r\n"
		assert.Equal(t, "\na\r\n", ToWindows(ToUnix(in)))
	})
}

func TestDetection(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantWindows bool
		wantUnix    bool
	}{
		{name: "empty", input: ""},
		{name: "crlf_only", input: "a\r\nb", wantWindows: true},
		{name: "lf_only", input: "a\nb", wantUnix: true},
		{name: "both", input: "a\r\nb\nc", wantWindows: true, wantUnix: true},
		{name: "leading_lf_ignored", input: "\nabc"},
		{name: "lone_cr", input: "a\rb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantWindows, HasWindowsEnding(tt.input), "windows detection")
			assert.Equal(t, tt.wantUnix, HasUnixEnding(tt.input), "unix detection")
			assert.Equal(t, tt.wantWindows, Violates(tt.input, Unix), "unix violation")
			assert.Equal(t, tt.wantUnix, Violates(tt.input, Windows), "windows violation")
		})
	}
}

func TestConvert(t *testing.T) {
	t.Run("counts_unix_replacements", func(t *testing.T) {
		res := Convert("a\r\nb\r\r\nc\n", Unix)
		assert.Equal(t, "a\nb\nc\n", res.Content)
		assert.Equal(t, 2, res.Replacements)
		assert.True(t, res.Changed)
	})

	t.Run("counts_windows_replacements", func(t *testing.T) {
		res := Convert("a\nb\nc\n", Windows)
		assert.Equal(t, "a\r\nb\r\nc\r\n", res.Content)
		assert.Equal(t, 3, res.Replacements)
		assert.True(t, res.Changed)
	})

	t.Run("unchanged", func(t *testing.T) {
		res := Convert("a\nb\n", Unix)
		assert.Equal(t, "a\nb\n", res.Content)
		assert.Zero(t, res.Replacements)
		assert.False(t, res.Changed)
	})
}

func TestParseLineEnding(t *testing.T) {
	le, err := ParseLineEnding("unix")
	require.NoError(t, err)
	assert.Equal(t, Unix, le)
	assert.Equal(t, "unix", le.String())

	le, err = ParseLineEnding("windows")
	require.NoError(t, err)
	assert.Equal(t, Windows, le)
	assert.Equal(t, "windows", le.String())

	_, err = ParseLineEnding("mac")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown line ending")
}

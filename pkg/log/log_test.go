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

package log

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name        string
		verbose     bool
		op          func(t *testing.T, logger *Logger)
		wantConsole []string
		wantOut     []string
	}{
		{
			name:    "log_file_operation_verbose",
			verbose: true,
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileOperation(context.Background(), FileOperation{
					Path:   "test.txt",
					Type:   "unix",
					Status: "ok",
				})
			},
			wantConsole: []string{
				"    ✓ test.txt                            unix       ok",
			},
		},
		{
			name: "log_file_operation_quiet",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileOperation(context.Background(), FileOperation{
					Path:    "a.cs",
					Type:    "windows",
					Status:  "fixed",
					IsFixed: true,
				})
			},
		},
		{
			name: "invalid_line_ending",
			op: func(t *testing.T, logger *Logger) {
				logger.InvalidLineEnding("/tmp/x/readme.txt")
			},
			wantOut: []string{
				"Invalid line ending in file: /tmp/x/readme.txt",
			},
		},
		{
			name:    "log_run",
			verbose: true,
			op: func(t *testing.T, logger *Logger) {
				logger.StartRun(context.Background(), RunOperation{
					Action:     "fix",
					LineEnding: "unix",
					Root:       "/tmp/test",
				})
			},
			wantConsole: []string{
				"◆ fix • unix",
				"[walking /tmp/test]",
			},
		},
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Warning("warning message")
				logger.Error("error message")
				logger.Success("success message")
			},
			wantConsole: []string{
				"⚠️  warning message",
				"❌ error message",
				"✅ success message",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Warningf("warning %s", "test")
				logger.Successf("success %s", "test")
			},
			wantConsole: []string{
				"⚠️  warning test",
				"✅ success test",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("test header")
			},
			wantConsole: []string{
				"crlf • test header",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, console bytes.Buffer
			logger := New(&out, &console, zerolog.New(io.Discard))
			logger.SetVerbose(tt.verbose)

			tt.op(t, logger)

			assert.Equal(t, tt.wantConsole, nonEmptyLines(console.String()), "console output")
			assert.Equal(t, tt.wantOut, nonEmptyLines(out.String()), "diagnostic output")
		})
	}
}

func TestLoggerContext(t *testing.T) {
	logger := New(io.Discard, io.Discard, zerolog.New(io.Discard))
	ctx := NewContext(context.Background(), logger)

	got := FromContext(ctx)
	assert.Same(t, logger, got)

	assert.Panics(t, func() {
		FromContext(context.Background())
	})
}

func TestFileOperationFormatting(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name string
		op   FileOperation
		want string
	}{
		{
			name: "validated",
			op:   FileOperation{Path: "test.txt", Type: "unix", Status: "ok"},
			want: "    ✓ test.txt                            unix       ok             ",
		},
		{
			name: "fixed",
			op:   FileOperation{Path: "a.cs", Type: "windows", Status: "fixed", IsFixed: true},
			want: "    ⟳ a.cs                                windows    fixed          ",
		},
		{
			name: "skipped",
			op:   FileOperation{Path: "b.txt", Type: "unix", Status: "skipped", IsSkipped: true},
			want: "    • b.txt                               unix       skipped        ",
		},
		{
			name: "invalid",
			op:   FileOperation{Path: "c.txt", Type: "unix", Status: "invalid", IsInvalid: true},
			want: "    ✗ c.txt                               unix       invalid        ",
		},
		{
			name: "fallback_encoding",
			op:   FileOperation{Path: "d.txt", Type: "unix", Status: "fixed", IsFixed: true, Fallback: true},
			want: "    ⟳ d.txt                               unix       fixed (cp1251) ",
		},
	}

	logger := New(io.Discard, io.Discard, zerolog.New(io.Discard))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.formatFileOperation(tt.op))
		})
	}
}

func TestEndRunCountsFiles(t *testing.T) {
	var zbuf bytes.Buffer
	logger := New(io.Discard, io.Discard, zerolog.New(&zbuf))
	ctx := context.Background()

	logger.StartRun(ctx, RunOperation{Action: "validate", LineEnding: "windows", Root: "/tmp"})
	logger.LogFileOperation(ctx, FileOperation{Path: "a", Status: "ok"})
	logger.LogFileOperation(ctx, FileOperation{Path: "b", Status: "invalid", IsInvalid: true})
	logger.EndRun(ctx, false)

	assert.Contains(t, zbuf.String(), `"files":2`)

	zbuf.Reset()
	logger.StartRun(ctx, RunOperation{Action: "fix", LineEnding: "unix", Root: "/tmp"})
	logger.EndRun(ctx, true)
	assert.Contains(t, zbuf.String(), `"files":0`, "the count starts over with every run")
}

func TestErrorStaysBelowWarn(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var console, zbuf bytes.Buffer
	logger := New(io.Discard, &console, zerolog.New(&zbuf).Level(zerolog.WarnLevel))

	logger.Error("boom")

	assert.Equal(t, "❌ boom\n", console.String())
	assert.Empty(t, zbuf.String(), "a fatal error is printed once, not again as a json line")
}

func TestZerologMirror(t *testing.T) {
	var zbuf bytes.Buffer
	logger := New(io.Discard, io.Discard, zerolog.New(&zbuf))

	logger.InvalidLineEnding("/x/y.txt")

	assert.Contains(t, zbuf.String(), `"file":"/x/y.txt"`)
	assert.Contains(t, zbuf.String(), `"level":"warn"`)
}

func nonEmptyLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

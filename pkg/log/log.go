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
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent   = 4  // spaces to indent file entries
	nameWidth    = 35 // Base width for filename
	typeWidth    = 10 // Width for line ending
	statusWidth  = 15 // Width for status text
	invalidLabel = "Invalid line ending in file: "
)

// 🎯 FileOperation represents one processed file for logging
type FileOperation struct {
	Path         string // Absolute file path
	Type         string // Target line ending (unix/windows)
	Status       string // Outcome name
	IsFixed      bool   // File was rewritten
	IsInvalid    bool   // File failed validation
	IsSkipped    bool   // Index said the file was already conformant
	Replacements int    // Number of line endings rewritten
	Fallback     bool   // Decoded as windows-1251
}

// 📦 RunOperation represents a whole walk for logging
type RunOperation struct {
	Action     string // fix or validate
	LineEnding string // unix or windows
	Root       string // Directory being walked
	Index      string // Index store, empty when disabled
}

// 🎯 Logger handles structured logging with console output. Diagnostics meant
// for scripts go to out; everything else goes to console.
type Logger struct {
	zlog       zerolog.Logger
	out        io.Writer
	console    io.Writer
	verbose    bool
	mu         sync.Mutex
	currentRun *RunOperation
	files      int
}

// 🏭 New creates a new logger
func New(out, console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		out:     out,
		console: console,
		mu:      sync.Mutex{},
	}
}

// SetVerbose makes LogFileOperation print every file to the console
func (l *Logger) SetVerbose(v bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = v
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatFileOperation formats a file operation for display
func (l *Logger) formatFileOperation(op FileOperation) string {
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case op.IsInvalid:
		symbol = '✗'
		symbolColor = color.FgRed
	case op.IsFixed:
		symbol = '⟳'
		symbolColor = color.FgBlue
	case op.IsSkipped:
		symbol = '•'
		symbolColor = color.FgCyan
	default:
		symbol = '✓'
		symbolColor = color.FgGreen
	}

	status := op.Status
	if op.Fallback {
		status += " (cp1251)"
	}

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, op.Path),
		color.New(color.FgYellow).Sprint(fmt.Sprintf("%-*s", typeWidth, op.Type)),
		fmt.Sprintf("%-*s", statusWidth, status))
}

// 📝 LogFileOperation counts a file operation and prints it when verbose
func (l *Logger) LogFileOperation(ctx context.Context, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.files++

	if l.verbose {
		fmt.Fprintln(l.console, l.formatFileOperation(op))
	}

	l.zlog.Debug().
		Str("file", op.Path).
		Str("type", op.Type).
		Str("status", op.Status).
		Bool("is_fixed", op.IsFixed).
		Bool("is_invalid", op.IsInvalid).
		Bool("is_skipped", op.IsSkipped).
		Bool("fallback", op.Fallback).
		Int("replacements", op.Replacements).
		Msg("file operation")
}

// 🚨 InvalidLineEnding prints the validation diagnostic for path
func (l *Logger) InvalidLineEnding(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.out, "%s%s\n", invalidLabel, path)
	l.zlog.Warn().Str("file", path).Msg("invalid line ending")
}

// 📝 StartRun starts a new walk
func (l *Logger) StartRun(ctx context.Context, op RunOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentRun = &op
	l.files = 0

	if l.verbose {
		fmt.Fprintf(l.console, "%s %s %s %s\n",
			color.New(color.FgMagenta).Sprint("◆"),
			color.New(color.Bold).Sprint(op.Action),
			color.New(color.Faint).Sprint("•"),
			color.New(color.FgYellow).Sprint(op.LineEnding))
		fmt.Fprintf(l.console, "[walking %s]\n", color.New(color.FgCyan).Sprint(op.Root))
	}

	l.zlog.Info().
		Str("action", op.Action).
		Str("line_ending", op.LineEnding).
		Str("root", op.Root).
		Str("index", op.Index).
		Msg("starting run")
}

// 📝 EndRun ends the current walk
func (l *Logger) EndRun(ctx context.Context, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentRun == nil {
		return
	}

	l.zlog.Info().
		Str("root", l.currentRun.Root).
		Int("files", l.files).
		Bool("ok", ok).
		Msg("run complete")

	l.currentRun = nil
	l.files = 0
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	crlfText := color.New(color.Bold, color.FgCyan).Sprint("crlf")
	fmt.Fprintf(l.console, "\n%s %s\n\n", crlfText, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Print writes msg to the console as is
func (l *Logger) Print(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error prints an error message. The console line is the record, so
// zerolog only sees it at debug level.
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Debug().Msg(msg)
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}

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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/crlf/cmd/crlf/commands"
	"github.com/walteh/crlf/cmd/crlf/opts"
)

// Exit codes
const (
	exitOK      = 0
	exitInvalid = 1 // at least one file failed validation
	exitUsage   = 2 // bad arguments or path
	exitFatal   = 3 // I/O, config, index or lock problems
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	o := &opts.RootOpts{
		Stdout: stdout,
		Stderr: stderr,
	}

	cmd := newRootCmd(o)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	code := exitCode(err)

	switch code {
	case exitUsage:
		fmt.Fprintln(stderr, err.Error())
	case exitFatal:
		if o.Logger != nil {
			o.Logger.Error(err.Error())
		} else {
			fmt.Fprintf(stderr, "❌ %s\n", err)
		}
	}

	return code
}

// exitCode maps the error returned by a command to an exit code
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}

	var usage *commands.UsageError
	if errors.As(err, &usage) {
		return exitUsage
	}
	if errors.Is(err, commands.ErrValidationFailed) {
		return exitInvalid
	}
	return exitFatal
}

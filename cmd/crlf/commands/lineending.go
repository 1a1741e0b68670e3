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

package commands

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/crlf/cmd/crlf/opts"
	"github.com/walteh/crlf/pkg/log"
	"github.com/walteh/crlf/pkg/operation"
	"github.com/walteh/crlf/pkg/status"
	"github.com/walteh/crlf/pkg/text"
)

// lineEndingArgs checks for <unix|windows> <path>
func lineEndingArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return NewUsageError()
	}
	if _, err := text.ParseLineEnding(args[0]); err != nil {
		return NewUsageError()
	}
	return nil
}

// resolveRoot returns the absolute path of an existing directory
func resolveRoot(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return "", &UsageError{Msg: "Path should be valid directory"}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Errorf("resolving %s: %w", path, err)
	}
	return abs, nil
}

// 🏃 runAction builds an operator for action and runs it over args[1]
func runAction(cmd *cobra.Command, o *opts.RootOpts, action operation.Action, args []string, dryRun bool) error {
	ctx := cmd.Context()

	le, err := text.ParseLineEnding(args[0])
	if err != nil {
		return NewUsageError()
	}

	root, err := resolveRoot(args[1])
	if err != nil {
		return err
	}

	ctx = zerolog.Ctx(ctx).With().
		Str("command", action.String()).
		Str("line_ending", le.String()).
		Logger().WithContext(ctx)

	op, err := operation.New(operation.Options{
		Config:     o.Config,
		Index:      o.Index(),
		Logger:     o.Logger,
		LineEnding: le,
		Action:     action,
		DryRun:     dryRun,
	})
	if err != nil {
		return errors.Errorf("creating operator: %w", err)
	}

	logger := log.FromContext(ctx)
	if o.Verbose {
		logger.Header(action.String() + " " + le.String() + " " + root)
	}

	ok, err := op.Run(ctx, root)
	if err != nil {
		return errors.Errorf("running %s: %w", action, err)
	}

	if o.Verbose {
		logger.LogNewline()
		tracker := op.Tracker()
		if ok {
			logger.Successf("%d files processed", tracker.Total())
		} else {
			logger.Warningf("%d of %d files failed validation", len(tracker.Failed()), tracker.Total())
		}
	}

	if o.Summary {
		table, err := status.FormatSummary(op.Tracker())
		if err != nil {
			return err
		}
		logger.Print(table)
	}

	if !ok {
		return ErrValidationFailed
	}
	return nil
}

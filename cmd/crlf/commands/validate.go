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
	"github.com/spf13/cobra"

	"github.com/walteh/crlf/cmd/crlf/opts"
	"github.com/walteh/crlf/pkg/operation"
)

// ✅ NewValidateCmd creates the validate command
func NewValidateCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <unix|windows> <path>",
		Short: "Report files whose line endings do not match",
		Long: `Validate walks the directory and prints one line per matching file that
contains a line ending of the other convention:

  Invalid line ending in file: <path>

Files are never modified. The command fails when any file is reported.`,
		Args: lineEndingArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, o, operation.Validate, args, false)
		},
	}

	return cmd
}

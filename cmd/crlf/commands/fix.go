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

// 🔧 NewFixCmd creates the fix command
func NewFixCmd(o *opts.RootOpts) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "fix <unix|windows> <path>",
		Short: "Rewrite line endings under a directory",
		Long: `Fix walks the directory and rewrites every matching file so that all of
its line endings follow the target convention. It will:
1. Skip excluded folders, symlinks and files with other extensions
2. Skip files the index remembers as conformant and unchanged
3. Rewrite the rest and record their new timestamps`,
		Args: lineEndingArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, o, operation.Fix, args, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would change without writing")

	return cmd
}

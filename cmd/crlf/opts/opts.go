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

package opts

import (
	"io"

	"github.com/walteh/crlf/pkg/config"
	"github.com/walteh/crlf/pkg/index"
	"github.com/walteh/crlf/pkg/log"
)

// 🎯 RootOpts is shared by every command. Config and Logger are filled in by
// the root command once flags are parsed.
type RootOpts struct {
	// Config is the effective configuration
	Config *config.Config
	// Logger prints diagnostics to Stdout and messages to Stderr
	Logger *log.Logger
	// NoIndex runs without loading or saving the index
	NoIndex bool
	// Summary prints a table of outcomes after the run
	Summary bool
	// Verbose prints every processed file and a closing status line
	Verbose bool

	Stdout io.Writer
	Stderr io.Writer
}

// 🗂️ Index returns the index a run should use
func (o *RootOpts) Index() *index.Index {
	if o.NoIndex {
		return index.NewInMemory()
	}
	return index.New(o.Config.IndexPath)
}

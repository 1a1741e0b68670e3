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

package operation

import (
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/crlf/pkg/config"
	"github.com/walteh/crlf/pkg/index"
	"github.com/walteh/crlf/pkg/log"
	"github.com/walteh/crlf/pkg/status"
	"github.com/walteh/crlf/pkg/text"
)

// 🎬 Action is what a run does to each eligible file
type Action int

const (
	Fix      Action = iota // rewrite toward the target line ending
	Validate               // report files that do not follow it
)

// String returns the name used on the command line
func (a Action) String() string {
	switch a {
	case Fix:
		return "fix"
	case Validate:
		return "validate"
	default:
		return "unknown"
	}
}

// 🔍 ParseAction parses "fix" or "validate"
func ParseAction(s string) (Action, error) {
	switch s {
	case "fix":
		return Fix, nil
	case "validate":
		return Validate, nil
	default:
		return 0, errors.Errorf("unknown action %q", s)
	}
}

// 🔧 Options contains configuration for the operator
type Options struct {
	// Config selects the files and folders a run looks at
	Config *config.Config
	// Index remembers which files were conformant at which timestamp
	Index *index.Index
	// Tracker collects per-file outcomes; a new one is created when nil
	Tracker *status.Tracker
	// Logger prints diagnostics and console messages
	Logger *log.Logger
	// LineEnding is the target convention
	LineEnding text.LineEnding
	// Action is fix or validate
	Action Action
	// DryRun reports what fix would change without writing anything
	DryRun bool
}

// 🎮 Operator applies one action with one target line ending to files
type Operator struct {
	config     *config.Config
	index      *index.Index
	tracker    *status.Tracker
	logger     *log.Logger
	lineEnding text.LineEnding
	action     Action
	dryRun     bool
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (*Operator, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Index == nil {
		return nil, errors.Errorf("index is required")
	}
	if opts.Logger == nil {
		return nil, errors.Errorf("logger is required")
	}
	if opts.Action != Fix && opts.Action != Validate {
		return nil, errors.Errorf("unknown action %d", opts.Action)
	}
	if opts.LineEnding != text.Unix && opts.LineEnding != text.Windows {
		return nil, errors.Errorf("unknown line ending %d", opts.LineEnding)
	}

	tracker := opts.Tracker
	if tracker == nil {
		tracker = status.NewTracker()
	}

	return &Operator{
		config:     opts.Config,
		index:      opts.Index,
		tracker:    tracker,
		logger:     opts.Logger,
		lineEnding: opts.LineEnding,
		action:     opts.Action,
		dryRun:     opts.DryRun,
	}, nil
}

// Tracker returns the outcomes collected so far
func (o *Operator) Tracker() *status.Tracker {
	return o.tracker
}

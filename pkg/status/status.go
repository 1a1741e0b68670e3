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

package status

import (
	"context"
	"sort"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 Outcome is the terminal state of a file within one run
type Outcome int

const (
	OutcomeUnknown         Outcome = iota
	OutcomeIgnored                 // not eligible (symlink or extension not allowed)
	OutcomeSkipped                 // index says it is unchanged and conformant
	OutcomeFixed                   // rewritten toward the target convention
	OutcomeWouldFix                // dry run: would have been rewritten
	OutcomeValidatedOK             // validated, conformant
	OutcomeValidatedFailed         // validated, not conformant
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFixed:
		return "fixed"
	case OutcomeWouldFix:
		return "would fix"
	case OutcomeValidatedOK:
		return "valid"
	case OutcomeValidatedFailed:
		return "invalid"
	default:
		return "unknown"
	}
}

// Success reports whether the outcome counts as success for the run
func (o Outcome) Success() bool {
	return o != OutcomeValidatedFailed && o != OutcomeUnknown
}

// 📄 Entry describes what happened to one file
type Entry struct {
	Path         string
	Outcome      Outcome
	Replacements int  // line endings rewritten, fix mode only
	Fallback     bool // decoded as windows-1251
}

// 📈 Tracker collects the entries of a run. Runs are sequential, so it is not
// synchronized.
type Tracker struct {
	entries map[string]Entry
}

// 🏭 NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{
		entries: make(map[string]Entry),
	}
}

// TrackFile records the entry for a file, replacing any earlier one
func (t *Tracker) TrackFile(ctx context.Context, e Entry) {
	t.entries[e.Path] = e

	zerolog.Ctx(ctx).Debug().
		Str("path", e.Path).
		Str("outcome", e.Outcome.String()).
		Int("replacements", e.Replacements).
		Bool("fallback", e.Fallback).
		Msg("file processed")
}

// GetFileInfo returns the entry for path
func (t *Tracker) GetFileInfo(path string) (Entry, error) {
	e, ok := t.entries[path]
	if !ok {
		return Entry{}, errors.Errorf("file not tracked: %s", path)
	}
	return e, nil
}

// Counts returns the number of files per outcome
func (t *Tracker) Counts() map[Outcome]int {
	counts := make(map[Outcome]int)
	for _, e := range t.entries {
		counts[e.Outcome]++
	}
	return counts
}

// Failed returns the sorted paths that failed validation
func (t *Tracker) Failed() []string {
	var out []string
	for p, e := range t.entries {
		if !e.Outcome.Success() {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

// Total returns the number of tracked files
func (t *Tracker) Total() int {
	return len(t.entries)
}

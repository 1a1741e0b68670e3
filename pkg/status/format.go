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
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"gitlab.com/tozd/go/errors"
)

var summaryOrder = []Outcome{
	OutcomeFixed,
	OutcomeWouldFix,
	OutcomeValidatedOK,
	OutcomeValidatedFailed,
	OutcomeSkipped,
	OutcomeIgnored,
}

// FormatOutcome formats a single file entry with an emoji prefix
func FormatOutcome(e Entry) string {
	switch e.Outcome {
	case OutcomeFixed:
		return fmt.Sprintf("📝 Fixed %s (%d line endings)", e.Path, e.Replacements)
	case OutcomeWouldFix:
		return fmt.Sprintf("🔍 Would fix %s (%d line endings)", e.Path, e.Replacements)
	case OutcomeValidatedOK:
		return fmt.Sprintf("👍 Valid %s", e.Path)
	case OutcomeValidatedFailed:
		return fmt.Sprintf("❌ Invalid %s", e.Path)
	case OutcomeSkipped:
		return fmt.Sprintf("⏭️  Unchanged %s", e.Path)
	case OutcomeIgnored:
		return fmt.Sprintf("➖ Ignored %s", e.Path)
	default:
		return fmt.Sprintf("❔ Unknown %s", e.Path)
	}
}

// 📊 FormatSummary renders the per-outcome counts as a table. Outcomes with no
// files are left out.
func FormatSummary(t *Tracker) (string, error) {
	counts := t.Counts()

	data := pterm.TableData{{"Outcome", "Files"}}
	for _, o := range summaryOrder {
		if counts[o] == 0 {
			continue
		}
		data = append(data, []string{o.String(), strconv.Itoa(counts[o])})
	}
	data = append(data, []string{"total", strconv.Itoa(t.Total())})

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", errors.Errorf("rendering summary: %w", err)
	}
	return out, nil
}

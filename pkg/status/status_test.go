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
	"testing"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestLogger(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.TestWriter{T: t}).With().Timestamp().Logger()
	return logger.WithContext(context.Background())
}

func TestTracker(t *testing.T) {
	ctx := setupTestLogger(t)

	tr := NewTracker()
	tr.TrackFile(ctx, Entry{Path: "/src/b.cs", Outcome: OutcomeFixed, Replacements: 3})
	tr.TrackFile(ctx, Entry{Path: "/src/a.cs", Outcome: OutcomeValidatedFailed})
	tr.TrackFile(ctx, Entry{Path: "/src/c.cs", Outcome: OutcomeSkipped})
	tr.TrackFile(ctx, Entry{Path: "/src/d.cs", Outcome: OutcomeValidatedFailed})

	t.Run("counts", func(t *testing.T) {
		counts := tr.Counts()
		assert.Equal(t, 1, counts[OutcomeFixed])
		assert.Equal(t, 2, counts[OutcomeValidatedFailed])
		assert.Equal(t, 1, counts[OutcomeSkipped])
		assert.Equal(t, 4, tr.Total())
	})

	t.Run("failed_sorted", func(t *testing.T) {
		assert.Equal(t, []string{"/src/a.cs", "/src/d.cs"}, tr.Failed())
	})

	t.Run("get_file_info", func(t *testing.T) {
		e, err := tr.GetFileInfo("/src/b.cs")
		require.NoError(t, err)
		assert.Equal(t, 3, e.Replacements)

		_, err = tr.GetFileInfo("/src/missing.cs")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "file not tracked")
	})

	t.Run("retrack_replaces", func(t *testing.T) {
		tr.TrackFile(ctx, Entry{Path: "/src/a.cs", Outcome: OutcomeValidatedOK})
		assert.Equal(t, 4, tr.Total())
		assert.Equal(t, []string{"/src/d.cs"}, tr.Failed())
	})
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		outcome Outcome
		name    string
		success bool
	}{
		{OutcomeUnknown, "unknown", false},
		{OutcomeIgnored, "ignored", true},
		{OutcomeSkipped, "skipped", true},
		{OutcomeFixed, "fixed", true},
		{OutcomeWouldFix, "would fix", true},
		{OutcomeValidatedOK, "valid", true},
		{OutcomeValidatedFailed, "invalid", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.outcome.String())
			assert.Equal(t, tt.success, tt.outcome.Success())
		})
	}
}

func TestFormatOutcome(t *testing.T) {
	assert.Equal(t, "📝 Fixed /a.cs (2 line endings)", FormatOutcome(Entry{Path: "/a.cs", Outcome: OutcomeFixed, Replacements: 2}))
	assert.Equal(t, "❌ Invalid /a.cs", FormatOutcome(Entry{Path: "/a.cs", Outcome: OutcomeValidatedFailed}))
	assert.Equal(t, "👍 Valid /a.cs", FormatOutcome(Entry{Path: "/a.cs", Outcome: OutcomeValidatedOK}))
}

func TestFormatSummary(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	ctx := setupTestLogger(t)
	tr := NewTracker()
	tr.TrackFile(ctx, Entry{Path: "/a", Outcome: OutcomeFixed})
	tr.TrackFile(ctx, Entry{Path: "/b", Outcome: OutcomeFixed})
	tr.TrackFile(ctx, Entry{Path: "/c", Outcome: OutcomeSkipped})

	out, err := FormatSummary(tr)
	require.NoError(t, err)
	assert.Contains(t, out, "Outcome")
	assert.Contains(t, out, "fixed")
	assert.Contains(t, out, "skipped")
	assert.Contains(t, out, "total")
	assert.NotContains(t, out, "invalid", "empty outcomes should be left out")
}

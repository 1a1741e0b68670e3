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
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/crlf/pkg/encoding"
	"github.com/walteh/crlf/pkg/index"
	"github.com/walteh/crlf/pkg/log"
	"github.com/walteh/crlf/pkg/status"
	"github.com/walteh/crlf/pkg/text"
)

// 📄 Process applies the operator's action to one file and reports whether
// the file counts as success. A file that fails validation is not an error;
// only I/O problems are.
func (o *Operator) Process(ctx context.Context, path string, info fs.FileInfo) (bool, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false, errors.Errorf("resolving %s: %w", path, err)
	}

	if info.Mode()&fs.ModeSymlink != 0 || !info.Mode().IsRegular() || !o.config.AllowsFile(info.Name()) {
		o.track(ctx, status.Entry{Path: abs, Outcome: status.OutcomeIgnored})
		return true, nil
	}

	if o.index.IsFresh(abs, info.ModTime()) {
		o.track(ctx, status.Entry{Path: abs, Outcome: status.OutcomeSkipped})
		return true, nil
	}

	switch o.action {
	case Fix:
		return o.fix(ctx, abs)
	case Validate:
		return o.validate(ctx, abs, info)
	default:
		return false, errors.Errorf("unknown action %d", o.action)
	}
}

// 🔧 fix rewrites the file even when nothing changed, so its timestamp moves
// and the new one is what the index remembers
func (o *Operator) fix(ctx context.Context, abs string) (bool, error) {
	doc, err := encoding.Read(ctx, abs)
	if err != nil {
		return false, errors.Errorf("reading: %w", err)
	}

	res := text.Convert(doc.Text, o.lineEnding)

	if o.dryRun {
		outcome := status.OutcomeSkipped
		if res.Changed {
			outcome = status.OutcomeWouldFix
		}
		o.track(ctx, status.Entry{
			Path:         abs,
			Outcome:      outcome,
			Replacements: res.Replacements,
			Fallback:     doc.Fallback,
		})
		return true, nil
	}

	if err := encoding.Write(ctx, doc, res.Content); err != nil {
		return false, errors.Errorf("writing: %w", err)
	}

	after, err := os.Stat(abs)
	if err != nil {
		return false, errors.Errorf("stat after write: %w", err)
	}

	o.index.Upsert(abs, index.Record{LastModified: after.ModTime(), Conformant: true})
	o.track(ctx, status.Entry{
		Path:         abs,
		Outcome:      status.OutcomeFixed,
		Replacements: res.Replacements,
		Fallback:     doc.Fallback,
	})
	return true, nil
}

// ✅ validate never writes the file; only the index learns the result
func (o *Operator) validate(ctx context.Context, abs string, info fs.FileInfo) (bool, error) {
	doc, err := encoding.ReadUTF8(ctx, abs)
	if err != nil {
		return false, errors.Errorf("reading: %w", err)
	}

	if text.Violates(doc.Text, o.lineEnding) {
		o.logger.InvalidLineEnding(abs)
		o.index.Upsert(abs, index.Record{LastModified: info.ModTime(), Conformant: false})
		o.track(ctx, status.Entry{Path: abs, Outcome: status.OutcomeValidatedFailed})
		return false, nil
	}

	o.index.Upsert(abs, index.Record{LastModified: info.ModTime(), Conformant: true})
	o.track(ctx, status.Entry{Path: abs, Outcome: status.OutcomeValidatedOK})
	return true, nil
}

func (o *Operator) track(ctx context.Context, e status.Entry) {
	o.tracker.TrackFile(ctx, e)

	zerolog.Ctx(ctx).Trace().Str("entry", status.FormatOutcome(e)).Msg("tracked")

	o.logger.LogFileOperation(ctx, log.FileOperation{
		Path:         e.Path,
		Type:         o.lineEnding.String(),
		Status:       e.Outcome.String(),
		IsFixed:      e.Outcome == status.OutcomeFixed || e.Outcome == status.OutcomeWouldFix,
		IsInvalid:    e.Outcome == status.OutcomeValidatedFailed,
		IsSkipped:    e.Outcome == status.OutcomeSkipped || e.Outcome == status.OutcomeIgnored,
		Replacements: e.Replacements,
		Fallback:     e.Fallback,
	})
}

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

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/crlf/pkg/log"
	"github.com/walteh/crlf/pkg/walk"
)

// 🏃 Run walks root with the index locked and loaded. The index is saved
// only when the walk finished without an error.
func (o *Operator) Run(ctx context.Context, root string) (ok bool, err error) {
	logger := zerolog.Ctx(ctx)

	if err := o.index.Lock(ctx); err != nil {
		return false, errors.Errorf("locking index: %w", err)
	}
	defer func() {
		if uerr := o.index.Unlock(ctx); uerr != nil && err == nil {
			err = errors.Errorf("unlocking index: %w", uerr)
		}
	}()

	if err := o.index.Load(ctx); err != nil {
		return false, errors.Errorf("loading index: %w", err)
	}

	walker, err := walk.New(o.config, o)
	if err != nil {
		return false, errors.Errorf("creating walker: %w", err)
	}

	o.logger.StartRun(ctx, log.RunOperation{
		Action:     o.action.String(),
		LineEnding: o.lineEnding.String(),
		Root:       root,
		Index:      o.index.Path(),
	})

	ok, err = walker.Walk(ctx, root)
	o.logger.EndRun(ctx, ok && err == nil)
	if err != nil {
		return false, errors.Errorf("walking %s: %w", root, err)
	}

	if o.dryRun {
		logger.Debug().Msg("dry run, index not saved")
		return ok, nil
	}

	if err := o.index.Save(ctx); err != nil {
		return false, errors.Errorf("saving index: %w", err)
	}

	logger.Debug().
		Bool("ok", ok).
		Int("files", o.tracker.Total()).
		Int("records", o.index.Len()).
		Msg("run finished")

	return ok, nil
}

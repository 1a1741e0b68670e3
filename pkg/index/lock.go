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

package index

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ErrLocked is returned when another run holds the index
var ErrLocked = errors.Base("index is locked by another run")

// 🔒 Lock takes an exclusive lock on <store>.lock. It does not wait: if another
// process holds the lock, ErrLocked is returned.
func (i *Index) Lock(ctx context.Context) error {
	if i.inMemory {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(i.path), 0755); err != nil {
		return errors.Errorf("creating index directory: %w", err)
	}

	acquired, err := i.lock.TryLock()
	if err != nil {
		return errors.Errorf("locking %s: %w", i.lock.Path(), err)
	}
	if !acquired {
		return errors.WithDetails(ErrLocked, "lock", i.lock.Path())
	}

	zerolog.Ctx(ctx).Debug().Str("lock", i.lock.Path()).Msg("index locked")
	return nil
}

// 🔓 Unlock releases the lock taken by Lock. The lock file itself stays on
// disk and is reused by the next run.
func (i *Index) Unlock(ctx context.Context) error {
	if i.inMemory {
		return nil
	}

	if err := i.lock.Unlock(); err != nil {
		return errors.Errorf("unlocking %s: %w", i.lock.Path(), err)
	}

	zerolog.Ctx(ctx).Debug().Str("lock", i.lock.Path()).Msg("index unlocked")
	return nil
}

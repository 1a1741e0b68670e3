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

// Package walk visits a directory tree depth first and hands every eligible
// file to an Action.
//
//	root/
//	├── sub-a/      ← directories first, by name
//	│   └── x.cs    ← then files, by name
//	├── .git/       ← excluded folder: skipped, counts as success
//	├── link/       ← symlink: skipped, counts as success
//	└── y.txt
//
// The result of a walk is the logical AND of every file and directory result.
// A failure in one branch does not stop its siblings; an error stops the walk.
package walk

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔍 Filter decides which folders and files a walk may visit
type Filter interface {
	// ExcludesFolder reports whether a folder with this base name is skipped
	ExcludesFolder(name string) bool
	// AllowsFile reports whether a file with this base name is processed
	AllowsFile(name string) bool
}

// 🎯 Action is applied to every eligible file
type Action interface {
	// Process handles one file and reports whether it succeeded
	Process(ctx context.Context, path string, info fs.FileInfo) (bool, error)
}

// 🚶 Walker walks directory trees
type Walker struct {
	filter Filter
	action Action
}

// 🏭 New creates a walker
func New(filter Filter, action Action) (*Walker, error) {
	if filter == nil {
		return nil, errors.Errorf("filter is required")
	}
	if action == nil {
		return nil, errors.Errorf("action is required")
	}
	return &Walker{filter: filter, action: action}, nil
}

// 🌳 Walk visits dir and everything below it
func (w *Walker) Walk(ctx context.Context, dir string) (bool, error) {
	info, err := os.Lstat(dir)
	if err != nil {
		return false, errors.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() && info.Mode()&fs.ModeSymlink == 0 {
		return false, errors.Errorf("%s is not a directory", dir)
	}
	return w.walkDir(ctx, dir, info)
}

func (w *Walker) walkDir(ctx context.Context, dir string, info fs.FileInfo) (bool, error) {
	logger := zerolog.Ctx(ctx)

	if info.Mode()&fs.ModeSymlink != 0 {
		logger.Debug().Str("dir", dir).Msg("skipping symlinked directory")
		return true, nil
	}
	if w.filter.ExcludesFolder(filepath.Base(dir)) {
		logger.Debug().Str("dir", dir).Msg("skipping excluded directory")
		return true, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, errors.Errorf("reading directory %s: %w", dir, err)
	}

	ok := true

	for _, entry := range entries {
		if !entry.IsDir() && !isSymlinkedDir(dir, entry) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return false, err
		}

		path := filepath.Join(dir, entry.Name())
		sub, err := entry.Info()
		if err != nil {
			return false, errors.Errorf("stat %s: %w", path, err)
		}

		res, err := w.walkDir(ctx, path, sub)
		if err != nil {
			return false, err
		}
		ok = ok && res
	}

	for _, entry := range entries {
		if entry.IsDir() || isSymlinkedDir(dir, entry) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return false, err
		}

		path := filepath.Join(dir, entry.Name())
		if entry.Type()&fs.ModeSymlink != 0 {
			logger.Debug().Str("file", path).Msg("skipping symlinked file")
			continue
		}
		if !entry.Type().IsRegular() {
			logger.Debug().Str("file", path).Msg("skipping irregular file")
			continue
		}
		if !w.filter.AllowsFile(entry.Name()) {
			continue
		}

		fi, err := entry.Info()
		if err != nil {
			return false, errors.Errorf("stat %s: %w", path, err)
		}

		res, err := w.action.Process(ctx, path, fi)
		if err != nil {
			return false, errors.Errorf("processing %s: %w", path, err)
		}
		ok = ok && res
	}

	return ok, nil
}

// isSymlinkedDir reports whether entry is a symlink pointing at a directory.
// Such entries are treated as directories so they are skipped as folders.
func isSymlinkedDir(dir string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	target, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && target.IsDir()
}

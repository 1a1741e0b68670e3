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

// Package index persists, per absolute file path, the modification time at
// which the file was last seen and whether it was conformant at that time.
// The whole mapping is loaded once at the start of a run and written once at
// the end.
package index

import (
	"bytes"
	"context"
	"encoding/gob"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultPath is the store used when none is configured
const DefaultPath = "index.bin"

// formatVersion is bumped whenever Record changes shape
const formatVersion = 1

// 📝 Record is what the index remembers about one file
type Record struct {
	Path         string
	LastModified time.Time
	Conformant   bool
}

type header struct {
	Version int
}

// 🗂️ Index maps absolute file paths to their last known Record. It is owned
// by a single run and is not safe for concurrent use.
type Index struct {
	path     string
	records  map[string]Record
	lock     *flock.Flock
	inMemory bool
}

// 🏭 New creates an index backed by the store at path
func New(path string) *Index {
	if path == "" {
		path = DefaultPath
	}
	return &Index{
		path:    path,
		records: make(map[string]Record),
		lock:    flock.New(path + ".lock"),
	}
}

// 🏭 NewInMemory creates an index that is never loaded from or saved to disk
func NewInMemory() *Index {
	return &Index{
		records:  make(map[string]Record),
		inMemory: true,
	}
}

// Path returns the location of the backing store, empty for in-memory indexes
func (i *Index) Path() string {
	return i.path
}

// Len returns the number of records
func (i *Index) Len() int {
	return len(i.records)
}

// 📥 Load replaces the in-memory records with the content of the store. A
// missing store yields an empty index; an unreadable or corrupt one is an error.
func (i *Index) Load(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	if i.inMemory {
		return nil
	}

	data, err := os.ReadFile(i.path)
	if os.IsNotExist(err) {
		logger.Debug().Str("path", i.path).Msg("no index found, starting empty")
		i.records = make(map[string]Record)
		return nil
	}
	if err != nil {
		return errors.Errorf("reading index %s: %w", i.path, err)
	}

	dec := gob.NewDecoder(bytes.NewReader(data))

	var h header
	if err := dec.Decode(&h); err != nil {
		return errors.Errorf("decoding index %s header: %w", i.path, err)
	}
	if h.Version != formatVersion {
		return errors.Errorf("index %s has format version %d, want %d", i.path, h.Version, formatVersion)
	}

	records := make(map[string]Record)
	if err := dec.Decode(&records); err != nil {
		return errors.Errorf("decoding index %s: %w", i.path, err)
	}

	i.records = records
	logger.Debug().Str("path", i.path).Int("records", len(records)).Msg("index loaded")
	return nil
}

// 💾 Save writes every record to the store. The data goes to a temporary file
// next to the store which is then renamed over it.
func (i *Index) Save(ctx context.Context) error {
	if i.inMemory {
		return nil
	}

	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(header{Version: formatVersion}); err != nil {
		return errors.Errorf("encoding index header: %w", err)
	}
	if err := enc.Encode(i.records); err != nil {
		return errors.Errorf("encoding index: %w", err)
	}

	if err := writeFileAtomic(i.path, buf.Bytes()); err != nil {
		return errors.Errorf("saving index %s: %w", i.path, err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", i.path).Int("records", len(i.records)).Msg("index saved")
	return nil
}

// 🔍 Get returns the record for path
func (i *Index) Get(path string) (Record, bool) {
	rec, ok := i.records[key(path)]
	return rec, ok
}

// ✏️ Upsert inserts or overwrites the record for path
func (i *Index) Upsert(path string, rec Record) {
	k := key(path)
	rec.Path = k
	rec.LastModified = rec.LastModified.UTC()
	i.records[k] = rec
}

// ✅ IsFresh reports whether path was conformant when it last had modTime
func (i *Index) IsFresh(path string, modTime time.Time) bool {
	rec, ok := i.Get(path)
	return ok && rec.Conformant && rec.LastModified.Equal(modTime)
}

func key(path string) string {
	return filepath.Clean(path)
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".index-*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

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

// Package encoding reads text files as UTF-8 with a best-effort Windows-1251
// fallback and writes them back as UTF-8.
package encoding

import (
	"bytes"
	"context"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/encoding/charmap"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// 📄 Document is the decoded content of a file
type Document struct {
	Path     string
	Text     string
	BOM      bool        // file started with a UTF-8 byte order mark
	Fallback bool        // content was decoded as Windows-1251
	Mode     os.FileMode // permission bits, reused on write
}

// 📖 Read decodes the file at path as UTF-8. When the decoded text holds a
// replacement character the same bytes are decoded again as Windows-1251 and
// that result is used as is. This is a mojibake heuristic, not detection.
func Read(ctx context.Context, path string) (*Document, error) {
	doc, body, err := read(path)
	if err != nil {
		return nil, err
	}

	if !strings.ContainsRune(doc.Text, utf8.RuneError) {
		return doc, nil
	}

	decoded, err := charmap.Windows1251.NewDecoder().Bytes(body)
	if err != nil {
		return nil, errors.Errorf("decoding %s as windows-1251: %w", path, err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("invalid utf-8, using windows-1251")

	doc.Text = string(decoded)
	doc.Fallback = true
	return doc, nil
}

// 📖 ReadUTF8 decodes the file at path as UTF-8 without any fallback
func ReadUTF8(ctx context.Context, path string) (*Document, error) {
	doc, _, err := read(path)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// read returns the document and the bytes after any BOM. Ill-formed
// sequences become U+FFFD, the same as a lenient UTF-8 reader would produce.
func read(path string) (*Document, []byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, errors.Errorf("stat %s: %w", path, err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Errorf("reading %s: %w", path, err)
	}

	doc := &Document{
		Path: path,
		Mode: info.Mode().Perm(),
	}

	body := raw
	if bytes.HasPrefix(body, bom) {
		doc.BOM = true
		body = body[len(bom):]
	}
	doc.Text = strings.ToValidUTF8(string(body), string(utf8.RuneError))

	return doc, body, nil
}

// ✍️ Write replaces the file at path with the UTF-8 bytes of text. The old
// file is removed first, so a crash in between can lose its content.
func Write(ctx context.Context, doc *Document, text string) error {
	mode := doc.Mode
	if mode == 0 {
		mode = 0644
	}

	if err := os.Remove(doc.Path); err != nil {
		return errors.Errorf("removing %s: %w", doc.Path, err)
	}

	f, err := os.OpenFile(doc.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return errors.Errorf("creating %s: %w", doc.Path, err)
	}

	if doc.BOM {
		if _, err := f.Write(bom); err != nil {
			f.Close()
			return errors.Errorf("writing %s: %w", doc.Path, err)
		}
	}

	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return errors.Errorf("writing %s: %w", doc.Path, err)
	}

	if err := f.Close(); err != nil {
		return errors.Errorf("closing %s: %w", doc.Path, err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", doc.Path).Int("bytes", len(text)).Msg("file rewritten")
	return nil
}

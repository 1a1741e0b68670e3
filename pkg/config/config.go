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

package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/crlf/pkg/index"
)

// Environment variables that override the file lists, ';'-separated
const (
	EnvExtensionList     = "CRLF_EXTENSION_LIST"
	EnvExcludeFolderList = "CRLF_EXCLUDE_FOLDER_LIST"
	EnvIndexPath         = "CRLF_INDEX_PATH"
)

// 📚 Config selects which files a run touches and where results are cached
type Config struct {
	// Extensions is the allow-list of file extensions, dot included (".cs")
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty" hcl:"extensions,optional"`
	// ExcludeFolders holds folder base names (or doublestar patterns) never descended into
	ExcludeFolders []string `json:"exclude_folders,omitempty" yaml:"exclude_folders,omitempty" hcl:"exclude_folders,optional"`
	// IndexPath is the location of the result index
	IndexPath string `json:"index_path,omitempty" yaml:"index_path,omitempty" hcl:"index_path,optional"`

	location string
}

// 🏭 Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Extensions:     []string{".cs", ".cshtml", ".txt", ".js", ".xml"},
		ExcludeFolders: []string{".git", "bin"},
		IndexPath:      index.DefaultPath,
	}
}

// Location returns the file the config was loaded from, if any
func (c *Config) Location() string {
	return c.location
}

// 🔀 Merge overlays every non-empty field of other onto c
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if len(other.Extensions) > 0 {
		c.Extensions = other.Extensions
	}
	if len(other.ExcludeFolders) > 0 {
		c.ExcludeFolders = other.ExcludeFolders
	}
	if other.IndexPath != "" {
		c.IndexPath = other.IndexPath
	}
	if other.location != "" {
		c.location = other.location
	}
}

// 🌍 ApplyEnv overrides fields from the CRLF_* environment variables
func (c *Config) ApplyEnv(ctx context.Context) {
	logger := zerolog.Ctx(ctx)

	if v := os.Getenv(EnvExtensionList); v != "" {
		c.Extensions = SplitList(v)
		logger.Debug().Strs("extensions", c.Extensions).Msg("extensions from environment")
	}
	if v := os.Getenv(EnvExcludeFolderList); v != "" {
		c.ExcludeFolders = SplitList(v)
		logger.Debug().Strs("exclude_folders", c.ExcludeFolders).Msg("excluded folders from environment")
	}
	if v := os.Getenv(EnvIndexPath); v != "" {
		c.IndexPath = v
	}
}

// 🔍 Validate normalizes and checks the configuration
func (c *Config) Validate() error {
	if len(c.Extensions) == 0 {
		return errors.Errorf("at least one extension is required")
	}

	exts := make([]string, 0, len(c.Extensions))
	for _, ext := range c.Extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	if len(exts) == 0 {
		return errors.Errorf("at least one extension is required")
	}
	c.Extensions = exts

	for _, pattern := range c.ExcludeFolders {
		if strings.ContainsRune(pattern, '/') {
			return errors.Errorf("exclude folder %q must be a folder name, not a path", pattern)
		}
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("exclude folder %q is not a valid pattern", pattern)
		}
	}

	if c.IndexPath == "" {
		c.IndexPath = index.DefaultPath
	}
	c.IndexPath = filepath.Clean(c.IndexPath)

	return nil
}

// ✅ AllowsFile reports whether a file name has an allow-listed extension.
// The comparison is exact, so ".CS" does not match ".cs".
func (c *Config) AllowsFile(name string) bool {
	ext := filepath.Ext(name)
	if ext == "" {
		return false
	}
	for _, allowed := range c.Extensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// 🚫 ExcludesFolder reports whether a folder with the given base name is skipped
func (c *Config) ExcludesFolder(name string) bool {
	for _, pattern := range c.ExcludeFolders {
		matched, err := doublestar.Match(pattern, name)
		if err != nil {
			continue
		}
		if matched {
			return true
		}
	}
	return false
}

// SplitList splits a ';'-separated list, dropping empty entries
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

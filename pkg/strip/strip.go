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

package strip

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/striprc/pkg/marker"
)

const (
	// TmpSuffix is appended to the path while writing filtered content
	TmpSuffix = ".tmp"

	// BackupSuffix is appended to the original path after stripping
	BackupSuffix = ".old"
)

// 📄 Result describes the outcome of stripping one file
type Result struct {
	Path        string // File path that now holds filtered content
	BackupPath  string // Path holding the pre-filter content
	Kept        int    // Lines kept
	Dropped     int    // Marker lines dropped
	WasModified bool   // Whether any line was dropped
}

// ✂️ StripFile rewrites the file at path without its marker lines.
//
// The sequence is: write filtered content to <path>.tmp, rename path to
// <path>.old (replacing any prior backup), rename the .tmp into place.
// A failure mid-sequence aborts with no recovery; a stray .tmp or an
// original already moved to .old may remain for the operator to inspect.
func StripFile(ctx context.Context, path string, rules *marker.RuleSet) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}

	filtered := rules.FilterLines(content)

	tmpPath := path + TmpSuffix
	if err := os.WriteFile(tmpPath, filtered.FilteredContent, 0644); err != nil {
		return nil, errors.Errorf("writing temp file: %w", err)
	}

	backupPath := path + BackupSuffix
	if err := os.Rename(path, backupPath); err != nil {
		return nil, errors.Errorf("renaming original to backup: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return nil, errors.Errorf("renaming temp into place: %w", err)
	}

	logger.Debug().
		Str("path", path).
		Int("kept", filtered.Kept).
		Int("dropped", filtered.Dropped).
		Msg("stripped file")

	return &Result{
		Path:        path,
		BackupPath:  backupPath,
		Kept:        filtered.Kept,
		Dropped:     filtered.Dropped,
		WasModified: filtered.WasModified,
	}, nil
}

// 🔍 Discover returns the files in dir matching the patterns, grouped in
// pattern order. Matching is against the file name only, case-sensitive.
// Zero matches is not an error.
func Discover(ctx context.Context, dir string, patterns []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Errorf("reading source directory: %w", err)
	}

	var matches []string
	for _, pattern := range patterns {
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			ok, err := doublestar.Match(pattern, entry.Name())
			if err != nil {
				return nil, errors.Errorf("matching pattern %q: %w", pattern, err)
			}
			if ok {
				matches = append(matches, filepath.Join(dir, entry.Name()))
			}
		}
	}

	zerolog.Ctx(ctx).Debug().
		Str("dir", dir).
		Strs("patterns", patterns).
		Int("matches", len(matches)).
		Msg("discovered files")

	return matches, nil
}

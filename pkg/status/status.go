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
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/striprc/pkg/marker"
	"github.com/walteh/striprc/pkg/strip"
)

// 📊 FileReport describes one scanned file
type FileReport struct {
	Path        string // File path
	TotalLines  int    // Total lines in the file
	MarkerLines int    // Lines that would be dropped by a strip pass
}

// Dirty reports whether a strip pass would modify the file
func (r FileReport) Dirty() bool {
	return r.MarkerLines > 0
}

// 🔍 Scan inspects every file in dir matching the patterns and counts
// marker lines without modifying anything.
func Scan(ctx context.Context, dir string, patterns []string, rules *marker.RuleSet) ([]FileReport, error) {
	files, err := strip.Discover(ctx, dir, patterns)
	if err != nil {
		return nil, errors.Errorf("discovering files: %w", err)
	}

	reports := make([]FileReport, 0, len(files))
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Errorf("reading file %s: %w", path, err)
		}

		result := rules.FilterLines(content)
		reports = append(reports, FileReport{
			Path:        path,
			TotalLines:  result.Kept + result.Dropped,
			MarkerLines: result.Dropped,
		})
	}

	zerolog.Ctx(ctx).Debug().
		Int("files", len(reports)).
		Msg("scanned files")

	return reports, nil
}

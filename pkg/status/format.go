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
	"fmt"

	"github.com/fatih/color"
)

// FileFormatter defines how scan reports should be formatted
type FileFormatter interface {
	// FormatReport formats a single file report
	FormatReport(r FileReport) string

	// FormatSummary formats the totals line for a scan
	FormatSummary(reports []FileReport) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatReport formats a file report with emojis
func (f *DefaultFileFormatter) FormatReport(r FileReport) string {
	if r.Dirty() {
		return fmt.Sprintf("✂️  %s %s",
			color.New(color.FgYellow).Sprintf("%d marker line(s)", r.MarkerLines),
			r.Path)
	}
	return fmt.Sprintf("👍 %s %s",
		color.New(color.FgGreen).Sprint("clean"),
		r.Path)
}

// FormatSummary formats the totals line for a scan
func (f *DefaultFileFormatter) FormatSummary(reports []FileReport) string {
	dirty := 0
	markers := 0
	for _, r := range reports {
		if r.Dirty() {
			dirty++
		}
		markers += r.MarkerLines
	}
	if dirty == 0 {
		return fmt.Sprintf("✅ %d file(s) scanned, all clean", len(reports))
	}
	return fmt.Sprintf("✂️  %d of %d file(s) carry %d marker line(s)", dirty, len(reports), markers)
}

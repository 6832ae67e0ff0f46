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

package marker

import (
	"bytes"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🏷️ Rule describes a single marker prefix. A line whose trimmed text
// starts with the prefix is dropped from the output.
type Rule struct {
	Prefix string // Marker prefix (e.g. "//<")
}

// 📋 RuleSet holds the marker rules applied to each line
type RuleSet struct {
	rules []Rule
}

// 🏭 NewRuleSet creates a RuleSet from the given marker prefixes
func NewRuleSet(prefixes ...string) *RuleSet {
	rules := make([]Rule, 0, len(prefixes))
	for _, p := range prefixes {
		rules = append(rules, Rule{Prefix: p})
	}
	return &RuleSet{rules: rules}
}

// 🔍 Validate checks that every rule has a non-empty prefix
func (s *RuleSet) Validate() error {
	for i, r := range s.rules {
		if r.Prefix == "" {
			return errors.Errorf("rule %d: prefix is required", i)
		}
	}
	return nil
}

// 🎯 Match reports whether the line is a marker line. The decision is
// based on the trimmed form only; the line itself is never modified.
// Trimming is idempotent, so re-classifying a kept line never changes
// the outcome.
func (s *RuleSet) Match(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, r := range s.rules {
		if strings.HasPrefix(trimmed, r.Prefix) {
			return true
		}
	}
	return false
}

// 📊 FilterResult holds the outcome of filtering one file's content
type FilterResult struct {
	OriginalContent []byte // Content before filtering
	FilteredContent []byte // Content with marker lines removed
	Kept            int    // Number of lines kept
	Dropped         int    // Number of marker lines dropped
	WasModified     bool   // Whether any line was dropped
}

// ✂️ FilterLines splits content into lines (each retaining its trailing
// terminator, if any) and keeps every non-marker line untouched, in
// original order.
func (s *RuleSet) FilterLines(content []byte) *FilterResult {
	result := &FilterResult{
		OriginalContent: content,
	}

	var out bytes.Buffer
	for _, line := range splitLines(content) {
		if s.Match(string(line)) {
			result.Dropped++
			continue
		}
		out.Write(line)
		result.Kept++
	}

	result.FilteredContent = out.Bytes()
	result.WasModified = result.Dropped > 0
	return result
}

// splitLines splits content after each '\n', keeping the terminator with
// its line. The final line may have no terminator.
func splitLines(content []byte) [][]byte {
	var lines [][]byte
	for len(content) > 0 {
		i := bytes.IndexByte(content, '\n')
		if i < 0 {
			lines = append(lines, content)
			break
		}
		lines = append(lines, content[:i+1])
		content = content[i+1:]
	}
	return lines
}

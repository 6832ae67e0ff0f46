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
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/striprc/pkg/marker"
)

// 📚 Config represents the complete configuration
type Config struct {
	// SourceDir is the directory holding the listings to strip
	SourceDir string `json:"source_dir" yaml:"source_dir" hcl:"source_dir,optional" env:"SOURCE_DIR"`

	// BackupDir is where .old backups are relocated after stripping.
	// It must already exist; striprc never creates it.
	BackupDir string `json:"backup_dir" yaml:"backup_dir" hcl:"backup_dir,optional" env:"BACKUP_DIR"`

	// Patterns are the glob patterns matched against file names in
	// SourceDir, applied in order. Matching is case-sensitive.
	Patterns []string `json:"patterns" yaml:"patterns" hcl:"patterns,optional" env:"PATTERNS" envSeparator:","`

	// Markers are the prefixes that classify a trimmed line as a
	// marker line to drop.
	Markers []string `json:"markers" yaml:"markers" hcl:"markers,optional" env:"MARKERS" envSeparator:","`

	// Async runs operations through the async runner
	Async bool `json:"async,omitempty" yaml:"async,omitempty" hcl:"async,optional" env:"ASYNC"`

	// location is the path this config was loaded from, if any
	location string
}

// 🏭 Default returns the configuration for the conventional book
// layout: C listings under ../src, backups collected in ../obj.
func Default() *Config {
	return &Config{
		SourceDir: "../src",
		BackupDir: "../obj",
		Patterns:  []string{"*.c", "*.h"},
		Markers:   []string{"//<", "//>"},
	}
}

// 📍 Location returns the path the config was loaded from ("" for defaults)
func (c *Config) Location() string {
	return c.location
}

// 🎯 RuleSet builds the marker rule set from the configured prefixes
func (c *Config) RuleSet() *marker.RuleSet {
	return marker.NewRuleSet(c.Markers...)
}

// 🔍 Validate checks the configuration for missing or invalid values
func (c *Config) Validate() error {
	if c.SourceDir == "" {
		return errors.New("source_dir is required")
	}
	if c.BackupDir == "" {
		return errors.New("backup_dir is required")
	}
	if len(c.Patterns) == 0 {
		return errors.New("at least one pattern is required")
	}
	for i, p := range c.Patterns {
		if p == "" {
			return errors.Errorf("pattern %d: must not be empty", i)
		}
	}
	if len(c.Markers) == 0 {
		return errors.New("at least one marker is required")
	}
	if err := c.RuleSet().Validate(); err != nil {
		return errors.Errorf("validating markers: %w", err)
	}
	return nil
}

// applyDefaults fills any unset field from Default()
func (c *Config) applyDefaults() {
	def := Default()
	if c.SourceDir == "" {
		c.SourceDir = def.SourceDir
	}
	if c.BackupDir == "" {
		c.BackupDir = def.BackupDir
	}
	if len(c.Patterns) == 0 {
		c.Patterns = def.Patterns
	}
	if len(c.Markers) == 0 {
		c.Markers = def.Markers
	}
}

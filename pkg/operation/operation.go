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

// Package operation provides the stripping, relocation and status passes
package operation

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/striprc/pkg/backup"
	"github.com/walteh/striprc/pkg/config"
	"github.com/walteh/striprc/pkg/log"
	"github.com/walteh/striprc/pkg/status"
	"github.com/walteh/striprc/pkg/strip"
)

// 🎯 Operator defines the main interface for striprc operations
type Operator interface {
	// Strip removes marker lines from every matched file, leaving a
	// .old backup next to each
	Strip(ctx context.Context) error
	// Relocate moves all .old backups into the backup directory
	Relocate(ctx context.Context) error
	// Status is a read-only scan reporting whether any matched file
	// still carries marker lines
	Status(ctx context.Context) (bool, error)
}

// 🔧 Options contains configuration for the operator
type Options struct {
	// Config is the striprc configuration
	Config *config.Config
	// UserLogger reports per-file progress to the user
	UserLogger *log.UserLogger
	// Formatter renders status reports (defaults to the emoji formatter)
	Formatter status.FileFormatter
	// Console receives status output (defaults to stdout)
	Console io.Writer
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (Operator, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if opts.UserLogger == nil {
		return nil, errors.New("user logger is required")
	}
	if opts.Formatter == nil {
		opts.Formatter = status.NewDefaultFileFormatter()
	}
	if opts.Console == nil {
		opts.Console = os.Stdout
	}
	return &operator{
		config:    opts.Config,
		user:      opts.UserLogger,
		formatter: opts.Formatter,
		console:   opts.Console,
	}, nil
}

// 🎮 operator implements the Operator interface
type operator struct {
	config    *config.Config
	user      *log.UserLogger
	formatter status.FileFormatter
	console   io.Writer
}

// ✂️ Strip processes every file matching the configured patterns, in
// pattern order, one file at a time. The first failure aborts the pass;
// files already processed keep their post-strip state.
func (o *operator) Strip(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("source_dir", o.config.SourceDir).Msg("starting strip pass")

	rules := o.config.RuleSet()
	files, err := strip.Discover(ctx, o.config.SourceDir, o.config.Patterns)
	if err != nil {
		return errors.Errorf("discovering files: %w", err)
	}

	for _, path := range files {
		result, err := strip.StripFile(ctx, path, rules)
		if err != nil {
			o.user.LogFileChange(log.FileChange{
				Type:  log.FileError,
				Path:  path,
				Error: err,
			})
			return errors.Errorf("stripping file %s: %w", path, err)
		}

		change := log.FileChange{Type: log.FileClean, Path: path}
		if result.WasModified {
			change.Type = log.FileStripped
			change.Description = fmt.Sprintf("dropped %d line(s)", result.Dropped)
		}
		o.user.LogFileChange(change)
	}

	o.user.LogRunSummary(fmt.Sprintf("stripped %d file(s) in %s", len(files), o.config.SourceDir))
	return nil
}

// 🚚 Relocate moves the .old backups into the backup directory
func (o *operator) Relocate(ctx context.Context) error {
	moves, err := backup.Relocate(ctx, o.config.SourceDir, o.config.BackupDir)
	if err != nil {
		return errors.Errorf("relocating backups: %w", err)
	}

	for _, m := range moves {
		o.user.LogFileChange(log.FileChange{
			Type:        log.FileRelocated,
			Path:        m.From,
			Description: "moved to " + m.To,
		})
	}

	o.user.LogRunSummary(fmt.Sprintf("relocated %d backup(s) to %s", len(moves), o.config.BackupDir))
	return nil
}

// 🔍 Status scans without modifying and reports per-file marker counts
func (o *operator) Status(ctx context.Context) (bool, error) {
	reports, err := status.Scan(ctx, o.config.SourceDir, o.config.Patterns, o.config.RuleSet())
	if err != nil {
		return false, errors.Errorf("scanning files: %w", err)
	}

	dirty := false
	for _, r := range reports {
		fmt.Fprintln(o.console, o.formatter.FormatReport(r))
		if r.Dirty() {
			dirty = true
		}
	}
	fmt.Fprintln(o.console, o.formatter.FormatSummary(reports))

	return dirty, nil
}

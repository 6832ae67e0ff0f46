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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🎬 Step is a single runnable pass
type Step struct {
	Name    string
	Execute func(ctx context.Context) error
}

// 🏃 Runner executes steps in order
type Runner struct {
	logger *zerolog.Logger
	async  bool
}

// 🏗️ NewRunner creates a new runner
func NewRunner(logger *zerolog.Logger, async bool) *Runner {
	return &Runner{
		logger: logger,
		async:  async,
	}
}

// 🏃 Run executes the steps sequentially. Steps always run in order —
// stripping must complete before relocation — async only moves the work
// off the calling goroutine so the run stays cancellable.
func (r *Runner) Run(ctx context.Context, steps ...Step) error {
	if r.async {
		return r.runAsync(ctx, steps)
	}
	return r.runSync(ctx, steps)
}

// 🔄 runSync runs the steps synchronously
func (r *Runner) runSync(ctx context.Context, steps []Step) error {
	for _, step := range steps {
		r.logger.Debug().Str("step", step.Name).Msg("running step")
		if err := step.Execute(ctx); err != nil {
			return errors.Errorf("executing %s: %w", step.Name, err)
		}
	}
	return nil
}

// ⚡ runAsync runs the steps on a separate goroutine
func (r *Runner) runAsync(ctx context.Context, steps []Step) error {
	g := new(errgroup.Group)
	g.Go(func() error {
		return r.runSync(ctx, steps)
	})

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
	}()

	select {
	case <-ctx.Done():
		return errors.Errorf("operation cancelled: %w", ctx.Err())
	case err := <-done:
		return err
	}
}

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

package backup

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/striprc/pkg/strip"
)

// 📦 Move records one relocated backup
type Move struct {
	From string
	To   string
}

// 🚚 Relocate moves every .old backup in srcDir into backupDir, keeping
// the file name. Backups left over from earlier runs are picked up too.
// backupDir must already exist; the rename fails if it does not, and no
// directory creation is attempted.
func Relocate(ctx context.Context, srcDir, backupDir string) ([]Move, error) {
	logger := zerolog.Ctx(ctx)

	backups, err := strip.Discover(ctx, srcDir, []string{"*" + strip.BackupSuffix})
	if err != nil {
		return nil, errors.Errorf("discovering backups: %w", err)
	}

	var moves []Move
	for _, from := range backups {
		to := filepath.Join(backupDir, filepath.Base(from))
		if err := os.Rename(from, to); err != nil {
			return moves, errors.Errorf("relocating backup %s: %w", from, err)
		}
		moves = append(moves, Move{From: from, To: to})

		logger.Debug().
			Str("from", from).
			Str("to", to).
			Msg("relocated backup")
	}

	return moves, nil
}

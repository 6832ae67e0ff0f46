package operation

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/striprc/pkg/config"
	"github.com/walteh/striprc/pkg/log"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.SourceDir = t.TempDir()
	cfg.BackupDir = t.TempDir()
	return cfg
}

func testOperator(t *testing.T, cfg *config.Config, console *bytes.Buffer) Operator {
	t.Helper()
	op, err := New(Options{
		Config:     cfg,
		UserLogger: log.NewUserLogger(context.Background()),
		Console:    console,
	})
	require.NoError(t, err)
	return op
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Options{UserLogger: log.NewUserLogger(context.Background())})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config is required")

	_, err = New(Options{Config: config.Default()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user logger is required")
}

func TestOperator_StripThenRelocate(t *testing.T) {
	cfg := testConfig(t)

	original := "int x;\n//< remove me\n//> also remove\nint y;\n"
	require.NoError(t, os.WriteFile(filepath.Join(cfg.SourceDir, "a.c"), []byte(original), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.SourceDir, "common.h"), []byte("#define N 8\n"), 0644))

	var console bytes.Buffer
	op := testOperator(t, cfg, &console)
	ctx := context.Background()

	require.NoError(t, op.Strip(ctx))

	data, err := os.ReadFile(filepath.Join(cfg.SourceDir, "a.c"))
	require.NoError(t, err)
	assert.Equal(t, "int x;\nint y;\n", string(data))

	data, err = os.ReadFile(filepath.Join(cfg.SourceDir, "a.c.old"))
	require.NoError(t, err)
	assert.Equal(t, original, string(data))

	// headers are processed too, even when clean
	data, err = os.ReadFile(filepath.Join(cfg.SourceDir, "common.h.old"))
	require.NoError(t, err)
	assert.Equal(t, "#define N 8\n", string(data))

	require.NoError(t, op.Relocate(ctx))

	// backups moved out of the source directory
	_, err = os.Stat(filepath.Join(cfg.SourceDir, "a.c.old"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(cfg.BackupDir, "a.c.old"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(cfg.BackupDir, "common.h.old"))
	require.NoError(t, err)

	// stripped files stay in place
	_, err = os.Stat(filepath.Join(cfg.SourceDir, "a.c"))
	require.NoError(t, err)
}

func TestOperator_Strip_EmptyDirIsNoop(t *testing.T) {
	cfg := testConfig(t)
	var console bytes.Buffer
	op := testOperator(t, cfg, &console)

	require.NoError(t, op.Strip(context.Background()))
}

func TestOperator_Relocate_MissingBackupDir(t *testing.T) {
	cfg := testConfig(t)
	cfg.BackupDir = filepath.Join(cfg.BackupDir, "missing")
	require.NoError(t, os.WriteFile(filepath.Join(cfg.SourceDir, "a.c.old"), []byte("x\n"), 0644))

	var console bytes.Buffer
	op := testOperator(t, cfg, &console)

	err := op.Relocate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "relocating backups")
}

func TestOperator_Status(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.SourceDir, "a.c"),
		[]byte("int x;\n//< drop\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.SourceDir, "b.c"),
		[]byte("int y;\n"), 0644))

	var console bytes.Buffer
	op := testOperator(t, cfg, &console)

	dirty, err := op.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, dirty)
	assert.Contains(t, console.String(), "a.c")
	assert.Contains(t, console.String(), "b.c")

	// status never modifies files
	data, err := os.ReadFile(filepath.Join(cfg.SourceDir, "a.c"))
	require.NoError(t, err)
	assert.Equal(t, "int x;\n//< drop\n", string(data))

	// after stripping, the scan comes back clean
	require.NoError(t, op.Strip(context.Background()))
	dirty, err = op.Status(context.Background())
	require.NoError(t, err)
	assert.False(t, dirty)
}

// Stripping twice must be safe: the second pass is a no-op on content,
// and its backups hold the stripped content.
func TestOperator_Strip_Twice(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.SourceDir, "a.c"),
		[]byte("int x;\n//< drop\n"), 0644))

	var console bytes.Buffer
	op := testOperator(t, cfg, &console)
	ctx := context.Background()

	require.NoError(t, op.Strip(ctx))
	require.NoError(t, op.Strip(ctx))

	data, err := os.ReadFile(filepath.Join(cfg.SourceDir, "a.c"))
	require.NoError(t, err)
	assert.Equal(t, "int x;\n", string(data))

	data, err = os.ReadFile(filepath.Join(cfg.SourceDir, "a.c.old"))
	require.NoError(t, err)
	assert.Equal(t, "int x;\n", string(data), "second-pass backup holds stripped content")
}

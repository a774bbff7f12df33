package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunExport(t *testing.T) {
	isolateEnv(t)
	cmd, buf := testCmd("")
	dir := filepath.Join(t.TempDir(), "docs")

	require.NoError(t, runExport(cmd, dir, false, false))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	// One page per pattern plus the index.
	assert.Len(t, entries, 24)
	assert.FileExists(t, filepath.Join(dir, "index.md"))
	assert.FileExists(t, filepath.Join(dir, "singleton.md"))
	assert.FileExists(t, filepath.Join(dir, "chain-of-responsibility.md"))
	assert.Contains(t, buf.String(), "✓ Write")
}

func TestRunExportDryRun(t *testing.T) {
	isolateEnv(t)
	cmd, buf := testCmd("")
	dir := filepath.Join(t.TempDir(), "docs")

	require.NoError(t, runExport(cmd, dir, true, false))

	assert.NoFileExists(t, filepath.Join(dir, "index.md"))
	assert.NoFileExists(t, filepath.Join(dir, "singleton.md"))
	assert.Contains(t, buf.String(), "[DRY RUN]")
	assert.Contains(t, buf.String(), "Dry-run complete")
}

func TestRunExportConflict(t *testing.T) {
	isolateEnv(t)
	cmd, _ := testCmd("")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.md"), []byte("old"), 0644))

	err := runExport(cmd, dir, false, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file already exists")
	assert.Equal(t, 1, exitCode(err))

	// The conflict is caught before anything is written.
	assert.NoFileExists(t, filepath.Join(dir, "singleton.md"))
}

func TestRunExportForce(t *testing.T) {
	isolateEnv(t)
	cmd, _ := testCmd("")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.md"), []byte("old"), 0644))

	require.NoError(t, runExport(cmd, dir, false, true))

	content, err := os.ReadFile(filepath.Join(dir, "index.md"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Design Pattern Catalog")
}

func TestRunExportDirFromConfig(t *testing.T) {
	isolateEnv(t)
	dir := filepath.Join(t.TempDir(), "from-config")
	t.Setenv("MAGPIE_EXPORT_DIR", dir)
	cmd, _ := testCmd("")

	require.NoError(t, runExport(cmd, "", false, false))

	assert.FileExists(t, filepath.Join(dir, "index.md"))
	assert.FileExists(t, filepath.Join(dir, "observer.md"))
}

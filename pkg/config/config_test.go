package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "plain", cfg.Format)
	assert.Equal(t, 0, cfg.Budget)
	assert.True(t, cfg.Tree)
	assert.Contains(t, cfg.Ignore, ".git/")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".ctxpack.yaml")
	data := []byte("format: markdown\nbudget: 5000\noutput: bundle\ntree: false\nignore:\n  - \"*.log\"\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.Format)
	assert.Equal(t, 5000, cfg.Budget)
	assert.Equal(t, "bundle", cfg.Output)
	assert.False(t, cfg.Tree)
	assert.Equal(t, []string{"*.log"}, cfg.Ignore)
	// Unset fields keep their defaults.
	assert.Equal(t, Default().MaxFileSizeKB, cfg.MaxFileSizeKB)
}

func TestLoad_InvalidFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".ctxpack.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: csv\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_NegativeBudget(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".ctxpack.yaml")
	require.NoError(t, os.WriteFile(path, []byte("budget: -1\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".ctxpack.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: [unclosed\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadDefault_FindsFileInParent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".ctxpack.yaml"), []byte("format: xml\n"), 0o644))
	child := filepath.Join(dir, "sub", "dir")
	require.NoError(t, os.MkdirAll(child, 0o755))

	cfg, err := LoadDefault(child)
	require.NoError(t, err)
	assert.Equal(t, "xml", cfg.Format)
}

func TestValidate_EmptyOutput(t *testing.T) {
	cfg := Default()
	cfg.Output = ""
	assert.Error(t, cfg.Validate())
}

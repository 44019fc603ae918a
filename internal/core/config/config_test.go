package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careops/dispatch/internal/core/todo"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "tokyo-night", cfg.Theme)
		assert.Equal(t, todo.CategoryRecord, cfg.DefaultCategory)
		assert.Equal(t, "duty operator", cfg.Operator)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "tokyo-night", cfg.Theme)
	})
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
theme: gruvbox
operator: night desk
default_category: contact
pinned_cases:
  - "1150122-*"
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gruvbox", cfg.Theme)
	assert.Equal(t, "night desk", cfg.Operator)
	assert.Equal(t, todo.CategoryContact, cfg.DefaultCategory)
	assert.Equal(t, []string{"1150122-*"}, cfg.PinnedCases)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_SparseFileGetsDefaults(t *testing.T) {
	path := writeConfig(t, "operator: front desk\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "front desk", cfg.Operator)
	assert.Equal(t, "tokyo-night", cfg.Theme)
	assert.Equal(t, todo.CategoryRecord, cfg.DefaultCategory)
}

func TestLoad_InvalidTheme(t *testing.T) {
	path := writeConfig(t, "theme: solarized-disco\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "theme")
}

func TestLoad_InvalidCategory(t *testing.T) {
	path := writeConfig(t, "default_category: dispatch\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_category")
}

func TestLoad_InvalidPinnedGlob(t *testing.T) {
	path := writeConfig(t, "pinned_cases: [\"[\"]\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pinned_cases")
}

func TestIsPinned(t *testing.T) {
	cfg := Config{PinnedCases: []string{"1150122-0[78]", "99*"}}

	assert.True(t, cfg.IsPinned("1150122-07"))
	assert.True(t, cfg.IsPinned("1150122-08"))
	assert.True(t, cfg.IsPinned("990001"))
	assert.False(t, cfg.IsPinned("1150122-03"))

	empty := Config{}
	assert.False(t, empty.IsPinned("1150122-07"))
}

// Package config_test tests configuration loading, merging hierarchy, and environment variable overrides.
// Related: internal/config/config.go
// Tags: config, loading, merging, env-vars, json, precedence
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults tests that defaults are applied when no config files exist.
// Requires HOME isolation to avoid loading a real global config from the
// system. NO t.Parallel() due to env changes.
func TestLoad_Defaults(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "claude", cfg.ProviderCmd)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, "skip", cfg.ConflictStrategy)
	assert.True(t, cfg.Validate)
	assert.False(t, cfg.Review)
	assert.False(t, cfg.DryRun)
	assert.False(t, cfg.UseTemplates)
}

func TestLoad_LocalOverride(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	configPath := filepath.Join(tmpDir, ".specforge.json")

	configContent := `{
		"max_retries": 5,
		"conflict_strategy": "merge",
		"review": true
	}`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.MaxRetries)
	assert.Equal(t, "merge", cfg.ConflictStrategy)
	assert.True(t, cfg.Review)
}

func TestLoad_GlobalThenLocalPrecedence(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	globalDir := filepath.Join(tmpDir, ".specforge")
	require.NoError(t, os.MkdirAll(globalDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, "config.json"),
		[]byte(`{"max_retries": 8, "model": "global-model"}`), 0644))

	localPath := filepath.Join(tmpDir, ".specforge.json")
	require.NoError(t, os.WriteFile(localPath, []byte(`{"max_retries": 2}`), 0644))

	cfg, err := Load(localPath)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.MaxRetries, "local config wins over global")
	assert.Equal(t, "global-model", cfg.Model, "global values survive when local is silent")
}

func TestLoad_EnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("SPECFORGE_MAX_RETRIES", "7")
	t.Setenv("SPECFORGE_CONFLICT_STRATEGY", "overwrite")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.MaxRetries)
	assert.Equal(t, "overwrite", cfg.ConflictStrategy)
}

func TestLoad_ValidationError_MaxRetriesOutOfRange(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	configPath := filepath.Join(tmpDir, ".specforge.json")

	require.NoError(t, os.WriteFile(configPath, []byte(`{"max_retries": 15}`), 0644))

	_, err := Load(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoad_ValidationError_UnknownStrategy(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	configPath := filepath.Join(tmpDir, ".specforge.json")

	require.NoError(t, os.WriteFile(configPath, []byte(`{"conflict_strategy": "ask"}`), 0644))

	_, err := Load(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoad_CustomProviderCmdRequiresPlaceholder(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	configPath := filepath.Join(tmpDir, ".specforge.json")

	require.NoError(t, os.WriteFile(configPath,
		[]byte(`{"custom_provider_cmd": "my-agent --print"}`), 0644))

	_, err := Load(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "{{PROMPT}}")
}

func TestExpandHomePath(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input    string
		contains string
	}{
		"tilde prefix": {
			input:    "~/.specforge/templates",
			contains: ".specforge/templates",
		},
		"absolute path": {
			input:    "/absolute/path",
			contains: "/absolute/path",
		},
		"relative path": {
			input:    "./relative/path",
			contains: "./relative/path",
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			result := expandHomePath(tc.input)
			assert.Contains(t, result, tc.contains)
		})
	}
}

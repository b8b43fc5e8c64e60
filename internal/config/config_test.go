package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PRODP_NOTES_FILE", "PRODP_SETTINGS_FILE", "PRODP_DISABLE_CONFIRMATION", "PRODP_LOG_DIR"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Default(t *testing.T) {
	clearEnv(t)
	missing := filepath.Join(t.TempDir(), "settings.json")

	cfg, err := Load(CLIFlags{SettingsFile: missing})
	require.NoError(t, err)

	assert.Equal(t, DefaultNotesFile, cfg.NotesFile)
	assert.Equal(t, missing, cfg.SettingsFile)
	assert.False(t, cfg.DisableConfirmation)
	assert.Empty(t, cfg.LogDir)
}

func TestLoad_SettingsFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"disable_confirmation": true, "notes_file": "/data/n.json"}`), 0644))

	cfg, err := Load(CLIFlags{SettingsFile: path})
	require.NoError(t, err)

	assert.True(t, cfg.DisableConfirmation)
	assert.Equal(t, "/data/n.json", cfg.NotesFile)
}

func TestLoad_LegacySettingsFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"disable_confirmation": true}`), 0644))

	cfg, err := Load(CLIFlags{SettingsFile: path})
	require.NoError(t, err)

	assert.True(t, cfg.DisableConfirmation)
	assert.Equal(t, DefaultNotesFile, cfg.NotesFile)
}

func TestLoad_InvalidSettingsFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{disable_confirmation`), 0644))

	_, err := Load(CLIFlags{SettingsFile: path})
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestLoad_EnvVar(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"notes_file": "/from/file.json"}`), 0644))

	t.Setenv("PRODP_SETTINGS_FILE", path)
	t.Setenv("PRODP_NOTES_FILE", "/from/env.json")
	t.Setenv("PRODP_DISABLE_CONFIRMATION", "true")
	t.Setenv("PRODP_LOG_DIR", "/tmp/prodp-logs")

	cfg, err := Load(CLIFlags{})
	require.NoError(t, err)

	// env overrides the settings file
	assert.Equal(t, "/from/env.json", cfg.NotesFile)
	assert.Equal(t, path, cfg.SettingsFile)
	assert.True(t, cfg.DisableConfirmation)
	assert.Equal(t, "/tmp/prodp-logs", cfg.LogDir)
}

func TestLoad_CLIFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv("PRODP_NOTES_FILE", "/from/env.json")

	cfg, err := Load(CLIFlags{
		NotesFile:    "/from/flag.json",
		SettingsFile: filepath.Join(t.TempDir(), "none.json"),
	})
	require.NoError(t, err)

	// CLI flags should override env vars
	assert.Equal(t, "/from/flag.json", cfg.NotesFile)
}

func TestLoad_PathExpansion(t *testing.T) {
	clearEnv(t)
	homeDir, err := os.UserHomeDir()
	if err != nil {
		t.Skip("cannot determine home directory")
	}

	cfg, err := Load(CLIFlags{
		NotesFile:    "~/prodp/notes.json",
		SettingsFile: filepath.Join(t.TempDir(), "none.json"),
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(homeDir, "prodp", "notes.json"), cfg.NotesFile)
}

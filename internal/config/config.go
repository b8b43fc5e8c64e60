package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

const (
	DefaultNotesFile    = "notes.json"
	DefaultSettingsFile = "settings.json"
	envPrefix           = "PRODP_"
)

// ErrInvalidSettings is returned when the settings file exists but does not
// parse.
var ErrInvalidSettings = errors.New("invalid settings file")

// Config holds the unified application configuration
type Config struct {
	NotesFile           string `env:"NOTES_FILE" json:"notes_file"`
	SettingsFile        string `env:"SETTINGS_FILE" json:"-"`
	DisableConfirmation bool   `env:"DISABLE_CONFIRMATION" json:"disable_confirmation"`
	LogDir              string `env:"LOG_DIR" json:"log_dir"`
}

// Settings represents the settings file structure. disable_confirmation is
// the only option older settings files carry.
type Settings struct {
	DisableConfirmation bool   `json:"disable_confirmation"`
	NotesFile           string `json:"notes_file,omitempty"`
	LogDir              string `json:"log_dir,omitempty"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	NotesFile    string
	SettingsFile string
}

// Load loads configuration with priority: CLI flags > env vars > settings file > default
func Load(flags CLIFlags) (*Config, error) {
	flagCfg := &Config{
		NotesFile:    flags.NotesFile,
		SettingsFile: flags.SettingsFile,
	}

	envCfg := &Config{}
	if err := env.ParseWithOptions(envCfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	defaults := &Config{
		NotesFile:    DefaultNotesFile,
		SettingsFile: DefaultSettingsFile,
	}

	settingsPath := firstNonEmpty(flagCfg.SettingsFile, envCfg.SettingsFile, defaults.SettingsFile)
	settings, err := loadSettingsFile(expandPath(settingsPath))
	if err != nil {
		return nil, err
	}
	fileCfg := &Config{
		NotesFile:           settings.NotesFile,
		DisableConfirmation: settings.DisableConfirmation,
		LogDir:              settings.LogDir,
	}

	cfg := new(Config)
	for _, layer := range []*Config{flagCfg, envCfg, fileCfg, defaults} {
		if err := mergo.Merge(cfg, layer); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	cfg.NotesFile = expandPath(cfg.NotesFile)
	cfg.SettingsFile = expandPath(cfg.SettingsFile)
	cfg.LogDir = expandPath(cfg.LogDir)

	return cfg, nil
}

// loadSettingsFile reads the settings file. A missing file means no options
// are set.
func loadSettingsFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSettings, path, err)
	}

	return &settings, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

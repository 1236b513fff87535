// Package adapter provides infrastructure adapters used by the domain layer.
package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/knightpath/internal/model"
)

const (
	settingsDirName  = "knightpath"
	settingsFileName = "settings.yaml"
)

// SettingsStore persists and retrieves the board settings.
type SettingsStore interface {
	// Load returns the stored settings, or the defaults when nothing is stored.
	Load() (m.Settings, error)
	// Save validates and stores settings.
	Save(settings m.Settings) error
	// Location describes where settings are stored.
	Location() string
}

// LocalSettingsStore keeps settings in a YAML file on the local filesystem.
type LocalSettingsStore struct {
	path string
}

// NewLocalSettingsStore constructs a LocalSettingsStore backed by path.
func NewLocalSettingsStore(path string) *LocalSettingsStore {
	return &LocalSettingsStore{path: path}
}

// DefaultSettingsPath returns settings.yaml under the user's configuration
// directory.
func DefaultSettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}

	return filepath.Join(dir, settingsDirName, settingsFileName), nil
}

// Location returns the settings file path.
func (s *LocalSettingsStore) Location() string {
	return s.path
}

// Load reads the settings file. A missing file yields the defaults, and keys
// absent from the file keep their default values.
func (s *LocalSettingsStore) Load() (m.Settings, error) {
	settings := m.DefaultSettings()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}

	if err != nil {
		return m.Settings{}, fmt.Errorf("failed to read settings %s: %w", s.path, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return m.Settings{}, fmt.Errorf("failed to parse settings %s: %w", s.path, err)
	}

	if err := settings.Validate(); err != nil {
		return m.Settings{}, fmt.Errorf("settings %s: %w", s.path, err)
	}

	return settings, nil
}

// Save writes the settings file atomically, creating its directory if needed.
func (s *LocalSettingsStore) Save(settings m.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create settings dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, settingsFileName+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp settings file: %w", err)
	}

	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)

		return fmt.Errorf("failed to write settings: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write settings: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace settings %s: %w", s.path, err)
	}

	return nil
}

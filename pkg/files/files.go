package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/seedpad/seedpad-terminal/pkg/models"
	"gopkg.in/yaml.v3"
)

const (
	AppDir       = "seedpad"
	HomeEnv      = "SEEDPAD_HOME"
	SettingsFile = "settings.yaml"
)

// ConfigDir returns $SEEDPAD_HOME, or seedpad under the user config dir.
func ConfigDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(base, AppDir), nil
}

// InitConfigDir creates the config directory, readable by the owner only.
func InitConfigDir(dir string) error {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	// Best-effort, may not work on all platforms
	_ = os.Chmod(dir, 0700)
	return nil
}

// ReadSettings loads dir/settings.yaml on top of the defaults. A missing
// file yields the defaults.
func ReadSettings(dir string) (*models.Settings, error) {
	settings := models.DefaultSettings()

	path := filepath.Join(dir, SettingsFile)
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML %s: %w", path, err)
	}

	return settings, nil
}

// WriteSettings stores settings as dir/settings.yaml.
func WriteSettings(dir string, settings *models.Settings) error {
	if err := InitConfigDir(dir); err != nil {
		return err
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	path := filepath.Join(dir, SettingsFile)
	// The file may carry a REST api key
	if err := os.WriteFile(path, content, 0600); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}

	return nil
}

// ResolvePath anchors a relative settings path at dir.
func ResolvePath(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

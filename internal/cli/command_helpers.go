package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/seedpad/seedpad-terminal/pkg/device"
	"github.com/seedpad/seedpad-terminal/pkg/files"
	"github.com/seedpad/seedpad-terminal/pkg/log"
	"github.com/seedpad/seedpad-terminal/pkg/models"
	"github.com/seedpad/seedpad-terminal/pkg/store"
)

// CommandContext resolves the config directory and everything opened from it
type CommandContext struct {
	ConfigDir string
	Settings  *models.Settings
}

// NewCommandContext creates a new command context. An empty dir falls back
// to files.ConfigDir.
func NewCommandContext(dir string) (*CommandContext, error) {
	if dir == "" {
		var err error
		dir, err = files.ConfigDir()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config directory %s: %w", dir, err)
	}
	return &CommandContext{ConfigDir: abs}, nil
}

// LoadSettings reads and validates the settings file once
func (c *CommandContext) LoadSettings() (*models.Settings, error) {
	if c.Settings != nil {
		return c.Settings, nil
	}

	settings, err := files.ReadSettings(c.ConfigDir)
	if err != nil {
		return nil, err
	}
	if err := ValidateSettings(settings); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", filepath.Join(c.ConfigDir, files.SettingsFile), err)
	}

	c.Settings = settings
	return settings, nil
}

// StoreConfig maps the store settings onto a store.Config
func (c *CommandContext) StoreConfig() store.Config {
	s := c.Settings.Store
	return store.Config{
		Backend:    strings.ToLower(s.Backend),
		SQLitePath: files.ResolvePath(c.ConfigDir, s.SQLitePath),
		REST: store.RESTConfig{
			URL:     s.REST.URL,
			APIKey:  s.REST.APIKey,
			Table:   s.REST.Table,
			Timeout: time.Duration(s.REST.TimeoutSeconds) * time.Second,
		},
	}
}

// OpenStore opens the configured record store
func (c *CommandContext) OpenStore() (store.RecordStore, error) {
	if err := files.InitConfigDir(c.ConfigDir); err != nil {
		return nil, err
	}
	st, err := store.Open(c.StoreConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", c.StoreConfig().Backend, err)
	}
	return st, nil
}

// OpenLogger opens the rotating log file under the config dir
func (c *CommandContext) OpenLogger() (*log.Logger, error) {
	dir := files.ResolvePath(c.ConfigDir, c.Settings.Log.Dir)
	logger, err := log.New(c.Settings.Log.Level, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}
	return logger, nil
}

// DeviceIDs returns the device identifier kept in the config dir
func (c *CommandContext) DeviceIDs() *device.Source {
	return device.NewSource(c.ConfigDir)
}

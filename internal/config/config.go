// ABOUTME: Configuration management for brightmind with YAML config loading.
// ABOUTME: Handles storage location, dashboard sizes, defaults, and ~ expansion.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// DefaultStorageKey is the key under which the journal collection is stored.
const DefaultStorageKey = "brightmind_journal"

// Config stores brightmind configuration loaded from ~/.config/brightmind/config.yaml.
type Config struct {
	Storage   StorageConfig   `yaml:"storage"`
	Dashboard DashboardConfig `yaml:"dashboard"`
}

// StorageConfig holds the local key-value store settings.
type StorageConfig struct {
	Path      string `yaml:"path"`
	Key       string `yaml:"key"`
	CacheSize uint64 `yaml:"cache_size"`
}

// DashboardConfig holds how many entries the dashboard views show.
type DashboardConfig struct {
	TimelineLimit int `yaml:"timeline_limit"`
	RecentLimit   int `yaml:"recent_limit"`
	PreviewLength int `yaml:"preview_length"`
}

// Default returns a config with every field set to its default.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Storage.Key == "" {
		c.Storage.Key = DefaultStorageKey
	}
	if c.Storage.CacheSize == 0 {
		c.Storage.CacheSize = 1024 * 1024
	}
	if c.Dashboard.TimelineLimit <= 0 {
		c.Dashboard.TimelineLimit = 10
	}
	if c.Dashboard.RecentLimit <= 0 {
		c.Dashboard.RecentLimit = 3
	}
	if c.Dashboard.PreviewLength <= 0 {
		c.Dashboard.PreviewLength = 60
	}
}

// GetStoragePath returns the store directory, defaulting to the XDG data dir.
func (c *Config) GetStoragePath() (string, error) {
	if c.Storage.Path != "" {
		return ExpandPath(c.Storage.Path)
	}
	return DataDir()
}

// DataDir returns the default data directory.
func DataDir() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := homedir.Dir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "brightmind"), nil
}

// GetConfigPath returns the config file path.
func GetConfigPath() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := homedir.Dir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "brightmind", "config.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("failed to expand %q: %w", path, err)
	}
	return expanded, nil
}

// Load reads config from disk. Returns default config if file doesn't exist.
func Load() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

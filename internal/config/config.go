// ABOUTME: medcalc configuration management with backend selection.
// ABOUTME: Handles settings, chart preferences, and the storage backend factory.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/harperreed/medcalc/internal/charm"
	"github.com/harperreed/medcalc/internal/series"
	"github.com/harperreed/medcalc/internal/storage"
	"golang.org/x/text/language"
)

// Backend names accepted by OpenStorage.
const (
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
	BackendCharm  = "charm"
)

// DefaultLocale is used for chart labels when none is configured.
const DefaultLocale = "ru-RU"

// Keys lists the settings accepted by Set, in display order.
var Keys = []string{"backend", "data_dir", "locale", "chart_window"}

// Config stores medcalc configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default), "badger", or "charm".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage.
	// SQLite puts medcalc.db here. Badger uses a badger/ folder here.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/medcalc.
	DataDir string `json:"data_dir,omitempty"`

	// Locale is a BCP 47 tag selecting the chart label format.
	Locale string `json:"locale,omitempty"`

	// ChartWindow is how many recent records a chart shows.
	ChartWindow int `json:"chart_window,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return BackendSQLite
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetLocale returns the configured locale, defaulting to Russian.
func (c *Config) GetLocale() string {
	if c.Locale == "" {
		return DefaultLocale
	}
	return c.Locale
}

// GetChartWindow returns the configured chart window, defaulting to
// series.DefaultWindow.
func (c *Config) GetChartWindow() int {
	if c.ChartWindow <= 0 {
		return series.DefaultWindow
	}
	return c.ChartWindow
}

// Get returns the raw value of a setting by key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "backend":
		return c.GetBackend(), nil
	case "data_dir":
		return c.GetDataDir(), nil
	case "locale":
		return c.GetLocale(), nil
	case "chart_window":
		return strconv.Itoa(c.GetChartWindow()), nil
	}
	return "", fmt.Errorf("unknown config key: %q", key)
}

// Set validates and assigns a setting by key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "backend":
		switch value {
		case BackendSQLite, BackendBadger, BackendCharm:
			c.Backend = value
		default:
			return fmt.Errorf("unknown backend: %q", value)
		}
	case "data_dir":
		c.DataDir = value
	case "locale":
		if _, err := language.Parse(value); err != nil {
			return fmt.Errorf("invalid locale %q: %w", value, err)
		}
		c.Locale = value
	case "chart_window":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("chart_window must be a positive integer, got %q", value)
		}
		c.ChartWindow = n
	default:
		return fmt.Errorf("unknown config key: %q", key)
	}
	return nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage creates a KV implementation based on the configured backend.
func (c *Config) OpenStorage() (storage.KV, error) {
	backend := c.GetBackend()
	dataDir := c.GetDataDir()

	var (
		kv  storage.KV
		err error
	)
	switch backend {
	case BackendSQLite:
		kv, err = storage.Open(filepath.Join(dataDir, "medcalc.db"))
	case BackendBadger:
		kv, err = storage.OpenBadger(filepath.Join(dataDir, "badger"))
	case BackendCharm:
		kv, err = charm.InitClient()
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", backend, err)
	}
	return kv, nil
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "medcalc", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

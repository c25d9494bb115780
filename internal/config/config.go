// ABOUTME: Spoons configuration management with backend selection.
// ABOUTME: Handles the config file, environment overrides, logger and storage factory.

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/charmbracelet/log"

	"github.com/harperreed/spoons/internal/charm"
	"github.com/harperreed/spoons/internal/storage"
)

// Backend names accepted by OpenStore.
const (
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
	BackendCharm  = "charm"
	BackendMemory = "memory"
)

// Backends lists the supported storage backends.
var Backends = []string{BackendBadger, BackendSQLite, BackendCharm, BackendMemory}

// Config stores spoons configuration.
type Config struct {
	// Backend selects the storage backend: "badger" (default), "sqlite", "charm" or "memory".
	Backend string `json:"backend,omitempty" env:"SPOONS_BACKEND"`

	// DataDir is the root directory for local data.
	// Badger keeps its files under badger/, SQLite uses spoons.db.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/spoons.
	DataDir string `json:"data_dir,omitempty" env:"SPOONS_DATA_DIR"`

	// LogLevel is one of debug, info, warn, error. Defaults to warn.
	LogLevel string `json:"log_level,omitempty" env:"SPOONS_LOG_LEVEL"`

	// CharmHost is the charm server for the charm backend.
	CharmHost string `json:"charm_host,omitempty" env:"SPOONS_CHARM_HOST"`
}

// GetBackend returns the configured backend, defaulting to "badger".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return BackendBadger
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DefaultDataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetCharmHost returns the configured charm server.
func (c *Config) GetCharmHost() string {
	if c.CharmHost == "" {
		return charm.DefaultHost
	}
	return c.CharmHost
}

// DefaultDataDir returns $XDG_DATA_HOME/spoons, or ~/.local/share/spoons.
func DefaultDataDir() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, _ := os.UserHomeDir()
		dataDir = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataDir, "spoons")
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

// StorePath returns where the given backend keeps its data under the data directory.
func (c *Config) StorePath(backend string) string {
	switch backend {
	case BackendBadger:
		return filepath.Join(c.GetDataDir(), "badger")
	case BackendSQLite:
		return filepath.Join(c.GetDataDir(), "spoons.db")
	}
	return ""
}

// OpenStore creates the Store for the configured backend.
func (c *Config) OpenStore() (storage.Store, error) {
	return c.OpenBackend(c.GetBackend())
}

// OpenBackend creates a Store for backend using this config's paths.
func (c *Config) OpenBackend(backend string) (storage.Store, error) {
	var (
		store storage.Store
		err   error
	)
	switch backend {
	case BackendBadger:
		store, err = storage.OpenBadger(c.StorePath(backend))
	case BackendSQLite:
		store, err = storage.OpenSQLite(c.StorePath(backend))
	case BackendCharm:
		store, err = charm.InitClient(c.GetCharmHost())
	case BackendMemory:
		store = storage.NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown backend: %q (valid: %s)", backend, strings.Join(Backends, ", "))
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", backend, err)
	}
	return store, nil
}

// NewLogger builds the logger writing to w at the configured level.
func (c *Config) NewLogger(w io.Writer) (*log.Logger, error) {
	level := log.WarnLevel
	if c.LogLevel != "" {
		parsed, err := log.ParseLevel(c.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          "spoons",
		Level:           level,
		ReportTimestamp: true,
	}), nil
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "spoons", "config.json")
}

// Load reads config from disk and applies SPOONS_* environment overrides.
func Load() (*Config, error) {
	cfg, err := loadFile(GetConfigPath())
	if err != nil {
		return nil, err
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
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

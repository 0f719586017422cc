package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Prefs     PrefsConfig
	Dashboard DashboardConfig
	UI        UIConfig
	Log       LogConfig
}

// PrefsConfig selects where the theme preference is persisted.
type PrefsConfig struct {
	Backend string // "sqlite" or "file"
	Path    string
}

// DashboardConfig points at an optional layout override.
type DashboardConfig struct {
	LayoutPath string `mapstructure:"layout_path"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Currency     string
	CompactWidth int `mapstructure:"compact_width"`
	ToastSeconds int `mapstructure:"toast_seconds"`
	Mouse        bool
}

// LogConfig holds log file settings. The terminal belongs to the UI, so
// logs always go to a file.
type LogConfig struct {
	Path   string
	Level  string
	Format string
}

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "kodexdash")
}

func defaultPrefsPath(backend string) string {
	if backend == BackendFile {
		return filepath.Join(dataDir(), "preferences.json")
	}
	return filepath.Join(dataDir(), "kodexdash.db")
}

// Load reads configuration from file and env. Env var overrides use prefix KODEXDASH_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("prefs.backend", BackendSQLite)
	v.SetDefault("prefs.path", "")
	v.SetDefault("dashboard.layout_path", "")
	v.SetDefault("ui.currency", "NGN")
	v.SetDefault("ui.compact_width", 100)
	v.SetDefault("ui.toast_seconds", 3)
	v.SetDefault("ui.mouse", true)
	v.SetDefault("log.path", filepath.Join(dataDir(), "kodexdash.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetConfigType("toml")

	v.SetConfigFile(FilePath())

	v.SetEnvPrefix("KODEXDASH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Prefs.Path == "" {
		c.Prefs.Path = defaultPrefsPath(c.Prefs.Backend)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the app cannot start with.
func (c Config) Validate() error {
	switch c.Prefs.Backend {
	case BackendSQLite, BackendFile:
	default:
		return fmt.Errorf("prefs.backend %q: want %q or %q", c.Prefs.Backend, BackendSQLite, BackendFile)
	}
	if strings.TrimSpace(c.Prefs.Path) == "" {
		return fmt.Errorf("prefs.path is empty")
	}
	if c.UI.CompactWidth < 0 {
		return fmt.Errorf("ui.compact_width must not be negative")
	}
	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// FilePath is the config file Load reads and Save writes: KODEXDASH_CONFIG
// when set, otherwise ~/.config/kodexdash/config.toml.
func FilePath() string {
	if path := os.Getenv("KODEXDASH_CONFIG"); path != "" {
		return path
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "kodexdash", "config.toml")
}

// WriteDefault saves cfg when no config file exists yet and reports whether
// it wrote one. A prefs path equal to the backend default is stored empty so
// it keeps following the backend.
func WriteDefault(cfg Config) (bool, error) {
	_, err := os.Stat(FilePath())
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat config: %w", err)
	}
	if cfg.Prefs.Path == defaultPrefsPath(cfg.Prefs.Backend) {
		cfg.Prefs.Path = ""
	}
	if err := Save(cfg); err != nil {
		return false, err
	}
	return true, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := FilePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("prefs.backend", cfg.Prefs.Backend)
	v.Set("prefs.path", cfg.Prefs.Path)
	v.Set("dashboard.layout_path", cfg.Dashboard.LayoutPath)
	v.Set("ui.currency", cfg.UI.Currency)
	v.Set("ui.compact_width", cfg.UI.CompactWidth)
	v.Set("ui.toast_seconds", cfg.UI.ToastSeconds)
	v.Set("ui.mouse", cfg.UI.Mouse)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.format", cfg.Log.Format)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Package config handles the XDG configuration directory, the config file and file paths.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "assigna"

	// ConfigFile is the optional YAML settings file.
	ConfigFile = "config.yaml"

	// CredentialsFile is the stored session filename.
	CredentialsFile = "credentials.json"

	// LogFile receives logs when --debug is not set.
	LogFile = "assigna.log"

	// BaseURLEnv overrides the API base URL.
	BaseURLEnv = "ASSIGNA_BASE_URL"

	// DefaultBaseURL is used when neither the file nor the environment sets one.
	DefaultBaseURL = "http://localhost:5000/api/"

	// DefaultTimeout is the per-request timeout.
	DefaultTimeout = 30 * time.Second
)

// Settings is the content of config.yaml.
type Settings struct {
	// BaseURL is the API root; relative endpoint paths are resolved against it.
	BaseURL string `yaml:"base_url"`

	// Timeout bounds every HTTP request.
	Timeout time.Duration `yaml:"timeout"`
}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	Settings
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/assigna or $HOME/.config/assigna.
// Settings come from config.yaml when present, then ASSIGNA_BASE_URL.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{Dir: dir, Settings: DefaultSettings()}

	s, err := LoadSettings(cfg.SettingsPath())
	switch {
	case err == nil:
		cfg.Settings = *s
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, err
	}

	if v := os.Getenv(BaseURLEnv); v != "" {
		cfg.BaseURL = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// LoadSettings reads a YAML settings file. Unset fields keep their defaults.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &s, nil
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid base_url: %q", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SettingsPath returns the path to config.yaml.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// CredentialsPath returns the path to the stored session.
func (c *Config) CredentialsPath() string {
	return filepath.Join(c.Dir, CredentialsFile)
}

// LogPath returns the path to the log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.Dir, LogFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasCredentials checks if the credentials file exists.
func (c *Config) HasCredentials() bool {
	_, err := os.Stat(c.CredentialsPath())
	return err == nil
}

// RemoveCredentials deletes the credentials file.
func (c *Config) RemoveCredentials() error {
	return os.Remove(c.CredentialsPath())
}

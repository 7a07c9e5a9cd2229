package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config represents the complete xpkg configuration.
type Config struct {
	General  GeneralConfig            `toml:"general"`
	Output   OutputConfig             `toml:"output"`
	Download DownloadConfig           `toml:"download"`
	Backends map[string]BackendConfig `toml:"backends"`
}

// GeneralConfig contains general xpkg settings.
type GeneralConfig struct {
	// AutoConfirm skips confirmation prompts when true (like -y flag).
	AutoConfirm bool `toml:"auto_confirm"`

	// DryRun shows what would happen without executing when true.
	DryRun bool `toml:"dry_run"`

	// History records each run in the local history database.
	History bool `toml:"history"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	// Color enables colored output (respects NO_COLOR env var).
	Color bool `toml:"color"`

	// Unicode enables unicode symbols in output.
	Unicode bool `toml:"unicode"`

	// Verbose echoes every external command before running it.
	Verbose bool `toml:"verbose"`
}

// DownloadConfig contains artifact download settings.
type DownloadConfig struct {
	// TimeoutSeconds bounds a whole artifact download. Zero disables the limit.
	TimeoutSeconds int `toml:"timeout_seconds"`

	// Progress shows a progress bar while downloading.
	Progress bool `toml:"progress"`
}

// BackendConfig contains per-backend settings, keyed by backend name
// (deb, rpm, apk).
type BackendConfig struct {
	// Binary overrides the frontend binary, e.g. dnf instead of yum on
	// newer Red Hat family hosts.
	Binary string `toml:"binary"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			AutoConfirm: false,
			DryRun:      false,
			History:     true,
		},
		Output: OutputConfig{
			Color:   true,
			Unicode: true,
			Verbose: false,
		},
		Download: DownloadConfig{
			TimeoutSeconds: 600,
			Progress:       true,
		},
		Backends: map[string]BackendConfig{},
	}
}

// Load loads the configuration from the default path.
// If the config file doesn't exist, it returns the default configuration.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom loads the configuration from a specific path.
// If the config file doesn't exist, it returns the default configuration.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(ConfigPath())
}

// SaveTo writes the configuration to a specific path.
func (c *Config) SaveTo(path string) error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(c)
}

// GetBackendConfig returns the configuration for a specific backend.
// Returns an empty config if none exists.
func (c *Config) GetBackendConfig(name string) BackendConfig {
	if cfg, ok := c.Backends[name]; ok {
		return cfg
	}
	return BackendConfig{}
}

// DownloadTimeout returns the configured download timeout as a Duration.
func (c *Config) DownloadTimeout() time.Duration {
	return time.Duration(c.Download.TimeoutSeconds) * time.Second
}

// ShouldUseColor returns true if colored output should be used.
// Respects the NO_COLOR environment variable.
func (c *Config) ShouldUseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return c.Output.Color
}

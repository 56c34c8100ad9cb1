// Package config loads SilentVoices configuration from a YAML file with
// environment-variable overrides. Missing files are not an error: the
// defaults describe a fully working offline installation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"silentvoices/internal/advisory"
	"silentvoices/internal/risk"
)

// Config holds all SilentVoices configuration.
type Config struct {
	// Storage settings
	Storage StorageConfig `yaml:"storage"`

	// Advisory (Gemini) settings
	Advisory AdvisoryConfig `yaml:"advisory"`

	// Risk-scoring heuristics. Tunable constants, not clinical logic.
	Risk risk.Config `yaml:"risk"`

	// Notification settings
	Notify NotifyConfig `yaml:"notify"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// StorageConfig locates the durable record store.
type StorageConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// AdvisoryConfig configures the generative advisory service. An empty
// APIKey selects the offline always-fallback service.
type AdvisoryConfig struct {
	APIKey  string          `yaml:"api_key"`
	Models  advisory.Models `yaml:"models"`
	Timeout string          `yaml:"timeout"`
}

// NotifyConfig configures the ephemeral notification.
type NotifyConfig struct {
	TTL string `yaml:"ttl"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug/info/warn/error
}

// DefaultDir returns the per-user data directory.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".silentvoices"
	}
	return filepath.Join(home, ".silentvoices")
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			DatabasePath: filepath.Join(DefaultDir(), "silentvoices.db"),
		},
		Advisory: AdvisoryConfig{
			Models:  advisory.DefaultModels(),
			Timeout: "30s",
		},
		Risk: risk.DefaultConfig(),
		Notify: NotifyConfig{
			TTL: "5s",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment variables override either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("SILENTVOICES_API_KEY"); key != "" {
		c.Advisory.APIKey = key
	} else if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.Advisory.APIKey = key
	}
	if path := os.Getenv("SILENTVOICES_DB"); path != "" {
		c.Storage.DatabasePath = path
	}
	if level := os.Getenv("SILENTVOICES_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// NotifyTTL returns the notification visibility duration.
func (c *Config) NotifyTTL() time.Duration {
	d, err := time.ParseDuration(c.Notify.TTL)
	if err != nil || d <= 0 {
		return 5 * time.Second
	}
	return d
}

// AdvisoryTimeout returns the per-call advisory timeout.
func (c *Config) AdvisoryTimeout() time.Duration {
	d, err := time.ParseDuration(c.Advisory.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

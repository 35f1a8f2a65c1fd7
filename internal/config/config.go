// Package config loads the Lattice client configuration.
// Configuration comes from a YAML file (config.yaml) merged with
// LATTICE_-prefixed environment variables; secrets such as the API key are
// normally supplied through the environment (a local .env file is loaded by
// the entrypoint before this package runs).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full client configuration.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	UI      UIConfig      `mapstructure:"ui"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig describes the search backend endpoint.
type APIConfig struct {
	URL            string `mapstructure:"url"`
	Key            string `mapstructure:"key"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// Timeout returns the request timeout as a duration.
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// Theme is "auto", "light" or "dark".
	Theme string `mapstructure:"theme"`
}

// AuthConfig is the static login surface: the reserved admin alias, the
// alias -> workspace-id table and the optional alias -> password table.
// These tables are configuration, never computed and never edited at runtime.
type AuthConfig struct {
	AdminAlias string            `mapstructure:"admin_alias"`
	Workspaces map[string]string `mapstructure:"workspaces"`
	Passwords  map[string]string `mapstructure:"passwords"`
}

// LoggingConfig controls the file-backed logger used while the TUI owns the
// terminal.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	Dir   string `mapstructure:"dir"`
}

// DefaultTimeoutSeconds is the backend contract timeout.
const DefaultTimeoutSeconds = 30

// Load reads configuration from the given file (or the default search
// paths when path is empty) and applies environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("api.url", "")
	v.SetDefault("api.key", "")
	v.SetDefault("api.timeout_seconds", DefaultTimeoutSeconds)
	v.SetDefault("ui.theme", "auto")
	v.SetDefault("auth.admin_alias", "admin")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.dir", "")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".lattice"))
		}
	}

	v.SetEnvPrefix("LATTICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing default config.yaml is fine (env-only setups); an
		// explicit --config path that cannot be read is not.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			if path != "" || !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.API.TimeoutSeconds <= 0 {
		cfg.API.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = "auto"
	}
	if cfg.Auth.AdminAlias == "" {
		cfg.Auth.AdminAlias = "admin"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.Logging.Dir = filepath.Join(home, ".lattice", "logs")
		}
	}
}

// Validate checks the fields required to reach the backend. The TUI can
// start without them (submit fails with a clear message); the one-shot
// query command refuses to run.
func (c *Config) Validate() error {
	if c.API.URL == "" {
		return fmt.Errorf("api.url is not configured (set LATTICE_API_URL or api.url in config.yaml)")
	}
	if c.API.Key == "" {
		return fmt.Errorf("api.key is not configured (set LATTICE_API_KEY or api.key in config.yaml)")
	}
	return nil
}

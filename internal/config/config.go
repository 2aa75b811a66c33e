package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the client shell.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	API      APIConfig      `mapstructure:"api"`
	Tracking TrackingConfig `mapstructure:"tracking"`
	Search   SearchConfig   `mapstructure:"search"`
	Server   ServerConfig   `mapstructure:"server"`
}

// AppConfig holds app-wide settings.
type AppConfig struct {
	Env             string `mapstructure:"env"`
	StorageDir      string `mapstructure:"storage_dir"`
	DefaultLanguage string `mapstructure:"default_language"`
}

// APIConfig holds the backend endpoint and HTTP timeouts.
type APIConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// TrackingConfig holds the live-tracking poll loop settings.
type TrackingConfig struct {
	PollInterval time.Duration `mapstructure:"poll_interval"`
	MaxBackoff   time.Duration `mapstructure:"max_backoff"`
}

// SearchConfig holds the autocomplete debounce settings.
type SearchConfig struct {
	DebounceDelay time.Duration `mapstructure:"debounce_delay"`
}

// ServerConfig holds the dev stub server settings.
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// Load reads configuration from an optional config file (config.yaml in
// the working directory) and environment variables, with defaults for
// everything.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("parcel")
	v.AutomaticEnv()

	v.SetDefault("app.env", "development")
	v.SetDefault("app.storage_dir", defaultStorageDir())
	v.SetDefault("app.default_language", "en")
	v.SetDefault("api.base_url", "http://localhost:8080/api")
	v.SetDefault("api.connect_timeout", 15*time.Second)
	v.SetDefault("api.request_timeout", 30*time.Second)
	v.SetDefault("tracking.poll_interval", 8*time.Second)
	v.SetDefault("tracking.max_backoff", 32*time.Second)
	v.SetDefault("search.debounce_delay", 300*time.Millisecond)
	v.SetDefault("server.port", "8080")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// No config file is fine; env and defaults apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction reports whether the app runs with a production config.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func defaultStorageDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".parcel"
	}
	return filepath.Join(home, ".parcel")
}

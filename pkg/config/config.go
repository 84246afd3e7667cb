package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. MINUTES_SERVER_PORT
const EnvPrefix = "MINUTES"

// DefaultConfigPath is where the optional settings file is looked up
const DefaultConfigPath = "./config/settings.yaml"

var (
	once    sync.Once
	initErr error

	validate = validator.New()
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	return InitFromFile(DefaultConfigPath)
}

// InitFromFile initializes configuration using the given settings file.
// A missing file is not an error: defaults and env vars are used.
func InitFromFile(path string) error {
	once.Do(func() {
		// .env values never override variables already set in the environment
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			initErr = fmt.Errorf("error loading .env: %w", err)
			return
		}

		setDefaults()

		viper.SetEnvPrefix(EnvPrefix)
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		configPath := filepath.Clean(path)
		viper.SetConfigFile(configPath)

		if err := viper.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) && !errors.As(err, &viper.ConfigFileNotFoundError{}) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		cfg, err := GetConfig()
		if err != nil {
			initErr = err
			return
		}
		if err := cfg.Validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// Get returns a config value by key using Viper directly
func Get(key string) any {
	return viper.Get(key)
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// Set overrides a config value, used by command-line flags
func Set(key string, value any) {
	viper.Set(key, value)
}

// Validate checks struct tags and the cross-field rules
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}

	found := false
	for _, m := range c.Models.Available {
		if m.ID == c.Models.Default {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("default model %q is not in models.available", c.Models.Default)
	}

	if c.Diagnostics.Enabled && c.Diagnostics.Retention < 0 {
		return fmt.Errorf("invalid diagnostics retention: %s", c.Diagnostics.Retention)
	}

	return nil
}

// DiagnosticsActive reports whether raw responses should be persisted
func (c *Config) DiagnosticsActive() bool {
	return c.Diagnostics.Enabled && c.Database.Path != ""
}

// reset clears the loaded state so tests can re-run Init
func reset() {
	viper.Reset()
	once = sync.Once{}
	initErr = nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 10*time.Minute)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)
	viper.SetDefault("server.max_request_bytes", 64<<20)

	// Gemini defaults
	viper.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com")
	viper.SetDefault("gemini.api_key", "")
	viper.SetDefault("gemini.timeout", 5*time.Minute)
	viper.SetDefault("gemini.max_retries", 2)
	viper.SetDefault("gemini.requests_per_second", 2.0)
	viper.SetDefault("gemini.burst", 4)

	// Model catalog defaults
	viper.SetDefault("models.default", "gemini-2.5-pro-exp-03-25")
	viper.SetDefault("models.available", []map[string]any{
		{"id": "gemini-1.5-pro-latest", "name": "Gemini 1.5 Pro (Latest)"},
		{"id": "gemini-1.5-flash-latest", "name": "Gemini 1.5 Flash (Latest)"},
		{"id": "gemini-2.5-pro-exp-03-25", "name": "Gemini 2.5 Pro (Experimental)"},
	})

	// Workspace defaults
	viper.SetDefault("workspace.ttl", 2*time.Hour)
	viper.SetDefault("workspace.cleanup_interval", 5*time.Minute)
	viper.SetDefault("workspace.max_workspaces", 100)
	viper.SetDefault("workspace.operation_timeout", 10*time.Minute)
	// audio travels inline and base64 grows it by a third; the API caps an
	// inline request at 20 MB
	viper.SetDefault("workspace.max_audio_bytes", 14<<20)

	// Database defaults
	viper.SetDefault("database.path", "./data/minutes.db")
	viper.SetDefault("database.verbose", false)

	// Diagnostics defaults
	viper.SetDefault("diagnostics.enabled", true)
	viper.SetDefault("diagnostics.retention", 7*24*time.Hour)
	viper.SetDefault("diagnostics.prune_interval", time.Hour)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.rps", 5.0)
	viper.SetDefault("rate_limiting.burst", 20)

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")
}

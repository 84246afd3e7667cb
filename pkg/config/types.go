package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string            `mapstructure:"environment"`
	Server       ServerConfig      `mapstructure:"server"`
	Gemini       GeminiConfig      `mapstructure:"gemini"`
	Models       ModelsConfig      `mapstructure:"models"`
	Workspace    WorkspaceConfig   `mapstructure:"workspace"`
	Database     DatabaseConfig    `mapstructure:"database"`
	Diagnostics  DiagnosticsConfig `mapstructure:"diagnostics"`
	RateLimiting RateLimitConfig   `mapstructure:"rate_limiting"`
	Security     SecurityConfig    `mapstructure:"security"`
	Logging      LoggingConfig     `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host" validate:"required"`
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
	MaxRequestBytes int64         `mapstructure:"max_request_bytes" validate:"gt=0"`
}

// GeminiConfig contains Generative Language API settings
type GeminiConfig struct {
	BaseURL           string        `mapstructure:"base_url" validate:"required,url"`
	APIKey            string        `mapstructure:"api_key"`
	Timeout           time.Duration `mapstructure:"timeout" validate:"gt=0"`
	MaxRetries        int           `mapstructure:"max_retries" validate:"gte=0"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second" validate:"gte=0"`
	Burst             int           `mapstructure:"burst" validate:"gte=1"`
}

// ModelConfig is one selectable model
type ModelConfig struct {
	ID   string `mapstructure:"id" validate:"required"`
	Name string `mapstructure:"name" validate:"required"`
}

// ModelsConfig contains the model catalog
type ModelsConfig struct {
	Default   string        `mapstructure:"default" validate:"required"`
	Available []ModelConfig `mapstructure:"available" validate:"min=1,dive"`
}

// WorkspaceConfig contains workspace lifecycle settings
type WorkspaceConfig struct {
	TTL              time.Duration `mapstructure:"ttl" validate:"gt=0"`
	CleanupInterval  time.Duration `mapstructure:"cleanup_interval" validate:"gt=0"`
	MaxWorkspaces    int           `mapstructure:"max_workspaces" validate:"gte=1"`
	OperationTimeout time.Duration `mapstructure:"operation_timeout" validate:"gt=0"`
	MaxAudioBytes    int64         `mapstructure:"max_audio_bytes" validate:"gt=0"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Verbose bool   `mapstructure:"verbose"`
}

// DiagnosticsConfig contains raw-response audit settings
type DiagnosticsConfig struct {
	Enabled bool `mapstructure:"enabled"`

	// Retention of 0 keeps records forever
	Retention     time.Duration `mapstructure:"retention"`
	PruneInterval time.Duration `mapstructure:"prune_interval"`
}

// RateLimitConfig contains inbound rate limiting settings
type RateLimitConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	RPS     float64 `mapstructure:"rps" validate:"gte=0"`
	Burst   int     `mapstructure:"burst" validate:"gte=0"`
}

// SecurityConfig contains CORS settings
type SecurityConfig struct {
	EnableCORS  bool     `mapstructure:"enable_cors"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

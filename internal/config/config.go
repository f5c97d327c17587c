// Package config provides centralized configuration for the batch processor
// and the dashboard server. Settings come from environment variables (a
// .env file is loaded by the commands first), fall back to defaults, and are
// validated on startup so misconfiguration fails fast.
package config

import (
	"strconv"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Logging   LoggingConfig
	Input     InputConfig
	Output    OutputConfig
	Normalize NormalizeConfig
	Server    ServerConfig
	Upload    UploadConfig
	Cache     CacheConfig
	Rate      RateLimitConfig
	Security  SecurityConfig
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// InputConfig limits what the pipeline will read.
type InputConfig struct {
	// MaxFileSize is the largest file or archive member read, in bytes (default: 100MB)
	MaxFileSize int64 `env:"INPUT_MAX_FILE_SIZE" default:"104857600"`
}

// OutputConfig holds where the batch processor writes its summary.
type OutputConfig struct {
	// Path is the JSON summary written by the processor and served by the
	// dashboard (default: dashboard_data.json)
	Path string `env:"OUTPUT_PATH" envAlt:"DASHBOARD_DATA_PATH" default:"dashboard_data.json"`
}

// NormalizeConfig holds location normalization settings.
type NormalizeConfig struct {
	// StateAliasFile is an optional YAML file of extra state spellings
	StateAliasFile string `env:"STATE_ALIAS_FILE"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on; PORT is honoured for hosted platforms (default: 8080)
	Port int `env:"SERVER_PORT" envAlt:"PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading the request body (default: 60s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"60s"`

	// WriteTimeout is the maximum duration for writing the response (default: 2m)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"2m"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 90s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"90s"`
}

// UploadConfig holds settings for analyses submitted over HTTP.
type UploadConfig struct {
	// MaxRequestSize caps a whole multipart request in bytes (default: 256MB)
	MaxRequestSize int64 `env:"UPLOAD_MAX_REQUEST_SIZE" default:"268435456"`

	// MaxMemory is how much of a multipart form is held in memory before
	// spilling to temporary files (default: 32MB)
	MaxMemory int64 `env:"UPLOAD_MAX_MEMORY" default:"33554432"`

	// MaxConcurrent is the maximum number of analyses run at once (default: 4)
	MaxConcurrent int `env:"UPLOAD_MAX_CONCURRENT" default:"4"`

	// MaxWaitTime is how long a request waits for an analysis slot (default: 30s)
	MaxWaitTime time.Duration `env:"UPLOAD_MAX_WAIT_TIME" default:"30s"`
}

// CacheConfig holds the in-memory analysis cache settings.
type CacheConfig struct {
	// TTL is how long a finished analysis can be fetched by ID (default: 1h)
	TTL time.Duration `env:"CACHE_TTL" default:"1h"`

	// CleanupInterval is how often expired analyses are purged (default: 10m)
	CleanupInterval time.Duration `env:"CACHE_CLEANUP_INTERVAL" default:"10m"`
}

// RateLimitConfig holds per-client limits on analysis submissions.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// AnalyzePerMinute is analyses accepted per client IP per minute (default: 10)
	AnalyzePerMinute int `env:"RATE_LIMIT_ANALYZE" default:"10"`
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// AllowedOrigins lists origins allowed to fetch summaries cross-origin
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" default:"*"`

	// TrustedProxies is a comma-separated list of proxy CIDRs whose
	// forwarding headers are believed
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	// EnableCSP enables Content-Security-Policy headers (default: true)
	EnableCSP bool `env:"SECURITY_ENABLE_CSP" default:"true"`

	// RequireAPIKey guards analysis submissions with X-API-Key (default: false)
	RequireAPIKey bool `env:"REQUIRE_API_KEY" default:"false"`

	// APIKeys is a comma-separated list of accepted keys
	APIKeys []string `env:"API_KEYS"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

package config

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

// env builds a lookup function over a fixed set of variables.
func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func validConfig() *Config {
	return &Config{
		Logging:  LoggingConfig{Level: "info", Format: "text"},
		Input:    InputConfig{MaxFileSize: 1},
		Output:   OutputConfig{Path: "out.json"},
		Server:   ServerConfig{Port: 8080, ShutdownTimeout: time.Second, RequestTimeout: time.Second},
		Upload:   UploadConfig{MaxRequestSize: 1, MaxMemory: 1, MaxConcurrent: 1, MaxWaitTime: time.Second},
		Cache:    CacheConfig{TTL: time.Hour, CleanupInterval: time.Minute},
		Rate:     RateLimitConfig{Enabled: true, AnalyzePerMinute: 10},
		Security: SecurityConfig{AllowedOrigins: []string{"*"}},
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadFrom(env(nil))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.Input.MaxFileSize != 104857600 {
		t.Errorf("Input.MaxFileSize = %d, want %d", cfg.Input.MaxFileSize, 104857600)
	}
	if cfg.Output.Path != "dashboard_data.json" {
		t.Errorf("Output.Path = %q, want %q", cfg.Output.Path, "dashboard_data.json")
	}
	if cfg.Upload.MaxConcurrent != 4 {
		t.Errorf("Upload.MaxConcurrent = %d, want %d", cfg.Upload.MaxConcurrent, 4)
	}
	if cfg.Cache.TTL != time.Hour {
		t.Errorf("Cache.TTL = %v, want %v", cfg.Cache.TTL, time.Hour)
	}
	if !reflect.DeepEqual(cfg.Security.AllowedOrigins, []string{"*"}) {
		t.Errorf("Security.AllowedOrigins = %v, want [*]", cfg.Security.AllowedOrigins)
	}
	if cfg.Normalize.StateAliasFile != "" {
		t.Errorf("Normalize.StateAliasFile = %q, want empty", cfg.Normalize.StateAliasFile)
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	cfg, err := LoadFrom(env(map[string]string{
		"SERVER_PORT":           "9090",
		"UPLOAD_MAX_CONCURRENT": "10",
		"LOG_LEVEL":             "debug",
		"OUTPUT_PATH":           "/tmp/summary.json",
		"STATE_ALIAS_FILE":      "aliases.yaml",
	}))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Upload.MaxConcurrent != 10 {
		t.Errorf("Upload.MaxConcurrent = %d, want %d", cfg.Upload.MaxConcurrent, 10)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Output.Path != "/tmp/summary.json" {
		t.Errorf("Output.Path = %q, want %q", cfg.Output.Path, "/tmp/summary.json")
	}
	if cfg.Normalize.StateAliasFile != "aliases.yaml" {
		t.Errorf("Normalize.StateAliasFile = %q, want %q", cfg.Normalize.StateAliasFile, "aliases.yaml")
	}
}

func TestLoad_AltEnvVar(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		port int
	}{
		{name: "alternate used", vars: map[string]string{"PORT": "3000"}, port: 3000},
		{name: "primary wins", vars: map[string]string{"SERVER_PORT": "4000", "PORT": "3000"}, port: 4000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFrom(env(tt.vars))
			if err != nil {
				t.Fatalf("LoadFrom() error = %v", err)
			}
			if cfg.Server.Port != tt.port {
				t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, tt.port)
			}
		})
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("INPUT_MAX_FILE_SIZE", "2048")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Input.MaxFileSize != 2048 {
		t.Errorf("Input.MaxFileSize = %d, want %d", cfg.Input.MaxFileSize, 2048)
	}
}

func TestLoad_Duration(t *testing.T) {
	cfg, err := LoadFrom(env(map[string]string{
		"SERVER_READ_TIMEOUT":  "45s",
		"UPLOAD_MAX_WAIT_TIME": "1m30s",
	}))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Server.ReadTimeout != 45*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want %v", cfg.Server.ReadTimeout, 45*time.Second)
	}
	if cfg.Upload.MaxWaitTime != 90*time.Second {
		t.Errorf("Upload.MaxWaitTime = %v, want %v", cfg.Upload.MaxWaitTime, 90*time.Second)
	}
}

func TestLoad_CommaSeparatedSlice(t *testing.T) {
	cfg, err := LoadFrom(env(map[string]string{
		"CORS_ALLOWED_ORIGINS": "https://dash.example.in, https://uidai.example.in ,",
	}))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	expected := []string{"https://dash.example.in", "https://uidai.example.in"}
	if !reflect.DeepEqual(cfg.Security.AllowedOrigins, expected) {
		t.Errorf("AllowedOrigins = %v, want %v", cfg.Security.AllowedOrigins, expected)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want string
	}{
		{name: "bad integer", vars: map[string]string{"SERVER_PORT": "eighty"}, want: "SERVER_PORT"},
		{name: "bad duration", vars: map[string]string{"CACHE_TTL": "forever"}, want: "CACHE_TTL"},
		{name: "bad boolean", vars: map[string]string{"SECURITY_ENABLE_CSP": "sometimes"}, want: "SECURITY_ENABLE_CSP"},
		{name: "fails validation", vars: map[string]string{"LOG_FORMAT": "xml"}, want: "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(env(tt.vars))
			if err == nil {
				t.Fatal("LoadFrom() expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error should mention %s: %v", tt.want, err)
			}
		})
	}
}

func TestLoadStruct_Required(t *testing.T) {
	var target struct {
		Token string `env:"API_TOKEN" required:"true"`
	}

	err := loadStruct(reflect.ValueOf(&target).Elem(), env(nil))
	if err == nil {
		t.Fatal("loadStruct() expected error for missing API_TOKEN")
	}
	if !strings.Contains(err.Error(), "API_TOKEN") {
		t.Errorf("error should mention API_TOKEN: %v", err)
	}

	if err := loadStruct(reflect.ValueOf(&target).Elem(), env(map[string]string{"API_TOKEN": "abc"})); err != nil {
		t.Fatalf("loadStruct() error = %v", err)
	}
	if target.Token != "abc" {
		t.Errorf("Token = %q, want %q", target.Token, "abc")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{name: "invalid port", mutate: func(c *Config) { c.Server.Port = 99999 }, want: "SERVER_PORT"},
		{name: "invalid log level", mutate: func(c *Config) { c.Logging.Level = "verbose" }, want: "LOG_LEVEL"},
		{name: "zero file size", mutate: func(c *Config) { c.Input.MaxFileSize = 0 }, want: "INPUT_MAX_FILE_SIZE"},
		{name: "blank output path", mutate: func(c *Config) { c.Output.Path = "  " }, want: "OUTPUT_PATH"},
		{name: "zero concurrency", mutate: func(c *Config) { c.Upload.MaxConcurrent = 0 }, want: "UPLOAD_MAX_CONCURRENT"},
		{name: "zero cache ttl", mutate: func(c *Config) { c.Cache.TTL = 0 }, want: "CACHE_TTL"},
		{name: "zero rate", mutate: func(c *Config) { c.Rate = RateLimitConfig{Enabled: true} }, want: "RATE_LIMIT_ANALYZE"},
		{name: "api key required without keys", mutate: func(c *Config) { c.Security.RequireAPIKey = true }, want: "API_KEYS"},
		{name: "bad proxy cidr", mutate: func(c *Config) { c.Security.TrustedProxies = []string{"10.0.0.1"} }, want: "TRUSTED_PROXIES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error should mention %s: %v", tt.want, err)
			}
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 0
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error")
	}
	for _, want := range []string{"SERVER_PORT", "LOG_FORMAT"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %s: %v", want, err)
		}
	}
}

func TestServerAddr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"", 8080, ":8080"},
		{"0.0.0.0", 8080, "0.0.0.0:8080"},
		{"127.0.0.1", 3000, "127.0.0.1:3000"},
	}

	for _, tt := range tests {
		cfg := &ServerConfig{Host: tt.host, Port: tt.port}
		if got := cfg.Addr(); got != tt.want {
			t.Errorf("Addr() with host=%q, port=%d = %q, want %q", tt.host, tt.port, got, tt.want)
		}
	}
}

func TestConfigString(t *testing.T) {
	str := validConfig().String()
	for _, want := range []string{"out.json", `"info"`} {
		if !strings.Contains(str, want) {
			t.Errorf("String() = %q, want it to contain %q", str, want)
		}
	}
}

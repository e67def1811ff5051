package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	TemplateGlob   string   `mapstructure:"template_glob"`
	StaticDir      string   `mapstructure:"static_dir"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// BackendConfig describes the upstream CRM service the console talks to.
type BackendConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	// LegacyNumericStatus switches the client to the revision of the backend
	// that encodes ticket statuses as 0-4 integers and response codes as 0/1.
	LegacyNumericStatus bool `mapstructure:"legacy_numeric_status"`
}

func (b *BackendConfig) Timeout() time.Duration {
	if b.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(b.TimeoutSeconds) * time.Second
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type SearchConfig struct {
	DebounceMillis int `mapstructure:"debounce_millis"`
	CacheTTLSecs   int `mapstructure:"cache_ttl_secs"`
}

func (s *SearchConfig) Debounce() time.Duration {
	if s.DebounceMillis <= 0 {
		return 250 * time.Millisecond
	}
	return time.Duration(s.DebounceMillis) * time.Millisecond
}

func (s *SearchConfig) CacheTTL() time.Duration {
	if s.CacheTTLSecs <= 0 {
		return 30 * time.Second
	}
	return time.Duration(s.CacheTTLSecs) * time.Second
}

type RateLimitConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	Limit         int  `mapstructure:"limit"`
	WindowSeconds int  `mapstructure:"window_seconds"`
}

func (r *RateLimitConfig) Window() time.Duration {
	if r.WindowSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(r.WindowSeconds) * time.Second
}

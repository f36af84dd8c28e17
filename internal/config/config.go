// Package config provides centralized configuration management for the dashboard.
// It loads configuration from environment variables with defaults that reproduce
// the stock behaviour, and validates all settings on startup to fail fast on
// misconfiguration.
package config

import "time"

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server   ServerConfig
	Data     DataConfig
	Map      MapConfig
	Palette  PaletteConfig
	Rate     RateLimitConfig
	Security SecurityConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading a request (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing the response (default: 60s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"60s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 15s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"15s"`

	// RequestTimeout is the middleware timeout for requests (default: 30s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"30s"`
}

// DataConfig describes the station source file and how it is summarised.
type DataConfig struct {
	// Path is the station CSV, relative to the working directory
	Path string `env:"DATA_PATH" default:"./data/Delhi metro.csv"`

	// Delimiter is the single-character field separator, or "tab" (default: ",")
	Delimiter string `env:"DATA_DELIMITER" default:","`

	// PreviewRows is how many rows the raw and cleaned previews show (default: 5)
	PreviewRows int `env:"DATA_PREVIEW_ROWS" default:"5"`

	// HistogramBins is the number of equal-width distance bins (default: 20)
	HistogramBins int `env:"CHART_HISTOGRAM_BINS" default:"20"`

	// FillYearGaps adds zero-count years to the yearly openings series (default: false)
	FillYearGaps bool `env:"CHART_FILL_YEAR_GAPS" default:"false"`

	// MaxConcurrentBuilds bounds how many page loads read the file at once
	MaxConcurrentBuilds int `env:"DATA_MAX_CONCURRENT_BUILDS" default:"4"`

	// BuildWait is how long a page load waits for a build slot
	BuildWait time.Duration `env:"DATA_BUILD_WAIT" default:"10s"`
}

// MapConfig holds the station map viewport.
type MapConfig struct {
	// CenterLat is the initial map centre latitude (default: New Delhi)
	CenterLat float64 `env:"MAP_CENTER_LAT" default:"28.6139"`

	// CenterLon is the initial map centre longitude (default: New Delhi)
	CenterLon float64 `env:"MAP_CENTER_LON" default:"77.2090"`

	// Zoom is the initial zoom level (default: 12)
	Zoom int `env:"MAP_ZOOM" default:"12"`

	// TileURL is the Leaflet tile layer template
	TileURL string `env:"MAP_TILE_URL" default:"https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"`
}

// PaletteConfig points at an optional YAML file overriding the line colours.
type PaletteConfig struct {
	// File is a YAML document mapping metro line names to colours (default: built-in palette)
	File string `env:"LINE_COLORS_FILE"`
}

// RateLimitConfig holds rate limiting settings per time window.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the rate limit per IP (default: 120)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"120"`
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// TrustedProxies is a comma-separated list of trusted proxy CIDRs
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	// EnableCSP enables Content-Security-Policy headers (default: true)
	EnableCSP bool `env:"SECURITY_ENABLE_CSP" default:"true"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	if c.Host == "" {
		return ":" + itoa(c.Port)
	}
	return c.Host + ":" + itoa(c.Port)
}

// Comma returns the delimiter as a rune for the CSV reader.
// The word "tab" selects a tab character.
func (c *DataConfig) Comma() rune {
	if c.Delimiter == "tab" {
		return '\t'
	}
	for _, r := range c.Delimiter {
		return r
	}
	return ','
}

// itoa converts an int to string without importing strconv in this file.
func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var b [20]byte
	n := len(b)
	neg := i < 0
	if neg {
		i = -i
	}
	for i > 0 {
		n--
		b[n] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		n--
		b[n] = '-'
	}
	return string(b[n:])
}

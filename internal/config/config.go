// Package config loads server configuration from command-line flags, environment variables, and .env files.
package config

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Render cell size bounds in pixels.
const (
	MinCellSize = 8
	MaxCellSize = 64
)

// Config holds the application configuration.
type Config struct {
	App       AppConfig
	Logger    LoggerConfig
	Server    ServerConfig
	RateLimit RateLimitConfig
	Render    RenderConfig
	Sign      SignConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Name          string
	Port          string        // Server port (default: 8080)
	ReadTimeout   time.Duration // HTTP read timeout (default: 15s)
	WriteTimeout  time.Duration // HTTP write timeout (default: 15s)
	IdleTimeout   time.Duration // HTTP idle timeout (default: 60s)
	AdvertiseMDNS bool          // Advertise via mDNS/Zeroconf (default: true)
	CORSOrigins   []string      // Allowed origins (default: *)
}

// RateLimitConfig bounds requests per client IP.
type RateLimitConfig struct {
	RequestsPerMinute int // 0 disables limiting
	Burst             int
}

// RenderConfig holds PNG rendering configuration.
type RenderConfig struct {
	// CellSize is the edge of one grid cell in pixels (default: 24)
	CellSize int
	// CacheEnabled keeps rendered images in memory (default: true)
	CacheEnabled bool
	// CacheTTL is how long a rendered image stays cached (default: 10m)
	CacheTTL time.Duration
	// CacheMaxBytes caps the in-memory cache size (default: 64 MiB)
	CacheMaxBytes int64
}

// SignConfig holds defaults applied to sign requests.
type SignConfig struct {
	// DefaultSize is the grid size code used when a request omits one (0, 1 or 2)
	DefaultSize int
}

// Load builds configuration from multiple sources with precedence:
// 1. Command-line flags in args (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func Load(args []string) (*Config, error) {
	fs := flag.NewFlagSet("luckysign", flag.ContinueOnError)

	env := fs.String("env", "", "Environment (development, staging, production)")
	logLevel := fs.String("log-level", "", "Log level (debug, info, warn, error)")
	serverName := fs.String("server-name", "", "Name for the server")

	// Server flags
	serverPort := fs.String("port", "", "Server port (default: 8080)")
	readTimeout := fs.String("read-timeout", "", "HTTP read timeout (default: 15s)")
	writeTimeout := fs.String("write-timeout", "", "HTTP write timeout (default: 15s)")
	idleTimeout := fs.String("idle-timeout", "", "HTTP idle timeout (default: 60s)")
	advertiseMDNS := fs.String("advertise-mdns", "", "Advertise via mDNS/Zeroconf (default: true)")
	corsOrigins := fs.String("cors-origins", "", "Comma separated allowed CORS origins (default: *)")

	// Rate limit flags
	rpm := fs.String("rate-limit-rpm", "", "Requests per minute per client, 0 disables (default: 120)")
	burst := fs.String("rate-limit-burst", "", "Burst allowance per client (default: 20)")

	// Render flags
	cellSize := fs.String("cell-size", "", "Rendered cell size in pixels (default: 24)")
	cacheEnabled := fs.String("render-cache", "", "Cache rendered images in memory (default: true)")
	cacheTTL := fs.String("render-cache-ttl", "", "Rendered image cache lifetime (default: 10m)")
	cacheMaxBytes := fs.String("render-cache-max-bytes", "", "Rendered image cache size cap (default: 67108864)")

	defaultSize := fs.String("default-size", "", "Default grid size code: 0, 1 or 2 (default: 0)")

	envFile := fs.String("env-file", ".env", "Path to .env file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(*envFile)

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(*env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(*logLevel, "LOG_LEVEL", "info"),
		},
		Server: ServerConfig{
			Name:          getConfigValue(*serverName, "SERVER_NAME", "Lucky Sign"),
			Port:          getConfigValue(*serverPort, "SERVER_PORT", "8080"),
			AdvertiseMDNS: getBoolConfigValue(*advertiseMDNS, "ADVERTISE_MDNS", true),
			CORSOrigins:   splitList(getConfigValue(*corsOrigins, "CORS_ORIGINS", "*")),
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: getIntConfigValue(*rpm, "RATE_LIMIT_RPM", 120),
			Burst:             getIntConfigValue(*burst, "RATE_LIMIT_BURST", 20),
		},
		Render: RenderConfig{
			CellSize:      getIntConfigValue(*cellSize, "RENDER_CELL_SIZE", 24),
			CacheEnabled:  getBoolConfigValue(*cacheEnabled, "RENDER_CACHE_ENABLED", true),
			CacheMaxBytes: int64(getIntConfigValue(*cacheMaxBytes, "RENDER_CACHE_MAX_BYTES", 64<<20)),
		},
		Sign: SignConfig{
			DefaultSize: getIntConfigValue(*defaultSize, "SIGN_DEFAULT_SIZE", 0),
		},
	}

	durations := []struct {
		name  string
		flag  string
		env   string
		def   string
		field *time.Duration
	}{
		{"read timeout", *readTimeout, "SERVER_READ_TIMEOUT", "15s", &cfg.Server.ReadTimeout},
		{"write timeout", *writeTimeout, "SERVER_WRITE_TIMEOUT", "15s", &cfg.Server.WriteTimeout},
		{"idle timeout", *idleTimeout, "SERVER_IDLE_TIMEOUT", "60s", &cfg.Server.IdleTimeout},
		{"render cache ttl", *cacheTTL, "RENDER_CACHE_TTL", "10m", &cfg.Render.CacheTTL},
	}
	for _, d := range durations {
		raw := getConfigValue(d.flag, d.env, d.def)
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", d.name, raw, err)
		}
		*d.field = parsed
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all config values are present and within range.
func (c *Config) Validate() error {
	if c.App.Environment == "" {
		return errors.New("ENV is required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if port, err := strconv.Atoi(c.Server.Port); err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port: %q", c.Server.Port)
	}

	if c.RateLimit.RequestsPerMinute < 0 || c.RateLimit.Burst < 0 {
		return errors.New("rate limit values cannot be negative")
	}
	if c.RateLimit.RequestsPerMinute > 0 && c.RateLimit.Burst == 0 {
		return errors.New("rate limit burst must be at least 1 when limiting is enabled")
	}

	if c.Render.CellSize < MinCellSize || c.Render.CellSize > MaxCellSize {
		return fmt.Errorf("invalid cell size: %d (must be %d..%d)", c.Render.CellSize, MinCellSize, MaxCellSize)
	}
	if c.Render.CacheEnabled && (c.Render.CacheTTL <= 0 || c.Render.CacheMaxBytes <= 0) {
		return errors.New("render cache needs a positive ttl and size")
	}

	if c.Sign.DefaultSize < 0 || c.Sign.DefaultSize > 2 {
		return fmt.Errorf("invalid default size: %d (must be 0, 1 or 2)", c.Sign.DefaultSize)
	}

	return nil
}

// splitList splits a comma separated value, dropping empty entries.
func splitList(v string) []string {
	var out []string
	for part := range strings.SplitSeq(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// getBoolConfigValue returns a bool from flag, env var, or default.
// Accepts: "true", "1", "yes" (case-insensitive) as true; anything else is false.
func getBoolConfigValue(flagValue, envKey string, defaultValue bool) bool {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	strValue = strings.ToLower(strValue)
	return strValue == "true" || strValue == "1" || strValue == "yes"
}

// getIntConfigValue returns an int from flag, env var, or default.
// Unparseable values fall back to the default.
func getIntConfigValue(flagValue, envKey string, defaultValue int) int {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	result, err := strconv.Atoi(strings.TrimSpace(strValue))
	if err != nil {
		return defaultValue
	}
	return result
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}

		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)

		// Env vars already set win over the file.
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}

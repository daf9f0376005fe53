package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App:       AppConfig{Environment: "development"},
		Logger:    LoggerConfig{Level: "info"},
		Server:    ServerConfig{Port: "8080"},
		RateLimit: RateLimitConfig{RequestsPerMinute: 60, Burst: 10},
		Render: RenderConfig{
			CellSize:      24,
			CacheEnabled:  true,
			CacheTTL:      time.Minute,
			CacheMaxBytes: 1 << 20,
		},
	}
}

// noEnvFile points Load at a file that does not exist.
func noEnvFile(t *testing.T) string {
	return "-env-file=" + filepath.Join(t.TempDir(), "missing.env")
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_AllEnvironments(t *testing.T) {
	tests := []struct {
		env   string
		valid bool
	}{
		{"development", true},
		{"staging", true},
		{"production", true},
		{"test", false},
		{"", false},
		{"DEVELOPMENT", false}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := validConfig()
			cfg.App.Environment = tt.env

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_AllLogLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"debug", true},
		{"info", true},
		{"warn", true},
		{"error", true},
		{"DEBUG", true},  // case insensitive
		{"trace", false}, // not supported
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := validConfig()
			cfg.Logger.Level = tt.level

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_Ranges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"port not numeric", func(c *Config) { c.Server.Port = "http" }, "invalid port"},
		{"port out of range", func(c *Config) { c.Server.Port = "70000" }, "invalid port"},
		{"negative rpm", func(c *Config) { c.RateLimit.RequestsPerMinute = -1 }, "negative"},
		{"zero burst", func(c *Config) { c.RateLimit.Burst = 0 }, "burst"},
		{"cell too small", func(c *Config) { c.Render.CellSize = 4 }, "cell size"},
		{"cell too large", func(c *Config) { c.Render.CellSize = 65 }, "cell size"},
		{"cache without ttl", func(c *Config) { c.Render.CacheTTL = 0 }, "render cache"},
		{"default size", func(c *Config) { c.Sign.DefaultSize = 3 }, "default size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidate_DisabledLimitsAndCache(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimit = RateLimitConfig{}
	cfg.Render.CacheEnabled = false
	cfg.Render.CacheTTL = 0

	assert.NoError(t, cfg.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load([]string{noEnvFile(t)})
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 60*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, 24, cfg.Render.CellSize)
	assert.Equal(t, 10*time.Minute, cfg.Render.CacheTTL)
	assert.Equal(t, int64(64<<20), cfg.Render.CacheMaxBytes)
	assert.Equal(t, 0, cfg.Sign.DefaultSize)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("RENDER_CELL_SIZE", "12")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load([]string{noEnvFile(t), "-port", "9100", "-default-size", "2"})
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Server.Port)
	assert.Equal(t, 12, cfg.Render.CellSize)
	assert.Equal(t, 2, cfg.Sign.DefaultSize)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("RENDER_CACHE_TTL", "soon")

	_, err := Load([]string{noEnvFile(t)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render cache ttl")
}

func TestLoad_InvalidValue(t *testing.T) {
	_, err := Load([]string{noEnvFile(t), "-cell-size", "100"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestLoad_UnknownFlag(t *testing.T) {
	_, err := Load([]string{"-metadata-path", "/tmp"})
	assert.Error(t, err)
}

func TestGetConfigValue_Precedence(t *testing.T) {
	assert.Equal(t, "flag-value", getConfigValue("flag-value", "ENV_KEY", "default-value"))

	t.Setenv("TEST_ENV_KEY", "env-value")
	assert.Equal(t, "env-value", getConfigValue("", "TEST_ENV_KEY", "default-value"))

	assert.Equal(t, "default-value", getConfigValue("", "NONEXISTENT_KEY", "default-value"))
}

func TestGetBoolAndIntConfigValue(t *testing.T) {
	assert.True(t, getBoolConfigValue("YES", "UNSET_BOOL", false))
	assert.False(t, getBoolConfigValue("off", "UNSET_BOOL", true))
	assert.True(t, getBoolConfigValue("", "UNSET_BOOL", true))

	assert.Equal(t, 5, getIntConfigValue("5", "UNSET_INT", 1))
	assert.Equal(t, 1, getIntConfigValue("five", "UNSET_INT", 1))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b "))
	assert.Nil(t, splitList(""))
}

func TestLoadEnvFile_ValidFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")

	content := `# Test env file
LS_TEST_ENV=staging
LS_TEST_LEVEL=debug
# Comment line
LS_TEST_QUOTED="some value"
LS_TEST_SINGLE='another value'
`
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o644))

	// Registers cleanup for every key the file sets.
	for _, key := range []string{"LS_TEST_ENV", "LS_TEST_LEVEL", "LS_TEST_QUOTED", "LS_TEST_SINGLE"} {
		t.Setenv(key, "")
	}

	require.NoError(t, loadEnvFile(envFile))

	assert.Equal(t, "staging", os.Getenv("LS_TEST_ENV"))
	assert.Equal(t, "debug", os.Getenv("LS_TEST_LEVEL"))
	assert.Equal(t, "some value", os.Getenv("LS_TEST_QUOTED"))
	assert.Equal(t, "another value", os.Getenv("LS_TEST_SINGLE"))
}

func TestLoadEnvFile_InvalidFormat(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")

	content := `VALID_KEY=valid_value
INVALID LINE WITHOUT EQUALS
`
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o644))

	err := loadEnvFile(envFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestLoadEnvFile_NonExistentFile(t *testing.T) {
	assert.Error(t, loadEnvFile("/nonexistent/file/.env"))
}

func TestLoadEnvFile_ExistingEnvVarsNotOverwritten(t *testing.T) {
	t.Setenv("LS_TEST_VAR", "original-value")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(`LS_TEST_VAR=new-value`), 0o644))

	require.NoError(t, loadEnvFile(envFile))
	assert.Equal(t, "original-value", os.Getenv("LS_TEST_VAR"))
}

func TestLoad_EnvFileFeedsConfig(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPM", "")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("RATE_LIMIT_RPM=30\n"), 0o644))

	cfg, err := Load([]string{"-env-file", envFile})
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.RateLimit.RequestsPerMinute)
}

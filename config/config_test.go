package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foraldrapengen/benefit-engine/config"
)

func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "0.3", cfg.TaxRate().String())
	assert.Equal(t, 36, cfg.MaxProjectionMonths)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, 60, cfg.RateLimit)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("FPG_ENV", "production")
	t.Setenv("FPG_DEFAULT_TAX_RATE", "0.3241")
	t.Setenv("FPG_MAX_PROJECTION_MONTHS", "24")
	t.Setenv("FPG_ALLOWED_ORIGINS", "https://foraldrapengen.se")
	t.Setenv("FPG_LOG_LEVEL", "debug")

	cfg, err := config.Load(noEnvFile(t))
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "0.3241", cfg.TaxRate().String())
	assert.Equal(t, 24, cfg.MaxProjectionMonths)
	assert.Equal(t, []string{"https://foraldrapengen.se"}, cfg.AllowedOrigins)
	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoad_DotEnvFile(t *testing.T) {
	// GIVEN: a .env file and one variable already set in the environment
	// THEN: the file fills the gaps and the environment wins
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("FPG_RATE_LIMIT=120\nFPG_STATIC_DIR=/srv/web\n"), 0o600))
	t.Setenv("FPG_STATIC_DIR", "/opt/web")
	t.Setenv("FPG_RATE_LIMIT", "")
	os.Unsetenv("FPG_RATE_LIMIT")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 120, cfg.RateLimit)
	assert.Equal(t, "/opt/web", cfg.StaticDir)
}

func TestLoad_RejectsOutOfRange(t *testing.T) {
	cases := map[string][2]string{
		"tax rate above one": {"FPG_DEFAULT_TAX_RATE", "1.5"},
		"negative tax rate":  {"FPG_DEFAULT_TAX_RATE", "-0.1"},
		"zero months":        {"FPG_MAX_PROJECTION_MONTHS", "0"},
		"zero rate limit":    {"FPG_RATE_LIMIT", "0"},
		"unknown log level":  {"FPG_LOG_LEVEL", "loud"},
		"unknown log format": {"FPG_LOG_FORMAT", "xml"},
		"not a number":       {"FPG_MAX_PROJECTION_MONTHS", "many"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := config.Load(noEnvFile(t))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLogger_Format(t *testing.T) {
	cfg, err := config.Load(noEnvFile(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	cfg.Logger(&buf, nil).Info("loaded", "component", "test")
	assert.Contains(t, buf.String(), `"msg":"loaded"`)

	buf.Reset()
	cfg.LogFormat = "text"
	cfg.Logger(&buf, nil).Info("loaded")
	assert.Contains(t, buf.String(), "msg=loaded")

	buf.Reset()
	cfg.Logger(&buf, nil).Debug("hidden")
	assert.Empty(t, buf.String(), "info level drops debug")
}

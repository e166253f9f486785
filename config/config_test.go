package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zonetag/config"
)

// config.Get processes the environment once per test binary, so every
// assertion lives in a single test.
func TestGet(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DISPLAY_USE_24_HOUR", "true")
	t.Setenv("DISPLAY_LOCALE", "de")
	t.Setenv("STORE_DRIVER", "file")
	t.Setenv("STORE_FILE_PATH", "/tmp/zonetag.json")
	t.Setenv("CACHE_REDIS_PRIMARY_DB", "3")
	t.Setenv("APP_CORS_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg := config.Get()
	require.NotNil(t, cfg)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "zonetag", cfg.App.Name)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.App.CORS.AllowedOrigins)

	assert.True(t, cfg.Display.Use24Hour)
	assert.True(t, cfg.Display.ShowTimeInline)
	assert.False(t, cfg.Display.ShowOffset)
	assert.Equal(t, "de", cfg.Display.Locale)

	assert.Equal(t, "file", cfg.Store.Driver)
	assert.Equal(t, "timezones", cfg.Store.Key)
	assert.Equal(t, "/tmp/zonetag.json", cfg.Store.FilePath)
	assert.Equal(t, 2, cfg.Store.TimeoutSeconds)
	assert.Equal(t, 3, cfg.Cache.Redis.Primary.DB)

	assert.Same(t, cfg, config.Get())
}

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, DefaultAPIBaseURL, cfg.Backend.BaseURL)
	assert.Zero(t, cfg.Backend.Timeout)
	assert.True(t, cfg.Events.CacheEnabled)
	assert.Equal(t, CacheDriverMemory, cfg.Events.CacheDriver)
	assert.Equal(t, 60*time.Second, cfg.Events.CacheTTL)
	assert.Equal(t, 30*time.Minute, cfg.Forms.SessionTTL)
	assert.Equal(t, "thunder_form", cfg.Forms.CookieName)
	assert.Equal(t, "thunder-site:", cfg.Redis.KeyPrefix)
	assert.Nil(t, cfg.CORS.AllowedOrigins)
	assert.Empty(t, cfg.Events.RevalidateToken)
	assert.Equal(t, 10000, cfg.Forms.MaxSessions)
}

func TestLoadFromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("API_BASE_URL", " https://api.thunderevents.io/ ")
	t.Setenv("EVENTS_CACHE_TTL", "2m")
	t.Setenv("CACHE_DRIVER", "REDIS")
	t.Setenv("HTTP_CLIENT_TIMEOUT", "5s")
	t.Setenv("ALLOWED_ORIGINS", "https://thunderevents.io, https://preview.thunderevents.io/ ,")
	t.Setenv("EVENTS_REVALIDATE_TOKEN", " s3cret ")
	t.Setenv("FORM_MAX_SESSIONS", "250")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.thunderevents.io", cfg.Backend.BaseURL)
	assert.Equal(t, 2*time.Minute, cfg.Events.CacheTTL)
	assert.Equal(t, CacheDriverRedis, cfg.Events.CacheDriver)
	assert.Equal(t, 5*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, []string{"https://thunderevents.io", "https://preview.thunderevents.io"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "s3cret", cfg.Events.RevalidateToken)
	assert.Equal(t, 250, cfg.Forms.MaxSessions)
}

func TestLoadRejectsOriginsWithoutScheme(t *testing.T) {
	for _, raw := range []string{"thunderevents.io", "https://thunderevents.io,localhost:3000", "ftp://files.example"} {
		t.Run(raw, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv("ALLOWED_ORIGINS", raw)

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "ALLOWED_ORIGINS")
		})
	}
}

func TestParseDurationFallsBack(t *testing.T) {
	assert.Equal(t, time.Minute, parseDuration("", time.Minute))
	assert.Equal(t, time.Minute, parseDuration("soon", time.Minute))
	assert.Equal(t, time.Minute, parseDuration("-5s", time.Minute))
	assert.Equal(t, 90*time.Second, parseDuration("90s", time.Minute))
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

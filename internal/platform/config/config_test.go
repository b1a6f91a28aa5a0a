package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEnvironment(t *testing.T) {
	cases := map[string]Environment{
		"":            EnvDevelopment,
		"development": EnvDevelopment,
		"PRODUCTION":  EnvProduction,
		" test ":      EnvTest,
		"staging":     EnvDevelopment,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseEnvironment(in), "input %q", in)
	}
}

func TestUploadConstants(t *testing.T) {
	assert.Equal(t, 2*1024*1024, MaxUploadBytes)
	assert.Equal(t, 2, MaxUploadMB)
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("APP_VERSION", "")
	t.Setenv("ADMIN_TOKEN", "")
	t.Setenv("GATEWAY_BASE_URL", "")
	t.Setenv("GATEWAY_TIMEOUT", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("FEED_CACHE_TTL", "")
	t.Setenv("TRUSTED_PROXY_HOPS", "")

	cfg := FromEnv()

	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.Equal(t, DefaultVersion, cfg.Version)
	assert.NotEmpty(t, cfg.AdminToken, "development gets a default admin token")
	assert.Equal(t, time.Duration(0), cfg.Gateway.Timeout)
	assert.Empty(t, cfg.Redis.URL)
	assert.Zero(t, cfg.Gateway.FeedCacheTTL, "feed caching is opt-in")
	assert.Zero(t, cfg.TrustedProxyHops)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_VERSION", "2.3.1")
	t.Setenv("ADMIN_TOKEN", "")
	t.Setenv("GATEWAY_BASE_URL", "https://content.example.org/")
	t.Setenv("GATEWAY_TIMEOUT", "3s")
	t.Setenv("WRITE_RATE_PER_MINUTE", "not-a-number")
	t.Setenv("FEED_CACHE_TTL", "90s")
	t.Setenv("TRUSTED_PROXY_HOPS", "1")

	cfg := FromEnv()

	assert.Equal(t, EnvProduction, cfg.Environment)
	assert.Equal(t, "2.3.1", cfg.Version)
	assert.Empty(t, cfg.AdminToken, "production never falls back to a default token")
	assert.Equal(t, "https://content.example.org", cfg.Gateway.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Gateway.Timeout)
	assert.Equal(t, 10, cfg.WriteRatePerMinute)
	assert.Equal(t, 90*time.Second, cfg.Gateway.FeedCacheTTL)
	assert.Equal(t, 1, cfg.TrustedProxyHops)
}

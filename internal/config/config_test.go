package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "test-secret-key-for-jwt")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 5, cfg.RateLimit.LoginPerMinute)
	assert.Equal(t, "memory", cfg.RateLimit.Backend)
	assert.Equal(t, "memory", cfg.Session.Backend)
	assert.Equal(t, 8*time.Hour, cfg.Session.TTL)
	assert.Equal(t, defaultCSP, cfg.Security.ContentSecurityPolicy)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.App.AllowedOrigins)
	assert.True(t, cfg.Payroll.LateMinuteRate.IsZero())
	assert.False(t, cfg.OAuth2Google.Enabled())
	assert.False(t, cfg.UsesRedis())
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("RATE_LIMIT_LOGIN_PER_MIN", "10")
	t.Setenv("RATE_LIMIT_BACKEND", "redis")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("PAYROLL_LATE_MINUTE_RATE", "12.50")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.RateLimit.LoginPerMinute)
	assert.True(t, cfg.UsesRedis())
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.App.AllowedOrigins)
	assert.Equal(t, "12.5", cfg.Payroll.LateMinuteRate.String())
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET_KEY")
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := []struct {
		name string
		key  string
		val  string
	}{
		{"non numeric port", "DB_PORT", "abc"},
		{"zero rate limit", "RATE_LIMIT_LOGIN_PER_MIN", "0"},
		{"unknown backend", "SESSION_BACKEND", "memcached"},
		{"bad ttl", "SESSION_TTL", "forever"},
		{"bad payroll rate", "PAYROLL_EARLY_MINUTE_RATE", "x"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tc.key, tc.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestDatabaseURL(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: 5432, User: "app", Password: "pw", Name: "backoffice", SSLMode: "disable",
	}}
	assert.Equal(t, "postgres://app:pw@db:5432/backoffice?sslmode=disable", cfg.DatabaseURL())
}

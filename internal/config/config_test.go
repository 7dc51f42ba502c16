package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("TESTING", "")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadTestingFallback(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("TESTING", "true")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.Testing)
	require.NotEmpty(t, cfg.DatabaseURL)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/classicmodels")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("RATE_LIMIT_RPS", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 100.0, cfg.RateLimitRPS)
}

func TestTruthy(t *testing.T) {
	for _, v := range []string{"1", "true", "YES", " on "} {
		require.True(t, truthy(v), v)
	}
	for _, v := range []string{"", "0", "false", "off", "nope"} {
		require.False(t, truthy(v), v)
	}
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.False(t, cfg.Production())

	require.Equal(t, 8080, cfg.HTTP.Port)
	require.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)

	require.Equal(t, time.Second, cfg.Auth.Latency)
	require.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)
}

func TestProduction(t *testing.T) {
	t.Parallel()

	cfg := &AppConfig{Environment: "production"}
	require.True(t, cfg.Production())

	cfg.Environment = "staging"
	require.False(t, cfg.Production())
}

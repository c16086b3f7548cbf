package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "file:invoicing.db", cfg.DatabaseDSN)
	require.Equal(t, "development", cfg.Env)
	require.True(t, cfg.Seed)
	require.False(t, cfg.DBDebug)
	require.True(t, cfg.IsDevelopment())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost/invoicing")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_SEED", "false")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "postgres://u:p@localhost/invoicing", cfg.DatabaseDSN)
	require.Equal(t, "production", cfg.Env)
	require.False(t, cfg.Seed)
	require.False(t, cfg.IsDevelopment())
}

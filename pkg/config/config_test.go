package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8087", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "disable", cfg.DB.SSLMode)
	assert.Equal(t, time.Hour, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, "msclub", cfg.Metrics.Prefix)
	assert.Equal(t, 587, cfg.Mail.Port)
	assert.False(t, cfg.Storage.UseSSL)
}

func TestLoadOverridesFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_MAX_IDLE_CONNS", "5")
	t.Setenv("DB_CONN_MAX_LIFETIME", "30m")
	t.Setenv("STORAGE_USE_SSL", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.DB.MaxIdleConns)
	assert.Equal(t, 30*time.Minute, cfg.DB.ConnMaxLifetime)
	assert.True(t, cfg.Storage.UseSSL)
}

func TestInvalidValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")
	t.Setenv("DB_CONN_MAX_LIFETIME", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.DB.MaxOpenConns)
	assert.Equal(t, time.Hour, cfg.DB.ConnMaxLifetime)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     "5433",
		User:     "club",
		Password: "secret",
		Name:     "msclub",
		SSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.internal port=5433 user=club password=secret dbname=msclub sslmode=require",
		cfg.GetDSN())
}

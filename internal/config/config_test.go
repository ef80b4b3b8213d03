package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "listing-photos", cfg.MediaBucket)
	assert.Equal(t, 2*time.Second, cfg.SubmitDelay)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Zero(t, cfg.DraftTTL)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.StorageConfigured())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL_PROD", "postgres://prod")
	t.Setenv("SUBMIT_DELAY", "0s")
	t.Setenv("SESSION_TTL", "15m")
	t.Setenv("DRAFT_TTL", "24h")
	t.Setenv("SUPABASE_URL", "https://proj.supabase.co")
	t.Setenv("SUPABASE_SECRET_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "postgres://prod", cfg.DatabaseURL)
	assert.Zero(t, cfg.SubmitDelay)
	assert.Equal(t, 15*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 24*time.Hour, cfg.DraftTTL)
	assert.True(t, cfg.StorageConfigured())
}

func TestLoad_DatabaseURLWins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://main")
	t.Setenv("DATABASE_URL_DEV", "postgres://dev")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://main", cfg.DatabaseURL)
}

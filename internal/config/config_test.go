package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "GO_ENV", "DATABASE_URL", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
		"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_SSLMODE", "ACCESS_TOKEN_TTL", "SESSION_IDLE_TTL",
		"SESSION_SWEEP_INTERVAL", "MAX_IMAGE_MB", "WHATSAPP_NUMBER", "STORAGE_PROVIDER",
		"ADMIN_EMAIL", "ADMIN_PASSWORD",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("S3_BUCKET", "freshcart-images")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "919629323252", cfg.WhatsAppNumber)
	assert.Equal(t, 15*time.Minute, cfg.AccessTTL)
	assert.Equal(t, 24*time.Hour, cfg.SessionIdleTTL)
	assert.Equal(t, "s3", cfg.Storage.Provider)
	assert.Equal(t, int64(5<<20), cfg.Storage.MaxImageBytes)
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=freshcart sslmode=disable", cfg.DSN())
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("S3_BUCKET", "b")

	_, err := Load()
	assert.EqualError(t, err, "JWT_SECRET is required")
}

func TestLoad_WhatsAppNumberNormalized(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("WHATSAPP_NUMBER", "+91 98765-43210")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "919876543210", cfg.WhatsAppNumber)
}

func TestLoad_CloudinaryRequiresURL(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("STORAGE_PROVIDER", "cloudinary")
	t.Setenv("CLOUDINARY_URL", "")

	_, err := Load()
	assert.EqualError(t, err, "CLOUDINARY_URL is required")
}

func TestLoad_UnknownProvider(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("STORAGE_PROVIDER", "ftp")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidDuration(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("SESSION_IDLE_TTL", "tomorrow")

	_, err := Load()
	assert.ErrorContains(t, err, "SESSION_IDLE_TTL must be duration")
}

func TestLoad_AdminPair(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestDSN_DatabaseURLWins(t *testing.T) {
	cfg := Config{DatabaseURL: "postgres://u:p@db/x"}
	assert.Equal(t, "postgres://u:p@db/x", cfg.DSN())
}

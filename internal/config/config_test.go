package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("STORE_DRIVER", "Mongo")
	t.Setenv("GEMINI_API_KEY", "secret")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, StoreDriverMongo, cfg.StoreDriver)
	assert.Equal(t, "secret", cfg.Generation.APIKey)
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"GENERATION_BACKEND", "GENERATION_MODEL", "GENERATION_ENDPOINT", "MINIO_ENDPOINT", "CORS_ALLOW_ORIGINS", "UPLOAD_MAX_MB"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "relay", cfg.Generation.Backend)
	assert.Equal(t, "gemini-1.5-flash", cfg.Generation.Model)
	assert.Equal(t, "http://localhost:5000/generate", cfg.Generation.Endpoint)
	assert.Equal(t, "http://localhost:5173", cfg.CORSOrigins)
	assert.False(t, cfg.MinIO.Enabled())
	assert.Equal(t, 20*1024*1024, cfg.BodyLimit())
}

func TestLocation(t *testing.T) {
	cfg := &AppConfig{TimeZone: "Asia/Jakarta"}
	assert.Equal(t, "Asia/Jakarta", cfg.Location().String())

	cfg.TimeZone = "Not/AZone"
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	origPort := os.Getenv("PORT")
	defer os.Setenv("PORT", origPort)

	os.Setenv("PORT", "6001")
	os.Setenv("NEXUS_API_KEY", "test-key")
	os.Setenv("NEXUS_TIMEOUT_SEC", "20")
	os.Setenv("OPEN_BROWSER", "false")
	defer func() {
		os.Unsetenv("NEXUS_API_KEY")
		os.Unsetenv("NEXUS_TIMEOUT_SEC")
		os.Unsetenv("OPEN_BROWSER")
	}()

	cfg := Load()

	assert.Equal(t, "6001", cfg.Port)
	assert.Equal(t, "test-key", cfg.Nexus.APIKey)
	assert.Equal(t, 20, cfg.Nexus.TimeoutSec)
	assert.False(t, cfg.OpenBrowser)
	assert.Equal(t, "https://api.nexusmods.com/v1", cfg.Nexus.APIBase)
	assert.NotEmpty(t, cfg.StatePath)
	assert.NotEmpty(t, cfg.DownloadsDir)
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

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "testdata/does-not-exist.yml")

	cfg := MustLoad()
	require.NotNil(t, cfg)

	assert.Equal(t, "production", cfg.Env)
	assert.False(t, cfg.Debug)
	assert.Equal(t, ":8080", cfg.HTTPServer.Address)
	assert.Equal(t, 30*time.Second, cfg.HTTPServer.ReadTimeout)
	assert.Equal(t, "smartlinks", cfg.Database.DBName)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "mock", cfg.Suggest.Mode)
	assert.Equal(t, "gpt-4o-mini", cfg.Suggest.Model)
	assert.Equal(t, 10*time.Second, cfg.Suggest.Timeout)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestMustLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", "testdata/does-not-exist.yml")
	t.Setenv("ENV", "local")
	t.Setenv("DEBUG", "true")
	t.Setenv("HTTP_ADDRESS", ":9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("SUGGEST_MODE", "openai")
	t.Setenv("CORS_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg := MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.True(t, cfg.Debug)
	assert.Equal(t, ":9090", cfg.HTTPServer.Address)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "openai", cfg.Suggest.Mode)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
}

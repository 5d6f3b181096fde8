package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
api:
  port: "9090"
  environment: production
  allowed_cors_domains:
    - http://localhost:3000
backend:
  base_url: http://school.example/api
  timeout: 5s
  headers:
    x-app: portal
session:
  secret: s3cret
  secure: true
  max_age_days: 7
geo:
  cache_ttl: 1h
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	conf, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "9090", conf.API.Port)
	assert.Equal(t, "production", conf.API.Environment)
	assert.Equal(t, []string{"http://localhost:3000"}, conf.API.AllowedCORSDomains)
	assert.Equal(t, "debug", conf.Gin.Mode)
	assert.Equal(t, "http://school.example/api", conf.Backend.BaseURL)
	assert.Equal(t, 5*time.Second, conf.Backend.Timeout)
	assert.Equal(t, map[string]string{"x-app": "portal"}, conf.Backend.Headers)
	assert.True(t, conf.Session.Secure)
	assert.Equal(t, 7*24*time.Hour, conf.Session.MaxAge())
	assert.Equal(t, time.Hour, conf.Geo.CacheTTL)
	assert.Equal(t, 30*time.Second, conf.Inflight.TTL)
	assert.Empty(t, conf.Redis.Addr)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "http://override.example")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	conf, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "http://override.example", conf.Backend.BaseURL)
	assert.Equal(t, "localhost:6379", conf.Redis.Addr)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing backend",
			content: "session:\n  secret: s\n",
		},
		{
			name:    "missing secret",
			content: "backend:\n  base_url: http://x\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

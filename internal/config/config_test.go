package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFileOrEnv(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, DefaultOpenAIBaseURL, cfg.OpenAI.BaseURL)
	assert.Equal(t, DefaultOpenAIAPIKey, cfg.OpenAI.APIKey)
	assert.Equal(t, DefaultOpenAIModel, cfg.OpenAI.Model)
	assert.Equal(t, DefaultGroqModel, cfg.Groq.Model)
	assert.Equal(t, DefaultRateLimitCapacity, cfg.Server.RateLimitCapacity)
	assert.Equal(t, DefaultRateLimitRefill, cfg.Server.RateLimitRefill)
	// Credentials have no default: empty means the adapter is disabled.
	assert.Empty(t, cfg.Groq.APIKey)
	assert.Empty(t, cfg.Linkup.APIKey)
}

func TestLoad_YamlFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
  rateLimitCapacity: 50
  rateLimitRefill: 5
openai:
  baseURL: http://vision:8080/v1
  model: custom-vl
linkup:
  apiKey: lk-test
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 50, cfg.Server.RateLimitCapacity)
	assert.Equal(t, 5, cfg.Server.RateLimitRefill)
	assert.Equal(t, "http://vision:8080/v1", cfg.OpenAI.BaseURL)
	assert.Equal(t, "custom-vl", cfg.OpenAI.Model)
	assert.Equal(t, "lk-test", cfg.Linkup.APIKey)
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
openai:
  model: from-file
`), 0o600))

	t.Setenv("OPENAI_MODEL", "from-env")
	t.Setenv("OPENAI_BASE_URL", "http://env:1234/v1")
	t.Setenv("GROQ_API_KEY", "gsk-test")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("RATE_LIMIT_CAPACITY", "3")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.OpenAI.Model)
	assert.Equal(t, "http://env:1234/v1", cfg.OpenAI.BaseURL)
	assert.Equal(t, "gsk-test", cfg.Groq.APIKey)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, 3, cfg.Server.RateLimitCapacity)
}

func TestLoad_BadYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a mapping"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp runs the test from an empty directory so no config.yaml is found.
func chdirTemp(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("GROQ_API_KEY", "gsk-test")
	t.Setenv("FRONTEND_URL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.HTTPServer.Port)
	assert.Equal(t, "1.0", cfg.App.Version)
	assert.Equal(t, 150, cfg.Chat.MaxTokens)
	assert.InDelta(t, 0.7, cfg.Chat.Temperature, 0.0001)
	assert.Empty(t, cfg.CORS.AllowedOrigins)

	require.Len(t, cfg.LLM.Providers, 1)
	p := cfg.LLM.Providers[0]
	assert.Equal(t, "groq", p.Name)
	assert.Equal(t, "gsk-test", p.APIKey)
	assert.Equal(t, "llama-3.3-70b-versatile", p.Model)
	assert.Equal(t, 1, cfg.LLM.RetryAttempts)
}

func TestLoad_FrontendURL(t *testing.T) {
	chdirTemp(t)
	t.Setenv("FRONTEND_URL", "https://todo.example.com, http://localhost:3000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://todo.example.com", "http://localhost:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_ProvidersFromFile(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("MY_GROQ_KEY", "from-env")

	yaml := `
http_server:
  port: 9090
llm:
  providers:
    - name: groq
      enabled: true
      priority: 1
      api_key: ${MY_GROQ_KEY}
      model: llama-3.1-8b-instant
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTPServer.Port)
	require.Len(t, cfg.LLM.Providers, 1)
	assert.Equal(t, "from-env", cfg.LLM.Providers[0].APIKey)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.LLM.Providers[0].Model)
}

func TestValidateLLMConfig(t *testing.T) {
	err := validateLLMConfig(&LLMConfig{Providers: []ProviderConfig{
		{Name: "groq", Enabled: true, Priority: 1},
		{Name: "groq", Enabled: true, Priority: 1},
	}})
	assert.ErrorContains(t, err, "duplicate priority")

	err = validateLLMConfig(&LLMConfig{Providers: []ProviderConfig{{Enabled: true, Priority: 1}}})
	assert.ErrorContains(t, err, "name is required")

	err = validateLLMConfig(&LLMConfig{Providers: []ProviderConfig{{Name: "groq", Enabled: true}}})
	assert.ErrorContains(t, err, "priority must be positive")

	assert.NoError(t, validateLLMConfig(&LLMConfig{Providers: []ProviderConfig{{Name: "groq", Enabled: false}}}))
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a", "b"}, splitList(" a ,, b "))
}

package llmprovider

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-todo-backend/config"
)

func TestInitializeProviders(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		_, _, err := InitializeProviders(nil)
		assert.Error(t, err)
	})

	t.Run("no enabled providers", func(t *testing.T) {
		_, _, err := InitializeProviders(&config.LLMConfig{
			Providers: []config.ProviderConfig{{Name: "groq", Enabled: false, APIKey: "k"}},
		})
		assert.True(t, errors.Is(err, ErrNoProvidersConfigured))
	})

	t.Run("skips broken providers and sorts by priority", func(t *testing.T) {
		providers, warnings, err := InitializeProviders(&config.LLMConfig{
			Providers: []config.ProviderConfig{
				{Name: "groq", Enabled: true, Priority: 2, APIKey: "k2", Model: "second"},
				{Name: "groq", Enabled: true, Priority: 1, APIKey: "k1", Model: "first"},
				{Name: "mystery", Enabled: true, Priority: 3, APIKey: "k3"},
				{Name: "groq", Enabled: true, Priority: 4},
			},
		})
		require.NoError(t, err)
		require.Len(t, providers, 2)
		assert.Equal(t, "first", providers[0].Model())
		assert.Equal(t, "second", providers[1].Model())
		assert.Len(t, warnings, 2)
	})

	t.Run("all providers broken", func(t *testing.T) {
		_, warnings, err := InitializeProviders(&config.LLMConfig{
			Providers: []config.ProviderConfig{{Name: "groq", Enabled: true, Priority: 1}},
		})
		assert.True(t, errors.Is(err, ErrNoProvidersConfigured))
		assert.Len(t, warnings, 1)
	})
}

func TestNewManagerConfig(t *testing.T) {
	cfg := NewManagerConfig(config.LLMConfig{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      "250ms",
		MaxTotalTimeout: "not-a-duration",
	})
	assert.True(t, cfg.FallbackEnabled)
	assert.Equal(t, 2, cfg.RetryAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.RetryDelay)
	assert.Zero(t, cfg.MaxTotalTimeout)
}

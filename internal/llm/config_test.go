package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestConfig_Validate(t *testing.T) {
	base := DefaultConfig()
	with := func(f func(*Config)) Config {
		c := base
		f(&c)
		return c
	}
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", with(func(c *Config) {}), true},
		{"anthropic with key", with(func(c *Config) { c.Anthropic.APIKey = "sk" }), false},
		{"openai without key", with(func(c *Config) { c.Provider = ProviderOpenAI }), true},
		{"openrouter with key", with(func(c *Config) {
			c.Provider = ProviderOpenRouter
			c.OpenRouter.APIKey = "sk-or"
		}), false},
		{"mock", with(func(c *Config) { c.Provider = ProviderMock }), false},
		{"unknown", with(func(c *Config) { c.Provider = "llama" }), true},
		{"zero attempts", with(func(c *Config) {
			c.Anthropic.APIKey = "sk"
			c.Retry.MaxAttempts = 0
		}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			assert.Equal(t, tt.wantErr, err != nil, "err = %v", err)
		})
	}
}

func TestConfig_ApplyEnv(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ApplyEnv(envMap(map[string]string{
		"QUIZLADDER_LLM_PROVIDER":    "gemini",
		"QUIZLADDER_GEMINI_API_KEY":  "g-key",
		"QUIZLADDER_GEMINI_MODEL":    "gemini-pro",
		"QUIZLADDER_OPENAI_BASE_URL": "http://localhost:8080/v1",
	}))
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "g-key", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-pro", cfg.Gemini.Model)
	assert.Equal(t, "http://localhost:8080/v1", cfg.OpenAI.BaseURL)
	assert.Equal(t, "claude-haiku", cfg.Anthropic.Model)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Discover(t *testing.T) {
	t.Run("selected provider key", func(t *testing.T) {
		cfg := DefaultConfig()
		ok := cfg.Discover(envMap(map[string]string{"OPENAI_API_KEY": "o", "ANTHROPIC_API_KEY": "a"}))
		require.True(t, ok)
		assert.Equal(t, ProviderAnthropic, cfg.Provider)
		assert.Equal(t, "a", cfg.Anthropic.APIKey)
	})
	t.Run("falls back to first available", func(t *testing.T) {
		cfg := DefaultConfig()
		ok := cfg.Discover(envMap(map[string]string{"GEMINI_API_KEY": "g", "OPENROUTER_API_KEY": "r"}))
		require.True(t, ok)
		assert.Equal(t, ProviderGemini, cfg.Provider)
	})
	t.Run("configured key wins", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Anthropic.APIKey = "mine"
		require.True(t, cfg.Discover(envMap(map[string]string{"ANTHROPIC_API_KEY": "theirs"})))
		assert.Equal(t, "mine", cfg.Anthropic.APIKey)
	})
	t.Run("nothing found", func(t *testing.T) {
		cfg := DefaultConfig()
		assert.False(t, cfg.Discover(envMap(nil)))
	})
}

func TestConfig_YAML(t *testing.T) {
	src := `
provider: openrouter
openrouter:
  model: meta/llama-3
  api_key: ignored
retry:
  max_attempts: 5
  initial_wait: 250ms
timeout: 2m
`
	cfg := DefaultConfig()
	require.NoError(t, yaml.Unmarshal([]byte(src), &cfg))
	assert.Equal(t, ProviderOpenRouter, cfg.Provider)
	assert.Equal(t, "meta/llama-3", cfg.OpenRouter.Model)
	assert.Empty(t, cfg.OpenRouter.APIKey)
	assert.Equal(t, 5, cfg.Retry.MaxAttempts)
	assert.Equal(t, "250ms", cfg.Retry.InitialWait.String())
	assert.Equal(t, "2m0s", cfg.Timeout.String())
	assert.Equal(t, 2.0, cfg.Retry.Multiplier)
}

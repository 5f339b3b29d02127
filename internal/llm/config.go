package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config selects and configures the riddle-authoring provider. It is the
// "llm" section of the quizladder config file.
type Config struct {
	Provider string `yaml:"provider"`

	Anthropic  AnthropicConfig  `yaml:"anthropic"`
	OpenAI     OpenAIConfig     `yaml:"openai"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	OpenRouter OpenRouterConfig `yaml:"openrouter"`
	Retry      RetryConfig      `yaml:"retry"`

	// Timeout bounds one Generate call including retries.
	Timeout time.Duration `yaml:"timeout"`
}

// API keys are never read from the config file.

type AnthropicConfig struct {
	APIKey string `yaml:"-"`
	Model  string `yaml:"model"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"-"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

type GeminiConfig struct {
	APIKey  string `yaml:"-"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

type OpenRouterConfig struct {
	APIKey  string `yaml:"-"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts"`
	InitialWait time.Duration `yaml:"initial_wait"`
	MaxWait     time.Duration `yaml:"max_wait"`
	Multiplier  float64       `yaml:"multiplier"`
}

func DefaultConfig() Config {
	return Config{
		Provider:   ProviderAnthropic,
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 60 * time.Second,
	}
}

// envBinding maps an environment variable onto a Config field.
type envBinding struct {
	name string
	set  func(*Config, string)
}

var envBindings = []envBinding{
	{"QUIZLADDER_LLM_PROVIDER", func(c *Config, v string) { c.Provider = v }},
	{"QUIZLADDER_ANTHROPIC_API_KEY", func(c *Config, v string) { c.Anthropic.APIKey = v }},
	{"QUIZLADDER_ANTHROPIC_MODEL", func(c *Config, v string) { c.Anthropic.Model = v }},
	{"QUIZLADDER_OPENAI_API_KEY", func(c *Config, v string) { c.OpenAI.APIKey = v }},
	{"QUIZLADDER_OPENAI_MODEL", func(c *Config, v string) { c.OpenAI.Model = v }},
	{"QUIZLADDER_OPENAI_BASE_URL", func(c *Config, v string) { c.OpenAI.BaseURL = v }},
	{"QUIZLADDER_GEMINI_API_KEY", func(c *Config, v string) { c.Gemini.APIKey = v }},
	{"QUIZLADDER_GEMINI_MODEL", func(c *Config, v string) { c.Gemini.Model = v }},
	{"QUIZLADDER_OPENROUTER_API_KEY", func(c *Config, v string) { c.OpenRouter.APIKey = v }},
	{"QUIZLADDER_OPENROUTER_MODEL", func(c *Config, v string) { c.OpenRouter.Model = v }},
}

// ApplyEnv overrides c with the QUIZLADDER_* variables that are set.
// getenv is usually os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	for _, b := range envBindings {
		if v := getenv(b.name); v != "" {
			b.set(c, v)
		}
	}
}

// standardKeys are the vendors' own variables, checked in order when no
// QUIZLADDER_* key is configured.
var standardKeys = []struct {
	env      string
	provider string
	set      func(*Config, string)
}{
	{"ANTHROPIC_API_KEY", ProviderAnthropic, func(c *Config, v string) { c.Anthropic.APIKey = v }},
	{"OPENAI_API_KEY", ProviderOpenAI, func(c *Config, v string) { c.OpenAI.APIKey = v }},
	{"GEMINI_API_KEY", ProviderGemini, func(c *Config, v string) { c.Gemini.APIKey = v }},
	{"OPENROUTER_API_KEY", ProviderOpenRouter, func(c *Config, v string) { c.OpenRouter.APIKey = v }},
}

// Discover fills in a key from the standard vendor variables when the
// selected provider has none. If the selected provider's variable is unset
// it switches to the first provider whose variable is. It reports whether
// a usable key is now configured.
func (c *Config) Discover(getenv func(string) string) bool {
	if c.Validate() == nil {
		return true
	}
	for _, k := range standardKeys {
		if k.provider == c.Provider {
			if v := getenv(k.env); v != "" {
				k.set(c, v)
				return true
			}
		}
	}
	for _, k := range standardKeys {
		if v := getenv(k.env); v != "" {
			c.Provider = k.provider
			k.set(c, v)
			return true
		}
	}
	return false
}

// FromEnv returns the defaults overridden by the process environment.
func FromEnv() Config {
	cfg := DefaultConfig()
	cfg.ApplyEnv(os.Getenv)
	return cfg
}

// Validate checks that the selected provider has a key.
func (c Config) Validate() error {
	var key, env string
	switch c.Provider {
	case ProviderAnthropic:
		key, env = c.Anthropic.APIKey, "QUIZLADDER_ANTHROPIC_API_KEY"
	case ProviderOpenAI:
		key, env = c.OpenAI.APIKey, "QUIZLADDER_OPENAI_API_KEY"
	case ProviderGemini:
		key, env = c.Gemini.APIKey, "QUIZLADDER_GEMINI_API_KEY"
	case ProviderOpenRouter:
		key, env = c.OpenRouter.APIKey, "QUIZLADDER_OPENROUTER_API_KEY"
	case ProviderMock:
		return nil
	default:
		return fmt.Errorf("unknown LLM provider %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("%s is required for the %s provider", env, c.Provider)
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry.max_attempts must be at least 1, got %d", c.Retry.MaxAttempts)
	}
	return nil
}

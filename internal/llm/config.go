package llm

import (
	"context"
	"fmt"
	"os"
	"time"
)

// Config holds provider configuration, normally sourced from the
// settings table with environment variables as fallback.
type Config struct {
	// Provider selects the backend: "openrouter", "openai",
	// "anthropic", "gemini", or "mock".
	Provider string

	// APIKey authenticates against the provider.
	APIKey string

	// BaseURL overrides the endpoint for OpenAI-compatible APIs.
	BaseURL string

	// Model is the model identifier. Empty selects the provider default.
	Model string

	// Timeout bounds a single request. Default: 30s.
	Timeout time.Duration
}

// DefaultConfig returns the default provider configuration:
// OpenRouter with gpt-4o-mini.
func DefaultConfig() Config {
	return Config{
		Provider: "openrouter",
		Model:    "openai/gpt-4o-mini",
		Timeout:  30 * time.Second,
	}
}

// SettingsSource provides the stored configuration values. The store's
// settings repository satisfies it.
type SettingsSource interface {
	GetString(ctx context.Context, key, fallback string) (string, error)
	GetInt(ctx context.Context, key string, fallback int) (int, error)
}

// ConfigFromSettings builds a Config from the stored settings
// (api_provider, api_key, api_url, api_model, api_timeout), falling
// back to environment discovery when no key is stored.
func ConfigFromSettings(ctx context.Context, settings SettingsSource) (Config, error) {
	cfg := DefaultConfig()

	var err error
	if cfg.Provider, err = settings.GetString(ctx, "api_provider", cfg.Provider); err != nil {
		return Config{}, fmt.Errorf("read api_provider: %w", err)
	}
	if cfg.APIKey, err = settings.GetString(ctx, "api_key", ""); err != nil {
		return Config{}, fmt.Errorf("read api_key: %w", err)
	}
	if cfg.BaseURL, err = settings.GetString(ctx, "api_url", ""); err != nil {
		return Config{}, fmt.Errorf("read api_url: %w", err)
	}
	if cfg.Model, err = settings.GetString(ctx, "api_model", cfg.Model); err != nil {
		return Config{}, fmt.Errorf("read api_model: %w", err)
	}
	secs, err := settings.GetInt(ctx, "api_timeout", int(cfg.Timeout/time.Second))
	if err != nil {
		return Config{}, fmt.Errorf("read api_timeout: %w", err)
	}
	if secs > 0 {
		cfg.Timeout = time.Duration(secs) * time.Second
	}

	if cfg.APIKey == "" {
		if env, ok := DiscoverConfig(); ok {
			env.Timeout = cfg.Timeout
			return env, nil
		}
	}
	return cfg, nil
}

// DiscoverConfig probes standard API key env vars in priority order
// (OpenRouter → OpenAI → Anthropic → Gemini) and returns a Config for
// the first provider whose key is found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = "openrouter"
		cfg.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.APIKey = k
		cfg.Model = "gpt-4o-mini"
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.APIKey = k
		cfg.Model = "claude-haiku-4-5-20251001"
		return cfg, true
	}
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.APIKey = k
		cfg.Model = "gemini-2.0-flash"
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected provider has its API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "openrouter", "openai", "anthropic", "gemini":
		if c.APIKey == "" {
			return fmt.Errorf("api_key is required for the %s provider", c.Provider)
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown provider: %q", c.Provider)
	}
	return nil
}

// NewProvider creates a Provider from configuration, wrapped with the
// audit-logging decorator.
func NewProvider(ctx context.Context, cfg Config, sink AuditSink) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error
	switch cfg.Provider {
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg)
	case "openai":
		base, err = NewOpenAIProvider(cfg)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithAudit(base, cfg.Provider, sink), nil
}

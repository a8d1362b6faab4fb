package llm

import (
	"testing"
	"time"
)

func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"OPENROUTER_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "GEMINI_API_KEY"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != "openrouter" {
		t.Errorf("Provider = %q", cfg.Provider)
	}
	if cfg.Model != "openai/gpt-4o-mini" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %s", cfg.Timeout)
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	clearKeyEnv(t)

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no config without env keys")
	}

	t.Setenv("GEMINI_API_KEY", "g-key")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != "gemini" {
		t.Errorf("got %+v, want gemini", cfg)
	}

	// OpenRouter wins over every other key.
	t.Setenv("OPENROUTER_API_KEY", "or-key")
	cfg, ok = DiscoverConfig()
	if !ok || cfg.Provider != "openrouter" || cfg.APIKey != "or-key" {
		t.Errorf("got %+v, want openrouter", cfg)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("expected error without an API key")
	}

	cfg.APIKey = "sk-test"
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	cfg.Provider = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}

	mock := Config{Provider: "mock"}
	if err := mock.Validate(); err != nil {
		t.Errorf("mock provider must not need a key: %v", err)
	}
}

package llm

import (
	"context"
	"errors"
	"net/http"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func TestNewOpenAIProviderRequiresKey(t *testing.T) {
	if _, err := NewOpenAIProvider(Config{Provider: "openai"}); err == nil {
		t.Error("expected error without API key")
	}
}

func TestMapOpenAIError(t *testing.T) {
	rateLimited := &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests}
	var rl *ErrRateLimit
	if !errors.As(mapOpenAIError(rateLimited), &rl) {
		t.Error("429 should map to *ErrRateLimit")
	}

	serverErr := &openai.APIError{HTTPStatusCode: http.StatusBadGateway}
	var unavailable *ErrProviderUnavailable
	if !errors.As(mapOpenAIError(serverErr), &unavailable) {
		t.Error("502 should map to *ErrProviderUnavailable")
	}

	// Context cancellation passes through untouched.
	if got := mapOpenAIError(context.Canceled); !errors.Is(got, context.Canceled) {
		t.Errorf("context.Canceled mapped to %v", got)
	}
	if got := mapOpenAIError(context.DeadlineExceeded); !errors.Is(got, context.DeadlineExceeded) {
		t.Errorf("DeadlineExceeded mapped to %v", got)
	}
}

func TestMapOpenAIStopReason(t *testing.T) {
	if got := mapOpenAIStopReason(openai.FinishReasonLength); got != "max_tokens" {
		t.Errorf("length = %q, want max_tokens", got)
	}
	if got := mapOpenAIStopReason(openai.FinishReasonStop); got != "end" {
		t.Errorf("stop = %q, want end", got)
	}
}

func TestOpenRouterDefaults(t *testing.T) {
	p, err := NewOpenRouterProvider(Config{Provider: "openrouter", APIKey: "sk-or-test"})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	if p.ModelID() != "openai/gpt-4o-mini" {
		t.Errorf("default model = %q", p.ModelID())
	}
}

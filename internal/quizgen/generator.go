package quizgen

import (
	"context"
	"fmt"
	"time"

	"github.com/minhtc/opicly/internal/catalog"
	"github.com/minhtc/opicly/internal/llm"
)

// Generator produces fill-in-the-blank questions using an LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// Validate checks a request without performing any I/O.
func Validate(req Request) error {
	if req.Level == "" {
		return &ValidationError{Field: "level", Reason: "required"}
	}
	if req.Topic == "" {
		return &ValidationError{Field: "topic", Reason: "required"}
	}
	if !catalog.IsValid(req.Level) {
		return &ValidationError{Field: "level", Reason: fmt.Sprintf("unknown level %q", req.Level)}
	}
	if !catalog.HasTopic(req.Level, req.Topic) {
		return &ValidationError{Field: "topic", Reason: fmt.Sprintf("%q is not a %s topic", req.Topic, req.Level)}
	}
	if req.Count < 1 || req.Count > 20 {
		return &ValidationError{Field: "count", Reason: "must be between 1 and 20"}
	}
	return nil
}

// Generate runs the full pipeline: validate, build the prompt, make one
// provider call, and parse the response. A Result with at least one
// question is a success; per-item skips surface as warnings.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	level, ok := catalog.Get(req.Level)
	if !ok {
		return nil, &ValidationError{Field: "level", Reason: fmt.Sprintf("unknown level %q", req.Level)}
	}

	prompt := BuildPrompt(req, level)

	if g.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.config.Timeout)
		defer cancel()
	}
	ctx = llm.WithPurpose(ctx, "question-gen")

	start := time.Now()
	resp, err := g.provider.Generate(ctx, llm.Request{
		System:           systemPrompt,
		Prompt:           prompt,
		MaxTokens:        g.config.MaxTokens,
		Temperature:      g.config.Temperature,
		TopP:             g.config.TopP,
		FrequencyPenalty: g.config.FrequencyPenalty,
		PresencePenalty:  g.config.PresencePenalty,
	})
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}

	questions, warnings, err := parseQuestions(resp.Content, req, time.Now())
	if err != nil {
		return nil, err
	}

	return &Result{
		Questions:      questions,
		Warnings:       warnings,
		GenerationTime: time.Since(start),
		Usage:          resp.Usage,
		Model:          resp.Model,
	}, nil
}

// ConnectionStatus is the outcome of a connection test.
type ConnectionStatus struct {
	OK      bool
	Message string
	Model   string
}

const testPrompt = "Generate a simple test question: 'I _____ happy.' with correctAnswer 'am' and explanation 'Test question' and wrongAnswers ['is', 'are', 'was', 'were']"

// TestConnection verifies that the provider is reachable with the
// configured credentials. Failures are reported in the status, not as an
// error.
func (g *Generator) TestConnection(ctx context.Context) ConnectionStatus {
	if g.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.config.Timeout)
		defer cancel()
	}
	ctx = llm.WithPurpose(ctx, "connection-test")

	resp, err := g.provider.Generate(ctx, llm.Request{
		Prompt:    testPrompt,
		MaxTokens: 256,
	})
	if err != nil {
		return ConnectionStatus{
			OK:      false,
			Message: fmt.Sprintf("API test failed: %v", err),
			Model:   g.provider.ModelID(),
		}
	}

	return ConnectionStatus{
		OK:      true,
		Message: "API connection successful",
		Model:   resp.Model,
	}
}

package quizgen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/minhtc/opicly/internal/llm"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Request)
		field string
	}{
		{"empty level", func(r *Request) { r.Level = "" }, "level"},
		{"empty topic", func(r *Request) { r.Topic = "" }, "topic"},
		{"unknown level", func(r *Request) { r.Level = "ZZ" }, "level"},
		{"topic from another level", func(r *Request) { r.Topic = "Academic Research" }, "topic"},
		{"count too low", func(r *Request) { r.Count = 0 }, "count"},
		{"count too high", func(r *Request) { r.Count = 21 }, "count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := NewRequest("IM1", "Daily Routines")
			tt.edit(&req)

			err := Validate(req)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Field != tt.field {
				t.Errorf("Field = %q, want %q", verr.Field, tt.field)
			}
		})
	}

	if err := Validate(NewRequest("IM1", "Daily Routines")); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}
}

func TestGenerateEndToEnd(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: "[" + validItem + "," + validItem + "]",
		Usage:   llm.Usage{InputTokens: 1000, OutputTokens: 500, TotalTokens: 1500},
	})

	req := testRequest(2)
	gen := New(mock, DefaultConfig())

	result, err := gen.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(result.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(result.Questions))
	}
	if result.Usage.TotalTokens != 1500 {
		t.Errorf("Usage.TotalTokens = %d", result.Usage.TotalTokens)
	}
	if result.Model != "mock" {
		t.Errorf("Model = %q", result.Model)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("provider called %d times, want 1", mock.CallCount())
	}
	call := mock.Calls[0]
	if call.System != systemPrompt {
		t.Error("system prompt not passed through")
	}
	if !strings.Contains(call.Prompt, `"Daily Routines"`) {
		t.Error("topic missing from prompt")
	}
	if call.MaxTokens != 4000 || call.Temperature != 0.3 {
		t.Errorf("config not applied: max=%d temp=%.1f", call.MaxTokens, call.Temperature)
	}
}

func TestGenerateShortListSucceeds(t *testing.T) {
	// The provider returned fewer valid items than requested; the run
	// still succeeds with warnings.
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: `[` + validItem + `,
			{"sentence": "no blank", "correctAnswer": "x", "wrongAnswers": ["a","b","c","d"], "explanation": "x"}]`,
	})

	gen := New(mock, DefaultConfig())
	result, err := gen.Generate(context.Background(), testRequest(10))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(result.Questions) != 1 {
		t.Errorf("got %d questions, want 1", len(result.Questions))
	}
	if len(result.Warnings) != 1 {
		t.Errorf("got %d warnings, want 1", len(result.Warnings))
	}
}

func TestGenerateInvalidRequestSkipsProvider(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := New(mock, DefaultConfig())

	req := NewRequest("IM1", "Daily Routines")
	req.Count = 0
	if _, err := gen.Generate(context.Background(), req); err == nil {
		t.Fatal("expected validation error")
	}
	if mock.CallCount() != 0 {
		t.Error("provider must not be called for an invalid request")
	}
}

func TestGenerateProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrRateLimit{},
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testRequest(5))
	if err == nil {
		t.Fatal("expected provider error")
	}
	var rl *llm.ErrRateLimit
	if !errors.As(err, &rl) {
		t.Errorf("expected wrapped *ErrRateLimit, got %v", err)
	}
}

func TestTestConnection(t *testing.T) {
	ok := llm.NewMockProvider(llm.MockResponse{Content: "I am happy."})
	status := New(ok, DefaultConfig()).TestConnection(context.Background())
	if !status.OK {
		t.Errorf("expected success: %+v", status)
	}
	if status.Model != "mock" {
		t.Errorf("Model = %q", status.Model)
	}

	bad := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	status = New(bad, DefaultConfig()).TestConnection(context.Background())
	if status.OK {
		t.Error("expected failure status")
	}
	if !strings.Contains(status.Message, "API test failed") {
		t.Errorf("Message = %q", status.Message)
	}
}

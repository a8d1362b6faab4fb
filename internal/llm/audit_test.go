package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type recordingSink struct {
	records []AuditRecord
	err     error
}

func (s *recordingSink) Append(_ context.Context, rec AuditRecord) error {
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, rec)
	return nil
}

func TestAuditRecordsSuccess(t *testing.T) {
	sink := &recordingSink{}
	inner := NewMockProvider(MockResponse{
		Content: "[]",
		Usage:   Usage{InputTokens: 100, OutputTokens: 50},
	})
	p := WithAudit(inner, "openrouter", sink)

	ctx := WithPurpose(context.Background(), "question-gen")
	if _, err := p.Generate(ctx, Request{System: "sys", Prompt: "user prompt"}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(sink.records) != 1 {
		t.Fatalf("got %d records, want 1", len(sink.records))
	}
	rec := sink.records[0]
	if rec.RequestID == "" {
		t.Error("RequestID must be set")
	}
	if rec.Provider != "openrouter" || rec.Purpose != "question-gen" {
		t.Errorf("identity fields: %+v", rec)
	}
	if !rec.Success || rec.ErrorMessage != "" {
		t.Errorf("success fields: %+v", rec)
	}
	if rec.InputTokens != 100 || rec.OutputTokens != 50 {
		t.Errorf("tokens: %+v", rec)
	}
	if !strings.Contains(rec.RequestBody, "[system]\nsys") || !strings.Contains(rec.RequestBody, "user prompt") {
		t.Errorf("RequestBody = %q", rec.RequestBody)
	}
	if rec.ResponseBody != "[]" {
		t.Errorf("ResponseBody = %q", rec.ResponseBody)
	}
}

func TestAuditRecordsFailure(t *testing.T) {
	sink := &recordingSink{}
	inner := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})
	p := WithAudit(inner, "openrouter", sink)

	_, err := p.Generate(context.Background(), Request{Prompt: "x"})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected rate limit error, got %v", err)
	}

	if len(sink.records) != 1 {
		t.Fatalf("got %d records, want 1", len(sink.records))
	}
	rec := sink.records[0]
	if rec.Success {
		t.Error("failure must be recorded as Success=false")
	}
	if rec.ErrorMessage == "" {
		t.Error("ErrorMessage must carry the provider error")
	}
	if rec.Purpose != "unknown" {
		t.Errorf("Purpose = %q, want unknown without context label", rec.Purpose)
	}
}

func TestAuditSinkFailureDoesNotBreakRequest(t *testing.T) {
	sink := &recordingSink{err: errors.New("disk full")}
	inner := NewMockProvider(MockResponse{Content: "ok"})
	p := WithAudit(inner, "openrouter", sink)

	resp, err := p.Generate(context.Background(), Request{Prompt: "x"})
	if err != nil {
		t.Fatalf("sink failure must not fail the request: %v", err)
	}
	if resp.Content != "ok" {
		t.Errorf("Content = %q", resp.Content)
	}
}

func TestAuditModelID(t *testing.T) {
	p := WithAudit(NewMockProvider(), "openrouter", &recordingSink{})
	if p.ModelID() != "mock" {
		t.Errorf("ModelID = %q, want mock (delegated)", p.ModelID())
	}
}

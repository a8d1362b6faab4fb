package llm

import (
	"context"
	"errors"
	"testing"
)

func TestMockProviderFIFO(t *testing.T) {
	m := NewMockProvider(
		MockResponse{Content: "first"},
		MockResponse{Content: "second"},
	)
	ctx := context.Background()

	resp, err := m.Generate(ctx, Request{Prompt: "a"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp.Content != "first" {
		t.Errorf("Content = %q, want first", resp.Content)
	}

	resp, err = m.Generate(ctx, Request{Prompt: "b"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Content != "second" {
		t.Errorf("Content = %q, want second", resp.Content)
	}

	// Queue exhausted.
	_, err = m.Generate(ctx, Request{Prompt: "c"})
	var unavailable *ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Errorf("expected *ErrProviderUnavailable, got %v", err)
	}

	if m.CallCount() != 3 {
		t.Errorf("CallCount = %d, want 3", m.CallCount())
	}
	if m.Calls[1].Prompt != "b" {
		t.Errorf("Calls[1].Prompt = %q", m.Calls[1].Prompt)
	}
}

func TestMockProviderCannedError(t *testing.T) {
	want := &ErrRateLimit{}
	m := NewMockProvider(MockResponse{Err: want})

	_, err := m.Generate(context.Background(), Request{})
	if !errors.Is(err, want) {
		t.Errorf("got %v, want the canned error", err)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if got := PurposeFrom(ctx); got != "unknown" {
		t.Errorf("PurposeFrom(empty) = %q, want unknown", got)
	}

	ctx = WithPurpose(ctx, "question-gen")
	if got := PurposeFrom(ctx); got != "question-gen" {
		t.Errorf("PurposeFrom = %q", got)
	}
}

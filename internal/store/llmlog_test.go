package store

import (
	"context"
	"testing"
)

func TestLLMLogAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	records := []LLMRecord{
		{
			RequestID:    "req-1",
			Provider:     "openrouter",
			Model:        "openai/gpt-4o-mini",
			Purpose:      "question-gen",
			InputTokens:  1200,
			OutputTokens: 800,
			LatencyMs:    2400,
			Success:      true,
			RequestBody:  "[user]\nprompt",
			ResponseBody: "[]",
		},
		{
			RequestID:    "req-2",
			Provider:     "openrouter",
			Model:        "openai/gpt-4o-mini",
			Purpose:      "connection-test",
			LatencyMs:    900,
			Success:      false,
			ErrorMessage: "rate limited",
		},
	}
	for _, rec := range records {
		if err := s.LLMLog().Append(ctx, rec); err != nil {
			t.Fatalf("append %s: %v", rec.RequestID, err)
		}
	}

	got, err := s.LLMLog().Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}

	// Newest first.
	if got[0].RequestID != "req-2" {
		t.Errorf("first record = %s, want req-2", got[0].RequestID)
	}
	if got[0].Success || got[0].ErrorMessage != "rate limited" {
		t.Errorf("failure not preserved: %+v", got[0])
	}
	if got[1].InputTokens != 1200 || got[1].LatencyMs != 2400 {
		t.Errorf("token/latency fields lost: %+v", got[1])
	}
	if got[1].CreatedAt.IsZero() {
		t.Error("CreatedAt not stamped")
	}
}

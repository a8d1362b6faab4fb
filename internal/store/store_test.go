package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not checked here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSeedProgressSingleton(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p, err := s.Progress().Get(ctx)
	if err != nil {
		t.Fatalf("get progress: %v", err)
	}
	if p.CurrentLevel != "IM1" {
		t.Errorf("CurrentLevel = %q, want IM1", p.CurrentLevel)
	}
	if len(p.UnlockedLevels) != 1 || p.UnlockedLevels[0] != "IM1" {
		t.Errorf("UnlockedLevels = %v, want [IM1]", p.UnlockedLevels)
	}
	if p.TotalScore != 0 || p.TotalQuestions != 0 {
		t.Error("expected zero counters for a fresh database")
	}
}

func TestSeedDefaultSettings(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	provider, err := s.Settings().GetString(ctx, "api_provider", "")
	if err != nil {
		t.Fatalf("get api_provider: %v", err)
	}
	if provider != "openrouter" {
		t.Errorf("api_provider = %q, want openrouter", provider)
	}

	sound, err := s.Settings().GetBool(ctx, "sound_enabled", false)
	if err != nil {
		t.Fatalf("get sound_enabled: %v", err)
	}
	if !sound {
		t.Error("sound_enabled default should be true")
	}

	timeout, err := s.Settings().GetInt(ctx, "api_timeout", 0)
	if err != nil {
		t.Fatalf("get api_timeout: %v", err)
	}
	if timeout != 30 {
		t.Errorf("api_timeout = %d, want 30", timeout)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Re-running seed must not duplicate the singleton or settings.
	if err := s.seed(ctx); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	n, err := s.Client().UserProgress.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count progress rows: %v", err)
	}
	if n != 1 {
		t.Errorf("user progress rows = %d, want 1", n)
	}
}

func TestProgressUpdateRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p, err := s.Progress().Get(ctx)
	if err != nil {
		t.Fatalf("get progress: %v", err)
	}

	p.TotalScore = 250
	p.CurrentStreak = 4
	p.BestStreak = 7
	p.TotalQuestions = 30
	p.CorrectAnswers = 24
	p.UnlockedLevels = []string{"IM1", "IM2"}
	p.CurrentLevel = "IM2"

	if err := s.Progress().Update(ctx, p); err != nil {
		t.Fatalf("update progress: %v", err)
	}

	got, err := s.Progress().Get(ctx)
	if err != nil {
		t.Fatalf("reload progress: %v", err)
	}
	if got.CurrentLevel != "IM2" || got.TotalScore != 250 || got.BestStreak != 7 {
		t.Errorf("unexpected progress after update: %+v", got)
	}
	if got.LastPlayed == nil {
		t.Error("Update should stamp LastPlayed")
	}
	if got.Accuracy() != 80 {
		t.Errorf("Accuracy() = %.1f, want 80.0", got.Accuracy())
	}
}

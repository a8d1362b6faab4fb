package store

import (
	"context"
	"testing"
)

func TestSettingsSetGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Settings()

	if err := repo.Set(ctx, "api_model", "anthropic/claude-sonnet"); err != nil {
		t.Fatalf("set string: %v", err)
	}
	got, err := repo.GetString(ctx, "api_model", "")
	if err != nil {
		t.Fatalf("get string: %v", err)
	}
	if got != "anthropic/claude-sonnet" {
		t.Errorf("api_model = %q", got)
	}

	if err := repo.Set(ctx, "sound_enabled", false); err != nil {
		t.Fatalf("set bool: %v", err)
	}
	b, err := repo.GetBool(ctx, "sound_enabled", true)
	if err != nil {
		t.Fatalf("get bool: %v", err)
	}
	if b {
		t.Error("sound_enabled should be false after Set")
	}

	if err := repo.Set(ctx, "api_timeout", 60); err != nil {
		t.Fatalf("set int: %v", err)
	}
	n, err := repo.GetInt(ctx, "api_timeout", 0)
	if err != nil {
		t.Fatalf("get int: %v", err)
	}
	if n != 60 {
		t.Errorf("api_timeout = %d, want 60", n)
	}

	if err := repo.Set(ctx, "temperature", 0.7); err != nil {
		t.Fatalf("set float: %v", err)
	}
	f, err := repo.GetFloat(ctx, "temperature", 0)
	if err != nil {
		t.Fatalf("get float: %v", err)
	}
	if f != 0.7 {
		t.Errorf("temperature = %v, want 0.7", f)
	}
}

func TestSettingsMissingKeyFallsBack(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Settings()

	if _, ok, err := repo.Get(ctx, "no_such_key"); err != nil || ok {
		t.Errorf("Get(no_such_key) = ok=%v err=%v, want miss", ok, err)
	}

	got, err := repo.GetString(ctx, "no_such_key", "fallback")
	if err != nil {
		t.Fatal(err)
	}
	if got != "fallback" {
		t.Errorf("got %q, want fallback", got)
	}

	n, err := repo.GetInt(ctx, "no_such_key", 42)
	if err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Errorf("got %d, want 42", n)
	}
}

func TestSettingsRawStringDecoding(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Seeded defaults are stored as raw strings, not JSON.
	b, err := s.Settings().GetBool(ctx, "auto_advance", true)
	if err != nil {
		t.Fatal(err)
	}
	if b {
		t.Error("auto_advance default should decode as false")
	}

	lang, err := s.Settings().GetString(ctx, "language", "")
	if err != nil {
		t.Fatal(err)
	}
	if lang != "vi" {
		t.Errorf("language = %q, want vi", lang)
	}
}

func TestSettingsAll(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	all, err := s.Settings().All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	for _, key := range []string{"api_provider", "api_model", "api_timeout", "theme", "language"} {
		if _, ok := all[key]; !ok {
			t.Errorf("missing seeded key %q", key)
		}
	}
}

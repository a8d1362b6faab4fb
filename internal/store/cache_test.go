package store

import (
	"context"
	"testing"
	"time"

	"github.com/minhtc/opicly/internal/quizgen"
)

func sampleQuestions() []quizgen.Question {
	return []quizgen.Question{
		{
			Sentence:      "Every morning I _____ a cup of coffee before work.",
			CorrectAnswer: "drink",
			WrongAnswers:  []string{"drinks", "drank", "drinking", "drunk"},
			Explanation:   "Thì hiện tại đơn với chủ ngữ 'I'.",
			Level:         "IM1",
			Topic:         "Daily Routines",
			GeneratedAt:   "2026-08-29T10:00:00Z",
		},
		{
			Sentence:      "She usually _____ the bus to school.",
			CorrectAnswer: "takes",
			WrongAnswers:  []string{"take", "took", "taking", "taken"},
			Explanation:   "Động từ thêm 's' với ngôi thứ ba số ít.",
			Level:         "IM1",
			Topic:         "Daily Routines",
			GeneratedAt:   "2026-08-29T10:00:00Z",
		},
	}
}

func TestCachePutGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	want := sampleQuestions()
	if err := s.Cache().Put(ctx, "IM1", "Daily Routines", want, time.Hour); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := s.Cache().Get(ctx, "IM1", "Daily Routines")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}
	if len(got) != len(want) {
		t.Fatalf("got %d questions, want %d", len(got), len(want))
	}
	if got[0].Sentence != want[0].Sentence || got[0].CorrectAnswer != want[0].CorrectAnswer {
		t.Errorf("round trip mismatch: %+v", got[0])
	}
	if len(got[0].WrongAnswers) != 4 {
		t.Errorf("wrong answers lost: %v", got[0].WrongAnswers)
	}
}

func TestCacheMiss(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.Cache().Get(context.Background(), "IM1", "Hobbies")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Error("expected miss for empty cache")
	}
}

func TestCachePutReplacesExisting(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := sampleQuestions()[:1]
	if err := s.Cache().Put(ctx, "IM1", "Daily Routines", first, time.Hour); err != nil {
		t.Fatal(err)
	}
	second := sampleQuestions()
	if err := s.Cache().Put(ctx, "IM1", "Daily Routines", second, time.Hour); err != nil {
		t.Fatal(err)
	}

	got, ok, err := s.Cache().Get(ctx, "IM1", "Daily Routines")
	if err != nil || !ok {
		t.Fatalf("get: %v, ok=%v", err, ok)
	}
	if len(got) != 2 {
		t.Errorf("got %d questions, want the replacement's 2", len(got))
	}
}

func TestCacheExpiryDeletesOnRead(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Cache().Put(ctx, "IM1", "Weather", sampleQuestions(), -time.Minute); err != nil {
		t.Fatal(err)
	}

	_, ok, err := s.Cache().Get(ctx, "IM1", "Weather")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Error("expired entry must read as a miss")
	}

	// The expired row is removed by the read.
	exists, err := s.Cache().Exists(ctx, "IM1", "Weather")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if exists {
		t.Error("expired row should be deleted after read")
	}
}

func TestCacheClearExpired(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Cache().Put(ctx, "IM1", "Weather", sampleQuestions(), -time.Minute); err != nil {
		t.Fatal(err)
	}
	if err := s.Cache().Put(ctx, "IM1", "Hobbies", sampleQuestions(), time.Hour); err != nil {
		t.Fatal(err)
	}

	n, err := s.Cache().ClearExpired(ctx)
	if err != nil {
		t.Fatalf("clear expired: %v", err)
	}
	if n != 1 {
		t.Errorf("cleared %d rows, want 1", n)
	}

	if _, ok, _ := s.Cache().Get(ctx, "IM1", "Hobbies"); !ok {
		t.Error("live entry must survive the sweep")
	}
}

func TestCacheClear(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Cache().Put(ctx, "IM1", "Weather", sampleQuestions(), time.Hour); err != nil {
		t.Fatal(err)
	}
	if err := s.Cache().Put(ctx, "IM1", "Hobbies", sampleQuestions(), time.Hour); err != nil {
		t.Fatal(err)
	}

	n, err := s.Cache().Clear(ctx)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if n != 2 {
		t.Errorf("cleared %d rows, want 2", n)
	}
}

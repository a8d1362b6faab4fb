package store

import (
	"context"
	"testing"

	"github.com/minhtc/opicly/internal/catalog"
)

func TestTopicGetMissing(t *testing.T) {
	s := openTestStore(t)

	tp, err := s.Topics().Get(context.Background(), "IM1", "Daily Routines")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if tp.Level != "IM1" || tp.Topic != "Daily Routines" {
		t.Errorf("identity not set: %+v", tp)
	}
	if tp.Attempts != 0 || tp.BestScore != 0 || tp.IsCompleted {
		t.Errorf("expected zero defaults, got %+v", tp)
	}
}

func TestTopicMergeCreatesRow(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	tp, err := s.Topics().Merge(ctx, "IM1", "Hobbies", 70, 10, 7)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if tp.BestScore != 70 || tp.Attempts != 1 {
		t.Errorf("first merge: %+v", tp)
	}
	if tp.IsCompleted {
		t.Errorf("score 70 should not complete (threshold %d)", catalog.PassingScore)
	}
	if tp.LastAttempt == nil {
		t.Error("LastAttempt not stamped")
	}
}

func TestTopicMergeBestScoreNeverDecreases(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.Topics().Merge(ctx, "IM1", "Hobbies", 90, 10, 9); err != nil {
		t.Fatalf("first merge: %v", err)
	}

	tp, err := s.Topics().Merge(ctx, "IM1", "Hobbies", 60, 10, 6)
	if err != nil {
		t.Fatalf("second merge: %v", err)
	}

	if tp.BestScore != 90 {
		t.Errorf("BestScore = %d, want 90", tp.BestScore)
	}
	if tp.Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", tp.Attempts)
	}
	if tp.TotalQuestions != 20 || tp.CorrectAnswers != 15 {
		t.Errorf("counters: %d/%d, want 15/20", tp.CorrectAnswers, tp.TotalQuestions)
	}
	// Completed at 90 once, a later 60 must not undo it.
	if !tp.IsCompleted {
		t.Error("completion flag must not regress")
	}
}

func TestTopicMergeCompletesAtThreshold(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	tp, err := s.Topics().Merge(ctx, "IM2", "Travel & Vacations", catalog.PassingScore, 10, 8)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if !tp.IsCompleted {
		t.Errorf("score %d should complete the topic", catalog.PassingScore)
	}
}

func TestAllForLevel(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.Topics().Merge(ctx, "IM1", "Hobbies", 85, 10, 8); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Topics().Merge(ctx, "IM1", "Daily Routines", 50, 10, 5); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Topics().Merge(ctx, "IM2", "Travel & Vacations", 85, 10, 8); err != nil {
		t.Fatal(err)
	}

	byTopic, err := s.Topics().AllForLevel(ctx, "IM1")
	if err != nil {
		t.Fatalf("all for level: %v", err)
	}
	if len(byTopic) != 2 {
		t.Fatalf("got %d rows for IM1, want 2", len(byTopic))
	}
	if !byTopic["Hobbies"].IsCompleted {
		t.Error("Hobbies should be completed")
	}
	if byTopic["Daily Routines"].IsCompleted {
		t.Error("Daily Routines should not be completed")
	}
}

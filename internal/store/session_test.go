package store

import (
	"context"
	"testing"
)

func saveSession(t *testing.T, s *Store, level, topic string, score, total int) {
	t.Helper()
	err := s.Sessions().Save(context.Background(), SessionData{
		Level:          level,
		Topic:          topic,
		Score:          score,
		TotalQuestions: total,
		Accuracy:       float64(score),
		DurationSecs:   120,
		Streak:         3,
		Questions:      sampleQuestions(),
		Answers: []Answer{
			{Sentence: "Every morning I _____ a cup of coffee before work.", Selected: "drink", Correct: true},
			{Sentence: "She usually _____ the bus to school.", Selected: "take", Correct: false},
		},
	})
	if err != nil {
		t.Fatalf("save session: %v", err)
	}
}

func TestSessionSaveAndRecent(t *testing.T) {
	s := openTestStore(t)

	saveSession(t, s, "IM1", "Hobbies", 70, 10)
	saveSession(t, s, "IM1", "Weather", 90, 10)

	recent, err := s.Sessions().Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d sessions, want 2", len(recent))
	}
	for _, sess := range recent {
		if sess.CompletedAt.IsZero() {
			t.Error("CompletedAt not stamped")
		}
	}
	if recent[0].CompletedAt.Before(recent[1].CompletedAt) {
		t.Error("Recent should return newest first")
	}
}

func TestSessionStatistics(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	saveSession(t, s, "IM1", "Hobbies", 60, 10)
	saveSession(t, s, "IM1", "Hobbies", 80, 10)
	saveSession(t, s, "IM2", "Travel & Vacations", 100, 10)

	all, err := s.Sessions().Statistics(ctx, "", "")
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if all.TotalSessions != 3 {
		t.Errorf("TotalSessions = %d, want 3", all.TotalSessions)
	}
	if all.BestScore != 100 {
		t.Errorf("BestScore = %d, want 100", all.BestScore)
	}
	if all.AvgScore != 80 {
		t.Errorf("AvgScore = %.1f, want 80", all.AvgScore)
	}

	im1, err := s.Sessions().Statistics(ctx, "IM1", "")
	if err != nil {
		t.Fatalf("statistics IM1: %v", err)
	}
	if im1.TotalSessions != 2 || im1.BestScore != 80 {
		t.Errorf("IM1 stats: %+v", im1)
	}

	topic, err := s.Sessions().Statistics(ctx, "IM1", "Hobbies")
	if err != nil {
		t.Fatalf("statistics topic: %v", err)
	}
	if topic.TotalSessions != 2 {
		t.Errorf("topic TotalSessions = %d, want 2", topic.TotalSessions)
	}
}

func TestSessionStatisticsEmpty(t *testing.T) {
	s := openTestStore(t)

	stats, err := s.Sessions().Statistics(context.Background(), "", "")
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if stats.TotalSessions != 0 || stats.BestScore != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

func TestDeleteOlderThan(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	saveSession(t, s, "IM1", "Hobbies", 70, 10)

	// Fresh sessions survive any reasonable cutoff.
	n, err := s.Sessions().DeleteOlderThan(ctx, 30)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 0 {
		t.Errorf("deleted %d fresh sessions", n)
	}

	// A negative cutoff lands in the future and removes everything.
	n, err = s.Sessions().DeleteOlderThan(ctx, -1)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted %d, want 1", n)
	}
}

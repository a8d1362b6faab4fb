package progress

import (
	"context"
	"testing"
	"time"

	"github.com/minhtc/opicly/internal/catalog"
	"github.com/minhtc/opicly/internal/quizgen"
	"github.com/minhtc/opicly/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return NewService(s.Progress(), s.Topics(), s.Sessions()), s
}

func sessionInput(level, topic string, results []bool) SessionInput {
	questions := make([]quizgen.Question, len(results))
	answers := make([]store.Answer, len(results))
	for i, correct := range results {
		questions[i] = quizgen.Question{
			Sentence:      "I _____ ready.",
			CorrectAnswer: "am",
			WrongAnswers:  []string{"is", "are", "was", "were"},
			Explanation:   "Động từ to be.",
			Level:         level,
			Topic:         topic,
		}
		selected := "am"
		if !correct {
			selected = "is"
		}
		answers[i] = store.Answer{Sentence: questions[i].Sentence, Selected: selected, Correct: correct}
	}
	return SessionInput{
		Level:     level,
		Topic:     topic,
		Questions: questions,
		Answers:   answers,
		Duration:  90 * time.Second,
	}
}

func TestCompleteDerivesScoreAndStreak(t *testing.T) {
	svc, _ := newTestService(t)

	// 7 of 10 correct, longest run of 4.
	results := []bool{true, true, false, true, true, true, true, false, false, true}
	out, err := svc.Complete(context.Background(), sessionInput("IM1", "Hobbies", results))
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	if out.Session.Score != 70 {
		t.Errorf("Score = %d, want 70", out.Session.Score)
	}
	if out.Session.Accuracy != 70 {
		t.Errorf("Accuracy = %.1f, want 70", out.Session.Accuracy)
	}
	if out.Session.Streak != 4 {
		t.Errorf("Streak = %d, want 4", out.Session.Streak)
	}
	if out.Passed {
		t.Error("70 must not pass the threshold")
	}
	if out.Topic.Attempts != 1 || out.Topic.IsCompleted {
		t.Errorf("topic state: %+v", out.Topic)
	}
	if out.User.TotalScore != 70 || out.User.TotalQuestions != 10 || out.User.CorrectAnswers != 7 {
		t.Errorf("user totals: %+v", out.User)
	}
	if out.User.BestStreak != 4 || out.User.CurrentStreak != 4 {
		t.Errorf("user streaks: %+v", out.User)
	}
	if out.UnlockedLevel != "" {
		t.Errorf("nothing should unlock, got %q", out.UnlockedLevel)
	}
}

func TestCompleteAccumulatesAcrossSessions(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	perfect := []bool{true, true, true, true, true}
	if _, err := svc.Complete(ctx, sessionInput("IM1", "Hobbies", perfect)); err != nil {
		t.Fatal(err)
	}

	poor := []bool{false, true, false, false, true}
	out, err := svc.Complete(ctx, sessionInput("IM1", "Hobbies", poor))
	if err != nil {
		t.Fatal(err)
	}

	if out.User.TotalQuestions != 10 || out.User.CorrectAnswers != 7 {
		t.Errorf("user totals: %+v", out.User)
	}
	// Current streak reflects the latest session, best streak is sticky.
	if out.User.CurrentStreak != 1 || out.User.BestStreak != 5 {
		t.Errorf("streaks: current=%d best=%d", out.User.CurrentStreak, out.User.BestStreak)
	}
	// Best topic score survives the poor session.
	if out.Topic.BestScore != 100 || !out.Topic.IsCompleted {
		t.Errorf("topic: %+v", out.Topic)
	}
}

func TestCompleteUnlocksNextLevel(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	perfect := []bool{true, true, true, true, true}
	topics := catalog.Topics("IM1")

	for i, topic := range topics {
		out, err := svc.Complete(ctx, sessionInput("IM1", topic, perfect))
		if err != nil {
			t.Fatalf("complete %s: %v", topic, err)
		}

		last := i == len(topics)-1
		if !last && out.UnlockedLevel != "" {
			t.Fatalf("unlocked %q before finishing all topics", out.UnlockedLevel)
		}
		if last {
			if out.UnlockedLevel != "IM2" {
				t.Fatalf("UnlockedLevel = %q, want IM2", out.UnlockedLevel)
			}
			if out.User.CurrentLevel != "IM2" {
				t.Errorf("CurrentLevel = %q, want IM2", out.User.CurrentLevel)
			}
			if len(out.User.UnlockedLevels) != 2 || out.User.UnlockedLevels[1] != "IM2" {
				t.Errorf("UnlockedLevels = %v", out.User.UnlockedLevels)
			}
		}
	}
}

func TestCompleteRejectsBadInput(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Complete(ctx, sessionInput("IM1", "Not A Topic", []bool{true})); err == nil {
		t.Error("expected error for unknown topic")
	}

	in := sessionInput("IM1", "Hobbies", []bool{true})
	in.Questions = nil
	if _, err := svc.Complete(ctx, in); err == nil {
		t.Error("expected error for empty question list")
	}
}

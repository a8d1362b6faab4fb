package progress

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/minhtc/opicly/internal/catalog"
	"github.com/minhtc/opicly/internal/quizgen"
	"github.com/minhtc/opicly/internal/store"
)

// SessionInput is one finished quiz run, before any derived values are
// computed.
type SessionInput struct {
	Level     string
	Topic     string
	Questions []quizgen.Question
	Answers   []store.Answer
	Duration  time.Duration
}

// Outcome describes the effects of completing a session.
type Outcome struct {
	Session store.SessionData
	Topic   store.TopicProgress
	User    store.UserProgress

	// Passed reports whether the session score met the passing
	// threshold.
	Passed bool

	// UnlockedLevel is the newly unlocked level code, or empty when
	// this session unlocked nothing.
	UnlockedLevel string
}

// Service applies completed sessions to the persistent progress state.
type Service struct {
	user     store.ProgressRepo
	topics   store.TopicRepo
	sessions store.SessionRepo
}

// NewService creates a Service over the given repositories.
func NewService(user store.ProgressRepo, topics store.TopicRepo, sessions store.SessionRepo) *Service {
	return &Service{user: user, topics: topics, sessions: sessions}
}

// Complete records a finished session: it appends the session to the log,
// merges the topic progress, updates the overall user progress, and
// unlocks the next level when every topic of the current level has been
// completed. Unlocked levels never lock again.
func (s *Service) Complete(ctx context.Context, in SessionInput) (*Outcome, error) {
	if !catalog.HasTopic(in.Level, in.Topic) {
		return nil, fmt.Errorf("unknown level/topic: %s/%s", in.Level, in.Topic)
	}
	total := len(in.Questions)
	if total == 0 {
		return nil, fmt.Errorf("session has no questions")
	}
	if len(in.Answers) > total {
		return nil, fmt.Errorf("more answers than questions")
	}

	correct := 0
	for _, a := range in.Answers {
		if a.Correct {
			correct++
		}
	}
	accuracy := float64(correct) / float64(total) * 100
	score := int(math.Round(accuracy))
	streak := longestRun(in.Answers)

	session := store.SessionData{
		Level:          in.Level,
		Topic:          in.Topic,
		Score:          score,
		TotalQuestions: total,
		Accuracy:       accuracy,
		DurationSecs:   int(in.Duration.Seconds()),
		Streak:         streak,
		Questions:      in.Questions,
		Answers:        in.Answers,
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	topic, err := s.topics.Merge(ctx, in.Level, in.Topic, score, total, correct)
	if err != nil {
		return nil, fmt.Errorf("merge topic progress: %w", err)
	}

	user, err := s.user.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load user progress: %w", err)
	}

	user.TotalScore += score
	user.TotalQuestions += total
	user.CorrectAnswers += correct
	user.CurrentStreak = streak
	if streak > user.BestStreak {
		user.BestStreak = streak
	}

	unlocked := ""
	if topic.IsCompleted && in.Level == user.CurrentLevel {
		done, err := s.levelCompleted(ctx, in.Level)
		if err != nil {
			return nil, err
		}
		if done {
			if next, ok := catalog.Next(in.Level); ok && !contains(user.UnlockedLevels, next) {
				user.UnlockedLevels = append(user.UnlockedLevels, next)
				user.CurrentLevel = next
				unlocked = next
			}
		}
	}

	if err := s.user.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user progress: %w", err)
	}

	return &Outcome{
		Session:       session,
		Topic:         topic,
		User:          user,
		Passed:        score >= catalog.PassingScore,
		UnlockedLevel: unlocked,
	}, nil
}

// levelCompleted reports whether every topic of the level has been
// completed at least once.
func (s *Service) levelCompleted(ctx context.Context, level string) (bool, error) {
	byTopic, err := s.topics.AllForLevel(ctx, level)
	if err != nil {
		return false, fmt.Errorf("load topic progress: %w", err)
	}
	for _, topic := range catalog.Topics(level) {
		tp, ok := byTopic[topic]
		if !ok || !tp.IsCompleted {
			return false, nil
		}
	}
	return true, nil
}

// longestRun returns the longest streak of consecutive correct answers.
func longestRun(answers []store.Answer) int {
	best, run := 0, 0
	for _, a := range answers {
		if a.Correct {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return best
}

func contains(items []string, want string) bool {
	for _, it := range items {
		if it == want {
			return true
		}
	}
	return false
}

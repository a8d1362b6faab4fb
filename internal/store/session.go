package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/minhtc/opicly/ent"
	"github.com/minhtc/opicly/ent/gamesession"
	"github.com/minhtc/opicly/internal/quizgen"
)

// Answer records one learner response within a session.
type Answer struct {
	Sentence string `json:"sentence"`
	Selected string `json:"selected"`
	Correct  bool   `json:"correct"`
}

// SessionData is one completed session, ready to append to the log.
type SessionData struct {
	Level          string
	Topic          string
	Score          int
	TotalQuestions int
	Accuracy       float64
	DurationSecs   int
	Streak         int
	Questions      []quizgen.Question
	Answers        []Answer
}

// Session is a stored session row.
type Session struct {
	ID             int
	Level          string
	Topic          string
	Score          int
	TotalQuestions int
	Accuracy       float64
	DurationSecs   int
	Streak         int
	CompletedAt    time.Time
}

// SessionStats aggregates over stored sessions.
type SessionStats struct {
	TotalSessions int
	AvgAccuracy   float64
	AvgScore      float64
	BestScore     int
	AvgDuration   float64
	BestStreak    int
}

// SessionRepo manages the append-only session log.
type SessionRepo interface {
	// Save appends one completed session. Rows are never updated.
	Save(ctx context.Context, data SessionData) error

	// Recent returns the limit most recent sessions, newest first.
	Recent(ctx context.Context, limit int) ([]Session, error)

	// Statistics aggregates sessions, optionally filtered by level
	// and/or topic (either filter alone is valid; empty means all).
	Statistics(ctx context.Context, level, topic string) (SessionStats, error)

	// DeleteOlderThan removes sessions completed more than the given
	// number of days ago and returns the count deleted.
	DeleteOlderThan(ctx context.Context, days int) (int, error)
}

type sessionRepo struct {
	client *ent.Client
	db     *sql.DB
}

func (r *sessionRepo) Save(ctx context.Context, data SessionData) error {
	questions, err := json.Marshal(data.Questions)
	if err != nil {
		return fmt.Errorf("marshal session questions: %w", err)
	}
	answers, err := json.Marshal(data.Answers)
	if err != nil {
		return fmt.Errorf("marshal session answers: %w", err)
	}

	_, err = r.client.GameSession.Create().
		SetLevel(data.Level).
		SetTopic(data.Topic).
		SetScore(data.Score).
		SetTotalQuestions(data.TotalQuestions).
		SetAccuracy(data.Accuracy).
		SetDurationSecs(data.DurationSecs).
		SetStreak(data.Streak).
		SetQuestionsData(string(questions)).
		SetAnswersData(string(answers)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save game session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Recent(ctx context.Context, limit int) ([]Session, error) {
	rows, err := r.client.GameSession.Query().
		Order(ent.Desc(gamesession.FieldCompletedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}
	out := make([]Session, 0, len(rows))
	for _, row := range rows {
		out = append(out, Session{
			ID:             row.ID,
			Level:          row.Level,
			Topic:          row.Topic,
			Score:          row.Score,
			TotalQuestions: row.TotalQuestions,
			Accuracy:       row.Accuracy,
			DurationSecs:   row.DurationSecs,
			Streak:         row.Streak,
			CompletedAt:    row.CompletedAt,
		})
	}
	return out, nil
}

func (r *sessionRepo) Statistics(ctx context.Context, level, topic string) (SessionStats, error) {
	query := `SELECT COUNT(*),
		COALESCE(AVG(accuracy), 0),
		COALESCE(AVG(score), 0),
		COALESCE(MAX(score), 0),
		COALESCE(AVG(duration_secs), 0),
		COALESCE(MAX(streak), 0)
	FROM game_sessions`

	var conds []string
	var args []any
	if level != "" {
		conds = append(conds, "level = ?")
		args = append(args, level)
	}
	if topic != "" {
		conds = append(conds, "topic = ?")
		args = append(args, topic)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	var stats SessionStats
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&stats.TotalSessions,
		&stats.AvgAccuracy,
		&stats.AvgScore,
		&stats.BestScore,
		&stats.AvgDuration,
		&stats.BestStreak,
	)
	if err != nil {
		return SessionStats{}, fmt.Errorf("query session statistics: %w", err)
	}
	return stats, nil
}

func (r *sessionRepo) DeleteOlderThan(ctx context.Context, days int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	n, err := r.client.GameSession.Delete().
		Where(gamesession.CompletedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete old sessions: %w", err)
	}
	return n, nil
}

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/minhtc/opicly/ent"
	"github.com/minhtc/opicly/ent/topicprogress"
	"github.com/minhtc/opicly/internal/catalog"
)

// TopicProgress is the repository view of one (level, topic) row.
type TopicProgress struct {
	Level          string
	Topic          string
	BestScore      int
	Attempts       int
	TotalQuestions int
	CorrectAnswers int
	LastAttempt    *time.Time
	IsCompleted    bool
}

// Accuracy returns the cumulative answer accuracy as a percentage.
func (p TopicProgress) Accuracy() float64 {
	if p.TotalQuestions == 0 {
		return 0
	}
	return float64(p.CorrectAnswers) / float64(p.TotalQuestions) * 100
}

// TopicRepo manages per-topic progress rows.
type TopicRepo interface {
	// Get returns the row for (level, topic), or zero defaults when no
	// session has been recorded yet.
	Get(ctx context.Context, level, topic string) (TopicProgress, error)

	// Merge folds one session's result into the row: best score is a
	// running maximum, attempts increments by one, counters accumulate,
	// and the completion flag is recomputed from the passing threshold.
	// The read and the write run in a single transaction so the best
	// score never decreases under concurrent completions.
	Merge(ctx context.Context, level, topic string, score, questions, correct int) (TopicProgress, error)

	// AllForLevel returns every recorded row for a level, keyed by topic.
	AllForLevel(ctx context.Context, level string) (map[string]TopicProgress, error)
}

type topicRepo struct {
	client *ent.Client
}

func (r *topicRepo) Get(ctx context.Context, level, topic string) (TopicProgress, error) {
	row, err := r.client.TopicProgress.Query().
		Where(topicprogress.Level(level), topicprogress.Topic(topic)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return TopicProgress{Level: level, Topic: topic}, nil
		}
		return TopicProgress{}, fmt.Errorf("query topic progress: %w", err)
	}
	return fromEntTopic(row), nil
}

func (r *topicRepo) Merge(ctx context.Context, level, topic string, score, questions, correct int) (TopicProgress, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return TopicProgress{}, fmt.Errorf("begin tx: %w", err)
	}

	merged, err := mergeTopic(ctx, tx, level, topic, score, questions, correct)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return TopicProgress{}, err
	}

	if err := tx.Commit(); err != nil {
		return TopicProgress{}, fmt.Errorf("commit topic merge: %w", err)
	}
	return merged, nil
}

func mergeTopic(ctx context.Context, tx *ent.Tx, level, topic string, score, questions, correct int) (TopicProgress, error) {
	row, err := tx.TopicProgress.Query().
		Where(topicprogress.Level(level), topicprogress.Topic(topic)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		created, cerr := tx.TopicProgress.Create().
			SetLevel(level).
			SetTopic(topic).
			SetBestScore(score).
			SetAttempts(1).
			SetTotalQuestions(questions).
			SetCorrectAnswers(correct).
			SetLastAttempt(time.Now()).
			SetIsCompleted(score >= catalog.PassingScore).
			Save(ctx)
		if cerr != nil {
			return TopicProgress{}, fmt.Errorf("create topic progress: %w", cerr)
		}
		return fromEntTopic(created), nil
	case err != nil:
		return TopicProgress{}, fmt.Errorf("query topic progress: %w", err)
	}

	best := max(row.BestScore, score)
	updated, err := tx.TopicProgress.UpdateOne(row).
		SetBestScore(best).
		SetAttempts(row.Attempts + 1).
		SetTotalQuestions(row.TotalQuestions + questions).
		SetCorrectAnswers(row.CorrectAnswers + correct).
		SetLastAttempt(time.Now()).
		SetIsCompleted(best >= catalog.PassingScore).
		Save(ctx)
	if err != nil {
		return TopicProgress{}, fmt.Errorf("update topic progress: %w", err)
	}
	return fromEntTopic(updated), nil
}

func (r *topicRepo) AllForLevel(ctx context.Context, level string) (map[string]TopicProgress, error) {
	rows, err := r.client.TopicProgress.Query().
		Where(topicprogress.Level(level)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query topic progress for %s: %w", level, err)
	}
	out := make(map[string]TopicProgress, len(rows))
	for _, row := range rows {
		out[row.Topic] = fromEntTopic(row)
	}
	return out, nil
}

func fromEntTopic(row *ent.TopicProgress) TopicProgress {
	return TopicProgress{
		Level:          row.Level,
		Topic:          row.Topic,
		BestScore:      row.BestScore,
		Attempts:       row.Attempts,
		TotalQuestions: row.TotalQuestions,
		CorrectAnswers: row.CorrectAnswers,
		LastAttempt:    row.LastAttempt,
		IsCompleted:    row.IsCompleted,
	}
}

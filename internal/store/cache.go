package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/minhtc/opicly/ent"
	"github.com/minhtc/opicly/ent/questioncache"
	"github.com/minhtc/opicly/internal/quizgen"
)

// CacheRepo manages the per-(level, topic) question cache.
// Expiry is lazy: a read past the expiry time deletes the row and
// reports absence; ClearExpired exists for housekeeping sweeps.
type CacheRepo interface {
	// Put upserts the single cache row for (level, topic) with an
	// absolute expiry of now + ttl.
	Put(ctx context.Context, level, topic string, questions []quizgen.Question, ttl time.Duration) error

	// Get returns the cached questions, or (nil, false) when the entry
	// is missing or expired. Expired rows are deleted on read.
	Get(ctx context.Context, level, topic string) ([]quizgen.Question, bool, error)

	// ClearExpired deletes all expired rows and returns the count.
	ClearExpired(ctx context.Context) (int, error)

	// Clear deletes all rows and returns the count.
	Clear(ctx context.Context) (int, error)

	// Exists reports whether a row (live or expired) is present.
	Exists(ctx context.Context, level, topic string) (bool, error)
}

type cacheRepo struct {
	client *ent.Client
}

func (r *cacheRepo) Put(ctx context.Context, level, topic string, questions []quizgen.Question, ttl time.Duration) error {
	data, err := json.Marshal(questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}
	now := time.Now()

	row, err := r.client.QuestionCache.Query().
		Where(questioncache.Level(level), questioncache.Topic(topic)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = r.client.QuestionCache.Create().
			SetLevel(level).
			SetTopic(topic).
			SetQuestionData(string(data)).
			SetCreatedAt(now).
			SetExpiresAt(now.Add(ttl)).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create cache entry: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("query cache entry: %w", err)
	}

	_, err = r.client.QuestionCache.UpdateOne(row).
		SetQuestionData(string(data)).
		SetCreatedAt(now).
		SetExpiresAt(now.Add(ttl)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update cache entry: %w", err)
	}
	return nil
}

func (r *cacheRepo) Get(ctx context.Context, level, topic string) ([]quizgen.Question, bool, error) {
	row, err := r.client.QuestionCache.Query().
		Where(questioncache.Level(level), questioncache.Topic(topic)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("query cache entry: %w", err)
	}

	if !time.Now().Before(row.ExpiresAt) {
		if err := r.client.QuestionCache.DeleteOne(row).Exec(ctx); err != nil {
			return nil, false, fmt.Errorf("delete expired cache entry: %w", err)
		}
		return nil, false, nil
	}

	var questions []quizgen.Question
	if err := json.Unmarshal([]byte(row.QuestionData), &questions); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached questions: %w", err)
	}
	return questions, true, nil
}

func (r *cacheRepo) ClearExpired(ctx context.Context) (int, error) {
	n, err := r.client.QuestionCache.Delete().
		Where(questioncache.ExpiresAtLT(time.Now())).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear expired cache: %w", err)
	}
	return n, nil
}

func (r *cacheRepo) Clear(ctx context.Context) (int, error) {
	n, err := r.client.QuestionCache.Delete().Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear cache: %w", err)
	}
	return n, nil
}

func (r *cacheRepo) Exists(ctx context.Context, level, topic string) (bool, error) {
	ok, err := r.client.QuestionCache.Query().
		Where(questioncache.Level(level), questioncache.Topic(topic)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check cache entry: %w", err)
	}
	return ok, nil
}

package store

import (
	"context"
	"fmt"
	"io"
	"os"
)

// DBStats reports per-table row counts and the database file size.
type DBStats struct {
	UserProgressRows  int
	TopicProgressRows int
	CacheRows         int
	SessionRows       int
	SettingRows       int
	LLMRequestRows    int
	SizeBytes         int64
}

// Stats returns table counts and the on-disk size of the database.
func (s *Store) Stats(ctx context.Context) (DBStats, error) {
	var stats DBStats
	counts := []struct {
		name string
		dst  *int
		fn   func(context.Context) (int, error)
	}{
		{"user_progress", &stats.UserProgressRows, s.client.UserProgress.Query().Count},
		{"topic_progress", &stats.TopicProgressRows, s.client.TopicProgress.Query().Count},
		{"question_cache", &stats.CacheRows, s.client.QuestionCache.Query().Count},
		{"game_sessions", &stats.SessionRows, s.client.GameSession.Query().Count},
		{"settings", &stats.SettingRows, s.client.Setting.Query().Count},
		{"llm_requests", &stats.LLMRequestRows, s.client.LLMRequest.Query().Count},
	}
	for _, c := range counts {
		n, err := c.fn(ctx)
		if err != nil {
			return DBStats{}, fmt.Errorf("count %s: %w", c.name, err)
		}
		*c.dst = n
	}

	err := s.db.QueryRowContext(ctx,
		"SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size()").
		Scan(&stats.SizeBytes)
	if err != nil {
		return DBStats{}, fmt.Errorf("query database size: %w", err)
	}
	return stats, nil
}

// Backup copies the database file to path. The caller must ensure no
// writer is active; a plain file copy is only safe without concurrent
// writes.
func (s *Store) Backup(path string) error {
	if _, err := s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return fmt.Errorf("checkpoint before backup: %w", err)
	}

	src, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("open database file: %w", err)
	}
	defer src.Close()

	if err := EnsureDir(path); err != nil {
		return fmt.Errorf("create backup dir: %w", err)
	}
	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create backup file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("copy database: %w", err)
	}
	return dst.Close()
}

// Cleanup deletes sessions older than days and sweeps expired cache
// rows, returning (sessions deleted, cache entries deleted).
func (s *Store) Cleanup(ctx context.Context, days int) (int, int, error) {
	sessions, err := s.Sessions().DeleteOlderThan(ctx, days)
	if err != nil {
		return 0, 0, err
	}
	cache, err := s.Cache().ClearExpired(ctx)
	if err != nil {
		return sessions, 0, err
	}
	return sessions, cache, nil
}

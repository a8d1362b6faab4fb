package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/minhtc/opicly/ent"
	"github.com/minhtc/opicly/ent/setting"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the ent client and provides access to repositories.
type Store struct {
	path   string
	db     *sql.DB
	client *ent.Client
}

// defaultSettings are seeded once at initialization; existing values win.
var defaultSettings = map[string]string{
	"api_provider":  "openrouter",
	"api_key":       "",
	"api_url":       "",
	"api_model":     "openai/gpt-4o-mini",
	"api_timeout":   "30",
	"sound_enabled": "true",
	"auto_advance":  "false",
	"theme":         "default",
	"language":      "vi",
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas, runs auto-migration, and seeds the
// singleton progress row and default settings.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	ctx := context.Background()
	if err := client.Schema.Create(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	s := &Store{path: dsn, db: db, client: client}
	if err := s.seed(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("seed: %w", err)
	}
	return s, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// Progress returns the user-progress repository.
func (s *Store) Progress() ProgressRepo {
	return &progressRepo{client: s.client}
}

// Topics returns the topic-progress repository.
func (s *Store) Topics() TopicRepo {
	return &topicRepo{client: s.client}
}

// Cache returns the question-cache repository.
func (s *Store) Cache() CacheRepo {
	return &cacheRepo{client: s.client}
}

// Sessions returns the game-session repository.
func (s *Store) Sessions() SessionRepo {
	return &sessionRepo{client: s.client, db: s.db}
}

// Settings returns the settings repository.
func (s *Store) Settings() SettingsRepo {
	return &settingsRepo{client: s.client}
}

// LLMLog returns the LLM request audit repository.
func (s *Store) LLMLog() LLMRepo {
	return &llmRepo{client: s.client}
}

// seed inserts the singleton user-progress row and default settings
// when they do not exist yet.
func (s *Store) seed(ctx context.Context) error {
	n, err := s.client.UserProgress.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("count user progress: %w", err)
	}
	if n == 0 {
		_, err = s.client.UserProgress.Create().
			SetUnlockedLevels([]string{"IM1"}).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create user progress: %w", err)
		}
	}

	for key, value := range defaultSettings {
		exists, err := s.client.Setting.Query().
			Where(setting.Key(key)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check setting %q: %w", key, err)
		}
		if exists {
			continue
		}
		_, err = s.client.Setting.Create().
			SetKey(key).
			SetValue(value).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create setting %q: %w", key, err)
		}
	}
	return nil
}

// applyPragmas configures SQLite for single-user desktop use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. OPICLY_DB environment variable
// 2. $XDG_DATA_HOME/opicly/opicly.db
// 3. ~/.local/share/opicly/opicly.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("OPICLY_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "opicly", "opicly.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}

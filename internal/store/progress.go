package store

import (
	"context"
	"fmt"
	"time"

	"github.com/minhtc/opicly/ent"
)

// UserProgress is the repository view of the singleton progress row.
type UserProgress struct {
	CurrentLevel   string
	UnlockedLevels []string
	TotalScore     int
	CurrentStreak  int
	BestStreak     int
	TotalQuestions int
	CorrectAnswers int
	LastPlayed     *time.Time
}

// Accuracy returns the overall answer accuracy as a percentage.
func (p UserProgress) Accuracy() float64 {
	if p.TotalQuestions == 0 {
		return 0
	}
	return float64(p.CorrectAnswers) / float64(p.TotalQuestions) * 100
}

// ProgressRepo manages the singleton user-progress row.
type ProgressRepo interface {
	// Get returns the current progress, or IM1 defaults when the
	// singleton row is missing (cannot normally happen after Open).
	Get(ctx context.Context) (UserProgress, error)

	// Update rewrites all mutable fields and stamps last_played.
	Update(ctx context.Context, p UserProgress) error
}

type progressRepo struct {
	client *ent.Client
}

func defaultProgress() UserProgress {
	return UserProgress{
		CurrentLevel:   "IM1",
		UnlockedLevels: []string{"IM1"},
	}
}

func (r *progressRepo) Get(ctx context.Context) (UserProgress, error) {
	row, err := r.client.UserProgress.Query().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return defaultProgress(), nil
		}
		return UserProgress{}, fmt.Errorf("query user progress: %w", err)
	}
	return UserProgress{
		CurrentLevel:   row.CurrentLevel,
		UnlockedLevels: row.UnlockedLevels,
		TotalScore:     row.TotalScore,
		CurrentStreak:  row.CurrentStreak,
		BestStreak:     row.BestStreak,
		TotalQuestions: row.TotalQuestions,
		CorrectAnswers: row.CorrectAnswers,
		LastPlayed:     row.LastPlayed,
	}, nil
}

func (r *progressRepo) Update(ctx context.Context, p UserProgress) error {
	row, err := r.client.UserProgress.Query().First(ctx)
	if err != nil {
		return fmt.Errorf("query user progress: %w", err)
	}
	_, err = r.client.UserProgress.UpdateOne(row).
		SetCurrentLevel(p.CurrentLevel).
		SetUnlockedLevels(p.UnlockedLevels).
		SetTotalScore(p.TotalScore).
		SetCurrentStreak(p.CurrentStreak).
		SetBestStreak(p.BestStreak).
		SetTotalQuestions(p.TotalQuestions).
		SetCorrectAnswers(p.CorrectAnswers).
		SetLastPlayed(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update user progress: %w", err)
	}
	return nil
}

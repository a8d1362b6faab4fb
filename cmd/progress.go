package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minhtc/opicly/internal/catalog"
	"github.com/minhtc/opicly/internal/ui/theme"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show user and per-topic progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("level")
		if level != "" && !catalog.IsValid(level) {
			return fmt.Errorf("unknown level %q", level)
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		user, err := s.Progress().Get(ctx)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		lvl, _ := catalog.Get(user.CurrentLevel)
		fmt.Printf("Current level:  %s\n", theme.LevelBadge(user.CurrentLevel, lvl.Color))
		fmt.Printf("Unlocked:       %s\n", strings.Join(user.UnlockedLevels, ", "))
		fmt.Printf("Total score:    %d\n", user.TotalScore)
		fmt.Printf("Questions:      %d (%.1f%% correct)\n", user.TotalQuestions, user.Accuracy())
		fmt.Printf("Streak:         %d (best %d)\n", user.CurrentStreak, user.BestStreak)
		if user.LastPlayed != nil {
			fmt.Printf("Last played:    %s\n", user.LastPlayed.Local().Format("2006-01-02 15:04"))
		}

		show := user.CurrentLevel
		if level != "" {
			show = level
		}

		byTopic, err := s.Topics().AllForLevel(ctx, show)
		if err != nil {
			return fmt.Errorf("load topic progress: %w", err)
		}

		fmt.Println()
		fmt.Println(theme.Header.Render(fmt.Sprintf("Topics (%s)", show)))
		fmt.Printf("%-44s  %5s  %8s  %9s  %s\n", "Topic", "Best", "Attempts", "Accuracy", "Done")
		fmt.Println(strings.Repeat("─", 78))
		for _, topic := range catalog.Topics(show) {
			tp, ok := byTopic[topic]
			if !ok {
				fmt.Printf("%-44s  %5s  %8s  %9s\n", truncate(topic, 44), "-", "-", "-")
				continue
			}
			done := ""
			if tp.IsCompleted {
				done = theme.OK.Render("✓")
			}
			fmt.Printf("%-44s  %5d  %8d  %8.1f%%  %s\n",
				truncate(topic, 44), tp.BestScore, tp.Attempts, tp.Accuracy(), done)
		}
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func init() {
	progressCmd.Flags().StringP("level", "l", "", "Show topics for a specific level")
}

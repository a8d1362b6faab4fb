package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minhtc/opicly/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show session statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("level")
		topic, _ := cmd.Flags().GetString("topic")
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		stats, err := s.Sessions().Statistics(ctx, level, topic)
		if err != nil {
			return fmt.Errorf("query statistics: %w", err)
		}

		if stats.TotalSessions == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		fmt.Println(theme.Header.Render("Sessions"))
		fmt.Printf("Total:         %d\n", stats.TotalSessions)
		fmt.Printf("Avg accuracy:  %.1f%%\n", stats.AvgAccuracy)
		fmt.Printf("Avg score:     %.1f\n", stats.AvgScore)
		fmt.Printf("Best score:    %d\n", stats.BestScore)
		fmt.Printf("Avg duration:  %.0fs\n", stats.AvgDuration)
		fmt.Printf("Best streak:   %d\n", stats.BestStreak)

		recent, err := s.Sessions().Recent(ctx, limit)
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(recent) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Println(theme.Header.Render("Recent"))
		fmt.Printf("%-16s  %-5s  %-30s  %5s  %8s  %6s\n",
			"Completed", "Level", "Topic", "Score", "Accuracy", "Streak")
		fmt.Println(strings.Repeat("─", 80))
		for _, sess := range recent {
			fmt.Printf("%-16s  %-5s  %-30s  %5d  %7.1f%%  %6d\n",
				sess.CompletedAt.Local().Format("2006-01-02 15:04"),
				sess.Level,
				truncate(sess.Topic, 30),
				sess.Score,
				sess.Accuracy,
				sess.Streak)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().StringP("level", "l", "", "Filter by level")
	statsCmd.Flags().StringP("topic", "t", "", "Filter by topic")
	statsCmd.Flags().IntP("limit", "n", 10, "Number of recent sessions to list")
}

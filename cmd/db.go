package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database maintenance",
}

var dbBackupCmd = &cobra.Command{
	Use:   "backup <path>",
	Short: "Copy the database to a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		if err := s.Backup(args[0]); err != nil {
			return fmt.Errorf("backup: %w", err)
		}
		fmt.Printf("Backup written to %s\n", args[0])
		return nil
	},
}

var dbCleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Delete old sessions and expired cache entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		sessions, cache, err := s.Cleanup(context.Background(), days)
		if err != nil {
			return fmt.Errorf("cleanup: %w", err)
		}
		fmt.Printf("Deleted %d sessions older than %d days and %d expired cache entries.\n",
			sessions, days, cache)
		return nil
	},
}

var dbStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show table counts and file size",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		stats, err := s.Stats(context.Background())
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		fmt.Printf("Sessions:       %d\n", stats.SessionRows)
		fmt.Printf("Topic rows:     %d\n", stats.TopicProgressRows)
		fmt.Printf("Cache entries:  %d\n", stats.CacheRows)
		fmt.Printf("LLM requests:   %d\n", stats.LLMRequestRows)
		fmt.Printf("Settings:       %d\n", stats.SettingRows)
		fmt.Printf("Size:           %.1f KB\n", float64(stats.SizeBytes)/1024)
		return nil
	},
}

func init() {
	dbCleanupCmd.Flags().Int("days", 90, "Delete sessions older than this many days")

	dbCmd.AddCommand(dbBackupCmd)
	dbCmd.AddCommand(dbCleanupCmd)
	dbCmd.AddCommand(dbStatsCmd)
}

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minhtc/opicly/internal/ui/theme"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Test the provider and inspect the request log",
}

var llmTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the API connection with the configured provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		gen, err := buildGenerator(ctx, s)
		if err != nil {
			return err
		}

		status := gen.TestConnection(ctx)
		if status.OK {
			fmt.Printf("%s %s (%s)\n", theme.OK.Render("✓"), status.Message, status.Model)
			return nil
		}
		fmt.Printf("%s %s\n", theme.Fail.Render("✗"), status.Message)
		return fmt.Errorf("connection test failed")
	},
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		records, err := s.LLMLog().Recent(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query requests: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No LLM requests recorded.")
			return nil
		}

		fmt.Printf("%-5s  %-16s  %-15s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"ID", "Time", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 100))

		for _, r := range records {
			ok := theme.OK.Render("✓")
			if !r.Success {
				ok = theme.Fail.Render("✗")
			}
			fmt.Printf("%-5d  %-16s  %-15s  %-28s  %-6d  %-6d  %-7d  %s\n",
				r.ID,
				r.CreatedAt.Local().Format("2006-01-02 15:04"),
				r.Purpose,
				truncate(r.Model, 28),
				r.InputTokens,
				r.OutputTokens,
				r.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")

	llmCmd.AddCommand(llmTestCmd)
	llmCmd.AddCommand(llmListCmd)
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minhtc/opicly/internal/catalog"
	"github.com/minhtc/opicly/internal/ui/theme"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List levels and topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("level")
		search, _ := cmd.Flags().GetString("search")

		if search != "" {
			matches := catalog.SearchTopics(search)
			if len(matches) == 0 {
				fmt.Printf("No topics matching %q.\n", search)
				return nil
			}
			for _, m := range matches {
				lvl, _ := catalog.Get(m.Level)
				fmt.Printf("%s  %s\n", theme.LevelBadge(m.Level, lvl.Color), m.Topic)
			}
			return nil
		}

		if level != "" {
			lvl, ok := catalog.Get(level)
			if !ok {
				return fmt.Errorf("unknown level %q", level)
			}
			printLevel(lvl)
			return nil
		}

		for _, lvl := range catalog.All() {
			printLevel(lvl)
			fmt.Println()
		}
		return nil
	},
}

func printLevel(lvl catalog.Level) {
	fmt.Printf("%s  %s\n", theme.LevelBadge(lvl.Code, lvl.Color), theme.Title.Render(lvl.Name))
	fmt.Println(theme.Subtitle.Render(lvl.Description))
	fmt.Println(strings.Repeat("─", 60))
	for _, topic := range lvl.Topics {
		fmt.Printf("  %s\n", topic)
	}
}

func init() {
	topicsCmd.Flags().StringP("level", "l", "", "Show a single level")
	topicsCmd.Flags().StringP("search", "s", "", "Search topics by substring")
}

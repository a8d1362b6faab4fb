package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/minhtc/opicly/internal/catalog"
	"github.com/minhtc/opicly/internal/llm"
	"github.com/minhtc/opicly/internal/quizgen"
	"github.com/minhtc/opicly/internal/store"
	"github.com/minhtc/opicly/internal/ui/theme"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate fill-in-the-blank questions for a level and topic",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("level")
		topic, _ := cmd.Flags().GetString("topic")
		count, _ := cmd.Flags().GetInt("count")
		fresh, _ := cmd.Flags().GetBool("fresh")
		noCache, _ := cmd.Flags().GetBool("no-cache")
		ttlHours, _ := cmd.Flags().GetInt("ttl")
		noProgression, _ := cmd.Flags().GetBool("no-progression")
		noCulture, _ := cmd.Flags().GetBool("no-culture")
		grammar, _ := cmd.Flags().GetStringSlice("grammar")

		req := quizgen.NewRequest(level, topic)
		req.Count = count
		req.DifficultyProgression = !noProgression
		req.CulturalContext = !noCulture
		req.GrammarFocus = grammar

		if err := quizgen.Validate(req); err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()

		// Cache hit short-circuits the provider call entirely.
		if !fresh {
			if cached, ok, err := s.Cache().Get(ctx, level, topic); err != nil {
				return fmt.Errorf("read cache: %w", err)
			} else if ok && len(cached) >= count {
				printQuestions(cached[:count], true)
				return nil
			}
		}

		gen, err := buildGenerator(ctx, s)
		if err != nil {
			return err
		}

		result, err := gen.Generate(ctx, req)
		if err != nil {
			return err
		}

		for _, w := range result.Warnings {
			fmt.Fprintln(os.Stderr, theme.Warn.Render("warning: "+w))
		}

		if !noCache {
			ttl := time.Duration(ttlHours) * time.Hour
			if err := s.Cache().Put(ctx, level, topic, result.Questions, ttl); err != nil {
				fmt.Fprintf(os.Stderr, "warning: cache write failed: %v\n", err)
			}
		}

		printQuestions(result.Questions, false)
		fmt.Println()
		fmt.Println(theme.Hint.Render(fmt.Sprintf("%d questions in %.1fs (%s, %d tokens)",
			len(result.Questions),
			result.GenerationTime.Seconds(),
			result.Model,
			result.Usage.TotalTokens)))
		return nil
	},
}

// auditSink writes provider audit records into the persistent LLM log.
type auditSink struct {
	repo store.LLMRepo
}

func (a auditSink) Append(ctx context.Context, rec llm.AuditRecord) error {
	return a.repo.Append(ctx, store.LLMRecord{
		RequestID:    rec.RequestID,
		Provider:     rec.Provider,
		Model:        rec.Model,
		Purpose:      rec.Purpose,
		InputTokens:  rec.InputTokens,
		OutputTokens: rec.OutputTokens,
		LatencyMs:    rec.LatencyMs,
		Success:      rec.Success,
		ErrorMessage: rec.ErrorMessage,
		RequestBody:  rec.RequestBody,
		ResponseBody: rec.ResponseBody,
	})
}

// buildGenerator wires settings, provider, and audit log into a Generator.
func buildGenerator(ctx context.Context, s *store.Store) (*quizgen.Generator, error) {
	cfg, err := llm.ConfigFromSettings(ctx, s.Settings())
	if err != nil {
		return nil, fmt.Errorf("load LLM config: %w", err)
	}

	provider, err := llm.NewProvider(ctx, cfg, auditSink{repo: s.LLMLog()})
	if err != nil {
		return nil, err
	}

	genCfg := quizgen.DefaultConfig()
	genCfg.Timeout = cfg.Timeout
	return quizgen.New(provider, genCfg), nil
}

func printQuestions(questions []quizgen.Question, fromCache bool) {
	if fromCache {
		fmt.Println(theme.Hint.Render("(cached)"))
	}
	for i, q := range questions {
		badge := ""
		if lvl, ok := catalog.Get(q.Level); ok {
			badge = theme.LevelBadge(q.Level, lvl.Color) + " "
		}
		fmt.Printf("%s%s %s\n", badge, theme.Title.Render(fmt.Sprintf("Q%d.", i+1)), q.Sentence)
		fmt.Printf("   %s %s\n", theme.OK.Render("✓"), q.CorrectAnswer)
		for _, w := range q.WrongAnswers {
			fmt.Printf("   %s %s\n", theme.Fail.Render("✗"), w)
		}
		fmt.Printf("   %s\n\n", theme.Subtitle.Render(q.Explanation))
	}
}

func init() {
	generateCmd.Flags().StringP("level", "l", "", "OPIC level code (IM1, IM2, IM3, IH, AL, AM, AH)")
	generateCmd.Flags().StringP("topic", "t", "", "Topic within the level")
	generateCmd.Flags().IntP("count", "n", 10, "Number of questions (1-20)")
	generateCmd.Flags().Bool("fresh", false, "Skip the cache and call the provider")
	generateCmd.Flags().Bool("no-cache", false, "Do not write the result to the cache")
	generateCmd.Flags().Int("ttl", 24, "Cache TTL in hours")
	generateCmd.Flags().Bool("no-progression", false, "Consistent difficulty instead of progressive")
	generateCmd.Flags().Bool("no-culture", false, "Skip cultural-context requirements")
	generateCmd.Flags().StringSlice("grammar", nil, "Override the level's grammar focus points")
	_ = generateCmd.MarkFlagRequired("level")
	_ = generateCmd.MarkFlagRequired("topic")
}

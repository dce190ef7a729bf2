package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cogtest/internal/feedback"
	"cogtest/internal/store"
)

func init() {
	rootCmd.AddCommand(summaryCmd)
}

var summaryCmd = &cobra.Command{
	Use:   "summary <user-id>",
	Short: "Show per-session averages and trend feedback for a user",
	Long: `Reloads the session log, groups the user's rows by session timestamp,
and prints each session's average score. With two or more sessions the last
two averages are compared and a short feedback message is generated.

The user id is the derived key printed after a run, e.g. jane_1234_noemail.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := args[0]
		log := store.New(cfg.Assessment.LogFile)

		summary, err := log.SummarizeUser(userID)
		if err != nil {
			return err
		}
		if len(summary) == 0 {
			fmt.Printf("No sessions found for %s in %s\n", userID, log.Path())
			return nil
		}
		for i, s := range summary {
			fmt.Printf("Session %d - %s: Avg Score = %.2f (%d items)\n",
				i+1, s.Timestamp, store.Round2(s.Mean), s.Entries)
		}

		trend, ok := store.TrendBetweenLastTwo(summary)
		if !ok {
			return nil
		}

		var textModel feedback.TextModel
		if model, err := feedback.NewGenAIModel(cfg.LLM.APIKey, cfg.LLM.TextModel); err == nil {
			textModel = model
		} else {
			logger.Warn("feedback model unavailable", zap.Error(err))
		}
		gen := feedback.New(textModel, cfg.LLMTimeout(), logger)
		fmt.Println()
		fmt.Println("Feedback: " + gen.Generate(cmd.Context(), userID, trend.Prev, trend.Curr, trend.Label))
		return nil
	},
}

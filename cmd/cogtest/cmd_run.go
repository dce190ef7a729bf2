package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cogtest/internal/embedding"
	"cogtest/internal/feedback"
	"cogtest/internal/games"
	"cogtest/internal/scoring"
	"cogtest/internal/session"
	"cogtest/internal/store"
	"cogtest/internal/taxonomy"
	"cogtest/internal/term"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Administer the interactive cognitive test",
	Long: `Runs the full interactive assessment on the terminal: three open
questions, number recall, word recall, identity capture, then appends the
session to the log and prints the per-session averages with trend feedback.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := embedding.NewEngine(cfg.Embedding)
		if err != nil {
			return err
		}
		logger.Debug("embedding engine ready", zap.String("engine", engine.Name()))

		lex, err := taxonomy.LoadWordNet(cfg.Assessment.WordNetDir)
		if err != nil {
			return err
		}

		var textModel feedback.TextModel
		if model, err := feedback.NewGenAIModel(cfg.LLM.APIKey, cfg.LLM.TextModel); err == nil {
			textModel = model
		} else {
			// Feedback degrades to the template; it must never block a run.
			logger.Warn("feedback model unavailable", zap.Error(err))
		}

		tz, err := cfg.Location()
		if err != nil {
			return err
		}

		t := term.New(os.Stdin, os.Stdout)
		runner := session.NewRunner(
			scoring.New(engine, lex),
			games.New(rand.New(rand.NewSource(time.Now().UnixNano())), cfg.MemorizeDelay(), nil),
			store.New(cfg.Assessment.LogFile),
			feedback.New(textModel, cfg.LLMTimeout(), logger),
			t, tz, nil, logger,
		)
		return runner.Run(cmd.Context())
	},
}

package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"cogtest/internal/config"
)

var (
	// Global flags
	cfgPath     string
	verbose     bool
	logOverride string

	// Initialized in PersistentPreRunE, shared by all commands
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "cogtest",
	Short: "cogtest - short cognitive assessment with semantic scoring",
	Long: `cogtest administers a short cognitive assessment: three open questions,
a digit-recall game, and a word-recall game. Answers are scored with
sentence-embedding similarity and lexical category matching, sessions are
appended to a CSV log, and the last two session averages become a short
feedback message.

Photographed paper test sheets can be ingested with 'cogtest upload'.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapCfg := zap.NewProductionConfig()
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = logger.With(zap.String("run_id", uuid.NewString()))

		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if logOverride != "" {
			cfg.Assessment.LogFile = logOverride
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "cogtest.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logOverride, "log", "", "override the session log file path")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

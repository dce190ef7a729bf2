package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cogtest/internal/ocr"
	"cogtest/internal/store"
)

var uploadOverrides ocr.Overrides

func init() {
	rootCmd.AddCommand(uploadCmd)

	uploadCmd.Flags().StringVar(&uploadOverrides.Nickname, "nickname", "", "override the nickname field")
	uploadCmd.Flags().StringVar(&uploadOverrides.Digits, "digits", "", "override the last-4-phone-digits field")
	uploadCmd.Flags().StringVar(&uploadOverrides.GameName, "game", "", "override the game name field")
	uploadCmd.Flags().StringVar(&uploadOverrides.Score, "score", "", "override the score field")
}

var uploadCmd = &cobra.Command{
	Use:   "upload <image>",
	Short: "Ingest a photographed paper test sheet",
	Long: `Extracts text from a photographed score sheet, pulls out the form
fields (nickname, digits, game name, score, date, agent), merges them with
any override flags (overrides win), and appends a log row. When a required
field is missing from both sources, nothing is written.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := ocr.NewGenAIEngine(cfg.LLM.APIKey, cfg.LLM.TextModel)
		if err != nil {
			return err
		}
		tz, err := cfg.Location()
		if err != nil {
			return err
		}

		proc := ocr.NewProcessor(engine, store.New(cfg.Assessment.LogFile), tz, nil, logger)
		result, err := proc.Upload(cmd.Context(), args[0], uploadOverrides)
		if err != nil {
			return err
		}

		if !result.Saved {
			fmt.Printf("Could not extract all required fields from OCR (missing: %s)\n",
				strings.Join(result.Missing, ", "))
			return nil
		}
		fmt.Printf("Saved offline score: %s | Score: %g | User: %s\n",
			result.Row.Type, result.Row.Score, result.Row.UserID)
		return nil
	},
}

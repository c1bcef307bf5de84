package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"logos-backend/internal/analysis"
	"logos-backend/internal/settings"
	"logos-backend/internal/shared/config"
)

var (
	analyzeText string
	analyzeFile string
	analyzeLang string
	analyzeJSON bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a text passage",
	Long: `Run the full analysis pipeline on a passage supplied inline or
from a file. The interpretation is written in the language given by
--lang (default EN).`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeText, "text", "", "text to analyze")
	analyzeCmd.Flags().StringVar(&analyzeFile, "file", "", "path to a UTF-8 text file to analyze")
	analyzeCmd.Flags().StringVar(&analyzeLang, "lang", "EN", "reading language code (AR, DE, EN, ES, FR, IT, JA, RU, ZH)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the raw response envelope as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func readInputText() (string, error) {
	if analyzeText != "" {
		return analyzeText, nil
	}
	if analyzeFile != "" {
		raw, err := os.ReadFile(analyzeFile)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", analyzeFile, err)
		}
		return string(raw), nil
	}
	return "", errors.New("provide --text or --file")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text, err := readInputText()
	if err != nil {
		return err
	}

	cfg := config.Load()
	repo, cleanup, err := openRepo(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	store := settings.NewStore(cfg.LLMAPIKey, cfg.LLMModel)
	svc := analysis.NewService(store, repo, cfg.LLMLiteModel)

	out := svc.Analyze(cmd.Context(), text, strings.ToUpper(analyzeLang))
	if analyzeJSON {
		return printJSON(out)
	}
	if !out.Success {
		return fmt.Errorf("analyze failed: %s", out.Error)
	}
	fmt.Println(out.Result)
	return nil
}

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"logos-backend/internal/history"
	"logos-backend/internal/shared/config"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect saved analyses",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved analyses, newest first",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one saved analysis in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	historyListCmd.Flags().IntVar(&historyLimit, "limit", 0, "show at most N records (0 means all)")
	historyListCmd.Flags().BoolVar(&historyJSON, "json", false, "print records as JSON")
	historyShowCmd.Flags().BoolVar(&historyJSON, "json", false, "print the record as JSON")
	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}

func parseHistoryID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid history id %q", raw)
	}
	return id, nil
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	if historyLimit < 0 {
		return fmt.Errorf("--limit must be >= 0")
	}

	repo, cleanup, err := openRepo(config.Load())
	if err != nil {
		return err
	}
	defer cleanup()

	records, err := repo.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("history query: %w", err)
	}
	if historyLimit > 0 && len(records) > historyLimit {
		records = records[:historyLimit]
	}

	if historyJSON {
		return printJSON(records)
	}
	if len(records) == 0 {
		fmt.Println("No history records found.")
		return nil
	}

	fmt.Println("ID   LANG  TIMESTAMP                   PROMPT")
	for _, rec := range records {
		fmt.Printf("%-4d %-5s %-27s %s\n",
			rec.ID,
			strings.ToUpper(rec.ReaderLanguage),
			rec.CreatedAt.Format("2006-01-02T15:04:05"),
			promptPreview(rec.Prompt),
		)
	}
	return nil
}

func promptPreview(prompt string) string {
	flat := strings.TrimSpace(strings.ReplaceAll(prompt, "\n", " "))
	if len(flat) > 80 {
		return flat[:80] + "..."
	}
	return flat
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	id, err := parseHistoryID(args[0])
	if err != nil {
		return err
	}

	repo, cleanup, err := openRepo(config.Load())
	if err != nil {
		return err
	}
	defer cleanup()

	rec, err := repo.GetByID(cmd.Context(), id)
	if err != nil {
		if errors.Is(err, history.ErrNotFound) {
			return fmt.Errorf("history item not found: %d", id)
		}
		return fmt.Errorf("history query: %w", err)
	}

	if historyJSON {
		return printJSON(rec)
	}
	fmt.Printf("ID: %d\n", rec.ID)
	fmt.Printf("Reader Language: %s\n", strings.ToUpper(rec.ReaderLanguage))
	fmt.Printf("Timestamp: %s\n", rec.CreatedAt.Format("2006-01-02T15:04:05"))
	fmt.Printf("\nPrompt:\n\n%s\n", rec.Prompt)
	fmt.Printf("\nResult:\n\n%s\n", rec.Result)
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	id, err := parseHistoryID(args[0])
	if err != nil {
		return err
	}

	repo, cleanup, err := openRepo(config.Load())
	if err != nil {
		return err
	}
	defer cleanup()

	if err := repo.Delete(cmd.Context(), id); err != nil {
		if errors.Is(err, history.ErrNotFound) {
			return fmt.Errorf("history item not found: %d", id)
		}
		return fmt.Errorf("delete history item: %w", err)
	}
	fmt.Printf("Deleted history item %d.\n", id)
	return nil
}

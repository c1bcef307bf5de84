package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"logos-backend/internal/history"
	"logos-backend/internal/shared/config"
	"logos-backend/internal/shared/storage/db"
)

var rootCmd = &cobra.Command{
	Use:   "logos",
	Short: "Deep text analysis for language learners",
	Long: `Analyze foreign-language text from the command line.

The pipeline detects the language and genre of the input, corrects it
when needed, and produces an interpretation in your reading language.

Use "logos analyze --help" for analysis options.`,
	Version:       "1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openRepo returns a history repo backed by Postgres when DATABASE_URL
// is set, falling back to an in-memory store otherwise. The cleanup
// func is always safe to call.
func openRepo(cfg config.Config) (history.Repo, func(), error) {
	if cfg.DatabaseURL == "" {
		return history.NewMemoryRepo(), func() {}, nil
	}

	sqlDB, err := db.Connect(context.Background(), cfg.DatabaseURL, db.DefaultMigrateOptions())
	if err != nil {
		return nil, func() {}, fmt.Errorf("connect database: %w", err)
	}
	if err := db.RunMigrations(context.Background(), sqlDB); err != nil {
		sqlDB.Close()
		return nil, func() {}, fmt.Errorf("run migrations: %w", err)
	}
	return &history.PGRepo{DB: sqlDB}, closeQuietly(sqlDB), nil
}

func closeQuietly(sqlDB *sql.DB) func() {
	return func() { sqlDB.Close() }
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"logos-backend/internal/settings"
	"logos-backend/internal/shared/config"
)

var (
	settingsAPIKey string
	settingsModel  string
	settingsJSON   bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect or adjust LLM settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the configured API key (masked) and model",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Apply API key or model overrides for this invocation",
	RunE:  runSettingsSet,
}

func init() {
	settingsSetCmd.Flags().StringVar(&settingsAPIKey, "api-key", "", "LLM API key")
	settingsSetCmd.Flags().StringVar(&settingsModel, "model", "", "LLM model name")
	settingsShowCmd.Flags().BoolVar(&settingsJSON, "json", false, "print settings as JSON")
	settingsSetCmd.Flags().BoolVar(&settingsJSON, "json", false, "print settings as JSON")
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func printSettingsView(view settings.View) error {
	if settingsJSON {
		return printJSON(view)
	}
	keyInfo := "not configured"
	masked := "-"
	if view.HasAPIKey {
		keyInfo = "configured"
		masked = view.APIKey
	}
	fmt.Printf("API Key: %s (%s)\n", keyInfo, masked)
	fmt.Printf("Model: %s\n", view.Model)
	return nil
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	store := settings.NewStore(cfg.LLMAPIKey, cfg.LLMModel)
	return printSettingsView(store.View())
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsAPIKey == "" && settingsModel == "" {
		return fmt.Errorf("nothing to update, provide --api-key and/or --model")
	}

	cfg := config.Load()
	store := settings.NewStore(cfg.LLMAPIKey, cfg.LLMModel)
	view := store.Update(settingsAPIKey, settingsModel)
	if settingsJSON {
		return printJSON(view)
	}
	fmt.Println("Settings updated.")
	fmt.Printf("API Key configured: %v\n", view.HasAPIKey)
	fmt.Printf("Model: %s\n", view.Model)
	return nil
}

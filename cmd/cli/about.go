package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var aboutJSON bool

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show service information",
	RunE:  runAbout,
}

func init() {
	aboutCmd.Flags().BoolVar(&aboutJSON, "json", false, "print info as JSON")
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(cmd *cobra.Command, args []string) error {
	if aboutJSON {
		return printJSON(map[string]any{
			"name":            "LogosAI",
			"version":         "1.0",
			"description":     "Deep text analysis engine for advanced language learning.",
			"backend":         []string{"Go", "Gin", "PostgreSQL"},
			"open_source_url": "https://github.com/IvanMiao/LogosAI",
		})
	}
	fmt.Println("LogosAI v1.0")
	fmt.Println("Deep text analysis engine for advanced language learning.")
	fmt.Println("Backend: Go, Gin, PostgreSQL")
	fmt.Println("Repo: https://github.com/IvanMiao/LogosAI")
	return nil
}

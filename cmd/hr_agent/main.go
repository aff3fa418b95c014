// Package main provides the entry point for the HR copilot CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hr_agent",
	Short: "HR Copilot multi-agent query service",
	Long:  "HR Copilot routes HR queries through role-gated retrieval, ranking, skill analysis, and interview prep workers over a resume vector index, with a mandatory governance pass on every answer.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

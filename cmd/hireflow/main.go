// Package main provides the entry point for the HireFlow HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hireflow",
	Short: "HireFlow recruiting API server",
	Long:  "HireFlow extracts structured candidate and job records from raw documents, scores candidate-job matches, and schedules interviews with emailed invitations via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

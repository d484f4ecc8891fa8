// Package main implements the analyze CLI, which scores local résumé files with the same
// engine the HTTP API uses.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "analyze [files...]",
	Short: "Score resumes for ATS compatibility",
	Long:  "Analyzes local PDF or DOCX resumes against a role keyword table and prints the ATS score, missing keywords and formatting tips for each file.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Package main provides the terminal client for the recruiting platform.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "recruiter_console",
	Short: "Terminal client for the recruiting platform",
	Long:  "recruiter_console talks to the recruiting REST API: register and log in, browse and create job offers, and manage job applications as a candidate, recruiter, or admin.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Package main provides the entry point for the styleguide-studio CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "guide_agent",
	Short: "Tone-of-voice style guide generator",
	Long:  "guide_agent turns a brand description into a structured tone-of-voice style guide: validated style rules, canonical markdown, and tier-gated sections.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

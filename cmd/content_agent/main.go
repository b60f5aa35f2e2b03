// Package main provides the entry point for the content intelligence CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Ab-xo/content-intelligence/internal/assistant"
	"github.com/Ab-xo/content-intelligence/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "content_agent",
	Short: "Content intelligence for the blogging platform",
	Long:  "Content intelligence analyzes posts for policy violations and generates writing assistance (paragraphs, keywords, topics, excerpts) via AI providers with deterministic builtin fallbacks.",
}

var configFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to JSON config file (overrides environment)")
}

// loadAssistant builds the configured Assistant shared by all subcommands.
func loadAssistant() (*assistant.Assistant, *config.Config, error) {
	cfg := config.FromEnv()

	if configFile != "" {
		fileCfg, err := config.LoadConfig(configFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load config: %w", err)
		}
		// Environment wins over file values.
		merged := cfg.MergeWithDefaults(*fileCfg)
		cfg = &merged
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return assistant.New(cfg), cfg, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

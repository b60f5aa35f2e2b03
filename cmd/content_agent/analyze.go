package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ab-xo/content-intelligence/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a post for content policy violations",
	Long:  "Analyze a post title and content for policy violations using the pattern rule engine, optionally augmented with AI analysis. Always produces a verdict, even with no providers configured.",
	RunE:  runAnalyze,
}

var (
	analyzeTitle   string
	analyzeContent string
	analyzeFile    string
	analyzeUseAI   bool
	analyzeJSON    bool
	analyzeVerbose bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeTitle, "title", "t", "", "Post title")
	analyzeCmd.Flags().StringVarP(&analyzeContent, "content", "c", "", "Post content")
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Read post content from a file instead of --content")
	analyzeCmd.Flags().BoolVar(&analyzeUseAI, "ai", false, "Augment rule analysis with AI analysis")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Emit the report as JSON")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Formatted report output")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	if analyzeContent != "" && analyzeFile != "" {
		return fmt.Errorf("cannot use --content with --file")
	}

	content := analyzeContent
	if analyzeFile != "" {
		data, err := os.ReadFile(analyzeFile)
		if err != nil {
			return fmt.Errorf("failed to read content file: %w", err)
		}
		content = string(data)
	}
	if content == "" {
		return fmt.Errorf("must provide either --content or --file")
	}

	agent, _, err := loadAssistant()
	if err != nil {
		return err
	}

	report := agent.AnalyzeForViolations(context.Background(), analyzeTitle, content, analyzeUseAI)

	if analyzeJSON {
		jsonBytes, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}

	if analyzeVerbose {
		observability.NewPrinter(os.Stdout).PrintViolationReport(&report)
		return nil
	}

	if report.IsClean {
		_, _ = fmt.Fprintln(os.Stdout, "No violations found")
		return nil
	}

	_, _ = fmt.Fprintf(os.Stdout, "Severity: %s, violations: %d\n", report.Severity, len(report.Violations))
	for _, v := range report.Violations {
		_, _ = fmt.Fprintf(os.Stdout, "  %s (%s): %s\n", v.Category, v.Source, v.Description)
	}

	return nil
}

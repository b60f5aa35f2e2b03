package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ab-xo/content-intelligence/internal/observability"
)

var spamCmd = &cobra.Command{
	Use:   "spam",
	Short: "Detect whether content is likely spam",
	Long:  "Detect whether content is likely spam, returning a verdict with a 0-100 confidence and the indicators that fired.",
	RunE:  runSpam,
}

var (
	spamContent string
	spamFile    string
	spamJSON    bool
	spamVerbose bool
)

func init() {
	spamCmd.Flags().StringVarP(&spamContent, "content", "c", "", "Content to check")
	spamCmd.Flags().StringVarP(&spamFile, "file", "f", "", "Read content from a file instead of --content")
	spamCmd.Flags().BoolVar(&spamJSON, "json", false, "Emit the verdict as JSON")
	spamCmd.Flags().BoolVarP(&spamVerbose, "verbose", "v", false, "Formatted verdict output")

	rootCmd.AddCommand(spamCmd)
}

func runSpam(_ *cobra.Command, _ []string) error {
	if spamContent != "" && spamFile != "" {
		return fmt.Errorf("cannot use --content with --file")
	}

	content := spamContent
	if spamFile != "" {
		data, err := os.ReadFile(spamFile)
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

	result := agent.DetectSpam(context.Background(), content)

	if spamJSON {
		return emitResult(result)
	}
	if !result.Success {
		return fmt.Errorf("%s", result.Message)
	}
	if spamVerbose {
		observability.NewPrinter(os.Stdout).PrintSpam(&result)
		return nil
	}

	verdict := "not spam"
	if result.IsSpam {
		verdict = "spam"
	}
	_, _ = fmt.Fprintf(os.Stdout, "%s (confidence %d%%)\n", verdict, result.Confidence)
	for _, indicator := range result.Indicators {
		_, _ = fmt.Fprintf(os.Stdout, "- %s\n", indicator)
	}
	return nil
}

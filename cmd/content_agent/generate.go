package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ab-xo/content-intelligence/internal/observability"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate writing assistance for a post",
	Long:  "Generate paragraphs, keywords, topic ideas, excerpts, improvements, or grammar checks. Uses AI providers when configured and deterministic builtin generators otherwise.",
}

var (
	generateTitle     string
	generateContent   string
	generateFile      string
	generateCategory  string
	generateMaxLength int
	generateJSON      bool
	generateVerbose   bool
)

var generateParagraphsCmd = &cobra.Command{
	Use:   "paragraphs",
	Short: "Suggest intro, body, and conclusion paragraphs for a title",
	RunE:  runGenerateParagraphs,
}

var generateKeywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Suggest SEO keywords, tags, and metadata for a post",
	RunE:  runGenerateKeywords,
}

var generateTopicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Suggest post topic ideas for a category",
	RunE:  runGenerateTopics,
}

var generateExcerptCmd = &cobra.Command{
	Use:   "excerpt",
	Short: "Produce a bounded plain-text excerpt of a post",
	RunE:  runGenerateExcerpt,
}

var generateImproveCmd = &cobra.Command{
	Use:   "improve",
	Short: "Rewrite content for clarity and report the changes",
	RunE:  runGenerateImprove,
}

var generateGrammarCmd = &cobra.Command{
	Use:   "grammar",
	Short: "Check content for grammar and spelling issues",
	RunE:  runGenerateGrammar,
}

func init() {
	generateCmd.PersistentFlags().StringVarP(&generateTitle, "title", "t", "", "Post title")
	generateCmd.PersistentFlags().StringVarP(&generateContent, "content", "c", "", "Post content")
	generateCmd.PersistentFlags().StringVarP(&generateFile, "file", "f", "", "Read post content from a file instead of --content")
	generateCmd.PersistentFlags().StringVar(&generateCategory, "category", "", "Post category (technology, education, lifestyle, science, business)")
	generateCmd.PersistentFlags().BoolVar(&generateJSON, "json", false, "Emit the result as JSON")
	generateCmd.PersistentFlags().BoolVarP(&generateVerbose, "verbose", "v", false, "Formatted result output")
	generateExcerptCmd.Flags().IntVar(&generateMaxLength, "max-length", 150, "Maximum excerpt length in characters (minimum 20)")

	generateCmd.AddCommand(generateParagraphsCmd)
	generateCmd.AddCommand(generateKeywordsCmd)
	generateCmd.AddCommand(generateTopicsCmd)
	generateCmd.AddCommand(generateExcerptCmd)
	generateCmd.AddCommand(generateImproveCmd)
	generateCmd.AddCommand(generateGrammarCmd)
	rootCmd.AddCommand(generateCmd)
}

// generateInputContent resolves --content/--file for commands that need a body.
func generateInputContent() (string, error) {
	if generateContent != "" && generateFile != "" {
		return "", fmt.Errorf("cannot use --content with --file")
	}
	if generateFile != "" {
		data, err := os.ReadFile(generateFile)
		if err != nil {
			return "", fmt.Errorf("failed to read content file: %w", err)
		}
		return string(data), nil
	}
	if generateContent == "" {
		return "", fmt.Errorf("must provide either --content or --file")
	}
	return generateContent, nil
}

// emitResult marshals v to stdout as indented JSON.
func emitResult(v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
	return nil
}

func runGenerateParagraphs(_ *cobra.Command, _ []string) error {
	agent, _, err := loadAssistant()
	if err != nil {
		return err
	}

	result := agent.GenerateParagraphs(context.Background(), generateTitle, generateCategory)

	if generateJSON {
		return emitResult(result)
	}
	if !result.Success {
		return fmt.Errorf("%s", result.Message)
	}
	if generateVerbose {
		observability.NewPrinter(os.Stdout).PrintParagraphs(&result)
		return nil
	}
	for _, p := range result.Paragraphs {
		_, _ = fmt.Fprintf(os.Stdout, "[%s]\n%s\n\n", p.Type, p.Text)
	}
	return nil
}

func runGenerateKeywords(_ *cobra.Command, _ []string) error {
	content, err := generateInputContent()
	if err != nil {
		return err
	}

	agent, _, err := loadAssistant()
	if err != nil {
		return err
	}

	result := agent.GenerateKeywords(context.Background(), generateTitle, content, generateCategory)

	if generateJSON {
		return emitResult(result)
	}
	if !result.Success {
		return fmt.Errorf("%s", result.Message)
	}
	if generateVerbose {
		observability.NewPrinter(os.Stdout).PrintKeywords(&result)
		return nil
	}
	_, _ = fmt.Fprintf(os.Stdout, "Keywords: %v\nTags: %v\nSEO title: %s\nMeta description: %s\n",
		result.Keywords, result.Tags, result.SEOTitle, result.MetaDescription)
	return nil
}

func runGenerateTopics(_ *cobra.Command, _ []string) error {
	agent, _, err := loadAssistant()
	if err != nil {
		return err
	}

	result := agent.GenerateTopicIdeas(context.Background(), generateCategory)

	if generateJSON {
		return emitResult(result)
	}
	if generateVerbose {
		observability.NewPrinter(os.Stdout).PrintTopics(&result)
		return nil
	}
	for _, topic := range result.Topics {
		_, _ = fmt.Fprintf(os.Stdout, "- %s\n", topic)
	}
	return nil
}

func runGenerateExcerpt(_ *cobra.Command, _ []string) error {
	content, err := generateInputContent()
	if err != nil {
		return err
	}

	agent, _, err := loadAssistant()
	if err != nil {
		return err
	}

	result := agent.GenerateExcerpt(context.Background(), content, generateMaxLength)

	if generateJSON {
		return emitResult(result)
	}
	if !result.Success {
		return fmt.Errorf("%s", result.Message)
	}
	_, _ = fmt.Fprintln(os.Stdout, result.Excerpt)
	return nil
}

func runGenerateImprove(_ *cobra.Command, _ []string) error {
	content, err := generateInputContent()
	if err != nil {
		return err
	}

	agent, _, err := loadAssistant()
	if err != nil {
		return err
	}

	result := agent.ImproveContent(context.Background(), content)

	if generateJSON {
		return emitResult(result)
	}
	if !result.Success {
		return fmt.Errorf("%s", result.Message)
	}
	_, _ = fmt.Fprintln(os.Stdout, result.ImprovedContent)
	if len(result.ChangesMade) > 0 {
		_, _ = fmt.Fprintln(os.Stdout, "\nChanges:")
		for _, change := range result.ChangesMade {
			_, _ = fmt.Fprintf(os.Stdout, "- %s\n", change)
		}
	}
	return nil
}

func runGenerateGrammar(_ *cobra.Command, _ []string) error {
	content, err := generateInputContent()
	if err != nil {
		return err
	}

	agent, _, err := loadAssistant()
	if err != nil {
		return err
	}

	result := agent.CheckGrammar(context.Background(), content)

	if generateJSON {
		return emitResult(result)
	}
	if !result.Success {
		return fmt.Errorf("%s", result.Message)
	}
	if generateVerbose {
		observability.NewPrinter(os.Stdout).PrintGrammar(&result)
		return nil
	}
	_, _ = fmt.Fprintln(os.Stdout, result.Summary)
	for _, issue := range result.Errors {
		_, _ = fmt.Fprintf(os.Stdout, "- %q: %s", issue.Text, issue.Error)
		if issue.Suggestion != "" {
			_, _ = fmt.Fprintf(os.Stdout, " (suggest: %s)", issue.Suggestion)
		}
		_, _ = fmt.Fprintln(os.Stdout)
	}
	return nil
}

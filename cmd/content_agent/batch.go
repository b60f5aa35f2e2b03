package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// batchConcurrency bounds simultaneous analyses so provider rate limits hold.
const batchConcurrency = 4

var batchAnalyzeCmd = &cobra.Command{
	Use:   "batch-analyze",
	Short: "Analyze every post file in a directory",
	Long:  "Analyze every .txt and .md file in a directory for content policy violations, running analyses concurrently. The filename (without extension) is used as the post title.",
	RunE:  runBatchAnalyze,
}

var (
	batchDir   string
	batchUseAI bool
	batchJSON  bool
)

// batchEntry pairs a file with its analysis outcome for reporting.
type batchEntry struct {
	File       string `json:"file"`
	Severity   string `json:"severity"`
	Violations int    `json:"violations"`
	IsClean    bool   `json:"is_clean"`
}

func init() {
	batchAnalyzeCmd.Flags().StringVarP(&batchDir, "dir", "d", "", "Directory of post files to analyze (required)")
	batchAnalyzeCmd.Flags().BoolVar(&batchUseAI, "ai", false, "Augment rule analysis with AI analysis")
	batchAnalyzeCmd.Flags().BoolVar(&batchJSON, "json", false, "Emit results as JSON")

	rootCmd.AddCommand(batchAnalyzeCmd)
}

func runBatchAnalyze(_ *cobra.Command, _ []string) error {
	if batchDir == "" {
		return fmt.Errorf("must provide --dir")
	}

	files, err := collectPostFiles(batchDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .txt or .md files found in %s", batchDir)
	}

	agent, _, err := loadAssistant()
	if err != nil {
		return err
	}

	var (
		mu      sync.Mutex
		entries []batchEntry
	)

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(batchConcurrency)

	for _, file := range files {
		file := file
		g.Go(func() error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}

			title := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
			report := agent.AnalyzeForViolations(ctx, title, string(data), batchUseAI)

			mu.Lock()
			entries = append(entries, batchEntry{
				File:       file,
				Severity:   string(report.Severity),
				Violations: len(report.Violations),
				IsClean:    report.IsClean,
			})
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].File < entries[j].File })

	if batchJSON {
		jsonBytes, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}

	flagged := 0
	for _, entry := range entries {
		status := "clean"
		if !entry.IsClean {
			status = fmt.Sprintf("%s (%d violations)", entry.Severity, entry.Violations)
			flagged++
		}
		_, _ = fmt.Fprintf(os.Stdout, "%-50s %s\n", entry.File, status)
	}
	_, _ = fmt.Fprintf(os.Stdout, "\nAnalyzed %d files, %d flagged\n", len(entries), flagged)

	return nil
}

// collectPostFiles returns the .txt and .md files directly inside dir.
func collectPostFiles(dir string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".txt" || ext == ".md" {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/jonathan/resume-analyzer/internal/suggest"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume-file>",
	Short: "Analyze a resume file and print the ATS report",
	Long:  "Analyze a resume document (PDF, DOCX, HTML, or plain text), extract its facts, score it, and print the full analysis as JSON.",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

var (
	analyzeSkillsFile string
	analyzeVerbose    bool
	analyzeSuggest    bool
	analyzeAPIKey     string
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeSkillsFile, "skills", "", "Path to a JSON skill vocabulary file (overrides SKILLS_FILE env var)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a human-readable report instead of raw JSON")
	analyzeCmd.Flags().BoolVar(&analyzeSuggest, "suggest", false, "Also request AI improvement suggestions (needs GEMINI_API_KEY)")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	vocab, err := loadVocabulary()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: skill vocabulary not loaded, using built-in list: %v\n", err)
	}

	analyzer := pipeline.New(pipeline.Options{Vocabulary: vocab})
	result := analyzer.Analyze(filepath.Base(path), data)

	if analyzeVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintAll(result)
	} else {
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal analysis: %w", err)
		}
		fmt.Println(string(jsonBytes))
	}

	if analyzeSuggest {
		apiKey := analyzeAPIKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		advisor := suggest.NewAdvisor(apiKey, os.Getenv("GEMINI_MODEL"))
		text := analyzer.ExtractText(filepath.Base(path), data)
		fmt.Println()
		fmt.Println(advisor.Suggest(cmd.Context(), text))
	}

	return nil
}

// loadVocabulary resolves the skill vocabulary from the --skills flag or
// the SKILLS_FILE environment variable, falling back to the built-in list.
func loadVocabulary() (*extraction.Vocabulary, error) {
	path := analyzeSkillsFile
	if path == "" {
		path = os.Getenv("SKILLS_FILE")
	}
	if path == "" {
		return extraction.DefaultVocabulary(), nil
	}
	return extraction.LoadVocabulary(path)
}

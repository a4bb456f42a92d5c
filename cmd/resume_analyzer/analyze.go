package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume file",
	Long: `Analyze a resume file (.pdf, .docx or .txt), optionally against a job description, and print the scored report.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAnalyze,
}

var (
	analyzeConfigPath string
	analyzeFile       string
	analyzeJob        string
	analyzeJobFile    string
	analyzeJobURL     string
	analyzeJSON       bool
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to resume file (required via flag or config)")
	analyzeCmd.Flags().StringVar(&analyzeJob, "job", "", "Job description text")
	analyzeCmd.Flags().StringVar(&analyzeJobFile, "job-file", "", "Path to job description text file")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL of a job posting to fetch")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the full report as JSON")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print the full formatted report")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	// Step 1: Load config file if provided
	var cfg config.File
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadFile(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("file") {
		cfg.ResumeFile = analyzeFile
	}
	if cmd.Flags().Changed("job-file") {
		cfg.JobFile = analyzeJobFile
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = analyzeJobURL
	}

	// Step 3: Validate required fields after merging
	if cfg.ResumeFile == "" {
		return fmt.Errorf("--file is required (via flag or config)")
	}
	jobSources := 0
	for _, v := range []string{analyzeJob, cfg.JobFile, cfg.JobURL} {
		if v != "" {
			jobSources++
		}
	}
	if jobSources > 1 {
		return fmt.Errorf("--job, --job-file and --job-url are mutually exclusive")
	}

	data, err := os.ReadFile(cfg.ResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	text, err := extraction.Text(cfg.ResumeFile, data)
	if err != nil {
		return fmt.Errorf("failed to extract resume text: %w", err)
	}

	jobDescription, err := resolveJobDescription(analyzeJob, cfg.JobFile, cfg.JobURL)
	if err != nil {
		return err
	}

	report := analysis.Analyze(text, cfg.ResumeFile, jobDescription)

	if analyzeJSON {
		jsonBytes, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	if analyzeVerbose {
		printer.PrintReport(report)
		return nil
	}
	printer.PrintSummary(report)
	printer.PrintFeedback(report)
	return nil
}

// resolveJobDescription returns the job description from whichever source
// was provided, or "" when none was.
func resolveJobDescription(job, jobFile, jobURL string) (string, error) {
	switch {
	case job != "":
		return job, nil
	case jobFile != "":
		content, err := os.ReadFile(jobFile)
		if err != nil {
			return "", fmt.Errorf("failed to read job file: %w", err)
		}
		return string(content), nil
	case jobURL != "":
		result, err := fetch.JobPosting(context.Background(), jobURL, nil)
		if err != nil {
			return "", fmt.Errorf("failed to fetch job posting: %w", err)
		}
		return result.Text, nil
	default:
		return "", nil
	}
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// File represents CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type File struct {
	// Paths
	ResumeFile string `json:"file,omitempty"`     // Path to resume file
	JobFile    string `json:"job_file,omitempty"` // Path to job description text file
	JobURL     string `json:"job_url,omitempty"`  // URL to fetch job posting from

	// Server
	Port        int    `json:"port,omitempty"`         // HTTP port for serve
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Logging
	LogLevel  string `json:"log_level,omitempty"`  // zerolog level name
	LogFormat string `json:"log_format,omitempty"` // json or pretty
}

// LoadFile loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadFile(path string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg File
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are not checked here; CLI flag validation handles those
// after merging.
func (c *File) Validate() error {
	if c.JobFile != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job_file' and 'job_url' are mutually exclusive")
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535")
	}

	if c.LogFormat != "" && c.LogFormat != "json" && c.LogFormat != "pretty" {
		return fmt.Errorf("config error: 'log_format' must be \"json\" or \"pretty\"")
	}

	// Validate file paths exist (if specified)
	if c.ResumeFile != "" {
		if _, err := os.Stat(c.ResumeFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.ResumeFile)
		}
	}

	if c.JobFile != "" {
		if _, err := os.Stat(c.JobFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.JobFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new File with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *File) MergeWithDefaults(defaults File) File {
	result := *c

	if result.ResumeFile == "" {
		result.ResumeFile = defaults.ResumeFile
	}
	if result.JobFile == "" {
		result.JobFile = defaults.JobFile
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	if result.Port == 0 {
		result.Port = defaults.Port
	}

	return result
}

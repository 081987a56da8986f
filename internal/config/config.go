// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/skillmatch/internal/scoring"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Jobs    string `json:"jobs,omitempty"`    // Path to jobs CSV file
	Resumes string `json:"resumes,omitempty"` // Path to resumes CSV file
	Lexicon string `json:"lexicon,omitempty"` // Path to custom skill lexicon JSON (empty = built-in)
	Output  string `json:"output,omitempty"`  // Path to write match results JSON

	// Matching
	TopK     int     `json:"top_k,omitempty"`     // Matches returned per query
	MinScore float64 `json:"min_score,omitempty"` // Score threshold for threshold queries (0.0-1.0)
	Variant  string  `json:"variant,omitempty"`   // Scoring variant: "weighted" or "cosine"
	UseTFIDF bool    `json:"use_tfidf,omitempty"` // Reweight skills by corpus-wide IDF

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
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

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.TopK < 0 {
		return fmt.Errorf("config error: 'top_k' must be non-negative")
	}
	if c.MinScore < 0 || c.MinScore > 1 {
		return fmt.Errorf("config error: 'min_score' must be between 0.0 and 1.0")
	}

	if c.Variant != "" {
		switch scoring.Variant(c.Variant) {
		case scoring.VariantWeighted, scoring.VariantCosine:
		default:
			return fmt.Errorf("config error: unknown 'variant' %q", c.Variant)
		}
	}

	// Validate file paths exist (if specified)
	if c.Jobs != "" {
		if _, err := os.Stat(c.Jobs); os.IsNotExist(err) {
			return fmt.Errorf("config error: jobs file not found: %s", c.Jobs)
		}
	}
	if c.Resumes != "" {
		if _, err := os.Stat(c.Resumes); os.IsNotExist(err) {
			return fmt.Errorf("config error: resumes file not found: %s", c.Resumes)
		}
	}
	if c.Lexicon != "" {
		if _, err := os.Stat(c.Lexicon); os.IsNotExist(err) {
			return fmt.Errorf("config error: lexicon file not found: %s", c.Lexicon)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Jobs == "" {
		result.Jobs = defaults.Jobs
	}
	if result.Resumes == "" {
		result.Resumes = defaults.Resumes
	}
	if result.Lexicon == "" {
		result.Lexicon = defaults.Lexicon
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Variant == "" {
		if defaults.Variant != "" {
			result.Variant = defaults.Variant
		} else {
			result.Variant = string(scoring.VariantWeighted)
		}
	}

	// Int fields: use default if zero
	if result.TopK == 0 {
		if defaults.TopK > 0 {
			result.TopK = defaults.TopK
		} else {
			result.TopK = 5 // Default to 5 matches per query
		}
	}

	// Float fields
	if result.MinScore == 0 {
		result.MinScore = defaults.MinScore
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

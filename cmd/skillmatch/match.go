// Package main implements the skillmatch CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/skillmatch/internal/config"
	"github.com/jonathan/skillmatch/internal/matching"
	"github.com/jonathan/skillmatch/internal/observability"
	"github.com/jonathan/skillmatch/internal/schemas"
	"github.com/jonathan/skillmatch/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank matches for one resume or job",
	Long:  "Loads the job and resume corpora, scores every candidate pair for the target document, and writes the top-K results as a MatchSet JSON sorted by score.",
	RunE:  runMatch,
}

var (
	matchConfig   string
	matchJobs     string
	matchResumes  string
	matchLexicon  string
	matchResumeID int64
	matchJobID    int64
	matchTopK     int
	matchMinScore float64
	matchVariant  string
	matchTFIDF    bool
	matchOutput   string
	matchVerbose  bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchConfig, "config", "c", "", "Path to JSON config file")
	matchCmd.Flags().StringVarP(&matchJobs, "jobs", "j", "", "Path to jobs CSV file")
	matchCmd.Flags().StringVarP(&matchResumes, "resumes", "r", "", "Path to resumes CSV file")
	matchCmd.Flags().StringVarP(&matchLexicon, "lexicon", "l", "", "Path to custom skill lexicon JSON (default: built-in)")
	matchCmd.Flags().Int64Var(&matchResumeID, "resume-id", 0, "Resume id to find jobs for")
	matchCmd.Flags().Int64Var(&matchJobID, "job-id", 0, "Job id to find resumes for")
	matchCmd.Flags().IntVarP(&matchTopK, "top-k", "k", 0, "Number of matches to return (default 5)")
	matchCmd.Flags().Float64Var(&matchMinScore, "min-score", 0, "Only return matches scoring at least this (0.0-1.0)")
	matchCmd.Flags().StringVar(&matchVariant, "variant", "", "Scoring variant: weighted or cosine (default weighted)")
	matchCmd.Flags().BoolVar(&matchTFIDF, "tfidf", false, "Reweight skills by corpus-wide inverse document frequency")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output MatchSet JSON file (default: stdout)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print detailed progress")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(matchConfig, config.Config{
		Jobs:     matchJobs,
		Resumes:  matchResumes,
		Lexicon:  matchLexicon,
		TopK:     matchTopK,
		MinScore: matchMinScore,
		Variant:  matchVariant,
		UseTFIDF: matchTFIDF,
		Verbose:  matchVerbose,
		Output:   matchOutput,
	})
	if err != nil {
		return err
	}
	if cfg.Jobs == "" || cfg.Resumes == "" {
		return fmt.Errorf("both --jobs and --resumes are required (via flags or config)")
	}
	if (matchResumeID == 0) == (matchJobID == 0) {
		return fmt.Errorf("exactly one of --resume-id or --job-id is required")
	}

	lex, err := loadLexicon(cfg.Lexicon)
	if err != nil {
		return err
	}
	jobs, resumes, err := loadCorpora(cfg.Jobs, cfg.Resumes, lex)
	if err != nil {
		return err
	}
	engine, err := buildEngine(cfg, jobs, resumes)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stderr)
	if cfg.Verbose {
		printer.PrintLexiconSummary(lex)
		printer.PrintCorpusSummary("jobs", jobs)
		printer.PrintCorpusSummary("resumes", resumes)
	}

	matcher := matching.New(jobs, resumes, engine)

	set := types.MatchSet{
		RunID:   uuid.New().String(),
		Variant: cfg.Variant,
		TopK:    cfg.TopK,
	}
	switch {
	case matchResumeID != 0:
		set.Side = "resume"
		set.TargetID = matchResumeID
		if cfg.MinScore > 0 {
			set.Results, err = matcher.FindMatchesWithThreshold(matchResumeID, cfg.MinScore, cfg.TopK)
		} else {
			set.Results, err = matcher.FindMatches(matchResumeID, cfg.TopK)
		}
	default:
		set.Side = "job"
		set.TargetID = matchJobID
		set.Results, err = matcher.FindMatchesForJob(matchJobID, cfg.TopK)
	}
	if err != nil {
		return err
	}

	jsonOutput, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal match results to JSON: %w", err)
	}

	// Output validation is a safety check, not a requirement
	if err := schemas.ValidateMatchSet(string(jsonOutput)); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
	}

	if cfg.Verbose {
		printer.PrintMatchSet(&set, lex)
	}

	if cfg.Output == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonOutput))
		return nil
	}

	outputDir := filepath.Dir(cfg.Output)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(cfg.Output, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write match results to %s: %w", cfg.Output, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Wrote %d matches to %s\n", len(set.Results), cfg.Output)
	return nil
}

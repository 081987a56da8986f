// Package main implements the skillmatch CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillmatch/internal/config"
	"github.com/jonathan/skillmatch/internal/matching"
	"github.com/jonathan/skillmatch/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a Markdown matching report",
	Long:  "Scores every resume against the job corpus and writes a Markdown report with the top-K jobs per resume.",
	RunE:  runReport,
}

var (
	reportConfig  string
	reportJobs    string
	reportResumes string
	reportLexicon string
	reportTopK    int
	reportVariant string
	reportTFIDF   bool
	reportOutput  string
)

func init() {
	reportCmd.Flags().StringVarP(&reportConfig, "config", "c", "", "Path to JSON config file")
	reportCmd.Flags().StringVarP(&reportJobs, "jobs", "j", "", "Path to jobs CSV file")
	reportCmd.Flags().StringVarP(&reportResumes, "resumes", "r", "", "Path to resumes CSV file")
	reportCmd.Flags().StringVarP(&reportLexicon, "lexicon", "l", "", "Path to custom skill lexicon JSON (default: built-in)")
	reportCmd.Flags().IntVarP(&reportTopK, "top-k", "k", 0, "Jobs listed per resume (default 5)")
	reportCmd.Flags().StringVar(&reportVariant, "variant", "", "Scoring variant: weighted or cosine (default weighted)")
	reportCmd.Flags().BoolVar(&reportTFIDF, "tfidf", false, "Reweight skills by corpus-wide inverse document frequency")
	reportCmd.Flags().StringVarP(&reportOutput, "out", "o", "", "Path to output Markdown file (default: stdout)")

	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(reportConfig, config.Config{
		Jobs:     reportJobs,
		Resumes:  reportResumes,
		Lexicon:  reportLexicon,
		TopK:     reportTopK,
		Variant:  reportVariant,
		UseTFIDF: reportTFIDF,
		Output:   reportOutput,
	})
	if err != nil {
		return err
	}
	if cfg.Jobs == "" || cfg.Resumes == "" {
		return fmt.Errorf("both --jobs and --resumes are required (via flags or config)")
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

	matcher := matching.New(jobs, resumes, engine)
	out, err := report.Generate(matcher, lex, cfg.Variant, cfg.TopK)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	if cfg.Output == "" {
		_, _ = fmt.Fprint(os.Stdout, out)
		return nil
	}

	outputDir := filepath.Dir(cfg.Output)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(cfg.Output, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", cfg.Output, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Wrote report for %d resumes to %s\n", resumes.Count(), cfg.Output)
	return nil
}

// Package main implements the skillmatch CLI.
package main

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/skillmatch/internal/config"
	"github.com/jonathan/skillmatch/internal/corpus"
	"github.com/jonathan/skillmatch/internal/lexicon"
	"github.com/jonathan/skillmatch/internal/scoring"
)

// resolveConfig merges flag values with an optional config file and applies
// defaults. Flags win over file values; both win over built-in defaults.
func resolveConfig(configPath string, flags config.Config) (config.Config, error) {
	defaults := config.Config{}
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		defaults = *fileCfg
	}

	merged := flags.MergeWithDefaults(defaults)
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// loadLexicon returns the lexicon at path, or the built-in vocabulary when
// path is empty.
func loadLexicon(path string) (*lexicon.Lexicon, error) {
	if path == "" {
		return lexicon.Default(), nil
	}
	return lexicon.Load(path)
}

// loadCorpora loads both CSV files concurrently; skill extraction dominates
// load time for large corpora, so the two sides run in parallel.
func loadCorpora(jobsPath, resumesPath string, lex *lexicon.Lexicon) (*corpus.Corpus, *corpus.Corpus, error) {
	var jobs, resumes *corpus.Corpus

	var g errgroup.Group
	g.Go(func() error {
		c, err := corpus.LoadCSVFile(jobsPath, lex)
		if err != nil {
			return fmt.Errorf("failed to load jobs: %w", err)
		}
		jobs = c
		return nil
	})
	g.Go(func() error {
		c, err := corpus.LoadCSVFile(resumesPath, lex)
		if err != nil {
			return fmt.Errorf("failed to load resumes: %w", err)
		}
		resumes = c
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return jobs, resumes, nil
}

// buildEngine constructs the scoring engine for the merged config,
// attaching corpus-wide IDF weights when requested.
func buildEngine(cfg config.Config, jobs, resumes *corpus.Corpus) (*scoring.Engine, error) {
	engine, err := scoring.NewEngine(scoring.Variant(cfg.Variant))
	if err != nil {
		return nil, err
	}
	if cfg.UseTFIDF {
		idf := scoring.ComputeIDF(jobs, resumes)
		engine.UseIDF(idf)
		scoring.AnnotateTFIDF(jobs, idf)
		scoring.AnnotateTFIDF(resumes, idf)
	}
	return engine, nil
}

// Package main implements the skillmatch CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillmatch/internal/corpus"
	"github.com/jonathan/skillmatch/internal/matching"
	"github.com/jonathan/skillmatch/internal/observability"
	"github.com/jonathan/skillmatch/internal/ranking"
	"github.com/jonathan/skillmatch/internal/types"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Find a document by id in a corpus CSV",
	Long:  "Loads one corpus CSV, sorts it by id, and locates the requested document with the selected search algorithm.",
	RunE:  runLookup,
}

var (
	lookupInput   string
	lookupLexicon string
	lookupID      int64
	lookupAlgo    string
	lookupVerbose bool
)

func init() {
	lookupCmd.Flags().StringVarP(&lookupInput, "input", "i", "", "Path to corpus CSV file (required)")
	lookupCmd.Flags().StringVarP(&lookupLexicon, "lexicon", "l", "", "Path to custom skill lexicon JSON (default: built-in)")
	lookupCmd.Flags().Int64Var(&lookupID, "id", 0, "Document id to look up (required)")
	lookupCmd.Flags().StringVar(&lookupAlgo, "algo", "binary", "Search algorithm: binary, interpolation, or linear")
	lookupCmd.Flags().BoolVarP(&lookupVerbose, "verbose", "v", false, "Print a formatted document summary instead of JSON")

	if err := lookupCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}
	if err := lookupCmd.MarkFlagRequired("id"); err != nil {
		panic(fmt.Sprintf("failed to mark id flag as required: %v", err))
	}

	rootCmd.AddCommand(lookupCmd)
}

func runLookup(_ *cobra.Command, _ []string) error {
	if lookupID <= 0 {
		return &matching.InvalidArgumentError{Name: "id", Message: "must be positive"}
	}

	lex, err := loadLexicon(lookupLexicon)
	if err != nil {
		return err
	}
	c, err := corpus.LoadCSVFile(lookupInput, lex)
	if err != nil {
		return err
	}

	doc, err := searchByID(c, lookupID, lookupAlgo)
	if err != nil {
		return err
	}

	if lookupVerbose {
		observability.NewPrinter(os.Stdout).PrintDocument(doc, lex)
		return nil
	}

	jsonOutput, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document to JSON: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(jsonOutput))
	return nil
}

// searchByID sorts the corpus by id and dispatches to the chosen algorithm.
// Linear search skips the sort since it does not need order.
func searchByID(c *corpus.Corpus, id int64, algo string) (*types.Document, error) {
	var (
		doc *types.Document
		ok  bool
	)
	switch algo {
	case "binary":
		ranking.SortByID(c)
		doc, ok = ranking.BinarySearch(c, id)
	case "interpolation":
		ranking.SortByID(c)
		doc, ok = ranking.InterpolationSearch(c, id)
	case "linear":
		doc, ok = ranking.LinearSearch(c, id)
	default:
		return nil, &matching.InvalidArgumentError{
			Name:    "algo",
			Message: fmt.Sprintf("unknown algorithm %q, want binary, interpolation, or linear", algo),
		}
	}
	if !ok {
		return nil, &matching.NotFoundError{Kind: "document", ID: id}
	}
	return doc, nil
}

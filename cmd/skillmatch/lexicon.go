// Package main implements the skillmatch CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillmatch/internal/schemas"
	"github.com/jonathan/skillmatch/internal/types"
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Inspect or validate a skill lexicon",
	Long:  "Prints the built-in skill lexicon as JSON, or validates a custom lexicon file against the lexicon schema.",
	RunE:  runLexicon,
}

var lexiconValidatePath string

func init() {
	lexiconCmd.Flags().StringVar(&lexiconValidatePath, "validate", "", "Path to a lexicon JSON file to validate")

	rootCmd.AddCommand(lexiconCmd)
}

func runLexicon(_ *cobra.Command, _ []string) error {
	if lexiconValidatePath != "" {
		content, err := os.ReadFile(lexiconValidatePath)
		if err != nil {
			return fmt.Errorf("failed to read lexicon file %s: %w", lexiconValidatePath, err)
		}
		if err := schemas.ValidateLexicon(string(content)); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "%s is a valid skill lexicon\n", lexiconValidatePath)
		return nil
	}

	lex, err := loadLexicon("")
	if err != nil {
		return err
	}

	out := struct {
		Skills []types.Skill `json:"skills"`
	}{Skills: lex.Skills()}

	jsonOutput, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal lexicon to JSON: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(jsonOutput))
	return nil
}

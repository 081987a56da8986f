// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/skillmatch/internal/corpus"
	"github.com/jonathan/skillmatch/internal/lexicon"
	"github.com/jonathan/skillmatch/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintLexiconSummary outputs the size of the loaded skill lexicon and a
// sample of its entries.
func (p *Printer) PrintLexiconSummary(lex *lexicon.Lexicon) {
	if lex == nil || lex.Size() == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skills in lexicon: %d\n\n", lex.Size()))

	count := min(lex.Size(), maxItemsToShow)
	for i := 0; i < count; i++ {
		if s, ok := lex.Skill(i); ok {
			sb.WriteString(fmt.Sprintf("  • %-24s %.2f\n", s.Name, s.Weight))
		}
	}
	if lex.Size() > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more", lex.Size()-maxItemsToShow))
	}

	p.printBox("SKILL LEXICON", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCorpusSummary outputs the document count and per-document skill
// extraction stats for one corpus.
func (p *Printer) PrintCorpusSummary(name string, c *corpus.Corpus) {
	if c == nil || c.Count() == 0 {
		return
	}

	totalSkills := 0
	withoutSkills := 0
	for i := 0; i < c.Count(); i++ {
		n := len(c.Store().At(i).Skills)
		totalSkills += n
		if n == 0 {
			withoutSkills++
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Documents:         %d\n", c.Count()))
	sb.WriteString(fmt.Sprintf("Skills extracted:  %d\n", totalSkills))
	sb.WriteString(fmt.Sprintf("Avg per document:  %.1f\n", float64(totalSkills)/float64(c.Count())))
	if withoutSkills > 0 {
		sb.WriteString(fmt.Sprintf("Without skills:    %d", withoutSkills))
	}

	p.printBox(strings.ToUpper(name)+" CORPUS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchSet outputs the ranked results of one query with subscores and
// resolved skill names.
func (p *Printer) PrintMatchSet(set *types.MatchSet, lex *lexicon.Lexicon) {
	if set == nil || len(set.Results) == 0 {
		p.printBox("MATCH RESULTS", "No matches found")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Query %s %d, variant %s\n\n", set.Side, set.TargetID, set.Variant))

	count := min(len(set.Results), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := set.Results[i]
		counterpart := r.JobID
		if set.Side == "job" {
			counterpart = r.ResumeID
		}
		sb.WriteString(fmt.Sprintf("#%d  id %d\n", i+1, counterpart))
		sb.WriteString(fmt.Sprintf("    Score: %.3f (ratio %.2f, coverage %.2f)\n",
			r.OverallScore, r.SkillMatchRatio, r.CoverageRatio))
		if len(r.CommonSkills) > 0 && lex != nil {
			names := make([]string, 0, len(r.CommonSkills))
			for _, idx := range r.CommonSkills {
				if s, ok := lex.Skill(idx); ok {
					names = append(names, s.Name)
				}
			}
			skills := strings.Join(names, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(set.Results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more results", len(set.Results)-maxItemsToShow))
	}

	p.printBox("MATCH RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDocument outputs one document with its extracted skills.
func (p *Printer) PrintDocument(doc *types.Document, lex *lexicon.Lexicon) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ID:     %d\n", doc.ID))

	text := doc.Text
	if len(text) > 50 {
		text = text[:47] + "..."
	}
	sb.WriteString(fmt.Sprintf("Text:   %s\n", text))

	if len(doc.Skills) > 0 && lex != nil {
		sb.WriteString("Skills:\n")
		count := min(len(doc.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			ref := doc.Skills[i]
			if s, ok := lex.Skill(ref.Index); ok {
				sb.WriteString(fmt.Sprintf("  • %-24s %.2f\n", s.Name, ref.Weight))
			}
		}
		if len(doc.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Skills)-maxItemsToShow))
		}
	}

	p.printBox("DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

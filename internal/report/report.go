package report

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/skillmatch/internal/lexicon"
	"github.com/jonathan/skillmatch/internal/matching"
)

// defaultTemplate is the built-in Markdown layout. Callers can swap it via
// GenerateWithTemplate when they need a different shape.
const defaultTemplate = `# Matching Report

- Run: {{.RunID}}
- Generated: {{.Generated}}
- Variant: {{.Variant}}
- Jobs: {{.JobCount}} / Resumes: {{.ResumeCount}}

{{range .Sections}}## Resume {{.ResumeID}}

| Rank | Job | Score | Ratio | Coverage | Common Skills |
|-----:|----:|------:|------:|---------:|---------------|
{{range .Rows}}| {{.Rank}} | {{.JobID}} | {{printf "%.3f" .Score}} | {{printf "%.2f" .Ratio}} | {{printf "%.2f" .Coverage}} | {{.Skills}} |
{{end}}
{{end}}`

// TemplateData is the root structure passed to the report template
type TemplateData struct {
	RunID       string
	Generated   string
	Variant     string
	JobCount    int
	ResumeCount int
	Sections    []ResumeSection
}

// ResumeSection holds the ranked matches for one resume
type ResumeSection struct {
	ResumeID int64
	Rows     []MatchRow
}

// MatchRow is one ranked job in a resume's section
type MatchRow struct {
	Rank     int
	JobID    int64
	Score    float64
	Ratio    float64
	Coverage float64
	Skills   string
}

// Generate renders the default Markdown report: the top k jobs for every
// resume in corpus order.
func Generate(m *matching.Matcher, lex *lexicon.Lexicon, variant string, k int) (string, error) {
	return GenerateWithTemplate(m, lex, variant, k, defaultTemplate)
}

// GenerateWithTemplate renders the report through a caller-supplied
// template using the same data structure as the default layout.
func GenerateWithTemplate(m *matching.Matcher, lex *lexicon.Lexicon, variant string, k int, tmplText string) (string, error) {
	jobs, resumes := m.Jobs(), m.Resumes()
	if jobs.Count() == 0 {
		return "", &matching.EmptyCorpusError{Kind: "job"}
	}
	if resumes.Count() == 0 {
		return "", &matching.EmptyCorpusError{Kind: "resume"}
	}

	tmpl, err := template.New("report").Parse(tmplText)
	if err != nil {
		return "", &TemplateError{Message: "failed to parse report template", Cause: err}
	}

	data := TemplateData{
		RunID:       uuid.New().String(),
		Generated:   time.Now().UTC().Format(time.RFC3339),
		Variant:     variant,
		JobCount:    jobs.Count(),
		ResumeCount: resumes.Count(),
	}

	for i := 0; i < resumes.Count(); i++ {
		resume := resumes.Store().At(i)
		results, err := m.FindMatches(resume.ID, k)
		if err != nil {
			return "", fmt.Errorf("failed to match resume %d: %w", resume.ID, err)
		}

		section := ResumeSection{ResumeID: resume.ID}
		for rank, r := range results {
			section.Rows = append(section.Rows, MatchRow{
				Rank:     rank + 1,
				JobID:    r.JobID,
				Score:    r.OverallScore,
				Ratio:    r.SkillMatchRatio,
				Coverage: r.CoverageRatio,
				Skills:   skillNames(lex, r.CommonSkills),
			})
		}
		data.Sections = append(data.Sections, section)
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", &TemplateError{Message: "failed to execute report template", Cause: err}
	}
	return out.String(), nil
}

func skillNames(lex *lexicon.Lexicon, indices []int) string {
	if lex == nil || len(indices) == 0 {
		return "-"
	}
	names := make([]string, 0, len(indices))
	for _, idx := range indices {
		if s, ok := lex.Skill(idx); ok {
			names = append(names, s.Name)
		}
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

package report

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillmatch/internal/corpus"
	"github.com/jonathan/skillmatch/internal/lexicon"
	"github.com/jonathan/skillmatch/internal/matching"
	"github.com/jonathan/skillmatch/internal/scoring"
	"github.com/jonathan/skillmatch/internal/types"
)

func reportFixture(t *testing.T) (*matching.Matcher, *lexicon.Lexicon) {
	t.Helper()

	lex := lexicon.New([]types.Skill{
		{Name: "go", Weight: 0.9},
		{Name: "python", Weight: 1.0},
	})

	jobs := corpus.New()
	require.NoError(t, jobs.Insert(types.Document{
		ID: 1, Text: "go engineer",
		Skills: []types.SkillRef{{Index: 0, Weight: 0.9}},
	}))
	require.NoError(t, jobs.Insert(types.Document{
		ID: 2, Text: "python engineer",
		Skills: []types.SkillRef{{Index: 1, Weight: 1.0}},
	}))

	resumes := corpus.New()
	require.NoError(t, resumes.Insert(types.Document{
		ID: 10, Text: "go developer",
		Skills: []types.SkillRef{{Index: 0, Weight: 0.9}},
	}))

	engine, err := scoring.NewEngine(scoring.VariantWeighted)
	require.NoError(t, err)
	return matching.New(jobs, resumes, engine), lex
}

func TestGenerate(t *testing.T) {
	m, lex := reportFixture(t)

	out, err := Generate(m, lex, "weighted", 5)
	require.NoError(t, err)

	assert.Contains(t, out, "# Matching Report")
	assert.Contains(t, out, "## Resume 10")
	assert.Contains(t, out, "Variant: weighted")
	assert.Contains(t, out, "Jobs: 2 / Resumes: 1")
	assert.Contains(t, out, "go")

	// The run id line carries a valid UUID.
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "- Run: ") {
			_, err := uuid.Parse(strings.TrimPrefix(line, "- Run: "))
			assert.NoError(t, err)
			return
		}
	}
	t.Fatal("run id line not found")
}

func TestGenerate_RanksBestJobFirst(t *testing.T) {
	m, lex := reportFixture(t)

	out, err := Generate(m, lex, "weighted", 5)
	require.NoError(t, err)

	// Job 1 shares a skill with the resume, job 2 does not.
	first := strings.Index(out, "| 1 | 1 |")
	require.GreaterOrEqual(t, first, 0, "expected job 1 at rank 1:\n%s", out)
}

func TestGenerate_EmptyCorpus(t *testing.T) {
	engine, err := scoring.NewEngine(scoring.VariantWeighted)
	require.NoError(t, err)
	lex := lexicon.New([]types.Skill{{Name: "go", Weight: 0.9}})

	resumes := corpus.New()
	require.NoError(t, resumes.Insert(types.Document{ID: 10}))

	_, err = Generate(matching.New(corpus.New(), resumes, engine), lex, "weighted", 5)
	var empty *matching.EmptyCorpusError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, "job", empty.Kind)

	jobs := corpus.New()
	require.NoError(t, jobs.Insert(types.Document{ID: 1}))

	_, err = Generate(matching.New(jobs, corpus.New(), engine), lex, "weighted", 5)
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, "resume", empty.Kind)
}

func TestGenerateWithTemplate_BadTemplate(t *testing.T) {
	m, lex := reportFixture(t)

	_, err := GenerateWithTemplate(m, lex, "weighted", 5, "{{.Unclosed")
	var te *TemplateError
	require.ErrorAs(t, err, &te)
}

func TestGenerateWithTemplate_CustomLayout(t *testing.T) {
	m, lex := reportFixture(t)

	out, err := GenerateWithTemplate(m, lex, "weighted", 5,
		"resumes={{.ResumeCount}} jobs={{.JobCount}}")
	require.NoError(t, err)
	assert.Equal(t, "resumes=1 jobs=2", out)
}

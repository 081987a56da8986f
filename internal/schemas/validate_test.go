package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillmatch/internal/types"
)

func validMatchSet() types.MatchSet {
	return types.MatchSet{
		RunID:    "550e8400-e29b-41d4-a716-446655440000",
		TargetID: 10,
		Side:     "resume",
		Variant:  "weighted",
		TopK:     5,
		Results: []types.MatchResult{
			{
				JobID:           1,
				ResumeID:        10,
				OverallScore:    0.75,
				Cosine:          0.9,
				SkillMatchRatio: 0.5,
				CoverageRatio:   1.0,
				CommonSkills:    []int{0, 3},
			},
		},
	}
}

func TestValidateMatchSet_Valid(t *testing.T) {
	data, err := json.Marshal(validMatchSet())
	require.NoError(t, err)

	assert.NoError(t, ValidateMatchSet(string(data)))
}

func TestValidateMatchSet_EmptyResults(t *testing.T) {
	set := validMatchSet()
	set.Results = []types.MatchResult{}
	data, err := json.Marshal(set)
	require.NoError(t, err)

	assert.NoError(t, ValidateMatchSet(string(data)))
}

func TestValidateMatchSet_ScoreOutOfRange(t *testing.T) {
	set := validMatchSet()
	set.Results[0].OverallScore = 1.5
	data, err := json.Marshal(set)
	require.NoError(t, err)

	err = ValidateMatchSet(string(data))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, ve.Errors[0].Field, "overall_score")
}

func TestValidateMatchSet_BadSide(t *testing.T) {
	set := validMatchSet()
	set.Side = "employer"
	data, err := json.Marshal(set)
	require.NoError(t, err)

	var ve *ValidationError
	require.ErrorAs(t, ValidateMatchSet(string(data)), &ve)
}

func TestValidateMatchSet_MissingRunID(t *testing.T) {
	doc := `{"target_id": 1, "side": "resume", "variant": "weighted", "top_k": 5, "results": []}`

	var ve *ValidationError
	require.ErrorAs(t, ValidateMatchSet(doc), &ve)
	require.NotEmpty(t, ve.Errors)
}

func TestValidateLexicon_Valid(t *testing.T) {
	doc := `{"skills": [{"name": "go", "weight": 0.9}, {"name": "python", "weight": 1.0}]}`

	assert.NoError(t, ValidateLexicon(doc))
}

func TestValidateLexicon_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty skills":   `{"skills": []}`,
		"zero weight":    `{"skills": [{"name": "go", "weight": 0}]}`,
		"weight above 1": `{"skills": [{"name": "go", "weight": 1.2}]}`,
		"blank name":     `{"skills": [{"name": "", "weight": 0.5}]}`,
		"missing skills": `{}`,
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			var ve *ValidationError
			require.ErrorAs(t, ValidateLexicon(doc), &ve)
		})
	}
}

func TestValidateLexicon_Malformed(t *testing.T) {
	err := ValidateLexicon(`{ not json }`)
	require.Error(t, err)

	var le *SchemaLoadError
	assert.ErrorAs(t, err, &le)
}

func TestValidateJSONFile(t *testing.T) {
	dir := t.TempDir()

	schemaPath := filepath.Join(dir, "lexicon.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(lexiconSchema), 0644))

	docPath := filepath.Join(dir, "lexicon.json")
	require.NoError(t, os.WriteFile(docPath, []byte(`{"skills": [{"name": "go", "weight": 0.9}]}`), 0644))

	assert.NoError(t, ValidateJSONFile(schemaPath, docPath))
}

func TestValidateJSONFile_MissingFiles(t *testing.T) {
	err := ValidateJSONFile("/nonexistent/schema.json", "/nonexistent/doc.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}

func TestEmbeddedSchemas_ValidJSON(t *testing.T) {
	for name, content := range map[string]string{
		"match_set.schema.json": matchSetSchema,
		"lexicon.schema.json":   lexiconSchema,
	} {
		t.Run(name, func(t *testing.T) {
			var v interface{}
			assert.NoError(t, json.Unmarshal([]byte(content), &v))
		})
	}
}

// Package scoring computes the multi-factor match score between a job and a
// resume: skill-overlap ratio, coverage ratio, cosine similarity over
// weighted skill vectors, and the combined capped score.
package scoring

import (
	"fmt"
	"math"
	"sort"

	"github.com/jonathan/skillmatch/internal/types"
)

// Variant selects the combination rule for the overall score. An engine is
// constructed with one variant and applies it to every pair it scores;
// mixing rules across calls would break score comparability.
type Variant string

const (
	// VariantWeighted combines base = 0.7*skillMatchRatio + 0.3*coverageRatio.
	VariantWeighted Variant = "weighted"
	// VariantCosine combines base = 0.4*skillMatchRatio + 0.3*coverageRatio
	// + 0.3*cosine.
	VariantCosine Variant = "cosine"
)

// Component weights per variant.
const (
	weightedRatioWeight    = 0.7
	weightedCoverageWeight = 0.3

	cosineRatioWeight    = 0.4
	cosineCoverageWeight = 0.3
	cosineCosineWeight   = 0.3

	// exactMatchBonusCap caps the bonus added for skills whose weights agree
	// exactly in both documents.
	exactMatchBonusCap = 0.2
)

// Engine scores (job, resume) pairs. When an IDF table is attached, skill
// weights are scaled by it before the cosine and exact-match computations.
type Engine struct {
	variant Variant
	idf     map[int]float64
}

// NewEngine returns an engine using the given combination rule.
func NewEngine(variant Variant) (*Engine, error) {
	switch variant {
	case VariantWeighted, VariantCosine:
		return &Engine{variant: variant}, nil
	default:
		return nil, fmt.Errorf("unknown scoring variant %q", variant)
	}
}

// Variant returns the combination rule this engine applies.
func (e *Engine) Variant() Variant { return e.variant }

// UseIDF attaches an inverse-document-frequency table; subsequent scores use
// TF-IDF weights (static weight scaled by idf) in the vector computations.
// Passing nil reverts to static lexicon weights.
func (e *Engine) UseIDF(idf map[int]float64) {
	e.idf = idf
}

// Score computes the full match result for one pair. A pair where either
// side has no skills, or where no skills are shared, scores 0.0 on every
// component; that is a defined outcome, not an error.
func (e *Engine) Score(job, resume *types.Document) types.MatchResult {
	result := types.MatchResult{JobID: job.ID, ResumeID: resume.ID}

	if len(job.Skills) == 0 || len(resume.Skills) == 0 {
		return result
	}

	resumeWeights := make(map[int]float64, len(resume.Skills))
	for _, ref := range resume.Skills {
		resumeWeights[ref.Index] = e.effectiveWeight(ref)
	}

	var common []int
	exact := 0
	for _, ref := range job.Skills {
		rw, ok := resumeWeights[ref.Index]
		if !ok {
			continue
		}
		common = append(common, ref.Index)
		if e.effectiveWeight(ref) == rw {
			exact++
		}
	}
	if len(common) == 0 {
		return result
	}
	sort.Ints(common)
	result.CommonSkills = common

	result.SkillMatchRatio = float64(len(common)) / float64(len(job.Skills))
	result.CoverageRatio = float64(len(common)) / float64(len(resume.Skills))
	result.Cosine = e.cosine(job, resumeWeights)

	var base float64
	switch e.variant {
	case VariantCosine:
		base = cosineRatioWeight*result.SkillMatchRatio +
			cosineCoverageWeight*result.CoverageRatio +
			cosineCosineWeight*result.Cosine
	default:
		base = weightedRatioWeight*result.SkillMatchRatio +
			weightedCoverageWeight*result.CoverageRatio
	}

	bonus := exactMatchBonusCap * float64(exact) / float64(len(job.Skills))
	if bonus > exactMatchBonusCap {
		bonus = exactMatchBonusCap
	}

	result.OverallScore = clamp01(base + bonus)
	return result
}

// cosine computes similarity between the sparse lexicon-dimension vectors of
// the two documents. Zero norms yield 0, never NaN.
func (e *Engine) cosine(job *types.Document, resumeWeights map[int]float64) float64 {
	var dot, jobNorm, resumeNorm float64

	for _, ref := range job.Skills {
		w := e.effectiveWeight(ref)
		jobNorm += w * w
		if rw, ok := resumeWeights[ref.Index]; ok {
			dot += w * rw
		}
	}
	for _, rw := range resumeWeights {
		resumeNorm += rw * rw
	}

	if jobNorm == 0 || resumeNorm == 0 {
		return 0
	}
	return dot / (math.Sqrt(jobNorm) * math.Sqrt(resumeNorm))
}

func (e *Engine) effectiveWeight(ref types.SkillRef) float64 {
	if e.idf == nil {
		return ref.Weight
	}
	return ref.Weight * e.idf[ref.Index]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

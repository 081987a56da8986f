// Package matching orchestrates ranked retrieval between the job and resume
// corpora: score every candidate pair, then keep the best k.
package matching

import (
	"github.com/jonathan/skillmatch/internal/corpus"
	"github.com/jonathan/skillmatch/internal/ranking"
	"github.com/jonathan/skillmatch/internal/scoring"
	"github.com/jonathan/skillmatch/internal/types"
)

// Matcher runs ranked matching between two corpora with one scoring engine.
type Matcher struct {
	jobs    *corpus.Corpus
	resumes *corpus.Corpus
	engine  *scoring.Engine
}

// New returns a matcher over the given corpora.
func New(jobs, resumes *corpus.Corpus, engine *scoring.Engine) *Matcher {
	return &Matcher{jobs: jobs, resumes: resumes, engine: engine}
}

// Jobs returns the job corpus this matcher queries.
func (m *Matcher) Jobs() *corpus.Corpus { return m.jobs }

// Resumes returns the resume corpus this matcher queries.
func (m *Matcher) Resumes() *corpus.Corpus { return m.resumes }

// FindMatches returns the top k jobs for one resume, ordered by descending
// score. An unknown resume id is a NotFoundError; a non-positive id is an
// InvalidArgumentError. k <= 0 or an empty job corpus yields an empty result
// list, not an error.
func (m *Matcher) FindMatches(resumeID int64, k int) ([]types.MatchResult, error) {
	resume, err := m.lookup(m.resumes, "resume", resumeID)
	if err != nil {
		return nil, err
	}
	results := m.scoreJobs(resume)
	return ranking.TopK(results, k), nil
}

// FindMatchesForJob is the reverse direction: the top k resumes for one job.
func (m *Matcher) FindMatchesForJob(jobID int64, k int) ([]types.MatchResult, error) {
	job, err := m.lookup(m.jobs, "job", jobID)
	if err != nil {
		return nil, err
	}
	results := make([]types.MatchResult, 0, m.resumes.Count())
	for i := 0; i < m.resumes.Count(); i++ {
		resume := m.resumes.Store().At(i)
		r := m.engine.Score(job, resume)
		resume.Score = r.OverallScore
		results = append(results, r)
	}
	return ranking.TopK(results, k), nil
}

// FindMatchesWithThreshold returns every job scoring at least minScore
// against the resume, best first, capped at maxResults. minScore must lie in
// [0, 1].
func (m *Matcher) FindMatchesWithThreshold(resumeID int64, minScore float64, maxResults int) ([]types.MatchResult, error) {
	if minScore < 0 || minScore > 1 {
		return nil, &InvalidArgumentError{Name: "minScore", Message: "must be in [0, 1]"}
	}
	resume, err := m.lookup(m.resumes, "resume", resumeID)
	if err != nil {
		return nil, err
	}

	scored := m.scoreJobs(resume)
	kept := scored[:0:0]
	for _, r := range scored {
		if r.OverallScore >= minScore {
			kept = append(kept, r)
		}
	}
	if maxResults <= 0 || maxResults > len(kept) {
		maxResults = len(kept)
	}
	return ranking.TopK(kept, maxResults), nil
}

// AllPairs scores the full cross product, one result row per (job, resume)
// pair, in corpus order. Used by the report generator, which needs the
// unfiltered score matrix.
func (m *Matcher) AllPairs() ([]types.MatchResult, error) {
	if m.jobs.Count() == 0 {
		return nil, &EmptyCorpusError{Kind: "job"}
	}
	if m.resumes.Count() == 0 {
		return nil, &EmptyCorpusError{Kind: "resume"}
	}

	results := make([]types.MatchResult, 0, m.jobs.Count()*m.resumes.Count())
	for i := 0; i < m.jobs.Count(); i++ {
		job := m.jobs.Store().At(i)
		for j := 0; j < m.resumes.Count(); j++ {
			results = append(results, m.engine.Score(job, m.resumes.Store().At(j)))
		}
	}
	return results, nil
}

// scoreJobs scores every job against the resume and records each job's score
// in its Score scratch field so the corpus can be re-sorted by relevance.
func (m *Matcher) scoreJobs(resume *types.Document) []types.MatchResult {
	results := make([]types.MatchResult, 0, m.jobs.Count())
	for i := 0; i < m.jobs.Count(); i++ {
		job := m.jobs.Store().At(i)
		r := m.engine.Score(job, resume)
		job.Score = r.OverallScore
		results = append(results, r)
	}
	return results
}

func (m *Matcher) lookup(c *corpus.Corpus, kind string, id int64) (*types.Document, error) {
	if id <= 0 {
		return nil, &InvalidArgumentError{Name: kind + " id", Message: "must be positive"}
	}
	doc, ok := c.GetByID(id)
	if !ok {
		return nil, &NotFoundError{Kind: kind, ID: id}
	}
	return doc, nil
}

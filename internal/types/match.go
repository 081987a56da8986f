package types

// MatchResult captures one scored (job, resume) pair. All subscores are
// returned alongside the overall score; callers never see the scalar alone.
type MatchResult struct {
	JobID           int64   `json:"job_id"`
	ResumeID        int64   `json:"resume_id"`
	OverallScore    float64 `json:"overall_score"`
	Cosine          float64 `json:"cosine"`
	SkillMatchRatio float64 `json:"skill_match_ratio"`
	CoverageRatio   float64 `json:"coverage_ratio"`
	CommonSkills    []int   `json:"common_skills"`
}

// MatchSet is the JSON artifact written by the match command: the ranked
// results for one query plus enough metadata to reproduce it.
type MatchSet struct {
	RunID    string        `json:"run_id"`
	TargetID int64         `json:"target_id"`
	Side     string        `json:"side"` // "resume" or "job"
	Variant  string        `json:"variant"`
	TopK     int           `json:"top_k"`
	Results  []MatchResult `json:"results"`
}

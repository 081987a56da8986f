package types

// Document is a job posting or a resume: one line of ingested text plus the
// skills extracted from it. Skills are computed once at ingestion and never
// mutated afterwards.
//
// Score and TFIDF are scratch fields recomputed per matching call; they carry
// no meaning outside the call that wrote them.
type Document struct {
	ID     int64      `json:"id" validate:"gt=0"`
	Text   string     `json:"text"`
	Skills []SkillRef `json:"skills"`

	Score float64 `json:"score,omitempty"`
	TFIDF float64 `json:"tfidf,omitempty"`
}

// HasSkill reports whether the document carries the skill at the given
// lexicon index.
func (d *Document) HasSkill(index int) bool {
	for _, ref := range d.Skills {
		if ref.Index == index {
			return true
		}
	}
	return false
}

// SkillWeight returns the extracted weight for the skill at the given lexicon
// index, or 0 if the document does not carry it.
func (d *Document) SkillWeight(index int) float64 {
	for _, ref := range d.Skills {
		if ref.Index == index {
			return ref.Weight
		}
	}
	return 0
}

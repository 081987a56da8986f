package matching

import (
	"github.com/jonathan/skillmatch/internal/corpus"
)

// FilterBySkill returns the ids of documents carrying the given lexicon
// skill index, in corpus order.
func FilterBySkill(c *corpus.Corpus, skillIndex int) []int64 {
	var ids []int64
	for i := 0; i < c.Count(); i++ {
		if doc := c.Store().At(i); doc.HasSkill(skillIndex) {
			ids = append(ids, doc.ID)
		}
	}
	return ids
}

// FilterByScoreRange returns the ids of documents whose last recorded score
// lies in [lo, hi], in corpus order.
func FilterByScoreRange(c *corpus.Corpus, lo, hi float64) []int64 {
	var ids []int64
	for i := 0; i < c.Count(); i++ {
		doc := c.Store().At(i)
		if doc.Score >= lo && doc.Score <= hi {
			ids = append(ids, doc.ID)
		}
	}
	return ids
}

// FilterBySkillCount returns the ids of documents with between min and max
// extracted skills inclusive, in corpus order.
func FilterBySkillCount(c *corpus.Corpus, min, max int) []int64 {
	var ids []int64
	for i := 0; i < c.Count(); i++ {
		doc := c.Store().At(i)
		if n := len(doc.Skills); n >= min && n <= max {
			ids = append(ids, doc.ID)
		}
	}
	return ids
}

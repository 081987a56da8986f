package scoring

import (
	"math"

	"github.com/jonathan/skillmatch/internal/corpus"
)

// ComputeIDF builds an inverse-document-frequency table over every document
// in the given corpora: idf = ln(totalDocs / docsContainingSkill), keyed by
// lexicon index. A skill present in every document gets idf 0, which
// correctly removes ubiquitous skills from cosine comparisons.
func ComputeIDF(corpora ...*corpus.Corpus) map[int]float64 {
	docCount := make(map[int]int)
	total := 0

	for _, c := range corpora {
		if c == nil {
			continue
		}
		total += c.Count()
		for i := 0; i < c.Count(); i++ {
			doc := c.Store().At(i)
			for _, ref := range doc.Skills {
				docCount[ref.Index]++
			}
		}
	}

	idf := make(map[int]float64, len(docCount))
	if total == 0 {
		return idf
	}
	for index, count := range docCount {
		idf[index] = math.Log(float64(total) / float64(count))
	}
	return idf
}

// AnnotateTFIDF writes each document's aggregate TF-IDF score into its
// scratch field: the sum of extracted weights scaled by idf. The field is
// informational (reports, score-range filters) and is overwritten by the
// next pass.
func AnnotateTFIDF(c *corpus.Corpus, idf map[int]float64) {
	for i := 0; i < c.Count(); i++ {
		doc := c.Store().At(i)
		sum := 0.0
		for _, ref := range doc.Skills {
			sum += ref.Weight * idf[ref.Index]
		}
		doc.TFIDF = sum
	}
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillmatch/internal/corpus"
	"github.com/jonathan/skillmatch/internal/matching"
	"github.com/jonathan/skillmatch/internal/types"
)

func lookupCorpus(t *testing.T) *corpus.Corpus {
	t.Helper()
	c := corpus.New()
	for _, id := range []int64{30, 10, 20, 40} {
		require.NoError(t, c.Insert(types.Document{ID: id}))
	}
	return c
}

func TestSearchByID_AllAlgorithms(t *testing.T) {
	for _, algo := range []string{"binary", "interpolation", "linear"} {
		t.Run(algo, func(t *testing.T) {
			doc, err := searchByID(lookupCorpus(t), 20, algo)
			require.NoError(t, err)
			assert.Equal(t, int64(20), doc.ID)
		})
	}
}

func TestSearchByID_NotFound(t *testing.T) {
	_, err := searchByID(lookupCorpus(t), 999, "binary")
	var notFound *matching.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, int64(999), notFound.ID)
}

func TestSearchByID_UnknownAlgorithm(t *testing.T) {
	_, err := searchByID(lookupCorpus(t), 20, "quantum")
	var invalid *matching.InvalidArgumentError
	require.ErrorAs(t, err, &invalid)
}

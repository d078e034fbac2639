package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameSimilarityCaseInsensitive(t *testing.T) {
	assert.Equal(t, 1.0, NameSimilarity("ana", "  ANA "))
}

func TestSimilarNamesCatchesTypos(t *testing.T) {
	assert.True(t, SimilarNames("Joao Silva", "Joao Silvaa"))
	assert.True(t, SimilarNames("Fernanda", "Fernandda"))
}

func TestSimilarNamesExactMatchIsNotSimilar(t *testing.T) {
	// Exact duplicates are handled as conflicts, not as "similar" prompts.
	assert.False(t, SimilarNames("Ana", "ANA"))
}

func TestSimilarNamesDistinctNames(t *testing.T) {
	assert.False(t, SimilarNames("Ana", "Ricardo"))
}

package faq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexicalSearchIdenticalTextHasZeroDistance(t *testing.T) {
	s := NewLexicalSearcher([]string{"How long does shipping take?"})

	results, err := s.Search("How long does shipping take?", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 0.0, results[0].Distance)
}

func TestLexicalSearchRanksByOverlap(t *testing.T) {
	s := NewLexicalSearcher([]string{
		"How long does shipping take?",
		"What payment methods do you accept?",
	})

	results, err := s.Search("how long will shipping take", 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "How long does shipping take?", results[0].Text)
	assert.Less(t, results[0].Distance, results[1].Distance)
}

func TestLexicalSearchParaphraseClearsThresholdDistance(t *testing.T) {
	s := NewLexicalSearcher([]string{"What is your return policy?"})

	results, err := s.Search("what's your return policy", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	// Similarity 1/(1+d) >= 0.75 requires d <= 1/3.
	assert.LessOrEqual(t, results[0].Distance, 1.0/3.0)
}

func TestLexicalSearchEmpty(t *testing.T) {
	s := NewLexicalSearcher(nil)

	results, err := s.Search("anything", 3)
	require.NoError(t, err)
	assert.Empty(t, results)

	s = NewLexicalSearcher([]string{"one"})
	results, err = s.Search("anything", 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}

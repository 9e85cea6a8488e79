// Package faq provides similarity-ranked retrieval over the FAQ
// knowledge base.
package faq

import (
	"math"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Result is a single nearest-neighbor hit. Distance is >= 0, smaller
// means closer; identical text has distance 0.
type Result struct {
	Text     string
	Distance float64
}

// Searcher is a nearest-neighbor lookup over a fixed set of texts.
// Implementations may back it with embeddings or any lexical heuristic.
type Searcher interface {
	Search(query string, topK int) ([]Result, error)
}

// LexicalSearcher scores candidates without a model: distance is the
// smaller of (1 - token cosine similarity) and the length-normalized
// Levenshtein distance. The edit-distance term keeps short queries with
// little token overlap comparable.
type LexicalSearcher struct {
	texts []string
}

// NewLexicalSearcher creates a searcher over the given texts.
func NewLexicalSearcher(texts []string) *LexicalSearcher {
	out := make([]string, len(texts))
	copy(out, texts)
	return &LexicalSearcher{texts: out}
}

// Search returns the topK closest texts sorted by ascending distance.
func (s *LexicalSearcher) Search(query string, topK int) ([]Result, error) {
	if topK <= 0 || len(s.texts) == 0 {
		return []Result{}, nil
	}

	results := make([]Result, 0, len(s.texts))
	for _, text := range s.texts {
		results = append(results, Result{Text: text, Distance: distance(query, text)})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

func distance(a, b string) float64 {
	na, nb := normalize(a), normalize(b)
	if na == nb {
		return 0
	}
	return math.Min(1-cosine(tokenize(na), tokenize(nb)), editDistance(na, nb))
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func tokenize(s string) map[string]int {
	freq := make(map[string]int)
	var word strings.Builder
	flush := func() {
		if word.Len() > 0 {
			freq[word.String()]++
			word.Reset()
		}
	}
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return freq
}

func cosine(a, b map[string]int) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for tok, fa := range a {
		normA += float64(fa * fa)
		if fb, ok := b[tok]; ok {
			dot += float64(fa * fb)
		}
	}
	for _, fb := range b {
		normB += float64(fb * fb)
	}
	if dot == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func editDistance(a, b string) float64 {
	longest := len([]rune(a))
	if lb := len([]rune(b)); lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 0
	}
	return float64(levenshtein.ComputeDistance(a, b)) / float64(longest)
}

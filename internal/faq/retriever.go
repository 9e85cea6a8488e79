package faq

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"shopassist/internal/domain"
)

// DefaultThreshold is the minimum top-1 similarity for a query to be
// answered directly from the FAQ set.
const DefaultThreshold = 0.75

// Retriever answers free-text queries from a fixed FAQ set using a
// Searcher for nearest-neighbor lookup over the stored questions.
type Retriever struct {
	entries    []domain.FAQEntry
	byQuestion map[string]domain.FAQEntry
	searcher   Searcher
	threshold  float64
}

// NewRetriever creates a retriever over the given entries. If searcher is
// nil a LexicalSearcher over the questions is used. A threshold <= 0
// falls back to DefaultThreshold.
func NewRetriever(entries []domain.FAQEntry, searcher Searcher, threshold float64) *Retriever {
	byQuestion := make(map[string]domain.FAQEntry, len(entries))
	questions := make([]string, 0, len(entries))
	for _, e := range entries {
		byQuestion[e.Question] = e
		questions = append(questions, e.Question)
	}
	if searcher == nil {
		searcher = NewLexicalSearcher(questions)
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Retriever{
		entries:    append([]domain.FAQEntry(nil), entries...),
		byQuestion: byQuestion,
		searcher:   searcher,
		threshold:  threshold,
	}
}

// RetrieveRelevantFAQs returns the topK entries most similar to the
// query, sorted by descending similarity. Similarity is 1/(1+distance),
// so an exact match scores 1.0.
func (r *Retriever) RetrieveRelevantFAQs(query string, topK int) ([]domain.FAQMatch, error) {
	results, err := r.searcher.Search(query, topK)
	if err != nil {
		return nil, fmt.Errorf("failed to search FAQs: %w", err)
	}

	matches := make([]domain.FAQMatch, 0, len(results))
	for _, res := range results {
		entry, ok := r.byQuestion[res.Text]
		if !ok {
			continue
		}
		matches = append(matches, domain.FAQMatch{
			FAQEntry:   entry,
			Similarity: 1 / (1 + res.Distance),
		})
	}
	return matches, nil
}

// IsFAQQuestion reports whether the query matches a stored question
// closely enough to answer without the language model. Search failures
// are treated as "not an FAQ", never propagated.
func (r *Retriever) IsFAQQuestion(query string) (bool, *domain.FAQMatch) {
	matches, err := r.RetrieveRelevantFAQs(query, 1)
	if err != nil {
		log.Warn().Err(err).Msg("FAQ classification failed, treating as not FAQ")
		return false, nil
	}
	if len(matches) == 0 || matches[0].Similarity < r.threshold {
		return false, nil
	}
	return true, &matches[0]
}

// All returns every FAQ entry in stored order.
func (r *Retriever) All() []domain.FAQEntry {
	out := make([]domain.FAQEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

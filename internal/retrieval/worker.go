// Package retrieval implements the candidate retrieval worker: semantic
// search through the vector collaborator narrowed by metadata and keyword
// filters.
package retrieval

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/hr-copilot/internal/types"
	"github.com/jonathan/hr-copilot/internal/vectorsearch"
)

// Result holds the worker's final candidate list plus debug counters for the
// trace.
type Result struct {
	Candidates []types.Candidate `json:"candidates"`
	Debug      Debug             `json:"debug"`
}

// Debug summarizes each narrowing pass for observability.
type Debug struct {
	SemanticHits  int    `json:"semantic_hits"`
	AfterCategory int    `json:"after_category"`
	KeywordHits   int    `json:"keyword_hits"`
	KeywordUsed   bool   `json:"keyword_used"`
	Category      string `json:"category,omitempty"`
}

// Worker performs retrieval against a Searcher collaborator.
type Worker struct {
	searcher vectorsearch.Searcher
}

// NewWorker creates a retrieval worker.
func NewWorker(searcher vectorsearch.Searcher) *Worker {
	return &Worker{searcher: searcher}
}

// Retrieve returns up to k candidates for the query. Passes, in order:
// semantic top-k, optional case-insensitive category filter, then a keyword
// substring filter on previews. The keyword pass replaces the list only when
// it matches something; an over-specific query never starves the pipeline.
func (w *Worker) Retrieve(ctx context.Context, query string, k int, category string) (*Result, error) {
	semantic, err := w.searcher.Search(ctx, query, k)
	if err != nil {
		return nil, fmt.Errorf("retrieval worker: %w", err)
	}

	candidates := semantic
	if category != "" {
		candidates = filterByCategory(candidates, category)
	}

	keywordHits := filterByKeyword(candidates, query)

	final := candidates
	keywordUsed := false
	if len(keywordHits) > 0 {
		final = keywordHits
		keywordUsed = true
	}
	final = truncate(final, k)

	return &Result{
		Candidates: final,
		Debug: Debug{
			SemanticHits:  len(semantic),
			AfterCategory: len(candidates),
			KeywordHits:   len(keywordHits),
			KeywordUsed:   keywordUsed,
			Category:      category,
		},
	}, nil
}

// filterByCategory keeps candidates whose category matches case-insensitively.
func filterByCategory(candidates []types.Candidate, category string) []types.Candidate {
	cat := strings.ToLower(category)
	out := make([]types.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if strings.ToLower(c.Category) == cat {
			out = append(out, c)
		}
	}
	return out
}

// filterByKeyword keeps candidates whose preview contains the query text as a
// case-insensitive substring.
func filterByKeyword(candidates []types.Candidate, query string) []types.Candidate {
	q := strings.ToLower(query)
	out := make([]types.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c.Preview), q) {
			out = append(out, c)
		}
	}
	return out
}

func truncate(candidates []types.Candidate, k int) []types.Candidate {
	if k > 0 && len(candidates) > k {
		return candidates[:k]
	}
	return candidates
}

// Package search provides case-insensitive substring search over the raw
// text of uploaded candidate documents.
package search

import (
	"math/rand"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/jonathan/cv-screener/internal/types"
)

// Snippet window around the first match
const (
	snippetBefore = 50
	snippetAfter  = 100
)

// Relevance is a placeholder ranking signal in [baseRelevance, 1.0): a base
// plus random jitter. It is not a real relevance metric; it only has to sort
// results in a stable, descending order.
const (
	baseRelevance   = 0.8
	jitterRelevance = 0.2
)

// Result is one corpus hit
type Result struct {
	SourceID    string  `json:"source_id"`
	SourceLabel string  `json:"source_label"`
	Snippet     string  `json:"snippet"`
	Relevance   float64 `json:"relevance"`
}

// Searcher runs corpus searches. The jitter source is injectable so tests
// can fix the seed and assert exact ordering. rand.Rand is not safe for
// concurrent use, so the mutex serializes draws; the server shares one
// Searcher across handlers.
type Searcher struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Searcher seeded from the given source
func New(src rand.Source) *Searcher {
	return &Searcher{rng: rand.New(src)}
}

// Search returns a snippet per candidate whose content contains the query,
// sorted descending by relevance. Candidates with no match are excluded.
// An empty query matches nothing.
func (s *Searcher) Search(query string, scored []types.ScoredCandidate) []Result {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	queryLower := strings.ToLower(query)
	results := make([]Result, 0, len(scored))

	for _, sc := range scored {
		c := sc.Candidate
		idx := strings.Index(strings.ToLower(c.Content), queryLower)
		if idx == -1 {
			continue
		}

		results = append(results, Result{
			SourceID:    c.ID,
			SourceLabel: c.Name,
			Snippet:     snippet(c.Content, idx, len(queryLower)),
			Relevance:   baseRelevance + s.jitter()*jitterRelevance,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})

	return results
}

// jitter draws one relevance jitter value under the lock
func (s *Searcher) jitter() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// snippet extracts the window around the first match, clamped to the text
// bounds and to rune boundaries, trimmed and wrapped in ellipsis markers
func snippet(content string, idx, matchLen int) string {
	start := idx - snippetBefore
	if start < 0 {
		start = 0
	}
	end := idx + matchLen + snippetAfter
	if end > len(content) {
		end = len(content)
	}
	for start > 0 && !utf8.RuneStart(content[start]) {
		start--
	}
	for end < len(content) && !utf8.RuneStart(content[end]) {
		end++
	}
	return "..." + strings.TrimSpace(content[start:end]) + "..."
}

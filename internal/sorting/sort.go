// Package sorting orders scored candidate lists by a typed sort key.
package sorting

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jonathan/cv-screener/internal/types"
)

// Key selects the candidate attribute to sort by
type Key string

// Sort keys
const (
	KeyExperience      Key = "experience"
	KeyMatchScore      Key = "matchScore"
	KeyName            Key = "name"
	KeyMatchedKeywords Key = "matchedKeywords"
)

// Valid reports whether k is a known sort key
func (k Key) Valid() bool {
	switch k {
	case KeyExperience, KeyMatchScore, KeyName, KeyMatchedKeywords:
		return true
	}
	return false
}

// Order selects ascending or descending sort direction
type Order string

// Sort orders
const (
	Ascending  Order = "asc"
	Descending Order = "desc"
)

// Valid reports whether o is a known order
func (o Order) Valid() bool {
	return o == Ascending || o == Descending
}

// Sort returns a new slice ordered by the given key and order. The input is
// never reordered in place and ties keep their input relative order. An
// unknown key or order is a programming error at the call boundary and is
// rejected rather than silently defaulted.
func Sort(scored []types.ScoredCandidate, key Key, order Order) ([]types.ScoredCandidate, error) {
	if !key.Valid() {
		return nil, fmt.Errorf("unknown sort key: %q", key)
	}
	if !order.Valid() {
		return nil, fmt.Errorf("unknown sort order: %q", order)
	}

	compare, err := comparator(key)
	if err != nil {
		return nil, err
	}

	result := make([]types.ScoredCandidate, len(scored))
	copy(result, scored)

	sort.SliceStable(result, func(i, j int) bool {
		c := compare(&result[i], &result[j])
		if order == Descending {
			return c > 0
		}
		return c < 0
	})

	return result, nil
}

// comparator returns a three-way compare function for the key
func comparator(key Key) (func(a, b *types.ScoredCandidate) int, error) {
	switch key {
	case KeyExperience:
		return func(a, b *types.ScoredCandidate) int {
			return compareFloats(a.Candidate.TotalYearsExperience, b.Candidate.TotalYearsExperience)
		}, nil
	case KeyMatchScore:
		return func(a, b *types.ScoredCandidate) int {
			return a.Match.Score - b.Match.Score
		}, nil
	case KeyName:
		// Locale-aware compare, matching how names collate for display
		collator := collate.New(language.English)
		return func(a, b *types.ScoredCandidate) int {
			return collator.CompareString(a.Candidate.Name, b.Candidate.Name)
		}, nil
	case KeyMatchedKeywords:
		return func(a, b *types.ScoredCandidate) int {
			return len(a.Match.MatchedKeywords) - len(b.Match.MatchedKeywords)
		}, nil
	default:
		return nil, fmt.Errorf("unknown sort key: %q", key)
	}
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

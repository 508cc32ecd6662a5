// Package filtering narrows a scored candidate list by the active filter
// dimensions. Dimensions combine with AND; selections within a multi-select
// dimension combine with OR.
package filtering

import (
	"strings"

	"github.com/jonathan/cv-screener/internal/types"
)

// Apply returns the candidates satisfying every active filter dimension,
// preserving relative order. It never mutates its input and is safe to call
// repeatedly with different filter states; applying the same state twice
// returns the same set. Candidates must be scored first: the band and
// keyword dimensions read match results.
func Apply(scored []types.ScoredCandidate, filters types.FilterState) []types.ScoredCandidate {
	result := make([]types.ScoredCandidate, 0, len(scored))
	for _, sc := range scored {
		if matches(&sc, &filters) {
			result = append(result, sc)
		}
	}
	return result
}

// matches reports whether a single scored candidate survives every dimension
func matches(sc *types.ScoredCandidate, filters *types.FilterState) bool {
	c := &sc.Candidate

	if len(filters.EducationLevels) > 0 && !containsLevel(filters.EducationLevels, c.Education.Level) {
		return false
	}

	if c.TotalYearsExperience < filters.MinYearsExperience ||
		c.TotalYearsExperience > filters.MaxYearsExperience {
		return false
	}

	// A candidate with no past roles simply has no matching company size.
	if len(filters.CompanySizes) > 0 && !anyRoleSized(c.PastRoles, filters.CompanySizes) {
		return false
	}

	if c.TechAdjacency < filters.MinTechAdjacency {
		return false
	}

	if len(filters.MatchBands) > 0 && !containsBand(filters.MatchBands, sc.Match.Band) {
		return false
	}

	// Every requested keyword must substring-match some matched keyword.
	for _, kw := range filters.Keywords {
		if !matchesAnyKeyword(sc.Match.MatchedKeywords, kw) {
			return false
		}
	}

	return true
}

func containsLevel(levels []types.EducationLevel, level types.EducationLevel) bool {
	for _, l := range levels {
		if l == level {
			return true
		}
	}
	return false
}

func containsBand(bands []types.MatchBand, band types.MatchBand) bool {
	for _, b := range bands {
		if b == band {
			return true
		}
	}
	return false
}

// anyRoleSized reports whether any past role's company size is selected
func anyRoleSized(roles []types.PastRole, sizes []types.CompanySize) bool {
	for _, role := range roles {
		for _, size := range sizes {
			if role.CompanySize == size {
				return true
			}
		}
	}
	return false
}

// matchesAnyKeyword reports whether the requested keyword case-insensitively
// substring-matches any of the candidate's matched keywords
func matchesAnyKeyword(matchedKeywords []string, keyword string) bool {
	kw := strings.ToLower(keyword)
	for _, mk := range matchedKeywords {
		if strings.Contains(strings.ToLower(mk), kw) {
			return true
		}
	}
	return false
}

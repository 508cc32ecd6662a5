// Package matching scores candidates against a job description and derives
// match bands, matched keywords and narrative explanations.
package matching

import (
	"fmt"
	"math"

	"github.com/jonathan/cv-screener/internal/types"
)

// Maximum points per scoring component
const (
	educationPoints       = 15
	experiencePoints      = 25
	experienceBonusPoints = 5
	requiredSkillsPoints  = 35
	preferredSkillsPoints = 15
	techAdjacencyPoints   = 10

	// experienceBonusFactor grants the bonus when total experience reaches
	// this multiple of the job minimum
	experienceBonusFactor = 1.5
	// partialExperiencePoints caps partial credit below the minimum
	partialExperiencePoints = 15
)

// Band thresholds on the total score
const (
	highBandThreshold   = 75
	mediumBandThreshold = 50
)

// keywordContextSize is the window extracted around a keyword occurrence
// for explanation context
const keywordContextSize = 50

// maxScore caps the total: the component maxima sum past it when the
// experience bonus lands, so the total is clamped before banding
const maxScore = 100

// ComputeMatch scores a candidate against a job description. The result is
// deterministic for fixed inputs: five independently capped components are
// floored to integers, summed, and clamped, so the total is always an
// integer in [0, 100].
func ComputeMatch(c *types.Candidate, job *types.JobDescription) types.MatchResult {
	eduScore, eduMatch := educationScore(c, job)
	expScore, expMatch := experienceScore(c, job)
	reqMatched := countMatchedTerms(c.Skills, job.Requirements)
	prefMatched := countMatchedTerms(c.Skills, job.PreferredSkills)

	score := eduScore + expScore +
		ratioScore(reqMatched, len(job.Requirements), requiredSkillsPoints) +
		ratioScore(prefMatched, len(job.PreferredSkills), preferredSkillsPoints) +
		c.TechAdjacency/10
	if score > maxScore {
		score = maxScore
	}

	band := bandFor(score)
	explanation := buildExplanation(c, job, eduMatch, expMatch, band)

	return types.MatchResult{
		Score:           score,
		Band:            band,
		MatchedKeywords: MatchedKeywords(c, job),
		Explanation:     explanation,
	}
}

// educationScore awards full points when the candidate's education rank
// meets or exceeds the required rank. No partial credit. An unknown or
// missing candidate level never earns credit; an unknown requirement is
// treated as no requirement.
func educationScore(c *types.Candidate, job *types.JobDescription) (int, bool) {
	rank := c.Education.Level.Rank()
	if rank < 0 {
		return 0, false
	}
	if rank >= job.EducationRequirement.Rank() {
		return educationPoints, true
	}
	return 0, false
}

// experienceScore awards full points (plus a bonus for comfortably exceeding
// the minimum) or proportional partial credit below the minimum.
func experienceScore(c *types.Candidate, job *types.JobDescription) (int, bool) {
	if c.TotalYearsExperience >= job.MinYearsExperience {
		score := experiencePoints
		if c.TotalYearsExperience >= job.MinYearsExperience*experienceBonusFactor {
			score += experienceBonusPoints
		}
		return score, true
	}
	// MinYearsExperience is nonzero here: a zero minimum always takes the
	// branch above.
	return int(math.Floor(c.TotalYearsExperience / job.MinYearsExperience * partialExperiencePoints)), false
}

// ratioScore awards floor(matched/total × points), guarding the empty list
func ratioScore(matched, total, points int) int {
	if total == 0 {
		return 0
	}
	return int(math.Floor(float64(matched) / float64(total) * float64(points)))
}

// bandFor maps a total score onto its band. Thresholds are inclusive: a
// score of exactly 75 is high and exactly 50 is medium.
func bandFor(score int) types.MatchBand {
	switch {
	case score >= highBandThreshold:
		return types.BandHigh
	case score >= mediumBandThreshold:
		return types.BandMedium
	default:
		return types.BandLow
	}
}

// buildExplanation narrates the comparisons behind a match result. Skill and
// keyword entries follow the job's declaration order.
func buildExplanation(c *types.Candidate, job *types.JobDescription, eduMatch, expMatch bool, band types.MatchBand) types.MatchExplanation {
	skillMatches := make([]types.SkillMatch, 0, len(job.Requirements))
	matchedRequired := 0
	for _, req := range job.Requirements {
		matched := hasMatchingSkill(c.Skills, req)
		if matched {
			matchedRequired++
		}
		skillMatches = append(skillMatches, types.SkillMatch{
			Skill:    req,
			Matched:  matched,
			Citation: citationFor(c, req),
		})
	}

	keywordMatches := make([]types.KeywordMatch, 0, len(job.Keywords))
	for _, kw := range job.Keywords {
		found := hasMatchingSkill(c.Skills, kw)
		var context string
		if found {
			context = keywordContext(c.Content, kw, keywordContextSize)
		}
		keywordMatches = append(keywordMatches, types.KeywordMatch{
			Keyword: kw,
			Found:   found,
			Context: context,
		})
	}

	return types.MatchExplanation{
		EducationMatch:  eduMatch,
		EducationNote:   educationNote(c, job, eduMatch),
		ExperienceMatch: expMatch,
		ExperienceNote:  experienceNote(c, job, expMatch),
		SkillMatches:    skillMatches,
		KeywordMatches:  keywordMatches,
		OverallReason:   overallReason(c, job, band, matchedRequired),
	}
}

func educationNote(c *types.Candidate, job *types.JobDescription, matched bool) string {
	if matched {
		return fmt.Sprintf("%s in %s meets the %s requirement",
			c.Education.Level, c.Education.Field, job.EducationRequirement)
	}
	return fmt.Sprintf("%s is below the required %s",
		c.Education.Level, job.EducationRequirement)
}

func experienceNote(c *types.Candidate, job *types.JobDescription, matched bool) string {
	if matched {
		return fmt.Sprintf("%.0f years meets the %.0f year minimum",
			c.TotalYearsExperience, job.MinYearsExperience)
	}
	return fmt.Sprintf("%.0f years falls short of the %.0f year minimum",
		c.TotalYearsExperience, job.MinYearsExperience)
}

// overallReason produces the one-line summary surfaced in QA answers and
// candidate cards
func overallReason(c *types.Candidate, job *types.JobDescription, band types.MatchBand, matchedRequired int) string {
	coverage := fmt.Sprintf("%d of %d required skills with %.0f years of experience",
		matchedRequired, len(job.Requirements), c.TotalYearsExperience)

	switch band {
	case types.BandHigh:
		return "Strong match: covers " + coverage
	case types.BandMedium:
		return "Moderate match: covers " + coverage
	default:
		return "Weak match: covers " + coverage
	}
}

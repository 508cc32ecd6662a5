// Package types provides type definitions for structured data used throughout the cv-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MatchResult is the immutable output of scoring one candidate against a job.
// Score, band, matched keywords and explanation are computed together and are
// always mutually consistent.
type MatchResult struct {
	Score           int              `json:"score"`
	Band            MatchBand        `json:"band"`
	MatchedKeywords []string         `json:"matched_keywords"`
	Explanation     MatchExplanation `json:"explanation"`
}

// ScoredCandidate pairs a candidate with its match result. Filtering, sorting
// and QA consume scored candidates, which makes "scored before filtered" an
// explicit data dependency rather than an implicit ordering rule.
type ScoredCandidate struct {
	Candidate Candidate   `json:"candidate"`
	Match     MatchResult `json:"match"`
}

// MatchExplanation narrates a match result. It never re-derives the score.
type MatchExplanation struct {
	EducationMatch  bool           `json:"education_match"`
	EducationNote   string         `json:"education_note"`
	ExperienceMatch bool           `json:"experience_match"`
	ExperienceNote  string         `json:"experience_note"`
	SkillMatches    []SkillMatch   `json:"skill_matches"`
	KeywordMatches  []KeywordMatch `json:"keyword_matches"`
	OverallReason   string         `json:"overall_reason"`
}

// SkillMatch records whether a single job requirement was matched.
// Entries follow the job's requirement declaration order.
type SkillMatch struct {
	Skill    string `json:"skill"`
	Matched  bool   `json:"matched"`
	Citation string `json:"citation,omitempty"`
}

// KeywordMatch records whether a single job keyword was found.
// Entries follow the job's keyword declaration order.
type KeywordMatch struct {
	Keyword string `json:"keyword"`
	Found   bool   `json:"found"`
	Context string `json:"context,omitempty"`
}

// Citation points a claim in an answer or explanation at its source document
type Citation struct {
	Source    string  `json:"source"`
	Snippet   string  `json:"snippet"`
	Relevance float64 `json:"relevance"`
}

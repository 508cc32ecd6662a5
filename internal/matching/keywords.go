// Package matching scores candidates against a job description and derives
// match bands, matched keywords and narrative explanations.
package matching

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/cv-screener/internal/types"
)

// SkillsEquivalent reports whether two skill strings refer to the same skill
// under the bidirectional substring heuristic: either string is a
// case-insensitive substring of the other. Both scoring and the keyword
// filter rely on this exact predicate; replacing it with strict equality or
// fuzzy matching changes score values.
func SkillsEquivalent(a, b string) bool {
	al := strings.ToLower(a)
	bl := strings.ToLower(b)
	return strings.Contains(al, bl) || strings.Contains(bl, al)
}

// hasMatchingSkill reports whether any candidate skill matches the term
func hasMatchingSkill(skills []string, term string) bool {
	for _, skill := range skills {
		if SkillsEquivalent(skill, term) {
			return true
		}
	}
	return false
}

// countMatchedTerms counts how many job terms are matched by at least one
// candidate skill
func countMatchedTerms(skills, terms []string) int {
	matched := 0
	for _, term := range terms {
		if hasMatchingSkill(skills, term) {
			matched++
		}
	}
	return matched
}

// MatchedKeywords returns the subset of job keywords matched by at least one
// candidate skill, preserving the job's keyword declaration order. Matched
// keywords feed display highlighting and the keyword filter, not the score.
func MatchedKeywords(c *types.Candidate, job *types.JobDescription) []string {
	matched := make([]string, 0, len(job.Keywords))
	for _, kw := range job.Keywords {
		if hasMatchingSkill(c.Skills, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}

// keywordContext extracts a short window around the first occurrence of the
// keyword in the candidate's raw content. Returns "" when the keyword does
// not appear verbatim.
func keywordContext(content, keyword string, contextSize int) string {
	contentLower := strings.ToLower(content)
	idx := strings.Index(contentLower, strings.ToLower(keyword))
	if idx == -1 {
		return ""
	}

	start := idx - contextSize
	if start < 0 {
		start = 0
	}
	end := idx + len(keyword) + contextSize
	if end > len(content) {
		end = len(content)
	}
	// Window edges land on byte offsets; pull them onto rune boundaries so
	// the context is never invalid UTF-8.
	for start > 0 && !utf8.RuneStart(content[start]) {
		start--
	}
	for end < len(content) && !utf8.RuneStart(content[end]) {
		end++
	}

	context := strings.TrimSpace(content[start:end])
	if start > 0 {
		context = "..." + context
	}
	if end < len(content) {
		context = context + "..."
	}
	return context
}

// citationFor looks up the externally extracted citation for the first
// candidate skill matching the given requirement
func citationFor(c *types.Candidate, requirement string) string {
	for _, sc := range c.SkillCitations {
		if SkillsEquivalent(sc.Skill, requirement) {
			return sc.Citation
		}
	}
	return ""
}

package qa

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/cv-screener/internal/sorting"
	"github.com/jonathan/cv-screener/internal/types"
)

// Per-intent citation and listing limits
const (
	maxListedCandidates = 3
	maxSearchSnippets   = 3

	topCitationBase     = 1.0
	topCitationStep     = 0.1
	skillCitationScore  = 0.9
	yearsCitationScore  = 0.85
	jobCitationScore    = 1.0
	jobSnippetMaxLength = 200
)

// answerSkillLookup lists candidates whose skill list contains the literal
// "React" or "TypeScript" entries
func (r *Router) answerSkillLookup(_ string, scored []types.ScoredCandidate, _ *types.JobDescription) Answer {
	if len(scored) == 0 {
		return Answer{Text: noCandidatesMessage, Citations: []types.Citation{}}
	}

	withSkill := make([]types.ScoredCandidate, 0, len(scored))
	for _, sc := range scored {
		if hasLiteralSkill(sc.Candidate.Skills, "React") || hasLiteralSkill(sc.Candidate.Skills, "TypeScript") {
			withSkill = append(withSkill, sc)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Based on the uploaded CVs, %d candidates have React or TypeScript experience:\n\n", len(withSkill))

	citations := make([]types.Citation, 0, maxListedCandidates)
	for i, sc := range withSkill {
		if i >= maxListedCandidates {
			break
		}
		c := sc.Candidate
		fmt.Fprintf(&sb, "• **%s**: %s years of experience\n", c.Name, formatYears(c.TotalYearsExperience))

		snippet := reactCitation(&sc)
		if snippet == "" {
			snippet = "Skills: " + strings.Join(c.Skills, ", ")
		}
		citations = append(citations, types.Citation{
			Source:    c.Filename,
			Snippet:   snippet,
			Relevance: skillCitationScore,
		})
	}

	return Answer{Text: sb.String(), Citations: citations}
}

// answerTopCandidates ranks the corpus by match score and presents the top
// three with their overall reasons
func (r *Router) answerTopCandidates(_ string, scored []types.ScoredCandidate, _ *types.JobDescription) Answer {
	if len(scored) == 0 {
		return Answer{Text: noCandidatesMessage, Citations: []types.Citation{}}
	}

	ranked, err := sorting.Sort(scored, sorting.KeyMatchScore, sorting.Descending)
	if err != nil {
		// Key and order are compile-time constants; this cannot fail.
		return Answer{Text: nothingFoundMessage, Citations: []types.Citation{}}
	}
	if len(ranked) > maxListedCandidates {
		ranked = ranked[:maxListedCandidates]
	}

	var sb strings.Builder
	sb.WriteString("The top matching candidates for this position are:\n\n")

	citations := make([]types.Citation, 0, len(ranked))
	for i, sc := range ranked {
		fmt.Fprintf(&sb, "%d. **%s** (%d%% match) - %s\n",
			i+1, sc.Candidate.Name, sc.Match.Score, sc.Match.Explanation.OverallReason)
		citations = append(citations, types.Citation{
			Source:    sc.Candidate.Filename,
			Snippet:   sc.Match.Explanation.OverallReason,
			Relevance: topCitationBase - float64(i)*topCitationStep,
		})
	}

	return Answer{Text: sb.String(), Citations: citations}
}

// answerExperience enumerates every candidate by descending years of
// experience
func (r *Router) answerExperience(_ string, scored []types.ScoredCandidate, _ *types.JobDescription) Answer {
	if len(scored) == 0 {
		return Answer{Text: noCandidatesMessage, Citations: []types.Citation{}}
	}

	ranked, err := sorting.Sort(scored, sorting.KeyExperience, sorting.Descending)
	if err != nil {
		return Answer{Text: nothingFoundMessage, Citations: []types.Citation{}}
	}

	var sb strings.Builder
	sb.WriteString("Here's a breakdown of experience across candidates:\n\n")

	citations := make([]types.Citation, 0, len(ranked))
	for _, sc := range ranked {
		c := sc.Candidate
		fmt.Fprintf(&sb, "• **%s**: %s years\n", c.Name, formatYears(c.TotalYearsExperience))
		citations = append(citations, types.Citation{
			Source: c.Filename,
			Snippet: fmt.Sprintf("Total experience: %s years across %d roles",
				formatYears(c.TotalYearsExperience), len(c.PastRoles)),
			Relevance: yearsCitationScore,
		})
	}

	return Answer{Text: sb.String(), Citations: citations}
}

// answerJobRequirements templates an answer from the job description itself
func (r *Router) answerJobRequirements(_ string, _ []types.ScoredCandidate, job *types.JobDescription) Answer {
	if job == nil || job.Title == "" {
		return Answer{
			Text:      "No job description has been uploaded yet. Upload one to see its requirements.",
			Citations: []types.Citation{},
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "The job requirements for **%s** at %s include:\n\n", job.Title, job.Company)
	sb.WriteString("**Required Skills:**\n" + bulletList(job.Requirements) + "\n\n")
	sb.WriteString("**Preferred Skills:**\n" + bulletList(job.PreferredSkills) + "\n\n")
	fmt.Fprintf(&sb, "**Minimum Experience:** %s years", formatYears(job.MinYearsExperience))

	snippet := job.Content
	if len(snippet) > jobSnippetMaxLength {
		snippet = snippet[:jobSnippetMaxLength]
	}

	return Answer{
		Text: sb.String(),
		Citations: []types.Citation{{
			Source:    job.Filename,
			Snippet:   snippet + "...",
			Relevance: jobCitationScore,
		}},
	}
}

// answerFromSearch is the fallback intent: it runs the raw question through
// corpus search and quotes up to three snippets
func (r *Router) answerFromSearch(question string, scored []types.ScoredCandidate) Answer {
	results := r.searcher.Search(question, scored)
	if len(results) == 0 {
		return Answer{Text: nothingFoundMessage, Citations: []types.Citation{}}
	}

	filenames := make(map[string]string, len(scored))
	for _, sc := range scored {
		filenames[sc.Candidate.ID] = sc.Candidate.Filename
	}

	var sb strings.Builder
	sb.WriteString("Here's what I found related to your question:\n\n")

	citations := make([]types.Citation, 0, maxSearchSnippets)
	for i, result := range results {
		if i >= maxSearchSnippets {
			break
		}
		fmt.Fprintf(&sb, "From **%s**: %q\n\n", result.SourceLabel, result.Snippet)
		citations = append(citations, types.Citation{
			Source:    filenames[result.SourceID],
			Snippet:   result.Snippet,
			Relevance: result.Relevance,
		})
	}

	return Answer{Text: sb.String(), Citations: citations}
}

// hasLiteralSkill checks for an exact skill entry, unlike the bidirectional
// substring heuristic used by scoring
func hasLiteralSkill(skills []string, skill string) bool {
	for _, s := range skills {
		if s == skill {
			return true
		}
	}
	return false
}

// reactCitation returns the citation attached to the candidate's React skill
// match, if any
func reactCitation(sc *types.ScoredCandidate) string {
	for _, sm := range sc.Match.Explanation.SkillMatches {
		if sm.Skill == "React" && sm.Citation != "" {
			return sm.Citation
		}
	}
	return ""
}

// formatYears renders a year count without a trailing ".0"
func formatYears(years float64) string {
	return strconv.FormatFloat(years, 'f', -1, 64)
}

// bulletList renders items as a markdown bullet list
func bulletList(items []string) string {
	if len(items) == 0 {
		return "• (none listed)"
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "• "+item)
	}
	return strings.Join(lines, "\n")
}

package qa

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-screener/internal/search"
	"github.com/jonathan/cv-screener/internal/types"
)

func newTestRouter() *Router {
	return NewRouter(search.New(rand.NewSource(1)))
}

func testJob() *types.JobDescription {
	return &types.JobDescription{
		ID:                 "jd-001",
		Title:              "Senior Full-Stack Engineer",
		Company:            "TechCorp Inc.",
		Filename:           "senior_fullstack_engineer_jd.pdf",
		Content:            strings.Repeat("We are looking for a Senior Full-Stack Engineer. ", 10),
		Requirements:       []string{"React", "TypeScript", "Node.js"},
		PreferredSkills:    []string{"Docker", "GraphQL"},
		MinYearsExperience: 5,
	}
}

func testCorpus() []types.ScoredCandidate {
	return []types.ScoredCandidate{
		{
			Candidate: types.Candidate{
				ID: "c-001", Name: "Sarah Chen", Filename: "sarah_chen_cv.pdf",
				Content:              "Sarah Chen led React and TypeScript work on fintech dashboards.",
				TotalYearsExperience: 9,
				PastRoles:            []types.PastRole{{}, {}, {}},
				Skills:               []string{"React", "TypeScript", "AWS"},
			},
			Match: types.MatchResult{
				Score: 96, Band: types.BandHigh,
				Explanation: types.MatchExplanation{
					OverallReason: "Strong match: covers 7 of 7 required skills with 9 years of experience",
					SkillMatches: []types.SkillMatch{
						{Skill: "React", Matched: true, Citation: "Led React work on fintech dashboards"},
					},
				},
			},
		},
		{
			Candidate: types.Candidate{
				ID: "c-002", Name: "Alex Kim", Filename: "alex_kim_cv.pdf",
				Content:              "Alex Kim built Go services and PostgreSQL pipelines for a fintech company.",
				TotalYearsExperience: 6,
				PastRoles:            []types.PastRole{{}, {}},
				Skills:               []string{"Go", "PostgreSQL"},
			},
			Match: types.MatchResult{
				Score: 94, Band: types.BandHigh,
				Explanation: types.MatchExplanation{OverallReason: "Strong backend coverage"},
			},
		},
		{
			Candidate: types.Candidate{
				ID: "c-003", Name: "Maria Lopez", Filename: "maria_lopez_cv.pdf",
				Content:              "Maria Lopez shipped TypeScript front ends at two startups.",
				TotalYearsExperience: 7,
				PastRoles:            []types.PastRole{{}},
				Skills:               []string{"TypeScript", "GraphQL"},
			},
			Match: types.MatchResult{
				Score: 82, Band: types.BandHigh,
				Explanation: types.MatchExplanation{OverallReason: "Solid frontend coverage"},
			},
		},
	}
}

func TestAnswer_DeclinesOffCorpusQuestions(t *testing.T) {
	r := newTestRouter()

	answer := r.Answer("Tell me a joke about weather", testCorpus(), testJob())
	assert.Equal(t, declineMessage, answer.Text)
	assert.Empty(t, answer.Citations)
}

func TestAnswer_SkillLookupIntent(t *testing.T) {
	r := newTestRouter()

	answer := r.Answer("Which candidates know React?", testCorpus(), testJob())
	assert.Contains(t, answer.Text, "2 candidates have React or TypeScript experience")
	assert.Contains(t, answer.Text, "Sarah Chen")
	assert.Contains(t, answer.Text, "Maria Lopez")
	assert.NotContains(t, answer.Text, "Alex Kim")

	require.Len(t, answer.Citations, 2)
	// Sarah has a React skill-match citation; Maria falls back to her skill list
	assert.Equal(t, "Led React work on fintech dashboards", answer.Citations[0].Snippet)
	assert.Equal(t, "Skills: TypeScript, GraphQL", answer.Citations[1].Snippet)
	assert.Equal(t, 0.9, answer.Citations[0].Relevance)
}

func TestAnswer_SkillLookupUsesLiteralSkillEntries(t *testing.T) {
	r := newTestRouter()
	corpus := []types.ScoredCandidate{
		{Candidate: types.Candidate{ID: "c-x", Name: "Partial", Skills: []string{"React Native"}}},
	}

	// "React Native" is not the literal entry "React", so nobody qualifies
	answer := r.Answer("who knows react?", corpus, testJob())
	assert.Contains(t, answer.Text, "0 candidates")
}

func TestAnswer_TopCandidatesIntent(t *testing.T) {
	r := newTestRouter()

	answer := r.Answer("Who are the top matching candidates?", testCorpus(), testJob())

	// Ranked by score: 96, 94, 82
	first := strings.Index(answer.Text, "Sarah Chen")
	second := strings.Index(answer.Text, "Alex Kim")
	third := strings.Index(answer.Text, "Maria Lopez")
	assert.True(t, first < second && second < third)
	assert.Contains(t, answer.Text, "(96% match)")
	assert.Contains(t, answer.Text, "Strong match: covers 7 of 7 required skills")

	require.Len(t, answer.Citations, 3)
	assert.Equal(t, 1.0, answer.Citations[0].Relevance)
	assert.InDelta(t, 0.9, answer.Citations[1].Relevance, 1e-9)
	assert.InDelta(t, 0.8, answer.Citations[2].Relevance, 1e-9)
}

func TestAnswer_IntentPriorityFirstMatchWins(t *testing.T) {
	r := newTestRouter()

	// Mentions both "react" (skill-lookup) and "best" (top-candidates);
	// skill-lookup is declared first and must win.
	answer := r.Answer("Who is the best react developer?", testCorpus(), testJob())
	assert.Contains(t, answer.Text, "React or TypeScript experience")
	assert.NotContains(t, answer.Text, "top matching candidates")
}

func TestAnswer_ExperienceIntentListsEveryone(t *testing.T) {
	r := newTestRouter()

	answer := r.Answer("How many years of experience do they have?", testCorpus(), testJob())

	// All candidates, descending by years: 9, 7, 6
	first := strings.Index(answer.Text, "Sarah Chen")
	second := strings.Index(answer.Text, "Maria Lopez")
	third := strings.Index(answer.Text, "Alex Kim")
	assert.True(t, first < second && second < third)

	require.Len(t, answer.Citations, 3)
	assert.Equal(t, "Total experience: 9 years across 3 roles", answer.Citations[0].Snippet)
	for _, c := range answer.Citations {
		assert.Equal(t, 0.85, c.Relevance)
	}
}

func TestAnswer_JobRequirementsIntent(t *testing.T) {
	r := newTestRouter()

	answer := r.Answer("What does the job require?", testCorpus(), testJob())
	assert.Contains(t, answer.Text, "Senior Full-Stack Engineer")
	assert.Contains(t, answer.Text, "TechCorp Inc.")
	assert.Contains(t, answer.Text, "• React")
	assert.Contains(t, answer.Text, "• Docker")
	assert.Contains(t, answer.Text, "**Minimum Experience:** 5 years")

	require.Len(t, answer.Citations, 1)
	citation := answer.Citations[0]
	assert.Equal(t, "senior_fullstack_engineer_jd.pdf", citation.Source)
	assert.Equal(t, 1.0, citation.Relevance)
	assert.Len(t, citation.Snippet, 203) // 200 chars + ellipsis
	assert.True(t, strings.HasSuffix(citation.Snippet, "..."))
}

func TestAnswer_FallbackSearchIntent(t *testing.T) {
	r := newTestRouter()

	// Passes the gate via "company", hits no intent keyword, and
	// "fintech company" appears verbatim in Alex's content.
	answer := r.Answer("fintech company", testCorpus(), testJob())
	assert.Contains(t, answer.Text, "Here's what I found")
	assert.Contains(t, answer.Text, "Alex Kim")

	require.Len(t, answer.Citations, 1)
	assert.Equal(t, "alex_kim_cv.pdf", answer.Citations[0].Source)
	assert.GreaterOrEqual(t, answer.Citations[0].Relevance, 0.8)
}

func TestAnswer_FallbackNothingFound(t *testing.T) {
	r := newTestRouter()

	answer := r.Answer("candidate quantum basket weaving", testCorpus(), testJob())
	assert.Equal(t, nothingFoundMessage, answer.Text)
	assert.Empty(t, answer.Citations)
}

func TestAnswer_EmptyCorpusDegradesGracefully(t *testing.T) {
	r := newTestRouter()

	for _, q := range []string{
		"who knows react?",
		"who is the best candidate?",
		"how many years of experience?",
	} {
		answer := r.Answer(q, nil, testJob())
		assert.Equal(t, noCandidatesMessage, answer.Text, q)
		assert.Empty(t, answer.Citations, q)
	}
}

func TestAnswer_MissingJobDegradesGracefully(t *testing.T) {
	r := newTestRouter()

	answer := r.Answer("what does the job require?", testCorpus(), nil)
	assert.Contains(t, answer.Text, "No job description")
	assert.Empty(t, answer.Citations)
}

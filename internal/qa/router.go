// Package qa answers free-text questions about the uploaded candidate corpus
// by routing each question to a templated, citation-backed answer.
package qa

import (
	"strings"

	"github.com/jonathan/cv-screener/internal/search"
	"github.com/jonathan/cv-screener/internal/types"
)

// Fixed responses for questions the router cannot ground in the corpus
const (
	declineMessage = "I can only answer questions about the uploaded CVs and job description. " +
		"Please ask about candidate qualifications, experience, skills, or how they match the job requirements."
	nothingFoundMessage = "I couldn't find specific information related to your question in the uploaded documents. " +
		"Try asking about specific skills, experience levels, or candidate qualifications."
	noCandidatesMessage = "No candidate CVs have been uploaded yet, so there is nothing to compare. " +
		"Upload candidate documents first."
)

// corpusKeywords gates question routing: a question mentioning none of these
// is declined without further processing
var corpusKeywords = []string{
	"candidate", "cv", "resume", "experience", "skill", "education",
	"job", "requirement", "qualification", "react", "typescript",
	"years", "company", "role", "position", "who", "which", "what",
	"how many", "compare", "best", "top", "highest", "match",
}

// Answer is a routed response with its supporting citations
type Answer struct {
	Text      string           `json:"text"`
	Citations []types.Citation `json:"citations"`
}

// intent pairs a routing predicate with its answer handler. Intents are
// evaluated in declaration order and the first match wins; later intents are
// never consulted once one matches.
type intent struct {
	name    string
	matches func(question string) bool
	handle  func(r *Router, question string, scored []types.ScoredCandidate, job *types.JobDescription) Answer
}

// intents is the routing table, in priority order
var intents = []intent{
	{
		name:    "skill-lookup",
		matches: containsAny("react", "typescript"),
		handle:  (*Router).answerSkillLookup,
	},
	{
		name:    "top-candidates",
		matches: containsAny("best", "top", "highest"),
		handle:  (*Router).answerTopCandidates,
	},
	{
		name:    "experience-breakdown",
		matches: containsAny("experience", "years"),
		handle:  (*Router).answerExperience,
	},
	{
		name:    "job-requirements",
		matches: containsAny("job", "requirement"),
		handle:  (*Router).answerJobRequirements,
	},
}

// Router answers questions over a scored candidate corpus. The searcher
// backs the fallback intent.
type Router struct {
	searcher *search.Searcher
}

// NewRouter creates a Router using the given corpus searcher
func NewRouter(searcher *search.Searcher) *Router {
	return &Router{searcher: searcher}
}

// Answer classifies the question and produces a templated answer with
// citations. Routing is single-pass: the corpus-relevance gate runs first,
// then the intent table in priority order, then the search fallback.
func (r *Router) Answer(question string, scored []types.ScoredCandidate, job *types.JobDescription) Answer {
	questionLower := strings.ToLower(question)

	if !aboutCorpus(questionLower) {
		return Answer{Text: declineMessage, Citations: []types.Citation{}}
	}

	for _, in := range intents {
		if in.matches(questionLower) {
			return in.handle(r, questionLower, scored, job)
		}
	}

	return r.answerFromSearch(question, scored)
}

// aboutCorpus reports whether the question mentions any corpus keyword
func aboutCorpus(questionLower string) bool {
	for _, kw := range corpusKeywords {
		if strings.Contains(questionLower, kw) {
			return true
		}
	}
	return false
}

// containsAny builds a predicate matching any of the given terms
func containsAny(terms ...string) func(string) bool {
	return func(questionLower string) bool {
		for _, term := range terms {
			if strings.Contains(questionLower, term) {
				return true
			}
		}
		return false
	}
}

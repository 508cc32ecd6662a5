package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/cv-screener/internal/filtering"
	"github.com/jonathan/cv-screener/internal/search"
	"github.com/jonathan/cv-screener/internal/sorting"
	"github.com/jonathan/cv-screener/internal/types"
)

// CandidatesResponse represents the response for /candidates and /filter
type CandidatesResponse struct {
	Candidates []types.ScoredCandidate `json:"candidates"`
	Total      int                     `json:"total"`
}

// SearchRequest represents the request body for /search
type SearchRequest struct {
	Query string `json:"query"`
}

// SearchResponse represents the response for /search
type SearchResponse struct {
	Results []search.Result `json:"results"`
	Total   int             `json:"total"`
}

// QARequest represents the request body for /qa
type QARequest struct {
	Question string `json:"question"`
}

// QAResponse represents the response for /qa. Each answer carries a message
// ID so clients can thread follow-ups against a stable identifier.
type QAResponse struct {
	MessageID string           `json:"message_id"`
	Text      string           `json:"text"`
	Citations []types.Citation `json:"citations"`
	CreatedAt string           `json:"created_at"`
}

// handleHealth reports service health
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleJob returns the active job description
func (s *Server) handleJob(w http.ResponseWriter, _ *http.Request) {
	if s.job == nil {
		s.writeError(w, &ErrNoCorpus{})
		return
	}
	s.jsonResponse(w, http.StatusOK, s.job)
}

// handleCandidates returns the scored candidate list, optionally sorted by
// the sort and order query parameters
func (s *Server) handleCandidates(w http.ResponseWriter, r *http.Request) {
	result := s.scored

	if key := r.URL.Query().Get("sort"); key != "" {
		order := sorting.Order(r.URL.Query().Get("order"))
		if order == "" {
			order = sorting.Descending
		}
		sorted, err := sorting.Sort(s.scored, sorting.Key(key), order)
		if err != nil {
			s.writeError(w, &ErrValidation{Field: "sort", Message: err.Error()})
			return
		}
		result = sorted
	}

	s.jsonResponse(w, http.StatusOK, CandidatesResponse{
		Candidates: result,
		Total:      len(result),
	})
}

// handleFilter applies a filter state to the scored candidate list
func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	var filters types.FilterState
	if err := json.NewDecoder(r.Body).Decode(&filters); err != nil {
		s.writeError(w, &ErrValidation{Field: "body", Message: "invalid request body: " + err.Error()})
		return
	}
	if err := filters.Validate(); err != nil {
		s.writeError(w, &ErrValidation{Field: "filters", Message: err.Error()})
		return
	}

	filtered := filtering.Apply(s.scored, filters)
	s.jsonResponse(w, http.StatusOK, CandidatesResponse{
		Candidates: filtered,
		Total:      len(filtered),
	})
}

// handleSearch runs a substring search over the candidate corpus
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, &ErrValidation{Field: "body", Message: "invalid request body: " + err.Error()})
		return
	}

	results := s.searcher.Search(req.Query, s.scored)
	if results == nil {
		results = []search.Result{}
	}
	s.jsonResponse(w, http.StatusOK, SearchResponse{
		Results: results,
		Total:   len(results),
	})
}

// handleQA answers a free-text question about the corpus
func (s *Server) handleQA(w http.ResponseWriter, r *http.Request) {
	var req QARequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, &ErrValidation{Field: "body", Message: "invalid request body: " + err.Error()})
		return
	}
	if req.Question == "" {
		s.writeError(w, &ErrValidation{Field: "question", Message: "question is required"})
		return
	}

	answer := s.qaRouter.Answer(req.Question, s.scored, s.job)
	s.jsonResponse(w, http.StatusOK, QAResponse{
		MessageID: uuid.New().String(),
		Text:      answer.Text,
		Citations: answer.Citations,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("encoding JSON response", zap.Error(err))
	}
}

// writeError maps the error to its HTTP status and writes an error body
func (s *Server) writeError(w http.ResponseWriter, err error) {
	s.jsonResponse(w, HTTPStatus(err), map[string]string{"error": err.Error()})
}

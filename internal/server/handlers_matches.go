package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/hireflow/internal/db"
	"github.com/jonathan/hireflow/internal/types"
)

// handleCreateMatch computes (or returns the previously computed) match
// for a job/candidate pair. The operation is idempotent, so it responds
// 200 whether the row was just created or already existed.
func (s *Server) handleCreateMatch(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.principal(w, r)
	if !ok {
		return
	}

	var req types.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.validator.Struct(req); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}

	jobID, _ := uuid.Parse(req.JobID)
	candidateID, _ := uuid.Parse(req.CandidateID)

	match, err := s.matches.Compute(r.Context(), owner, jobID, candidateID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, match)
}

func (s *Server) handleListMatches(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.principal(w, r)
	if !ok {
		return
	}

	offset, limit := pagination(r)
	matches, err := s.db.ListMatches(r.Context(), owner.ID, offset, limit)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if matches == nil {
		matches = []db.Match{}
	}

	writeJSON(w, http.StatusOK, matches)
}

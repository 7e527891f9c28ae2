package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/hireflow/internal/db"
	"github.com/jonathan/hireflow/internal/types"
)

// handleScheduleInterview drafts and dispatches an invitation email,
// then records the interview. A pair that already has an interview
// responds 409.
func (s *Server) handleScheduleInterview(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.principal(w, r)
	if !ok {
		return
	}

	var req types.InterviewRequest
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

	interview, err := s.interviews.Schedule(r.Context(), owner, jobID, candidateID, req.InterviewDatetime, req.InterviewFormat)
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, interview)
}

func (s *Server) handleListInterviews(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.principal(w, r)
	if !ok {
		return
	}

	offset, limit := pagination(r)
	interviews, err := s.db.ListInterviews(r.Context(), owner.ID, offset, limit)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if interviews == nil {
		interviews = []db.Interview{}
	}

	writeJSON(w, http.StatusOK, interviews)
}

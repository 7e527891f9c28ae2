package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/hireflow/internal/db"
	"github.com/jonathan/hireflow/internal/types"
)

// maxUploadBytes caps multipart résumé uploads.
const maxUploadBytes = 10 << 20 // 10 MB

// handleUploadCandidate accepts a résumé file, extracts structured
// fields, and persists the candidate.
func (s *Server) handleUploadCandidate(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.principal(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	candidate, err := s.candidates.OnboardResume(r.Context(), owner, header.Filename, file)
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, candidate)
}

// handleCreateCandidate persists a candidate from already-structured
// fields, bypassing extraction.
func (s *Server) handleCreateCandidate(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.principal(w, r)
	if !ok {
		return
	}

	var req types.CreateCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.validator.Struct(req); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}

	candidate, err := s.db.CreateCandidate(r.Context(), &db.Candidate{
		OwnerID:        owner.ID,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Skills:         req.Skills,
		Education:      req.Education,
		Experience:     req.Experience,
		Certifications: req.Certifications,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, candidate)
}

func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.principal(w, r)
	if !ok {
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		http.Error(w, "Invalid candidate ID", http.StatusBadRequest)
		return
	}

	candidate, err := s.db.GetCandidate(r.Context(), owner.ID, id)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if candidate == nil {
		http.Error(w, "Candidate not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, candidate)
}

func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.principal(w, r)
	if !ok {
		return
	}

	offset, limit := pagination(r)
	candidates, err := s.db.ListCandidates(r.Context(), owner.ID, offset, limit)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if candidates == nil {
		candidates = []db.Candidate{}
	}

	writeJSON(w, http.StatusOK, candidates)
}

func (s *Server) handleListCandidateInterviews(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.principal(w, r)
	if !ok {
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		http.Error(w, "Invalid candidate ID", http.StatusBadRequest)
		return
	}

	interviews, err := s.db.ListInterviewsByCandidate(r.Context(), owner.ID, id)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if interviews == nil {
		interviews = []db.Interview{}
	}

	writeJSON(w, http.StatusOK, interviews)
}

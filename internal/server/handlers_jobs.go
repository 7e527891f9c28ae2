package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/hireflow/internal/db"
	"github.com/jonathan/hireflow/internal/types"
)

// handleExtractJob extracts structured fields from raw job-description
// text and persists the job.
func (s *Server) handleExtractJob(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.principal(w, r)
	if !ok {
		return
	}

	var req types.ExtractJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.validator.Struct(req); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}

	job, err := s.jobs.OnboardDescription(r.Context(), owner, req.RawText)
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, job)
}

// handleCreateJob persists a job from already-structured fields.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.principal(w, r)
	if !ok {
		return
	}

	var req types.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.validator.Struct(req); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}

	job, err := s.db.CreateJob(r.Context(), &db.Job{
		OwnerID:            owner.ID,
		Title:              req.Title,
		Summary:            req.Summary,
		Skills:             req.Skills,
		ExperienceRequired: req.ExperienceRequired,
		EducationRequired:  req.EducationRequired,
		Responsibilities:   req.Responsibilities,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, job)
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.principal(w, r)
	if !ok {
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		http.Error(w, "Invalid job ID", http.StatusBadRequest)
		return
	}

	job, err := s.db.GetJob(r.Context(), owner.ID, id)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if job == nil {
		http.Error(w, "Job not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, job)
}

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.principal(w, r)
	if !ok {
		return
	}

	offset, limit := pagination(r)
	jobs, err := s.db.ListJobs(r.Context(), owner.ID, offset, limit)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if jobs == nil {
		jobs = []db.Job{}
	}

	writeJSON(w, http.StatusOK, jobs)
}

// handleListJobMatches lists all matches computed against one job,
// highest score first.
func (s *Server) handleListJobMatches(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.principal(w, r)
	if !ok {
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		http.Error(w, "Invalid job ID", http.StatusBadRequest)
		return
	}

	matches, err := s.db.ListMatchesByJob(r.Context(), owner.ID, id)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if matches == nil {
		matches = []db.Match{}
	}

	writeJSON(w, http.StatusOK, matches)
}

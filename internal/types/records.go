// Package types defines the shared domain records exchanged between the
// HTTP layer, the orchestration pipeline, and the LLM agents.
package types

import "time"

// CandidateFields is the structured output of résumé extraction.
// Every field is independently nullable: the agent sets a field to null
// when the source text does not contain that information.
type CandidateFields struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Skills         *string `json:"skills"`
	Education      *string `json:"education"`
	Experience     *string `json:"experience"`
	Certifications *string `json:"certifications"`
}

// JobFields is the structured output of job-description extraction.
type JobFields struct {
	Title              *string `json:"title"`
	Summary            *string `json:"summary"`
	Skills             *string `json:"skills"`
	ExperienceRequired *string `json:"experience_required"`
	EducationRequired  *string `json:"education_required"`
	Responsibilities   *string `json:"responsibilities"`
}

// MatchResult is the structured output of the scoring agent. Missing-*
// fields carry only attributes the candidate lacks; null means no gap.
type MatchResult struct {
	MatchScore        int     `json:"match_score"`
	Reasoning         string  `json:"reasoning"`
	MissingSkills     *string `json:"missing_skills"`
	MissingExperience *string `json:"missing_experience"`
	MissingEducation  *string `json:"missing_education"`
}

// EmailDraft is the structured output of the invitation-drafting agent.
type EmailDraft struct {
	Subject        string `json:"subject"`
	Body           string `json:"body"`
	RecipientEmail string `json:"recipient_email"`
}

// MatchRequest is the externally visible payload for computing a match.
// All scoring inputs are derived server-side from the stored records.
type MatchRequest struct {
	JobID       string `json:"job_id" validate:"required,uuid"`
	CandidateID string `json:"candidate_id" validate:"required,uuid"`
}

// InterviewRequest is the externally visible payload for scheduling an
// interview.
type InterviewRequest struct {
	JobID             string    `json:"job_id" validate:"required,uuid"`
	CandidateID       string    `json:"candidate_id" validate:"required,uuid"`
	InterviewDatetime time.Time `json:"interview_datetime" validate:"required"`
	InterviewFormat   string    `json:"interview_format" validate:"required"`
}

// CreateCandidateRequest creates a candidate from already-structured
// fields, bypassing extraction.
type CreateCandidateRequest struct {
	Name           string  `json:"name" validate:"required"`
	Email          string  `json:"email" validate:"required,email"`
	Phone          *string `json:"phone"`
	Skills         *string `json:"skills"`
	Education      *string `json:"education"`
	Experience     *string `json:"experience"`
	Certifications *string `json:"certifications"`
}

// CreateJobRequest creates a job from already-structured fields.
type CreateJobRequest struct {
	Title              string  `json:"title" validate:"required"`
	Summary            *string `json:"summary"`
	Skills             *string `json:"skills"`
	ExperienceRequired *string `json:"experience_required"`
	EducationRequired  *string `json:"education_required"`
	Responsibilities   *string `json:"responsibilities"`
}

// ExtractJobRequest carries raw job-description text for extraction.
type ExtractJobRequest struct {
	RawText string `json:"raw_text" validate:"required"`
}

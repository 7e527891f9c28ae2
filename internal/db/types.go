package db

import (
	"time"

	"github.com/google/uuid"
)

// User represents a recruiter account. Every other entity is scoped to
// the user that owns it; ownership is the sole tenant-isolation mechanism.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize to JSON
	CreatedAt    time.Time `json:"created_at"`
}

// Job represents a job opening created from extraction output or direct
// input. Immutable once created.
type Job struct {
	ID                 uuid.UUID `json:"id"`
	OwnerID            uuid.UUID `json:"owner_id"`
	Title              string    `json:"title"`
	Summary            *string   `json:"summary"`
	Skills             *string   `json:"skills"`
	ExperienceRequired *string   `json:"experience_required"`
	EducationRequired  *string   `json:"education_required"`
	Responsibilities   *string   `json:"responsibilities"`
	CreatedAt          time.Time `json:"created_at"`
}

// Candidate represents a candidate profile created from résumé
// extraction output. Immutable once created.
type Candidate struct {
	ID             uuid.UUID `json:"id"`
	OwnerID        uuid.UUID `json:"owner_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          *string   `json:"phone"`
	Skills         *string   `json:"skills"`
	Education      *string   `json:"education"`
	Experience     *string   `json:"experience"`
	Certifications *string   `json:"certifications"`
	CreatedAt      time.Time `json:"created_at"`
}

// Match joins one Job and one Candidate with the scoring agent's result.
// JobTitle and CandidateName are write-once snapshots taken at creation
// time so listings never re-fetch the source records.
type Match struct {
	ID                uuid.UUID `json:"id"`
	OwnerID           uuid.UUID `json:"owner_id"`
	JobID             uuid.UUID `json:"job_id"`
	JobTitle          string    `json:"job_title"`
	CandidateID       uuid.UUID `json:"candidate_id"`
	CandidateName     string    `json:"candidate_name"`
	MatchScore        float64   `json:"match_score"`
	Reasoning         string    `json:"reasoning"`
	MissingSkills     *string   `json:"missing_skills"`
	MissingExperience *string   `json:"missing_experience"`
	MissingEducation  *string   `json:"missing_education"`
	CreatedAt         time.Time `json:"created_at"`
}

// Interview records a scheduled interview and the email it was invited
// with. Persisted only after the invitation was dispatched.
type Interview struct {
	ID            uuid.UUID `json:"id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	CandidateID   uuid.UUID `json:"candidate_id"`
	CandidateName string    `json:"candidate_name"`
	JobID         uuid.UUID `json:"job_id"`
	JobTitle      string    `json:"job_title"`
	InterviewTime time.Time `json:"interview_time"`
	Format        string    `json:"format"`
	InviteEmail   string    `json:"invite_email"`
	CreatedAt     time.Time `json:"created_at"`
}

// Package pipeline implements the request-scoped orchestration
// workflows: candidate and job onboarding, match computation, and
// interview scheduling. Every workflow is all-or-nothing: any failure
// aborts the remainder with nothing persisted, and no step is retried.
package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/hireflow/internal/db"
	"github.com/jonathan/hireflow/internal/types"
)

// Principal is the authenticated owner a workflow runs on behalf of.
// All lookups and writes are scoped to its ID.
type Principal struct {
	ID    uuid.UUID
	Email string
}

// Store is the persistence surface the pipeline depends on. *db.DB
// satisfies it; tests substitute an in-memory fake.
type Store interface {
	CreateJob(ctx context.Context, job *db.Job) (*db.Job, error)
	GetJob(ctx context.Context, ownerID, id uuid.UUID) (*db.Job, error)
	CreateCandidate(ctx context.Context, candidate *db.Candidate) (*db.Candidate, error)
	GetCandidate(ctx context.Context, ownerID, id uuid.UUID) (*db.Candidate, error)
	CreateMatch(ctx context.Context, match *db.Match) (*db.Match, error)
	GetMatchByPair(ctx context.Context, ownerID, jobID, candidateID uuid.UUID) (*db.Match, error)
	CreateInterview(ctx context.Context, interview *db.Interview) (*db.Interview, error)
	GetInterviewByPair(ctx context.Context, ownerID, jobID, candidateID uuid.UUID) (*db.Interview, error)
}

// CandidateExtractor wraps the résumé extraction agent.
type CandidateExtractor interface {
	ExtractCandidate(ctx context.Context, rawText string) (*types.CandidateFields, error)
}

// JobExtractor wraps the job-description extraction agent.
type JobExtractor interface {
	ExtractJob(ctx context.Context, rawText string) (*types.JobFields, error)
}

// MatchScorer wraps the scoring agent. Inputs are the two records
// rendered as attribute/value text with identifying fields stripped.
type MatchScorer interface {
	Score(ctx context.Context, jobText, candidateText string) (*types.MatchResult, error)
}

// InvitationDrafter wraps the email-drafting agent.
type InvitationDrafter interface {
	DraftInvitation(ctx context.Context, jobText, candidateText string, interviewTime time.Time, format string) (*types.EmailDraft, error)
}

// Dispatcher delivers a drafted email. It never returns an error:
// failure is reported as false.
type Dispatcher interface {
	Send(subject, body, recipient, replyTo string) bool
}

// TextExtractor converts an uploaded document into raw text.
type TextExtractor func(filename string, r io.Reader) (string, error)

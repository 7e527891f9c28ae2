package pipeline

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/hireflow/internal/agents"
)

// NotFoundError indicates a referenced record is absent for this owner.
// Cross-tenant lookups surface identically: another owner's record is
// indistinguishable from a missing one.
type NotFoundError struct {
	Resource string
	ID       uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ConflictError indicates a match or interview already exists for the
// (owner, job, candidate) tuple.
type ConflictError struct {
	Resource    string
	JobID       uuid.UUID
	CandidateID uuid.UUID
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists for job %s and candidate %s",
		e.Resource, e.JobID, e.CandidateID)
}

// ValidationError indicates an agent produced output that fails schema
// conformance. Nothing is persisted.
type ValidationError struct {
	Stage string
	Cause error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s produced invalid output: %v", e.Stage, e.Cause)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// UpstreamError indicates an external agent call failed or timed out.
type UpstreamError struct {
	Stage string
	Cause error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Cause)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// DispatchError indicates the notification channel reported failure.
// No interview is recorded when this is returned.
type DispatchError struct {
	Recipient string
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("failed to dispatch email to %s", e.Recipient)
}

// classifyAgentError sorts an agent failure into the pipeline taxonomy:
// transport/timeout failures are upstream errors, everything else
// (malformed JSON, schema violations) is a validation error.
func classifyAgentError(stage string, err error) error {
	var apiErr *agents.APICallError
	if errors.As(err, &apiErr) {
		return &UpstreamError{Stage: stage, Cause: err}
	}
	return &ValidationError{Stage: stage, Cause: err}
}

package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/hireflow/internal/agents"
	"github.com/jonathan/hireflow/internal/db"
)

// InterviewService runs the interview scheduling workflow. Ordering is
// deliberate: the interview row is persisted strictly after the channel
// confirms delivery, so a crash mid-workflow can never record an
// interview whose invitation was not sent.
type InterviewService struct {
	store      Store
	drafter    InvitationDrafter
	dispatcher Dispatcher
	logger     *zap.Logger
}

// NewInterviewService wires the interview scheduling workflow.
func NewInterviewService(store Store, drafter InvitationDrafter, dispatcher Dispatcher, logger *zap.Logger) *InterviewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InterviewService{
		store:      store,
		drafter:    drafter,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Schedule drafts and dispatches an invitation, then records the
// interview. A duplicate (owner, job, candidate) tuple is a conflict:
// no second email, no second row.
func (s *InterviewService) Schedule(ctx context.Context, owner Principal, jobID, candidateID uuid.UUID, interviewTime time.Time, format string) (*db.Interview, error) {
	job, err := s.store.GetJob(ctx, owner.ID, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, &NotFoundError{Resource: "job", ID: jobID}
	}

	candidate, err := s.store.GetCandidate(ctx, owner.ID, candidateID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, &NotFoundError{Resource: "candidate", ID: candidateID}
	}

	existing, err := s.store.GetInterviewByPair(ctx, owner.ID, jobID, candidateID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ConflictError{Resource: "interview", JobID: jobID, CandidateID: candidateID}
	}

	// Title and name are withheld from the prompt; the agent works from
	// the remaining profile and the candidate's email address.
	jobText := agents.RenderJob(job, false)
	candidateText := agents.RenderCandidate(candidate, false)

	draft, err := s.drafter.DraftInvitation(ctx, jobText, candidateText, interviewTime, format)
	if err != nil {
		return nil, classifyAgentError("invitation drafting", err)
	}

	// The requester's address goes on Reply-To so candidate responses
	// reach the recruiter, not the sending relay.
	if !s.dispatcher.Send(draft.Subject, draft.Body, draft.RecipientEmail, owner.Email) {
		return nil, &DispatchError{Recipient: draft.RecipientEmail}
	}

	interview := &db.Interview{
		OwnerID:       owner.ID,
		CandidateID:   candidate.ID,
		CandidateName: candidate.Name,
		JobID:         job.ID,
		JobTitle:      job.Title,
		InterviewTime: interviewTime,
		Format:        format,
		InviteEmail:   draft.RecipientEmail,
	}

	created, err := s.store.CreateInterview(ctx, interview)
	if errors.Is(err, db.ErrDuplicate) {
		// A concurrent request slipped past the pre-check and committed
		// first. Surface the same conflict the pre-check would have.
		return nil, &ConflictError{Resource: "interview", JobID: jobID, CandidateID: candidateID}
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("interview scheduled",
		zap.String("owner_id", owner.ID.String()),
		zap.String("job_id", jobID.String()),
		zap.String("candidate_id", candidateID.String()),
		zap.Time("interview_time", interviewTime))
	return created, nil
}

package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/hireflow/internal/agents"
	"github.com/jonathan/hireflow/internal/db"
	"github.com/jonathan/hireflow/internal/types"
)

func validDraft() *types.EmailDraft {
	return &types.EmailDraft{
		Subject:        "Interview Invitation",
		Body:           "We would like to invite you to interview.",
		RecipientEmail: "jane@example.com",
	}
}

func TestSchedule(t *testing.T) {
	owner := Principal{ID: uuid.New(), Email: "recruiter@example.com"}
	interviewTime := time.Date(2026, 9, 15, 14, 30, 0, 0, time.UTC)

	setup := func() (*fakeStore, *db.Job, *db.Candidate) {
		store := newFakeStore()
		job := store.seedJob(owner.ID, "Senior Go Engineer")
		candidate := store.seedCandidate(owner.ID, "Jane Doe", "jane@example.com")
		candidate.Skills = strPtr("Go, SQL")
		return store, job, candidate
	}

	t.Run("success dispatches then persists", func(t *testing.T) {
		store, job, candidate := setup()
		drafter := &fakeDrafter{draft: validDraft()}
		dispatcher := &fakeDispatcher{ok: true}
		service := NewInterviewService(store, drafter, dispatcher, nil)

		interview, err := service.Schedule(context.Background(), owner, job.ID, candidate.ID, interviewTime, "video")
		require.NoError(t, err)
		assert.Equal(t, owner.ID, interview.OwnerID)
		assert.Equal(t, "Jane Doe", interview.CandidateName)
		assert.Equal(t, "Senior Go Engineer", interview.JobTitle)
		assert.True(t, interview.InterviewTime.Equal(interviewTime))
		assert.Equal(t, "video", interview.Format)
		assert.Equal(t, "jane@example.com", interview.InviteEmail)

		assert.Equal(t, 1, drafter.calls)
		assert.True(t, drafter.lastTime.Equal(interviewTime))
		assert.Equal(t, "video", drafter.lastFormat)
		// The drafting agent sees profile content, not identity.
		assert.NotContains(t, drafter.lastJobText, "Senior Go Engineer")
		assert.NotContains(t, drafter.lastCandidateText, "Jane Doe")
		assert.Contains(t, drafter.lastCandidateText, "jane@example.com")

		assert.Equal(t, 1, dispatcher.calls)
		assert.Equal(t, "Interview Invitation", dispatcher.lastSubject)
		assert.Equal(t, "jane@example.com", dispatcher.lastRecipient)
		// Replies go to the recruiter who scheduled it.
		assert.Equal(t, owner.Email, dispatcher.lastReplyTo)
	})

	t.Run("existing interview conflicts without drafting or sending", func(t *testing.T) {
		store, job, candidate := setup()
		store.interviews[pairKey(owner.ID, job.ID, candidate.ID)] = &db.Interview{ID: uuid.New()}

		drafter := &fakeDrafter{draft: validDraft()}
		dispatcher := &fakeDispatcher{ok: true}
		service := NewInterviewService(store, drafter, dispatcher, nil)

		_, err := service.Schedule(context.Background(), owner, job.ID, candidate.ID, interviewTime, "phone")

		var conflict *ConflictError
		require.True(t, errors.As(err, &conflict))
		assert.Equal(t, job.ID, conflict.JobID)
		assert.Equal(t, candidate.ID, conflict.CandidateID)
		assert.Zero(t, drafter.calls)
		assert.Zero(t, dispatcher.calls)
		assert.Zero(t, store.createInterviewCalls)
	})

	t.Run("dispatch failure records nothing", func(t *testing.T) {
		store, job, candidate := setup()
		drafter := &fakeDrafter{draft: validDraft()}
		dispatcher := &fakeDispatcher{ok: false}
		service := NewInterviewService(store, drafter, dispatcher, nil)

		_, err := service.Schedule(context.Background(), owner, job.ID, candidate.ID, interviewTime, "video")

		var de *DispatchError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, "jane@example.com", de.Recipient)
		assert.Zero(t, store.createInterviewCalls)
		assert.Empty(t, store.interviews)
	})

	t.Run("drafting failure sends nothing", func(t *testing.T) {
		store, job, candidate := setup()
		drafter := &fakeDrafter{err: &agents.APICallError{Agent: "invitation drafting", Cause: errors.New("timeout")}}
		dispatcher := &fakeDispatcher{ok: true}
		service := NewInterviewService(store, drafter, dispatcher, nil)

		_, err := service.Schedule(context.Background(), owner, job.ID, candidate.ID, interviewTime, "video")

		var ue *UpstreamError
		require.True(t, errors.As(err, &ue))
		assert.Zero(t, dispatcher.calls)
		assert.Empty(t, store.interviews)
	})

	t.Run("nonconforming draft is a validation error", func(t *testing.T) {
		store, job, candidate := setup()
		drafter := &fakeDrafter{err: errors.New("schema violation")}
		service := NewInterviewService(store, drafter, &fakeDispatcher{ok: true}, nil)

		_, err := service.Schedule(context.Background(), owner, job.ID, candidate.ID, interviewTime, "video")

		var ve *ValidationError
		assert.True(t, errors.As(err, &ve))
	})

	t.Run("unknown job", func(t *testing.T) {
		store := newFakeStore()
		candidate := store.seedCandidate(owner.ID, "Jane", "jane@example.com")
		service := NewInterviewService(store, &fakeDrafter{draft: validDraft()}, &fakeDispatcher{ok: true}, nil)

		_, err := service.Schedule(context.Background(), owner, uuid.New(), candidate.ID, interviewTime, "video")

		var nf *NotFoundError
		require.True(t, errors.As(err, &nf))
		assert.Equal(t, "job", nf.Resource)
	})

	t.Run("another owner's candidate is invisible", func(t *testing.T) {
		store := newFakeStore()
		job := store.seedJob(owner.ID, "Engineer")
		candidate := store.seedCandidate(uuid.New(), "Jane", "jane@example.com")
		service := NewInterviewService(store, &fakeDrafter{draft: validDraft()}, &fakeDispatcher{ok: true}, nil)

		_, err := service.Schedule(context.Background(), owner, job.ID, candidate.ID, interviewTime, "video")

		var nf *NotFoundError
		require.True(t, errors.As(err, &nf))
		assert.Equal(t, "candidate", nf.Resource)
	})

	t.Run("insert race surfaces a conflict", func(t *testing.T) {
		store, job, candidate := setup()
		store.raceInterview = &db.Interview{ID: uuid.New()}

		dispatcher := &fakeDispatcher{ok: true}
		service := NewInterviewService(store, &fakeDrafter{draft: validDraft()}, dispatcher, nil)

		_, err := service.Schedule(context.Background(), owner, job.ID, candidate.ID, interviewTime, "video")

		var conflict *ConflictError
		require.True(t, errors.As(err, &conflict))
		// The losing request did send its email; the constraint only
		// prevents the second row.
		assert.Equal(t, 1, dispatcher.calls)
	})
}

package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/hireflow/internal/db"
	"github.com/jonathan/hireflow/internal/types"
)

// fakeStore is an in-memory Store. Pair uniqueness mirrors the unique
// indexes on the matches and interviews tables.
type fakeStore struct {
	jobs       map[uuid.UUID]*db.Job
	candidates map[uuid.UUID]*db.Candidate
	matches    map[string]*db.Match
	interviews map[string]*db.Interview

	createMatchCalls     int
	createInterviewCalls int

	// raceMatch/raceInterview simulate a concurrent writer that commits
	// between the pair pre-check and the insert: the insert reports a
	// duplicate and the racing row becomes visible.
	raceMatch     *db.Match
	raceInterview *db.Interview
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		jobs:       make(map[uuid.UUID]*db.Job),
		candidates: make(map[uuid.UUID]*db.Candidate),
		matches:    make(map[string]*db.Match),
		interviews: make(map[string]*db.Interview),
	}
}

func pairKey(ownerID, jobID, candidateID uuid.UUID) string {
	return fmt.Sprintf("%s/%s/%s", ownerID, jobID, candidateID)
}

func (f *fakeStore) seedJob(ownerID uuid.UUID, title string) *db.Job {
	job := &db.Job{ID: uuid.New(), OwnerID: ownerID, Title: title, CreatedAt: time.Now()}
	f.jobs[job.ID] = job
	return job
}

func (f *fakeStore) seedCandidate(ownerID uuid.UUID, name, email string) *db.Candidate {
	candidate := &db.Candidate{ID: uuid.New(), OwnerID: ownerID, Name: name, Email: email, CreatedAt: time.Now()}
	f.candidates[candidate.ID] = candidate
	return candidate
}

func (f *fakeStore) CreateJob(_ context.Context, job *db.Job) (*db.Job, error) {
	created := *job
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	f.jobs[created.ID] = &created
	return &created, nil
}

func (f *fakeStore) GetJob(_ context.Context, ownerID, id uuid.UUID) (*db.Job, error) {
	job, ok := f.jobs[id]
	if !ok || job.OwnerID != ownerID {
		return nil, nil
	}
	return job, nil
}

func (f *fakeStore) CreateCandidate(_ context.Context, candidate *db.Candidate) (*db.Candidate, error) {
	created := *candidate
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	f.candidates[created.ID] = &created
	return &created, nil
}

func (f *fakeStore) GetCandidate(_ context.Context, ownerID, id uuid.UUID) (*db.Candidate, error) {
	candidate, ok := f.candidates[id]
	if !ok || candidate.OwnerID != ownerID {
		return nil, nil
	}
	return candidate, nil
}

func (f *fakeStore) CreateMatch(_ context.Context, match *db.Match) (*db.Match, error) {
	f.createMatchCalls++
	key := pairKey(match.OwnerID, match.JobID, match.CandidateID)
	if f.raceMatch != nil {
		f.matches[key] = f.raceMatch
		return nil, db.ErrDuplicate
	}
	if _, exists := f.matches[key]; exists {
		return nil, db.ErrDuplicate
	}
	created := *match
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	f.matches[key] = &created
	return &created, nil
}

func (f *fakeStore) GetMatchByPair(_ context.Context, ownerID, jobID, candidateID uuid.UUID) (*db.Match, error) {
	return f.matches[pairKey(ownerID, jobID, candidateID)], nil
}

func (f *fakeStore) CreateInterview(_ context.Context, interview *db.Interview) (*db.Interview, error) {
	f.createInterviewCalls++
	key := pairKey(interview.OwnerID, interview.JobID, interview.CandidateID)
	if f.raceInterview != nil {
		f.interviews[key] = f.raceInterview
		return nil, db.ErrDuplicate
	}
	if _, exists := f.interviews[key]; exists {
		return nil, db.ErrDuplicate
	}
	created := *interview
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	f.interviews[key] = &created
	return &created, nil
}

func (f *fakeStore) GetInterviewByPair(_ context.Context, ownerID, jobID, candidateID uuid.UUID) (*db.Interview, error) {
	return f.interviews[pairKey(ownerID, jobID, candidateID)], nil
}

type fakeCandidateExtractor struct {
	fields *types.CandidateFields
	err    error
	calls  int
}

func (f *fakeCandidateExtractor) ExtractCandidate(context.Context, string) (*types.CandidateFields, error) {
	f.calls++
	return f.fields, f.err
}

type fakeJobExtractor struct {
	fields *types.JobFields
	err    error
	calls  int
}

func (f *fakeJobExtractor) ExtractJob(context.Context, string) (*types.JobFields, error) {
	f.calls++
	return f.fields, f.err
}

type fakeScorer struct {
	result *types.MatchResult
	err    error

	calls             int
	lastJobText       string
	lastCandidateText string
}

func (f *fakeScorer) Score(_ context.Context, jobText, candidateText string) (*types.MatchResult, error) {
	f.calls++
	f.lastJobText = jobText
	f.lastCandidateText = candidateText
	return f.result, f.err
}

type fakeDrafter struct {
	draft *types.EmailDraft
	err   error

	calls             int
	lastJobText       string
	lastCandidateText string
	lastTime          time.Time
	lastFormat        string
}

func (f *fakeDrafter) DraftInvitation(_ context.Context, jobText, candidateText string, interviewTime time.Time, format string) (*types.EmailDraft, error) {
	f.calls++
	f.lastJobText = jobText
	f.lastCandidateText = candidateText
	f.lastTime = interviewTime
	f.lastFormat = format
	return f.draft, f.err
}

type fakeDispatcher struct {
	ok bool

	calls         int
	lastSubject   string
	lastBody      string
	lastRecipient string
	lastReplyTo   string
}

func (f *fakeDispatcher) Send(subject, body, recipient, replyTo string) bool {
	f.calls++
	f.lastSubject = subject
	f.lastBody = body
	f.lastRecipient = recipient
	f.lastReplyTo = replyTo
	return f.ok
}

func textExtractorReturning(text string, err error) TextExtractor {
	return func(string, io.Reader) (string, error) {
		return text, err
	}
}

func strPtr(s string) *string { return &s }

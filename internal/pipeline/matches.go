package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/jonathan/hireflow/internal/agents"
	"github.com/jonathan/hireflow/internal/db"
)

// MatchService runs the match computation workflow with idempotent
// create-or-fetch semantics: a second request for the same (owner, job,
// candidate) tuple returns the stored match unchanged and never invokes
// the scoring agent again.
type MatchService struct {
	store  Store
	scorer MatchScorer
	logger *zap.Logger

	// group collapses concurrent requests for the same tuple so the
	// expensive scoring call runs at most once per flight. The unique
	// index on the matches table remains the authoritative dedup for
	// requests landing on different processes.
	group singleflight.Group
}

// NewMatchService wires the match computation workflow.
func NewMatchService(store Store, scorer MatchScorer, logger *zap.Logger) *MatchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MatchService{store: store, scorer: scorer, logger: logger}
}

// Compute resolves both records for the owner, short-circuits on an
// existing match, and otherwise scores and persists a new one.
func (s *MatchService) Compute(ctx context.Context, owner Principal, jobID, candidateID uuid.UUID) (*db.Match, error) {
	key := fmt.Sprintf("%s/%s/%s", owner.ID, jobID, candidateID)
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		return s.compute(ctx, owner, jobID, candidateID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*db.Match), nil
}

func (s *MatchService) compute(ctx context.Context, owner Principal, jobID, candidateID uuid.UUID) (*db.Match, error) {
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

	existing, err := s.store.GetMatchByPair(ctx, owner.ID, jobID, candidateID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	// Title and name are withheld so the agent scores content only.
	jobText := agents.RenderJob(job, false)
	candidateText := agents.RenderCandidate(candidate, false)

	result, err := s.scorer.Score(ctx, jobText, candidateText)
	if err != nil {
		return nil, classifyAgentError("scoring", err)
	}

	match := &db.Match{
		OwnerID:           owner.ID,
		JobID:             job.ID,
		JobTitle:          job.Title,
		CandidateID:       candidate.ID,
		CandidateName:     candidate.Name,
		MatchScore:        float64(result.MatchScore),
		Reasoning:         result.Reasoning,
		MissingSkills:     result.MissingSkills,
		MissingExperience: result.MissingExperience,
		MissingEducation:  result.MissingEducation,
	}

	created, err := s.store.CreateMatch(ctx, match)
	if errors.Is(err, db.ErrDuplicate) {
		// A concurrent request won the race; its row is the match.
		return s.store.GetMatchByPair(ctx, owner.ID, jobID, candidateID)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("match computed",
		zap.String("owner_id", owner.ID.String()),
		zap.String("job_id", jobID.String()),
		zap.String("candidate_id", candidateID.String()),
		zap.Float64("match_score", created.MatchScore))
	return created, nil
}

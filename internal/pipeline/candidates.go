package pipeline

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/jonathan/hireflow/internal/db"
)

// CandidateService runs the candidate onboarding workflow:
// file -> text extraction -> extraction agent -> schema validation ->
// persist with owner attached. A failure at any step persists nothing.
type CandidateService struct {
	store       Store
	extractor   CandidateExtractor
	extractText TextExtractor
	logger      *zap.Logger
}

// NewCandidateService wires the candidate onboarding workflow.
func NewCandidateService(store Store, extractor CandidateExtractor, extractText TextExtractor, logger *zap.Logger) *CandidateService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CandidateService{
		store:       store,
		extractor:   extractor,
		extractText: extractText,
		logger:      logger,
	}
}

// OnboardResume onboards a candidate from an uploaded résumé document.
func (s *CandidateService) OnboardResume(ctx context.Context, owner Principal, filename string, file io.Reader) (*db.Candidate, error) {
	rawText, err := s.extractText(filename, file)
	if err != nil {
		return nil, err
	}

	fields, err := s.extractor.ExtractCandidate(ctx, rawText)
	if err != nil {
		return nil, classifyAgentError("candidate extraction", err)
	}

	// Name and email are the only conceptually required fields; an
	// extraction that could not find them is not persistable.
	if fields.Name == nil || *fields.Name == "" {
		return nil, &ValidationError{Stage: "candidate extraction", Cause: errMissingField("name")}
	}
	if fields.Email == nil || *fields.Email == "" {
		return nil, &ValidationError{Stage: "candidate extraction", Cause: errMissingField("email")}
	}

	candidate := &db.Candidate{
		OwnerID:        owner.ID,
		Name:           *fields.Name,
		Email:          *fields.Email,
		Phone:          fields.Phone,
		Skills:         fields.Skills,
		Education:      fields.Education,
		Experience:     fields.Experience,
		Certifications: fields.Certifications,
	}

	created, err := s.store.CreateCandidate(ctx, candidate)
	if err != nil {
		return nil, err
	}

	s.logger.Info("candidate onboarded",
		zap.String("owner_id", owner.ID.String()),
		zap.String("candidate_id", created.ID.String()))
	return created, nil
}

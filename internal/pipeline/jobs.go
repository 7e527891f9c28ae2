package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/hireflow/internal/db"
)

func errMissingField(field string) error {
	return fmt.Errorf("agent output is missing required field %q", field)
}

// JobService runs the job onboarding workflow:
// raw text -> extraction agent -> schema validation -> persist.
type JobService struct {
	store     Store
	extractor JobExtractor
	logger    *zap.Logger
}

// NewJobService wires the job onboarding workflow.
func NewJobService(store Store, extractor JobExtractor, logger *zap.Logger) *JobService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobService{store: store, extractor: extractor, logger: logger}
}

// OnboardDescription onboards a job from raw job-description text.
func (s *JobService) OnboardDescription(ctx context.Context, owner Principal, rawText string) (*db.Job, error) {
	fields, err := s.extractor.ExtractJob(ctx, rawText)
	if err != nil {
		return nil, classifyAgentError("job extraction", err)
	}

	if fields.Title == nil || *fields.Title == "" {
		return nil, &ValidationError{Stage: "job extraction", Cause: errMissingField("title")}
	}

	job := &db.Job{
		OwnerID:            owner.ID,
		Title:              *fields.Title,
		Summary:            fields.Summary,
		Skills:             fields.Skills,
		ExperienceRequired: fields.ExperienceRequired,
		EducationRequired:  fields.EducationRequired,
		Responsibilities:   fields.Responsibilities,
	}

	created, err := s.store.CreateJob(ctx, job)
	if err != nil {
		return nil, err
	}

	s.logger.Info("job onboarded",
		zap.String("owner_id", owner.ID.String()),
		zap.String("job_id", created.ID.String()))
	return created, nil
}

package agents

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/hireflow/internal/llm"
	"github.com/jonathan/hireflow/internal/schemas"
)

// fakeClient returns a canned response (or error) and records the
// prompt and tier it was called with.
type fakeClient struct {
	response string
	err      error

	calls      int
	lastPrompt string
	lastTier   llm.ModelTier
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	f.lastTier = tier
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }
func (f *fakeClient) Close() error                  { return nil }

const validCandidateJSON = `{
	"name": "Jane Doe",
	"email": "jane@example.com",
	"phone": "555-0100",
	"skills": "Go, SQL",
	"education": "BSc",
	"experience": "5 years",
	"certifications": null
}`

const validJobJSON = `{
	"title": "Senior Go Engineer",
	"summary": "Backend services",
	"skills": "Go, Postgres",
	"experience_required": "5+ years",
	"education_required": null,
	"responsibilities": "Own the pipeline"
}`

const validMatchJSON = `{
	"match_score": 82,
	"reasoning": "Strong skills overlap",
	"missing_skills": "Kubernetes",
	"missing_experience": null,
	"missing_education": null
}`

const validDraftJSON = `{
	"subject": "Interview Invitation",
	"body": "We would like to invite you to interview.",
	"recipient_email": "jane@example.com"
}`

func TestExtractCandidate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := &fakeClient{response: validCandidateJSON}
		extractor := NewExtractor(client)

		fields, err := extractor.ExtractCandidate(context.Background(), "resume text here")
		require.NoError(t, err)
		require.NotNil(t, fields.Name)
		assert.Equal(t, "Jane Doe", *fields.Name)
		require.NotNil(t, fields.Email)
		assert.Equal(t, "jane@example.com", *fields.Email)
		assert.Nil(t, fields.Certifications)

		assert.Equal(t, llm.TierLite, client.lastTier)
		assert.Contains(t, client.lastPrompt, "resume text here")
	})

	t.Run("llm failure surfaces APICallError", func(t *testing.T) {
		client := &fakeClient{err: errors.New("upstream timeout")}
		extractor := NewExtractor(client)

		_, err := extractor.ExtractCandidate(context.Background(), "text")
		require.Error(t, err)

		var apiErr *APICallError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "candidate extraction", apiErr.Agent)
	})

	t.Run("nonconforming response rejected", func(t *testing.T) {
		client := &fakeClient{response: `{"name": "Jane"}`}
		extractor := NewExtractor(client)

		_, err := extractor.ExtractCandidate(context.Background(), "text")
		require.Error(t, err)

		var ve *schemas.ValidationError
		assert.True(t, errors.As(err, &ve))
	})
}

func TestExtractJob(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := &fakeClient{response: validJobJSON}
		extractor := NewExtractor(client)

		fields, err := extractor.ExtractJob(context.Background(), "job description here")
		require.NoError(t, err)
		require.NotNil(t, fields.Title)
		assert.Equal(t, "Senior Go Engineer", *fields.Title)
		assert.Nil(t, fields.EducationRequired)

		assert.Equal(t, llm.TierLite, client.lastTier)
		assert.Contains(t, client.lastPrompt, "job description here")
	})

	t.Run("extra field rejected", func(t *testing.T) {
		response := strings.Replace(validJobJSON, `"title"`, `"extra": "x", "title"`, 1)
		client := &fakeClient{response: response}
		extractor := NewExtractor(client)

		_, err := extractor.ExtractJob(context.Background(), "text")
		assert.Error(t, err)
	})
}

func TestScore(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := &fakeClient{response: validMatchJSON}
		scorer := NewScorer(client)

		result, err := scorer.Score(context.Background(), "skills: Go", "skills: Go, SQL")
		require.NoError(t, err)
		assert.Equal(t, 82, result.MatchScore)
		assert.Equal(t, "Strong skills overlap", result.Reasoning)
		require.NotNil(t, result.MissingSkills)
		assert.Equal(t, "Kubernetes", *result.MissingSkills)

		assert.Equal(t, llm.TierStandard, client.lastTier)
		assert.Contains(t, client.lastPrompt, "skills: Go, SQL")
	})

	t.Run("out of range score rejected", func(t *testing.T) {
		response := strings.Replace(validMatchJSON, "82", "140", 1)
		client := &fakeClient{response: response}
		scorer := NewScorer(client)

		_, err := scorer.Score(context.Background(), "j", "c")
		require.Error(t, err)

		var ve *schemas.ValidationError
		assert.True(t, errors.As(err, &ve))
	})

	t.Run("llm failure surfaces APICallError", func(t *testing.T) {
		client := &fakeClient{err: errors.New("quota exceeded")}
		scorer := NewScorer(client)

		_, err := scorer.Score(context.Background(), "j", "c")
		var apiErr *APICallError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "scoring", apiErr.Agent)
	})
}

func TestDraftInvitation(t *testing.T) {
	interviewTime := time.Date(2026, 9, 15, 14, 30, 0, 0, time.FixedZone("CEST", 2*3600))

	t.Run("success", func(t *testing.T) {
		client := &fakeClient{response: validDraftJSON}
		drafter := NewDrafter(client)

		draft, err := drafter.DraftInvitation(context.Background(), "title: Engineer", "email: jane@example.com", interviewTime, "video")
		require.NoError(t, err)
		assert.Equal(t, "Interview Invitation", draft.Subject)
		assert.Equal(t, "jane@example.com", draft.RecipientEmail)

		assert.Equal(t, llm.TierStandard, client.lastTier)
		// The literal instant with its zone offset goes into the prompt.
		assert.Contains(t, client.lastPrompt, "2026-09-15T14:30:00+02:00")
		assert.Contains(t, client.lastPrompt, "video")
	})

	t.Run("empty subject rejected", func(t *testing.T) {
		response := strings.Replace(validDraftJSON, "Interview Invitation", "", 1)
		client := &fakeClient{response: response}
		drafter := NewDrafter(client)

		_, err := drafter.DraftInvitation(context.Background(), "j", "c", interviewTime, "phone")
		assert.Error(t, err)
	})
}

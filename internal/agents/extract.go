// Package agents wraps the language-model calls behind the recruiting
// workflows: résumé/job extraction, match scoring, and invitation
// drafting. Each agent is a stateless handle around a shared llm.Client,
// constructed once at startup and passed into the pipeline explicitly.
package agents

import (
	"context"
	"encoding/json"

	"github.com/jonathan/hireflow/internal/llm"
	"github.com/jonathan/hireflow/internal/prompts"
	"github.com/jonathan/hireflow/internal/schemas"
	"github.com/jonathan/hireflow/internal/types"
)

// Extractor turns unstructured résumé or job-description text into
// structured records.
type Extractor struct {
	client llm.Client
}

// NewExtractor creates an extraction agent on top of an LLM client.
func NewExtractor(client llm.Client) *Extractor {
	return &Extractor{client: client}
}

// ExtractCandidate extracts candidate fields from résumé text. Fields
// absent from the source come back as null; a response that does not
// conform to the schema is rejected.
func (e *Extractor) ExtractCandidate(ctx context.Context, rawText string) (*types.CandidateFields, error) {
	template := prompts.MustGet("agents.json", "extract-candidate")
	prompt := prompts.Format(template, map[string]string{"RawText": rawText})

	raw, err := e.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, &APICallError{Agent: "candidate extraction", Cause: err}
	}

	if err := schemas.Validate(schemas.CandidateFields, []byte(raw)); err != nil {
		return nil, err
	}

	var fields types.CandidateFields
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, &ParseError{Agent: "candidate extraction", Cause: err}
	}
	return &fields, nil
}

// ExtractJob extracts job fields from job-description text.
func (e *Extractor) ExtractJob(ctx context.Context, rawText string) (*types.JobFields, error) {
	template := prompts.MustGet("agents.json", "extract-job")
	prompt := prompts.Format(template, map[string]string{"RawText": rawText})

	raw, err := e.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, &APICallError{Agent: "job extraction", Cause: err}
	}

	if err := schemas.Validate(schemas.JobFields, []byte(raw)); err != nil {
		return nil, err
	}

	var fields types.JobFields
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, &ParseError{Agent: "job extraction", Cause: err}
	}
	return &fields, nil
}

package agents

import (
	"context"
	"encoding/json"

	"github.com/jonathan/hireflow/internal/llm"
	"github.com/jonathan/hireflow/internal/prompts"
	"github.com/jonathan/hireflow/internal/schemas"
	"github.com/jonathan/hireflow/internal/types"
)

// Scorer compares a job against a candidate and produces a 0-100 match
// score plus gap analysis. Determinism is not guaranteed; only schema
// conformance per call.
type Scorer struct {
	client llm.Client
}

// NewScorer creates a scoring agent on top of an LLM client.
func NewScorer(client llm.Client) *Scorer {
	return &Scorer{client: client}
}

// Score takes the two records already rendered as attribute/value text
// (identifying fields stripped by the caller) and returns the agent's
// verdict. Missing-* fields carry only what the candidate lacks.
func (s *Scorer) Score(ctx context.Context, jobText, candidateText string) (*types.MatchResult, error) {
	template := prompts.MustGet("agents.json", "score-match")
	prompt := prompts.Format(template, map[string]string{
		"Job":       jobText,
		"Candidate": candidateText,
	})

	raw, err := s.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{Agent: "scoring", Cause: err}
	}

	if err := schemas.Validate(schemas.MatchResult, []byte(raw)); err != nil {
		return nil, err
	}

	var result types.MatchResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, &ParseError{Agent: "scoring", Cause: err}
	}
	return &result, nil
}
